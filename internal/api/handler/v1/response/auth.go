package response

import "github.com/vietanh2810/elections-api/internal/domain"

type LoginResponse struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
