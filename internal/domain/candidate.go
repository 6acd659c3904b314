package domain

import "time"

type Candidate struct {
	ID             uint      `json:"id"`
	UserID         uint      `json:"user_id"`
	Name           string    `json:"fullname"`
	PositionID     uint      `json:"position"`
	PositionName   string    `json:"position_name"`
	ProfilePicture *string   `json:"profile_picture"`
	VoteCount      uint      `json:"vote_count"`
	CreatedAt      time.Time `json:"created_at"`
}
