package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type RegisterCandidateRequest struct {
	PositionID     uint    `json:"position"`
	Name           string  `json:"fullname"`
	ProfilePicture *string `json:"profile_picture"`
}

func (req *RegisterCandidateRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.PositionID, validation.Required),
		validation.Field(&req.Name, validation.Length(0, 150)),
		validation.Field(&req.ProfilePicture, is.URL),
	)
}

type CastVoteRequest struct {
	CandidateID uint `json:"candidateID"`
}

func (req *CastVoteRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.CandidateID, validation.Required),
	)
}
