package request

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
)

var electionStatuses = []interface{}{"pending", "active", "completed"}

type CreatePositionRequest struct {
	Name string `json:"name"`
}

func (req *CreatePositionRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
	)
}

type CreateElectionRequest struct {
	Name      string    `json:"name"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Status    string    `json:"status"`
}

func (req *CreateElectionRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&req.StartDate, validation.Required),
		validation.Field(&req.EndDate, validation.Required),
		validation.Field(&req.Status, validation.In(electionStatuses...)),
	)
}

type UpdateElectionStatusRequest struct {
	Status string `json:"status"`
}

func (req *UpdateElectionStatusRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Status, validation.Required, validation.In(electionStatuses...)),
	)
}
