package request

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validRegisterRequest() RegisterRequest {
	return RegisterRequest{
		Username:           "ada",
		Password:           "secret123",
		ConfirmPassword:    "secret123",
		Email:              "ada@example.com",
		FirstName:          "Ada",
		LastName:           "Lovelace",
		RegistrationNumber: "2020/001",
		WebMail:            "ada@uni.edu",
	}
}

func TestRegisterRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(req *RegisterRequest)
		wantErr error
		invalid bool
	}{
		{name: "valid", modify: func(req *RegisterRequest) {}},
		{name: "missing username", modify: func(req *RegisterRequest) { req.Username = "" }, invalid: true},
		{name: "bad email", modify: func(req *RegisterRequest) { req.Email = "ada" }, invalid: true},
		{name: "bad web mail", modify: func(req *RegisterRequest) { req.WebMail = "ada-at-uni" }, invalid: true},
		{name: "missing registration number", modify: func(req *RegisterRequest) { req.RegistrationNumber = "" }, invalid: true},
		{
			name: "password without digit",
			modify: func(req *RegisterRequest) {
				req.Password, req.ConfirmPassword = "password", "password"
			},
			wantErr: errInvalidPassword,
		},
		{
			name: "short password",
			modify: func(req *RegisterRequest) {
				req.Password, req.ConfirmPassword = "abc12", "abc12"
			},
			wantErr: errInvalidPassword,
		},
		{
			name:    "confirm mismatch",
			modify:  func(req *RegisterRequest) { req.ConfirmPassword = "secret124" },
			wantErr: errConfirmPasswordMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRegisterRequest()
			tt.modify(&req)

			err := req.Validate()
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.invalid:
				assert.Error(t, err)
			default:
				assert.NoError(t, err)
			}
		})
	}
}

func TestCreateElectionRequest_Validate(t *testing.T) {
	start := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)

	valid := CreateElectionRequest{Name: "SRC 2024", StartDate: start, EndDate: start.Add(8 * time.Hour)}
	assert.NoError(t, valid.Validate())

	withStatus := valid
	withStatus.Status = "active"
	assert.NoError(t, withStatus.Validate())

	badStatus := valid
	badStatus.Status = "closed"
	assert.Error(t, badStatus.Validate())

	noDates := CreateElectionRequest{Name: "SRC 2024"}
	assert.Error(t, noDates.Validate())
}

func TestRegisterCandidateRequest_Validate(t *testing.T) {
	picture := "https://cdn.example.com/ada.png"
	notURL := "not a url"

	assert.NoError(t, (&RegisterCandidateRequest{PositionID: 1}).Validate())
	assert.NoError(t, (&RegisterCandidateRequest{PositionID: 1, ProfilePicture: &picture}).Validate())
	assert.Error(t, (&RegisterCandidateRequest{PositionID: 1, ProfilePicture: &notURL}).Validate())
	assert.Error(t, (&RegisterCandidateRequest{}).Validate())
}

func TestCastVoteRequest_Validate(t *testing.T) {
	assert.NoError(t, (&CastVoteRequest{CandidateID: 3}).Validate())
	assert.Error(t, (&CastVoteRequest{}).Validate())
}
