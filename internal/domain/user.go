package domain

import "time"

type User struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FullName falls back to the username when no name was given at signup.
func (u User) FullName() string {
	switch {
	case u.FirstName != "" && u.LastName != "":
		return u.FirstName + " " + u.LastName
	case u.FirstName != "":
		return u.FirstName
	case u.LastName != "":
		return u.LastName
	default:
		return u.Username
	}
}

// UserProfile binds a user to the roster entry it was verified against.
type UserProfile struct {
	ID                 uint   `json:"id"`
	UserID             uint   `json:"user_id"`
	RegistrationNumber string `json:"registration_number"`
	WebMail            string `json:"web_mail"`
}

// Account is everything needed to create a user and its profile.
type Account struct {
	User               User
	RegistrationNumber string
	WebMail            string
}
