package domain

// Student is a roster entry allowed to create an account.
type Student struct {
	ID      uint   `json:"id"`
	RegNo   string `json:"reg_no"`
	WebMail string `json:"web_mail"`
}
