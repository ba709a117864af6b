package models

// NewUser is the profile record sent to the user API after a confirmed
// sign-up. UserID is the identity provider's subject id when known.
type NewUser struct {
	UserID   string `json:"userId,omitempty"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
}
