package model

// User holds an account record as persisted in the user table.
//
// Passwords are stored in plaintext because login is defined as an exact
// match on email and password. Known insecurity kept for compatibility with
// the existing persisted data; do not reuse this table anywhere
// production-facing.
type User struct {
	Id          string `json:"id"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"displayName"`
}

// Session is the public projection of a user: everything except the password.
// At most one session exists per process at a time.
type Session struct {
	Id          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
}

// Session strips the password from the user record.
func (u *User) Session() *Session {
	return &Session{
		Id:          u.Id,
		Email:       u.Email,
		DisplayName: u.DisplayName,
	}
}
