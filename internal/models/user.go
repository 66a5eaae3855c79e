package models

import "time"

// User captures application-facing fields for an authenticated identity.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PhoneNumber  string    `json:"phoneNumber"`
	RoleID       *int64    `json:"roleId,omitempty"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// ApplyUpdate copies the mutable profile fields from in. The password hash is
// only replaced when in carries one.
func (u *User) ApplyUpdate(in User) {
	u.Username = in.Username
	u.Email = in.Email
	u.PhoneNumber = in.PhoneNumber
	if in.PasswordHash != "" {
		u.PasswordHash = in.PasswordHash
	}
}
