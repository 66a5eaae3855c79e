package dto

import "github.com/hongminglow/movie-be/internal/models"

// UserRequest is the create/update payload for /user. Password is plaintext
// and hashed before it reaches the store.
type UserRequest struct {
	ID          int64  `json:"id"`
	Username    string `json:"username"`
	Password    string `json:"password"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	RoleID      *int64 `json:"roleId"`
}

// User converts the payload into a model carrying the given hash.
func (r UserRequest) User(passwordHash string) models.User {
	return models.User{
		ID:           r.ID,
		Username:     r.Username,
		Email:        r.Email,
		PhoneNumber:  r.PhoneNumber,
		RoleID:       r.RoleID,
		PasswordHash: passwordHash,
	}
}
