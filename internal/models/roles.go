package models

// Seeded role names. GuestRole is never stored; it is reported for users
// whose role reference does not resolve.
const (
	AdminRole = "Admin"
	UserRole  = "User"
	GuestRole = "Guest"
)

type Role struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
