package entities

import "time"

// User is a registered account. PasswordHash is the bcrypt digest of the raw
// password; the raw value is never stored.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}
