package model

import "time"

// User describes a registered account (customer or restaurant owner).
type User struct {
	ID           string
	Login        string
	PasswordHash string
	CreatedAt    time.Time
}
