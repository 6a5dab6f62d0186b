package domain

import "time"

type User struct {
	ID           int64
	FullName     string
	Email        string
	PasswordHash string
	Role         string
	IsActive     bool
	LastLogin    *time.Time
	CreatedAt    time.Time
}
