package postgres

import (
	"database/sql"
	"time"
)

type userRow struct {
	ID           int64
	FullName     string
	Email        string
	PasswordHash string
	Role         string
	IsActive     bool
	LastLogin    sql.NullTime
	CreatedAt    time.Time
}
