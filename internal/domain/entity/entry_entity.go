package entity

import "time"

// Entry is a single diary entry owned by a user.
type Entry struct {
	ID        string
	UserID    int64
	Title     string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
