package entity

import "time"

// User is the aggregate root for the diary owner.
// Password holds a bcrypt digest; the plaintext is never stored.
type User struct {
	ID        int64
	FirstName string
	LastName  string
	Email     string
	Password  string
	CreatedAt time.Time
}
