package domain

import "time"

// Role is an independently managed grant referenced by users. The name is
// unique; assignment to users is by name.
type Role struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
