package domain

import "time"

// Roles whose holders may manage users and role assignments.
const (
	RoleSuperUser = "SuperUser"
	RoleAdmin     = "Admin"
)

// User models an account held in the identity store. PasswordHash and
// SecurityStamp never leave the process boundary; response DTOs are built
// by the handler mappers.
type User struct {
	ID            string    `json:"id"`
	Username      string    `json:"username"`
	Email         string    `json:"email"`
	PasswordHash  string    `json:"-"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	DateOfBirth   time.Time `json:"date_of_birth,omitempty"`
	Gender        int       `json:"gender,omitempty"`
	ColorTheme    int       `json:"color_theme,omitempty"`
	SecurityStamp string    `json:"-"`
	Roles         []string  `json:"roles"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// HasRole reports whether the user currently holds the given role name.
func (u *User) HasRole(name string) bool {
	for _, r := range u.Roles {
		if r == name {
			return true
		}
	}
	return false
}
