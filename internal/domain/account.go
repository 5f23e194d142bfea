package domain

import "time"

// Role is the campus affiliation an account registers with.
type Role string

const (
	RoleAlumni    Role = "alumni"
	RoleStudent   Role = "student"
	RoleProfessor Role = "professor"
)

// Roles lists every role accepted at registration.
var Roles = []Role{RoleAlumni, RoleStudent, RoleProfessor}

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	for _, known := range Roles {
		if r == known {
			return true
		}
	}
	return false
}

// Account is a persisted user row keyed by a unique email.
type Account struct {
	ID           string
	FirstName    string
	LastName     string
	Email        string
	Role         Role
	PasswordHash string
	CreatedAt    time.Time
}

// PublicIdentity is the subset of an account returned after registration.
type PublicIdentity struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// PublicIdentity returns the account fields that may leave the identity module.
func (a *Account) PublicIdentity() *PublicIdentity {
	return &PublicIdentity{
		ID:    a.ID,
		Email: a.Email,
		Role:  a.Role,
	}
}
