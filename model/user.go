// api/model/user.go
package model

import "time"

// Staff roles form a closed enumeration; access rules reference these values.
const (
	RoleStaff      = "STAFF"
	RoleManager    = "MANAGER"
	RoleHRAdmin    = "HR_ADMIN"
	RoleAdmin      = "ADMIN"
	RoleContractor = "CONTRACTOR"
)

type User struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	Department string    `json:"department,omitempty"`
	Country    string    `json:"country,omitempty"`
	Active     bool      `json:"active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// UserSnapshot is the evaluation subject, read fresh on every call so role or
// department changes take effect immediately. Department and country are
// optional; an unset value passes the matching clause.
type UserSnapshot struct {
	ID         string `json:"id"`
	Role       string `json:"role"`
	Department string `json:"department,omitempty"`
	Country    string `json:"country,omitempty"`
}
