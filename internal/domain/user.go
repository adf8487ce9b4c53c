package domain

import (
	"strings"
	"time"
)

// Role enumerates hospital user roles. DOCTOR, NURSE and PATIENT are
// exposed on the gRPC verification surface; ADMIN exists only inside
// this service and degrades to UNKNOWN on the wire.
type Role string

const (
	RoleDoctor  Role = "DOCTOR"
	RoleNurse   Role = "NURSE"
	RolePatient Role = "PATIENT"
	RoleAdmin   Role = "ADMIN"
)

// ParseRole normalizes a role string to its canonical form. The second
// return value reports whether the role is one this service knows.
func ParseRole(s string) (Role, bool) {
	switch role := Role(strings.ToUpper(strings.TrimSpace(s))); role {
	case RoleDoctor, RoleNurse, RolePatient, RoleAdmin:
		return role, true
	default:
		return role, false
	}
}

// User is the domain model for a registered account.
type User struct {
	ID           string
	Username     string
	Name         string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
