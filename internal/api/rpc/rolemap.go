package rpc

import (
	"strings"

	"github.com/hospital-platform/auth-service/internal/domain"
)

// wireRoles is the complete mapping from domain roles to their wire
// representation. Anything absent from the table, including the
// domain-only ADMIN role, degrades to UNKNOWN.
var wireRoles = map[domain.Role]UserRole{
	domain.RoleDoctor:  UserRole_DOCTOR,
	domain.RoleNurse:   UserRole_NURSE,
	domain.RolePatient: UserRole_PATIENT,
}

// wireRole maps a stored role to the wire enum. The lookup is
// case-insensitive on the role's canonical name and is total: every
// input maps to a wire role, never an error.
func wireRole(role domain.Role) UserRole {
	if wire, ok := wireRoles[domain.Role(strings.ToUpper(string(role)))]; ok {
		return wire
	}
	return UserRole_UNKNOWN
}
