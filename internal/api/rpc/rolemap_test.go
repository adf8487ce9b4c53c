package rpc

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hospital-platform/auth-service/internal/domain"
)

func TestWireRole(t *testing.T) {
	tests := []struct {
		name string
		role domain.Role
		want UserRole
	}{
		{name: "doctor", role: domain.RoleDoctor, want: UserRole_DOCTOR},
		{name: "nurse", role: domain.RoleNurse, want: UserRole_NURSE},
		{name: "patient", role: domain.RolePatient, want: UserRole_PATIENT},
		{name: "lowercase doctor", role: domain.Role("doctor"), want: UserRole_DOCTOR},
		{name: "mixed case nurse", role: domain.Role("Nurse"), want: UserRole_NURSE},
		{name: "admin is domain-only", role: domain.RoleAdmin, want: UserRole_UNKNOWN},
		{name: "empty role", role: domain.Role(""), want: UserRole_UNKNOWN},
		{name: "garbage role", role: domain.Role("JANITOR"), want: UserRole_UNKNOWN},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, wireRole(tt.role))
		})
	}
}

func TestWireRole_TableIsComplete(t *testing.T) {
	// Every wire-exposed role has exactly one table entry.
	exposed := []domain.Role{domain.RoleDoctor, domain.RoleNurse, domain.RolePatient}
	assert.Len(t, wireRoles, len(exposed))
	for _, role := range exposed {
		_, ok := wireRoles[role]
		assert.True(t, ok, "missing mapping for %s", role)
	}
}
