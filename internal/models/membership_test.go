package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidRole(t *testing.T) {
	for _, role := range []string{RoleOwner, RoleAdmin, RoleMember} {
		require.True(t, ValidRole(role), role)
	}

	for _, role := range []string{"", "superadmin", "Owner", "OWNER", "viewer"} {
		require.False(t, ValidRole(role), role)
	}
}
