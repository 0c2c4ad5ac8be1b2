package authz

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestService_RoleRouting(t *testing.T) {
	svc, err := NewService(nil)
	require.NoError(t, err)

	// HR reaches salary slips but not the archive.
	require.True(t, svc.Can(RoleHR, ViewSalarySlips))
	require.False(t, svc.Can(RoleHR, ViewArchive))

	require.True(t, svc.Can(RoleAdmin, ViewArchive))
	require.False(t, svc.Can(RoleUser, ViewEmployees))
	require.True(t, svc.Can(RoleTeamLead, ViewEmployees))
	require.False(t, svc.Can(RoleUser, ViewPayroll))
	require.True(t, svc.Can(RoleManager, ViewInvoices))
}

func TestService_UnknownRoleHasNoAccess(t *testing.T) {
	svc, err := NewService(nil)
	require.NoError(t, err)
	require.False(t, svc.Can(Role(9), ViewDashboard))
}

func TestLoadCapabilities_Override(t *testing.T) {
	path := filepath.Join(t.TempDir(), "capabilities.yaml")
	content := []byte("version: 1\nroles:\n  hr: [dashboard, salary-slips]\n  \"2\": [dashboard]\n")
	require.NoError(t, os.WriteFile(path, content, 0o644))

	table, err := LoadCapabilities(path)
	require.NoError(t, err)

	svc, err := NewService(table)
	require.NoError(t, err)
	require.True(t, svc.Can(RoleHR, ViewSalarySlips))
	require.False(t, svc.Can(RoleHR, ViewArchive))
	require.True(t, svc.Can(RoleUser, ViewDashboard))
	require.False(t, svc.Can(RoleAdmin, ViewDashboard), "override replaces the built-in table")
}

func TestLoadCapabilities_RejectsUnknownRole(t *testing.T) {
	path := filepath.Join(t.TempDir(), "capabilities.yaml")
	require.NoError(t, os.WriteFile(path, []byte("version: 1\nroles:\n  ceo: [dashboard]\n"), 0o644))

	_, err := LoadCapabilities(path)
	require.Error(t, err)
}

func TestParseRole(t *testing.T) {
	role, ok := ParseRole("team_lead")
	require.True(t, ok)
	require.Equal(t, RoleTeamLead, role)

	role, ok = ParseRole("4")
	require.True(t, ok)
	require.Equal(t, RoleHR, role)

	_, ok = ParseRole("7")
	require.False(t, ok)
}
