package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"stellar-cargo/internal/models"
)

func TestCan(t *testing.T) {
	assert.True(t, Can(models.RoleAdmin, CapViewAdmin))
	assert.False(t, Can(models.RoleAstronaut, CapViewAdmin))
	assert.False(t, Can(models.RoleStaff, CapViewAdmin))
	for _, role := range []models.Role{models.RoleAdmin, models.RoleAstronaut, models.RoleStaff} {
		assert.True(t, Can(role, CapManageInventory), role)
		assert.True(t, Can(role, CapViewReports), role)
	}
	assert.False(t, Can(models.Role("guest"), CapViewDashboard))
}

func titles(items []NavItem) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Title
	}
	return out
}

func TestNavItems(t *testing.T) {
	assert.Equal(t,
		[]string{"Dashboard", "Cargo", "Astronauts", "Modules", "Missions", "Reports", "Activity", "Admin", "Settings"},
		titles(NavItems(models.RoleAdmin)))
	assert.Equal(t,
		[]string{"Dashboard", "Cargo", "Astronauts", "Modules", "Missions", "Reports", "Activity", "Settings"},
		titles(NavItems(models.RoleStaff)))
	assert.Empty(t, NavItems(models.Role("guest")))
}
