package model_test

import (
	"testing"

	"roam/internal/domains/identity/model"
	"roam/shared/constant"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeAccountStatus(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected model.AccountStatus
	}{
		{name: "active stays active", input: "active", expected: model.AccountStatusActive},
		{name: "suspended stays suspended", input: "suspended", expected: model.AccountStatusSuspended},
		{name: "deleted stays deleted", input: "deleted", expected: model.AccountStatusDeleted},
		{name: "pending stays pending", input: "pending_verification", expected: model.AccountStatusPendingVerification},
		{name: "unknown collapses to pending", input: "verified", expected: model.AccountStatusPendingVerification},
		{name: "empty collapses to pending", input: "", expected: model.AccountStatusPendingVerification},
		{name: "case sensitive", input: "Active", expected: model.AccountStatusPendingVerification},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, model.NormalizeAccountStatus(tt.input))
		})
	}
}

func TestRoleHome(t *testing.T) {
	tests := []struct {
		name     string
		role     model.Role
		expected string
	}{
		{name: "admin goes to admin dashboard", role: model.RoleAdmin, expected: constant.RouteAdminDashboard},
		{name: "host goes to host dashboard", role: model.RoleHost, expected: constant.RouteHostDashboard},
		{name: "user goes to user dashboard", role: model.RoleUser, expected: constant.RouteUserDashboard},
		{name: "unknown role goes home", role: model.Role("superuser"), expected: constant.RouteHome},
		{name: "empty role goes home", role: model.Role(""), expected: constant.RouteHome},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.role.Home())
		})
	}
}

func TestRoleValid(t *testing.T) {
	assert.True(t, model.RoleAdmin.Valid())
	assert.True(t, model.RoleHost.Valid())
	assert.True(t, model.RoleUser.Valid())
	assert.False(t, model.Role("moderator").Valid())
	assert.False(t, model.Role("").Valid())
}
