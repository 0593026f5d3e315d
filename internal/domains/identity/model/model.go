package model

import "roam/shared/constant"

type Role string

const (
	RoleAdmin Role = constant.RoleAdmin
	RoleHost  Role = constant.RoleHost
	RoleUser  Role = constant.RoleUser
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleHost, RoleUser:
		return true
	}

	return false
}

// Home returns the dashboard route a signed-in role is redirected to.
// Unknown or empty roles land on the public home page.
func (r Role) Home() string {
	switch r {
	case RoleAdmin:
		return constant.RouteAdminDashboard
	case RoleHost:
		return constant.RouteHostDashboard
	case RoleUser:
		return constant.RouteUserDashboard
	}

	return constant.RouteHome
}

type AccountStatus string

const (
	AccountStatusActive              AccountStatus = "active"
	AccountStatusSuspended           AccountStatus = "suspended"
	AccountStatusDeleted             AccountStatus = "deleted"
	AccountStatusPendingVerification AccountStatus = "pending_verification"
)

// NormalizeAccountStatus maps any stored value onto the closed status set.
// Unknown or missing values collapse to pending_verification so an
// unrecognized status is treated as not yet trusted rather than active.
func NormalizeAccountStatus(status string) AccountStatus {
	switch AccountStatus(status) {
	case AccountStatusActive, AccountStatusSuspended, AccountStatusDeleted, AccountStatusPendingVerification:
		return AccountStatus(status)
	}

	return AccountStatusPendingVerification
}

func (s AccountStatus) IsActive() bool {
	return s == AccountStatusActive
}

// Identity is the per-session authenticated principal. TokenID ties it to the
// credential it was minted from, so revoking the token clears the identity.
type Identity struct {
	ID            string        `json:"id"`
	Email         string        `json:"email"`
	Role          Role          `json:"role"`
	AccountStatus AccountStatus `json:"account_status"`
	TokenID       string        `json:"token_id"`
}
