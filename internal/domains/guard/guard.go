package guard

import (
	"roam/internal/domains/identity/model"
	"roam/policies"
	"roam/shared/constant"
)

type DecisionKind int

const (
	DecisionProceed DecisionKind = iota
	DecisionRedirect
	DecisionDeny
)

// Decision is the outcome of evaluating one request against the policy
// table. Target is set only for redirects.
type Decision struct {
	Kind   DecisionKind
	Target string
}

func Proceed() Decision {
	return Decision{Kind: DecisionProceed}
}

func RedirectTo(target string) Decision {
	return Decision{Kind: DecisionRedirect, Target: target}
}

func Deny() Decision {
	return Decision{Kind: DecisionDeny}
}

func roleHome(identity *model.Identity) string {
	if identity == nil {
		return constant.RouteHome
	}

	return identity.Role.Home()
}

// Evaluate runs the ordered rule list for one policy entry. identity is nil
// for anonymous requests; a malformed stored identity must be passed as nil.
// First match wins, and the role-mismatch rule has to run before the generic
// authenticated-proceed rule so a signed-in caller with the wrong role never
// reaches a restricted route. Evaluate never mutates the session.
func Evaluate(entry policies.Entry, identity *model.Identity) Decision {
	switch {
	case entry.Public && !entry.RequiresAuth && !entry.AuthRoute:
		return Proceed()
	case entry.RequiresAuth && identity == nil:
		return RedirectTo(constant.RouteLogin)
	case entry.Role != "" && (identity == nil || string(identity.Role) != entry.Role):
		return RedirectTo(roleHome(identity))
	case entry.AuthRoute && identity != nil:
		return RedirectTo(roleHome(identity))
	case entry.RequiresAuth && identity != nil:
		return Proceed()
	case entry.AuthRoute && identity == nil:
		return Proceed()
	}

	return Proceed()
}
