package middleware

import (
	"context"
	"net/http"
	"roam/config"
	"roam/infras/jwt"
	"roam/infras/otel"
	"roam/internal/domains/guard"
	identityModel "roam/internal/domains/identity/model"
	"roam/internal/domains/identity/session"
	"roam/policies"
	"roam/shared/constant"
	"roam/shared/failure"
	"roam/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// Auth resolves the caller's identity and enforces the route policy table.
type Auth interface {
	Identity(next http.Handler) http.Handler
	Guard(next http.Handler) http.Handler
}

type authImpl struct {
	jwtService jwt.JWT
	sessions   session.Store
	policies   *policies.PolicyData
	otel       otel.Otel
	cfg        *config.Config
}

func NewAuthMiddleware(jwtService jwt.JWT, sessions session.Store, policies *policies.PolicyData, otel otel.Otel, cfg *config.Config) Auth {
	return &authImpl{
		jwtService: jwtService,
		sessions:   sessions,
		policies:   policies,
		otel:       otel,
		cfg:        cfg,
	}
}

// Identity attaches the caller's identity to the request context when the
// bearer token checks out against an active session. Every failure mode
// (missing header, bad token, expired session, malformed session record)
// degrades to anonymous instead of failing the request; the guard decides
// what anonymous callers may reach.
func (m *authImpl) Identity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()
		_, scope := m.otel.NewScope(ctx, constant.OtelHandlerScopeName, "identity.middleware")

		identity := m.resolve(request)
		if identity != nil {
			ctx = context.WithValue(ctx, constant.ContextKeyIdentity, identity)
			ctx = context.WithValue(ctx, constant.ContextKeyUserID, identity.ID)
			ctx = context.WithValue(ctx, constant.ContextKeyUserEmail, identity.Email)
			ctx = context.WithValue(ctx, constant.ContextKeyUserRole, string(identity.Role))
			ctx = context.WithValue(ctx, constant.ContextKeyTokenID, identity.TokenID)

			scope.SetAttribute("auth.user_id", identity.ID)
		}

		scope.End()
		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}

func (m *authImpl) resolve(request *http.Request) *identityModel.Identity {
	authHeader := request.Header.Get(constant.RequestHeaderAuthorization)
	if authHeader == "" {
		return nil
	}

	tokenString, err := jwt.ExtractTokenFromHeader(authHeader)
	if err != nil {
		return nil
	}

	claims, err := m.jwtService.ValidateToken(request.Context(), tokenString, jwt.AccessToken)
	if err != nil {
		return nil
	}

	identity, err := m.sessions.Get(request.Context(), claims.TokenID)
	if err != nil {
		log.Error().Err(err).Msg("failed to load session")

		return nil
	}

	return identity
}

// Guard evaluates the policy table for the matched route and translates the
// decision to HTTP: redirects become 303 with a Location header, denials 403.
// Non-active accounts keep read access to their own profile so they can see
// why they are locked out, and nothing else that requires auth.
func (m *authImpl) Guard(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()
		_, scope := m.otel.NewScope(ctx, constant.OtelHandlerScopeName, "guard.middleware")

		identity, _ := ctx.Value(constant.ContextKeyIdentity).(*identityModel.Identity)

		routePattern, routeID := m.matchRoute(request)
		entry := m.policies.Find(routePattern, request.Method)

		scope.SetAttributes(map[string]any{
			"middleware.type": "guard",
			"http.path":       routePattern,
			"http.method":     request.Method,
		})

		decision := guard.Evaluate(entry, identity)

		switch decision.Kind {
		case guard.DecisionRedirect:
			scope.SetAttribute("guard.redirect", decision.Target)
			scope.End()
			response.WithRedirect(writer, decision.Target)

			return
		case guard.DecisionDeny:
			err := failure.ForbiddenError
			scope.TraceError(err)
			scope.End()
			response.WithError(writer, err)

			return
		}

		if entry.RequiresAuth && identity != nil && !identity.AccountStatus.IsActive() && !ownStatusRoute(routePattern, request.Method, routeID, identity) {
			err := failure.Forbidden("account is " + string(identity.AccountStatus))
			scope.TraceError(err)
			scope.End()
			response.WithError(writer, err)

			return
		}

		scope.End()
		next.ServeHTTP(writer, request)
	})
}

// matchRoute resolves the chi route pattern for the request plus the bound
// {id} parameter. Guard middleware runs before routing, so the params are
// collected from a scratch route context, not the request's own.
func (m *authImpl) matchRoute(request *http.Request) (pattern, routeID string) {
	rctx := chi.RouteContext(request.Context())
	if rctx == nil {
		return request.URL.Path, ""
	}

	scratch := chi.NewRouteContext()
	if pattern := rctx.Routes.Find(scratch, request.Method, request.URL.Path); pattern != "" {
		return pattern, scratch.URLParam("id")
	}

	return request.URL.Path, ""
}

// ownStatusRoute is the single read a non-active account keeps: its own
// profile, so it can see why it is locked out. Any other id stays blocked.
func ownStatusRoute(routePattern, method, routeID string, identity *identityModel.Identity) bool {
	return method == http.MethodGet &&
		routePattern == "/v1/users/{id}" &&
		identity != nil &&
		routeID == identity.ID
}
