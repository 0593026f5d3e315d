package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"roam/config"
	"roam/infras/jwt"
	jwtMocks "roam/infras/jwt/mocks"
	"roam/infras/otel/mocks"
	identityModel "roam/internal/domains/identity/model"
	sessionMocks "roam/internal/domains/identity/session/mocks"
	"roam/policies"
	"roam/shared/constant"
	"roam/transport/http/middleware"
)

// guardedMux builds a router with the identity and guard middleware in front
// of stub handlers, backed by a session that resolves the given identity.
func guardedMux(ctrl *gomock.Controller, identity *identityModel.Identity) *chi.Mux {
	jwtService := jwtMocks.NewMockJWT(ctrl)
	sessions := sessionMocks.NewMockStore(ctrl)

	if identity != nil {
		jwtService.EXPECT().
			ValidateToken(gomock.Any(), "token-abc", jwt.AccessToken).
			Return(&jwt.Claims{UserID: identity.ID, TokenID: identity.TokenID}, nil).
			AnyTimes()

		sessions.EXPECT().
			Get(gomock.Any(), identity.TokenID).
			Return(identity, nil).
			AnyTimes()
	}

	auth := middleware.NewAuthMiddleware(jwtService, sessions, policies.Get(), mocks.NewOtel(), &config.Config{})

	mux := chi.NewRouter()
	mux.Use(auth.Identity)
	mux.Use(auth.Guard)

	ok := func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusOK)
	}

	mux.Get("/v1/users/{id}", ok)
	mux.Get("/v1/properties", ok)
	mux.Post("/v1/bookings", ok)

	return mux
}

func suspended(id string) *identityModel.Identity {
	return &identityModel.Identity{
		ID:            id,
		Role:          identityModel.RoleUser,
		AccountStatus: identityModel.AccountStatusSuspended,
		TokenID:       "tok-1",
	}
}

func active(id string) *identityModel.Identity {
	return &identityModel.Identity{
		ID:            id,
		Role:          identityModel.RoleUser,
		AccountStatus: identityModel.AccountStatusActive,
		TokenID:       "tok-1",
	}
}

func TestGuardMiddleware_NonActiveAccounts(t *testing.T) {
	tests := []struct {
		name         string
		identity     *identityModel.Identity
		method       string
		path         string
		wantStatus   int
		wantLocation string
	}{
		{
			name:       "suspended account reads its own profile",
			identity:   suspended("user-1"),
			method:     http.MethodGet,
			path:       "/v1/users/user-1",
			wantStatus: http.StatusOK,
		},
		{
			name:       "suspended account cannot read another profile",
			identity:   suspended("user-1"),
			method:     http.MethodGet,
			path:       "/v1/users/user-2",
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "suspended account cannot create a booking",
			identity:   suspended("user-1"),
			method:     http.MethodPost,
			path:       "/v1/bookings",
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "active account reads another profile",
			identity:   active("user-1"),
			method:     http.MethodGet,
			path:       "/v1/users/user-2",
			wantStatus: http.StatusOK,
		},
		{
			name:         "anonymous caller is redirected to login",
			identity:     nil,
			method:       http.MethodPost,
			path:         "/v1/bookings",
			wantStatus:   http.StatusSeeOther,
			wantLocation: constant.RouteLogin,
		},
		{
			name:       "anonymous caller reaches a public route",
			identity:   nil,
			method:     http.MethodGet,
			path:       "/v1/properties",
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mux := guardedMux(ctrl, tt.identity)

			request := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.identity != nil {
				request.Header.Set(constant.RequestHeaderAuthorization, "Bearer token-abc")
			}

			recorder := httptest.NewRecorder()
			mux.ServeHTTP(recorder, request)

			assert.Equal(t, tt.wantStatus, recorder.Code)

			if tt.wantLocation != "" {
				assert.Equal(t, tt.wantLocation, recorder.Header().Get(constant.ResponseHeaderLocation))
			}
		})
	}
}
