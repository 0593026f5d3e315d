package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"roam/config"
	"roam/infras/jwt"
	jwtMocks "roam/infras/jwt/mocks"
	"roam/infras/otel/mocks"
	"roam/internal/domains/auth/model/dto"
	"roam/internal/domains/auth/service"
	identityModel "roam/internal/domains/identity/model"
	sessionMocks "roam/internal/domains/identity/session/mocks"
	userMocks "roam/internal/domains/user/mocks"
	userModel "roam/internal/domains/user/model"
	"roam/shared/constant"
	gModel "roam/shared/model"
	"roam/shared/timezone"
)

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)
	mockSessions := sessionMocks.NewMockStore(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockUserRepo, cfg, mockOtel, mockJWT, mockSessions)

	tests := []struct {
		name      string
		req       dto.RegisterRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "new account awaits verification",
			req: dto.RegisterRequest{
				Email:    "new@example.com",
				Password: "password123",
			},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockUserRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, user userModel.User) error {
						assert.Equal(t, string(identityModel.AccountStatusPendingVerification), user.AccountStatus)
						assert.Equal(t, constant.RoleUser, user.Role)
						assert.NotEqual(t, "password123", user.Password)

						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "host role is kept",
			req: dto.RegisterRequest{
				Email:    "host@example.com",
				Password: "password123",
				Role:     constant.RoleHost,
			},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockUserRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, user userModel.User) error {
						assert.Equal(t, constant.RoleHost, user.Role)
						assert.Equal(t, string(identityModel.AccountStatusPendingVerification), user.AccountStatus)

						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "email already registered",
			req: dto.RegisterRequest{
				Email:    "taken@example.com",
				Password: "password123",
			},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr: true,
		},
		{
			name: "existence check fails",
			req: dto.RegisterRequest{
				Email:    "new@example.com",
				Password: "password123",
			},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Register(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)
	mockSessions := sessionMocks.NewMockStore(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockUserRepo, cfg, mockOtel, mockJWT, mockSessions)

	validUser := userModel.User{
		ID:            "user-id-123",
		Email:         "test@example.com",
		Password:      "$2a$10$92IXUNpkjO0rOQ5byMi.Ye4oKoEa3Ro9llC/.og/at2.uheWG/igi", // "password" hashed
		Role:          constant.RoleUser,
		AccountStatus: string(identityModel.AccountStatusActive),
		FullName:      stringPtr("Test User"),
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  "system",
			ModifiedBy: "system",
		},
	}

	tokenPair := &jwt.TokenPair{
		AccessToken:   "access-token",
		RefreshToken:  "refresh-token",
		AccessTokenID: "token-id-456",
	}

	tests := []struct {
		name      string
		req       dto.LoginRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful login",
			req: dto.LoginRequest{
				Email:    "test@example.com",
				Password: "password",
			},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(validUser, nil)

				mockJWT.EXPECT().
					GenerateTokenPair(gomock.Any(), validUser.ID, validUser.Email, validUser.Role, validUser.AccountStatus).
					Return(tokenPair, nil)

				mockSessions.EXPECT().
					Set(gomock.Any(), identityModel.Identity{
						ID:            validUser.ID,
						Email:         validUser.Email,
						Role:          identityModel.RoleUser,
						AccountStatus: identityModel.AccountStatusActive,
						TokenID:       tokenPair.AccessTokenID,
					}).
					Return(nil)

				mockUserRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "user not found",
			req: dto.LoginRequest{
				Email:    "nonexistent@example.com",
				Password: "password",
			},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(userModel.User{}, errors.New("user not found"))
			},
			wantErr: true,
		},
		{
			name: "wrong password",
			req: dto.LoginRequest{
				Email:    "test@example.com",
				Password: "wrongpassword",
			},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(validUser, nil)
			},
			wantErr: true,
		},
		{
			name: "deleted account cannot log in",
			req: dto.LoginRequest{
				Email:    "test@example.com",
				Password: "password",
			},
			setupMock: func() {
				deletedUser := validUser
				deletedUser.AccountStatus = string(identityModel.AccountStatusDeleted)

				mockUserRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(deletedUser, nil)
			},
			wantErr: true,
		},
		{
			name: "suspended account may still authenticate",
			req: dto.LoginRequest{
				Email:    "test@example.com",
				Password: "password",
			},
			setupMock: func() {
				suspendedUser := validUser
				suspendedUser.AccountStatus = string(identityModel.AccountStatusSuspended)

				mockUserRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(suspendedUser, nil)

				mockJWT.EXPECT().
					GenerateTokenPair(gomock.Any(), validUser.ID, validUser.Email, validUser.Role, string(identityModel.AccountStatusSuspended)).
					Return(tokenPair, nil)

				mockSessions.EXPECT().
					Set(gomock.Any(), gomock.Any()).
					Return(nil)

				mockUserRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "unknown account status stored as pending verification",
			req: dto.LoginRequest{
				Email:    "test@example.com",
				Password: "password",
			},
			setupMock: func() {
				oddUser := validUser
				oddUser.AccountStatus = "something-new"

				mockUserRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(oddUser, nil)

				mockJWT.EXPECT().
					GenerateTokenPair(gomock.Any(), validUser.ID, validUser.Email, validUser.Role, string(identityModel.AccountStatusPendingVerification)).
					Return(tokenPair, nil)

				mockSessions.EXPECT().
					Set(gomock.Any(), identityModel.Identity{
						ID:            validUser.ID,
						Email:         validUser.Email,
						Role:          identityModel.RoleUser,
						AccountStatus: identityModel.AccountStatusPendingVerification,
						TokenID:       tokenPair.AccessTokenID,
					}).
					Return(nil)

				mockUserRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "token generation error",
			req: dto.LoginRequest{
				Email:    "test@example.com",
				Password: "password",
			},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(validUser, nil)

				mockJWT.EXPECT().
					GenerateTokenPair(gomock.Any(), validUser.ID, validUser.Email, validUser.Role, validUser.AccountStatus).
					Return(nil, errors.New("token generation failed"))
			},
			wantErr: true,
		},
		{
			name: "session store error",
			req: dto.LoginRequest{
				Email:    "test@example.com",
				Password: "password",
			},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(validUser, nil)

				mockJWT.EXPECT().
					GenerateTokenPair(gomock.Any(), validUser.ID, validUser.Email, validUser.Role, validUser.AccountStatus).
					Return(tokenPair, nil)

				mockSessions.EXPECT().
					Set(gomock.Any(), gomock.Any()).
					Return(errors.New("redis down"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.Background()
			result, err := svc.Login(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, result.AccessToken)
				assert.NotEmpty(t, result.RefreshToken)
			}
		})
	}
}

func TestAuthService_RefreshToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)
	mockSessions := sessionMocks.NewMockStore(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockUserRepo, cfg, mockOtel, mockJWT, mockSessions)

	validClaims := &jwt.Claims{
		UserID:        "user-id-123",
		Email:         "test@example.com",
		Role:          constant.RoleHost,
		AccountStatus: string(identityModel.AccountStatusActive),
		TokenID:       "refresh-token-id",
	}

	tests := []struct {
		name      string
		req       dto.RefreshTokenRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful token refresh",
			req: dto.RefreshTokenRequest{
				RefreshToken: "valid-refresh-token",
			},
			setupMock: func() {
				mockJWT.EXPECT().
					ValidateToken(gomock.Any(), "valid-refresh-token", jwt.RefreshToken).
					Return(validClaims, nil)

				mockJWT.EXPECT().
					GenerateTokenPair(gomock.Any(), validClaims.UserID, validClaims.Email, validClaims.Role, validClaims.AccountStatus).
					Return(&jwt.TokenPair{
						AccessToken:   "new-access-token",
						RefreshToken:  "new-refresh-token",
						AccessTokenID: "new-token-id",
					}, nil)

				mockSessions.EXPECT().
					Set(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "invalid refresh token",
			req: dto.RefreshTokenRequest{
				RefreshToken: "invalid-refresh-token",
			},
			setupMock: func() {
				mockJWT.EXPECT().
					ValidateToken(gomock.Any(), "invalid-refresh-token", jwt.RefreshToken).
					Return(nil, errors.New("invalid token"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.Background()
			result, err := svc.RefreshToken(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, result.AccessToken)
				assert.NotEmpty(t, result.RefreshToken)
			}
		})
	}
}

func TestAuthService_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)
	mockSessions := sessionMocks.NewMockStore(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockUserRepo, &config.Config{}, mockOtel, mockJWT, mockSessions)

	t.Run("clears the session", func(t *testing.T) {
		mockSessions.EXPECT().
			Clear(gomock.Any(), "token-id-456").
			Return(nil)

		assert.NoError(t, svc.Logout(context.Background(), "token-id-456"))
	})

	t.Run("propagates store errors", func(t *testing.T) {
		mockSessions.EXPECT().
			Clear(gomock.Any(), "token-id-456").
			Return(errors.New("redis down"))

		assert.Error(t, svc.Logout(context.Background(), "token-id-456"))
	})
}

func TestAuthService_ChangePassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)
	mockSessions := sessionMocks.NewMockStore(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockUserRepo, cfg, mockOtel, mockJWT, mockSessions)

	validUser := userModel.User{
		ID:            "user-id-123",
		Email:         "test@example.com",
		Password:      "$2a$10$92IXUNpkjO0rOQ5byMi.Ye4oKoEa3Ro9llC/.og/at2.uheWG/igi", // "password" hashed
		Role:          constant.RoleUser,
		AccountStatus: string(identityModel.AccountStatusActive),
	}

	tests := []struct {
		name      string
		req       dto.ChangePasswordRequest
		userID    string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful password change",
			req: dto.ChangePasswordRequest{
				CurrentPassword: "password",
				NewPassword:     "newpassword123",
			},
			userID: "user-id-123",
			setupMock: func() {
				mockUserRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(validUser, nil)

				mockUserRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "user not found",
			req: dto.ChangePasswordRequest{
				CurrentPassword: "password",
				NewPassword:     "newpassword123",
			},
			userID: "nonexistent-id",
			setupMock: func() {
				mockUserRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(userModel.User{}, nil)
			},
			wantErr: true,
		},
		{
			name: "wrong current password",
			req: dto.ChangePasswordRequest{
				CurrentPassword: "wrongpassword",
				NewPassword:     "newpassword123",
			},
			userID: "user-id-123",
			setupMock: func() {
				mockUserRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(validUser, nil)
			},
			wantErr: true,
		},
		{
			name: "update password error",
			req: dto.ChangePasswordRequest{
				CurrentPassword: "password",
				NewPassword:     "newpassword123",
			},
			userID: "user-id-123",
			setupMock: func() {
				mockUserRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(validUser, nil)

				mockUserRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("update error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.ChangePassword(context.Background(), tt.req, tt.userID)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func stringPtr(s string) *string {
	return &s
}
