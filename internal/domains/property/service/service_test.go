package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"roam/config"
	"roam/infras/otel/mocks"
	identityModel "roam/internal/domains/identity/model"
	propertyMocks "roam/internal/domains/property/mocks"
	"roam/internal/domains/property/model"
	"roam/internal/domains/property/model/dto"
	"roam/internal/domains/property/service"
	cacheMocks "roam/shared/cache/mocks"
	"roam/shared/constant"
	"roam/shared/failure"
	gModel "roam/shared/model"
	"roam/shared/timezone"
)

type propertyMockSet struct {
	repo  *propertyMocks.MockProperty
	cache *cacheMocks.MockRedisCache
}

func newPropertyService(ctrl *gomock.Controller) (service.Property, propertyMockSet) {
	set := propertyMockSet{
		repo:  propertyMocks.NewMockProperty(ctrl),
		cache: cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(set.repo, cfg, set.cache, mocks.NewOtel())

	return svc, set
}

func (set propertyMockSet) expectAsync() {
	set.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	set.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	set.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

func admin() *identityModel.Identity {
	return &identityModel.Identity{ID: "admin-1", Role: identityModel.RoleAdmin, AccountStatus: identityModel.AccountStatusActive}
}

func host(id string) *identityModel.Identity {
	return &identityModel.Identity{ID: id, Role: identityModel.RoleHost, AccountStatus: identityModel.AccountStatusActive}
}

func renter(id string) *identityModel.Identity {
	return &identityModel.Identity{ID: id, Role: identityModel.RoleUser, AccountStatus: identityModel.AccountStatusActive}
}

func storedProperty() model.Property {
	return model.Property{
		ID:          "prop-1",
		HostID:      "host-1",
		Title:       "Beachside Cottage",
		NightlyRate: 100000,
		Currency:    "USD",
		MaxGuests:   4,
		Status:      constant.ResourceStatusAvailable,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  "host-1",
			ModifiedBy: "host-1",
		},
	}
}

func TestPropertyService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, set := newPropertyService(ctrl)

	validReq := dto.CreatePropertyRequest{
		Title:       "Beachside Cottage",
		NightlyRate: 100000,
		Currency:    "USD",
		MaxGuests:   4,
	}

	tests := []struct {
		name      string
		req       dto.CreatePropertyRequest
		actor     *identityModel.Identity
		setupMock func()
		wantErr   bool
		wantCode  int
		check     func(t *testing.T, res dto.PropertyResponse)
	}{
		{
			name:  "host creates a listing owned by themselves",
			req:   validReq,
			actor: host("host-1"),
			setupMock: func() {
				set.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				set.expectAsync()
			},
			check: func(t *testing.T, res dto.PropertyResponse) {
				assert.Equal(t, "host-1", res.HostID)
				assert.Equal(t, constant.ResourceStatusAvailable, res.Status)
			},
		},
		{
			name:      "regular user cannot create a listing",
			req:       validReq,
			actor:     renter("renter-1"),
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusForbidden,
		},
		{
			name:      "missing identity is rejected",
			req:       validReq,
			actor:     nil,
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusUnauthorized,
		},
		{
			name:  "repository error is propagated",
			req:   validReq,
			actor: host("host-1"),
			setupMock: func() {
				set.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("connection reset"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Create(context.Background(), tt.req, tt.actor)
			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}

				return
			}

			assert.NoError(t, err)

			if tt.check != nil {
				tt.check(t, res)
			}
		})
	}
}

func TestPropertyService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, set := newPropertyService(ctrl)

	tests := []struct {
		name      string
		id        string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "cache miss falls through to the repository",
			id:   "prop-1",
			setupMock: func() {
				set.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(storedProperty(), nil)

				set.expectAsync()
			},
		},
		{
			name: "unknown listing returns not found",
			id:   "prop-404",
			setupMock: func() {
				set.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Property{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			_, err := svc.Get(context.Background(), tt.id)
			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestPropertyService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, set := newPropertyService(ctrl)

	title := "Renamed Cottage"

	tests := []struct {
		name      string
		req       dto.UpdatePropertyRequest
		id        string
		actor     *identityModel.Identity
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name:  "owner updates their listing",
			req:   dto.UpdatePropertyRequest{Title: &title},
			id:    "prop-1",
			actor: host("host-1"),
			setupMock: func() {
				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(storedProperty(), nil)

				set.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				set.expectAsync()
			},
		},
		{
			name:  "admin updates any listing",
			req:   dto.UpdatePropertyRequest{Title: &title},
			id:    "prop-1",
			actor: admin(),
			setupMock: func() {
				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(storedProperty(), nil)

				set.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				set.expectAsync()
			},
		},
		{
			name:  "another host cannot update the listing",
			req:   dto.UpdatePropertyRequest{Title: &title},
			id:    "prop-1",
			actor: host("host-2"),
			setupMock: func() {
				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(storedProperty(), nil)
			},
			wantErr:  true,
			wantCode: http.StatusForbidden,
		},
		{
			name:      "empty request is rejected",
			req:       dto.UpdatePropertyRequest{},
			id:        "prop-1",
			actor:     host("host-1"),
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name:  "unknown listing returns not found",
			req:   dto.UpdatePropertyRequest{Title: &title},
			id:    "prop-404",
			actor: host("host-1"),
			setupMock: func() {
				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Property{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Update(context.Background(), tt.req, tt.id, tt.actor)
			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestPropertyService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, set := newPropertyService(ctrl)

	tests := []struct {
		name      string
		actor     *identityModel.Identity
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name:  "owner deletes their listing",
			actor: host("host-1"),
			setupMock: func() {
				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(storedProperty(), nil)

				set.repo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)

				set.expectAsync()
			},
		},
		{
			name:  "another host cannot delete the listing",
			actor: host("host-2"),
			setupMock: func() {
				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(storedProperty(), nil)
			},
			wantErr:  true,
			wantCode: http.StatusForbidden,
		},
		{
			name:  "renter cannot delete the listing",
			actor: renter("renter-1"),
			setupMock: func() {
				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(storedProperty(), nil)
			},
			wantErr:  true,
			wantCode: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Delete(context.Background(), "prop-1", tt.actor)
			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}

				return
			}

			assert.NoError(t, err)
		})
	}
}
