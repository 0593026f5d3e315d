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
	kafkaMocks "roam/infras/kafka/mocks"
	"roam/infras/otel/mocks"
	s3Mocks "roam/infras/s3/mocks"
	bookingMocks "roam/internal/domains/booking/mocks"
	"roam/internal/domains/booking/model"
	"roam/internal/domains/booking/model/dto"
	"roam/internal/domains/booking/service"
	identityModel "roam/internal/domains/identity/model"
	propertyMocks "roam/internal/domains/property/mocks"
	propertyModel "roam/internal/domains/property/model"
	tourMocks "roam/internal/domains/tour/mocks"
	tourModel "roam/internal/domains/tour/model"
	cacheMocks "roam/shared/cache/mocks"
	"roam/shared/constant"
	"roam/shared/failure"
	gModel "roam/shared/model"
	"roam/shared/timezone"
)

type bookingMockSet struct {
	repo  *bookingMocks.MockBooking
	props *propertyMocks.MockProperty
	tours *tourMocks.MockTour
	cache *cacheMocks.MockRedisCache
	kafka *kafkaMocks.MockClient
	s3    *s3Mocks.MockS3
}

func newBookingService(ctrl *gomock.Controller) (service.Booking, bookingMockSet) {
	set := bookingMockSet{
		repo:  bookingMocks.NewMockBooking(ctrl),
		props: propertyMocks.NewMockProperty(ctrl),
		tours: tourMocks.NewMockTour(ctrl),
		cache: cacheMocks.NewMockRedisCache(ctrl),
		kafka: kafkaMocks.NewMockClient(ctrl),
		s3:    s3Mocks.NewMockS3(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Kafka.Topics.BookingEvents = "booking-events"

	svc := service.New(set.repo, set.props, set.tours, cfg, set.cache, mocks.NewOtel(), set.kafka, set.s3)

	return svc, set
}

// expectAsync covers the cache invalidation and event publish that run off
// the request path after a successful write.
func (set bookingMockSet) expectAsync() {
	set.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	set.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	set.kafka.EXPECT().SendMessages(gomock.Any(), "booking-events", gomock.Any()).Return(nil).AnyTimes()
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

func openProperty() propertyModel.Property {
	return propertyModel.Property{
		ID:          "prop-1",
		HostID:      "host-1",
		NightlyRate: 100000,
		Currency:    "USD",
		MaxGuests:   4,
		Status:      constant.ResourceStatusAvailable,
	}
}

func storedBooking() model.Booking {
	return model.Booking{
		ID:            "booking-1",
		RenterID:      "renter-1",
		ResourceKind:  constant.ResourceKindProperty,
		ResourceID:    "prop-1",
		CheckIn:       time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		CheckOut:      time.Date(2026, 3, 13, 0, 0, 0, 0, time.UTC),
		Guests:        2,
		Status:        model.StatusPending,
		PaymentStatus: model.PaymentStatusPending,
		TotalPrice:    300000,
		Currency:      "USD",
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  "renter-1",
			ModifiedBy: "renter-1",
		},
	}
}

func TestBookingService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, set := newBookingService(ctrl)

	validReq := dto.CreateBookingRequest{
		ResourceKind: constant.ResourceKindProperty,
		ResourceID:   "prop-1",
		CheckIn:      "2026-03-10",
		CheckOut:     "2026-03-13",
		Guests:       2,
	}

	tests := []struct {
		name      string
		req       dto.CreateBookingRequest
		actor     *identityModel.Identity
		setupMock func()
		wantErr   bool
		wantCode  int
		check     func(t *testing.T, res dto.BookingResponse)
	}{
		{
			name:  "three nights on a property price the nightly rate times three",
			req:   validReq,
			actor: renter("renter-1"),
			setupMock: func() {
				set.props.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(openProperty(), nil)

				set.repo.EXPECT().
					FindOverlapping(gomock.Any(), constant.ResourceKindProperty, "prop-1", gomock.Any(), gomock.Any()).
					Return(nil, nil)

				set.repo.EXPECT().
					CreateIfAvailable(gomock.Any(), gomock.Any()).
					Return(nil, nil)

				set.expectAsync()
			},
			check: func(t *testing.T, res dto.BookingResponse) {
				assert.Equal(t, int64(300000), res.TotalPrice)
				assert.Equal(t, string(model.StatusPending), res.Status)
				assert.Equal(t, string(model.PaymentStatusPending), res.PaymentStatus)
				assert.Equal(t, "USD", res.Currency)
			},
		},
		{
			name: "tour bookings charge the flat fee regardless of range length",
			req: dto.CreateBookingRequest{
				ResourceKind: constant.ResourceKindTour,
				ResourceID:   "tour-1",
				CheckIn:      "2026-03-10",
				CheckOut:     "2026-03-13",
				Guests:       2,
			},
			actor: renter("renter-1"),
			setupMock: func() {
				set.tours.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(tourModel.Tour{
						ID:          "tour-1",
						HostID:      "host-1",
						Price:       75000,
						Currency:    "USD",
						MaxCapacity: 10,
						Status:      constant.ResourceStatusUpcoming,
					}, nil)

				set.repo.EXPECT().
					FindOverlapping(gomock.Any(), constant.ResourceKindTour, "tour-1", gomock.Any(), gomock.Any()).
					Return(nil, nil)

				set.repo.EXPECT().
					CreateIfAvailable(gomock.Any(), gomock.Any()).
					Return(nil, nil)

				set.expectAsync()
			},
			check: func(t *testing.T, res dto.BookingResponse) {
				assert.Equal(t, int64(75000), res.TotalPrice)
			},
		},
		{
			name:      "anonymous caller is rejected",
			req:       validReq,
			actor:     nil,
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusUnauthorized,
		},
		{
			name: "zero-night range is rejected",
			req: dto.CreateBookingRequest{
				ResourceKind: constant.ResourceKindProperty,
				ResourceID:   "prop-1",
				CheckIn:      "2026-03-10",
				CheckOut:     "2026-03-10",
				Guests:       2,
			},
			actor:     renter("renter-1"),
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "malformed date is rejected",
			req: dto.CreateBookingRequest{
				ResourceKind: constant.ResourceKindProperty,
				ResourceID:   "prop-1",
				CheckIn:      "10-03-2026",
				CheckOut:     "2026-03-13",
				Guests:       2,
			},
			actor:     renter("renter-1"),
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "guests above listing capacity are rejected",
			req: dto.CreateBookingRequest{
				ResourceKind: constant.ResourceKindProperty,
				ResourceID:   "prop-1",
				CheckIn:      "2026-03-10",
				CheckOut:     "2026-03-13",
				Guests:       9,
			},
			actor: renter("renter-1"),
			setupMock: func() {
				set.props.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(openProperty(), nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name:  "inactive listing cannot be booked",
			req:   validReq,
			actor: renter("renter-1"),
			setupMock: func() {
				closed := openProperty()
				closed.Status = constant.ResourceStatusInactive

				set.props.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(closed, nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name:  "missing listing returns not found",
			req:   validReq,
			actor: renter("renter-1"),
			setupMock: func() {
				set.props.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(propertyModel.Property{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name:  "overlapping booking blocks the range",
			req:   validReq,
			actor: renter("renter-1"),
			setupMock: func() {
				conflict := storedBooking()

				set.props.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(openProperty(), nil)

				set.repo.EXPECT().
					FindOverlapping(gomock.Any(), constant.ResourceKindProperty, "prop-1", gomock.Any(), gomock.Any()).
					Return(&conflict, nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name:  "conflict found inside the insert transaction blocks the range",
			req:   validReq,
			actor: renter("renter-1"),
			setupMock: func() {
				conflict := storedBooking()

				set.props.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(openProperty(), nil)

				set.repo.EXPECT().
					FindOverlapping(gomock.Any(), constant.ResourceKindProperty, "prop-1", gomock.Any(), gomock.Any()).
					Return(nil, nil)

				set.repo.EXPECT().
					CreateIfAvailable(gomock.Any(), gomock.Any()).
					Return(&conflict, nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name:  "repository error propagates",
			req:   validReq,
			actor: renter("renter-1"),
			setupMock: func() {
				set.props.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(openProperty(), nil)

				// Idempotent read is retried once before giving up.
				set.repo.EXPECT().
					FindOverlapping(gomock.Any(), constant.ResourceKindProperty, "prop-1", gomock.Any(), gomock.Any()).
					Return(nil, errors.New("database error")).
					Times(2)
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

func TestBookingService_UpdateStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, set := newBookingService(ctrl)

	tests := []struct {
		name      string
		status    string
		actor     *identityModel.Identity
		setupMock func()
		wantErr   bool
		wantCode  int
		check     func(t *testing.T, res dto.BookingResponse)
	}{
		{
			name:   "host of the listing confirms a pending booking",
			status: string(model.StatusConfirmed),
			actor:  host("host-1"),
			setupMock: func() {
				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(storedBooking(), nil)

				set.props.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(openProperty(), nil)

				set.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				set.expectAsync()
			},
			check: func(t *testing.T, res dto.BookingResponse) {
				assert.Equal(t, string(model.StatusConfirmed), res.Status)
			},
		},
		{
			name:   "renter cannot confirm their own booking",
			status: string(model.StatusConfirmed),
			actor:  renter("renter-1"),
			setupMock: func() {
				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(storedBooking(), nil)
			},
			wantErr:  true,
			wantCode: http.StatusForbidden,
		},
		{
			name:   "host of a different listing cannot touch the booking",
			status: string(model.StatusConfirmed),
			actor:  host("host-2"),
			setupMock: func() {
				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(storedBooking(), nil)

				set.props.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(openProperty(), nil)
			},
			wantErr:  true,
			wantCode: http.StatusForbidden,
		},
		{
			name:   "renter cancelling a paid booking also refunds it",
			status: string(model.StatusCancelled),
			actor:  renter("renter-1"),
			setupMock: func() {
				paid := storedBooking()
				paid.Status = model.StatusConfirmed
				paid.PaymentStatus = model.PaymentStatusPaid

				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(paid, nil)

				set.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				set.expectAsync()
			},
			check: func(t *testing.T, res dto.BookingResponse) {
				assert.Equal(t, string(model.StatusCancelled), res.Status)
				assert.Equal(t, string(model.PaymentStatusRefunded), res.PaymentStatus)
			},
		},
		{
			name:   "repeated cancel of a cancelled booking returns it unchanged",
			status: string(model.StatusCancelled),
			actor:  admin(),
			setupMock: func() {
				cancelled := storedBooking()
				cancelled.Status = model.StatusCancelled

				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(cancelled, nil)
			},
			check: func(t *testing.T, res dto.BookingResponse) {
				assert.Equal(t, string(model.StatusCancelled), res.Status)
			},
		},
		{
			name:   "completed booking rejects further moves",
			status: string(model.StatusConfirmed),
			actor:  admin(),
			setupMock: func() {
				done := storedBooking()
				done.Status = model.StatusCompleted

				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(done, nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name:   "pending cannot jump straight to completed",
			status: string(model.StatusCompleted),
			actor:  admin(),
			setupMock: func() {
				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(storedBooking(), nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name:   "unknown booking returns not found",
			status: string(model.StatusConfirmed),
			actor:  admin(),
			setupMock: func() {
				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.UpdateStatus(context.Background(), "booking-1", dto.UpdateStatusRequest{Status: tt.status}, tt.actor)

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

func TestBookingService_UpdatePaymentStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, set := newBookingService(ctrl)

	tests := []struct {
		name      string
		status    string
		actor     *identityModel.Identity
		setupMock func()
		wantErr   bool
		wantCode  int
		check     func(t *testing.T, res dto.BookingResponse)
	}{
		{
			name:   "host of the listing marks the booking paid",
			status: string(model.PaymentStatusPaid),
			actor:  host("host-1"),
			setupMock: func() {
				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(storedBooking(), nil)

				set.props.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(openProperty(), nil)

				set.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				set.expectAsync()
			},
			check: func(t *testing.T, res dto.BookingResponse) {
				assert.Equal(t, string(model.PaymentStatusPaid), res.PaymentStatus)
			},
		},
		{
			name:   "renter cannot flip their own payment status",
			status: string(model.PaymentStatusPaid),
			actor:  renter("renter-1"),
			setupMock: func() {
				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(storedBooking(), nil)

				set.props.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(openProperty(), nil)
			},
			wantErr:  true,
			wantCode: http.StatusForbidden,
		},
		{
			name:   "admin refunds a paid booking",
			status: string(model.PaymentStatusRefunded),
			actor:  admin(),
			setupMock: func() {
				paid := storedBooking()
				paid.PaymentStatus = model.PaymentStatusPaid

				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(paid, nil)

				set.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				set.expectAsync()
			},
			check: func(t *testing.T, res dto.BookingResponse) {
				assert.Equal(t, string(model.PaymentStatusRefunded), res.PaymentStatus)
			},
		},
		{
			name:   "failed payment may be retried back to pending",
			status: string(model.PaymentStatusPending),
			actor:  admin(),
			setupMock: func() {
				failed := storedBooking()
				failed.PaymentStatus = model.PaymentStatusFailed

				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(failed, nil)

				set.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				set.expectAsync()
			},
			check: func(t *testing.T, res dto.BookingResponse) {
				assert.Equal(t, string(model.PaymentStatusPending), res.PaymentStatus)
			},
		},
		{
			name:   "repeated refund returns the booking unchanged",
			status: string(model.PaymentStatusRefunded),
			actor:  admin(),
			setupMock: func() {
				refunded := storedBooking()
				refunded.PaymentStatus = model.PaymentStatusRefunded

				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(refunded, nil)
			},
			check: func(t *testing.T, res dto.BookingResponse) {
				assert.Equal(t, string(model.PaymentStatusRefunded), res.PaymentStatus)
			},
		},
		{
			name:   "pending cannot be refunded",
			status: string(model.PaymentStatusRefunded),
			actor:  admin(),
			setupMock: func() {
				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(storedBooking(), nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.UpdatePaymentStatus(context.Background(), "booking-1", dto.UpdatePaymentStatusRequest{PaymentStatus: tt.status}, tt.actor)

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

func TestBookingService_Cancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, set := newBookingService(ctrl)

	tests := []struct {
		name      string
		actor     *identityModel.Identity
		setupMock func()
		wantErr   bool
		wantCode  int
		check     func(t *testing.T, res dto.BookingResponse)
	}{
		{
			name:  "renter cancels their own booking",
			actor: renter("renter-1"),
			setupMock: func() {
				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(storedBooking(), nil)

				set.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				set.expectAsync()
			},
			check: func(t *testing.T, res dto.BookingResponse) {
				assert.Equal(t, string(model.StatusCancelled), res.Status)
			},
		},
		{
			name:  "another renter cannot cancel it",
			actor: renter("renter-2"),
			setupMock: func() {
				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(storedBooking(), nil)
			},
			wantErr:  true,
			wantCode: http.StatusForbidden,
		},
		{
			name:  "host cannot cancel on the renter's behalf",
			actor: host("host-1"),
			setupMock: func() {
				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(storedBooking(), nil)
			},
			wantErr:  true,
			wantCode: http.StatusForbidden,
		},
		{
			name:  "cancelling an already cancelled booking is a no-op",
			actor: renter("renter-1"),
			setupMock: func() {
				cancelled := storedBooking()
				cancelled.Status = model.StatusCancelled

				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(cancelled, nil)
			},
			check: func(t *testing.T, res dto.BookingResponse) {
				assert.Equal(t, string(model.StatusCancelled), res.Status)
			},
		},
		{
			name:  "completed bookings cannot be cancelled",
			actor: admin(),
			setupMock: func() {
				done := storedBooking()
				done.Status = model.StatusCompleted

				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(done, nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Cancel(context.Background(), "booking-1", tt.actor)

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

func TestBookingService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, set := newBookingService(ctrl)

	tests := []struct {
		name      string
		actor     *identityModel.Identity
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name:  "renter reads their own booking",
			actor: renter("renter-1"),
			setupMock: func() {
				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(storedBooking(), nil)
			},
		},
		{
			name:  "host of the listing reads the booking",
			actor: host("host-1"),
			setupMock: func() {
				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(storedBooking(), nil)

				set.props.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(openProperty(), nil)
			},
		},
		{
			name:  "unrelated renter is rejected",
			actor: renter("renter-2"),
			setupMock: func() {
				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(storedBooking(), nil)

				set.props.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(openProperty(), nil)
			},
			wantErr:  true,
			wantCode: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			_, err := svc.Get(context.Background(), "booking-1", tt.actor)

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

func TestBookingService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, set := newBookingService(ctrl)

	tests := []struct {
		name      string
		actor     *identityModel.Identity
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name:  "admin deletes a booking",
			actor: admin(),
			setupMock: func() {
				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(storedBooking(), nil)

				set.repo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)

				set.expectAsync()
			},
		},
		{
			name:      "host cannot delete bookings",
			actor:     host("host-1"),
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusForbidden,
		},
		{
			name:      "renter cannot delete bookings",
			actor:     renter("renter-1"),
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Delete(context.Background(), "booking-1", tt.actor)

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
