package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"

	"roam/config"
	"roam/infras/kafka"
	"roam/infras/otel"
	"roam/infras/s3"
	"roam/internal/domains/booking/model"
	"roam/internal/domains/booking/model/dto"
	"roam/internal/domains/booking/repository"
	identityModel "roam/internal/domains/identity/model"
	propertyModel "roam/internal/domains/property/model"
	propertyRepo "roam/internal/domains/property/repository"
	tourModel "roam/internal/domains/tour/model"
	tourRepo "roam/internal/domains/tour/repository"
	"roam/shared"
	"roam/shared/cache"
	"roam/shared/constant"
	gDto "roam/shared/dto"
	"roam/shared/failure"
	"roam/shared/money"
	"roam/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"

	evidenceDirectory = "payment-evidence"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest, actor *identityModel.Identity) (dto.BookingResponse, error)
	Get(ctx context.Context, id string, actor *identityModel.Identity) (dto.BookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	GetMine(ctx context.Context, req gDto.QueryParams, actor *identityModel.Identity) (dto.GetBookingsResponse, error)
	UpdateStatus(ctx context.Context, id string, req dto.UpdateStatusRequest, actor *identityModel.Identity) (dto.BookingResponse, error)
	UpdatePaymentStatus(ctx context.Context, id string, req dto.UpdatePaymentStatusRequest, actor *identityModel.Identity) (dto.BookingResponse, error)
	Cancel(ctx context.Context, id string, actor *identityModel.Identity) (dto.BookingResponse, error)
	AddPaymentEvidence(ctx context.Context, id string, actor *identityModel.Identity, file multipart.File, fileHeader *multipart.FileHeader) (dto.BookingResponse, error)
	Delete(ctx context.Context, id string, actor *identityModel.Identity) error
}

// resourceInfo is the slice of a listing the orchestrator needs: who owns
// it, what it costs, how many guests it takes, and whether it accepts
// bookings at all.
type resourceInfo struct {
	id        string
	hostID    string
	rate      money.Amount
	currency  string
	maxGuests int
	status    string
}

func (r resourceInfo) open() bool {
	return r.status == constant.ResourceStatusAvailable || r.status == constant.ResourceStatusUpcoming
}

type serviceImpl struct {
	repo     repository.Booking
	props    propertyRepo.Property
	tours    tourRepo.Tour
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
	producer kafka.Client
	storage  s3.S3
}

func New(
	repo repository.Booking,
	props propertyRepo.Property,
	tours tourRepo.Tour,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	producer kafka.Client,
	storage s3.S3,
) Booking {
	return &serviceImpl{
		repo:     repo,
		props:    props,
		tours:    tours,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
		producer: producer,
		storage:  storage,
	}
}

func (s *serviceImpl) resource(ctx context.Context, kind, id string) (resourceInfo, error) {
	switch kind {
	case constant.ResourceKindProperty:
		property, err := s.props.Get(ctx, shared.FilterByID(id, propertyModel.FieldID, propertyModel.TableName))
		if err != nil {
			return resourceInfo{}, fmt.Errorf("failed to get property: %w", err)
		}

		if property.ID == "" {
			return resourceInfo{}, failure.NotFound("property not found")
		}

		return resourceInfo{
			id:        property.ID,
			hostID:    property.HostID,
			rate:      property.NightlyRate,
			currency:  property.Currency,
			maxGuests: property.MaxGuests,
			status:    property.Status,
		}, nil
	case constant.ResourceKindTour:
		tour, err := s.tours.Get(ctx, shared.FilterByID(id, tourModel.FieldID, tourModel.TableName))
		if err != nil {
			return resourceInfo{}, fmt.Errorf("failed to get tour: %w", err)
		}

		if tour.ID == "" {
			return resourceInfo{}, failure.NotFound("tour not found")
		}

		return resourceInfo{
			id:        tour.ID,
			hostID:    tour.HostID,
			rate:      tour.Price,
			currency:  tour.Currency,
			maxGuests: tour.MaxCapacity,
			status:    tour.Status,
		}, nil
	}

	return resourceInfo{}, failure.BadRequestFromString("unknown resource kind")
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest, actor *identityModel.Identity) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	if actor == nil {
		return res, failure.Unauthorized("missing identity")
	}

	checkIn, checkOut, err := req.ParseDates()
	if err != nil {
		return res, failure.BadRequestFromString("dates must use the YYYY-MM-DD format")
	}

	if err = model.ValidateRange(checkIn, checkOut); err != nil {
		return res, err
	}

	resource, err := s.resource(ctx, req.ResourceKind, req.ResourceID)
	if err != nil {
		return res, err
	}

	if req.Guests > resource.maxGuests {
		return res, failure.BadRequestFromString(fmt.Sprintf("guests exceed the listing capacity of %d", resource.maxGuests))
	}

	if !resource.open() {
		return res, failure.UnavailableFromString("listing is not open for booking")
	}

	conflict, err := s.repo.FindOverlapping(ctx, req.ResourceKind, req.ResourceID, checkIn, checkOut)
	if err != nil {
		// Availability reads are idempotent, so one retry is safe. Writes
		// below are never retried.
		conflict, err = s.repo.FindOverlapping(ctx, req.ResourceKind, req.ResourceID, checkIn, checkOut)
	}

	if err != nil {
		log.Error().Err(err).Msg("failed to check availability")

		return res, fmt.Errorf("failed to check availability: %w", err)
	}

	if conflict != nil {
		return res, failure.NewUnavailable(conflict.CheckIn, conflict.CheckOut)
	}

	total := model.TotalPrice(req.ResourceKind, resource.rate, checkIn, checkOut)
	booking := req.ToModel(actor.ID, checkIn, checkOut, total, resource.currency)

	// Re-checked inside the insert transaction: the pre-check above can race
	// with a concurrent create for the same dates.
	conflict, err = s.repo.CreateIfAvailable(ctx, booking)
	if err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	if conflict != nil {
		return res, failure.NewUnavailable(conflict.CheckIn, conflict.CheckOut)
	}

	res.FromModel(booking)
	s.afterChange(ctx, constant.EventBookingCreated, booking)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string, actor *identityModel.Identity) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.load(ctx, id)
	if err != nil {
		return res, err
	}

	if err = s.canView(ctx, booking, actor); err != nil {
		return res, err
	}

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetMine(ctx context.Context, req gDto.QueryParams, actor *identityModel.Identity) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetMine")
	defer scope.End()
	defer scope.TraceIfError(err)

	if actor == nil {
		return res, failure.Unauthorized("missing identity")
	}

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldRenterID,
				Operator: gDto.FilterOperatorEq,
				Value:    actor.ID,
				Table:    model.TableName,
			},
		},
	}

	return s.GetAll(ctx, req, filter)
}

func (s *serviceImpl) UpdateStatus(ctx context.Context, id string, req dto.UpdateStatusRequest, actor *identityModel.Identity) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.load(ctx, id)
	if err != nil {
		return res, err
	}

	next := model.Status(req.Status)

	if err = s.canChangeStatus(ctx, booking, next, actor); err != nil {
		return res, err
	}

	// Retried terminal requests are answered with the current state instead
	// of an error.
	if booking.Status == next && next.IsTerminal() {
		res.FromModel(booking)

		return res, nil
	}

	if next == model.StatusCancelled {
		err = booking.Cancel()
	} else {
		err = booking.ApplyStatus(next)
	}

	if err != nil {
		return res, err
	}

	if err = s.persistStatus(ctx, booking, actor.ID); err != nil {
		return res, err
	}

	res.FromModel(booking)

	eventType := constant.EventBookingStatusChanged
	if next == model.StatusCancelled {
		eventType = constant.EventBookingCancelled
	}

	s.afterChange(ctx, eventType, booking)

	return res, nil
}

func (s *serviceImpl) UpdatePaymentStatus(ctx context.Context, id string, req dto.UpdatePaymentStatusRequest, actor *identityModel.Identity) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdatePaymentStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.load(ctx, id)
	if err != nil {
		return res, err
	}

	if actor == nil {
		return res, failure.Unauthorized("missing identity")
	}

	// Payment state is settled between the host and the platform. Renters
	// submit evidence; they never flip the status themselves.
	if actor.Role != identityModel.RoleAdmin {
		resource, err := s.resource(ctx, booking.ResourceKind, booking.ResourceID)
		if err != nil {
			return res, err
		}

		if actor.Role != identityModel.RoleHost || actor.ID != resource.hostID {
			return res, failure.Forbidden("only the host or an admin can update payment status")
		}
	}

	next := model.PaymentStatus(req.PaymentStatus)

	if booking.PaymentStatus == next && next.IsTerminal() {
		res.FromModel(booking)

		return res, nil
	}

	if err = booking.ApplyPaymentStatus(next); err != nil {
		return res, err
	}

	if err = s.persistStatus(ctx, booking, actor.ID); err != nil {
		return res, err
	}

	res.FromModel(booking)
	s.afterChange(ctx, constant.EventBookingPaymentMoved, booking)

	return res, nil
}

func (s *serviceImpl) Cancel(ctx context.Context, id string, actor *identityModel.Identity) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.load(ctx, id)
	if err != nil {
		return res, err
	}

	if actor == nil {
		return res, failure.Unauthorized("missing identity")
	}

	if actor.Role != identityModel.RoleAdmin && booking.RenterID != actor.ID {
		return res, failure.Forbidden("only the renter or an admin can cancel a booking")
	}

	if booking.Status == model.StatusCancelled {
		res.FromModel(booking)

		return res, nil
	}

	if err = booking.Cancel(); err != nil {
		return res, err
	}

	if err = s.persistStatus(ctx, booking, actor.ID); err != nil {
		return res, err
	}

	res.FromModel(booking)
	s.afterChange(ctx, constant.EventBookingCancelled, booking)

	return res, nil
}

func (s *serviceImpl) AddPaymentEvidence(ctx context.Context, id string, actor *identityModel.Identity, file multipart.File, fileHeader *multipart.FileHeader) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AddPaymentEvidence")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.load(ctx, id)
	if err != nil {
		return res, err
	}

	if actor == nil {
		return res, failure.Unauthorized("missing identity")
	}

	if actor.Role != identityModel.RoleAdmin && booking.RenterID != actor.ID {
		return res, failure.Forbidden("only the renter or an admin can attach payment evidence")
	}

	if booking.Status.IsTerminal() {
		return res, failure.BadRequestFromString("booking is already closed")
	}

	fileName := fmt.Sprintf("%s-%s%s", booking.ID, uuid.NewString(), filepath.Ext(fileHeader.Filename))

	url, err := s.storage.UploadFile(ctx, "", evidenceDirectory, file, fileHeader, fileName)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload payment evidence")

		return res, failure.UpstreamFailure(err)
	}

	booking.PaymentEvidence = append(booking.PaymentEvidence, url)

	updatedFields := map[string]any{
		model.FieldPaymentEvidence: booking.PaymentEvidence,
		constant.FieldModifiedAt:   timezone.Now(),
		constant.FieldModifiedBy:   actor.ID,
	}

	if err = s.repo.Update(ctx, updatedFields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to store payment evidence")

		return res, fmt.Errorf("failed to store payment evidence: %w", err)
	}

	res.FromModel(booking)
	s.invalidate(ctx, booking.ID)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string, actor *identityModel.Identity) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	if actor == nil || actor.Role != identityModel.RoleAdmin {
		return failure.Forbidden("only an admin can delete a booking")
	}

	booking, err := s.load(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete booking")

		return fmt.Errorf("failed to delete booking: %w", err)
	}

	s.invalidate(ctx, booking.ID)

	return nil
}

func (s *serviceImpl) load(ctx context.Context, id string) (model.Booking, error) {
	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return booking, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == "" {
		return booking, failure.NotFound("booking not found")
	}

	return booking, nil
}

func (s *serviceImpl) canView(ctx context.Context, booking model.Booking, actor *identityModel.Identity) error {
	if actor == nil {
		return failure.Unauthorized("missing identity")
	}

	if actor.Role == identityModel.RoleAdmin || booking.RenterID == actor.ID {
		return nil
	}

	resource, err := s.resource(ctx, booking.ResourceKind, booking.ResourceID)
	if err != nil {
		return err
	}

	if actor.Role == identityModel.RoleHost && actor.ID == resource.hostID {
		return nil
	}

	return failure.Forbidden("not allowed to view this booking")
}

// canChangeStatus resolves who may request which status move: renters may
// only cancel their own booking, the listing's host and admins may request
// any move (legality is the state machine's call, not a permission one).
func (s *serviceImpl) canChangeStatus(ctx context.Context, booking model.Booking, next model.Status, actor *identityModel.Identity) error {
	if actor == nil {
		return failure.Unauthorized("missing identity")
	}

	if actor.Role == identityModel.RoleAdmin {
		return nil
	}

	if booking.RenterID == actor.ID {
		if next != model.StatusCancelled {
			return failure.Forbidden("renters can only cancel their booking")
		}

		return nil
	}

	resource, err := s.resource(ctx, booking.ResourceKind, booking.ResourceID)
	if err != nil {
		return err
	}

	if actor.Role == identityModel.RoleHost && actor.ID == resource.hostID {
		return nil
	}

	return failure.Forbidden("not allowed to change this booking")
}

func (s *serviceImpl) persistStatus(ctx context.Context, booking model.Booking, actorID string) error {
	updatedFields := map[string]any{
		model.FieldStatus:        string(booking.Status),
		model.FieldPaymentStatus: string(booking.PaymentStatus),
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: actorID,
	}

	if err := s.repo.Update(ctx, updatedFields, shared.FilterByID(booking.ID, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update booking")

		return fmt.Errorf("failed to update booking: %w", err)
	}

	return nil
}

// afterChange publishes the lifecycle event and drops stale cache entries.
// Both happen off the request path.
func (s *serviceImpl) afterChange(ctx context.Context, eventType string, booking model.Booking) {
	event := dto.NewBookingEvent(eventType, booking)

	go func() {
		c := context.WithoutCancel(ctx)

		err := s.producer.SendMessages(c, s.cfg.Kafka.Topics.BookingEvents, kafka.Message{
			Key:   booking.ID,
			Value: event,
		})
		if err != nil {
			log.Error().Err(err).Str("booking_id", booking.ID).Msg("failed to publish booking event")
		}
	}()

	s.invalidate(ctx, booking.ID)
}

func (s *serviceImpl) invalidate(ctx context.Context, bookingID string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, bookingID)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()
}
