package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"roam/infras/otel"
	"roam/infras/postgres"
	"roam/internal/domains/booking/model"
	propertyModel "roam/internal/domains/property/model"
	propertyRepo "roam/internal/domains/property/repository"
	tourModel "roam/internal/domains/tour/model"
	tourRepo "roam/internal/domains/tour/repository"
	"roam/shared"
	"roam/shared/constant"
	gDto "roam/shared/dto"
	"roam/shared/logger"
	gRepo "roam/shared/repository"
)

// overlapQuery finds the first live booking whose half-open range intersects
// the candidate range: existing.check_in < candidate.check_out AND
// existing.check_out > candidate.check_in.
const overlapQuery = `
SELECT id, renter_id, resource_kind, resource_id, check_in, check_out, guests,
       status, payment_status, total_price, currency, payment_evidence,
       created_at, created_by, modified_at, modified_by
FROM bookings
WHERE resource_kind = $1
  AND resource_id = $2
  AND status <> 'cancelled'
  AND check_in < $3
  AND check_out > $4
ORDER BY check_in
LIMIT 1`

type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	FindOverlapping(ctx context.Context, resourceKind, resourceID string, checkIn, checkOut time.Time) (*model.Booking, error)
	CreateIfAvailable(ctx context.Context, booking model.Booking) (*model.Booking, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db    *postgres.Connection
	otel  otel.Otel
	props propertyRepo.Property
	tours tourRepo.Tour
}

func New(db *postgres.Connection, otel otel.Otel, props propertyRepo.Property, tours tourRepo.Tour) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
		props:      props,
		tours:      tours,
	}
}

// FindOverlapping returns the first non-cancelled booking for the resource
// that intersects [checkIn, checkOut), or nil when the range is free.
func (repo *repositoryImpl) FindOverlapping(ctx context.Context, resourceKind, resourceID string, checkIn, checkOut time.Time) (*model.Booking, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.FindOverlapping")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, overlapQuery)

	var conflict model.Booking

	err := repo.db.Read.GetContext(ctx, &conflict, overlapQuery, resourceKind, resourceID, checkOut, checkIn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to find overlapping booking: %w", err)
	}

	return &conflict, nil
}

// CreateIfAvailable inserts the booking only if its date range is still free,
// re-checking overlap inside a transaction that holds a lock on the resource
// row. Two concurrent creates for the same dates serialize on that lock, so
// at most one can succeed. Returns the conflicting booking when the range is
// already taken.
func (repo *repositoryImpl) CreateIfAvailable(ctx context.Context, booking model.Booking) (conflict *model.Booking, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.CreateIfAvailable")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				log := fmt.Errorf("failed to rollback transaction: %w", rbErr)
				logger.ErrorWithStack(log)
			}
		}
	}()

	if err = repo.lockResource(ctx, tx, booking.ResourceKind, booking.ResourceID); err != nil {
		return nil, err
	}

	var existing model.Booking

	err = tx.GetContext(ctx, &existing, overlapQuery, booking.ResourceKind, booking.ResourceID, booking.CheckOut, booking.CheckIn)
	if err == nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			logger.ErrorWithStack(rbErr)
		}

		return &existing, nil
	}

	if !errors.Is(err, sql.ErrNoRows) {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to re-check availability: %w", err)
	}

	if err = repo.InsertTx(ctx, tx, booking); err != nil {
		return nil, fmt.Errorf("failed to insert booking: %w", err)
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to commit booking: %w", err)
	}

	return nil, nil
}

// lockResource takes the row lock on the booked listing inside sqltx so
// concurrent creates for the same resource serialize.
func (repo *repositoryImpl) lockResource(ctx context.Context, sqltx *sqlx.Tx, resourceKind, resourceID string) error {
	switch resourceKind {
	case constant.ResourceKindProperty:
		locked, err := repo.props.GetForUpdateTx(ctx, sqltx, shared.FilterByID(resourceID, propertyModel.FieldID, propertyModel.TableName))
		if err != nil {
			return fmt.Errorf("failed to lock property row: %w", err)
		}

		if locked.ID == "" {
			return fmt.Errorf("property %s no longer exists", resourceID)
		}
	case constant.ResourceKindTour:
		locked, err := repo.tours.GetForUpdateTx(ctx, sqltx, shared.FilterByID(resourceID, tourModel.FieldID, tourModel.TableName))
		if err != nil {
			return fmt.Errorf("failed to lock tour row: %w", err)
		}

		if locked.ID == "" {
			return fmt.Errorf("tour %s no longer exists", resourceID)
		}
	default:
		return fmt.Errorf("unknown resource kind %q", resourceKind)
	}

	return nil
}
