package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"roam/infras/otel"
	"roam/infras/postgres"
	"roam/internal/domains/tour/model"
	gDto "roam/shared/dto"
	gRepo "roam/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Tour interface {
	Insert(ctx context.Context, model model.Tour) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Tour, error)
	GetForUpdateTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup, columns ...string) (model.Tour, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Tour, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Tour]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Tour {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Tour](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
