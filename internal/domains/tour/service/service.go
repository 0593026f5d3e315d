package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"roam/config"
	"roam/infras/otel"
	identityModel "roam/internal/domains/identity/model"
	"roam/internal/domains/tour/model"
	"roam/internal/domains/tour/model/dto"
	"roam/internal/domains/tour/repository"
	"roam/shared"
	"roam/shared/cache"
	"roam/shared/constant"
	gDto "roam/shared/dto"
	"roam/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetTour    = "tour:get"
	cacheGetAllTour = "tour:gets"
	cacheCountTour  = "tour:count"
)

type Tour interface {
	Create(ctx context.Context, req dto.CreateTourRequest, actor *identityModel.Identity) (dto.TourResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetToursResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.TourResponse, error)
	Update(ctx context.Context, req dto.UpdateTourRequest, id string, actor *identityModel.Identity) error
	Delete(ctx context.Context, id string, actor *identityModel.Identity) error
}

type serviceImpl struct {
	repo  repository.Tour
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Tour, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Tour {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func canManage(actor *identityModel.Identity, hostID string) bool {
	if actor == nil {
		return false
	}

	if actor.Role == identityModel.RoleAdmin {
		return true
	}

	return actor.Role == identityModel.RoleHost && actor.ID == hostID
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateTourRequest, actor *identityModel.Identity) (res dto.TourResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	if actor == nil {
		return res, failure.Unauthorized("missing identity")
	}

	if actor.Role != identityModel.RoleHost && actor.Role != identityModel.RoleAdmin {
		return res, failure.Forbidden("only hosts can create listings")
	}

	tour := req.ToModel(actor.ID)

	if err = s.repo.Insert(ctx, tour); err != nil {
		log.Error().Err(err).Msg("failed to create tour")

		return res, fmt.Errorf("failed to create tour: %w", err)
	}

	res.FromModel(tour)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllTour)
		shared.InvalidateCaches(c, s.cache, cacheCountTour)
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetToursResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllTour, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for tours")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count tours")

		return res, fmt.Errorf("failed to count tours: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get tours")

		return res, fmt.Errorf("failed to get tours: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save tours to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountTour, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for tour count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count tours")

		return res, fmt.Errorf("failed to count tours: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save tour count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.TourResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetTour, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for tour")

		return res, nil
	}

	tour, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get tour")

		return res, fmt.Errorf("failed to get tour: %w", err)
	}

	if tour.ID == "" {
		return res, failure.NotFound("tour not found")
	}

	res.FromModel(tour)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save tour to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateTourRequest, id string, actor *identityModel.Identity) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateTourRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty")
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	tour, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get tour")

		return fmt.Errorf("failed to get tour: %w", err)
	}

	if tour.ID == "" {
		return failure.NotFound("tour not found")
	}

	if !canManage(actor, tour.HostID) {
		return failure.Forbidden("not the owner of this tour")
	}

	updatedFields := shared.TransformFields(req, actor.ID)
	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update tour")

		return fmt.Errorf("failed to update tour: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetTour, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete tour from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllTour)
		shared.InvalidateCaches(c, s.cache, cacheCountTour)
	}()

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string, actor *identityModel.Identity) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	tour, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get tour")

		return fmt.Errorf("failed to get tour: %w", err)
	}

	if tour.ID == "" {
		return failure.NotFound("tour not found")
	}

	if !canManage(actor, tour.HostID) {
		return failure.Forbidden("not the owner of this tour")
	}

	if err := s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete tour")

		return fmt.Errorf("failed to delete tour: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetTour, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete tour from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllTour)
		shared.InvalidateCaches(c, s.cache, cacheCountTour)
	}()

	return nil
}
