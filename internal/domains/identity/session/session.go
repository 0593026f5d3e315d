package session

//go:generate go run go.uber.org/mock/mockgen -source=./session.go -destination=./mocks/session_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"roam/config"
	"roam/internal/domains/identity/model"
	"roam/shared"
	"roam/shared/cache"
	"roam/shared/constant"

	"github.com/rs/zerolog/log"
)

// Store keeps one Identity per credential token for the token's lifetime.
// Get returns (nil, nil) when no identity is stored, so an absent or expired
// session reads as anonymous rather than as an error.
type Store interface {
	Set(ctx context.Context, identity model.Identity) error
	Get(ctx context.Context, tokenID string) (*model.Identity, error)
	Clear(ctx context.Context, tokenID string) error
}

type storeImpl struct {
	cache cache.RedisCache
	cfg   *config.Config
}

func New(redisCache cache.RedisCache, cfg *config.Config) Store {
	return &storeImpl{
		cache: redisCache,
		cfg:   cfg,
	}
}

func (s *storeImpl) Set(ctx context.Context, identity model.Identity) error {
	if identity.TokenID == "" {
		return errors.New("identity token id is empty")
	}

	identity.AccountStatus = model.NormalizeAccountStatus(string(identity.AccountStatus))

	key := shared.BuildCacheKey(constant.CacheKeySession, identity.TokenID)
	ttl := s.cfg.JWT.AccessExpireMin * constant.MinutesToSeconds

	if err := s.cache.Save(ctx, key, identity, ttl); err != nil {
		log.Error().Err(err).Str("token_id", identity.TokenID).Msg("failed to store session identity")

		return fmt.Errorf("failed to store session identity: %w", err)
	}

	return nil
}

func (s *storeImpl) Get(ctx context.Context, tokenID string) (*model.Identity, error) {
	if tokenID == "" {
		return nil, nil
	}

	key := shared.BuildCacheKey(constant.CacheKeySession, tokenID)

	var identity model.Identity

	err := s.cache.Get(ctx, key, &identity)
	if errors.Is(err, cache.Nil) {
		return nil, nil
	}

	if err != nil {
		log.Error().Err(err).Str("token_id", tokenID).Msg("failed to read session identity")

		return nil, fmt.Errorf("failed to read session identity: %w", err)
	}

	// A stored identity that lost its required fields is unusable. Treat it
	// as anonymous instead of failing the request.
	if identity.ID == "" || !identity.Role.Valid() {
		return nil, nil
	}

	identity.AccountStatus = model.NormalizeAccountStatus(string(identity.AccountStatus))

	return &identity, nil
}

func (s *storeImpl) Clear(ctx context.Context, tokenID string) error {
	if tokenID == "" {
		return nil
	}

	key := shared.BuildCacheKey(constant.CacheKeySession, tokenID)

	if err := s.cache.Delete(ctx, key); err != nil {
		log.Error().Err(err).Str("token_id", tokenID).Msg("failed to clear session identity")

		return fmt.Errorf("failed to clear session identity: %w", err)
	}

	return nil
}
