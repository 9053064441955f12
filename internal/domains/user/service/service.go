package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=User=MockUserService

import (
	"context"
	"fmt"
	"lodging/config"
	"lodging/infras/otel"
	"lodging/internal/domains/user/model"
	"lodging/internal/domains/user/model/dto"
	"lodging/internal/domains/user/repository"
	"lodging/shared"
	"lodging/shared/cache"
	"lodging/shared/constant"
	"lodging/shared/failure"

	"github.com/rs/zerolog/log"
)

const CacheGetUser = "user:get"

// CacheKey is the cache entry of the profile returned by Get.
func CacheKey(id string) string {
	return shared.BuildCacheKey(CacheGetUser, id)
}

// User reads operator accounts. Accounts are created by the admin bootstrap only.
type User interface {
	Get(ctx context.Context, id string) (dto.UserResponse, error)
}

type serviceImpl struct {
	repo  repository.User
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.User, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) User {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute("user.id", id)

	return cache.Remember(ctx, s.cache, CacheKey(id), s.cfg.Cache.TTL, func(ctx context.Context) (res dto.UserResponse, err error) {
		user, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
		if err != nil {
			log.Error().Err(err).Str("user_id", id).Msg("failed to get user")

			return res, fmt.Errorf("failed to get user: %w", err)
		}

		if user.ID == "" {
			return res, failure.NotFound("user not found") //nolint:wrapcheck
		}

		res.FromModel(user)

		return res, nil
	})
}
