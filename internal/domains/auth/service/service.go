package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"lodging/config"
	"lodging/infras/jwt"
	"lodging/infras/otel"
	"lodging/internal/domains/auth/model/dto"
	userModel "lodging/internal/domains/user/model"
	userDto "lodging/internal/domains/user/model/dto"
	userRepo "lodging/internal/domains/user/repository"
	userService "lodging/internal/domains/user/service"
	"lodging/shared"
	"lodging/shared/cache"
	"lodging/shared/constant"
	"lodging/shared/failure"
	"lodging/shared/password"
	"lodging/shared/timezone"

	"github.com/rs/zerolog/log"
)

const invalidCredentials = "invalid username or password"

type Auth interface {
	Login(ctx context.Context, req dto.LoginRequest) (dto.TokenResponse, error)
	RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (dto.TokenResponse, error)
	ChangePassword(ctx context.Context, req dto.ChangePasswordRequest, userID string) error
	// EnsureAdmin creates the configured admin account when it does not exist yet.
	EnsureAdmin(ctx context.Context) error
}

type serviceImpl struct {
	userRepo   userRepo.User
	cfg        *config.Config
	cache      cache.RedisCache
	otel       otel.Otel
	jwtService jwt.JWT
}

func New(userRepo userRepo.User, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, jwt jwt.JWT) Auth {
	return &serviceImpl{
		userRepo:   userRepo,
		cfg:        cfg,
		cache:      cache,
		otel:       otel,
		jwtService: jwt,
	}
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.TokenResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return res, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == "" {
		log.Warn().Str("username", req.Username).Msg("login attempt with unknown username")

		return res, failure.Unauthorized(invalidCredentials) //nolint:wrapcheck
	}

	if err := password.Verify(req.Password, user.Password); err != nil {
		log.Warn().Str("username", req.Username).Msg("login attempt with wrong password")

		return res, failure.Unauthorized(invalidCredentials) //nolint:wrapcheck
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(ctx, user.ID, user.Username, constant.RoleAdmin)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	lastLogin := dto.LastLoginPatch{LastLogin: timezone.Now()}
	updatedFields := shared.TransformFields(lastLogin, user.Username)

	if err := s.userRepo.Update(ctx, updatedFields, shared.FilterByID(user.ID, userModel.FieldID, userModel.TableName)); err != nil {
		log.Warn().Err(err).Str("user_id", user.ID).Msg("failed to update last login")
	}

	s.invalidate(ctx, user.ID)

	return dto.NewTokenResponse(tokenPair), nil
}

func (s *serviceImpl) RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (res dto.TokenResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RefreshToken")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	tokenPair, err := s.jwtService.RefreshTokens(ctx, req.RefreshToken)
	if err != nil {
		log.Warn().Err(err).Msg("failed to refresh tokens")

		return res, failure.Unauthorized("invalid refresh token") //nolint:wrapcheck
	}

	return dto.NewTokenResponse(tokenPair), nil
}

func (s *serviceImpl) ChangePassword(ctx context.Context, req dto.ChangePasswordRequest, userID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ChangePassword")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(userID, userModel.FieldID, userModel.TableName)

	user, err := s.userRepo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == "" {
		return failure.NotFound("user not found") //nolint:wrapcheck
	}

	if err := password.Verify(req.CurrentPassword, user.Password); err != nil {
		return failure.BadRequestFromString("current password is incorrect") //nolint:wrapcheck
	}

	hashedPassword, err := password.Hash(req.NewPassword)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash new password")

		return fmt.Errorf("failed to hash new password: %w", err)
	}

	updatePassword := dto.PasswordPatch{Password: hashedPassword}
	updatedFields := shared.TransformFields(updatePassword, shared.Actor(ctx))

	if err = s.userRepo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update password")

		return fmt.Errorf("failed to update password: %w", err)
	}

	log.Info().Str("user_id", userID).Msg("password changed")

	s.invalidate(ctx, userID)

	return nil
}

func (s *serviceImpl) EnsureAdmin(ctx context.Context) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".EnsureAdmin")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	username := s.cfg.App.Admin.Username

	exists, err := s.userRepo.Exist(ctx, userRepo.UsernameFilter(username))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if admin exists")

		return fmt.Errorf("failed to check if admin exists: %w", err)
	}

	if exists {
		log.Debug().Str("username", username).Msg("admin account already present")

		return nil
	}

	hashedPassword, err := password.Hash(s.cfg.App.Admin.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash admin password")

		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	err = s.userRepo.Insert(ctx, userDto.NewAdmin(username, hashedPassword, timezone.Now()))
	if shared.IsUniqueViolation(err) {
		return nil
	}

	if err != nil {
		log.Error().Err(err).Msg("failed to create admin")

		return fmt.Errorf("failed to create admin: %w", err)
	}

	log.Info().Str("username", username).Msg("admin account created")

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context, userID string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, userService.CacheKey(userID)); err != nil {
			log.Error().Err(err).Msg("failed to delete user from cache")
		}
	}()
}
