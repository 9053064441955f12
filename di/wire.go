//go:build wireinject
// +build wireinject

package di

import (
	"lodging/config"
	"lodging/infras/jwt"
	"lodging/infras/kafka"
	"lodging/infras/otel"
	"lodging/infras/postgres"
	"lodging/infras/redis"
	"lodging/infras/s3"
	"lodging/permissions"
	gRepository "lodging/shared/repository"
	"lodging/transport/http"
	"lodging/transport/http/middleware"
	"lodging/transport/http/router"

	authService "lodging/internal/domains/auth/service"
	checkInService "lodging/internal/domains/checkin/service"
	documentService "lodging/internal/domains/document/service"
	guestConsumer "lodging/internal/domains/guest/consumer"
	guestRepository "lodging/internal/domains/guest/repository"
	guestService "lodging/internal/domains/guest/service"
	receiptRepository "lodging/internal/domains/receipt/repository"
	receiptService "lodging/internal/domains/receipt/service"
	reportService "lodging/internal/domains/report/service"
	roomService "lodging/internal/domains/room/service"
	userRepository "lodging/internal/domains/user/repository"
	userService "lodging/internal/domains/user/service"

	authHandler "lodging/internal/handlers/auth"
	checkInHandler "lodging/internal/handlers/checkin"
	guestHandler "lodging/internal/handlers/guest"
	receiptHandler "lodging/internal/handlers/receipt"
	reportHandler "lodging/internal/handlers/report"
	roomHandler "lodging/internal/handlers/room"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.NewCache,
	jwt.New,
	kafka.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	gRepository.NewTransactor,
)

var authDomain = wire.NewSet(
	userRepository.New,
	userService.New,
	authService.New,
)

var lodgingDomain = wire.NewSet(
	guestRepository.New,
	receiptRepository.New,
	documentService.New,
	roomService.New,
	receiptService.New,
	checkInService.New,
	guestService.New,
	reportService.New,
)

var domains = wire.NewSet(
	authDomain,
	lodgingDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	roomHandler.New,
	checkInHandler.New,
	guestHandler.New,
	receiptHandler.New,
	reportHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}

func InitializeApp() *App {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
		guestConsumer.New,
		wire.Struct(new(App), "*"),
	)

	return &App{}
}

func InitializeAdminBootstrap() authService.Auth {
	wire.Build(
		configurations,
		postgres.New,
		otel.New,
		redis.NewCache,
		jwt.New,
		userRepository.New,
		authService.New,
	)

	return nil
}
