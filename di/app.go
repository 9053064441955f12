package di

import (
	"lodging/infras/postgres"
	authService "lodging/internal/domains/auth/service"
	guestConsumer "lodging/internal/domains/guest/consumer"
	"lodging/transport/http"
)

// App groups the long running parts of the service that share one dependency graph.
type App struct {
	HTTP     *http.HTTP
	DB       *postgres.Connection
	Auth     authService.Auth
	Consumer guestConsumer.Consumer
}
