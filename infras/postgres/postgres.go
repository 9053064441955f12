package postgres

//nolint:revive
import (
	"context"
	"fmt"
	"lodging/config"
	"net"
	"net/url"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	driverName         = "postgres"
	maxIdleConnections = 10
	maxOpenConnections = 10
	connMaxIdleTime    = 5 * time.Minute
)

// Connection splits traffic between a read replica and the primary. Both may
// point at the same server.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

// Endpoint is one side of a Connection.
type Endpoint struct {
	Role     string
	Username string
	Password string
	Host     string
	Port     string
	Name     string
	SSLMode  string
	Timezone string
}

func databaseName(cfg *config.Config, name string) string {
	return cfg.DB.Postgres.Prefix + name
}

func WriteEndpoint(cfg *config.Config) Endpoint {
	write := cfg.DB.Postgres.Write

	return Endpoint{
		Role:     "write",
		Username: write.Username,
		Password: write.Password,
		Host:     write.Host,
		Port:     write.Port,
		Name:     databaseName(cfg, write.Name),
		SSLMode:  write.SSLMode,
		Timezone: write.Timezone,
	}
}

func ReadEndpoint(cfg *config.Config) Endpoint {
	read := cfg.DB.Postgres.Read

	return Endpoint{
		Role:     "read",
		Username: read.Username,
		Password: read.Password,
		Host:     read.Host,
		Port:     read.Port,
		Name:     databaseName(cfg, read.Name),
		SSLMode:  read.SSLMode,
		Timezone: read.Timezone,
	}
}

// DSN renders the endpoint as a postgres URL. Credentials are escaped and
// extra parameters are merged into the query string.
func (e Endpoint) DSN(extra url.Values) string {
	query := url.Values{}

	if e.SSLMode != "" {
		query.Set("sslmode", e.SSLMode)
	}

	if e.Timezone != "" {
		query.Set("timezone", e.Timezone)
	}

	for key, values := range extra {
		query[key] = values
	}

	dsn := url.URL{
		Scheme:   driverName,
		User:     url.UserPassword(e.Username, e.Password),
		Host:     net.JoinHostPort(e.Host, e.Port),
		Path:     "/" + e.Name,
		RawQuery: query.Encode(),
	}

	return dsn.String()
}

// Ping checks that both pools still reach their server.
func (c *Connection) Ping(ctx context.Context) error {
	if err := c.Write.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping write database: %w", err)
	}

	if err := c.Read.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping read database: %w", err)
	}

	return nil
}

func New(cfg *config.Config) *Connection {
	retries, wait := cfg.DB.Postgres.MaxRetry, time.Duration(cfg.DB.Postgres.RetryWaitTime)*time.Second

	return &Connection{
		Read:  Open(ReadEndpoint(cfg), retries, wait),
		Write: Open(WriteEndpoint(cfg), retries, wait),
	}
}

// Open connects to the endpoint, retrying up to maxRetry times. It exits the
// process when every attempt fails.
func Open(endpoint Endpoint, maxRetry int, wait time.Duration) *sqlx.DB {
	logCtx := log.With().
		Str("name", endpoint.Role).
		Str("host", endpoint.Host).
		Str("port", endpoint.Port).
		Str("dbName", endpoint.Name).
		Logger()

	attempts := max(maxRetry, 1)

	for attempt := 1; attempt <= attempts; attempt++ {
		db, err := sqlx.Connect(driverName, endpoint.DSN(nil))
		if err == nil {
			db.SetMaxIdleConns(maxIdleConnections)
			db.SetMaxOpenConns(maxOpenConnections)
			db.SetConnMaxIdleTime(connMaxIdleTime)

			logCtx.Info().Msg("connected to database")

			return db
		}

		logCtx.Error().Err(err).Int("attempt", attempt).Msg("failed connecting to database")

		if attempt < attempts {
			time.Sleep(wait)
		}
	}

	logCtx.Fatal().Int("attempts", attempts).Msg("giving up connecting to database")

	return nil
}
