package helper

//nolint:revive
import (
	"errors"
	"fmt"
	"lodging/config"
	"lodging/infras/postgres"
	"net/url"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"
)

const (
	ActionUp     = "up"
	ActionDown   = "down"
	ActionStepUp = "step-up"
	ActionDrop   = "drop"
	ActionForce  = "force"

	migrationsSource = "file://migrations/postgres"
)

// ConnectionString builds the migrate database URL from the write connection settings.
func ConnectionString(config *config.Config) string {
	return postgres.WriteEndpoint(config).DSN(url.Values{
		"x-migrations-table": {config.DB.Postgres.MigrationTable},
	})
}

func getConnection(config *config.Config) (*migrate.Migrate, error) {
	mig, err := migrate.New(migrationsSource, ConnectionString(config))
	if err != nil {
		return nil, fmt.Errorf("error creating migrate instance: %w", err)
	}

	return mig, nil
}

func run(mig *migrate.Migrate, action string, version int) error {
	var err error

	switch action {
	case ActionUp:
		err = mig.Up()
	case ActionDown:
		err = mig.Steps(-1)
	case ActionStepUp:
		err = mig.Steps(1)
	case ActionDrop:
		err = mig.Down()
	case ActionForce:
		err = mig.Force(version)
	default:
		return fmt.Errorf("unknown migration action %q", action)
	}

	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("error running migration %s: %w", action, err)
	}

	return nil
}

func Runner(config *config.Config, action string, version int) error {
	mig, err := getConnection(config)
	if err != nil {
		return err
	}

	defer mig.Close()

	if err := run(mig, action, version); err != nil {
		return err
	}

	current, dirty, err := mig.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("error reading migration version: %w", err)
	}

	log.Info().Str("action", action).Uint("version", current).Bool("dirty", dirty).Msg("Database migration finished")

	return nil
}

func Up(config *config.Config) error {
	return Runner(config, ActionUp, 0)
}

func StepUp(config *config.Config) error {
	return Runner(config, ActionStepUp, 0)
}

func Down(config *config.Config) error {
	return Runner(config, ActionDown, 0)
}

func Drop(config *config.Config) error {
	return Runner(config, ActionDrop, 0)
}

// Force marks version as applied without running it, clearing a dirty state.
func Force(config *config.Config, version int) error {
	return Runner(config, ActionForce, version)
}
