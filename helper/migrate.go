package helper

//nolint:revive
import (
	"errors"
	"fmt"
	"roombook/config"
	"roombook/infras/postgres"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"
)

const (
	defaultMigrationPath  = "migrations/postgres"
	defaultMigrationTable = "schema_migrations"
)

// migrationSource returns the file:// source url for the configured directory.
func migrationSource(cfg *config.Config) string {
	path := cfg.DB.Postgres.MigrationPath
	if path == "" {
		path = defaultMigrationPath
	}

	return "file://" + strings.TrimPrefix(path, "file://")
}

// databaseURL builds the golang-migrate url for the write database.
func databaseURL(cfg *config.Config) string {
	table := cfg.DB.Postgres.MigrationTable
	if table == "" {
		table = defaultMigrationTable
	}

	write := cfg.DB.Postgres.Write

	return postgres.DSN(
		write.Username,
		write.Password,
		write.Host,
		write.Port,
		postgres.DBName(*cfg, write.Name),
		write.SSLMode,
	) + "&x-migrations-table=" + table
}

func getConnection(cfg *config.Config) (*migrate.Migrate, error) {
	mig, err := migrate.New(migrationSource(cfg), databaseURL(cfg))
	if err != nil {
		return nil, fmt.Errorf("error creating migrate instance: %w", err)
	}

	return mig, nil
}

func closeMigrate(mig *migrate.Migrate) {
	srcErr, dbErr := mig.Close()
	if err := errors.Join(srcErr, dbErr); err != nil {
		log.Error().Err(err).Msg("Failed to close migrate instance")
	}
}

func Runner(cfg *config.Config, action string) error {
	mig, err := getConnection(cfg)
	if err != nil {
		return err
	}

	defer closeMigrate(mig)

	switch action {
	case "up":
		if err := mig.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("error running migrations: %w", err)
		}

		log.Info().Msg("Database migrations completed successfully")
	case "down":
		if err := mig.Steps(-1); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("error rolling back migrations: %w", err)
		}

		log.Info().Msg("Database migrations rolled back successfully")
	case "step-up":
		if err := mig.Steps(1); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("error running migrations: %w", err)
		}

		log.Info().Msg("Database migrations completed successfully")
	case "drop":
		if err := mig.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("error rolling back migrations: %w", err)
		}

		log.Info().Msg("Database migrations rolled back successfully")
	case "version":
		version, dirty, err := mig.Version()
		if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
			return fmt.Errorf("error reading migration version: %w", err)
		}

		log.Info().Uint("version", version).Bool("dirty", dirty).Msg("Database migration version")
	default:
		return fmt.Errorf("unknown migration action %q", action)
	}

	return nil
}

func Up(cfg *config.Config) error {
	return Runner(cfg, "up")
}
