package postgres

//nolint:revive
import (
	"fmt"
	"net"
	"roombook/config"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	driverName         = "postgres"
	maxIdleConnections = 10
	maxOpenConnections = 10
	connMaxLifetime    = 30 * time.Minute
)

// Connection holds the read replica pool and the primary pool. Repositories
// read from Read and write, including every transaction, through Write.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

func New(cfg *config.Config) *Connection {
	return &Connection{
		Read:  connect(cfg, "read", cfg.DB.Postgres.Read),
		Write: connect(cfg, "write", cfg.DB.Postgres.Write),
	}
}

// Close releases both pools.
func (c *Connection) Close() {
	if c == nil {
		return
	}

	for name, db := range map[string]*sqlx.DB{"read": c.Read, "write": c.Write} {
		if db == nil {
			continue
		}

		if err := db.Close(); err != nil {
			log.Error().Err(err).Str("name", name).Msg("Failed to close database connection")
		}
	}
}

// DBName applies the configured database prefix.
func DBName(cfg config.Config, baseName string) string {
	return cfg.DB.Postgres.Prefix + baseName
}

// DSN builds the lib/pq connection url.
func DSN(username, password, host, port, dbName, sslMode string) string {
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf(
		"postgres://%s:%s@%s/%s?sslmode=%s",
		username,
		password,
		net.JoinHostPort(host, port),
		dbName,
		sslMode,
	)
}

// connect dials one endpoint, retrying MaxRetry times, and exits the process
// once every attempt has failed.
func connect(cfg *config.Config, name string, endpoint config.Postgres) *sqlx.DB {
	dbName := DBName(*cfg, endpoint.Name)
	dsn := DSN(endpoint.Username, endpoint.Password, endpoint.Host, endpoint.Port, dbName, endpoint.SSLMode)
	wait := time.Duration(cfg.DB.Postgres.RetryWaitTime) * time.Second
	attempts := max(cfg.DB.Postgres.MaxRetry, 1)

	logger := log.With().
		Str("name", name).
		Str("host", endpoint.Host).
		Str("port", endpoint.Port).
		Str("dbName", dbName).
		Logger()

	var err error

	for attempt := 1; attempt <= attempts; attempt++ {
		var db *sqlx.DB

		if db, err = sqlx.Connect(driverName, dsn); err == nil {
			db.SetMaxIdleConns(maxIdleConnections)
			db.SetMaxOpenConns(maxOpenConnections)
			db.SetConnMaxLifetime(connMaxLifetime)
			logger.Info().Msg("Connected to database")

			return db
		}

		logger.Error().Err(err).Int("attempt", attempt).Msg("Failed connecting to database, retrying")

		if attempt < attempts {
			time.Sleep(wait)
		}
	}

	logger.Fatal().Err(err).Msg("Giving up connecting to database")

	return nil
}
