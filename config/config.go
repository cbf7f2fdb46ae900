package config

import (
	"fmt"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

// Postgres holds the connection settings of one database endpoint.
type Postgres struct {
	Host     string `envconfig:"HOST"     default:"localhost"`
	Port     string `envconfig:"PORT"     default:"5432"`
	Username string `envconfig:"USER"`
	Password string `envconfig:"PASSWORD"`
	Name     string `envconfig:"NAME"     default:"roombook"`
	SSLMode  string `envconfig:"SSL_MODE" default:"disable"`
}

type Config struct {
	Server struct {
		Env      string `envconfig:"ENV"       default:"development"`
		LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
		Port     string `envconfig:"PORT"      default:"8080"`
		Host     string `envconfig:"HOST"`
		Shutdown struct {
			CleanupPeriodSeconds int64 `envconfig:"CLEANUP_PERIOD_SECONDS" default:"5"`
			GracePeriodSeconds   int64 `envconfig:"GRACE_PERIOD_SECONDS"   default:"5"`
		} `envconfig:"SHUTDOWN"`
	} `envconfig:"SERVER"`

	App struct {
		Name     string `envconfig:"APP_NAME" default:"roombook"`
		Timezone string `envconfig:"TIMEZONE" default:"UTC"`
		CORS     struct {
			Enable           bool     `envconfig:"ENABLE"`
			AllowCredentials bool     `envconfig:"ALLOW_CREDENTIALS"`
			AllowedOrigins   []string `envconfig:"ALLOWED_ORIGINS" default:"*"`
			AllowedMethods   []string `envconfig:"ALLOWED_METHODS" default:"GET,POST,DELETE,OPTIONS"`
			AllowedHeaders   []string `envconfig:"ALLOWED_HEADERS" default:"Accept,Content-Type,X-Request-ID"`
			MaxAgeSeconds    int      `envconfig:"MAX_AGE_SECONDS" default:"300"`
		} `envconfig:"CORS"`
		RateLimiter struct {
			Enable        bool `envconfig:"ENABLE"`
			MaxRequests   int  `envconfig:"MAX_REQUESTS"   default:"100"`
			WindowSeconds int  `envconfig:"WINDOW_SECONDS" default:"60"`
		} `envconfig:"RATE_LIMITER"`
	} `envconfig:"APP"`

	Cache struct {
		Redis struct {
			Primary struct {
				Host     string `envconfig:"HOST" default:"localhost"`
				Port     string `envconfig:"PORT" default:"6379"`
				Password string `envconfig:"PASSWORD"`
				DB       int    `envconfig:"DB"`
			} `envconfig:"PRIMARY"`
		} `envconfig:"REDIS"`
		// TTL is in seconds.
		TTL int `envconfig:"TTL" default:"300"`
	} `envconfig:"CACHE"`

	DB struct {
		Postgres struct {
			MaxRetry       int      `envconfig:"MAX_RETRY"       default:"5"`
			RetryWaitTime  int      `envconfig:"RETRY_WAIT_TIME" default:"2"`
			MigrationTable string   `envconfig:"MIGRATION_TABLE" default:"schema_migrations"`
			MigrationPath  string   `envconfig:"MIGRATION_PATH"  default:"migrations/postgres"`
			AutoMigrate    bool     `envconfig:"AUTO_MIGRATE"`
			Prefix         string   `envconfig:"PREFIX"`
			Read           Postgres `envconfig:"READ"`
			Write          Postgres `envconfig:"WRITE"`
		} `envconfig:"POSTGRES"`
	} `envconfig:"DB"`

	Kafka struct {
		Enable        bool     `envconfig:"ENABLE"`
		Brokers       []string `envconfig:"BROKERS"        default:"localhost:9092"`
		ConsumerGroup string   `envconfig:"CONSUMER_GROUP" default:"roombook-booking-events"`
		Topics        struct {
			BookingEvents string `envconfig:"BOOKING_EVENTS" default:"roombook.booking-events"`
		} `envconfig:"TOPICS"`
		SASL struct {
			Username string `envconfig:"USERNAME"`
			Password string `envconfig:"PASSWORD"`
		} `envconfig:"SASL"`
	} `envconfig:"KAFKA"`

	External struct {
		Otel struct {
			Endpoint string `envconfig:"ENDPOINT"`
		} `envconfig:"OTEL"`
	} `envconfig:"EXTERNAL"`
}

var (
	conf        Config
	once        sync.Once
	initErr     error
	initialized bool
)

// Init loads .env when present and then reads the environment into the
// process wide Config. Only the first call has any effect.
func Init() error {
	once.Do(func() {
		if loadErr := godotenv.Load(".env"); loadErr != nil {
			log.Warn().Err(loadErr).Msg("Could not load .env file, continuing with existing environment variables")
		} else {
			log.Info().Msg("Successfully loaded variables from .env file into environment")
		}

		if err := envconfig.Process("", &conf); err != nil {
			initErr = fmt.Errorf("processing environment variables: %w", err)

			return
		}

		initialized = true

		log.Info().Str("env", conf.Server.Env).Msg("Service configuration initialized successfully")
	})

	return initErr
}

func Get() *Config {
	if !initialized {
		if err := Init(); err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize configuration")
		}
	}

	return &conf
}
