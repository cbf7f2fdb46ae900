package redis

import (
	"context"
	"net"
	"roombook/config"
	"time"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	pingTimeout  = 3 * time.Second
	pingAttempts = 3
	pingBackoff  = time.Second
)

// New connects to the primary redis. It exits the process when the server
// does not answer a ping after a few attempts.
func New(config *config.Config) *goRedis.Client {
	primary := config.Cache.Redis.Primary

	client := goRedis.NewClient(&goRedis.Options{
		Addr:     net.JoinHostPort(primary.Host, primary.Port),
		Password: primary.Password,
		DB:       primary.DB,
	})

	var err error

	for attempt := 1; attempt <= pingAttempts; attempt++ {
		ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
		err = client.Ping(ctx).Err()

		cancel()

		if err == nil {
			break
		}

		log.Warn().Err(err).Int("attempt", attempt).Msg("Redis not reachable yet")
		time.Sleep(pingBackoff)
	}

	if err != nil {
		log.Fatal().Err(err).Str("addr", client.Options().Addr).Msg("Failed to connect to Redis")
	}

	log.Info().
		Int("db", primary.DB).
		Str("addr", client.Options().Addr).
		Msg("Connected to Redis")

	return client
}
