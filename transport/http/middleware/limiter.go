package middleware

import (
	"context"
	"errors"
	"net/http"
	"roombook/shared"
	"roombook/shared/cache"
	"roombook/shared/constant"
	"roombook/transport/http/response"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

const (
	cacheKeyRateLimit = "limiter"
	unknownUserAgent  = "unknown"
)

// RateLimit counts requests per client and user agent inside a fixed window
// stored in redis. Cache failures let the request through.
func (a *appMiddleware) RateLimit() func(http.Handler) http.Handler {
	limits := a.config.App.RateLimiter

	return func(next http.Handler) http.Handler {
		if !limits.Enable {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := shared.BuildCacheKey(cacheKeyRateLimit, clientIP(r), userAgent(r))

			count, err := a.hit(r.Context(), key, limits.WindowSeconds)
			if err != nil {
				log.Warn().Err(err).Str("key", key).Msg("rate limiter unavailable")
				next.ServeHTTP(w, r)

				return
			}

			if count > limits.MaxRequests {
				response.WithRequestLimitExceeded(w)

				return
			}

			header := w.Header()
			header.Set(constant.RequestHeaderRateLimit, strconv.Itoa(limits.MaxRequests))
			header.Set(constant.RequestHeaderRateLimitRemaining, strconv.Itoa(max(0, limits.MaxRequests-count)))
			header.Set(constant.RequestHeaderRateLimitWindow, strconv.Itoa(limits.WindowSeconds))

			next.ServeHTTP(w, r)
		})
	}
}

// hit returns the request count of the current window including this one. A
// request over the limit is not stored.
func (a *appMiddleware) hit(ctx context.Context, key string, window int) (int, error) {
	var count int

	err := a.cache.Get(ctx, key, &count)
	if err != nil && !errors.Is(err, cache.Nil) {
		return 0, err //nolint:wrapcheck
	}

	count++
	if count > a.config.App.RateLimiter.MaxRequests {
		return count, nil
	}

	if err := a.cache.Save(ctx, key, count, window); err != nil {
		return 0, err //nolint:wrapcheck
	}

	return count, nil
}

func userAgent(r *http.Request) string {
	if ua := r.Header.Get(constant.RequestHeaderUserAgent); ua != "" {
		return ua
	}

	return unknownUserAgent
}

// clientIP prefers the first X-Forwarded-For hop, then X-Real-IP, then RemoteAddr.
func clientIP(r *http.Request) string {
	if xff := r.Header.Get(constant.RequestHeaderForwardedFor); xff != "" {
		first, _, _ := strings.Cut(xff, ",")

		return strings.TrimSpace(first)
	}

	if xri := r.Header.Get(constant.RequestHeaderRealIP); xri != "" {
		return strings.TrimSpace(xri)
	}

	return r.RemoteAddr
}
