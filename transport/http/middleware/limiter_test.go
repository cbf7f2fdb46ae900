package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"roombook/config"
	"roombook/infras/otel/mocks"
	"roombook/shared/cache"
	cacheMocks "roombook/shared/cache/mocks"
	"roombook/transport/http/middleware"
)

func limiterConfig(enable bool) *config.Config {
	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = enable
	cfg.App.RateLimiter.MaxRequests = 2
	cfg.App.RateLimiter.WindowSeconds = 60

	return cfg
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
}

func request() *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/bookings", nil)
	req.Header.Set("X-Forwarded-For", "10.0.0.1, 10.0.0.2")
	req.Header.Set("User-Agent", "curl")

	return req
}

func TestRateLimit(t *testing.T) {
	const key = "limiter:10.0.0.1:curl"

	t.Run("disabled passes through", func(t *testing.T) {
		mw := middleware.NewAppMiddleware(mocks.NewOtel(), limiterConfig(false), cacheMocks.NewMockRedisCache(gomock.NewController(t)))

		rec := httptest.NewRecorder()
		mw.RateLimit()(okHandler()).ServeHTTP(rec, request())

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("first request opens window", func(t *testing.T) {
		c := cacheMocks.NewMockRedisCache(gomock.NewController(t))
		c.EXPECT().Get(gomock.Any(), key, gomock.Any()).Return(cache.Nil)
		c.EXPECT().Save(gomock.Any(), key, 1, 60).Return(nil)

		mw := middleware.NewAppMiddleware(mocks.NewOtel(), limiterConfig(true), c)

		rec := httptest.NewRecorder()
		mw.RateLimit()(okHandler()).ServeHTTP(rec, request())

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "2", rec.Header().Get("X-RateLimit-Limit"))
		assert.Equal(t, "1", rec.Header().Get("X-RateLimit-Remaining"))
	})

	t.Run("blocks over limit", func(t *testing.T) {
		c := cacheMocks.NewMockRedisCache(gomock.NewController(t))
		c.EXPECT().Get(gomock.Any(), key, gomock.Any()).DoAndReturn(func(_, _ any, value any) error {
			*(value.(*int)) = 2

			return nil
		})

		mw := middleware.NewAppMiddleware(mocks.NewOtel(), limiterConfig(true), c)

		rec := httptest.NewRecorder()
		mw.RateLimit()(okHandler()).ServeHTTP(rec, request())

		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		assert.JSONEq(t, `{"status":429,"message":"REQUEST LIMIT EXCEEDED"}`, rec.Body.String())
	})

	t.Run("cache outage lets request through", func(t *testing.T) {
		c := cacheMocks.NewMockRedisCache(gomock.NewController(t))
		c.EXPECT().Get(gomock.Any(), key, gomock.Any()).Return(errors.New("connection refused"))

		mw := middleware.NewAppMiddleware(mocks.NewOtel(), limiterConfig(true), c)

		rec := httptest.NewRecorder()
		mw.RateLimit()(okHandler()).ServeHTTP(rec, request())

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}

func TestCORS(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.CORS.Enable = true
	cfg.App.CORS.AllowedOrigins = []string{"https://rooms.acme.com"}
	cfg.App.CORS.AllowedMethods = []string{http.MethodGet, http.MethodPost, http.MethodDelete}

	mw := middleware.NewAppMiddleware(mocks.NewOtel(), cfg, cacheMocks.NewMockRedisCache(gomock.NewController(t)))

	req := httptest.NewRequest(http.MethodGet, "/rooms", nil)
	req.Header.Set("Origin", "https://rooms.acme.com")

	rec := httptest.NewRecorder()
	mw.CORS()(okHandler()).ServeHTTP(rec, req)

	assert.Equal(t, "https://rooms.acme.com", rec.Header().Get("Access-Control-Allow-Origin"))
}
