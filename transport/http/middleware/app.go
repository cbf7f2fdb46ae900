package middleware

import (
	"fmt"
	"net/http"
	"roombook/config"
	"roombook/infras/otel"
	"roombook/shared/cache"
	"roombook/shared/constant"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	otelGlobal "go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
)

const (
	otelHTTPScopeName = "http"
)

type AppMiddleware interface {
	Tracing(next http.Handler) http.Handler
	RateLimit() func(http.Handler) http.Handler
	CORS() func(http.Handler) http.Handler
}

type appMiddleware struct {
	otel   otel.Otel
	config *config.Config
	cache  cache.RedisCache
}

func NewAppMiddleware(otel otel.Otel, config *config.Config, cache cache.RedisCache) AppMiddleware {
	return &appMiddleware{
		otel:   otel,
		config: config,
		cache:  cache,
	}
}

// Tracing opens a span per request, continuing any trace context sent by the caller.
func (a *appMiddleware) Tracing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := otelGlobal.GetTextMapPropagator().Extract(r.Context(), propagation.HeaderCarrier(r.Header))

		ctx, scope := a.otel.NewScope(ctx, otelHTTPScopeName, fmt.Sprintf("%s %s", r.Method, r.URL.Path))
		defer scope.End()

		scope.SetAttributes(map[string]any{
			"app.name":        a.config.App.Name,
			"http.path":       r.URL.Path,
			"http.method":     r.Method,
			"http.user_agent": a.getUA(r),
			"http.host":       r.Host,
			"http.source":     a.getClientIP(r),
			"http.request_id": chiMiddleware.GetReqID(ctx),
		})

		ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r.WithContext(ctx))

		attributes := map[string]any{
			"http.status_code": ww.Status(),
		}

		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			attributes["http.route"] = rctx.RoutePattern()
		}

		scope.SetAttributes(attributes)

		if ww.Status() >= http.StatusInternalServerError {
			scope.TraceError(fmt.Errorf("request failed with status %d", ww.Status()))
		}
	})
}

func (a *appMiddleware) CORS() func(http.Handler) http.Handler {
	corsConfig := a.config.App.CORS
	if !corsConfig.Enable {
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	return cors.Handler(cors.Options{
		AllowedOrigins:   corsConfig.AllowedOrigins,
		AllowedMethods:   corsConfig.AllowedMethods,
		AllowedHeaders:   corsConfig.AllowedHeaders,
		ExposedHeaders:   []string{constant.RequestHeaderRequestID, constant.RequestHeaderRateLimitRemaining},
		AllowCredentials: corsConfig.AllowCredentials,
		MaxAge:           corsConfig.MaxAgeSeconds,
	})
}
