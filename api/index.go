package handler

import (
	"net/http"
	"roombook/config"
	"roombook/di"
	"roombook/shared/logger"
	transport "roombook/transport/http"
	"sync"
)

var (
	server     *transport.HTTP
	serverOnce sync.Once
)

// Handler serves the API from a serverless function, reusing the wired server
// across warm invocations.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	serverOnce.Do(func() {
		cfg := config.Get()

		logger.InitLogger()

		logger.Configure(cfg)

		server = di.InitializeService()
	})

	server.ServeHTTP(w, r)
}
