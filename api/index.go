package handler

import (
	"context"
	"net/http"
	"sync"

	"villa/config"
	"villa/di"
	"villa/shared/failure"
	"villa/shared/logger"
	villaHttp "villa/transport/http"
	"villa/transport/http/response"
)

var (
	server  *villaHttp.HTTP
	initErr error
	once    sync.Once
)

// Handler serves one request. Warm invocations reuse the server built on the
// first call.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger(cfg)

		logger.SetLogLevel(cfg)

		server, _, initErr = di.InitializeService(context.Background())
	})

	if initErr != nil {
		response.WithError(w, failure.InternalError(initErr))

		return
	}

	server.ServeHTTP(w, r)
}
