package handler

import (
	"net/http"
	"smartoffice/config"
	"smartoffice/di"
	"smartoffice/shared/logger"
	"sync"

	_ "smartoffice/docs"
)

var (
	app  http.Handler
	once sync.Once
)

// Handler serves the application from a serverless function. The dependency graph is
// built on the first request and reused while the instance stays warm.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger(cfg)

		logger.SetLogLevel(cfg)

		app = di.InitializeService()
	})

	app.ServeHTTP(w, r)
}
