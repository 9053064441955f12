package handler

import (
	"lodging/config"
	"lodging/di"
	"lodging/shared/logger"
	"net/http"
	"sync"
)

var (
	service     http.Handler
	serviceOnce sync.Once
)

func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	serviceOnce.Do(func() {
		cfg := config.Get()

		logger.InitLogger()

		logger.Configure(cfg)

		service = di.InitializeService()
	})

	service.ServeHTTP(w, r)
}
