package handler

import (
	"net/http"

	"flavours/config"
	"flavours/di"
	"flavours/shared/logger"
)

// Handler is the serverless entrypoint; each cold start wires the service the
// same way cmd/app does.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	server := di.InitializeService()
	server.Handler().ServeHTTP(w, r)
}
