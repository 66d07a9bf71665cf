package main

import (
	"os"

	"github.com/gin-gonic/gin"

	"github.com/maisonbelle/salon-admin/internal/config"
	"github.com/maisonbelle/salon-admin/internal/routes"
	"github.com/maisonbelle/salon-admin/pkg/logging"
)

func main() {

	cfg := config.Load()
	logger := logging.New(cfg.LogLevel)

	r := gin.Default()

	if err := routes.RegisterRoutes(r, cfg, logger); err != nil {
		logger.Error("failed to wire routes", "error", err)
		os.Exit(1)
	}

	logger.Info("server starting",
		"addr", cfg.Addr(),
		"backend", cfg.BackendURL,
		"timezone", cfg.SalonTimezone,
	)

	if err := r.Run(cfg.Addr()); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
