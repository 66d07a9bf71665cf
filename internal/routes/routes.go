package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/maisonbelle/salon-admin/internal/audit"
	"github.com/maisonbelle/salon-admin/internal/availability"
	"github.com/maisonbelle/salon-admin/internal/cache"
	"github.com/maisonbelle/salon-admin/internal/config"
	"github.com/maisonbelle/salon-admin/internal/handlers"
	"github.com/maisonbelle/salon-admin/internal/middleware"
	"github.com/maisonbelle/salon-admin/internal/observability/metrics"
	"github.com/maisonbelle/salon-admin/internal/remote"
	"github.com/maisonbelle/salon-admin/internal/salon"
	"github.com/maisonbelle/salon-admin/internal/store"
	"github.com/maisonbelle/salon-admin/pkg/logging"
)

func RegisterRoutes(r *gin.Engine, cfg *config.Config, logger *logging.Logger) error {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	queryCache, err := cache.New(cfg.CacheSize, cfg.CacheTTL)
	if err != nil {
		return err
	}

	gatewayMetrics := metrics.NewGatewayMetrics(nil)

	backend := remote.NewClient(
		cfg.BackendURL,
		remote.WithTimeout(cfg.BackendTimeout),
		remote.WithLogger(logger),
		remote.WithMetrics(gatewayMetrics),
	)

	auditLogger := audit.New(logger)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	deps := store.Deps{
		Remote:  backend,
		Cache:   queryCache,
		Metrics: gatewayMetrics,
		Audit:   auditDispatcher,
	}

	// ======================================================
	// STORES / FETCHERS (PER KIND)
	// ======================================================
	policy := availability.PolicyFromConfig(cfg)
	kinds := salon.Kinds()

	appointmentStores := make(map[salon.Kind]*store.AppointmentStore, len(kinds))
	providerStores := make(map[salon.Kind]*store.ProviderStore, len(kinds))
	serviceStores := make(map[salon.Kind]*store.ServiceStore, len(kinds))
	fetchers := make(map[salon.Kind]*availability.Fetcher, len(kinds))

	for _, kind := range kinds {
		appointmentStores[kind] = store.NewAppointmentStore(kind, deps)
		providerStores[kind] = store.NewProviderStore(kind, deps)
		serviceStores[kind] = store.NewServiceStore(kind, deps)
		fetchers[kind] = availability.NewFetcher(backend, policy, cfg.SalonTimezone)
	}

	clientStore := store.NewClientStore(deps)
	scheduleStore := store.NewScheduleStore(deps, cfg.SalonTimezone)

	// ======================================================
	// HANDLERS
	// ======================================================
	appointmentHandler := handlers.NewAppointmentHandler(appointmentStores, fetchers, cfg.SalonTimezone)
	availabilityHandler := handlers.NewAvailabilityHandler(fetchers)
	providerHandler := handlers.NewProviderHandler(providerStores)
	serviceHandler := handlers.NewServiceHandler(serviceStores)
	clientHandler := handlers.NewClientHandler(clientStore)
	scheduleHandler := handlers.NewScheduleHandler(scheduleStore, cfg.SalonTimezone)
	dashboardHandler := handlers.NewDashboardHandler(appointmentStores, providerStores, cfg.SalonTimezone)

	// ======================================================
	// OPERATIONAL
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	api.Use(middleware.AuthMiddleware())
	{
		// ------------------------------
		// DASHBOARD
		// ------------------------------
		api.GET("/stats", dashboardHandler.Stats)
		api.GET("/stats/by-day", dashboardHandler.AppointmentsByDay)

		// ------------------------------
		// APPOINTMENTS
		// ------------------------------
		api.GET("/appointments/:kind", appointmentHandler.List)
		api.POST("/appointments/:kind", appointmentHandler.Book)
		api.PUT("/appointments/:kind/:id", appointmentHandler.Update)
		api.PUT("/appointments/:kind/:id/cancel", appointmentHandler.Cancel)
		api.POST("/appointments/:kind/:id/complete", appointmentHandler.Complete)

		// ------------------------------
		// AVAILABILITY
		// ------------------------------
		api.GET("/availability/:kind/:providerId", availabilityHandler.Slots)

		// ------------------------------
		// PROVIDERS
		// ------------------------------
		api.GET("/providers/:kind", providerHandler.List)
		api.POST("/providers/:kind", providerHandler.Create)
		api.PUT("/providers/:kind/:id", providerHandler.Update)
		api.DELETE("/providers/:kind/:id", providerHandler.Delete)

		// ------------------------------
		// SERVICES
		// ------------------------------
		api.GET("/services/:kind", serviceHandler.List)
		api.POST("/services/:kind", serviceHandler.Create)
		api.PUT("/services/:kind/:id", serviceHandler.Update)
		api.DELETE("/services/:kind/:id", serviceHandler.Delete)

		// ------------------------------
		// CLIENTS
		// ------------------------------
		api.GET("/clients", clientHandler.List)
		api.POST("/clients", clientHandler.Create)
		api.PUT("/clients/:id", clientHandler.Update)
		api.DELETE("/clients/:id", clientHandler.Delete)
		api.DELETE("/clients", clientHandler.DeleteAll)

		// ------------------------------
		// SCHEDULES
		// ------------------------------
		api.POST("/schedules/:kind", scheduleHandler.Create)
		api.GET("/schedules/:kind/:providerId", scheduleHandler.ListForProvider)
		api.DELETE("/schedules/:kind/:providerId/:scheduleId", scheduleHandler.Delete)
		api.DELETE("/schedules/:kind/:providerId", scheduleHandler.DeleteAllForProvider)
		api.DELETE("/schedules", scheduleHandler.DeleteAllGlobal)
	}

	return nil
}
