package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	eventapp "github.com/finswitch/account-lookup/internal/application/event"
	lookupapp "github.com/finswitch/account-lookup/internal/application/lookup"
	"github.com/finswitch/account-lookup/internal/domain/directory"
	"github.com/finswitch/account-lookup/internal/infrastructure/auth"
	"github.com/finswitch/account-lookup/internal/infrastructure/cache"
	"github.com/finswitch/account-lookup/internal/infrastructure/config"
	"github.com/finswitch/account-lookup/internal/infrastructure/event"
	"github.com/finswitch/account-lookup/internal/infrastructure/logger"
	"github.com/finswitch/account-lookup/internal/infrastructure/persistence"
	"github.com/finswitch/account-lookup/internal/infrastructure/provider"
	"github.com/finswitch/account-lookup/internal/infrastructure/telemetry"
	"github.com/finswitch/account-lookup/internal/interfaces/http/handler"
	"github.com/finswitch/account-lookup/internal/interfaces/http/middleware"
	"github.com/finswitch/account-lookup/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	_ "github.com/finswitch/account-lookup/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

//	@title			Account Lookup Service API
//	@version		1.0
//	@description	Participant directory for a payment switching network. Resolves which financial service provider owns a party identifier and manages the oracles that hold those mappings.
//	@termsOfService	http://swagger.io/terms/

//	@contact.name	API Support
//	@contact.url	https://github.com/finswitch/account-lookup
//	@contact.email	support@finswitch.example.com

//	@license.name	Apache 2.0
//	@license.url	http://www.apache.org/licenses/LICENSE-2.0.html

//	@host		localhost:8080
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Bearer token authentication. Format: "Bearer {token}"

//	@externalDocs.description	OpenAPI
//	@externalDocs.url			https://swagger.io/resources/open-api/

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting Account Lookup Service",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Initialize OpenTelemetry providers (no-ops when telemetry is disabled)
	tracerProvider, err := telemetry.NewTracerProvider(context.Background(), telemetry.Config{
		Enabled:           cfg.Telemetry.Enabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		SamplingRatio:     cfg.Telemetry.SamplingRatio,
		ServiceName:       cfg.Telemetry.ServiceName,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize tracer provider", zap.Error(err))
	}
	defer func() {
		if err := tracerProvider.Shutdown(context.Background()); err != nil {
			log.Error("Error shutting down tracer provider", zap.Error(err))
		}
	}()

	meterProvider, err := telemetry.NewMeterProvider(context.Background(), telemetry.MetricsConfig{
		Enabled:           cfg.Telemetry.Enabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		ServiceName:       cfg.Telemetry.ServiceName,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize meter provider", zap.Error(err))
	}
	defer func() {
		if err := meterProvider.Shutdown(context.Background()); err != nil {
			log.Error("Error shutting down meter provider", zap.Error(err))
		}
	}()

	// Continuous profiling (pyroscope), if enabled
	if cfg.Telemetry.ProfilingEnabled {
		profiler, err := telemetry.NewProfiler(telemetry.ProfilerConfig{
			Enabled:             true,
			ServerAddress:       cfg.Telemetry.ProfilingServer,
			ApplicationName:     cfg.Telemetry.ServiceName,
			ProfileCPU:          true,
			ProfileAllocObjects: true,
			ProfileAllocSpace:   true,
		}, log)
		if err != nil {
			log.Warn("Failed to initialize profiler", zap.Error(err))
		} else {
			defer func() {
				if err := profiler.Stop(); err != nil {
					log.Error("Error stopping profiler", zap.Error(err))
				}
			}()
		}
	}

	// Create GORM logger backed by zap
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLog := logger.NewGormLogger(log, gormLogLevel)

	// Initialize database connection with custom logger
	db, err := persistence.NewDatabaseWithCustomLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Register database query tracing (otelgorm), if enabled
	if cfg.Telemetry.Enabled && cfg.Telemetry.DBTraceEnabled {
		dbTracing := telemetry.NewDBTracingPlugin(telemetry.DBTracingConfig{
			Enabled:          true,
			WithoutVariables: cfg.App.Env == "production",
		}, log)
		if err := dbTracing.RegisterOtelGorm(db.DB); err != nil {
			log.Warn("Failed to register database tracing", zap.Error(err))
		}
	}

	// Database query and connection pool metrics
	if cfg.Telemetry.Enabled {
		dbMetrics, err := telemetry.NewDBMetrics(meterProvider.Meter("db"), telemetry.DefaultDBMetricsConfig(), log)
		if err != nil {
			log.Warn("Failed to initialize database metrics", zap.Error(err))
		} else {
			if sqlDB, err := db.DB.DB(); err == nil {
				dbMetrics.SetSQLDB(sqlDB)
				dbMetrics.StartPoolStatsCollection(context.Background())
				defer dbMetrics.Stop()
			}
			if err := db.DB.Use(telemetry.NewDBMetricsPlugin(dbMetrics, log)); err != nil {
				log.Warn("Failed to register database metrics plugin", zap.Error(err))
			}
		}
	}

	// Directory gauge metrics (oracle set, association population, outbox backlog)
	if cfg.Telemetry.Enabled {
		directoryMetrics, err := telemetry.NewDirectoryMetrics(telemetry.DirectoryMetricsConfig{
			Meter:         meterProvider.Meter("directory"),
			Logger:        log,
			StateProvider: telemetry.NewGormDirectoryStateProvider(db.DB),
		})
		if err != nil {
			log.Warn("Failed to initialize directory metrics", zap.Error(err))
		} else {
			directoryMetrics.StartPeriodicCollection(context.Background(), time.Minute)
			defer directoryMetrics.Stop()
		}
	}

	// Initialize repositories
	oracleRepo := persistence.NewGormOracleRepository(db.DB)
	associationRepo := persistence.NewGormAssociationRepository(db.DB)
	outboxRepo := event.NewGormOutboxRepository(db.DB)

	// Initialize event serializer and register all event types
	eventSerializer := event.NewEventSerializer()
	event.RegisterAllEvents(eventSerializer)

	// Create outbox publisher for transactional event saving
	outboxPublisher := event.NewOutboxPublisher(eventSerializer)

	// Domain events go through the outbox so they survive restarts; the
	// outbox processor relays them to the in-process bus below.
	publisher := event.NewTransactionalPublisher(db, outboxPublisher)

	// Result cache backend
	var resultCache directory.ResultCache
	switch cfg.Cache.Backend {
	case "redis":
		resultCache, err = cache.NewRedisResultCache(cache.RedisCacheConfig{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}, cfg.Cache.KeyPrefix, cfg.Cache.TTLSeconds)
		if err != nil {
			log.Fatal("Failed to connect to Redis result cache", zap.Error(err))
		}
		log.Info("Redis result cache enabled",
			zap.String("addr", cfg.Redis.Addr()),
			zap.Int("ttl_seconds", cfg.Cache.TTLSeconds),
		)
	default:
		resultCache = cache.NewInMemoryResultCache(cfg.Cache.TTLSeconds)
		log.Info("In-memory result cache enabled", zap.Int("ttl_seconds", cfg.Cache.TTLSeconds))
	}
	defer func() {
		if err := resultCache.Destroy(context.Background()); err != nil {
			log.Error("Error destroying result cache", zap.Error(err))
		}
	}()

	// Oracle provider plumbing: the factory builds a provider per oracle,
	// the manager caches initialized providers until invalidated
	providerFactory := provider.NewFactory(associationRepo, db, cfg.Oracle.RequestTimeout, log)
	providerManager := provider.NewManager(providerFactory, log)
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		providerManager.Shutdown(shutdownCtx)
	}()

	// Initialize application services
	lookupService := lookupapp.NewLookupService(oracleRepo, providerManager, resultCache, publisher, log)

	// JWT for the oracle admin surface
	jwtService := auth.NewJWTService(cfg.JWT)

	// Initialize event bus and handlers
	eventBus := event.NewInMemoryEventBus(log)

	// Lookup commands can also arrive over the bus (e.g. relayed from a
	// message broker bridge); the command handler answers them with
	// resolution or error events
	commandHandler := lookupapp.NewCommandHandler(lookupService, lookupapp.NewErrorEventMapper(), publisher, log)
	eventBus.Subscribe(commandHandler, commandHandler.EventTypes()...)

	log.Info("Event handlers registered",
		zap.Strings("lookup_command_events", commandHandler.EventTypes()),
	)

	// Start event bus
	if err := eventBus.Start(context.Background()); err != nil {
		log.Fatal("Failed to start event bus", zap.Error(err))
	}
	defer func() {
		if err := eventBus.Stop(context.Background()); err != nil {
			log.Error("Error stopping event bus", zap.Error(err))
		}
	}()

	// Initialize and start outbox processor for guaranteed event delivery
	// The outbox processor reads events from the outbox_events table and publishes them to the event bus
	if cfg.Event.ProcessorEnabled {
		outboxProcessorConfig := event.DefaultOutboxProcessorConfig()
		outboxProcessorConfig.BatchSize = cfg.Event.BatchSize
		outboxProcessorConfig.PollInterval = cfg.Event.PollInterval
		outboxProcessorConfig.CleanupEnabled = cfg.Event.CleanupEnabled
		outboxProcessorConfig.CleanupRetention = cfg.Event.CleanupRetention

		outboxProcessor := event.NewOutboxProcessor(outboxRepo, eventBus, eventSerializer, outboxProcessorConfig, log)
		if err := outboxProcessor.Start(context.Background()); err != nil {
			log.Fatal("Failed to start outbox processor", zap.Error(err))
		}
		defer func() {
			if err := outboxProcessor.Stop(context.Background()); err != nil {
				log.Error("Error stopping outbox processor", zap.Error(err))
			}
		}()
		log.Info("Outbox processor started",
			zap.Int("batch_size", outboxProcessorConfig.BatchSize),
			zap.Duration("poll_interval", outboxProcessorConfig.PollInterval),
		)
	}

	// Initialize HTTP handlers
	partyHandler := handler.NewPartyHandler(lookupService)
	participantHandler := handler.NewParticipantHandler(lookupService)
	oracleHandler := handler.NewOracleHandler(lookupService)
	systemHandler := handler.NewSystemHandler()
	outboxHandler := handler.NewOutboxHandler(eventapp.NewOutboxService(outboxRepo, log))

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup validation
	middleware.SetupValidator()

	// Initialize router with custom middleware
	engine := gin.New()

	// Configure trusted proxies
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Apply middleware stack in order:
	// 1. RequestID - Generate/propagate request ID
	// 2. Recovery - Catch panics
	// 3. Logger - Log requests
	// 4. Tracing - OpenTelemetry spans (if enabled)
	// 5. Security - Add security headers
	// 6. CORS - Handle cross-origin requests
	// 7. BodyLimit - Limit request body size
	// 8. RateLimit - Apply rate limiting (if enabled)
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	if cfg.Telemetry.Enabled {
		engine.Use(middleware.Tracing())
		engine.Use(middleware.HTTPMetricsWithMeter(meterProvider.Meter("http.server"), true))
	}
	engine.Use(middleware.Secure())

	// Configure CORS from config
	corsConfig := middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	// Body size limit
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	// Rate limiting (if enabled)
	if cfg.HTTP.RateLimitEnabled {
		rateLimiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		engine.Use(middleware.RateLimit(rateLimiter))
		log.Info("Rate limiting enabled",
			zap.Int("requests", cfg.HTTP.RateLimitRequests),
			zap.Duration("window", cfg.HTTP.RateLimitWindow),
		)
	}

	// Health check endpoint (outside API versioning)
	engine.GET("/health", healthHandler(db, log))

	// Swagger documentation endpoint
	if cfg.Swagger.Enabled {
		swaggerGroup := engine.Group("/swagger")
		swaggerGroup.Use(middleware.SwaggerProtection(middleware.SwaggerConfig{
			Enabled:     cfg.Swagger.Enabled,
			RequireAuth: cfg.Swagger.RequireAuth,
			AllowedIPs:  cfg.Swagger.AllowedIPs,
		}, middleware.JWTAuthMiddleware(jwtService)))
		swaggerGroup.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// Setup API routes using router
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))

	// Apply JWT authentication middleware to API routes
	// Party lookup and participant association are switch-internal traffic
	// authenticated at the network layer; only the oracle admin surface
	// requires a bearer token
	jwtConfig := middleware.JWTMiddlewareConfig{
		JWTService: jwtService,
		SkipPaths: []string{
			"/api/v1/parties/lookup",
			"/api/v1/participants",
			"/api/v1/system/ping",
			"/api/v1/system/info",
			"/api/v1/system/health",
		},
		SkipPathPrefixes: []string{
			"/api/v1/parties/",
		},
		Logger: log,
	}
	r.Use(middleware.JWTAuthMiddlewareWithConfig(jwtConfig))

	// Party resolution routes
	partyRoutes := router.NewDomainGroup("parties", "/parties")
	partyRoutes.GET("/:partyType/:partyId", partyHandler.GetPartyByTypeAndID)
	partyRoutes.GET("/:partyType/:partyId/:partySubType", partyHandler.GetPartyByTypeAndID)
	partyRoutes.POST("/lookup", partyHandler.BulkLookup)

	// Participant association routes
	participantRoutes := router.NewDomainGroup("participants", "/participants")
	participantRoutes.POST("", participantHandler.Associate)
	participantRoutes.DELETE("", participantHandler.Disassociate)

	// Oracle admin routes (JWT protected)
	oracleRoutes := router.NewDomainGroup("oracles", "/oracles")
	oracleRoutes.POST("", oracleHandler.Create)
	oracleRoutes.GET("", oracleHandler.List)
	oracleRoutes.GET("/:id", oracleHandler.Get)
	oracleRoutes.DELETE("/:id", oracleHandler.Delete)
	oracleRoutes.GET("/:id/health", oracleHandler.Health)
	oracleRoutes.GET("/:id/associations", oracleHandler.Associations)

	// System routes
	systemRoutes := router.NewDomainGroup("system", "/system")
	systemRoutes.GET("/info", systemHandler.GetSystemInfo)
	systemRoutes.GET("/health", systemHandler.Health)

	// Outbox administration routes. Not in the JWT skip list, so they
	// require operator credentials.
	systemRoutes.GET("/outbox/stats", outboxHandler.Stats)
	systemRoutes.GET("/outbox/dead", outboxHandler.ListDead)
	systemRoutes.GET("/outbox/:id", outboxHandler.Get)
	systemRoutes.POST("/outbox/:id/retry", outboxHandler.Retry)
	systemRoutes.POST("/outbox/retry-all", outboxHandler.RetryAll)

	// Register all domain groups
	r.Register(partyRoutes).
		Register(participantRoutes).
		Register(oracleRoutes).
		Register(systemRoutes)

	// Setup routes
	r.Setup()

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// healthHandler returns a handler for health check endpoints
func healthHandler(db *persistence.Database, _ *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqLog := logger.GetGinLogger(c)
		if err := db.Ping(); err != nil {
			reqLog.Warn("Health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"time":     time.Now().Format(time.RFC3339),
				"database": "error",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": "ok",
		})
	}
}
