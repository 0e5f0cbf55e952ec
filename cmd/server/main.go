package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	catalogapp "github.com/arganshop/backend/internal/application/catalog"
	checkoutapp "github.com/arganshop/backend/internal/application/checkout"
	orderapp "github.com/arganshop/backend/internal/application/order"
	"github.com/arganshop/backend/internal/infrastructure/auth"
	"github.com/arganshop/backend/internal/infrastructure/cartstore"
	"github.com/arganshop/backend/internal/infrastructure/config"
	"github.com/arganshop/backend/internal/infrastructure/logger"
	"github.com/arganshop/backend/internal/infrastructure/persistence"
	"github.com/arganshop/backend/internal/infrastructure/storage"
	"github.com/arganshop/backend/internal/infrastructure/telemetry"
	"github.com/arganshop/backend/internal/interfaces/http/handler"
	"github.com/arganshop/backend/internal/interfaces/http/middleware"
	"github.com/arganshop/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"github.com/uptrace/opentelemetry-go-extra/otelgorm"
	"go.uber.org/zap"
)

const version = "1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting storefront backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Tracing
	tracerProvider, err := telemetry.NewTracerProvider(context.Background(), cfg.Telemetry, log)
	if err != nil {
		log.Fatal("Failed to initialize tracing", zap.Error(err))
	}
	defer func() {
		if err := tracerProvider.Shutdown(context.Background()); err != nil {
			log.Error("Error shutting down tracer provider", zap.Error(err))
		}
	}()

	// Database
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	if tracerProvider.IsEnabled() {
		if err := db.DB.Use(otelgorm.NewPlugin()); err != nil {
			log.Warn("Failed to enable database tracing", zap.Error(err))
		}
	}
	log.Info("Database connected")

	// Cart session store
	storeFactory := cartstore.NewFactory(cfg.Redis,
		cartstore.WithLogger(log),
		cartstore.WithMemoryFallback(cfg.App.Env != "production"),
	)
	cartStore, err := storeFactory.CreateStore(cfg.Cart.Backend)
	if err != nil {
		log.Fatal("Failed to create cart store", zap.Error(err))
	}
	defer func() {
		if err := cartStore.Close(); err != nil {
			log.Error("Error closing cart store", zap.Error(err))
		}
	}()

	// Object storage for product photos
	var objectStorage catalogapp.ObjectStorageService
	if cfg.Storage.Enabled {
		s3Storage, err := storage.NewS3ObjectStorage(&cfg.Storage, storage.WithLogger(log))
		if err != nil {
			log.Fatal("Failed to initialize object storage", zap.Error(err))
		}
		objectStorage = s3Storage
		log.Info("Object storage enabled", zap.String("bucket", cfg.Storage.Bucket))
	} else {
		objectStorage = storage.NewStubObjectStorage()
		log.Info("Object storage disabled, using stub URLs")
	}

	// Repositories
	productRepo := persistence.NewGormProductRepository(db.DB)
	orderRepo := persistence.NewGormOrderRepository(db.DB)

	// Application services
	productService := catalogapp.NewProductService(productRepo, objectStorage, cfg.Storage.PresignExpiration)
	cartService := checkoutapp.NewCartService(cartStore, productRepo, cfg.Cart.TTL)
	checkoutService := checkoutapp.NewCheckoutService(cartStore, orderRepo)
	orderService := orderapp.NewOrderService(orderRepo, productRepo)

	// Auth
	jwtService := auth.NewJWTService(cfg.JWT)
	verifier := auth.NewCredentialVerifier(cfg.Admin)

	// Handlers
	productHandler := handler.NewProductHandler(productService)
	cartHandler := handler.NewCartHandler(cartService)
	checkoutHandler := handler.NewCheckoutHandler(checkoutService)
	orderHandler := handler.NewOrderHandler(orderService)
	authHandler := handler.NewAuthHandler(verifier, jwtService)
	systemHandler := handler.NewSystemHandler(db, cfg.App.Name, version)

	// HTTP engine
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.SetupValidator()
	engine := gin.New()
	if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
		log.Fatal("Failed to set trusted proxies", zap.Error(err))
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(middleware.Tracing(cfg.Telemetry.ServiceName, tracerProvider.IsEnabled()))
	engine.Use(logger.GinMiddleware(log, "/health"))
	engine.Use(middleware.Secure())
	engine.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID", "X-Cart-Session"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))
	engine.Use(middleware.CartSession())
	engine.Use(middleware.Locale())
	engine.Use(middleware.TraceEnrichment())

	if cfg.HTTP.RateLimitEnabled {
		limiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		defer limiter.Close()
		engine.Use(middleware.RateLimit(limiter))
		log.Info("Rate limiting enabled",
			zap.Int("requests", cfg.HTTP.RateLimitRequests),
			zap.Duration("window", cfg.HTTP.RateLimitWindow),
		)
	}

	// Health check outside API versioning
	engine.GET("/health", systemHandler.Health)

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))

	systemRoutes := router.NewDomainGroup("system", "/system")
	systemRoutes.GET("/ping", systemHandler.Ping)
	systemRoutes.GET("/info", systemHandler.Info)

	catalogRoutes := router.NewDomainGroup("catalog", "/catalog")
	catalogRoutes.GET("/products", productHandler.List)
	catalogRoutes.GET("/products/:id", productHandler.Get)

	cartRoutes := router.NewDomainGroup("cart", "/cart")
	cartRoutes.GET("", cartHandler.Get)
	cartRoutes.DELETE("", cartHandler.Clear)
	cartRoutes.POST("/items", cartHandler.AddItem)
	cartRoutes.PUT("/items/:product_id", cartHandler.UpdateQuantity)
	cartRoutes.DELETE("/items/:product_id", cartHandler.RemoveItem)

	checkoutRoutes := router.NewDomainGroup("checkout", "/checkout")
	checkoutRoutes.POST("", checkoutHandler.Submit)

	authRoutes := router.NewDomainGroup("auth", "/auth")
	authRoutes.POST("/login", authHandler.Login)

	adminRoutes := router.NewDomainGroup("admin", "/admin").
		Use(middleware.AdminAuth(jwtService))
	adminRoutes.GET("/orders", orderHandler.List)
	adminRoutes.GET("/orders/:id", orderHandler.Get)
	adminRoutes.GET("/orders/:id/details", orderHandler.Details)
	adminRoutes.PUT("/orders/:id/status", orderHandler.UpdateStatus)
	adminRoutes.DELETE("/orders/:id", orderHandler.Delete)
	adminRoutes.POST("/products", productHandler.Create)
	adminRoutes.PUT("/products/:id", productHandler.Update)
	adminRoutes.DELETE("/products/:id", productHandler.Delete)
	adminRoutes.POST("/products/:id/photo-upload-url", productHandler.PhotoUploadURL)
	adminRoutes.POST("/products/:id/photo-confirm", productHandler.ConfirmPhotoUpload)

	r.Register(systemRoutes).
		Register(catalogRoutes).
		Register(cartRoutes).
		Register(checkoutRoutes).
		Register(authRoutes).
		Register(adminRoutes)
	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

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
