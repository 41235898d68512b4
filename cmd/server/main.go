package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	catalogapp "github.com/storefront/backend/internal/application/catalog"
	financeapp "github.com/storefront/backend/internal/application/finance"
	identityapp "github.com/storefront/backend/internal/application/identity"
	merchapp "github.com/storefront/backend/internal/application/merchandising"
	partnerapp "github.com/storefront/backend/internal/application/partner"
	shoppingapp "github.com/storefront/backend/internal/application/shopping"
	storefrontapp "github.com/storefront/backend/internal/application/storefront"
	tradeapp "github.com/storefront/backend/internal/application/trade"
	"github.com/storefront/backend/internal/infrastructure/auth"
	"github.com/storefront/backend/internal/infrastructure/cache"
	"github.com/storefront/backend/internal/infrastructure/config"
	"github.com/storefront/backend/internal/infrastructure/logger"
	"github.com/storefront/backend/internal/infrastructure/persistence"
	"github.com/storefront/backend/internal/infrastructure/storage"
	"github.com/storefront/backend/internal/interfaces/http/handler"
	"github.com/storefront/backend/internal/interfaces/http/middleware"
	"github.com/storefront/backend/internal/interfaces/http/router"
)

// version is stamped at build time via -ldflags.
var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

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
		_ = log.Sync()
	}()

	log.Info("Starting storefront backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
		zap.String("version", version),
	)

	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, log, logger.MapGormLogLevel(cfg.Log.Level))
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected")

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Error closing Redis client", zap.Error(err))
		}
	}()
	pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		cancelPing()
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	cancelPing()
	log.Info("Redis connected", zap.String("addr", cfg.Redis.Addr()))

	// Infrastructure shared by the services
	jwtService := auth.NewJWTService(cfg.JWT)
	blacklist := auth.NewRedisTokenBlacklist(redisClient)
	cartStore := cache.NewRedisCartStore(redisClient, cfg.Session.CartTTL)

	var imageStorage catalogapp.ImageStorage
	if cfg.Storage.Bucket != "" {
		s3Storage, err := storage.NewS3ImageStorage(&cfg.Storage, storage.WithLogger(log))
		if err != nil {
			log.Fatal("Failed to initialize object storage", zap.Error(err))
		}
		imageStorage = s3Storage
		log.Info("Object storage ready", zap.String("bucket", cfg.Storage.Bucket))
	} else {
		imageStorage = storage.NewStubImageStorage()
		log.Warn("No storage bucket configured, image uploads are disabled")
	}

	// Repositories
	storeRepo := persistence.NewGormStoreRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)
	customerRepo := persistence.NewGormCustomerRepository(db.DB)
	productRepo := persistence.NewGormProductRepository(db.DB)
	categoryRepo := persistence.NewGormCategoryRepository(db.DB)
	sectionRepo := persistence.NewGormSectionRepository(db.DB)
	bannerRepo := persistence.NewGormBannerRepository(db.DB)
	orderRepo := persistence.NewGormOrderRepository(db.DB)
	paymentRepo := persistence.NewGormPaymentRepository(db.DB)
	txManager := persistence.NewTransactionManager(db)

	// Application services
	authService := identityapp.NewAuthService(userRepo, storeRepo, jwtService, blacklist, log)
	storeService := identityapp.NewStoreService(storeRepo, userRepo, txManager, log)
	customerService := partnerapp.NewCustomerService(customerRepo, jwtService, blacklist, log)
	productService := catalogapp.NewProductService(productRepo, categoryRepo)
	categoryService := catalogapp.NewCategoryService(categoryRepo, productRepo)
	sectionService := merchapp.NewSectionService(sectionRepo)
	bannerService := merchapp.NewBannerService(bannerRepo)
	browseService := storefrontapp.NewBrowseService(storeRepo, productRepo, categoryRepo, bannerRepo, log)
	sectionProductService := storefrontapp.NewSectionProductService(sectionRepo, productRepo, log)
	cartService := shoppingapp.NewCartService(cartStore, productRepo, log)
	checkoutService := tradeapp.NewCheckoutService(cartStore, productRepo, customerRepo, orderRepo, txManager, log)
	orderService := tradeapp.NewOrderService(orderRepo, productRepo, txManager)
	paymentService := financeapp.NewPaymentService(paymentRepo, orderRepo, txManager, log)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())
	engine.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))
	if cfg.HTTP.RateLimitEnabled {
		engine.Use(middleware.RateLimit(middleware.RateLimitConfig{
			Requests: cfg.HTTP.RateLimitRequests,
			Window:   cfg.HTTP.RateLimitWindow,
		}))
		log.Info("Rate limiting enabled",
			zap.Int("requests", cfg.HTTP.RateLimitRequests),
			zap.Duration("window", cfg.HTTP.RateLimitWindow),
		)
	}

	router.Setup(engine, router.Dependencies{
		Config:        cfg,
		Logger:        log,
		JWTService:    jwtService,
		Blacklist:     blacklist,
		StoreResolver: browseService,
	}, router.Handlers{
		Health:     handler.NewHealthHandler(db, redisClient, version),
		Auth:       handler.NewAuthHandler(authService),
		Store:      handler.NewStoreHandler(storeService),
		Product:    handler.NewProductHandler(productService),
		Category:   handler.NewCategoryHandler(categoryService),
		Section:    handler.NewSectionHandler(sectionService),
		Banner:     handler.NewBannerHandler(bannerService),
		Order:      handler.NewOrderHandler(orderService),
		Payment:    handler.NewPaymentHandler(paymentService),
		Customer:   handler.NewCustomerHandler(customerService),
		Upload:     handler.NewUploadHandler(imageStorage),
		Storefront: handler.NewStorefrontHandler(browseService, sectionProductService),
		Cart:       handler.NewCartHandler(cartService),
		Checkout:   handler.NewCheckoutHandler(checkoutService, orderService),
	})

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
