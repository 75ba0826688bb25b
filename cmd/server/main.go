package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	identityapp "github.com/fitadmin/backend/internal/application/identity"
	"github.com/fitadmin/backend/internal/application/media"
	memberapp "github.com/fitadmin/backend/internal/application/member"
	sessionapp "github.com/fitadmin/backend/internal/application/session"
	trainingapp "github.com/fitadmin/backend/internal/application/training"
	"github.com/fitadmin/backend/internal/infrastructure/auth"
	"github.com/fitadmin/backend/internal/infrastructure/config"
	"github.com/fitadmin/backend/internal/infrastructure/logger"
	"github.com/fitadmin/backend/internal/infrastructure/persistence"
	"github.com/fitadmin/backend/internal/infrastructure/storage"
	"github.com/fitadmin/backend/internal/infrastructure/stream"
	"github.com/fitadmin/backend/internal/interfaces/http/handler"
	"github.com/fitadmin/backend/internal/interfaces/http/middleware"
	"github.com/fitadmin/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(cfg.Log)
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting fitness admin backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Connect to the document database
	connectCtx, cancelConnect := context.WithTimeout(context.Background(), cfg.Mongo.ConnectTimeout)
	db, err := persistence.NewDatabase(connectCtx, &cfg.Mongo)
	cancelConnect()
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		closeCtx, cancelClose := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancelClose()
		if err := db.Close(closeCtx); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Initialize repositories
	programRepo := persistence.NewMongoProgramRepository(db)
	dayRepo := persistence.NewMongoDayRepository(db)
	exerciseRepo := persistence.NewMongoExerciseRepository(db)
	sessionRepo := persistence.NewMongoSessionRepository(db)
	memberRepo := persistence.NewMongoMemberRepository(db)
	allowListRepo := persistence.NewMongoAllowListRepository(db)

	// Initialize upload broker backends
	var objectStorage media.ObjectStorage
	if cfg.Storage.AccessKey != "" && cfg.Storage.SecretKey != "" && cfg.Storage.Bucket != "" {
		s3Storage, err := storage.NewS3ObjectStorage(&cfg.Storage, storage.WithLogger(log.Named("storage")))
		if err != nil {
			log.Fatal("Failed to initialize object storage", zap.Error(err))
		}
		objectStorage = s3Storage
	} else {
		if cfg.IsProduction() {
			log.Fatal("Object storage credentials are required in production")
		}
		log.Warn("Object storage credentials missing, using stub storage")
		objectStorage = storage.NewStubObjectStorage()
	}

	var videoStream media.VideoStream
	if cfg.Stream.AccountID != "" && cfg.Stream.APIToken != "" {
		streamClient, err := stream.NewClient(&cfg.Stream, stream.WithLogger(log.Named("stream")))
		if err != nil {
			log.Fatal("Failed to initialize stream client", zap.Error(err))
		}
		videoStream = streamClient
	} else {
		if cfg.IsProduction() {
			log.Fatal("Stream credentials are required in production")
		}
		log.Warn("Stream credentials missing, using stub stream")
		videoStream = stream.NewStubStream()
	}

	// Initialize auth components
	adminSessions := auth.NewSessionService(cfg.Auth, cfg.App.Name)
	identityVerifier := auth.NewJWTIdentityVerifier(cfg.Auth)

	// Initialize application services
	programService := trainingapp.NewProgramService(programRepo, log.Named("programs"))
	dayService := trainingapp.NewDayService(dayRepo, exerciseRepo, log.Named("days"))
	exerciseService := trainingapp.NewExerciseService(exerciseRepo, log.Named("exercises"))
	sessionService := sessionapp.NewService(sessionRepo, log.Named("sessions"))
	memberService := memberapp.NewService(memberRepo, log.Named("users"))
	uploadService := media.NewUploadService(objectStorage, videoStream,
		cfg.Storage.PresignExpiration, cfg.Stream.MaxDurationSeconds, log.Named("uploads"))
	authService := identityapp.NewAuthService(identityVerifier, allowListRepo, adminSessions, log.Named("auth"))

	// Setup gin
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.SetupValidator()

	engine := gin.New()
	if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
		log.Fatal("Failed to set trusted proxies", zap.Error(err))
	}

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	if len(cfg.HTTP.CORSAllowMethods) > 0 {
		corsConfig.AllowMethods = cfg.HTTP.CORSAllowMethods
	}
	if len(cfg.HTTP.CORSAllowHeaders) > 0 {
		corsConfig.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	}

	engine.Use(
		middleware.RequestID(),
		logger.GinMiddleware(log.Named("http")),
		logger.Recovery(log),
		middleware.Secure(),
		middleware.CORSWithConfig(corsConfig),
		middleware.BodyLimit(cfg.HTTP.MaxBodySize),
	)

	engine.GET("/healthz", healthHandler(db))

	// Register routes: auth stays open, everything else behind the guard
	r := router.NewRouter(engine, middleware.AdminSessionGuard(cfg.Cookie.Name))
	r.RegisterPublic(
		handler.NewAuthHandler(authService, adminSessions, cfg.Cookie),
	)
	r.RegisterProtected(
		handler.NewProgramHandler(programService),
		handler.NewDayHandler(dayService),
		handler.NewExerciseHandler(exerciseService),
		handler.NewSessionHandler(sessionService),
		handler.NewUserHandler(memberService),
		handler.NewUploadHandler(uploadService),
	)
	r.Setup()

	// Create HTTP server with config
	srv := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      engine,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
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

// healthHandler reports liveness and database reachability
func healthHandler(db *persistence.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := db.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
