package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	_ "github.com/Justcode790/UniSeat-backend/api/swagger"
	"github.com/Justcode790/UniSeat-backend/internal/events"
	"github.com/Justcode790/UniSeat-backend/internal/handler"
	"github.com/Justcode790/UniSeat-backend/internal/middleware"
	"github.com/Justcode790/UniSeat-backend/internal/repository"
	"github.com/Justcode790/UniSeat-backend/internal/service"
	"github.com/Justcode790/UniSeat-backend/migrations"
	"github.com/Justcode790/UniSeat-backend/pkg/cache"
	"github.com/Justcode790/UniSeat-backend/pkg/config"
	"github.com/Justcode790/UniSeat-backend/pkg/database"
	"github.com/Justcode790/UniSeat-backend/pkg/export"
	"github.com/Justcode790/UniSeat-backend/pkg/logger"
	corsmiddleware "github.com/Justcode790/UniSeat-backend/pkg/middleware/cors"
	reqidmiddleware "github.com/Justcode790/UniSeat-backend/pkg/middleware/requestid"
)

// @title UniSeat API
// @version 1.0.0
// @description Exam seat allocation service
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Fatal("failed to connect database", zap.Error(err))
	}
	defer db.Close()

	if cfg.Database.AutoMigrate {
		if err := migrations.Up(db.DB, logr); err != nil {
			logr.Fatal("failed to apply migrations", zap.Error(err))
		}
	}

	// redis is optional: without it reads skip the cache and rate limiting is off.
	var redisClient *redis.Client
	if client, err := cache.NewRedis(cfg.Redis); err != nil {
		logr.Warn("redis unavailable, caching and rate limiting disabled", zap.Error(err))
	} else {
		redisClient = client
		defer redisClient.Close()
	}

	validate := validator.New()
	metrics := service.NewMetricsService()

	cacheRepo := repository.NewCacheRepository(redisClient, logr)
	cacheSvc := service.NewCacheService(cacheRepo, metrics, cfg.SeatPlan.CacheTTL, logr, redisClient != nil)

	var publisher events.Publisher = events.NopPublisher{}
	var queuePublisher *events.QueuePublisher
	if cfg.Events.Enabled {
		sender := events.NewAMQPSender(cfg.Events.URL, cfg.Events.Queue, logr)
		defer sender.Close() //nolint:errcheck
		queuePublisher = events.NewQueuePublisher(sender, events.QueueConfig{
			Workers:    cfg.Events.Workers,
			MaxRetries: cfg.Events.Retries,
			RetryDelay: time.Second,
		}, logr)
		queuePublisher.Start(context.Background())
		publisher = queuePublisher
	}

	userRepo := repository.NewUserRepository(db)
	blockRepo := repository.NewBlockRepository(db)
	floorRepo := repository.NewFloorRepository(db)
	classroomRepo := repository.NewClassroomRepository(db)
	examRepo := repository.NewExamRepository(db)
	studentRepo := repository.NewStudentRepository(db)
	seatPlanRepo := repository.NewSeatPlanRepository(db)

	authSvc := service.NewAuthService(userRepo, validate, logr, service.AuthConfig{
		AccessTokenSecret: cfg.JWT.Secret,
		AccessTokenExpiry: cfg.JWT.Expiration,
		Issuer:            "uniseat",
	})
	blockSvc := service.NewBlockService(blockRepo, cacheSvc, validate, logr)
	floorSvc := service.NewFloorService(floorRepo, blockRepo, cacheSvc, validate, logr)
	classroomSvc := service.NewClassroomService(classroomRepo, floorRepo, cacheSvc, validate, logr)
	examSvc := service.NewExamService(examRepo, cacheSvc, validate, logr)
	studentSvc := service.NewStudentService(studentRepo, validate, logr)
	seatPlanSvc := service.NewSeatPlanService(service.SeatPlanDeps{
		Plans:      seatPlanRepo,
		Exams:      examRepo,
		Students:   studentRepo,
		Classrooms: classroomRepo,
		Cache:      cacheSvc,
		Metrics:    metrics,
		Events:     publisher,
		CSV:        export.NewCSVExporter(),
		PDF:        export.NewPDFExporter(),
		CacheTTL:   cfg.SeatPlan.CacheTTL,
		Logger:     logr,
	})

	var limiter middleware.RateLimiter
	if cfg.RateLimit.Enabled && redisClient != nil {
		limiter = middleware.NewRedisTokenBucket(redisClient, middleware.TokenBucketConfig{
			Capacity:       cfg.RateLimit.Capacity,
			RefillTokens:   cfg.RateLimit.RefillTokens,
			RefillInterval: cfg.RateLimit.RefillInterval,
			TTL:            cfg.RateLimit.TTL,
		})
	}

	var cachePinger handler.Pinger
	if redisClient != nil {
		cachePinger = cacheRepo
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metrics))
	r.Use(middleware.WithResponseMeta())

	registerRoutes(r, cfg, routeDeps{
		auth:       handler.NewAuthHandler(authSvc),
		locations:  handler.NewLocationHandler(blockSvc, floorSvc, classroomSvc),
		exams:      handler.NewExamHandler(examSvc),
		students:   handler.NewStudentHandler(studentSvc, cfg.Upload.MaxCSVBytes),
		seatPlans:  handler.NewSeatPlanHandler(seatPlanSvc),
		metrics:    handler.NewMetricsHandler(metrics, handler.PingFunc(db.PingContext), cachePinger),
		tokens:     authSvc,
		limiter:    limiter,
		logger:     logr,
		seatPlanOn: cfg.SeatPlan.Enabled,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logr.Info("server starting", zap.String("addr", srv.Addr), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logr.Info("shutting down")
	if err := srv.Shutdown(ctx); err != nil {
		logr.Error("http shutdown", zap.Error(err))
	}
	if queuePublisher != nil {
		queuePublisher.Stop(ctx)
	}
}
