package main

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/Justcode790/UniSeat-backend/internal/handler"
	"github.com/Justcode790/UniSeat-backend/internal/middleware"
	"github.com/Justcode790/UniSeat-backend/internal/models"
	"github.com/Justcode790/UniSeat-backend/pkg/config"
)

type routeDeps struct {
	auth       *handler.AuthHandler
	locations  *handler.LocationHandler
	exams      *handler.ExamHandler
	students   *handler.StudentHandler
	seatPlans  *handler.SeatPlanHandler
	metrics    *handler.MetricsHandler
	tokens     middleware.TokenValidator
	limiter    middleware.RateLimiter
	logger     *zap.Logger
	seatPlanOn bool
}

func registerRoutes(r *gin.Engine, cfg *config.Config, d routeDeps) {
	r.GET("/health", d.metrics.Health)
	r.GET("/ready", d.metrics.Ready)
	r.GET("/metrics", d.metrics.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	rl := func(bucket string) gin.HandlerFunc {
		return middleware.RateLimit(d.limiter, cfg.RateLimit.Prefix+":"+bucket, cfg.RateLimit.Capacity, d.logger)
	}
	audit := func(action, resource string) gin.HandlerFunc {
		return middleware.Audit(d.logger, action, resource)
	}
	admin := middleware.RequireRoles(models.RoleAdmin)

	api := r.Group(cfg.APIPrefix)

	auth := api.Group("/auth")
	auth.POST("/login", rl("login"), d.auth.Login)

	secured := api.Group("")
	secured.Use(middleware.JWT(d.tokens))

	secured.GET("/auth/me", d.auth.Me)
	secured.POST("/auth/register", admin, audit("create", "user"), d.auth.Register)
	secured.GET("/metrics/summary", admin, d.metrics.Summary)

	blocks := secured.Group("/blocks")
	blocks.GET("", d.locations.ListBlocks)
	blocks.GET("/:id", d.locations.GetBlock)
	blocks.POST("", admin, audit("create", "block"), d.locations.CreateBlock)
	blocks.PUT("/:id", admin, audit("update", "block"), d.locations.UpdateBlock)
	blocks.DELETE("/:id", admin, audit("delete", "block"), d.locations.DeleteBlock)

	floors := secured.Group("/floors")
	floors.GET("", d.locations.ListFloors)
	floors.GET("/:id", d.locations.GetFloor)
	floors.POST("", admin, audit("create", "floor"), d.locations.CreateFloor)
	floors.PUT("/:id", admin, audit("update", "floor"), d.locations.UpdateFloor)
	floors.DELETE("/:id", admin, audit("delete", "floor"), d.locations.DeleteFloor)

	classrooms := secured.Group("/classrooms")
	classrooms.GET("", d.locations.ListClassrooms)
	classrooms.GET("/:id", d.locations.GetClassroom)
	classrooms.POST("", admin, audit("create", "classroom"), d.locations.CreateClassroom)
	classrooms.PUT("/:id", admin, audit("update", "classroom"), d.locations.UpdateClassroom)
	classrooms.DELETE("/:id", admin, audit("delete", "classroom"), d.locations.DeleteClassroom)

	students := secured.Group("/students")
	students.GET("", d.students.List)
	students.GET("/:id", d.students.Get)
	students.POST("", admin, audit("create", "student"), d.students.Create)
	students.POST("/import", admin, audit("import", "student"), d.students.Import)
	students.PUT("/:id", admin, audit("update", "student"), d.students.Update)
	students.DELETE("/:id", admin, audit("delete", "student"), d.students.Delete)

	exams := secured.Group("/exams")
	exams.GET("", d.exams.List)
	exams.GET("/:examId", d.exams.Get)
	exams.POST("", admin, audit("create", "exam"), d.exams.Create)
	exams.PUT("/:examId", admin, audit("update", "exam"), d.exams.Update)
	exams.DELETE("/:examId", admin, audit("delete", "exam"), d.exams.Delete)

	if !d.seatPlanOn {
		return
	}
	seatPlan := exams.Group("/:examId/seatplan")
	seatPlan.GET("", d.seatPlans.Get)
	seatPlan.GET("/layout", d.seatPlans.Layout)
	seatPlan.GET("/export", d.seatPlans.Export)
	seatPlan.POST("", admin, rl("seatplan"), audit("generate", "seat_plan"), d.seatPlans.Generate)
	seatPlan.DELETE("", admin, audit("delete", "seat_plan"), d.seatPlans.Delete)
}
