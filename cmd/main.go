package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lshigami/SkillCheck/config"
	"github.com/lshigami/SkillCheck/database"
	_ "github.com/lshigami/SkillCheck/docs" // Swagger docs
	adminctrl "github.com/lshigami/SkillCheck/internal/controller/admin"
	aictrl "github.com/lshigami/SkillCheck/internal/controller/ai"
	gradingctrl "github.com/lshigami/SkillCheck/internal/controller/grading"
	userctrl "github.com/lshigami/SkillCheck/internal/controller/user"
	"github.com/lshigami/SkillCheck/internal/logger"
	"github.com/lshigami/SkillCheck/internal/middleware"
	"github.com/lshigami/SkillCheck/internal/model"
	"github.com/lshigami/SkillCheck/internal/monitoring"
	"github.com/lshigami/SkillCheck/internal/repository"
	"github.com/lshigami/SkillCheck/internal/service"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title SkillCheck Pro API
// @version 1.0
// @description Recruiting assessments: AI assisted job descriptions, skill extraction and test generation, deterministic grading, and AI review of free-form and coding answers.
// @termsOfService http://swagger.io/terms/
// @contact.name API Support
// @contact.url http://example.com/support
// @contact.email support@example.com
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		// Core Application Components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			database.NewRedisClient,
			NewRateLimiter,
			NewGinEngine,
		),

		// Repositories Layer
		fx.Provide(
			repository.NewTestRepository,
			repository.NewQuestionRepository,
			repository.NewTestAttemptRepository,
			repository.NewAnswerRepository,
		),

		// Services Layer
		fx.Provide(
			service.NewLLMProvider,
			service.NewGenerativeService,
			service.NewAdminTestService,
			service.NewTestGenerationService,
			service.NewUserTestService,
			service.NewTestSubmissionService,
			service.NewReportService,
		),

		// API Controllers Layer
		fx.Provide(
			adminctrl.NewAdminTestController,
			userctrl.NewUserTestController,
			aictrl.NewAIController,
			gradingctrl.NewGradingController,
		),

		fx.Invoke(logger.Configure),
		fx.Invoke(AutoMigrateDB),
		fx.Invoke(RegisterClientHooks),
		fx.Invoke(RegisterRoutesAndStartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")

	stopCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := app.Stop(stopCtx); err != nil {
		log.Error().Err(err).Msg("Error during shutdown")
	}
}

// NewRateLimiter guards the endpoints that call the generative model.
func NewRateLimiter(lc fx.Lifecycle, cfg *config.Config) *middleware.RateLimiter {
	rl := middleware.NewRateLimiter(cfg.RateLimit.MaxRequests, cfg.RateLimit.Window)
	stop := make(chan struct{})
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go rl.Run(stop)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			close(stop)
			return nil
		},
	})
	return rl
}

func NewGinEngine(cfg *config.Config) *gin.Engine {
	if cfg.Server.Mode == gin.ReleaseMode || cfg.Server.Mode == gin.TestMode {
		gin.SetMode(cfg.Server.Mode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	monitoring.Init()

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(gin.Recovery())
	r.Use(monitoring.MetricsMiddleware())

	// A wildcard origin cannot be combined with credentials.
	allowAll := len(cfg.Server.AllowedOrigins) == 0 || (len(cfg.Server.AllowedOrigins) == 1 && cfg.Server.AllowedOrigins[0] == "*")
	corsCfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", "Content-Disposition", middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if allowAll {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.Server.AllowedOrigins
		corsCfg.AllowCredentials = true
	}
	r.Use(cors.New(corsCfg))

	// Swagger UI
	// URL: http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/metrics", monitoring.PrometheusHandler())

	return r
}

// RegisterClientHooks closes the LLM and Redis clients on shutdown.
func RegisterClientHooks(lc fx.Lifecycle, llm service.LLMProvider, rdb *redis.Client) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			if err := service.CloseProvider(llm); err != nil {
				log.Warn().Err(err).Msg("Failed to close LLM client")
			}
			if rdb != nil {
				if err := rdb.Close(); err != nil {
					log.Warn().Err(err).Msg("Failed to close Redis client")
				}
			}
			return nil
		},
	})
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	db *gorm.DB,
	limiter *middleware.RateLimiter,
	adminTestCtrl *adminctrl.AdminTestController,
	userTestCtrl *userctrl.UserTestController,
	aiCtrl *aictrl.AIController,
	gradingCtrl *gradingctrl.GradingController,
) {
	router.GET("/healthz", func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "database": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	apiV1 := router.Group("/api/v1")

	// Stateless normalizer and grading engine
	assessmentGroup := apiV1.Group("/assessment")
	{
		assessmentGroup.POST("/normalize", gradingCtrl.Normalize)
		assessmentGroup.POST("/grade", gradingCtrl.Grade)
	}

	// Generative operations, rate limited per client IP
	aiGroup := apiV1.Group("/ai", limiter.Middleware())
	{
		aiGroup.POST("/job-descriptions", aiCtrl.GenerateJobDescription)
		aiGroup.POST("/skills/extract", aiCtrl.ExtractSkills)
		aiGroup.POST("/analysis/problem-solving", aiCtrl.AnalyzeProblemSolving)
		aiGroup.POST("/analysis/code-quality", aiCtrl.AnalyzeCodeQuality)
	}

	// Admin Routes (prefixed with /api/v1/admin)
	testsAdminGroup := apiV1.Group("/admin/tests")
	{
		testsAdminGroup.POST("", adminTestCtrl.CreateTest)
		testsAdminGroup.POST("/generate", limiter.Middleware(), adminTestCtrl.GenerateTest)
		testsAdminGroup.GET("/:test_id", adminTestCtrl.GetTest)
	}

	// User Routes (prefixed with /api/v1)
	{
		apiV1.GET("/tests", userTestCtrl.GetAllTests)
		apiV1.GET("/tests/:test_id", userTestCtrl.GetTestDetails)

		apiV1.POST("/tests/:test_id/attempts", userTestCtrl.SubmitTestAttempt)
		apiV1.GET("/tests/:test_id/attempts", userTestCtrl.GetTestAttempts)
		apiV1.GET("/test-attempts/:attempt_id", userTestCtrl.GetSpecificTestAttemptDetails)
		apiV1.POST("/test-attempts/:attempt_id/review", limiter.Middleware(), userTestCtrl.ReviewTestAttempt)
		apiV1.GET("/test-attempts/:attempt_id/report", userTestCtrl.DownloadAttemptReport)
	}

	server := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("SkillCheck API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.Test{},
		&model.Question{},
		&model.QuestionOption{},
		&model.TestAttempt{},
		&model.Answer{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
