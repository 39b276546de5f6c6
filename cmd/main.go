package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/tdnghia/jobportal/config"
	"github.com/tdnghia/jobportal/database"
	_ "github.com/tdnghia/jobportal/docs" // Swagger docs
	recruiterctrl "github.com/tdnghia/jobportal/internal/controller/recruiter"
	resumectrl "github.com/tdnghia/jobportal/internal/controller/resume"
	studentctrl "github.com/tdnghia/jobportal/internal/controller/student"
	"github.com/tdnghia/jobportal/internal/logger"
	"github.com/tdnghia/jobportal/internal/middleware"
	"github.com/tdnghia/jobportal/internal/model"
	"github.com/tdnghia/jobportal/internal/repository"
	"github.com/tdnghia/jobportal/internal/service"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Job Portal Assessment API
// @version 1.0
// @description REST API for recruiter-authored aptitude tests, one-shot candidate submissions with deterministic scoring, and on-demand resume PDF generation.
// @contact.name API Support
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			NewGinEngine,
		),

		fx.Provide(
			repository.NewTestRepository,
			repository.NewTestResultRepository,
		),

		fx.Provide(
			service.NewRecruiterTestService,
			service.NewAssessmentService,
			func(cfg *config.Config) service.CompilerRunner {
				return service.NewPdflatexRunner(cfg.Resume.PdflatexBin)
			},
			func(runner service.CompilerRunner, cfg *config.Config) service.ResumeService {
				return service.NewResumeService(runner, time.Duration(cfg.Resume.TimeoutSeconds)*time.Second)
			},
		),

		fx.Provide(
			recruiterctrl.NewTestController,
			studentctrl.NewAssessmentController,
			resumectrl.NewResumeController,
		),

		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(AutoMigrateDB),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("user_agent", param.Request.UserAgent()).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	testCtrl *recruiterctrl.TestController,
	assessmentCtrl *studentctrl.AssessmentController,
	resumeCtrl *resumectrl.ResumeController,
) {
	api := router.Group("/api/v1")
	api.Use(middleware.Auth(cfg.Auth.JWTSecret))

	tests := api.Group("/tests")
	{
		tests.POST("", middleware.RequireRole(model.RoleRecruiter), testCtrl.CreateTest)
		tests.GET("", middleware.RequireRole(model.RoleRecruiter), testCtrl.ListTests)
		tests.GET("/available", middleware.RequireRole(model.RoleStudent), assessmentCtrl.ListAvailableTests)
		tests.GET("/:test_id", assessmentCtrl.GetTest)
		tests.PATCH("/:test_id", middleware.RequireRole(model.RoleRecruiter), testCtrl.UpdateTest)
		tests.DELETE("/:test_id", middleware.RequireRole(model.RoleRecruiter), testCtrl.DeleteTest)
		tests.POST("/:test_id/submit", middleware.RequireRole(model.RoleStudent), assessmentCtrl.SubmitTest)
		tests.GET("/:test_id/results", assessmentCtrl.GetResults)
	}

	api.POST("/resume/generate", resumeCtrl.GenerateResume)

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Job portal API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
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
		&model.TestResult{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
