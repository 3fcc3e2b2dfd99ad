package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/studenthub/examgate/config"
	_ "github.com/studenthub/examgate/docs" // Swagger docs
	"github.com/studenthub/examgate/internal/auth"
	"github.com/studenthub/examgate/internal/controller"
	authctrl "github.com/studenthub/examgate/internal/controller/auth"
	studentctrl "github.com/studenthub/examgate/internal/controller/student"
	teacherctrl "github.com/studenthub/examgate/internal/controller/teacher"
	"github.com/studenthub/examgate/internal/database"
	"github.com/studenthub/examgate/internal/examapi"
	"github.com/studenthub/examgate/internal/logger"
	"github.com/studenthub/examgate/internal/middleware"
	"github.com/studenthub/examgate/internal/model"
	"github.com/studenthub/examgate/internal/repository"
	"github.com/studenthub/examgate/internal/service"
	"github.com/studenthub/examgate/internal/session"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title StudentHub Exam Gateway API
// @version 1.0
// @description Backend for the StudentHub exam application: exam-taking sessions, assignment dashboards and exam administration against the remote exam/grading API.
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
		// Core application components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase, // Provides *gorm.DB
			NewGinEngine,         // Provides *gin.Engine
			NewSessionManager,
			examapi.NewClient,
		),

		// Repositories layer
		fx.Provide(
			repository.NewIdentityRepository,
			repository.NewDraftRepository,
		),

		// Services layer
		fx.Provide(
			service.NewAuthService,
			service.NewDashboardService,
			service.NewCreationService,
			service.NewSessionService,
			service.NewQuickExamService,
		),

		// API controllers layer
		fx.Provide(
			controller.NewErrorWriter,
			authctrl.NewAuthController,
			teacherctrl.NewTeacherController,
			studentctrl.NewStudentController,
		),

		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(StartSessionJanitor),
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

	// Funnel Gin's request log through zerolog
	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// URL: http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

func NewSessionManager(cfg *config.Config) *session.Manager {
	return session.NewManager(time.Duration(cfg.Session.TTLMinutes) * time.Minute)
}

// RegisterRoutesAndStartServer configures API routes and manages the server
// lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	authService service.AuthService,
	authCtrl *authctrl.AuthController,
	teacherCtrl *teacherctrl.TeacherController,
	studentCtrl *studentctrl.StudentController,
) {
	api := router.Group("/api/v1")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login", authCtrl.Login)
		authGroup.POST("/logout", middleware.RequireAuth(authService), authCtrl.Logout)
	}

	teacherGroup := api.Group("/teacher", middleware.RequireAuth(authService), middleware.RequireRole(auth.RoleTeacher))
	{
		teacherGroup.GET("/assignments", teacherCtrl.ListAssignments)
		teacherGroup.GET("/catalog", teacherCtrl.Catalog)
		teacherGroup.POST("/exams", teacherCtrl.CreateExam)
		teacherGroup.DELETE("/exams/:exam_id", teacherCtrl.DeleteExam)
	}

	studentGroup := api.Group("/student", middleware.RequireAuth(authService), middleware.RequireRole(auth.RoleStudent))
	{
		studentGroup.GET("/assignments", studentCtrl.ListAssignments)
		studentGroup.POST("/assignments/:exam_id/sessions", studentCtrl.StartSession)

		studentGroup.GET("/sessions/:session_id", studentCtrl.GetSession)
		studentGroup.PUT("/sessions/:session_id/answer", studentCtrl.SelectAnswer)
		studentGroup.POST("/sessions/:session_id/navigate", studentCtrl.Navigate)
		studentGroup.POST("/sessions/:session_id/review", studentCtrl.EnterReview)
		studentGroup.POST("/sessions/:session_id/resume", studentCtrl.ResumeTaking)
		studentGroup.POST("/sessions/:session_id/submit", studentCtrl.Submit)
		studentGroup.DELETE("/sessions/:session_id", studentCtrl.ExitSession)

		studentGroup.GET("/quick-exam", studentCtrl.QuickExam)
		studentGroup.PUT("/quick-exam/answers", studentCtrl.SaveQuickDraft)
		studentGroup.GET("/quick-exam/review", studentCtrl.QuickReview)
		studentGroup.DELETE("/quick-exam", studentCtrl.ClearQuickDrafts)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Exam gateway starting on port %s", cfg.Server.Port)
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

// StartSessionJanitor reaps abandoned exam sessions for as long as the app
// runs.
func StartSessionJanitor(lc fx.Lifecycle, manager *session.Manager) {
	ctx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go manager.Janitor(ctx)
			return nil
		},
		OnStop: func(context.Context) error {
			cancel()
			return nil
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.Identity{},
		&model.DraftAnswer{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
