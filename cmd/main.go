package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/makemymate/makemymate-api/config"
	"github.com/makemymate/makemymate-api/database"
	_ "github.com/makemymate/makemymate-api/docs" // Swagger docs - auto-generated
	"github.com/makemymate/makemymate-api/internal/controller"
	"github.com/makemymate/makemymate-api/internal/logger"
	"github.com/makemymate/makemymate-api/internal/model"
	"github.com/makemymate/makemymate-api/internal/quiz"
	"github.com/makemymate/makemymate-api/internal/repository"
	"github.com/makemymate/makemymate-api/internal/service"
	"github.com/makemymate/makemymate-api/internal/session"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title MakeMyMate API
// @version 1.0
// @description Backend for the MakeMyMate marketing site: personality quiz, fantasy character generation, public character gallery, and the BookMate waitlist.
// @contact.name API Support
// @contact.email support@makemymate.app
// @host localhost:8080
// @BasePath /api
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		// Core Application Components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase, // Provides *gorm.DB
			NewGinEngine,         // Provides *gin.Engine
			quiz.NewRegistry,
			NewSessionStore,
		),

		// Repositories Layer
		fx.Provide(
			repository.NewQuestionRepository,
			repository.NewResponseRepository,
			repository.NewCharacterRepository,
			repository.NewWaitlistRepository,
			repository.NewAnalyticsRepository,
		),

		// Services Layer
		fx.Provide(
			service.NewAnalyticsService,
			service.NewWorkflowClient,
			service.NewQuizService,
			service.NewGenerationService,
			service.NewCharacterService,
			service.NewWaitlistService,
		),

		// API Controllers Layer
		fx.Provide(
			controller.NewQuizController,
			controller.NewCharacterController,
			controller.NewWaitlistController,
		),

		// Invokers - Functions that are executed by Fx
		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(AutoMigrateDB),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

// NewSessionStore backs client session state with the real filesystem under the
// configured state directory.
func NewSessionStore(cfg *config.Config) (*session.Store, error) {
	return session.NewStore(afero.NewOsFs(), cfg.App.StateDir)
}

func NewGinEngine() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// Request logging through the global zerolog instance.
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

	// CORS Configuration
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"}, // Be more specific in production
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger UI at /swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	quizCtrl *controller.QuizController,
	characterCtrl *controller.CharacterController,
	waitlistCtrl *controller.WaitlistController,
) {
	api := router.Group("/api")
	{
		quizGroup := api.Group("/quiz/sessions")
		quizGroup.POST("", quizCtrl.StartSession)
		quizGroup.GET("/:id", quizCtrl.GetSession)
		quizGroup.POST("/:id/answers", quizCtrl.SubmitAnswer)
		quizGroup.POST("/:id/advance", quizCtrl.Advance)
		quizGroup.POST("/:id/retreat", quizCtrl.Retreat)
		quizGroup.DELETE("/:id", quizCtrl.Restart)

		api.POST("/generate-character", characterCtrl.GenerateCharacter)

		characters := api.Group("/characters")
		characters.GET("", characterCtrl.ListCharacters)
		characters.GET("/count", characterCtrl.CountCharacters)
		characters.GET("/random", characterCtrl.LatestCharacter)
		characters.GET("/:share_id", characterCtrl.GetCharacter)
		characters.POST("/:share_id/view", characterCtrl.RecordView)
		characters.POST("/:share_id/share", characterCtrl.RecordShare)
		characters.POST("/:share_id/like", characterCtrl.LikeCharacter)

		api.POST("/waitlist", waitlistCtrl.Signup)
		api.GET("/waitlist", waitlistCtrl.Stats)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("MakeMyMate API server starting on port %s", cfg.Server.Port)
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

// AutoMigrateDB keeps the schema in step with the models on startup.
func AutoMigrateDB(db *gorm.DB) {
	err := db.AutoMigrate(
		&model.QuizQuestion{},
		&model.CharacterResponse{},
		&model.Character{},
		&model.WaitlistEntry{},
		&model.AnalyticsEvent{},
	)
	if err != nil {
		log.Fatal().Err(err).Msg("Database migration failed")
	}
	log.Info().Msg("Database migration completed")
}
