package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/yigit/examport/docs" // swagger spec registration
	"github.com/yigit/examport/internal/app/controllers"
	"github.com/yigit/examport/internal/app/migrations"
	"github.com/yigit/examport/internal/app/repositories"
	"github.com/yigit/examport/internal/app/routes"
	"github.com/yigit/examport/internal/app/services"
	"github.com/yigit/examport/internal/config"
	"github.com/yigit/examport/internal/db"
	"github.com/yigit/examport/internal/middleware"
	pkgAuth "github.com/yigit/examport/internal/pkg/auth"
	"github.com/yigit/examport/internal/pkg/helpers"
	"github.com/yigit/examport/internal/pkg/logger"
	"github.com/yigit/examport/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos              *repositories.Repositories
	JWTService         *pkgAuth.JWTService
	AuthService        *services.AuthService
	UserService        *services.UserService
	CourseService      *services.CourseService
	ExamService        *services.ExamService
	QuestionService    *services.QuestionService
	AuthController     *controllers.AuthController
	UserController     *controllers.UserController
	CourseController   *controllers.CourseController
	ExamController     *controllers.ExamController
	QuestionController *controllers.QuestionController
	AuthMiddleware     *middleware.AuthMiddleware
	Logger             zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds default data.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := migrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), dbPool, cfg, lgr); err != nil {
		// Seeding failure should not block startup
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = repositories.NewRepositories(dbPool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		ResetTokenExp:  helpers.ParseDuration(cfg.JWT.ResetTokenExpiration, 1*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.AuthService = services.NewAuthService(deps.Repos.UserRepository, deps.JWTService, lgr)
	deps.UserService = services.NewUserService(deps.Repos.UserRepository)
	deps.CourseService = services.NewCourseService(deps.Repos.CourseRepository, deps.Repos.UserRepository)
	deps.ExamService = services.NewExamService(deps.Repos.ExamRepository, deps.Repos.CourseRepository)
	deps.QuestionService = services.NewQuestionService(deps.Repos.QuestionRepository, deps.Repos.ExamRepository)

	deps.AuthMiddleware = middleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = controllers.NewAuthController(deps.AuthService)
	deps.UserController = controllers.NewUserController(deps.UserService)
	deps.CourseController = controllers.NewCourseController(deps.CourseService)
	deps.ExamController = controllers.NewExamController(deps.ExamService)
	deps.QuestionController = controllers.NewQuestionController(deps.QuestionService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(middleware.RequestLogger(lgr))
	router.Use(gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json"), ginSwagger.DefaultModelsExpandDepth(1)))

	routes.SetupRouter(router,
		deps.AuthController,
		deps.UserController,
		deps.CourseController,
		deps.ExamController,
		deps.QuestionController,
		deps.AuthMiddleware,
	)

	return router
}
