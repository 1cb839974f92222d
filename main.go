package main

import (
	"context"
	"log"
	"time"

	"disaster-alert-be/config"
	"disaster-alert-be/controllers"
	"disaster-alert-be/mailer"
	"disaster-alert-be/middlewares"
	"disaster-alert-be/routes"
	"disaster-alert-be/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// mongoPinger adapts the mongo client to the health check interface.
type mongoPinger struct {
	client *mongo.Client
}

func (p mongoPinger) Ping(ctx context.Context) error {
	return p.client.Ping(ctx, nil)
}

func newLogger(env string) *zap.Logger {
	var (
		logger *zap.Logger
		err    error
	)
	if env == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	return logger
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg := config.Load()
	logger := newLogger(cfg.Env)
	defer logger.Sync()

	ctx := context.Background()

	client, db, err := config.ConnectDB(ctx, cfg)
	if err != nil {
		logger.Fatal("failed to connect to MongoDB", zap.Error(err))
	}
	defer client.Disconnect(context.Background())
	logger.Info("MongoDB connection established", zap.String("database", cfg.MongoDB))

	if err := config.EnsureIndexes(ctx, db); err != nil {
		logger.Warn("index creation failed", zap.Error(err))
	}

	redisClient, err := config.ConnectRedis(ctx, cfg)
	if err != nil {
		logger.Warn("redis unavailable, rate limiting disabled", zap.Error(err))
	} else if redisClient != nil {
		logger.Info("Redis connection established", zap.String("address", cfg.RedisAddress))
	}

	mail := mailer.New(cfg.MailServer, cfg.MailPort, cfg.MailUsername, cfg.MailPassword,
		cfg.AdminEmail, cfg.SystemEmail, logger)

	st := store.New(db)
	clock := clockwork.NewRealClock()

	reportController := controllers.NewReportController(st.Reports, clock, logger)
	authController := controllers.NewAuthController(st.Users, cfg.JWTSecret, cfg.Env, clock, logger)
	contactController := controllers.NewContactController(st.Contacts, mail, clock, logger)
	adminController := controllers.NewAdminController(st.Reports, st.Users, st.Contacts,
		mail, mongoPinger{client: client}, cfg.SystemEmail, logger)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestID())
	r.Use(middlewares.RequestLogger(logger))
	r.Use(middlewares.Metrics())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	submitLimiter := middlewares.SubmitRateLimiter(redisClient, "submit_limit", cfg.SubmitRateLimit)

	routes.ReportRoutes(r, reportController, submitLimiter)
	routes.AuthRoutes(r, authController, cfg.JWTSecret)
	routes.ContactRoutes(r, contactController, submitLimiter)
	routes.AdminRoutes(r, adminController)

	logger.Info("starting server", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}
}
