package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/peakform/fitness-api/internal/api"
	"github.com/peakform/fitness-api/internal/core/ports"
	"github.com/peakform/fitness-api/internal/core/service"
	"github.com/peakform/fitness-api/internal/infrastructure/assistant"
	"github.com/peakform/fitness-api/internal/infrastructure/config"
	mongodb "github.com/peakform/fitness-api/internal/infrastructure/db/mongo"
	redisdb "github.com/peakform/fitness-api/internal/infrastructure/db/redis"
	"github.com/peakform/fitness-api/internal/infrastructure/memory"
	"github.com/peakform/fitness-api/internal/infrastructure/messaging"
	"github.com/peakform/fitness-api/internal/infrastructure/queue"
	"github.com/peakform/fitness-api/pkg/logger"
)

const janitorInterval = time.Hour

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: !cfg.Production()})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var (
		users       ports.UserRepository
		fitnessRepo ports.FitnessRepository
		mongoDB     *mongo.Database
	)

	switch cfg.Store {
	case "mongo":
		client, db, err := mongodb.Connect(ctx, mongodb.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("mongo connection failed")
		}
		defer func() { _ = client.Disconnect(context.Background()) }()

		userRepo := mongodb.NewUserRepository(db)
		if err := userRepo.EnsureIndexes(ctx); err != nil {
			log.Fatal().Err(err).Msg("user indexes failed")
		}
		fitness := mongodb.NewFitnessRepository(db)
		if err := fitness.EnsureIndexes(ctx); err != nil {
			log.Fatal().Err(err).Msg("fitness indexes failed")
		}

		users = userRepo
		fitnessRepo = fitness
		mongoDB = db
	default:
		users = memory.NewUserStore()
		fitnessRepo = memory.NewFitnessStore()
	}

	var (
		sessionStore ports.SessionStore
		redisClient  *redis.Client
	)
	if cfg.Redis.Addr != "" {
		rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			log.Fatal().Err(err).Msg("redis connection failed")
		}
		defer func() { _ = rdb.Close() }()

		sessionStore = redisdb.NewSessionStore(rdb)
		redisClient = rdb
	} else {
		store := memory.NewSessionStore()
		store.StartJanitor(ctx, janitorInterval)
		sessionStore = store
	}

	sessions := service.NewSessionManager(sessionStore, cfg.SessionTTL)
	authService := service.NewAuthService(users, sessions, log)

	ai := assistant.NewOpenAIClient(cfg.OpenAI.APIKey, cfg.OpenAI.BaseURL, cfg.OpenAI.Model, log)
	fitnessService := service.NewFitnessService(fitnessRepo, ai, log)

	messenger := messaging.NewTwilioMessenger(
		cfg.Twilio.AccountSID,
		cfg.Twilio.AuthToken,
		cfg.Twilio.WhatsAppNumber,
		log,
	)
	dispatcher := queue.NewDispatcher(0, messenger, log)
	dispatcher.Start(ctx)

	reminderService := service.NewReminderService(dispatcher, log)
	go reminderService.Run(ctx)

	e := api.NewRouter(api.Deps{
		Auth:          authService,
		Fitness:       fitnessService,
		Reminders:     reminderService,
		Assistant:     ai,
		Sessions:      sessions,
		SessionTTL:    cfg.SessionTTL,
		SecureCookies: cfg.Production(),
		Mongo:         mongoDB,
		Redis:         redisClient,
		Logger:        log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("store", cfg.Store).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}
}
