package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"whatshouldweeat/internal/cache"
	"whatshouldweeat/internal/config"
	"whatshouldweeat/internal/quiz"
	"whatshouldweeat/internal/repository"
	"whatshouldweeat/internal/service"
	"whatshouldweeat/internal/transport/rest"
	"whatshouldweeat/internal/transport/rest/middleware"
	"whatshouldweeat/internal/transport/ws"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	log := logrus.WithField("component", "server")

	ctx := context.Background()
	cfg := config.Load()

	aiConfig := config.DefaultAIConfig()
	log.WithFields(logrus.Fields{
		"question_model":       aiConfig.Models.Question,
		"recommendation_model": aiConfig.Models.Recommendation,
		"enabled":              aiConfig.IsEnabled(),
	}).Info("AI config loaded")
	if !aiConfig.IsEnabled() {
		log.Warn("OPENAI_API_KEY not set, serving static question text")
	}

	placesConfig := config.DefaultPlacesConfig()
	if !placesConfig.IsEnabled() {
		log.Warn("GOOGLE_MAPS_API_KEY not set, place lookup disabled")
	}

	// MongoDB is optional: without it sessions are not persisted and the
	// builtin question bank is used.
	var mongoClient *mongo.Client
	if cfg.MongoURI != "" {
		var err error
		mongoClient, err = mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
		if err != nil {
			log.WithError(err).Fatal("failed to connect to MongoDB")
		}
		defer mongoClient.Disconnect(ctx)

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		if err := mongoClient.Ping(pingCtx, nil); err != nil {
			cancel()
			log.WithError(err).Fatal("failed to ping MongoDB")
		}
		cancel()
		log.Info("connected to MongoDB")
	} else {
		log.Warn("MONGO_URI not set, session records will not be persisted")
	}

	// Redis is optional too: without it the in-memory caches serve a
	// single instance.
	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		defer rdb.Close()

		if _, err := rdb.Ping(ctx).Result(); err != nil {
			log.WithError(err).Fatal("failed to ping Redis")
		}
		log.Info("connected to Redis")
	} else {
		log.Warn("REDIS_ADDR not set, using in-memory caches")
	}

	// Question pool: Mongo when seeded, builtin bank otherwise
	pool := quiz.DefaultBank()
	var sessionRepo repository.SessionRepo
	if mongoClient != nil {
		sessionRepo = repository.NewSessionRepo(mongoClient)

		questionRepo := repository.NewQuestionRepo(mongoClient)
		loadCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		stored, err := questionRepo.GetAll(loadCtx)
		cancel()
		if err != nil {
			log.WithError(err).Warn("failed to load question pool, using builtin bank")
		} else if len(stored) > 0 {
			pool = stored
			log.WithField("count", len(pool)).Info("question pool loaded from MongoDB")
		}
	}

	if err := quiz.ValidateVocabulary(pool); err != nil {
		log.WithError(err).Fatal("question pool vocabulary is inconsistent")
	}

	var sessionCache cache.SessionCache
	var recentCache cache.RecentOutcomes
	var usageCache cache.UsageCache
	if rdb != nil {
		sessionCache = cache.NewSessionCache(rdb)
		recentCache = cache.NewRecentOutcomes(rdb, quiz.RecentLimit)
		usageCache = cache.NewUsageCache(rdb)
	} else {
		sessionCache = cache.NewMemorySessionCache()
		recentCache = cache.NewMemoryRecentOutcomes(quiz.RecentLimit)
		usageCache = cache.NewMemoryUsageCache()
	}

	// Initialize services
	tokenSvc := service.NewTokenService(cfg.SessionSecret)
	aiSvc := service.NewAIServiceWith(aiConfig)
	placeSvc := service.NewPlaceServiceWith(placesConfig)
	usageSvc := service.NewUsageService(usageCache, sessionRepo, cfg.FreeDailyLimit)
	quizSvc := service.NewQuizService(
		sessionCache,
		recentCache,
		quiz.NewSelector(pool),
		quiz.NewScorer(),
		aiSvc,
		placeSvc,
	)

	wsHub := ws.NewHub()

	container := &rest.Container{
		QuizService:  quizSvc,
		UsageService: usageSvc,
		PlaceService: placeSvc,
		TokenService: tokenSvc,
		RateLimiter:  middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst),
		WSHub:        wsHub,
	}

	router := rest.NewRouter(container)

	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		log.WithField("port", cfg.HTTPPort).Info("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("ListenAndServe")
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server")

	wsHub.Shutdown()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Fatal("server forced to shutdown")
	}

	log.Info("server exited")
}
