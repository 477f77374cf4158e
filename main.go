package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/rs/cors"

	"trend-studio/api/router"
	"trend-studio/auth"
	"trend-studio/cache"
	"trend-studio/config"
	"trend-studio/db"
	"trend-studio/generator"
	"trend-studio/kafka"
	"trend-studio/logger"
	"trend-studio/publisher"
	"trend-studio/repositories"
	"trend-studio/services"
)

func main() {
	config.InitApp()
	cfg := config.GetConfig()
	logger.Init(cfg.Logging.Level)

	ctx := context.Background()
	if err := db.Init(ctx); err != nil {
		log.Fatal("failed to initialize MongoDB:", err)
	}

	// Redis is optional; without it every trend lookup goes to the model.
	var trendCache *cache.TrendCache
	if cfg.RedisAddr != "" {
		redisClient, err := cache.ConnectRedis(cfg.RedisAddr, cfg.RedisPass)
		if err != nil {
			logger.WarnWithFields("redis unavailable, trend cache disabled", logger.Fields{
				"error": err.Error(),
			})
		} else {
			trendCache = cache.NewTrendCache(redisClient, time.Duration(cfg.TrendCache.TTLSeconds)*time.Second)
		}
	}

	// Kafka is optional; without it events are dropped.
	producer := kafka.Producer(kafka.NopProducer{})
	if kcfg := kafka.NewConfigFromEnv(); kcfg != nil {
		if err := kafka.CreateTopicsIfNotExists(kcfg); err != nil {
			logger.WarnWithFields("kafka topic setup failed", logger.Fields{"error": err.Error()})
		}
		p, err := kafka.NewProducer(kcfg)
		if err != nil {
			logger.WarnWithFields("kafka unavailable, events disabled", logger.Fields{
				"error": err.Error(),
			})
		} else {
			producer = p
			defer producer.Close()
		}
	}

	aiLogs := repositories.NewAILogRepository(db.Database())
	gen, err := generator.New(ctx, cfg, aiLogs)
	if err != nil {
		log.Fatal("failed to initialize Gemini client:", err)
	}

	sessions := services.NewSessionRegistry()
	drafts := repositories.NewDraftRepository(db.Database())
	settingsRepo := repositories.NewSettingsRepository(db.Database())
	publishLogs := repositories.NewPublishLogRepository(db.Database())

	studio := services.NewStudioService(gen, sessions, drafts, producer)
	trends := services.NewTrendService(gen, trendCache, cfg.TrendFeeds, sessions)
	settings := services.NewSettingsService(settingsRepo)
	oauthClient := auth.NewBloggerOAuthClient(cfg.Blogger.Scope, cfg.OAuthClientSecret)
	authSvc := services.NewAuthService(oauthClient, settings)
	bloggerClient := publisher.NewBloggerClient(cfg.Blogger.BaseURL)
	publish := services.NewPublishService(studio, settings, bloggerClient, publishLogs, producer)
	audit := services.NewAuditService(aiLogs)

	r := router.New(router.Deps{
		Trends:    trends,
		Studio:    studio,
		Settings:  settings,
		Auth:      authSvc,
		Publish:   publish,
		Audit:     audit,
		StaticDir: cfg.Server.StaticDir,
	})

	handler := cors.Default().Handler(r)
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	logger.InfoWithFields("server starting", logger.Fields{"addr": addr})
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatal("server stopped:", err)
	}
}
