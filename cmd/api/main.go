// ABOUTME: Main entry point for the briefing API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"briefing-api/api"
	"briefing-api/api/handlers"
	"briefing-api/core/audio"
	"briefing-api/core/briefing"
	"briefing-api/core/feed"
	"briefing-api/core/interfaces"
	"briefing-api/core/pipeline"
	"briefing-api/core/speech"
	"briefing-api/infrastructure/cache/memory"
	"briefing-api/infrastructure/cache/redis"
	stdhttp "briefing-api/infrastructure/http/standard"
	"briefing-api/infrastructure/logger/logrus"
	"briefing-api/infrastructure/media/ffmpeg"
	"briefing-api/infrastructure/tts/google"
	"briefing-api/infrastructure/tts/murf"
	"briefing-api/pkg/config"
)

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := logrus.NewLogger(os.Getenv("LOG_LEVEL"))
	logger.Info("Starting briefing API", map[string]interface{}{
		"port":         cfg.Server.Port,
		"cache_type":   cfg.Cache.Type,
		"tts_provider": cfg.TTS.Provider,
	})

	// Cache backend, with fallback to memory when redis is unreachable
	var cache interfaces.Cache
	switch cfg.Cache.Type {
	case "redis":
		redisCache, err := redis.NewRedisCache(cfg.Cache.Redis)
		if err != nil {
			logger.Error("Failed to create Redis cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			cache = memory.NewMemoryCache(time.Duration(cfg.Cache.Memory.DefaultExpiration) * time.Second)
		} else {
			cache = redisCache
			logger.Info("Using Redis cache", map[string]interface{}{
				"address": cfg.Cache.Redis.Address,
			})
		}
	default:
		cache = memory.NewMemoryCache(time.Duration(cfg.Cache.Memory.DefaultExpiration) * time.Second)
		logger.Info("Using memory cache", nil)
	}

	httpClient := stdhttp.NewStandardHTTPClient(30 * time.Second)

	deps := interfaces.Dependencies{
		Cache:      cache,
		HTTPClient: httpClient,
		Logger:     logger,
	}

	// Speech provider selection
	var synthesizer interfaces.Synthesizer
	switch cfg.TTS.Provider {
	case "google":
		synthesizer = google.NewSynthesizer(logger, cfg.TTS.CharacterBudget)
	default:
		synthesizer = murf.NewClient(httpClient, logger, cfg.TTS.MurfAPIKey, cfg.TTS.MurfAPIURL)
	}

	codec := ffmpeg.NewCodec(cfg.Audio.FFmpegPath, cfg.Audio.FFprobePath)

	// Environment facts probed once and reported by /health
	checks := handlers.StartupChecks{
		TTSConfigured: synthesizer.Configured(),
		TTSProvider:   synthesizer.Name(),
	}
	if err := codec.Available(); err != nil {
		logger.Warn("Audio encoder not found, briefing generation will fail", map[string]interface{}{
			"error": err.Error(),
		})
	} else {
		checks.EncoderAvailable = true
	}
	if !checks.TTSConfigured {
		logger.Warn("Speech provider credential missing, briefing generation will fail", map[string]interface{}{
			"provider": synthesizer.Name(),
		})
	}
	if _, err := os.Stat(cfg.Audio.BackgroundMusicPath); err == nil {
		checks.BackgroundMusicPresent = true
	} else {
		logger.Warn("Background music file not found, briefings will be speech-only", map[string]interface{}{
			"path": cfg.Audio.BackgroundMusicPath,
		})
	}

	if err := os.MkdirAll(cfg.Audio.OutputDir, 0o755); err != nil {
		log.Fatalf("Failed to create audio output directory: %v", err)
	}

	// Pipeline assembly
	fetcher := feed.NewFetcher(deps, time.Duration(cfg.Briefing.FeedTimeout)*time.Second)
	composer := briefing.NewComposer(logger, cfg.Briefing.MaxTotalArticles, cfg.TTS.CharacterBudget)
	speechService := speech.NewService(synthesizer, logger)
	mixer := audio.NewMixer(codec, logger)
	briefingPipeline := pipeline.NewPipeline(
		fetcher, composer, speechService, mixer, logger,
		cfg.Audio.BackgroundMusicPath, cfg.Audio.OutputDir, cfg.Audio.PublicPathPrefix,
	)

	briefingHandler := handlers.NewBriefingHandler(briefingPipeline, logger, cfg.Briefing.DefaultMaxPerFeed)
	statusHandler := handlers.NewStatusHandler(checks)

	router := api.NewRouter(briefingHandler, statusHandler, api.Config{
		Logger:       logger,
		RateLimit:    100,
		RateWindow:   time.Minute,
		StaticDir:    cfg.Audio.OutputDir,
		StaticPrefix: cfg.Audio.PublicPathPrefix,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 5 * time.Minute, // briefing generation waits on the TTS provider
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server stopped", nil)
}
