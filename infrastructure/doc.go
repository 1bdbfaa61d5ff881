// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as caching, HTTP communication, logging, speech synthesis and audio
// encoding.
//
// The infrastructure package is organized by technical concern:
//
// - cache/memory: In-memory cache implementation
// - cache/redis: Redis-based cache implementation
// - http/standard: Standard library HTTP client with retry logic
// - logger/logrus: Structured JSON logger
// - media/ffmpeg: Audio decode/encode by shelling out to ffmpeg
// - tts/murf: Murf speech synthesis client
// - tts/google: Google Cloud Text-to-Speech client
//
// # Design Philosophy
//
// Infrastructure components are designed to be:
// - Pluggable: Easy to swap implementations
// - Configurable: Accept configuration objects
// - Testable: Include both unit and integration tests
// - Production-ready: Include retries, timeouts, and error handling
//
// # Cache Implementations
//
// Memory Cache Example:
//
//	cache := memory.NewMemoryCache(10 * time.Minute)
//	err := cache.Set(ctx, "feed:https://example.com/rss", []byte("value"), 10*time.Minute)
//	value, err := cache.Get(ctx, "feed:https://example.com/rss")
//
// Redis Cache Example:
//
//	cfg := config.RedisConfig{
//	    Address:  "localhost:6379",
//	    Password: "",
//	    DB:       0,
//	}
//	cache, err := redis.NewRedisCache(cfg)
//
// # HTTP Client
//
// The HTTP client retries GET requests on transient failures; POST requests
// are issued exactly once because speech synthesis calls are paid:
//
//	client := standard.NewStandardHTTPClient(30 * time.Second)
//	resp, err := client.Get(ctx, "https://example.com")
//	if err != nil {
//	    // Handle error
//	}
//	defer resp.Body().Close()
//
// # Logger
//
// The logger supports structured logging with fields:
//
//	logger := logrus.NewLogger("info")
//	logger.Info("Processing request", map[string]interface{}{
//	    "request_id": "123",
//	    "action":     "generate_briefing",
//	})
package infrastructure
