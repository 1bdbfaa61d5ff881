// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Read once at startup into an immutable value passed explicitly to each component

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
)

// minCharacterBudget is the smallest usable budget: the briefing
// greeting and sign-off alone take well over a hundred characters, so
// anything below this produces an empty or truncated script.
const minCharacterBudget = 200

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Cache contains feed cache configuration
	Cache CacheConfig

	// TTS contains speech provider configuration
	TTS TTSConfig

	// Audio contains mixing and encoding configuration
	Audio AudioConfig

	// Briefing contains script composition limits
	Briefing BriefingConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend (redis/memory)
	Type string

	// Redis contains Redis-specific configuration
	Redis RedisConfig

	// Memory contains in-memory cache configuration
	Memory MemoryConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string

	// Password is the Redis authentication password
	Password string

	// DB is the Redis database number
	DB int
}

// MemoryConfig holds in-memory cache configuration
type MemoryConfig struct {
	// DefaultExpiration is the default TTL for cache entries in seconds
	DefaultExpiration int
}

// TTSConfig holds speech provider configuration
type TTSConfig struct {
	// Provider selects the synthesis backend (murf/google)
	Provider string

	// MurfAPIKey is the Murf credential. Never logged.
	MurfAPIKey string

	// MurfAPIURL is the Murf speech generation endpoint
	MurfAPIURL string

	// CharacterBudget is the per-request script character ceiling imposed
	// by the provider plan
	CharacterBudget int
}

// AudioConfig holds mixing and encoding configuration
type AudioConfig struct {
	// BackgroundMusicPath optionally points at the music bed file
	BackgroundMusicPath string

	// OutputDir is where generated audio files are written
	OutputDir string

	// PublicPathPrefix is the URL prefix the output dir is served under
	PublicPathPrefix string

	// FFmpegPath and FFprobePath override binary lookup (default PATH)
	FFmpegPath  string
	FFprobePath string
}

// BriefingConfig holds script composition limits
type BriefingConfig struct {
	// MaxTotalArticles is the global article ceiling per briefing
	MaxTotalArticles int

	// FeedTimeout is the per-feed fetch timeout in seconds
	FeedTimeout int

	// DefaultMaxPerFeed is used when a request omits max_articles_per_feed
	DefaultMaxPerFeed int
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port: getEnvOrDefault("PORT", "8000"),
		},
		Cache: CacheConfig{
			Type: getEnvOrDefault("CACHE_TYPE", "memory"),
			Redis: RedisConfig{
				Address:  getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password: getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
			},
			Memory: MemoryConfig{
				DefaultExpiration: getEnvAsIntOrDefault("MEMORY_CACHE_EXPIRATION", 600),
			},
		},
		TTS: TTSConfig{
			Provider:        getEnvOrDefault("TTS_PROVIDER", "murf"),
			MurfAPIKey:      os.Getenv("MURF_API_KEY"),
			MurfAPIURL:      getEnvOrDefault("MURF_API_URL", "https://api.murf.ai/v1/speech/generate"),
			CharacterBudget: getEnvAsIntOrDefault("TTS_CHARACTER_BUDGET", 5000),
		},
		Audio: AudioConfig{
			BackgroundMusicPath: getEnvOrDefault("BACKGROUND_MUSIC_PATH", "assets/background_music.mp3"),
			OutputDir:           getEnvOrDefault("AUDIO_OUTPUT_DIR", "static/generated_audio"),
			PublicPathPrefix:    getEnvOrDefault("AUDIO_PUBLIC_PREFIX", "/static/generated_audio"),
			FFmpegPath:          getEnvOrDefault("FFMPEG_PATH", "ffmpeg"),
			FFprobePath:         getEnvOrDefault("FFPROBE_PATH", "ffprobe"),
		},
		Briefing: BriefingConfig{
			MaxTotalArticles:  getEnvAsIntOrDefault("MAX_TOTAL_ARTICLES", 20),
			FeedTimeout:       getEnvAsIntOrDefault("FEED_TIMEOUT", 10),
			DefaultMaxPerFeed: getEnvAsIntOrDefault("DEFAULT_MAX_PER_FEED", 3),
		},
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if c.Cache.Type != "redis" && c.Cache.Type != "memory" {
		return errors.New("cache type must be 'redis' or 'memory'")
	}

	if c.Cache.Type == "redis" && c.Cache.Redis.Address == "" {
		return errors.New("redis address cannot be empty when using redis cache")
	}

	if c.TTS.Provider != "murf" && c.TTS.Provider != "google" {
		return errors.New("tts provider must be 'murf' or 'google'")
	}

	if c.TTS.CharacterBudget < minCharacterBudget {
		return fmt.Errorf("tts character budget must be at least %d", minCharacterBudget)
	}

	if c.Audio.OutputDir == "" {
		return errors.New("audio output dir cannot be empty")
	}

	if c.Briefing.MaxTotalArticles < 1 {
		return errors.New("max total articles must be at least 1")
	}

	if c.Briefing.FeedTimeout < 1 {
		return errors.New("feed timeout must be at least 1 second")
	}

	if c.Briefing.DefaultMaxPerFeed < 1 || c.Briefing.DefaultMaxPerFeed > 5 {
		return errors.New("default max articles per feed must be between 1 and 5")
	}

	return nil
}
