package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config is the full runtime configuration, loaded from MF_* environment
// variables. Only the TMDB API key is mandatory; everything else has a
// sensible default. Redis is optional: with MF_REDIS_ADDR unset the service
// runs fully in memory.
type Config struct {
	ListenPort      string        // ex: ":8080"
	ShutdownTimeout time.Duration // ex: 5s

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	// External movie catalog (TMDB)
	TMDBAPIKey   string        // required
	TMDBBaseURL  string        // default: https://api.themoviedb.org/3
	TMDBLanguage string        // language hint for catalog responses
	TMDBTimeout  time.Duration // per-request timeout for catalog calls

	// Sessions
	SessionTTL           time.Duration // how long a login stays valid
	SessionSweepInterval time.Duration // expired-session cleanup interval

	// Seeding
	SeedFile string // optional yaml file with demo users/playlists

	// CORS / proxy
	AllowedOrigins []string // origins allowed by CORS (browser front end)
	TrustProxy     bool     // trust X-Forwarded-For (behind a reverse proxy)

	// Login/register rate limiting
	AuthRateBurst     int // bucket size per client IP
	AuthRatePerMinute int // refill rate per client IP

	// Redis (optional)
	RedisAddr           string        // empty = memory-only mode
	RedisUser           string        // optional
	RedisPassword       string        // optional
	RedisDB             int           // Redis DB number
	RedisDialTimeout    time.Duration // dial timeout
	RedisReadTimeout    time.Duration // read timeout
	RedisWriteTimeout   time.Duration // write timeout
	RedisPoolSize       int           // connection pool size
	RedisConnectTimeout time.Duration // total time to retry connecting
	RedisRetryInterval  time.Duration // initial wait between retries
	RedisMaxWait        time.Duration // max wait between retries
	RedisPingTimeout    time.Duration // timeout per ping attempt
}

// Load reads the configuration from the environment. Panics on missing or
// unusable required values so a misconfigured process never starts.
func Load() *Config {
	cfg := &Config{
		ListenPort:      getenv("MF_LISTEN_PORT", ":8080"),
		ShutdownTimeout: mustDuration("MF_SHUTDOWN_TIMEOUT", 5*time.Second),

		LogLevel:  getenv("MF_LOG_LEVEL", "info"),
		PrettyLog: mustBool("MF_PRETTY_LOG", false),

		TMDBAPIKey:   requireEnv("MF_TMDB_API_KEY"),
		TMDBBaseURL:  getenv("MF_TMDB_BASE_URL", "https://api.themoviedb.org/3"),
		TMDBLanguage: getenv("MF_TMDB_LANGUAGE", "en-US"),
		TMDBTimeout:  mustDuration("MF_TMDB_TIMEOUT", 10*time.Second),

		SessionTTL:           mustDuration("MF_SESSION_TTL", 24*time.Hour),
		SessionSweepInterval: mustDuration("MF_SESSION_SWEEP_INTERVAL", time.Hour),

		SeedFile: getenv("MF_SEED_FILE", ""),

		AllowedOrigins: splitAndTrim(getenv("MF_ALLOWED_ORIGINS", "http://localhost:5173")),
		TrustProxy:     mustBool("MF_TRUST_PROXY", false),

		AuthRateBurst:     getenvInt("MF_AUTH_RATE_BURST", 10),
		AuthRatePerMinute: getenvInt("MF_AUTH_RATE_PER_MINUTE", 20),

		RedisAddr:           getenv("MF_REDIS_ADDR", ""),
		RedisUser:           getenv("MF_REDIS_USERNAME", ""),
		RedisPassword:       getenv("MF_REDIS_PASSWORD", ""),
		RedisDB:             getenvInt("MF_REDIS_DB", 0),
		RedisDialTimeout:    mustDuration("MF_REDIS_DIAL_TIMEOUT", 5*time.Second),
		RedisReadTimeout:    mustDuration("MF_REDIS_READ_TIMEOUT", 3*time.Second),
		RedisWriteTimeout:   mustDuration("MF_REDIS_WRITE_TIMEOUT", 3*time.Second),
		RedisPoolSize:       getenvInt("MF_REDIS_POOL_SIZE", 10),
		RedisConnectTimeout: mustDuration("MF_REDIS_CONNECT_TIMEOUT", 30*time.Second),
		RedisRetryInterval:  mustDuration("MF_REDIS_RETRY_INTERVAL", 2*time.Second),
		RedisMaxWait:        mustDuration("MF_REDIS_MAX_WAIT", 10*time.Second),
		RedisPingTimeout:    mustDuration("MF_REDIS_PING_TIMEOUT", 5*time.Second),
	}

	return cfg
}

// RedisEnabled reports whether a Redis address is configured.
func (c *Config) RedisEnabled() bool {
	return c.RedisAddr != ""
}

// helpers

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func requireEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		panic(fmt.Sprintf("FATAL: required environment variable %s is not set", key))
	}
	return v
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func mustBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func mustDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	raw := strings.Split(s, ",")
	parts := make([]string, 0, len(raw))
	for _, part := range raw {
		trimmed := strings.Trim(strings.TrimSpace(part), `"'`)
		if trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}
