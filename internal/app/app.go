package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"moviefinder/internal/auth"
	"moviefinder/internal/catalog"
	"moviefinder/internal/config"
	"moviefinder/internal/httpserver"
	"moviefinder/internal/httpserver/deps"
	"moviefinder/internal/logger"
	"moviefinder/internal/redis"
	"moviefinder/internal/scheduler"
	"moviefinder/internal/seed"
	"moviefinder/internal/store"
	"moviefinder/internal/version"
)

type App struct {
	cfg         *config.Config
	logger      logger.Logger
	server      *httpserver.Server
	redisClient *goredis.Client
	sweeper     *scheduler.SessionSweeper
}

func New() *App {
	cfg := config.Load()

	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)

	// Redis is optional: without MF_REDIS_ADDR everything lives in memory.
	var redisClient *goredis.Client
	if cfg.RedisEnabled() {
		loggerClient.Infof("Connecting to Redis at %s", cfg.RedisAddr)
		client, err := redis.New(redis.ConnectOptions{
			Addr:           cfg.RedisAddr,
			User:           cfg.RedisUser,
			Password:       cfg.RedisPassword,
			DB:             cfg.RedisDB,
			DialTimeout:    cfg.RedisDialTimeout,
			ReadTimeout:    cfg.RedisReadTimeout,
			WriteTimeout:   cfg.RedisWriteTimeout,
			PoolSize:       cfg.RedisPoolSize,
			ConnectTimeout: cfg.RedisConnectTimeout,
			RetryInterval:  cfg.RedisRetryInterval,
			MaxWait:        cfg.RedisMaxWait,
			PingTimeout:    cfg.RedisPingTimeout,
		}, loggerClient)
		if err != nil {
			loggerClient.Errorf("Failed to connect to Redis: %v", err)
			os.Exit(1)
		}
		loggerClient.Info("Redis initialized successfully")
		redisClient = client
	} else {
		loggerClient.Info("Redis not configured, running memory-only")
	}

	users := store.NewUserStore(time.Now)
	playlists := store.NewPlaylistStore(time.Now)
	favorites := store.NewFavoriteStore(time.Now)

	var sessions auth.SessionStore
	if redisClient != nil {
		sessions = auth.NewRedisSessionStore(redisClient, cfg.SessionTTL, time.Now)
	} else {
		sessions = auth.NewMemorySessionStore(cfg.SessionTTL, time.Now)
	}

	catalogClient := catalog.NewClient(catalog.Config{
		BaseURL:  cfg.TMDBBaseURL,
		APIKey:   cfg.TMDBAPIKey,
		Language: cfg.TMDBLanguage,
		Timeout:  cfg.TMDBTimeout,
	}, catalog.NewCache(redisClient))

	if cfg.SeedFile != "" {
		file, err := seed.NewLoader(cfg.SeedFile).Load()
		if err != nil {
			loggerClient.Warn("failed to load seed file",
				logger.String("file", cfg.SeedFile),
				logger.Error(err))
		} else {
			seed.Apply(file, users, playlists, favorites, loggerClient)
		}
	}

	sweeper := scheduler.NewSessionSweeper(sessions, loggerClient, cfg.SessionSweepInterval)

	d := deps.Deps{
		Logger:            loggerClient,
		StartTime:         time.Now(),
		Version:           version.Version,
		Commit:            version.Commit,
		BuildDate:         version.BuildDate,
		GoVersion:         version.GoVersion,
		TimeNow:           time.Now,
		Users:             users,
		Playlists:         playlists,
		Favorites:         favorites,
		Sessions:          sessions,
		Catalog:           catalogClient,
		RedisClient:       redisClient,
		AllowedOrigins:    cfg.AllowedOrigins,
		TrustProxy:        cfg.TrustProxy,
		AuthRateBurst:     cfg.AuthRateBurst,
		AuthRatePerMinute: cfg.AuthRatePerMinute,
	}

	server := httpserver.New(cfg, loggerClient, d)

	return &App{
		cfg:         cfg,
		logger:      loggerClient,
		server:      server,
		redisClient: redisClient,
		sweeper:     sweeper,
	}
}

func (a *App) Run() error {
	a.logger.Infof("Starting moviefinder %s on %s", version.Version, a.cfg.ListenPort)
	a.logger.Infof("moviefinder %s (commit=%s, built=%s, go=%s)",
		version.Version, version.Commit, version.BuildDate, version.GoVersion)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a.sweeper.Start(ctx)
	a.logger.Info("session sweeper started",
		logger.Duration("interval", a.cfg.SessionSweepInterval))

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("Shutting down gracefully...")
	case err := <-errCh:
		return err
	}

	a.sweeper.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.logger.Warnf("failed to close redis: %v", err)
		} else {
			a.logger.Info("Redis closed cleanly")
		}
	}

	a.logger.Info("moviefinder stopped cleanly")
	return nil
}
