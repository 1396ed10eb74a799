package deps

import (
	"time"

	"github.com/redis/go-redis/v9"

	"moviefinder/internal/auth"
	"moviefinder/internal/catalog"
	"moviefinder/internal/logger"
	"moviefinder/internal/store"
)

type Deps struct {
	Logger    logger.Logger
	StartTime time.Time
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
	TimeNow   func() time.Time // for testing, defaults to time.Now

	Users     *store.UserStore     // registered accounts
	Playlists *store.PlaylistStore // playlists with their movies
	Favorites *store.FavoriteStore // per-user favorite lists
	Sessions  auth.SessionStore    // bearer-token sessions
	Catalog   *catalog.Client      // upstream movie catalog

	RedisClient *redis.Client // nil in memory-only mode

	AllowedOrigins    []string // origins allowed by CORS
	TrustProxy        bool     // true behind a trusted reverse proxy
	AuthRateBurst     int      // rate limit bucket size for auth endpoints
	AuthRatePerMinute int      // rate limit refill for auth endpoints
}
