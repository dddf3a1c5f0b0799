package store

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Options tunes backends opened by OpenURL.
type Options struct {
	// RedisTTL is the expiry of the Redis snapshot key.
	RedisTTL time.Duration
}

// OpenURL opens the snapshot backend named by url. redis:// and rediss://
// select Redis, postgres:// and postgresql:// select PostgreSQL; sqlite://
// and anything else is treated as a SQLite path or DSN. An empty url opens the SQLite
// database at DefaultDBPath.
func OpenURL(ctx context.Context, url string, opts Options) (Backend, error) {
	switch scheme(url) {
	case "redis", "rediss":
		return OpenRedis(ctx, url, opts.RedisTTL)
	case "postgres", "postgresql":
		return OpenPostgres(ctx, url)
	case "sqlite":
		url = strings.TrimPrefix(url[len("sqlite"):], "://")
	}

	dsn := url
	if dsn == "" {
		p, err := DefaultDBPath()
		if err != nil {
			return nil, fmt.Errorf("resolve db path: %w", err)
		}
		dsn = p
	}
	return Open(dsn)
}

func scheme(url string) string {
	i := strings.Index(url, "://")
	if i < 0 {
		return ""
	}
	return strings.ToLower(url[:i])
}
