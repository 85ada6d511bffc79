package cache

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Backend names accepted by [Open].
const (
	BackendNone  = "none"
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendMongo = "mongo"
)

// DefaultMongoDatabase is used when Options.MongoDatabase is empty.
const DefaultMongoDatabase = "hemicycle"

// Options select and configure a backend.
type Options struct {
	Backend       string // none, file (default), redis or mongo
	Dir           string // file backend root; defaults to [DefaultDir]
	RedisURL      string
	MongoURI      string
	MongoDatabase string
}

// DefaultDir returns $XDG_CACHE_HOME/hemicycle or its platform equivalent.
func DefaultDir() (string, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "hemicycle"), nil
}

// Open returns the backend described by opts.
func Open(ctx context.Context, opts Options) (Cache, error) {
	switch opts.Backend {
	case BackendNone:
		return NewNullCache(), nil
	case "", BackendFile:
		dir := opts.Dir
		if dir == "" {
			d, err := DefaultDir()
			if err != nil {
				return nil, err
			}
			dir = d
		}
		c, err := NewFileCache(dir)
		if err != nil {
			return nil, err
		}
		return c, nil
	case BackendRedis:
		if opts.RedisURL == "" {
			return nil, fmt.Errorf("redis backend needs a redis url")
		}
		c, err := NewRedisCache(ctx, opts.RedisURL)
		if err != nil {
			return nil, err
		}
		return c, nil
	case BackendMongo:
		if opts.MongoURI == "" {
			return nil, fmt.Errorf("mongo backend needs a mongo uri")
		}
		db := opts.MongoDatabase
		if db == "" {
			db = DefaultMongoDatabase
		}
		c, err := NewMongoCache(ctx, opts.MongoURI, db)
		if err != nil {
			return nil, err
		}
		return c, nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q", opts.Backend)
	}
}
