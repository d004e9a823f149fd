package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/unyx/random"
	"github.com/unyx/random/internal/dependencies/clock"
	"github.com/unyx/random/internal/services/token"
	"github.com/unyx/random/internal/storage"
	"github.com/unyx/random/internal/storage/memory"
	redisstorage "github.com/unyx/random/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock clock.Clock

	// Engine and services
	Generator    *random.Generator
	TokenService *token.Service
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// AllowFallback permits the generator to fall back to weaker entropy
	// sources when the strongest one fails
	AllowFallback bool
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	source, err := random.NewSystemSource()
	if err != nil {
		return nil, err
	}

	genCfg := random.DefaultConfig()
	genCfg.AllowFallback = cfg.AllowFallback
	genCfg.Logger = logger
	generator, err := random.New(genCfg, source)
	if err != nil {
		return nil, err
	}

	clk := clock.New()

	return newWithDependencies(store, clk, generator, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, generator *random.Generator, logger *slog.Logger) *App {
	tokenService := token.New(store, generator, clk, logger)

	return &App{
		Storage:      store,
		Clock:        clk,
		Generator:    generator,
		TokenService: tokenService,
	}
}
