package di

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"directory-server/api"
	"directory-server/api/listings"
	"directory-server/config"
	"directory-server/dao/redis"
	"directory-server/db"
	"directory-server/pages"
	"directory-server/server"
	"directory-server/server/handlers"
	services "directory-server/service"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
)

// Container holds all application dependencies.
type Container struct {
	Config                   *config.Config
	Logger                   *slog.Logger
	RedisClient              db.RedisClient
	RedisDirectoryDao        *redis.RedisDirectoryDAO
	ListingsSource           listings.ListingsSource
	DirectoryService         *services.DirectoryService
	ListingsRefresherService *services.ListingsRefresherService
	Renderer                 *pages.Renderer
	PageHandler              *handlers.PageHandler
	MuxRouter                *mux.Router
	Router                   *server.Router
	DirectoryHttpServer      *server.DirectoryHttpServer

	closers []func() error
}

// NewContainer connects to Redis and wires up all dependencies.
func NewContainer(ctx context.Context, cfg *config.Config, log *slog.Logger) (*Container, error) {
	log.Info("initializing container", slog.String("redis_addr", cfg.RedisAddr))

	redisInternalClient := goredis.NewClient(&goredis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	redisClient := db.NewGeoRedisClient(redisInternalClient, log)
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := redisClient.Ping(pingCtx); err != nil {
		redisInternalClient.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	c, err := NewContainerWithClient(cfg, log, redisClient)
	if err != nil {
		redisInternalClient.Close()
		return nil, err
	}
	c.closers = append(c.closers, redisInternalClient.Close)
	return c, nil
}

// NewContainerWithClient wires everything on top of an existing Redis client.
func NewContainerWithClient(cfg *config.Config, log *slog.Logger, redisClient db.RedisClient) (*Container, error) {
	redisDirectoryDao := redis.NewRedisDirectoryDAO(redisClient, log)

	var source listings.ListingsSource
	if cfg.ListingsSourceURL != "" {
		log.Info("using remote listings source", slog.String("url", cfg.ListingsSourceURL))
		source = listings.NewHTTPListingsSource(api.NewHTTPClient(cfg.ListingsSourceURL))
	} else {
		log.Info("using file listings source", slog.String("path", cfg.ListingsFile))
		source = listings.NewFileListingsSource(cfg.ListingsFile)
	}

	directoryService := services.NewDirectoryService(redisDirectoryDao, cfg.NearbyRadiusKm, log)
	refresher := services.NewListingsRefresherService(redisDirectoryDao, source, log)

	renderer, err := pages.NewRenderer()
	if err != nil {
		return nil, err
	}
	pageHandler := handlers.NewPageHandler(directoryService, renderer, log)

	muxRouter := mux.NewRouter()
	router := server.NewRouter(pageHandler, muxRouter, log)
	httpServer := server.NewDirectoryHttpServer(router, muxRouter, cfg.HTTPAddr, cfg.ShutdownTimeout, log)

	return &Container{
		Config:                   cfg,
		Logger:                   log,
		RedisClient:              redisClient,
		RedisDirectoryDao:        redisDirectoryDao,
		ListingsSource:           source,
		DirectoryService:         directoryService,
		ListingsRefresherService: refresher,
		Renderer:                 renderer,
		PageHandler:              pageHandler,
		MuxRouter:                muxRouter,
		Router:                   router,
		DirectoryHttpServer:      httpServer,
	}, nil
}

// Close releases the Redis connection pool.
func (c *Container) Close() error {
	var firstErr error
	for _, closeFn := range c.closers {
		if err := closeFn(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
