package container

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"todo-backend/internal/config"
	"todo-backend/internal/domains/todo"
	todoHandler "todo-backend/internal/domains/todo/handler"
	todoRepo "todo-backend/internal/domains/todo/repository"
	todoService "todo-backend/internal/domains/todo/service"
	"todo-backend/internal/infrastructure/cache"
	"todo-backend/internal/infrastructure/database"
	"todo-backend/internal/infrastructure/storage"
)

// Container holds every long-lived dependency of the application and is the
// root of the dependency graph. Initialization order matters: config, then
// infrastructure, then repository, service, handler.
type Container struct {
	Config *config.Config
	DB     *database.PostgresDB
	Redis  *cache.RedisClient
	MinIO  *storage.MinIOStorage

	TodoRepo    todo.Repository
	TodoService todo.Service
	TodoHandler *todoHandler.TodoHandler
}

func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db := database.NewPostgresDB(cfg.Database)
	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	c.DB = db

	redisClient := cache.NewRedisClient(cfg.Redis)
	if err := redisClient.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	c.Redis = redisClient

	minioStorage, err := storage.NewMinIOStorage(cfg.MinIO)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize object storage: %w", err)
	}
	c.MinIO = minioStorage

	c.TodoRepo = todoRepo.NewPostgresRepository(db)
	c.TodoService = todoService.NewTodoService(c.TodoRepo, minioStorage)
	c.TodoHandler = todoHandler.NewTodoHandler(c.TodoService)

	log.Info().Str("environment", cfg.App.Environment).Msg("container initialized")
	return c, nil
}

// Cleanup releases infrastructure resources in reverse initialization order.
func (c *Container) Cleanup() {
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close redis client")
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}
}
