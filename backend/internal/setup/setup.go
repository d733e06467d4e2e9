package setup

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/itchan-dev/forum/backend/internal/handler"
	"github.com/itchan-dev/forum/backend/internal/service"
	"github.com/itchan-dev/forum/backend/internal/storage/memory"
	"github.com/itchan-dev/forum/backend/internal/storage/pg"
	"github.com/itchan-dev/forum/backend/internal/utils"
	"github.com/itchan-dev/forum/shared/config"
	"github.com/itchan-dev/forum/shared/jwt"
	"github.com/itchan-dev/forum/shared/logger"
	mw "github.com/itchan-dev/forum/shared/middleware"
	"github.com/itchan-dev/forum/shared/middleware/metrics"
)

// Storage is everything the services and probes need from a backend.
type Storage interface {
	service.UserStorage
	service.AuthStorage
	service.ThreadStorage
	service.CommentStorage
	service.ReplyStorage
	Ping(ctx context.Context) error
	Cleanup() error
}

// Dependencies struct to hold all initialized dependencies.
type Dependencies struct {
	Config         *config.Config
	Storage        Storage
	Handler        *handler.Handler
	AuthMiddleware *mw.Auth
	Metrics        *metrics.Metrics
	Registry       *prometheus.Registry
}

// SetupDependencies initializes all dependencies required for the application.
func SetupDependencies(ctx context.Context, cfg *config.Config) (*Dependencies, error) {
	storage, err := newStorage(ctx, cfg)
	if err != nil {
		return nil, err
	}

	tokens := jwt.New(cfg.AccessTokenKey(), cfg.RefreshTokenKey(), cfg.AccessTokenAge())
	hasher := utils.NewBcryptHasher(0)

	user := service.NewUser(storage, hasher)
	auth := service.NewAuth(storage, storage, tokens, hasher)
	thread := service.NewThread(storage, storage, storage, &cfg.Public)
	comment := service.NewComment(storage, storage)
	reply := service.NewReply(storage, storage, storage)

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	return &Dependencies{
		Config:         cfg,
		Storage:        storage,
		Handler:        handler.New(auth, user, thread, comment, reply, storage),
		AuthMiddleware: mw.NewAuth(tokens),
		Metrics:        metrics.New(registry),
		Registry:       registry,
	}, nil
}

func newStorage(ctx context.Context, cfg *config.Config) (Storage, error) {
	switch cfg.Public.Storage {
	case "memory":
		logger.Log.Warn("using in-memory storage, data is lost on restart")
		return memory.New(utils.NewIdGenerator()), nil
	case "postgres":
		if cfg.Public.AutoMigrate {
			if err := pg.MigrateUp(cfg.Private.Pg); err != nil {
				return nil, fmt.Errorf("auto migrate: %w", err)
			}
		}
		return pg.New(ctx, cfg)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Public.Storage)
	}
}
