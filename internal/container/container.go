package container

import (
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-records/config"
	pginfra "github.com/oksasatya/go-ddd-records/internal/infrastructure/postgres"
	"github.com/oksasatya/go-ddd-records/pkg/helpers"
)

// Container carries the infrastructure built in main so the router can
// wire modules from it. It owns nothing: main opens and closes each handle.
type Container struct {
	Config *config.Config
	Logger *logrus.Logger
	DB     pginfra.DB
	Redis  *redis.Client // nil when rate limiting is disabled
}

func New(cfg *config.Config, logger *logrus.Logger, db pginfra.DB, rdb *redis.Client) *Container {
	if cfg == nil {
		cfg = config.Load()
	}
	if logger == nil {
		logger = helpers.NopLogger()
	}
	return &Container{Config: cfg, Logger: logger, DB: db, Redis: rdb}
}
