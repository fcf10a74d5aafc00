package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	app "github.com/oksasatya/go-ddd-records/internal/application"
	"github.com/oksasatya/go-ddd-records/internal/container"
	"github.com/oksasatya/go-ddd-records/internal/domain/entity"
	pginfra "github.com/oksasatya/go-ddd-records/internal/infrastructure/postgres"
	handlers "github.com/oksasatya/go-ddd-records/internal/interface/http"
	"github.com/oksasatya/go-ddd-records/internal/interface/middleware"
	"github.com/oksasatya/go-ddd-records/internal/router/modules"
	"github.com/oksasatya/go-ddd-records/pkg/response"
	"github.com/oksasatya/go-ddd-records/pkg/validation"
)

// NewEngine builds the gin engine with global middleware and every module registered.
func NewEngine(c *container.Container) *gin.Engine {
	validation.Init()

	r := gin.New()
	r.Use(gin.CustomRecovery(func(ctx *gin.Context, _ any) { response.Internal(ctx) }))
	r.Use(middleware.RequestIDMiddleware())
	proxies := c.Config.TrustedProxyList()
	if err := r.SetTrustedProxies(proxies); err != nil {
		c.Logger.WithError(err).Warn("invalid TRUSTED_PROXIES, trusting no proxy")
		proxies = nil
		_ = r.SetTrustedProxies(nil)
	}
	r.Use(middleware.RealIP(proxies...))
	r.Use(middleware.Metrics())

	reg := NewRegistry(r)
	if origins := c.Config.CORSOrigins(); len(origins) > 0 {
		reg.Use(cors.New(cors.Config{
			AllowOrigins:     origins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
			ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}
	if c.Config.HTTPLogEnabled {
		reg.Use(middleware.AccessLog(c.Logger))
	}

	InitModules(reg, c)
	reg.RegisterAll()
	return r
}

func buildRecordService[T any](c *container.Container, schema entity.Schema[T]) *app.RecordService[T] {
	repo := pginfra.NewRecordRepository(c.DB, schema)
	return app.NewRecordService[T](repo, schema, c.Logger)
}

func recordMiddleware(c *container.Container) []gin.HandlerFunc {
	cfg := c.Config
	if !cfg.RateLimitEnabled() || c.Redis == nil {
		return nil
	}
	var allow middleware.AllowFunc
	if cfg.RateLimitAllowLocal {
		allow = middleware.AllowPrivateIP()
	}
	return []gin.HandlerFunc{
		middleware.RateLimit(c.Redis, cfg.RateLimitPerMinute, time.Minute, middleware.KeyByIP(), allow),
	}
}

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry, c *container.Container) {
	mw := recordMiddleware(c)

	users := handlers.NewUserHandler(buildRecordService(c, entity.UserSchema), c.Logger)
	roles := handlers.NewRoleHandler(buildRecordService(c, entity.RoleSchema), c.Logger)
	perms := handlers.NewPermissionHandler(buildRecordService(c, entity.PermissionSchema), c.Logger)

	r.Add(modules.NewRecordModule(entity.UserSchema.Path, users, mw...))
	r.Add(modules.NewRecordModule(entity.RoleSchema.Path, roles, mw...))
	r.Add(modules.NewRecordModule(entity.PermissionSchema.Path, perms, mw...))

	docs := handlers.NewDocsHandler(c.Config.AppName, c.Config.AppVersion,
		entity.UserSchema.Describe(),
		entity.RoleSchema.Describe(),
		entity.PermissionSchema.Describe(),
	)
	r.Add(modules.NewDocsModule(docs, c.Config.StaticDir))
	r.Add(modules.NewHealthModule(handlers.NewHealthHandler(c.DB, c.Logger)))

	if c.Config.DebugMetricsEnabled {
		var debugMW []gin.HandlerFunc
		if c.Redis != nil {
			debugMW = append(debugMW, middleware.RateLimit(c.Redis, 120, time.Minute, middleware.KeyByIPAndPath(), nil))
		}
		r.Add(modules.NewDebugModule(debugMW...))
	}
}
