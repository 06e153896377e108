package routes

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/tarot-app/account-api/internal/admin"
	"github.com/tarot-app/account-api/internal/audit"
	"github.com/tarot-app/account-api/internal/config"
	"github.com/tarot-app/account-api/internal/metrics"
	"github.com/tarot-app/account-api/internal/middleware"
	"github.com/tarot-app/account-api/internal/token"
	"github.com/tarot-app/account-api/internal/user"
)

// Deps aggregates shared dependencies required to wire routes. Nil services
// fall back to the unimplemented placeholders; a nil Verifier is replaced by
// an HMAC verifier when Cfg.TokenSecret is set.
type Deps struct {
	Cfg      config.Config
	DB       *pgxpool.Pool
	Cache    *redis.Client
	Logger   *slog.Logger
	Admin    admin.Service
	User     user.Service
	Verifier token.Verifier
	Journal  audit.Repository
	Metrics  *metrics.Metrics
}

// Setup configures middlewares and all application routes.
func Setup(app *fiber.App, d Deps) error {
	if !d.Cfg.IsDev() {
		if d.DB == nil {
			return fmt.Errorf("database is required when APP_ENV=%s", d.Cfg.AppEnv)
		}
		if d.Cache == nil {
			return fmt.Errorf("redis is required when APP_ENV=%s", d.Cfg.AppEnv)
		}
	}
	d = withDefaults(d)

	app.Use(middleware.RequestID())
	app.Use(d.Metrics.Middleware())
	app.Use(middleware.AccessLog(d.Logger))
	app.Use(recover.New())

	RegisterHealthRoutes(app, d)
	app.Get("/metrics", d.Metrics.Handler())

	scoped := []fiber.Handler{
		audit.Journal(d.Journal, d.Logger),
		middleware.Idempotency(d.Cache, d.Cfg.IdempotencyTTL, d.Logger),
	}

	adminHandler := admin.NewHandler(d.Admin, d.Verifier)
	adminGroup := app.Group("/private/admin", scoped...)
	adminGroup.Post("/login", adminHandler.Login)
	adminGroup.Post("/action", adminHandler.Action)
	adminGroup.Get("/ping", pong)

	userHandler := user.NewHandler(d.User, d.Verifier)
	userGroup := app.Group("/user", scoped...)
	userGroup.Post("/register", userHandler.Register)
	userGroup.Post("/login", userHandler.Login)
	userGroup.Post("/updateLocal", userHandler.UpdateLocal)
	userGroup.Post("/purches", userHandler.Purchase)
	userGroup.Post("/action", userHandler.Action)
	userGroup.Get("/ping", pong)

	return nil
}

func withDefaults(d Deps) Deps {
	if d.Logger == nil {
		d.Logger = slog.Default()
	}
	if d.Admin == nil {
		d.Admin = admin.Unimplemented{}
	}
	if d.User == nil {
		d.User = user.Unimplemented{}
	}
	if d.Verifier == nil && d.Cfg.TokenSecret != "" {
		d.Verifier = token.NewHMACVerifier([]byte(d.Cfg.TokenSecret))
	}
	if d.Journal == nil {
		if d.DB != nil {
			d.Journal = audit.NewPostgresRepository(d.DB)
		} else {
			d.Journal = audit.NewMemoryRepository(d.Cfg.AuditBuffer)
		}
	}
	if d.Metrics == nil {
		d.Metrics = metrics.New()
	}
	return d
}

func pong(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(fiber.Map{"message": "pong"})
}
