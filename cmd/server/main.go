package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"

	"github.com/sudo-init-do/sgu/internal/config"
	"github.com/sudo-init-do/sgu/internal/db"
	"github.com/sudo-init-do/sgu/internal/logging"
	"github.com/sudo-init-do/sgu/internal/user"
)

func main() {
	envFile := flag.String("env", ".env", "Optional .env file to load before reading the environment")
	flag.Parse()

	cfg, err := config.LoadServer(*envFile)
	if err != nil {
		logrus.Fatalf("invalid configuration: %v", err)
	}
	log := logging.New(logging.Options{Level: cfg.LogLevel, File: cfg.LogFile, JSON: cfg.LogFile != ""})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		store user.Store
		pool  *pgxpool.Pool
	)
	switch cfg.Store {
	case "memory":
		log.Warn("using in-memory user store; data is lost on restart")
		store = user.NewMemoryStore()
	default:
		pool, err = db.Open(ctx, cfg.DB.DSN(), log)
		if err != nil {
			log.Fatal(err)
		}
		defer pool.Close()
		store = user.NewPGStore(pool)
	}

	e := newServer(cfg, store, pool, log)

	go func() {
		log.Infof("API server listening on :%s", cfg.Port)
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("shutdown")
	}
}

// newServer wires middleware and routes. pool may be nil for the memory store.
func newServer(cfg config.Server, store user.Store, pool *pgxpool.Pool, log *logrus.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = user.RequestValidator{}

	// Basic middleware
	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogError:   true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			entry := log.WithFields(logrus.Fields{
				"method":  v.Method,
				"uri":     v.URI,
				"status":  v.Status,
				"latency": v.Latency,
			})
			if v.Error != nil {
				entry.WithError(v.Error).Error("request")
				return nil
			}
			entry.Info("request")
			return nil
		},
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
	}))

	// Health routes
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
	})
	e.GET("/ready", func(c echo.Context) error {
		if pool == nil {
			return c.JSON(http.StatusOK, echo.Map{"status": "ready"})
		}
		if err := pool.Ping(c.Request().Context()); err != nil {
			return c.JSON(http.StatusServiceUnavailable, echo.Map{"status": "not_ready", "error": "db unreachable"})
		}
		return c.JSON(http.StatusOK, echo.Map{"status": "ready"})
	})

	user.NewHandler(store, log).Register(e.Group(strings.TrimSuffix(cfg.BasePath, "/")))
	return e
}
