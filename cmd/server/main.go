package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/jdkim-dev/boardgo/internal/auth"
	"github.com/jdkim-dev/boardgo/internal/board"
	"github.com/jdkim-dev/boardgo/internal/config"
	"github.com/jdkim-dev/boardgo/internal/database"
	"github.com/jdkim-dev/boardgo/internal/health"
	"github.com/jdkim-dev/boardgo/internal/logging"
	"github.com/jdkim-dev/boardgo/internal/metrics"
	"github.com/jdkim-dev/boardgo/internal/middleware"
	"github.com/jdkim-dev/boardgo/internal/reply"
	"github.com/jdkim-dev/boardgo/internal/token"
	"github.com/jdkim-dev/boardgo/internal/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	logging.Init(cfg.Env)

	db, err := database.Init(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Error().Err(err).Msg("failed to close database")
		}
	}()

	if err := database.RunMigrations(db); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	if cfg.SeedDev || cfg.Env == "local" {
		if err := database.SeedBoards(db); err != nil {
			log.Fatal().Err(err).Msg("failed to seed boards")
		}
	}

	auth.InitProviders(cfg)

	codec, err := token.New(cfg.JWTSecret, cfg.JWTTTL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build token codec")
	}

	collector := metrics.NewCollector()
	provisioner := auth.NewProvisioner(db)

	if cfg.Deployed() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(collector.Middleware())
	r.Use(auth.Gate(codec, collector))

	// public surface
	r.GET("/login", auth.HandleLoginPage)
	r.GET("/auth/google", auth.HandleLogin)
	r.GET("/auth/google/callback", auth.HandleCallback(cfg, provisioner, codec, collector))
	r.GET("/logout", auth.HandleLogout(cfg))
	r.GET("/healthz", gin.WrapF(health.Handler))
	r.GET("/metrics", collector.Handler())
	r.GET("/whoami", auth.HandleWhoAmI)
	r.GET("/", func(c *gin.Context) {
		if _, ok := auth.PrincipalFrom(c.Request.Context()); ok {
			c.Redirect(http.StatusFound, "/api/boards")
			return
		}
		c.Redirect(http.StatusFound, "/login")
	})

	// authenticated API surface
	api := r.Group("/api")
	api.Use(auth.RequireAuth())

	boardSvc := board.NewService(db)
	board.RegisterRoutes(api, boardSvc)

	replySvc := reply.NewService(db)
	reply.RegisterRoutes(api, replySvc)

	userSvc := user.NewService(user.NewRepository(db))
	user.RegisterRoutes(api, userSvc)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}
}
