package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ddc-studio/portfolio-api/api/route"
	"github.com/ddc-studio/portfolio-api/bootstrap"
	"github.com/ddc-studio/portfolio-api/mongo"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

func main() {
	envPath := os.Getenv("ENV_FILE")
	if envPath == "" {
		envPath = ".env"
	}

	app, err := bootstrap.App(envPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to start application")
	}
	defer app.CloseDBConnection()

	env := app.Env
	db := app.Database()
	timeout := time.Duration(env.ContextTimeout) * time.Second

	mongo.CreateIndexes(db)

	if err := bootstrap.SeedAdministrator(env, db, timeout); err != nil {
		log.Error().Err(err).Msg("failed to seed administrator")
	}

	if !env.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	route.Setup(env, timeout, db, app.Transactor(), engine)

	srv := &http.Server{
		Addr:              env.ServerAddress,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("address", env.ServerAddress).Bool("transactions", env.DBTransactions).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
