package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/vasapolrittideah/e-comm-api/internal/auth"
	"github.com/vasapolrittideah/e-comm-api/internal/config"
	"github.com/vasapolrittideah/e-comm-api/internal/database"
	"github.com/vasapolrittideah/e-comm-api/internal/handler"
	"github.com/vasapolrittideah/e-comm-api/internal/httputil"
	"github.com/vasapolrittideah/e-comm-api/internal/repository"
	"github.com/vasapolrittideah/e-comm-api/internal/usecase"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load configuration")
	}

	ctx := context.Background()

	client, err := database.Connect(ctx, cfg.MongoURI)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to mongodb")
	}
	db := client.Database(cfg.MongoDatabase)

	validate, trans, err := httputil.NewValidator()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build validator")
	}

	codec := auth.NewTokenCodec(cfg.JWTSecret, cfg.TokenTTL)

	userRepo := repository.NewUserMongoRepository(ctx, &logger, db)
	productRepo := repository.NewProductMongoRepository(db)

	authUsecase := usecase.NewAuthUsecase(userRepo, codec)
	productUsecase := usecase.NewProductUsecase(productRepo)
	userUsecase := usecase.NewUserUsecase(userRepo)

	authHandler := handler.NewAuthHandler(authUsecase, validate, trans, &logger)
	productHandler := handler.NewProductHandler(productUsecase, validate, trans, &logger)
	userHandler := handler.NewUserHandler(userUsecase, validate, trans, &logger)

	router := handler.NewRouter(
		&logger,
		codec,
		cfg.RequestTimeout,
		authHandler,
		productHandler,
		userHandler,
	)

	server := &http.Server{
		Addr:         cfg.ServerAddress,
		Handler:      router,
		ReadTimeout:  cfg.RequestTimeout,
		WriteTimeout: cfg.RequestTimeout,
	}

	go func() {
		logger.Info().Str("address", cfg.ServerAddress).Msg("starting server")

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shut down server gracefully")
	}

	if err := database.Disconnect(ctx, client); err != nil {
		logger.Error().Err(err).Msg("failed to disconnect from mongodb")
	}
}
