package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/diazeddy/dataset-api/internal/config"
	"github.com/diazeddy/dataset-api/internal/db"
	"github.com/diazeddy/dataset-api/internal/delivery/handler"
	"github.com/diazeddy/dataset-api/internal/infrastructure"
	"github.com/diazeddy/dataset-api/internal/repository"
	"github.com/diazeddy/dataset-api/internal/usecase"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal("failed to connect to MongoDB: ", err)
	}
	database := client.Database(cfg.DatabaseName)

	userRepo, err := repository.NewUserRepo(ctx, database)
	if err != nil {
		log.Fatal("failed to init user repository: ", err)
	}
	datasetRepo := repository.NewDatasetRepo(database)

	tokens := infrastructure.NewJWTService(cfg.SecretKey, cfg.AccessTokenExpiry)
	authUsecase := usecase.NewAuthUsecase(userRepo, tokens)
	datasetUsecase := usecase.NewDatasetUsecase(datasetRepo)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger(), middleware.Recover())

	handler.RegisterRoutes(e, handler.NewAuthHandler(authUsecase), handler.NewDatasetHandler(datasetUsecase), tokens)

	go func() {
		if err := e.Start(cfg.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server error: ", err)
		}
	}()
	log.Println("server listening on", cfg.Addr)

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Println("server shutdown: ", err)
	}
	if err := client.Disconnect(shutdownCtx); err != nil {
		log.Println("mongo disconnect: ", err)
	}
}
