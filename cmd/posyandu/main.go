// cmd/posyandu/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	"posyandu/config"
	"posyandu/internal/api/handlers/posyandu"
	"posyandu/internal/lib/logger/utils"
	"posyandu/internal/service"
	"posyandu/internal/storage/postgres"
	_ "posyandu/swagger"
)

// @title Posyandu Portal API
// @version 1.0
// @description Posyandu registry with paginated listing.

// @host localhost:8080
// @BasePath /
// @schemes http

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Config load failed: %v", err)
	}

	if err := utils.InitLoggerLevel(cfg.LogLevel); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer utils.Logger.Sync()

	utils.Logger.Info("Starting Posyandu Portal API")
	utils.Logger.Debug("Configuration loaded",
		zap.String("db_host", cfg.DBHost),
		zap.Int("db_port", cfg.DBPort),
		zap.String("db_name", cfg.DBName),
		zap.Int("server_port", cfg.ServerPort),
		zap.Int("page_limit", cfg.PageLimit))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.DBURL)
	if err != nil {
		utils.Logger.Fatal("Database connection failed", zap.Error(err))
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		utils.Logger.Fatal("Database ping failed", zap.Error(err))
	}
	utils.Logger.Info("Database connected")

	if err := postgres.RunMigrations(cfg.MigrationsPath, cfg.DBURL); err != nil {
		utils.Logger.Fatal("Database migration failed", zap.Error(err))
	}
	utils.Logger.Info("Database migrations completed successfully")

	pgStorage := postgres.NewPgStorage(pool)
	posyanduService := service.NewPosyanduService(pgStorage)
	posyanduHandlers := posyandu.NewPosyanduHandlers(posyanduService, cfg.PageLimit)

	router := mux.NewRouter()
	posyanduHandlers.Register(router)
	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			utils.Logger.Error("Server shutdown failed", zap.Error(err))
		}
	}()

	utils.Logger.Info("Server starting", zap.String("address", server.Addr))
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		utils.Logger.Fatal("Server failed", zap.Error(err))
	}
	utils.Logger.Info("Server stopped")
}
