package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/4GeeksAcademy/cdavis-starwars-api/config"
	"github.com/4GeeksAcademy/cdavis-starwars-api/database"
	"github.com/4GeeksAcademy/cdavis-starwars-api/handlers"
	"github.com/4GeeksAcademy/cdavis-starwars-api/repository"
	"github.com/4GeeksAcademy/cdavis-starwars-api/utils"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Info().Msgf("No .env file found or error loading: %v", err)
	}
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	utils.InitLogger(cfg.LogLevel)

	if cfg.UsesPostgres() {
		log.Info().Msg("Using Postgres database from DATABASE_URL")
	} else {
		log.Info().Str("path", cfg.DatabasePath).Msg("DATABASE_URL not set, using SQLite database")
	}

	db, err := database.InitGormDB(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Error().Err(err).Msg("Failed to close database")
		}
	}()

	if cfg.AutoMigrate {
		if err := database.AutoMigrateModels(db); err != nil {
			log.Fatal().Err(err).Msg("Failed to migrate database")
		}
	}
	if cfg.SeedData {
		log.Info().Msg("Seeding empty tables with sample data...")
		if err := database.SeedStarWars(db); err != nil {
			log.Fatal().Err(err).Msg("Failed to seed database")
		}
	}

	repos, err := repository.NewRepositories(db)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize repositories")
	}

	r := handlers.NewRouter(repos, handlers.RouterOptions{
		AllowedOrigins: cfg.AllowedOrigins,
		RequestTimeout: cfg.RequestTimeout,
	})

	serverAddr := "0.0.0.0:" + cfg.Port
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: cfg.RequestTimeout + 5*time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Info().Str("addr", serverAddr).Msgf("Server starting on http://localhost:%s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server shutdown error")
	} else {
		log.Info().Msg("Server shutdown complete")
	}
}
