package database

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/4GeeksAcademy/cdavis-starwars-api/config"
	"github.com/4GeeksAcademy/cdavis-starwars-api/models"
	"github.com/4GeeksAcademy/cdavis-starwars-api/utils"
)

// Dialect names as reported by gorm.Dialector.Name()
const (
	DialectSQLite   = "sqlite"
	DialectPostgres = "postgres"
)

// Dialector picks Postgres when DATABASE_URL is set and the local SQLite file otherwise.
func Dialector(cfg config.Config) gorm.Dialector {
	if cfg.UsesPostgres() {
		return postgres.Open(cfg.DatabaseURL)
	}
	return sqlite.Open(cfg.DatabasePath)
}

// InitGormDB initializes and returns a GORM database instance
func InitGormDB(cfg config.Config) (*gorm.DB, error) {
	gormLogger := logger.New(
		utils.GormLogWriter{},
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  utils.ParseGormLogLevel(cfg.GormLogLevel),
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	db, err := gorm.Open(Dialector(cfg), &gorm.Config{
		Logger: gormLogger,
		// references between tables are informational only, dangling ids are allowed
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database using GORM: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB from GORM: %w", err)
	}

	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if db.Dialector.Name() == DialectSQLite && !strings.Contains(cfg.DatabasePath, "mode=memory") {
		// enable write-ahead logging for better concurrency
		if err := db.Exec("PRAGMA journal_mode=WAL;").Error; err != nil {
			log.Warn().Err(err).Msg("failed to set WAL mode")
		}
	}

	log.Info().Str("dialect", db.Dialector.Name()).Msg("GORM database initialized successfully")
	return db, nil
}

// AutoMigrateModels creates or updates every table the API reads from
func AutoMigrateModels(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Gender{},
		&models.Specie{},
		&models.Director{},
		&models.Vehicle{},
		&models.Planet{},
		&models.Film{},
		&models.Person{},
		&models.Starship{},
		&models.Favorite{},
	)
	if err != nil {
		return fmt.Errorf("GORM AutoMigrate failed: %w", err)
	}
	log.Info().Msg("GORM AutoMigrate completed successfully.")
	return nil
}

// Close releases the connection pool behind db.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB from GORM: %w", err)
	}
	return sqlDB.Close()
}
