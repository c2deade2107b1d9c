// Package database owns the gorm connection: dialing, schema migration,
// pool sizing and health reporting. The handle is constructed here and
// injected downward; nothing in the repo reaches for a global connection.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/just-tech-news/backend/internal/config"
	applog "github.com/just-tech-news/backend/internal/logger"
	"github.com/just-tech-news/backend/internal/models"
)

// Service wraps the gorm handle together with lifecycle helpers.
type Service struct {
	db *gorm.DB
}

// New connects to Postgres using the configured credentials, verifies
// connectivity, and prepares the schema.
func New(cfg config.Config) (*Service, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBSSLMode,
	)

	// Dial once through database/sql first so bad credentials or an
	// unreachable host fail at boot instead of on the first query.
	probe, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := probe.Ping(); err != nil {
		probe.Close()
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	probe.Close()

	return Open(dsn)
}

// Open establishes the gorm session on an already-validated DSN, declares
// the association graph, and migrates the four tables. Tests call it
// directly with a container-provided DSN.
func Open(dsn string) (*Service, error) {
	gormLogger := gormlogger.New(
		log.New(os.Stdout, "", log.LstdFlags),
		gormlogger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormLogger,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("opening gorm session: %w", err)
	}

	// The join table must be registered before migration so VotedPosts
	// maps onto vote instead of a generated table.
	if err := models.SetupAssociations(db); err != nil {
		return nil, fmt.Errorf("declaring associations: %w", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Comment{},
		&models.Vote{},
	); err != nil {
		return nil, fmt.Errorf("migrating schema: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("unwrapping sql.DB: %w", err)
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	applog.Sugar.Info("database connected and migrated")

	return &Service{db: db}, nil
}

// DB exposes the gorm handle for the store layer.
func (s *Service) DB() *gorm.DB {
	return s.db
}

// Health pings the database and reports pool statistics.
func (s *Service) Health() map[string]string {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	stats := make(map[string]string)

	sqlDB, err := s.db.DB()
	if err != nil {
		stats["status"] = "down"
		stats["error"] = fmt.Sprintf("db error: %v", err)
		return stats
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		stats["status"] = "down"
		stats["error"] = fmt.Sprintf("db down: %v", err)
		return stats
	}

	stats["status"] = "up"
	dbStats := sqlDB.Stats()
	stats["open_connections"] = fmt.Sprintf("%d", dbStats.OpenConnections)
	stats["in_use"] = fmt.Sprintf("%d", dbStats.InUse)
	stats["idle"] = fmt.Sprintf("%d", dbStats.Idle)

	return stats
}

// Close releases the underlying connection pool.
func (s *Service) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
