package db

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	types "github.com/yungbote/gradadmin-backend/internal/domain"
	"github.com/yungbote/gradadmin-backend/internal/pkg/env"
	"github.com/yungbote/gradadmin-backend/internal/platform/logger"
)

type PostgresService struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPostgresService(logg *logger.Logger) (*PostgresService, error) {
	serviceLog := logg.With("service", "PostgresService")

	postgresHost := env.GetEnv("POSTGRES_HOST", "localhost", logg)
	postgresPort := env.GetEnv("POSTGRES_PORT", "5432", logg)
	postgresUser := env.GetEnv("POSTGRES_USER", "postgres", logg)
	postgresPassword := env.GetEnv("POSTGRES_PASSWORD", "", logg)
	postgresName := env.GetEnv("POSTGRES_NAME", "gradadmin", logg)

	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		postgresUser,
		postgresPassword,
		postgresHost,
		postgresPort,
		postgresName,
	)

	gormLog := gormLogger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		gormLogger.Config{
			SlowThreshold:             1 * time.Second,
			LogLevel:                  gormLogger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
		Logger:                                   gormLog,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Postgres: %w", err)
	}

	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`).Error; err != nil {
		return nil, fmt.Errorf("failed to enable uuid-ossp extension: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(env.GetEnvAsInt("POSTGRES_MAX_OPEN_CONNS", 25, logg))
	sqlDB.SetMaxIdleConns(env.GetEnvAsInt("POSTGRES_MAX_IDLE_CONNS", 5, logg))
	sqlDB.SetConnMaxLifetime(time.Duration(env.GetEnvAsInt("POSTGRES_CONN_MAX_LIFETIME_MINUTES", 30, logg)) * time.Minute)

	return &PostgresService{db: db, log: serviceLog}, nil
}

func (s *PostgresService) DB() *gorm.DB { return s.db }

func (s *PostgresService) AutoMigrateAll() error {
	return s.db.AutoMigrate(
		&types.DefenseRequest{},
		&types.WorkflowHistoryEntry{},

		&types.PaymentVerification{},
		&types.PaymentBatch{},
		&types.PaymentRate{},
		&types.HonorariumPayment{},

		&types.ProgramRecord{},
		&types.StudentRecord{},
		&types.PanelistRecord{},
		&types.PaymentRecord{},
		&types.PanelistStudentLink{},
	)
}
