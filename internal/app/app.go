package app

import (
	"fmt"
	"os"

	"gorm.io/gorm"

	"github.com/yungbote/gradadmin-backend/internal/data/db"
	defenserepo "github.com/yungbote/gradadmin-backend/internal/data/repos/defense"
	paymentrepo "github.com/yungbote/gradadmin-backend/internal/data/repos/payment"
	recordsrepo "github.com/yungbote/gradadmin-backend/internal/data/repos/records"
	"github.com/yungbote/gradadmin-backend/internal/data/tx"
	httpserver "github.com/yungbote/gradadmin-backend/internal/http"
	httpH "github.com/yungbote/gradadmin-backend/internal/http/handlers"
	httpMW "github.com/yungbote/gradadmin-backend/internal/http/middleware"
	"github.com/yungbote/gradadmin-backend/internal/platform/logger"
	"github.com/yungbote/gradadmin-backend/internal/services"
)

type App struct {
	Log    *logger.Logger
	DB     *gorm.DB
	Server *httpserver.Server
	Cfg    Config
}

func New() (*App, error) {
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	cfg := LoadConfig(log)

	pg, err := db.NewPostgresService(log)
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("init postgres: %w", err)
	}
	if err := pg.AutoMigrateAll(); err != nil {
		log.Sync()
		return nil, fmt.Errorf("postgres automigrate: %w", err)
	}
	theDB := pg.DB()

	// Repos
	requestRepo := defenserepo.NewDefenseRequestRepo(theDB, log)
	historyRepo := defenserepo.NewWorkflowHistoryRepo(theDB, log)
	verificationRepo := paymentrepo.NewVerificationRepo(theDB, log)
	batchRepo := paymentrepo.NewBatchRepo(theDB, log)
	rateRepo := paymentrepo.NewRateRepo(theDB, log)
	honorariumRepo := paymentrepo.NewHonorariumRepo(theDB, log)
	programRepo := recordsrepo.NewProgramRecordRepo(theDB, log)
	studentRepo := recordsrepo.NewStudentRecordRepo(theDB, log)
	panelistRepo := recordsrepo.NewPanelistRecordRepo(theDB, log)
	paymentRecordRepo := recordsrepo.NewPaymentRecordRepo(theDB, log)
	linkRepo := recordsrepo.NewPanelistStudentLinkRepo(theDB, log)

	// Services
	runner := tx.NewGormRunner(theDB)
	rates := services.NewRateResolver(log, rateRepo)
	history := services.NewWorkflowHistoryLog(log, historyRepo)
	fanout := services.NewRecordFanoutGenerator(
		log,
		rates,
		honorariumRepo,
		programRepo,
		studentRepo,
		panelistRepo,
		paymentRecordRepo,
		linkRepo,
	)
	verifications := services.NewVerificationService(
		log,
		runner,
		verificationRepo,
		requestRepo,
		honorariumRepo,
		history,
		fanout,
	)
	batches := services.NewBatchService(log, batchRepo, verificationRepo)
	verifier := services.NewTokenVerifier(log, cfg.JWTSecret)

	// HTTP
	server := httpserver.NewServer(httpserver.RouterConfig{
		AuthMiddleware:      httpMW.NewAuthMiddleware(log, verifier),
		VerificationHandler: httpH.NewVerificationHandler(log, verifications),
		BatchHandler:        httpH.NewBatchHandler(log, batches),
		HealthHandler:       httpH.NewHealthHandler(),
	})

	return &App{
		Log:    log,
		DB:     theDB,
		Server: server,
		Cfg:    cfg,
	}, nil
}

func (a *App) Run() error {
	if a == nil || a.Server == nil {
		return fmt.Errorf("app not initialized")
	}
	return a.Server.Run(":" + a.Cfg.Port)
}

func (a *App) Close() {
	if a != nil && a.Log != nil {
		a.Log.Sync()
	}
}
