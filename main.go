package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/yad-anakin/diva/config"
	"github.com/yad-anakin/diva/models"
	"github.com/yad-anakin/diva/routes"
	"github.com/yad-anakin/diva/store"
	"github.com/yad-anakin/diva/utils"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := config.NewLogger(cfg.Production)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	if cfg.Production {
		gin.SetMode(gin.ReleaseMode)
	}
	if cfg.SessionSecret == "" {
		logger.Warn("SESSION_SECRET not set, sessions will not survive a restart")
	}
	if !cfg.HasAdminCredentials() {
		logger.Warn("admin credentials not configured, login will fail with 500")
	}

	db, err := config.ConnectDB(cfg.DBURL)
	if err != nil {
		logger.Fatal("failed to connect database",
			zap.String("dsn", config.RedactDSN(cfg.DBURL)),
			zap.Error(err))
	}

	if err := db.AutoMigrate(
		&models.Service{},
		&models.Employee{},
		&models.Appointment{},
		&models.HistoryRecord{},
	); err != nil {
		logger.Fatal("failed to migrate schema", zap.Error(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("failed to expose database pool", zap.Error(err))
	}

	router := routes.SetupRouter(routes.Deps{
		Cfg:          cfg,
		Log:          logger,
		Sessions:     utils.NewSessionManager(cfg.SessionSecret, cfg.Production),
		Services:     store.NewServiceStore(db),
		Employees:    store.NewEmployeeStore(db),
		Appointments: store.NewAppointmentStore(db),
		History:      store.NewHistoryStore(db),
		DB:           sqlDB,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", zap.Error(err))
	}
	if err := config.CloseDB(db); err != nil {
		logger.Error("closing database failed", zap.Error(err))
	}
}
