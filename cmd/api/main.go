package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	app "github.com/mohammadpnp/travel-booking/internal/application/travel"
	"github.com/mohammadpnp/travel-booking/internal/bootstrap"
	"github.com/mohammadpnp/travel-booking/internal/config"
	dbschema "github.com/mohammadpnp/travel-booking/internal/infrastructure/db"
	infrafile "github.com/mohammadpnp/travel-booking/internal/infrastructure/file"
	"github.com/mohammadpnp/travel-booking/internal/infrastructure/repository"
	"github.com/mohammadpnp/travel-booking/internal/infrastructure/security"
	"github.com/mohammadpnp/travel-booking/internal/logging"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const maxImportWorkers = 10

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("load config: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		logrus.Fatalf("init logger: %v", err)
	}

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		logger.Fatalf("failed to connect database: %v", err)
	}

	if cfg.AutoMigrate {
		if err := dbschema.Migrate(context.Background(), db); err != nil {
			logger.Fatalf("failed to migrate schema: %v", err)
		}
	}

	pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logger.Fatalf("failed to create pgx pool: %v", err)
	}
	defer pool.Close()

	server := bootstrap.NewHTTPServer(db, bootstrap.Security{
		Hasher: security.NewBcryptHasher(bcrypt.DefaultCost),
		Tokens: security.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL),
	}, logger)

	workerCtx, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()

	worker := app.NewImportWorker(
		repository.NewImportJobRepository(db),
		infrafile.NewLocalSource(cfg.Import.BaseDir),
		repository.NewUserBulkImportRepository(pool),
		app.ImportWorkerConfig{
			Workers:       min(cfg.Import.Workers, maxImportWorkers),
			ChunkSize:     cfg.Import.ChunkSize,
			LeaseDuration: cfg.Import.LeaseDuration,
			Logger:        logger.WithField("component", "import_worker"),
		},
	)
	worker.Start(workerCtx)

	go func() {
		logger.WithField("port", cfg.Port).Info("http server listening")
		if err := server.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	stopWorkers()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Errorf("graceful shutdown failed: %v", err)
	}
	worker.Wait()
	logger.Info("shutdown complete")
}
