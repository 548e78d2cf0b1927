package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"kitchenpos/cmd"
	httpin "kitchenpos/internal/adapters/in/http"
	"kitchenpos/internal/adapters/out/logdispatch"
	"kitchenpos/internal/adapters/out/memory"
	"kitchenpos/internal/adapters/out/postgres"
	"kitchenpos/internal/adapters/out/postgres/orderrepo"
	"kitchenpos/internal/adapters/out/rabbitmq"
	"kitchenpos/internal/core/application/usecases/queries"
	"kitchenpos/internal/core/ports"
	"kitchenpos/internal/jobs"
	"kitchenpos/internal/pkg/logger"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	logger.Init(configs.AppEnv)
	defer logger.Sync()

	uowFactory, activeBoard := openStorage(configs)
	dispatcher, closeDispatcher := openDispatcher(configs)
	defer closeDispatcher()

	app := cmd.NewCompositionRoot(uowFactory, activeBoard, dispatcher)

	jobManager := jobs.NewJobManager(app.CreateGetActiveOrdersQueryHandler(), configs.BoardJobSpec, logger.L())
	if err := jobManager.StartAll(); err != nil {
		logger.L().Fatal("failed to start jobs", zap.Error(err))
	}
	defer jobManager.StopAll()

	startWebServer(app, configs)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Warnf("no .env file loaded: %v", err)
	}

	config, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	return config
}

func openStorage(configs cmd.Config) (ports.UnitOfWorkFactory, queries.ActiveOrderReader) {
	if configs.Storage == cmd.StorageMemory {
		logger.L().Info("using in-memory storage")
		store := memory.NewStore()
		return memory.NewUnitOfWorkFactory(store), memory.NewActiveOrderReader(store)
	}

	gormDB, err := gorm.Open(gormpostgres.Open(configs.PostgresDSN()), &gorm.Config{})
	if err != nil {
		logger.L().Fatal("failed to connect to database", zap.Error(err))
	}

	if err = postgres.Migrate(gormDB); err != nil {
		logger.L().Fatal("failed to migrate database", zap.Error(err))
	}

	logger.L().Info("using postgres storage", zap.String("host", configs.DBHost), zap.String("db", configs.DBName))
	return postgres.NewGormUnitOfWorkFactory(gormDB), orderrepo.NewGormActiveOrderReader(gormDB)
}

func openDispatcher(configs cmd.Config) (ports.DeliveryDispatcher, func()) {
	if configs.RabbitMQURL == "" {
		logger.L().Info("RABBITMQ_URL is not set, delivery requests are only logged")
		return logdispatch.NewDeliveryDispatcher(), func() {}
	}

	conn, err := rabbitmq.Dial(configs.RabbitMQURL)
	if err != nil {
		logger.L().Fatal("failed to connect to rabbitmq", zap.Error(err))
	}
	return conn.DeliveryDispatcher(), conn.Close
}

func startWebServer(app cmd.CompositionRoot, configs cmd.Config) {
	var limiter *httpin.RateLimiter
	if configs.RateLimit > 0 {
		limiter = httpin.NewRateLimiter(rate.Limit(configs.RateLimit), configs.RateBurst)
	}

	e, err := httpin.NewRouter(httpin.NewServer(app.HTTPHandlers()), limiter)
	if err != nil {
		logger.L().Fatal("failed to build router", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		addr := fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)
		logger.L().Info("http server listening", zap.String("addr", addr))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal("http server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.L().Error("http server shutdown failed", zap.Error(err))
	}
}
