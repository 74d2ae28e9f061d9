package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/massafina/massafina-api/internal/config"
	"github.com/massafina/massafina-api/internal/events"
	"github.com/massafina/massafina-api/internal/handlers"
	"github.com/massafina/massafina-api/internal/logging"
	"github.com/massafina/massafina-api/internal/repository"
	"github.com/massafina/massafina-api/internal/server"
	"github.com/massafina/massafina-api/internal/service"

	_ "github.com/lib/pq"
)

func main() {
	cfg := config.Load()
	logger := logging.New("massafina-api", cfg.Log.Level)

	db, err := initDatabase(cfg)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	logger.Info("database connected",
		"host", cfg.Database.Host,
		"name", cfg.Database.Name,
	)

	pizzaRepo := repository.NewPizzaRepository(db, logger)
	dessertRepo := repository.NewDessertRepository(db, logger)
	drinkRepo := repository.NewDrinkRepository(db, logger)
	customerRepo := repository.NewCustomerRepository(db, logger)
	orderRepo := repository.NewOrderRepository(db, logger)
	reportRepo := repository.NewReportRepository(db, logger)

	menuCache := repository.NewRedisMenuCache(cfg.Redis, logger)
	defer menuCache.Close()

	eventPublisher := events.NewKafkaPublisher(cfg.Kafka, logger)
	defer eventPublisher.Close()

	caching := cfg.Features.EnableMenuCaching
	pizzaService := service.NewPizzaService(pizzaRepo, menuCache, caching, logger)
	dessertService := service.NewDessertService(dessertRepo, menuCache, caching, logger)
	drinkService := service.NewDrinkService(drinkRepo, menuCache, caching, logger)
	customerService := service.NewCustomerService(customerRepo, logger)
	orderService := service.NewOrderService(
		orderRepo,
		pizzaRepo,
		dessertRepo,
		drinkRepo,
		eventPublisher,
		cfg.Features.EnableOrderEvents,
		logger,
	)
	reportService := service.NewReportService(reportRepo, logger)

	h := handlers.NewHandlers(
		pizzaService,
		dessertService,
		drinkService,
		customerService,
		orderService,
		reportService,
		logger,
	)

	srv := server.New(h, cfg)

	go func() {
		logger.Info("server starting",
			"port", cfg.Server.Port,
			"menu_caching", cfg.Features.EnableMenuCaching,
			"order_events", cfg.Features.EnableOrderEvents,
		)
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}

func initDatabase(cfg *config.Config) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.Database.ConnectionString())
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.MaxLifetime)

	if err := db.Ping(); err != nil {
		return nil, err
	}

	return db, nil
}
