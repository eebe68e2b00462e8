package main

import (
	"context"
	"log"

	cartapp "goggles_shop/internal/application/cart"
	catalogapp "goggles_shop/internal/application/catalog"
	checkoutapp "goggles_shop/internal/application/checkout"
	"goggles_shop/internal/config"
	ginserver "goggles_shop/internal/infrastructure/http/gin"
	kafkainfra "goggles_shop/internal/infrastructure/messaging/kafka"
	"goggles_shop/internal/infrastructure/persistence/postgres"
	"goggles_shop/internal/interfaces/http/handler"
	"goggles_shop/internal/interfaces/http/middleware"
	"goggles_shop/internal/interfaces/http/router"
	"goggles_shop/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config failed: %v", err)
	}

	appLog, err := logger.NewZapLogger(cfg.App.Env)
	if err != nil {
		log.Fatalf("init logger failed: %v", err)
	}
	defer func() {
		_ = appLog.Sync()
	}()

	ctx := context.Background()

	pool, err := postgres.NewPool(cfg.DB)
	if err != nil {
		appLog.Fatal("postgres connection failed", logger.Error(err))
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		appLog.Fatal("schema bootstrap failed", logger.Error(err))
	}

	productRepo := postgres.NewProductRepository(pool)
	cartRepo := postgres.NewCartRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	checkoutStore := postgres.NewCheckoutStore(pool)

	var publisher checkoutapp.Publisher
	if cfg.Kafka.Enabled() {
		producer, err := kafkainfra.NewOrderProducer(cfg.Kafka, appLog)
		if err != nil {
			appLog.Fatal("kafka producer init failed", logger.Error(err))
		}
		defer func() {
			_ = producer.Close(ctx)
		}()
		publisher = producer
	} else {
		appLog.Info("order event publishing disabled: no kafka brokers configured")
	}

	catalogService := catalogapp.NewService(productRepo)
	cartService := cartapp.NewService(cartRepo, productRepo)
	checkoutService := checkoutapp.NewService(cartRepo, orderRepo, checkoutStore, publisher, appLog)

	catalogHandler := handler.NewCatalogHandler(catalogService)
	cartHandler := handler.NewCartHandler(cartService)
	checkoutHandler := handler.NewCheckoutHandler(checkoutService)

	engine := ginserver.NewEngine(
		middleware.RequestLogger(appLog),
		middleware.Prometheus(),
	)
	router.RegisterRoutes(engine, catalogHandler, cartHandler, checkoutHandler)

	appLog.Info("storefront starting",
		logger.String("app", cfg.App.Name),
		logger.String("addr", cfg.Server.Address()),
	)

	server := ginserver.NewServer(cfg.Server, engine)
	if err := server.Run(); err != nil {
		appLog.Fatal("server run failed", logger.Error(err))
	}
}
