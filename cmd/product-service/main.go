package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tharindu-dev/cartify/internal/cache"
	"github.com/tharindu-dev/cartify/internal/config"
	"github.com/tharindu-dev/cartify/internal/db"
	"github.com/tharindu-dev/cartify/internal/discovery"
	"github.com/tharindu-dev/cartify/internal/handlers"
	"github.com/tharindu-dev/cartify/internal/logging"
	"github.com/tharindu-dev/cartify/internal/messaging"
	"github.com/tharindu-dev/cartify/internal/publisher"
	"github.com/tharindu-dev/cartify/internal/service"
)

const serviceName = "product-service"

func main() {
	cfg := config.Load()

	log, err := logging.NewLogger(serviceName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	database, err := db.NewPostgresDB(cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.User, cfg.Postgres.Password, cfg.Postgres.DBName)
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer database.Close()

	if err := database.RunMigrations(); err != nil {
		log.Fatalw("failed to run migrations", "error", err)
	}

	redisCache, err := cache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Port, 5*time.Minute)
	if err != nil {
		log.Fatalw("failed to connect to Redis", "error", err)
	}
	defer redisCache.Close()

	mq, err := messaging.NewRabbitMQ(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
	if err != nil {
		log.Fatalw("failed to connect to RabbitMQ", "error", err)
	}
	defer mq.Close()

	if err := mq.DeclareProductTopology(); err != nil {
		log.Fatalw("failed to declare messaging topology", "error", err)
	}

	products := db.NewCachedProductRepository(db.NewProductRepository(database), redisCache, log)
	categories := db.NewCategoryRepository(database)
	events := publisher.NewProductPublisher(mq, log)

	productSvc := service.NewProductService(products, categories, events, log)
	categorySvc := service.NewCategoryService(categories, log)

	router := gin.Default()
	handlers.RegisterHealth(router, serviceName)
	handlers.NewProductHandler(productSvc).RegisterRoutes(router)
	handlers.NewCategoryHandler(categorySvc).RegisterRoutes(router)

	consul, err := discovery.NewConsulClient(cfg.Consul.Host, cfg.Consul.Port, log)
	if err != nil {
		log.Fatalw("failed to connect to Consul", "error", err)
	}
	serviceID, err := consul.Register(discovery.ServiceConfig{
		Name: serviceName,
		Port: cfg.ProductPort,
		Tags: []string{"catalog", "api"},
	})
	if err != nil {
		log.Fatalw("failed to register service", "error", err)
	}

	go func() {
		if err := router.Run(fmt.Sprintf(":%d", cfg.ProductPort)); err != nil {
			log.Fatalw("server stopped", "error", err)
		}
	}()
	log.Infow("service started", "port", cfg.ProductPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	if err := consul.Deregister(serviceID); err != nil {
		log.Errorw("failed to deregister service", "error", err)
	}
	log.Info("service stopped")
}
