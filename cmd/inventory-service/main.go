package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/tharindu-dev/cartify/internal/config"
	"github.com/tharindu-dev/cartify/internal/consumer"
	"github.com/tharindu-dev/cartify/internal/db"
	"github.com/tharindu-dev/cartify/internal/discovery"
	"github.com/tharindu-dev/cartify/internal/handlers"
	"github.com/tharindu-dev/cartify/internal/logging"
	"github.com/tharindu-dev/cartify/internal/messaging"
	"github.com/tharindu-dev/cartify/internal/service"
)

const serviceName = "inventory-service"

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

	mq, err := messaging.NewRabbitMQ(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
	if err != nil {
		log.Fatalw("failed to connect to RabbitMQ", "error", err)
	}
	defer mq.Close()

	if err := mq.DeclareProductTopology(); err != nil {
		log.Fatalw("failed to declare messaging topology", "error", err)
	}

	inventorySvc := service.NewInventoryService(db.NewInventoryRepository(database), log)

	msgs, err := mq.Consume(messaging.InventoryQueue)
	if err != nil {
		log.Fatalw("failed to start consuming", "error", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go consumer.NewInventoryConsumer(inventorySvc, log).Run(ctx, msgs)

	router := gin.Default()
	handlers.RegisterHealth(router, serviceName)
	handlers.NewInventoryHandler(inventorySvc).RegisterRoutes(router)

	consul, err := discovery.NewConsulClient(cfg.Consul.Host, cfg.Consul.Port, log)
	if err != nil {
		log.Fatalw("failed to connect to Consul", "error", err)
	}
	serviceID, err := consul.Register(discovery.ServiceConfig{
		Name: serviceName,
		Port: cfg.InventoryPort,
		Tags: []string{"inventory", "api"},
	})
	if err != nil {
		log.Fatalw("failed to register service", "error", err)
	}

	go func() {
		if err := router.Run(fmt.Sprintf(":%d", cfg.InventoryPort)); err != nil {
			log.Fatalw("server stopped", "error", err)
		}
	}()
	log.Infow("service started", "port", cfg.InventoryPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	if err := consul.Deregister(serviceID); err != nil {
		log.Errorw("failed to deregister service", "error", err)
	}
	log.Info("service stopped")
}
