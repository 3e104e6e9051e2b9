package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/tharindu-dev/cartify/internal/config"
	"github.com/tharindu-dev/cartify/internal/db"
	"github.com/tharindu-dev/cartify/internal/discovery"
	"github.com/tharindu-dev/cartify/internal/handlers"
	"github.com/tharindu-dev/cartify/internal/logging"
	"github.com/tharindu-dev/cartify/internal/service"
)

const serviceName = "auth-service"

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

	users := db.NewUserRepository(database)
	auth := service.NewAuthService(users, cfg.JWT.Secret, log)

	router := gin.Default()
	handlers.RegisterHealth(router, serviceName)
	handlers.NewAuthHandler(auth).RegisterRoutes(router)

	consul, err := discovery.NewConsulClient(cfg.Consul.Host, cfg.Consul.Port, log)
	if err != nil {
		log.Fatalw("failed to connect to Consul", "error", err)
	}
	serviceID, err := consul.Register(discovery.ServiceConfig{
		Name: serviceName,
		Port: cfg.AuthPort,
		Tags: []string{"auth", "api"},
	})
	if err != nil {
		log.Fatalw("failed to register service", "error", err)
	}

	go func() {
		if err := router.Run(fmt.Sprintf(":%d", cfg.AuthPort)); err != nil {
			log.Fatalw("server stopped", "error", err)
		}
	}()
	log.Infow("service started", "port", cfg.AuthPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	if err := consul.Deregister(serviceID); err != nil {
		log.Errorw("failed to deregister service", "error", err)
	}
	log.Info("service stopped")
}
