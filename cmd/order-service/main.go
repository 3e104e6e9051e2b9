package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/tharindu-dev/cartify/internal/client"
	"github.com/tharindu-dev/cartify/internal/config"
	"github.com/tharindu-dev/cartify/internal/db"
	"github.com/tharindu-dev/cartify/internal/discovery"
	"github.com/tharindu-dev/cartify/internal/handlers"
	"github.com/tharindu-dev/cartify/internal/logging"
	"github.com/tharindu-dev/cartify/internal/payment"
	"github.com/tharindu-dev/cartify/internal/service"
)

const serviceName = "order-service"

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

	carts := db.NewCartRepository(database)
	orders := db.NewOrderRepository(database)

	gateway := payment.NewStripeGateway(cfg.Stripe.APIKey, cfg.Stripe.SuccessURL, cfg.Stripe.CancelURL, log)
	payments := service.NewPaymentService(orders, gateway, log)
	reserver := client.NewInventoryClient(cfg.InventoryServiceURL, log)

	cartSvc := service.NewCartService(carts, log)
	checkoutSvc := service.NewCheckoutService(carts, orders, reserver, payments, log)
	orderSvc := service.NewOrderService(orders)

	router := gin.Default()
	handlers.RegisterHealth(router, serviceName)
	handlers.NewCartHandler(cartSvc).RegisterRoutes(router)
	handlers.NewCheckoutHandler(checkoutSvc).RegisterRoutes(router)
	handlers.NewOrderHandler(orderSvc).RegisterRoutes(router)
	handlers.NewWebhookHandler(payments, cfg.Stripe.WebhookSecret, log).RegisterRoutes(router)

	consul, err := discovery.NewConsulClient(cfg.Consul.Host, cfg.Consul.Port, log)
	if err != nil {
		log.Fatalw("failed to connect to Consul", "error", err)
	}
	serviceID, err := consul.Register(discovery.ServiceConfig{
		Name: serviceName,
		Port: cfg.OrderPort,
		Tags: []string{"orders", "api"},
	})
	if err != nil {
		log.Fatalw("failed to register service", "error", err)
	}

	go func() {
		if err := router.Run(fmt.Sprintf(":%d", cfg.OrderPort)); err != nil {
			log.Fatalw("server stopped", "error", err)
		}
	}()
	log.Infow("service started", "port", cfg.OrderPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	if err := consul.Deregister(serviceID); err != nil {
		log.Errorw("failed to deregister service", "error", err)
	}
	log.Info("service stopped")
}
