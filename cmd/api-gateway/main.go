package main

import (
	"fmt"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/tharindu-dev/cartify/internal/config"
	"github.com/tharindu-dev/cartify/internal/discovery"
	"github.com/tharindu-dev/cartify/internal/gateway"
	"github.com/tharindu-dev/cartify/internal/logging"
)

func main() {
	cfg := config.Load()

	log, err := logging.NewLogger("api-gateway")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	consul, err := discovery.NewConsulClient(cfg.Consul.Host, cfg.Consul.Port, log)
	if err != nil {
		log.Fatalw("failed to connect to Consul", "error", err)
	}

	routes := []gateway.Route{
		{Prefix: "/api/v1/user", Service: "auth-service"},
		{Prefix: "/api/v1/products", Service: "product-service"},
		{Prefix: "/api/v1/categories", Service: "product-service"},
		{Prefix: "/api/v1/inventory", Service: "inventory-service"},
		{Prefix: "/api/v1/cart", Service: "order-service"},
		{Prefix: "/api/v1/order", Service: "order-service"},
		{Prefix: "/api/v1/payment", Service: "order-service"},
	}

	gw := gateway.New(consul, routes, log)
	gw.Start(10 * time.Second)

	router := gin.Default()
	router.Use(gateway.RequestID())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization", "X-Request-ID", "Stripe-Signature")
	router.Use(cors.New(corsConfig))

	router.GET("/health", gw.AggregateHealth())
	for _, route := range routes {
		router.Any(route.Prefix+"/*path", gw.Handler(route.Service))
		router.Any(route.Prefix, gw.Handler(route.Service))
	}

	log.Infow("gateway started", "port", cfg.GatewayPort)
	if err := router.Run(fmt.Sprintf(":%d", cfg.GatewayPort)); err != nil {
		log.Fatalw("gateway stopped", "error", err)
	}
}
