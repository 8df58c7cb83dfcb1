package main

import (
	"log"
	"net/http"

	"github.com/joho/godotenv"

	"github.com/ordertotal/order-total-service/pkg/config"
	"github.com/ordertotal/order-total-service/pkg/logger"
	"github.com/ordertotal/order-total-service/pkg/middleware"
	"github.com/ordertotal/order-total-service/pkg/order"
	orderApi "github.com/ordertotal/order-total-service/pkg/order/api"
	"github.com/ordertotal/order-total-service/pkg/taxrate"
)

func main() {
	// .env is optional, env vars win either way
	_ = godotenv.Load()
	cfg := config.Parse()

	zl := logger.Run(cfg.LogLevel)
	defer zl.Sync() //nolint:errcheck

	rates := taxrate.New(cfg.RateServiceURL, cfg.RateTimeout)
	orderService := order.NewService(rates)
	orderHandler := orderApi.NewOrderHandler(orderService)

	logMiddleware := middleware.NewLoggingMiddleware(zl)
	handler := orderApi.NewRouter(orderHandler,
		logMiddleware.SetupTracing,
		logMiddleware.SetupLogging,
		logMiddleware.AccessLog,
	)

	log.Printf("Serving at %s, rate service at %s\n", cfg.RunAddress, cfg.RateServiceURL)
	log.Fatalln(http.ListenAndServe(cfg.RunAddress, handler))
}
