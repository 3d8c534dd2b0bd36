package main

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rpatel-dev/ecom-backoffice/internal/config"
	"github.com/rpatel-dev/ecom-backoffice/internal/customer"
	"github.com/rpatel-dev/ecom-backoffice/internal/logging"
	"github.com/rpatel-dev/ecom-backoffice/internal/order"
	"github.com/rpatel-dev/ecom-backoffice/internal/product"
	"github.com/rpatel-dev/ecom-backoffice/internal/stats"
)

// @title E-Commerce Back Office API
// @version 1.0
// @description REST API for products, customers and order placement.
// @BasePath /api
func main() {
	cfg := config.Load()
	logging.Init("server", cfg.LogFile)

	pool, err := pgxpool.New(context.Background(), cfg.PostgresDSN)
	if err != nil {
		log.Fatalf("postgres: %v", err)
	}
	defer pool.Close()

	orderRepo := order.NewPGRepo(pool)
	deps := serverDeps{
		products:  product.NewPGRepo(pool),
		customers: customer.NewPGRepo(pool),
		orders:    order.NewService(orderRepo),
		orderRepo: orderRepo,
		stats:     stats.NewPGRepo(pool),
	}

	r := newRouter(deps, cfg.FrontendDir)
	log.Printf("server listening on %s", cfg.HTTPAddr)
	log.Fatal(r.Run(cfg.HTTPAddr))
}
