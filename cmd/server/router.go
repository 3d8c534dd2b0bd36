package main

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/rpatel-dev/ecom-backoffice/docs"
	"github.com/rpatel-dev/ecom-backoffice/internal/customer"
	"github.com/rpatel-dev/ecom-backoffice/internal/httpx"
	"github.com/rpatel-dev/ecom-backoffice/internal/logging"
	"github.com/rpatel-dev/ecom-backoffice/internal/order"
	"github.com/rpatel-dev/ecom-backoffice/internal/product"
	"github.com/rpatel-dev/ecom-backoffice/internal/stats"
)

type serverDeps struct {
	products  product.Repository
	customers customer.Repository
	orders    *order.Service
	orderRepo order.Repository
	stats     stats.Repository
}

func newRouter(d serverDeps, frontendDir string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), httpx.RequestID(), httpx.Logger(logging.New("http")), httpx.Metrics())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	{
		api.GET("/products", listProductsHandler(d.products))
		api.GET("/products/:id", getProductHandler(d.products))
		api.GET("/products/category/:category", listByCategoryHandler(d.products))
		api.GET("/categories", listCategoriesHandler(d.products))
		api.POST("/products", createProductHandler(d.products))
		api.PUT("/products/:id", updateProductHandler(d.products))
		api.DELETE("/products/:id", deleteProductHandler(d.products))

		api.GET("/customers", listCustomersHandler(d.customers))
		api.GET("/customers/:id", getCustomerHandler(d.customers))
		api.POST("/customers", createCustomerHandler(d.customers))
		api.GET("/customers/:id/orders", customerOrdersHandler(d.customers))
		api.GET("/customers/:id/stats", customerStatsHandler(d.customers))

		api.GET("/orders", listOrdersHandler(d.orderRepo))
		api.GET("/orders/:id", getOrderHandler(d.orderRepo))
		api.POST("/orders", placeSingleOrderHandler(d.orders))
		api.POST("/orders/multi", placeOrderHandler(d.orders))
		api.PATCH("/orders/:id/status", updateOrderStatusHandler(d.orders))

		api.GET("/stats", dashboardStatsHandler(d.stats))
	}

	if frontendDir != "" {
		r.Static("/app", frontendDir)
		r.GET("/", func(c *gin.Context) {
			c.File(filepath.Join(frontendDir, "index.html"))
		})
	}

	return r
}
