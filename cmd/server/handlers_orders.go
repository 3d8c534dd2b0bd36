package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rpatel-dev/ecom-backoffice/internal/order"
	"github.com/rpatel-dev/ecom-backoffice/internal/stats"
)

// placeOrderStatus maps placement errors to HTTP codes: validation and
// business-rule failures are the caller's fault (400), anything else is
// a store failure (500).
func placeOrderStatus(err error) int {
	switch {
	case errors.Is(err, order.ErrInvalidInput),
		errors.Is(err, order.ErrProductUnavailable),
		errors.Is(err, order.ErrInsufficientStock):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func listOrdersHandler(repo order.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := repo.List(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if out == nil {
			out = []order.Order{}
		}
		c.JSON(http.StatusOK, out)
	}
}

func getOrderHandler(repo order.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c)
		if !ok {
			return
		}
		d, err := repo.GetByID(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, order.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if d.Items == nil {
			d.Items = []order.Item{}
		}
		c.JSON(http.StatusOK, d)
	}
}

// placeOrderHandler godoc
// @Summary Place a multi-item order
// @Accept json
// @Produce json
// @Param order body order.PlaceOrderRequest true "order"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /orders/multi [post]
func placeOrderHandler(svc *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req order.PlaceOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
			return
		}
		orderID, err := svc.Place(c.Request.Context(), req.CustomerID, req.Items)
		if err != nil {
			c.JSON(placeOrderStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"message": "Order placed successfully",
			"orderId": orderID,
		})
	}
}

// placeSingleOrderHandler is the one-line shortcut kept from the
// original API; it shares the full placement pipeline.
func placeSingleOrderHandler(svc *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req order.PlaceSingleRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
			return
		}
		orderID, err := svc.PlaceSingle(c.Request.Context(), req.CustomerID, req.ProductID, req.Quantity)
		if err != nil {
			c.JSON(placeOrderStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"message": "Order placed successfully",
			"orderId": orderID,
		})
	}
}

// updateOrderStatusHandler godoc
// @Summary Update an order's status
// @Accept json
// @Produce json
// @Param id path int true "order id"
// @Param status body order.UpdateStatusRequest true "status"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /orders/{id}/status [patch]
func updateOrderStatusHandler(svc *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c)
		if !ok {
			return
		}
		var req order.UpdateStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
			return
		}
		if err := svc.UpdateStatus(c.Request.Context(), id, req.Status); err != nil {
			switch {
			case errors.Is(err, order.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			case errors.Is(err, order.ErrInvalidInput):
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			}
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order status updated successfully"})
	}
}

func dashboardStatsHandler(repo stats.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		d, err := repo.Dashboard(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, d)
	}
}
