package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rpatel-dev/ecom-backoffice/internal/customer"
)

func listCustomersHandler(repo customer.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := repo.List(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if out == nil {
			out = []customer.Customer{}
		}
		c.JSON(http.StatusOK, out)
	}
}

func getCustomerHandler(repo customer.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c)
		if !ok {
			return
		}
		cust, err := repo.GetByID(c.Request.Context(), id)
		if err != nil {
			if err == customer.ErrNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, cust)
	}
}

// createCustomerHandler godoc
// @Summary Register a customer
// @Accept json
// @Produce json
// @Param customer body customer.CreateCustomerRequest true "customer"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /customers [post]
func createCustomerHandler(repo customer.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req customer.CreateCustomerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
			return
		}
		if req.Name == "" || req.Email == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name and email are required"})
			return
		}
		cust := &customer.Customer{
			Name:    req.Name,
			Email:   req.Email,
			Phone:   req.Phone,
			Address: req.Address,
		}
		if err := repo.Create(c.Request.Context(), cust); err != nil {
			if err == customer.ErrAlreadyExist {
				c.JSON(http.StatusConflict, gin.H{"error": "customer already exists (email)"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"message":    "Customer added successfully",
			"customerId": cust.ID,
		})
	}
}

func customerOrdersHandler(repo customer.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c)
		if !ok {
			return
		}
		out, err := repo.Orders(c.Request.Context(), id)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if out == nil {
			out = []customer.OrderSummary{}
		}
		c.JSON(http.StatusOK, out)
	}
}

func customerStatsHandler(repo customer.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c)
		if !ok {
			return
		}
		s, err := repo.Stats(c.Request.Context(), id)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, s)
	}
}
