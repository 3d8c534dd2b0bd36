package main

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rpatel-dev/ecom-backoffice/internal/product"
)

func paramID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

// listProductsHandler godoc
// @Summary List products in stock
// @Produce json
// @Success 200 {array} product.Product
// @Router /products [get]
func listProductsHandler(repo product.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := repo.ListInStock(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if out == nil {
			out = []product.Product{}
		}
		c.JSON(http.StatusOK, out)
	}
}

// getProductHandler godoc
// @Summary Get a product by id
// @Produce json
// @Param id path int true "product id"
// @Success 200 {object} product.Product
// @Failure 404 {object} map[string]string
// @Router /products/{id} [get]
func getProductHandler(repo product.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c)
		if !ok {
			return
		}
		p, err := repo.GetByID(c.Request.Context(), id)
		if err != nil {
			if err == product.ErrNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

func listByCategoryHandler(repo product.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := repo.ListByCategory(c.Request.Context(), c.Param("category"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if out == nil {
			out = []product.Product{}
		}
		c.JSON(http.StatusOK, out)
	}
}

func listCategoriesHandler(repo product.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := repo.Categories(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if out == nil {
			out = []string{}
		}
		c.JSON(http.StatusOK, out)
	}
}

func createProductHandler(repo product.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req product.CreateProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
			return
		}
		if req.Name == "" || req.Price == "" || req.Stock < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "product_name, price and a non-negative stock are required"})
			return
		}
		p := &product.Product{
			Name:        req.Name,
			Category:    req.Category,
			Price:       req.Price,
			Stock:       req.Stock,
			Description: req.Description,
		}
		if err := repo.Create(c.Request.Context(), p); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, p)
	}
}

func updateProductHandler(repo product.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c)
		if !ok {
			return
		}
		var req product.UpdateProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
			return
		}
		if req.Stock != nil && *req.Stock < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "stock must be non-negative"})
			return
		}
		p := &product.Product{
			ID:          id,
			Name:        req.Name,
			Category:    req.Category,
			Price:       req.Price,
			Description: req.Description,
		}
		if err := repo.Update(c.Request.Context(), p, req.Stock); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		out, err := repo.GetByID(c.Request.Context(), id)
		if err != nil {
			if err == product.ErrNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

func deleteProductHandler(repo product.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c)
		if !ok {
			return
		}
		ok, err := repo.Delete(c.Request.Context(), id)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
	}
}
