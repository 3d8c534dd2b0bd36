package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	prod "github.com/rpatel-dev/ecom-backoffice/internal/product"
)

func getJSON(t *testing.T, r *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestListProducts_OnlyInStock(t *testing.T) {
	t.Parallel()

	repo := newStubProductRepo()
	repo.put(prod.Product{ID: 1, Name: "Keyboard", Category: "Electronics", Price: "199.90", Stock: 10})
	repo.put(prod.Product{ID: 2, Name: "Sold Out", Category: "Electronics", Price: "10.00", Stock: 0})

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/products", listProductsHandler(repo))

	w := getJSON(t, r, "/api/products")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
	var out []prod.Product
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out) != 1 || out[0].ID != 1 {
		t.Fatalf("want only product 1, got %+v", out)
	}
}

func TestGetProduct_RepeatedReadsIdentical(t *testing.T) {
	t.Parallel()

	repo := newStubProductRepo()
	repo.put(prod.Product{ID: 5, Name: "Mouse", Category: "Electronics", Price: "25.00", Stock: 3})

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/products/:id", getProductHandler(repo))

	first := getJSON(t, r, "/api/products/5")
	second := getJSON(t, r, "/api/products/5")
	if first.Code != http.StatusOK || second.Code != http.StatusOK {
		t.Fatalf("status=%d/%d", first.Code, second.Code)
	}
	if first.Body.String() != second.Body.String() {
		t.Fatalf("reads differ:\n%s\n%s", first.Body.String(), second.Body.String())
	}
}

func TestGetProduct_NotFound(t *testing.T) {
	t.Parallel()

	repo := newStubProductRepo()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/products/:id", getProductHandler(repo))

	w := getJSON(t, r, "/api/products/77")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
}

func TestListByCategory(t *testing.T) {
	t.Parallel()

	repo := newStubProductRepo()
	repo.put(prod.Product{ID: 1, Name: "Keyboard", Category: "Electronics", Price: "199.90", Stock: 10})
	repo.put(prod.Product{ID: 2, Name: "Mug", Category: "Kitchen", Price: "8.00", Stock: 4})

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/products/category/:category", listByCategoryHandler(repo))

	w := getJSON(t, r, "/api/products/category/Kitchen")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
	var out []prod.Product
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out) != 1 || out[0].Category != "Kitchen" {
		t.Fatalf("want the Kitchen product, got %+v", out)
	}
}

func TestUpdateProduct_PartialBodyKeepsStock(t *testing.T) {
	t.Parallel()

	repo := newStubProductRepo()
	repo.put(prod.Product{ID: 3, Name: "Lamp", Category: "Home", Price: "19.99", Stock: 7})

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.PUT("/api/products/:id", updateProductHandler(repo))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/products/3",
		bytes.NewBufferString(`{"product_name":"Desk Lamp"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}

	var p prod.Product
	if err := json.Unmarshal(w.Body.Bytes(), &p); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if p.Name != "Desk Lamp" {
		t.Fatalf("name not updated: %+v", p)
	}
	if p.Stock != 7 {
		t.Fatalf("stock clobbered by name-only update: want 7, got %d", p.Stock)
	}
	if p.Price != "19.99" {
		t.Fatalf("price clobbered by name-only update: want 19.99, got %s", p.Price)
	}

	// An explicit stock field still applies, including zero.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPut, "/api/products/3",
		bytes.NewBufferString(`{"stock":0}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	if err := json.Unmarshal(w.Body.Bytes(), &p); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if p.Stock != 0 {
		t.Fatalf("explicit stock update ignored: got %d", p.Stock)
	}
}

func TestCreateProduct_Validation(t *testing.T) {
	t.Parallel()

	repo := newStubProductRepo()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/products", createProductHandler(repo))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/products",
		bytes.NewBufferString(`{"product_name":"","price":"9.99","stock":1}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/products",
		bytes.NewBufferString(`{"product_name":"Lamp","category":"Home","price":"19.99","stock":7}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	var p prod.Product
	if err := json.Unmarshal(w.Body.Bytes(), &p); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if p.ID == 0 {
		t.Fatalf("created product has no id: %s", w.Body.String())
	}
}
