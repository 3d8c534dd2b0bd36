// Package client is a thin HTTP client for the back-office API, used by
// the shopctl cart client.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rpatel-dev/ecom-backoffice/internal/order"
	"github.com/rpatel-dev/ecom-backoffice/internal/product"
)

type Client struct {
	HTTP    *http.Client
	BaseURL string
}

func New(baseURL string) *Client {
	return &Client{
		HTTP:    &http.Client{Timeout: 5 * time.Second},
		BaseURL: baseURL,
	}
}

type apiError struct {
	Error string `json:"error"`
}

func (c *Client) Products(ctx context.Context) ([]product.Product, error) {
	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/api/products", nil)
	res, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, decodeError(res)
	}
	var out []product.Product
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Product(ctx context.Context, id int64) (*product.Product, error) {
	req, _ := http.NewRequestWithContext(ctx, http.MethodGet,
		fmt.Sprintf("%s/api/products/%d", c.BaseURL, id), nil)
	res, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, decodeError(res)
	}
	var p product.Product
	if err := json.NewDecoder(res.Body).Decode(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

type placeOrderResponse struct {
	Message string `json:"message"`
	OrderID int64  `json:"orderId"`
}

// PlaceOrder submits a multi-item order and returns the new order id.
func (c *Client) PlaceOrder(ctx context.Context, customerID int64, lines []order.Line) (int64, error) {
	body, err := json.Marshal(order.PlaceOrderRequest{CustomerID: customerID, Items: lines})
	if err != nil {
		return 0, err
	}
	req, _ := http.NewRequestWithContext(ctx, http.MethodPost,
		c.BaseURL+"/api/orders/multi", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	res, err := c.HTTP.Do(req)
	if err != nil {
		return 0, err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusCreated {
		return 0, decodeError(res)
	}
	var out placeOrderResponse
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return 0, err
	}
	return out.OrderID, nil
}

func decodeError(res *http.Response) error {
	var e apiError
	if err := json.NewDecoder(res.Body).Decode(&e); err == nil && e.Error != "" {
		return fmt.Errorf("%s", e.Error)
	}
	return fmt.Errorf("unexpected status: %s", res.Status)
}
