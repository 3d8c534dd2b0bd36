package order

import "time"

// Lifecycle statuses an order can move through.
const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusShipped    = "shipped"
	StatusDelivered  = "delivered"
	StatusCancelled  = "cancelled"
)

func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

type Order struct {
	ID           int64     `json:"order_id"`
	CustomerID   int64     `json:"customer_id"`
	CustomerName string    `json:"customer_name,omitempty"`
	OrderDate    time.Time `json:"order_date"`
	// NUMERIC -> string
	TotalAmount string `json:"total_amount"`
	Status      string `json:"status"`
}

type Item struct {
	ID          int64  `json:"item_id"`
	OrderID     int64  `json:"order_id"`
	ProductID   int64  `json:"product_id"`
	ProductName string `json:"product_name,omitempty"`
	Price       string `json:"price,omitempty"`
	Quantity    int    `json:"quantity"`
	Subtotal    string `json:"subtotal"`
}

// Detail is the full order view: header joined with the customer
// plus its line items.
type Detail struct {
	Order
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
	Items   []Item `json:"items"`
}

// Line is one requested (product, quantity) pair of a placement.
type Line struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}
