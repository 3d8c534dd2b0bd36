package customer

import "time"

type Customer struct {
	ID        int64     `json:"customer_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// OrderSummary is one row of a customer's order history.
type OrderSummary struct {
	OrderID     int64     `json:"order_id"`
	OrderDate   time.Time `json:"order_date"`
	TotalAmount string    `json:"total_amount"`
	Status      string    `json:"status"`
}

// Stats aggregates a customer's lifetime activity.
type Stats struct {
	TotalOrders int    `json:"total_orders"`
	TotalSpent  string `json:"total_spent"`
}

// CreateCustomerRequest payload of creation.
// swagger:model CreateCustomerRequest
type CreateCustomerRequest struct {
	Name    string `json:"name"    example:"Asha Verma"`
	Email   string `json:"email"   example:"asha@example.com"`
	Phone   string `json:"phone"   example:"+91-98765-43210"`
	Address string `json:"address" example:"12 MG Road, Pune"`
}
