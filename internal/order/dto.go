package order

// PlaceOrderRequest payload for a multi-item order.
// swagger:model PlaceOrderRequest
type PlaceOrderRequest struct {
	CustomerID int64  `json:"customer_id" example:"7"`
	Items      []Line `json:"items"`
}

// PlaceSingleRequest payload for a one-line order.
// swagger:model PlaceSingleRequest
type PlaceSingleRequest struct {
	CustomerID int64 `json:"customer_id" example:"7"`
	ProductID  int64 `json:"product_id"  example:"3"`
	Quantity   int   `json:"quantity"    example:"2"`
}

// UpdateStatusRequest payload for a status transition.
// swagger:model UpdateStatusRequest
type UpdateStatusRequest struct {
	Status string `json:"status" example:"shipped"`
}
