package product

import "time"

type Product struct {
	ID       int64  `json:"product_id"`
	Name     string `json:"product_name"`
	Category string `json:"category"`
	// We store price as a string to avoid rounding errors (NUMERIC in Postgres)
	Price       string    `json:"price"`
	Stock       int       `json:"stock"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateProductRequest payload of creation.
// swagger:model CreateProductRequest
type CreateProductRequest struct {
	Name        string `json:"product_name" example:"Mechanical Keyboard"`
	Category    string `json:"category"     example:"Electronics"`
	Price       string `json:"price"        example:"199.90"`
	Stock       int    `json:"stock"        example:"10"`
	Description string `json:"description"  example:"RGB 60%"`
}

// UpdateProductRequest payload of partial update. Omitted fields keep
// their stored values; stock is a pointer so an absent field is
// distinguishable from an explicit zero.
// swagger:model UpdateProductRequest
type UpdateProductRequest struct {
	Name        string `json:"product_name"`
	Category    string `json:"category"`
	Price       string `json:"price"`
	Stock       *int   `json:"stock"`
	Description string `json:"description"`
}
