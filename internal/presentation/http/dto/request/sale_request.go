package request

import "github.com/google/uuid"

// SaleDetailRequest is one line of a sale creation request. Prices are never
// accepted from the client; the server prices the sale at creation time.
type SaleDetailRequest struct {
	ProductID uuid.UUID `json:"producto_id" binding:"required"`
	Quantity  int       `json:"cantidad" binding:"required,min=1"`
}

// CreateSaleRequest represents a sale creation request
type CreateSaleRequest struct {
	CustomerID uuid.UUID           `json:"customer_id" binding:"required"`
	Detalles   []SaleDetailRequest `json:"detalles" binding:"required,min=1,dive"`
}

// SearchRequest represents list filter parameters
type SearchRequest struct {
	Search  string `form:"search"`
	Page    int    `form:"page"`
	PerPage int    `form:"per_page"`
}
