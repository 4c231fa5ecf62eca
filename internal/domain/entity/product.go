package entity

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product represents a product as returned by the remote API. Stock is the
// ceiling for the quantity committable across a draft, as last observed.
type Product struct {
	ID     uuid.UUID       `json:"id"`
	Code   string          `json:"codigo"`
	Name   string          `json:"nombre"`
	Price  decimal.Decimal `json:"precio"`
	Stock  int             `json:"stock"`
	Estado int             `json:"estado"`
}

// IsActive reports whether the product may be added to a sale
func (p Product) IsActive() bool {
	return p.Estado == EstadoActivo
}

// DisplayLabel returns the canonical string the operator confirms a selection
// against: "Name (Code)".
func (p Product) DisplayLabel() string {
	return fmt.Sprintf("%s (%s)", p.Name, p.Code)
}
