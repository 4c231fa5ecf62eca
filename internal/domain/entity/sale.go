package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SaleLine is one product entry within a draft. It carries the product snapshot
// that was current when the line was added or last merged; stock revalidation on
// increments reads from that snapshot.
type SaleLine struct {
	Product  Product
	Quantity int
	Subtotal decimal.Decimal
}

// SaleDraft is the in-progress, unsaved sale being assembled. Total is always a
// pure function of Lines and is never mutated independently.
type SaleDraft struct {
	CustomerID uuid.UUID
	Lines      []SaleLine
	Total      decimal.Decimal
}

// HasCustomer reports whether a customer has been resolved for the draft
func (d SaleDraft) HasCustomer() bool {
	return d.CustomerID != uuid.Nil
}

// LineFor returns the index of the line holding productID, or -1
func (d SaleDraft) LineFor(productID uuid.UUID) int {
	for i, line := range d.Lines {
		if line.Product.ID == productID {
			return i
		}
	}
	return -1
}

// SaleDetailInput is one line of the create-sale payload. Unit price is
// deliberately absent: price authority belongs to the backend at creation time.
type SaleDetailInput struct {
	ProductID uuid.UUID `json:"producto_id"`
	Quantity  int       `json:"cantidad"`
}

// SaleDetail is one recorded line of a stored sale
type SaleDetail struct {
	ProductID   uuid.UUID       `json:"producto_id"`
	ProductName string          `json:"producto"`
	Quantity    int             `json:"cantidad"`
	UnitPrice   decimal.Decimal `json:"precio"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// Sale is a sale record as stored by the backend
type Sale struct {
	ID       string          `json:"id"`
	Customer *Customer       `json:"cliente,omitempty"`
	Total    decimal.Decimal `json:"total"`
	Date     string          `json:"fecha"`
	Details  []SaleDetail    `json:"detalles,omitempty"`
}

// User is the operator account returned at login
type User struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"nombre"`
	Email string    `json:"email"`
}

// Session is an authenticated operator session
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
