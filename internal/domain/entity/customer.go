package entity

import (
	"fmt"

	"github.com/google/uuid"
)

// Status flag used by the backend: 1 = active, 0 = inactive.
const EstadoActivo = 1

// Customer represents a customer as returned by the remote API
type Customer struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"nombre"`
	Identification string    `json:"identificacion"`
	Email          *string   `json:"email,omitempty"`
	Phone          *string   `json:"telefono,omitempty"`
	Estado         int       `json:"estado"`
}

// IsActive reports whether the customer may be selected for a sale
func (c Customer) IsActive() bool {
	return c.Estado == EstadoActivo
}

// DisplayLabel returns the canonical string the operator confirms a selection
// against: "Name (Identification)".
func (c Customer) DisplayLabel() string {
	return fmt.Sprintf("%s (%s)", c.Name, c.Identification)
}
