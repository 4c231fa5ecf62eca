package repository

import (
	"context"

	"github.com/gestionpyme/ventas-console/internal/domain/entity"
)

// CustomerRepository defines the remote customer operations the console consumes
type CustomerRepository interface {
	// Search returns the active customers matching a free-text query.
	Search(ctx context.Context, query string) ([]entity.Customer, error)
}
