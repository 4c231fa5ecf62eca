package repository

import (
	"context"

	"github.com/gestionpyme/ventas-console/internal/domain/entity"
)

// ProductRepository defines the remote product operations the console consumes
type ProductRepository interface {
	// Search returns the active products matching a free-text query.
	Search(ctx context.Context, query string) ([]entity.Product, error)
}
