package repository

import (
	"context"

	"github.com/gestionpyme/ventas-console/internal/domain/entity"
	"github.com/google/uuid"
)

// SaleRepository defines the remote sale operations the console consumes
type SaleRepository interface {
	// Create registers a new sale for the customer with the given lines. It is
	// issued exactly once per submission; duplicate sales are worse than a
	// failed one, so callers must not retry automatically.
	Create(ctx context.Context, customerID uuid.UUID, details []entity.SaleDetailInput) (*entity.Sale, error)
	List(ctx context.Context) ([]entity.Sale, error)
	Get(ctx context.Context, id string) (*entity.Sale, error)
}
