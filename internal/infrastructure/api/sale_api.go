package api

import (
	"context"
	"net/http"

	"github.com/gestionpyme/ventas-console/internal/domain/entity"
	"github.com/google/uuid"
)

// SaleAPI implements repository.SaleRepository over the REST API
type SaleAPI struct {
	client *Client
}

// NewSaleAPI creates a new sale API repository
func NewSaleAPI(client *Client) *SaleAPI {
	return &SaleAPI{client: client}
}

// createSaleRequest is the create-sale wire payload. Unit prices are
// intentionally omitted: the backend prices the order at creation time.
type createSaleRequest struct {
	CustomerID uuid.UUID                `json:"customer_id"`
	Detalles   []entity.SaleDetailInput `json:"detalles"`
}

type saleEnvelope struct {
	Message string      `json:"message"`
	Data    entity.Sale `json:"data"`
}

// Create registers a new sale. Called exactly once per submission; never retried.
func (r *SaleAPI) Create(ctx context.Context, customerID uuid.UUID, details []entity.SaleDetailInput) (*entity.Sale, error) {
	payload := createSaleRequest{
		CustomerID: customerID,
		Detalles:   details,
	}

	var env saleEnvelope
	if err := r.client.do(ctx, http.MethodPost, "/ventas", nil, payload, &env); err != nil {
		return nil, err
	}
	return &env.Data, nil
}

// List returns the recorded sales
func (r *SaleAPI) List(ctx context.Context) ([]entity.Sale, error) {
	var env listEnvelope[entity.Sale]
	if err := r.client.do(ctx, http.MethodGet, "/ventas", nil, nil, &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

// Get returns one recorded sale with its detail lines
func (r *SaleAPI) Get(ctx context.Context, id string) (*entity.Sale, error) {
	var env saleEnvelope
	if err := r.client.do(ctx, http.MethodGet, "/ventas/"+id, nil, nil, &env); err != nil {
		return nil, err
	}
	return &env.Data, nil
}
