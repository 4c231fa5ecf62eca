package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/gestionpyme/ventas-console/internal/domain/entity"
)

// CustomerAPI implements repository.CustomerRepository over the REST API
type CustomerAPI struct {
	client *Client
}

// NewCustomerAPI creates a new customer API repository
func NewCustomerAPI(client *Client) *CustomerAPI {
	return &CustomerAPI{client: client}
}

// Search returns the active customers matching query
func (r *CustomerAPI) Search(ctx context.Context, query string) ([]entity.Customer, error) {
	params := url.Values{}
	params.Set("search", query)

	var env listEnvelope[entity.Customer]
	if err := r.client.do(ctx, http.MethodGet, "/clientes", params, nil, &env); err != nil {
		return nil, err
	}

	// Only active customers are selectable.
	active := make([]entity.Customer, 0, len(env.Data))
	for _, customer := range env.Data {
		if customer.IsActive() {
			active = append(active, customer)
		}
	}
	return active, nil
}
