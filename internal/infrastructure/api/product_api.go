package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/gestionpyme/ventas-console/internal/domain/entity"
)

// ProductAPI implements repository.ProductRepository over the REST API
type ProductAPI struct {
	client *Client
}

// NewProductAPI creates a new product API repository
func NewProductAPI(client *Client) *ProductAPI {
	return &ProductAPI{client: client}
}

// Search returns the active products matching query
func (r *ProductAPI) Search(ctx context.Context, query string) ([]entity.Product, error) {
	params := url.Values{}
	params.Set("search", query)

	var env listEnvelope[entity.Product]
	if err := r.client.do(ctx, http.MethodGet, "/productos", params, nil, &env); err != nil {
		return nil, err
	}

	active := make([]entity.Product, 0, len(env.Data))
	for _, product := range env.Data {
		if product.IsActive() {
			active = append(active, product)
		}
	}
	return active, nil
}
