package handler

import (
	"github.com/gestionpyme/ventas-console/internal/infrastructure/memstore"
	"github.com/gestionpyme/ventas-console/internal/presentation/http/dto/request"
	"github.com/gestionpyme/ventas-console/internal/presentation/http/dto/response"
	"github.com/gestionpyme/ventas-console/pkg/pagination"
	"github.com/gin-gonic/gin"
)

// ProductHandler handles product endpoints
type ProductHandler struct {
	store *memstore.Store
}

// NewProductHandler creates a new product handler
func NewProductHandler(store *memstore.Store) *ProductHandler {
	return &ProductHandler{store: store}
}

// List returns a page of products matching the search term
func (h *ProductHandler) List(c *gin.Context) {
	var req request.SearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := pagination.Params{Page: req.Page, PerPage: req.PerPage}
	params.Normalize()

	products, lastPage := h.store.SearchProducts(req.Search, params)
	response.List(c, products, params.Page, lastPage)
}
