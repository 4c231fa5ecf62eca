package handler

import (
	"github.com/gestionpyme/ventas-console/internal/infrastructure/memstore"
	"github.com/gestionpyme/ventas-console/internal/presentation/http/dto/request"
	"github.com/gestionpyme/ventas-console/internal/presentation/http/dto/response"
	"github.com/gestionpyme/ventas-console/pkg/pagination"
	"github.com/gin-gonic/gin"
)

// CustomerHandler handles customer endpoints
type CustomerHandler struct {
	store *memstore.Store
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(store *memstore.Store) *CustomerHandler {
	return &CustomerHandler{store: store}
}

// List returns a page of customers matching the search term
func (h *CustomerHandler) List(c *gin.Context) {
	var req request.SearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := pagination.Params{Page: req.Page, PerPage: req.PerPage}
	params.Normalize()

	customers, lastPage := h.store.SearchCustomers(req.Search, params)
	response.List(c, customers, params.Page, lastPage)
}
