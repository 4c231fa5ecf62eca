package handler

import (
	"github.com/gestionpyme/ventas-console/internal/domain/entity"
	"github.com/gestionpyme/ventas-console/internal/infrastructure/memstore"
	"github.com/gestionpyme/ventas-console/internal/presentation/http/dto/request"
	"github.com/gestionpyme/ventas-console/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// SaleHandler handles sale endpoints
type SaleHandler struct {
	store *memstore.Store
}

// NewSaleHandler creates a new sale handler
func NewSaleHandler(store *memstore.Store) *SaleHandler {
	return &SaleHandler{store: store}
}

// Create registers a new sale
func (h *SaleHandler) Create(c *gin.Context) {
	var req request.CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	details := make([]entity.SaleDetailInput, 0, len(req.Detalles))
	for _, detail := range req.Detalles {
		details = append(details, entity.SaleDetailInput{
			ProductID: detail.ProductID,
			Quantity:  detail.Quantity,
		})
	}

	sale, err := h.store.CreateSale(req.CustomerID, details)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Venta registrada exitosamente.", sale)
}

// List returns all recorded sales
func (h *SaleHandler) List(c *gin.Context) {
	sales := h.store.ListSales()
	response.List(c, sales, 1, 1)
}

// Get returns one sale with its detail lines
func (h *SaleHandler) Get(c *gin.Context) {
	sale, err := h.store.GetSale(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "", sale)
}
