package service

import (
	"context"

	"github.com/gestionpyme/ventas-console/internal/domain/entity"
	"github.com/gestionpyme/ventas-console/internal/domain/repository"
	"github.com/gestionpyme/ventas-console/pkg/apperror"
)

// SaleService coordinates submitting a finished draft to the backend
type SaleService struct {
	saleRepo repository.SaleRepository
}

// NewSaleService creates a new sale service
func NewSaleService(saleRepo repository.SaleRepository) *SaleService {
	return &SaleService{saleRepo: saleRepo}
}

// Submit serializes the draft and issues the create-sale call exactly once.
// Preconditions are checked locally first: a draft without a customer or without
// lines fails with ErrIncompleteDraft before any network traffic. Failures come
// back typed (stock conflict vs transport) with the draft untouched, so the
// operator can adjust quantities and resubmit. On success the caller is
// expected to reset the draft.
func (s *SaleService) Submit(ctx context.Context, draft entity.SaleDraft) (string, error) {
	if !draft.HasCustomer() || len(draft.Lines) == 0 {
		return "", apperror.ErrIncompleteDraft
	}

	details := make([]entity.SaleDetailInput, 0, len(draft.Lines))
	for _, line := range draft.Lines {
		details = append(details, entity.SaleDetailInput{
			ProductID: line.Product.ID,
			Quantity:  line.Quantity,
		})
	}

	sale, err := s.saleRepo.Create(ctx, draft.CustomerID, details)
	if err != nil {
		return "", err
	}
	return sale.ID, nil
}

// List returns the recorded sales
func (s *SaleService) List(ctx context.Context) ([]entity.Sale, error) {
	return s.saleRepo.List(ctx)
}

// Get returns one recorded sale with its detail lines
func (s *SaleService) Get(ctx context.Context, id string) (*entity.Sale, error) {
	return s.saleRepo.Get(ctx, id)
}
