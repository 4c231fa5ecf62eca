package service

import (
	"github.com/gestionpyme/ventas-console/internal/domain/entity"
	"github.com/gestionpyme/ventas-console/pkg/apperror"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CanAdmit reports whether requested more units of product fit under its stock
// ceiling, given the quantity the draft already holds for it. Pure; callers must
// reject non-positive quantities before consulting stock.
func CanAdmit(product entity.Product, requested, committed int) bool {
	return requested+committed <= product.Stock
}

// DraftService owns the single in-progress sale draft. The draft belongs to one
// composing session: all mutations are synchronous and run to completion, so no
// locking is needed. Every mutation either fully applies and recomputes the
// total, or leaves the draft untouched.
type DraftService struct {
	draft entity.SaleDraft
}

// NewDraftService creates a draft service with an empty draft
func NewDraftService() *DraftService {
	return &DraftService{
		draft: entity.SaleDraft{Total: decimal.Zero},
	}
}

// Draft returns a copy of the current draft state
func (s *DraftService) Draft() entity.SaleDraft {
	draft := s.draft
	draft.Lines = make([]entity.SaleLine, len(s.draft.Lines))
	copy(draft.Lines, s.draft.Lines)
	return draft
}

// SetCustomer records the resolved customer for the draft
func (s *DraftService) SetCustomer(id uuid.UUID) {
	s.draft.CustomerID = id
}

// ClearCustomer unsets the draft's customer
func (s *DraftService) ClearCustomer() {
	s.draft.CustomerID = uuid.Nil
}

// AddLine admits quantity units of product into the draft. Re-adding a product
// merges into its existing line instead of creating a duplicate, and refreshes
// the line's product snapshot. Stock is revalidated on every call; on rejection
// the draft is unchanged and the returned StockError carries the available
// amount for the operator message.
func (s *DraftService) AddLine(product entity.Product, quantity int) error {
	if quantity < 1 {
		return apperror.ErrInvalidQuantity
	}

	idx := s.draft.LineFor(product.ID)
	committed := 0
	if idx >= 0 {
		committed = s.draft.Lines[idx].Quantity
	}

	if !CanAdmit(product, quantity, committed) {
		return &apperror.StockError{ProductName: product.Name, Available: product.Stock}
	}

	newQty := committed + quantity
	line := entity.SaleLine{
		Product:  product,
		Quantity: newQty,
		Subtotal: product.Price.Mul(decimal.NewFromInt(int64(newQty))),
	}
	if idx >= 0 {
		s.draft.Lines[idx] = line
	} else {
		s.draft.Lines = append(s.draft.Lines, line)
	}

	s.recomputeTotal()
	return nil
}

// IncrementLine raises an existing line's quantity by one, revalidating against
// the stock snapshot captured when the line was added or last merged.
func (s *DraftService) IncrementLine(productID uuid.UUID) error {
	idx := s.draft.LineFor(productID)
	if idx < 0 {
		return apperror.NewNotFoundError("Sale line")
	}

	line := s.draft.Lines[idx]
	if !CanAdmit(line.Product, 1, line.Quantity) {
		return &apperror.StockError{ProductName: line.Product.Name, Available: line.Product.Stock}
	}

	line.Quantity++
	line.Subtotal = line.Product.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))
	s.draft.Lines[idx] = line

	s.recomputeTotal()
	return nil
}

// DecrementLine lowers an existing line's quantity by one. A line at quantity 1
// is removed entirely rather than left at zero.
func (s *DraftService) DecrementLine(productID uuid.UUID) error {
	idx := s.draft.LineFor(productID)
	if idx < 0 {
		return apperror.NewNotFoundError("Sale line")
	}

	line := s.draft.Lines[idx]
	if line.Quantity == 1 {
		s.draft.Lines = append(s.draft.Lines[:idx], s.draft.Lines[idx+1:]...)
	} else {
		line.Quantity--
		line.Subtotal = line.Product.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))
		s.draft.Lines[idx] = line
	}

	s.recomputeTotal()
	return nil
}

// RemoveLine deletes the line for productID if present
func (s *DraftService) RemoveLine(productID uuid.UUID) {
	idx := s.draft.LineFor(productID)
	if idx < 0 {
		return
	}
	s.draft.Lines = append(s.draft.Lines[:idx], s.draft.Lines[idx+1:]...)
	s.recomputeTotal()
}

// Reset discards the draft: customer unset, no lines, total zero
func (s *DraftService) Reset() {
	s.draft = entity.SaleDraft{Total: decimal.Zero}
}

func (s *DraftService) recomputeTotal() {
	total := decimal.Zero
	for _, line := range s.draft.Lines {
		total = total.Add(line.Subtotal)
	}
	s.draft.Total = total
}
