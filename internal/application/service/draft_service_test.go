package service

import (
	"errors"
	"testing"

	"github.com/gestionpyme/ventas-console/internal/domain/entity"
	"github.com/gestionpyme/ventas-console/pkg/apperror"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func testProduct(code, name string, price int64, stock int) entity.Product {
	return entity.Product{
		ID:     uuid.New(),
		Code:   code,
		Name:   name,
		Price:  decimal.NewFromInt(price),
		Stock:  stock,
		Estado: entity.EstadoActivo,
	}
}

func assertTotalMatchesLines(t *testing.T, svc *DraftService) {
	t.Helper()
	draft := svc.Draft()
	sum := decimal.Zero
	for _, line := range draft.Lines {
		sum = sum.Add(line.Subtotal)
	}
	if !draft.Total.Equal(sum) {
		t.Fatalf("total %s does not match sum of subtotals %s", draft.Total, sum)
	}
}

func TestAddSameProductMergesIntoOneLine(t *testing.T) {
	svc := NewDraftService()
	cafe := testProduct("CAF-500", "Café Molido 500g", 18500, 10)

	if err := svc.AddLine(cafe, 2); err != nil {
		t.Fatalf("first add failed: %v", err)
	}
	if err := svc.AddLine(cafe, 3); err != nil {
		t.Fatalf("second add failed: %v", err)
	}

	draft := svc.Draft()
	if len(draft.Lines) != 1 {
		t.Fatalf("expected one merged line, got %d", len(draft.Lines))
	}
	if draft.Lines[0].Quantity != 5 {
		t.Fatalf("expected merged quantity 5, got %d", draft.Lines[0].Quantity)
	}
	wantSubtotal := decimal.NewFromInt(18500 * 5)
	if !draft.Lines[0].Subtotal.Equal(wantSubtotal) {
		t.Fatalf("expected subtotal %s, got %s", wantSubtotal, draft.Lines[0].Subtotal)
	}
	assertTotalMatchesLines(t, svc)
}

func TestStockCeilingScenario(t *testing.T) {
	svc := NewDraftService()
	cafe := testProduct("CAF-500", "Café Molido 500g", 18500, 5)

	if err := svc.AddLine(cafe, 3); err != nil {
		t.Fatalf("add within stock failed: %v", err)
	}

	// Re-adding 3 would commit 6 of 5: rejected, draft unchanged.
	err := svc.AddLine(cafe, 3)
	if !apperror.IsStockRejection(err) {
		t.Fatalf("expected stock rejection, got %v", err)
	}
	if got := svc.Draft().Lines[0].Quantity; got != 3 {
		t.Fatalf("rejected add mutated quantity to %d", got)
	}
	assertTotalMatchesLines(t, svc)

	for i := 0; i < 2; i++ {
		if err := svc.IncrementLine(cafe.ID); err != nil {
			t.Fatalf("increment %d failed: %v", i+1, err)
		}
	}
	if got := svc.Draft().Lines[0].Quantity; got != 5 {
		t.Fatalf("expected quantity 5 at ceiling, got %d", got)
	}

	err = svc.IncrementLine(cafe.ID)
	if !apperror.IsStockRejection(err) {
		t.Fatalf("expected stock rejection at ceiling, got %v", err)
	}
	if got := svc.Draft().Lines[0].Quantity; got != 5 {
		t.Fatalf("rejected increment mutated quantity to %d", got)
	}
	assertTotalMatchesLines(t, svc)
}

func TestStockRejectionCarriesAvailableAmount(t *testing.T) {
	svc := NewDraftService()
	panela := testProduct("PAN-500", "Panela en Bloque 500g", 2700, 2)

	err := svc.AddLine(panela, 3)
	var stockErr *apperror.StockError
	if !errors.As(err, &stockErr) {
		t.Fatalf("expected StockError, got %v", err)
	}
	if stockErr.ProductName != "Panela en Bloque 500g" || stockErr.Available != 2 {
		t.Fatalf("unexpected rejection detail: %+v", stockErr)
	}
}

func TestAddLineRejectsNonPositiveQuantity(t *testing.T) {
	svc := NewDraftService()
	arroz := testProduct("ARR-1K", "Arroz Blanco 1kg", 4200, 100)

	for _, quantity := range []int{0, -1} {
		if err := svc.AddLine(arroz, quantity); err != apperror.ErrInvalidQuantity {
			t.Fatalf("quantity %d: expected ErrInvalidQuantity, got %v", quantity, err)
		}
	}
	if len(svc.Draft().Lines) != 0 {
		t.Fatalf("invalid quantities must not create lines")
	}
}

func TestDecrementAtOneRemovesLine(t *testing.T) {
	svc := NewDraftService()
	arroz := testProduct("ARR-1K", "Arroz Blanco 1kg", 4200, 100)
	leche := testProduct("LEC-1L", "Leche Entera 1L", 3500, 60)

	if err := svc.AddLine(arroz, 1); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := svc.AddLine(leche, 2); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	before := svc.Draft().Total
	if err := svc.DecrementLine(arroz.ID); err != nil {
		t.Fatalf("decrement failed: %v", err)
	}

	draft := svc.Draft()
	if len(draft.Lines) != 1 {
		t.Fatalf("expected line removal at quantity 1, got %d lines", len(draft.Lines))
	}
	if draft.LineFor(arroz.ID) != -1 {
		t.Fatalf("removed line still present")
	}
	wantTotal := before.Sub(decimal.NewFromInt(4200))
	if !draft.Total.Equal(wantTotal) {
		t.Fatalf("expected total %s after removal, got %s", wantTotal, draft.Total)
	}
	assertTotalMatchesLines(t, svc)
}

func TestTotalHoldsAfterEveryMutation(t *testing.T) {
	svc := NewDraftService()
	cafe := testProduct("CAF-500", "Café Molido 500g", 18500, 10)
	arroz := testProduct("ARR-1K", "Arroz Blanco 1kg", 4200, 100)

	steps := []func() error{
		func() error { return svc.AddLine(cafe, 2) },
		func() error { return svc.AddLine(arroz, 4) },
		func() error { return svc.IncrementLine(cafe.ID) },
		func() error { return svc.DecrementLine(arroz.ID) },
		func() error { return svc.AddLine(arroz, 1) },
		func() error { svc.RemoveLine(cafe.ID); return nil },
	}
	for i, step := range steps {
		if err := step(); err != nil {
			t.Fatalf("step %d failed: %v", i, err)
		}
		assertTotalMatchesLines(t, svc)
	}
}

func TestIncrementUnknownLineFails(t *testing.T) {
	svc := NewDraftService()
	if err := svc.IncrementLine(uuid.New()); err == nil {
		t.Fatalf("expected error incrementing a missing line")
	}
	if err := svc.DecrementLine(uuid.New()); err == nil {
		t.Fatalf("expected error decrementing a missing line")
	}
}

func TestResetClearsDraft(t *testing.T) {
	svc := NewDraftService()
	cafe := testProduct("CAF-500", "Café Molido 500g", 18500, 10)

	svc.SetCustomer(uuid.New())
	if err := svc.AddLine(cafe, 2); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	svc.Reset()

	draft := svc.Draft()
	if draft.HasCustomer() {
		t.Fatalf("reset must unset the customer")
	}
	if len(draft.Lines) != 0 {
		t.Fatalf("reset must drop all lines")
	}
	if !draft.Total.IsZero() {
		t.Fatalf("reset must zero the total, got %s", draft.Total)
	}
}
