package invoice

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/ledgerline/ledgerline-backend/internal/domain"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestCalculateTotals_Empty(t *testing.T) {
	t.Parallel()

	totals := CalculateTotals(nil)

	if !totals.Subtotal.IsZero() || !totals.TaxAmount.IsZero() || !totals.VATAmount.IsZero() || !totals.Total.IsZero() {
		t.Errorf("expected all-zero totals, got %+v", totals)
	}
}

func TestCalculateTotals_SingleItem(t *testing.T) {
	t.Parallel()

	totals := CalculateTotals([]domain.InvoiceItem{
		{Quantity: dec("2"), UnitPrice: dec("50"), TaxRate: dec("10"), VATRate: dec("20")},
	})

	if !totals.Subtotal.Equal(dec("100")) {
		t.Errorf("subtotal: got %s, want 100", totals.Subtotal)
	}
	if !totals.TaxAmount.Equal(dec("10")) {
		t.Errorf("tax: got %s, want 10", totals.TaxAmount)
	}
	if !totals.VATAmount.Equal(dec("20")) {
		t.Errorf("vat: got %s, want 20", totals.VATAmount)
	}
	if !totals.Total.Equal(dec("130")) {
		t.Errorf("total: got %s, want 130", totals.Total)
	}
}

// Aggregates are rounded once after summing full-precision line values,
// so fractional cents accumulate before rounding instead of being lost
// per line.
func TestCalculateTotals_RoundsAggregatesNotLines(t *testing.T) {
	t.Parallel()

	// Each line is 1.005; rounding per line would give 3.03 (3 × 1.01),
	// rounding the sum gives 3.02 (3.015 rounded half away from zero).
	items := []domain.InvoiceItem{
		{Quantity: dec("1"), UnitPrice: dec("1.005")},
		{Quantity: dec("1"), UnitPrice: dec("1.005")},
		{Quantity: dec("1"), UnitPrice: dec("1.005")},
	}

	totals := CalculateTotals(items)

	if !totals.Subtotal.Equal(dec("3.02")) {
		t.Errorf("subtotal: got %s, want 3.02", totals.Subtotal)
	}
}

func TestCalculateTotals_OrderIndependent(t *testing.T) {
	t.Parallel()

	a := domain.InvoiceItem{Quantity: dec("3"), UnitPrice: dec("19.99"), TaxRate: dec("8.25")}
	b := domain.InvoiceItem{Quantity: dec("0.5"), UnitPrice: dec("7.77"), VATRate: dec("21")}
	c := domain.InvoiceItem{Quantity: dec("12"), UnitPrice: dec("0.333"), TaxRate: dec("5"), VATRate: dec("5")}

	forward := CalculateTotals([]domain.InvoiceItem{a, b, c})
	backward := CalculateTotals([]domain.InvoiceItem{c, b, a})

	if !forward.Total.Equal(backward.Total) {
		t.Errorf("totals differ by order: %s vs %s", forward.Total, backward.Total)
	}
	if !forward.Subtotal.Equal(backward.Subtotal) {
		t.Errorf("subtotals differ by order: %s vs %s", forward.Subtotal, backward.Subtotal)
	}
}

func TestCalculateTotals_HalfAwayFromZero(t *testing.T) {
	t.Parallel()

	totals := CalculateTotals([]domain.InvoiceItem{
		{Quantity: dec("1"), UnitPrice: dec("2.125")},
	})

	if !totals.Subtotal.Equal(dec("2.13")) {
		t.Errorf("subtotal: got %s, want 2.13", totals.Subtotal)
	}
}

func TestLineAmount(t *testing.T) {
	t.Parallel()

	got := LineAmount(dec("3"), dec("0.335"))
	if !got.Equal(dec("1.01")) {
		t.Errorf("line amount: got %s, want 1.01", got)
	}
}
