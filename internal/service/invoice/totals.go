package invoice

import (
	"github.com/shopspring/decimal"

	"github.com/ledgerline/ledgerline-backend/internal/domain"
)

var hundred = decimal.NewFromInt(100)

// CalculateTotals derives the four invoice aggregates from its items.
// Per-item products are summed at full precision and only the four
// aggregates are rounded, to two decimals, half away from zero. Summing
// before rounding keeps the result independent of item order and stable
// across repeated calls.
func CalculateTotals(items []domain.InvoiceItem) domain.InvoiceTotals {
	subtotal := decimal.Zero
	tax := decimal.Zero
	vat := decimal.Zero

	for _, item := range items {
		line := item.Quantity.Mul(item.UnitPrice)
		subtotal = subtotal.Add(line)
		tax = tax.Add(line.Mul(item.TaxRate).Div(hundred))
		vat = vat.Add(line.Mul(item.VATRate).Div(hundred))
	}

	total := subtotal.Add(tax).Add(vat)

	return domain.InvoiceTotals{
		Subtotal:  subtotal.Round(2),
		TaxAmount: tax.Round(2),
		VATAmount: vat.Round(2),
		Total:     total.Round(2),
	}
}

// LineAmount returns the display amount of one item, the quantity times
// unit price product rounded to two decimals. Totals never sum these
// rounded amounts.
func LineAmount(quantity, unitPrice decimal.Decimal) decimal.Decimal {
	return quantity.Mul(unitPrice).Round(2)
}
