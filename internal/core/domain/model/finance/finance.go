// Package finance implements the deterministic financial computation attached
// to a procurement order. It is a pure calculation: identical inputs always
// produce identical outputs, with no side effects and no external reads.
//
// Money amounts use github.com/shopspring/decimal throughout. Each line amount
// is rounded to 2 decimal places before summation so that totals never drift
// from the sum of the printed per-line amounts.
package finance

import (
	"github.com/shopspring/decimal"
)

// hundred is the divisor for converting percentage rates into factors.
var hundred = decimal.NewFromInt(100)

// Line is the minimal financial view of an order line item: a quantity and a
// unit price. The calculator deliberately takes this flat shape rather than
// the full line-item entity so it stays free of domain dependencies.
type Line struct {
	Quantity  int
	UnitPrice decimal.Decimal
}

// Subtotal returns quantity * unit price rounded to 2 decimal places.
func (l Line) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity))).Round(2)
}

// Totals is the computed financial snapshot of an order.
//
// NetTotal = Subtotal + VATAmount - EWTAmount + handling fee - discount.
// VAT is added on top of the subtotal; EWT is withheld from the vendor
// payment and therefore subtracted. The asymmetry is a business rule of the
// withholding-tax regime, not a formatting choice.
type Totals struct {
	Subtotal  decimal.Decimal
	VATAmount decimal.Decimal
	EWTAmount decimal.Decimal
	NetTotal  decimal.Decimal
}

// IsNegative reports whether the net total is below zero. A negative net
// total (large discount or withholding) is permitted and is not an error;
// callers may choose to warn.
func (t Totals) IsNegative() bool {
	return t.NetTotal.IsNegative()
}

// Calculate computes order totals from line items, percentage rates, and
// flat fees.
//
//	subtotal  = sum of round(quantity * unitPrice, 2)
//	vatAmount = round(subtotal * vatRate/100, 2)
//	ewtAmount = round(subtotal * ewtRate/100, 2)
//	netTotal  = subtotal + vatAmount - ewtAmount + handlingFee - discountAmount
func Calculate(lines []Line, vatRate, ewtRate, handlingFee, discountAmount decimal.Decimal) Totals {
	subtotal := decimal.Zero
	for _, line := range lines {
		subtotal = subtotal.Add(line.Subtotal())
	}

	vatAmount := subtotal.Mul(vatRate).Div(hundred).Round(2)
	ewtAmount := subtotal.Mul(ewtRate).Div(hundred).Round(2)
	netTotal := subtotal.Add(vatAmount).Sub(ewtAmount).Add(handlingFee).Sub(discountAmount)

	return Totals{
		Subtotal:  subtotal,
		VATAmount: vatAmount,
		EWTAmount: ewtAmount,
		NetTotal:  netTotal,
	}
}
