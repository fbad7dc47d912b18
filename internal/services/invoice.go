package services

import (
	"math"

	"github.com/dev-ankit-kumar/Ernet-portal/internal/models"
)

// gstRate is the flat 18% GST applied after discount.
const gstRate = 0.18

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ComputeInvoice derives the invoice view of a subscriber record.
// Nothing is persisted; the totals are recomputed on every view.
//
//	discount_amount = total * discount/100
//	payable         = total * (1 - discount/100) * 1.18
func ComputeInvoice(user models.UserDB) models.Invoice {
	discountAmount := user.TotalAmount * user.Discount / 100
	discounted := user.TotalAmount - discountAmount
	taxAmount := discounted * gstRate

	return models.Invoice{
		UserDB:         user,
		DiscountAmount: round2(discountAmount),
		TaxAmount:      round2(taxAmount),
		Payable:        round2(discounted + taxAmount),
	}
}
