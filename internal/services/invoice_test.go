package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dev-ankit-kumar/Ernet-portal/internal/models"
	"github.com/dev-ankit-kumar/Ernet-portal/internal/services"
)

func TestComputeInvoice(t *testing.T) {
	tests := []struct {
		name               string
		totalAmount        float64
		discount           float64
		wantDiscountAmount float64
		wantTaxAmount      float64
		wantPayable        float64
	}{
		{
			name:               "ten percent discount",
			totalAmount:        1000,
			discount:           10,
			wantDiscountAmount: 100,
			wantTaxAmount:      162,
			wantPayable:        1062,
		},
		{
			name:               "no discount",
			totalAmount:        2000,
			discount:           0,
			wantDiscountAmount: 0,
			wantTaxAmount:      360,
			wantPayable:        2360,
		},
		{
			name:               "full discount",
			totalAmount:        500,
			discount:           100,
			wantDiscountAmount: 500,
			wantTaxAmount:      0,
			wantPayable:        0,
		},
		{
			name:               "fractional amounts round to paise",
			totalAmount:        999,
			discount:           7,
			wantDiscountAmount: 69.93,
			wantTaxAmount:      167.23,
			wantPayable:        1096.3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := models.UserDB{
				Username:    "iit-delhi",
				TotalAmount: tt.totalAmount,
				Discount:    tt.discount,
			}

			invoice := services.ComputeInvoice(user)

			assert.InDelta(t, tt.wantDiscountAmount, invoice.DiscountAmount, 0.001)
			assert.InDelta(t, tt.wantTaxAmount, invoice.TaxAmount, 0.001)
			assert.InDelta(t, tt.wantPayable, invoice.Payable, 0.001)
			assert.Equal(t, user.Username, invoice.Username)
		})
	}
}
