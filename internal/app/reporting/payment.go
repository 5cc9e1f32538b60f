// internal/app/reporting/payment.go
package reporting

import (
	"math"

	"github.com/mnogodumalon/kurs56/internal/domain/models"
)

// PaymentSummary reports how many registrations are paid versus outstanding.
// Rate is a whole percent and only meaningful when HasRate is true; with zero
// registrations there is no rate, and callers render a placeholder rather
// than 0%.
type PaymentSummary struct {
	Paid        int  `json:"paid"`
	Outstanding int  `json:"outstanding"`
	Rate        int  `json:"rate"`
	HasRate     bool `json:"has_rate"`
}

// SummarizePayments counts paid registrations (explicit true only; a missing
// flag is unpaid) and derives the payment rate. Outstanding is always
// total - paid, so Paid + Outstanding == len(regs) holds by construction.
func SummarizePayments(regs []models.Registration) PaymentSummary {
	paid := 0
	for _, reg := range regs {
		if reg.IsPaid() {
			paid++
		}
	}

	s := PaymentSummary{
		Paid:        paid,
		Outstanding: len(regs) - paid,
	}
	if len(regs) > 0 {
		// round half-up to the nearest whole percent
		s.Rate = int(math.Floor(float64(paid)/float64(len(regs))*100 + 0.5))
		s.HasRate = true
	}
	return s
}
