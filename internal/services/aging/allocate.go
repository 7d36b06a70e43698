package aging

import "erp-reporting-backend/internal/models"

// Allocation is the outcome of the payment waterfall for one due invoice.
type Allocation struct {
	InDueID int64
	Net     float64
	Paid    float64
	Settled bool
}

// Allocate walks the customer's outstanding invoices oldest-first and spreads
// the available balance across them: each invoice absorbs min(remaining, net),
// and once the balance is exhausted every later invoice stays at zero. The
// function is pure; callers persist the result in one batch afterwards.
//
// Invoices must already be sorted by invoice date ascending. Returns one
// allocation per input invoice and the balance left after the walk.
func Allocate(balance float64, invoices []models.DueInvoice) ([]Allocation, float64) {
	allocations := make([]Allocation, 0, len(invoices))
	remaining := balance

	for _, inv := range invoices {
		applied := 0.0
		if remaining > 0 {
			applied = remaining
			if inv.InDueInvNet < applied {
				applied = inv.InDueInvNet
			}
			remaining -= applied
		}
		allocations = append(allocations, Allocation{
			InDueID: inv.InDueID,
			Net:     inv.InDueInvNet,
			Paid:    applied,
			Settled: applied >= inv.InDueInvNet,
		})
	}

	return allocations, remaining
}
