package aging

import (
	"testing"
	"time"

	"erp-reporting-backend/internal/models"
)

func dueInvoice(id int64, net float64, day int) models.DueInvoice {
	return models.DueInvoice{
		InDueID:          id,
		InDueInvNet:      net,
		InDueInvDatetime: time.Date(2026, 1, day, 0, 0, 0, 0, time.UTC),
	}
}

func TestAllocate(t *testing.T) {
	tests := []struct {
		name          string
		balance       float64
		nets          []float64
		wantPaid      []float64
		wantRemaining float64
	}{
		{
			name:          "balance spread over oldest first",
			balance:       120,
			nets:          []float64{100, 50, 30},
			wantPaid:      []float64{100, 20, 0},
			wantRemaining: 0,
		},
		{
			name:          "balance exceeds all invoices",
			balance:       200,
			nets:          []float64{80, 50, 40},
			wantPaid:      []float64{80, 50, 40},
			wantRemaining: 30,
		},
		{
			name:          "partial on last invoice",
			balance:       150,
			nets:          []float64{80, 50, 40},
			wantPaid:      []float64{80, 50, 20},
			wantRemaining: 0,
		},
		{
			name:          "zero balance pays nothing",
			balance:       0,
			nets:          []float64{100, 50},
			wantPaid:      []float64{0, 0},
			wantRemaining: 0,
		},
		{
			name:          "negative balance pays nothing",
			balance:       -25,
			nets:          []float64{100},
			wantPaid:      []float64{0},
			wantRemaining: -25,
		},
		{
			name:          "no invoices keeps balance",
			balance:       75,
			nets:          nil,
			wantPaid:      nil,
			wantRemaining: 75,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			invoices := make([]models.DueInvoice, 0, len(tt.nets))
			for i, net := range tt.nets {
				invoices = append(invoices, dueInvoice(int64(i+1), net, i+1))
			}

			allocations, remaining := Allocate(tt.balance, invoices)

			if len(allocations) != len(tt.wantPaid) {
				t.Fatalf("got %d allocations, want %d", len(allocations), len(tt.wantPaid))
			}
			for i, want := range tt.wantPaid {
				if allocations[i].Paid != want {
					t.Errorf("allocation[%d].Paid = %v, want %v", i, allocations[i].Paid, want)
				}
			}
			if remaining != tt.wantRemaining {
				t.Errorf("remaining = %v, want %v", remaining, tt.wantRemaining)
			}
		})
	}
}

// Allocating twice from the same inputs must yield identical results: the
// aging pass resets calculated state before every run, so repeated passes
// with no new ledger activity are idempotent.
func TestAllocateIdempotent(t *testing.T) {
	invoices := []models.DueInvoice{
		dueInvoice(1, 80, 1),
		dueInvoice(2, 50, 2),
		dueInvoice(3, 40, 3),
	}

	first, firstRemaining := Allocate(150, invoices)
	second, secondRemaining := Allocate(150, invoices)

	if firstRemaining != secondRemaining {
		t.Fatalf("remaining differs between runs: %v vs %v", firstRemaining, secondRemaining)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("allocation[%d] differs between runs: %+v vs %+v", i, first[i], second[i])
		}
	}
}

// The waterfall never hands out more than the available balance.
func TestAllocateNeverExceedsBalance(t *testing.T) {
	invoices := []models.DueInvoice{
		dueInvoice(1, 300, 1),
		dueInvoice(2, 200, 2),
		dueInvoice(3, 100, 3),
	}

	for _, balance := range []float64{0, 50, 299, 300, 301, 599, 600, 1000} {
		allocations, remaining := Allocate(balance, invoices)
		var total float64
		for _, a := range allocations {
			total += a.Paid
		}
		if balance >= 0 && total > balance {
			t.Errorf("balance %v: allocated %v exceeds balance", balance, total)
		}
		if balance >= 0 && total+remainingClamp(remaining) != balance && remaining > 0 {
			t.Errorf("balance %v: allocated %v + remaining %v != balance", balance, total, remaining)
		}
	}
}

func remainingClamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

func TestAllocateSettledFlag(t *testing.T) {
	invoices := []models.DueInvoice{
		dueInvoice(1, 100, 1),
		dueInvoice(2, 50, 2),
	}
	allocations, _ := Allocate(120, invoices)

	if !allocations[0].Settled {
		t.Error("fully covered invoice should be settled")
	}
	if allocations[1].Settled {
		t.Error("partially covered invoice should not be settled")
	}
}
