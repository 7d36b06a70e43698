package aging

import (
	"testing"
	"time"

	"erp-reporting-backend/internal/models"
)

func TestDueDaysRemain(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		remind      int
		invoiceDate time.Time
		want        int
	}{
		{
			name:        "no grace period is never overdue",
			remind:      0,
			invoiceDate: now.AddDate(0, -6, 0),
			want:        0,
		},
		{
			name:        "within grace period",
			remind:      30,
			invoiceDate: now.AddDate(0, 0, -10),
			want:        21,
		},
		{
			name:        "overdue goes negative",
			remind:      7,
			invoiceDate: now.AddDate(0, 0, -30),
			want:        -22,
		},
		{
			name:        "invoice dated today counts the inclusive day",
			remind:      7,
			invoiceDate: now,
			want:        8,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DueDaysRemain(tt.remind, tt.invoiceDate, now); got != tt.want {
				t.Errorf("DueDaysRemain(%d, %v) = %d, want %d", tt.remind, tt.invoiceDate, got, tt.want)
			}
		})
	}
}

func TestFinalize(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		rows          []DueInvoiceReport
		wantNumbers   []string
		wantRemaining []float64
	}{
		{
			name: "settled rows are dropped, partial remains",
			rows: []DueInvoiceReport{
				{InvoiceNumber: "A-1", CalcNet: 80, CalcPaid: 80, CurrencyValue: 1},
				{InvoiceNumber: "A-2", CalcNet: 50, CalcPaid: 50, CurrencyValue: 1},
				{InvoiceNumber: "A-3", CalcNet: 40, CalcPaid: 20, CurrencyValue: 1},
			},
			wantNumbers:   []string{"A-3"},
			wantRemaining: []float64{20},
		},
		{
			name: "foreign currency divides by the rate",
			rows: []DueInvoiceReport{
				{InvoiceNumber: "B-1", CalcNet: 500, CalcPaid: 100, CurrencyValue: 5},
			},
			wantNumbers:   []string{"B-1"},
			wantRemaining: []float64{80},
		},
		{
			name: "zero rate falls back to nominal",
			rows: []DueInvoiceReport{
				{InvoiceNumber: "C-1", CalcNet: 30, CalcPaid: 0, CurrencyValue: 0},
			},
			wantNumbers:   []string{"C-1"},
			wantRemaining: []float64{30},
		},
		{
			name: "overpaid row is excluded",
			rows: []DueInvoiceReport{
				{InvoiceNumber: "D-1", CalcNet: 40, CalcPaid: 45, CurrencyValue: 1},
			},
			wantNumbers:   nil,
			wantRemaining: nil,
		},
		{
			name: "input order is preserved",
			rows: []DueInvoiceReport{
				{InvoiceNumber: "E-1", CalcNet: 10, CalcPaid: 0, CurrencyValue: 1},
				{InvoiceNumber: "E-2", CalcNet: 20, CalcPaid: 20, CurrencyValue: 1},
				{InvoiceNumber: "E-3", CalcNet: 30, CalcPaid: 0, CurrencyValue: 1},
			},
			wantNumbers:   []string{"E-1", "E-3"},
			wantRemaining: []float64{10, 30},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := finalize(tt.rows, now)
			if len(got) != len(tt.wantNumbers) {
				t.Fatalf("finalize returned %d rows, want %d", len(got), len(tt.wantNumbers))
			}
			for i, row := range got {
				if row.InvoiceNumber != tt.wantNumbers[i] {
					t.Errorf("row %d invoice = %s, want %s", i, row.InvoiceNumber, tt.wantNumbers[i])
				}
				if row.RemainingAmount != tt.wantRemaining[i] {
					t.Errorf("row %d remaining = %v, want %v", i, row.RemainingAmount, tt.wantRemaining[i])
				}
			}
		})
	}
}

// Replays the waterfall into finalize: nets [80, 50, 40] against a balance of
// 150 settle the first two invoices in full, leaving only the third listed
// with 20 open.
func TestAllocateThenFinalize(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	invoices := []models.DueInvoice{
		dueInvoice(1, 80, 1),
		dueInvoice(2, 50, 2),
		dueInvoice(3, 40, 3),
	}

	allocations, remaining := Allocate(150, invoices)
	if remaining != 0 {
		t.Fatalf("remaining after pass = %v, want 0", remaining)
	}

	rows := make([]DueInvoiceReport, len(allocations))
	for i, a := range allocations {
		rows[i] = DueInvoiceReport{
			InvoiceID:     a.InDueID,
			CalcNet:       a.Net,
			CalcPaid:      a.Paid,
			CurrencyValue: 1,
		}
	}

	got := finalize(rows, now)
	if len(got) != 1 {
		t.Fatalf("finalize returned %d rows, want 1", len(got))
	}
	if got[0].InvoiceID != invoices[2].InDueID {
		t.Errorf("listed invoice = %d, want %d", got[0].InvoiceID, invoices[2].InDueID)
	}
	if got[0].RemainingAmount != 20 {
		t.Errorf("remaining = %v, want 20", got[0].RemainingAmount)
	}
}
