package balances

import (
	"testing"

	"erp-reporting-backend/internal/repository"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name    string
		balance float64
		want    float64
	}{
		{"zero stays zero", 0, 0},
		{"small positive noise clamps", 4.99, 0},
		{"small negative noise clamps", -4.99, 0},
		{"threshold is not noise", 5, 5},
		{"negative threshold is not noise", -5, -5},
		{"real balance passes through", 1234.56, 1234.56},
		{"real debt passes through", -321.4, -321.4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp(tt.balance); got != tt.want {
				t.Errorf("Clamp(%v) = %v, want %v", tt.balance, got, tt.want)
			}
		})
	}
}

type ledgerRow struct {
	glID          int64
	accountID     int64
	currencyID    int
	debit, credit float64
}

type pairKey struct {
	accountID  int64
	currencyID int
}

// groupRows mirrors the GroupLedger aggregation: debit minus credit per
// (account, currency) over rows with gl_id strictly above the mark.
func groupRows(rows []ledgerRow, sinceGlID int64) []repository.BalanceGroup {
	byPair := map[pairKey]*repository.BalanceGroup{}
	for _, row := range rows {
		if row.glID <= sinceGlID {
			continue
		}
		key := pairKey{row.accountID, row.currencyID}
		g, ok := byPair[key]
		if !ok {
			g = &repository.BalanceGroup{AccountID: row.accountID, CurrencyID: row.currencyID}
			byPair[key] = g
		}
		g.Balance += row.debit - row.credit
		if row.glID > g.LastGlID {
			g.LastGlID = row.glID
		}
	}
	groups := make([]repository.BalanceGroup, 0, len(byPair))
	for _, g := range byPair {
		groups = append(groups, *g)
	}
	return groups
}

// Folding the entries in two incremental batches separated by the high-water
// mark must land on the same balances as one full pass.
func TestIncrementalUpdateConverges(t *testing.T) {
	rows := []ledgerRow{
		{glID: 1, accountID: 10, currencyID: 1, debit: 100},
		{glID: 2, accountID: 10, currencyID: 1, credit: 40},
		{glID: 3, accountID: 11, currencyID: 1, debit: 250},
		{glID: 4, accountID: 10, currencyID: 2, debit: 75},
		{glID: 5, accountID: 10, currencyID: 1, debit: 10},
		{glID: 6, accountID: 11, currencyID: 1, credit: 250},
		{glID: 7, accountID: 12, currencyID: 2, credit: 30},
	}

	full := map[pairKey]float64{}
	var fullMark int64
	for _, g := range groupRows(rows, 0) {
		full[pairKey{g.AccountID, g.CurrencyID}] = g.Balance
		if g.LastGlID > fullMark {
			fullMark = g.LastGlID
		}
	}

	// First batch initializes, second folds on top from the stored mark.
	stored := map[pairKey]float64{}
	var mark int64
	for _, g := range groupRows(rows[:4], 0) {
		stored[pairKey{g.AccountID, g.CurrencyID}] = g.Balance
		if g.LastGlID > mark {
			mark = g.LastGlID
		}
	}
	for _, g := range groupRows(rows, mark) {
		stored[pairKey{g.AccountID, g.CurrencyID}] += g.Balance
		if g.LastGlID > mark {
			mark = g.LastGlID
		}
	}

	if len(stored) != len(full) {
		t.Fatalf("incremental produced %d pairs, full produced %d", len(stored), len(full))
	}
	for key, want := range full {
		if got := stored[key]; got != want {
			t.Errorf("account %d currency %d: incremental = %v, full = %v",
				key.accountID, key.currencyID, got, want)
		}
	}
	if mark != fullMark {
		t.Errorf("high-water mark = %d, want %d", mark, fullMark)
	}
}
