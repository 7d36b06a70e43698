package models

import (
	"time"

	"github.com/google/uuid"
)

// AccountBalance is the materialized per (account, currency) running balance.
// LastGlID is the high-water mark: the highest ledger id already folded into
// Balance. A ledger row contributes exactly once because the mark only moves
// forward.
type AccountBalance struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	AccountID   int64     `gorm:"uniqueIndex:idx_account_currency" json:"account_id"`
	CurrencyID  int       `gorm:"uniqueIndex:idx_account_currency" json:"currency_id"`
	Balance     float64   `json:"balance"`
	LastGlID    int64     `gorm:"index" json:"last_gl_id"`
	LastUpdated time.Time `json:"last_updated"`
}
