package balances

import (
	"math"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"erp-reporting-backend/internal/repository"
)

// Posting noise below this absolute value is displayed as a zero balance.
const noiseThreshold = 5

// Clamp applies the rounding-noise tolerance: ledger rows carry floating
// point amounts, so a residue smaller than the threshold means "settled".
func Clamp(balance float64) float64 {
	if math.Abs(balance) < noiseThreshold {
		return 0
	}
	return balance
}

// Service computes customer balances and maintains the materialized
// account_balances table of each tenant database.
type Service struct {
	// Guards against two requests racing to initialize the same tenant's
	// materialized table.
	initMu sync.Mutex
}

func NewService() *Service {
	return &Service{}
}

// CustomerReport returns the per (customer, currency) balance report:
// debit minus credit over posted ledger rows, clamped to zero inside the
// noise threshold.
func (s *Service) CustomerReport(db *gorm.DB) ([]repository.CustomerBalanceRow, error) {
	rows, err := repository.NewLedgerRepository(db).CustomerBalances()
	if err != nil {
		return nil, err
	}
	for i := range rows {
		rows[i].Balance = Clamp(rows[i].TotalGlDebit - rows[i].TotalGlCredit)
	}
	return rows, nil
}

// Initialize fully recomputes the materialized balances: one row per
// (account, currency) with the highest ledger id seen as high-water mark.
func (s *Service) Initialize(db *gorm.DB) error {
	repo := repository.NewBalanceRepository(db)
	groups, err := repo.GroupLedger(0)
	if err != nil {
		return err
	}
	for _, g := range groups {
		if err := repo.Upsert(g); err != nil {
			return err
		}
	}
	log.Info().Int("accounts", len(groups)).Msg("account balances initialized")
	return nil
}

// Update incrementally folds ledger rows newer than the stored high-water
// mark into the materialized balances. Each ledger entry contributes exactly
// once: the mark only moves forward and entry ids are assigned monotonically.
// An empty table falls back to Initialize.
func (s *Service) Update(db *gorm.DB) error {
	repo := repository.NewBalanceRepository(db)

	count, err := repo.Count()
	if err != nil {
		return err
	}
	if count == 0 {
		s.initMu.Lock()
		defer s.initMu.Unlock()
		log.Info().Msg("no materialized balances found, initializing")
		return s.Initialize(db)
	}

	since, err := repo.MaxLastGlID()
	if err != nil {
		return err
	}

	groups, err := repo.GroupLedger(since)
	if err != nil {
		return err
	}
	if len(groups) == 0 {
		log.Debug().Int64("since_gl_id", since).Msg("no new ledger entries")
		return nil
	}

	for _, g := range groups {
		if err := repo.ApplyDelta(g); err != nil {
			return err
		}
	}
	log.Info().Int64("since_gl_id", since).Int("groups", len(groups)).Msg("account balances updated")
	return nil
}

// BalanceView is one stored balance joined with its account and currency
// names for display.
type BalanceView struct {
	AccountID    int64     `json:"account_id"`
	AccountName  string    `json:"account_name"`
	CurrencyID   int       `json:"currency_id"`
	CurrencyCode string    `json:"currency_code"`
	Balance      float64   `json:"balance"`
	LastUpdated  time.Time `json:"last_updated"`
}

// Query returns stored balances filtered by optional account and currency,
// with "Unknown" standing in for missing lookup rows.
func (s *Service) Query(db *gorm.DB, accountID *int64, currencyID *int) ([]BalanceView, error) {
	repo := repository.NewBalanceRepository(db)
	stored, err := repo.Find(accountID, currencyID)
	if err != nil {
		return nil, err
	}

	views := make([]BalanceView, 0, len(stored))
	for _, b := range stored {
		view := BalanceView{
			AccountID:    b.AccountID,
			AccountName:  "Unknown",
			CurrencyID:   b.CurrencyID,
			CurrencyCode: "Unknown",
			Balance:      b.Balance,
			LastUpdated:  b.LastUpdated,
		}
		if account, err := repo.AccountByID(b.AccountID); err == nil {
			view.AccountName = account.AcName
		}
		if currency, err := repo.CurrencyByID(b.CurrencyID); err == nil {
			view.CurrencyCode = currency.CurLstCode
		}
		views = append(views, view)
	}
	return views, nil
}
