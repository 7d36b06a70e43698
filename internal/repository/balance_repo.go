package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"erp-reporting-backend/internal/models"
)

// BalanceRepository maintains the materialized account_balances table of one
// tenant database.
type BalanceRepository struct {
	db *gorm.DB
}

func NewBalanceRepository(db *gorm.DB) *BalanceRepository {
	return &BalanceRepository{db: db}
}

// BalanceGroup is one (account, currency) aggregate over ledger rows.
type BalanceGroup struct {
	AccountID  int64   `gorm:"column:account_id"`
	CurrencyID int     `gorm:"column:currency_id"`
	Balance    float64 `gorm:"column:balance"`
	LastGlID   int64   `gorm:"column:last_gl_id"`
}

// GroupLedger aggregates debit-minus-credit per (account, currency) over all
// ledger rows with id greater than sinceGlID (0 means the whole table),
// recording the highest id seen per group.
func (r *BalanceRepository) GroupLedger(sinceGlID int64) ([]BalanceGroup, error) {
	var groups []BalanceGroup
	err := r.db.Raw(`
		SELECT gl_ac_id AS account_id,
			gl_currency_id AS currency_id,
			COALESCE(SUM(gl_debit - gl_credit), 0) AS balance,
			MAX(gl_id) AS last_gl_id
		FROM tbl_gl
		WHERE gl_id > ?
		GROUP BY gl_ac_id, gl_currency_id`, sinceGlID).Scan(&groups).Error
	return groups, err
}

// Upsert writes one materialized row, replacing balance and high-water mark.
func (r *BalanceRepository) Upsert(g BalanceGroup) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "account_id"}, {Name: "currency_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"balance":      g.Balance,
			"last_gl_id":   g.LastGlID,
			"last_updated": time.Now(),
		}),
	}).Create(&models.AccountBalance{
		ID:          uuid.New(),
		AccountID:   g.AccountID,
		CurrencyID:  g.CurrencyID,
		Balance:     g.Balance,
		LastGlID:    g.LastGlID,
		LastUpdated: time.Now(),
	}).Error
}

// ApplyDelta atomically folds new ledger activity into one materialized row
// and advances its high-water mark. Rows absent from the table (accounts that
// first posted after initialization) are created instead.
func (r *BalanceRepository) ApplyDelta(g BalanceGroup) error {
	res := r.db.Model(&models.AccountBalance{}).
		Where("account_id = ? AND currency_id = ?", g.AccountID, g.CurrencyID).
		Updates(map[string]interface{}{
			"balance":      gorm.Expr("balance + ?", g.Balance),
			"last_gl_id":   g.LastGlID,
			"last_updated": time.Now(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return r.Upsert(g)
	}
	return nil
}

// MaxLastGlID returns the highest stored high-water mark, 0 when the table
// is empty.
func (r *BalanceRepository) MaxLastGlID() (int64, error) {
	var max int64
	err := r.db.Model(&models.AccountBalance{}).
		Select("COALESCE(MAX(last_gl_id), 0)").Scan(&max).Error
	return max, err
}

func (r *BalanceRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.AccountBalance{}).Count(&count).Error
	return count, err
}

// Find returns stored balances, optionally filtered by account and currency.
func (r *BalanceRepository) Find(accountID *int64, currencyID *int) ([]models.AccountBalance, error) {
	query := r.db.Model(&models.AccountBalance{})
	if accountID != nil {
		query = query.Where("account_id = ?", *accountID)
	}
	if currencyID != nil {
		query = query.Where("currency_id = ?", *currencyID)
	}

	var balances []models.AccountBalance
	err := query.Find(&balances).Error
	return balances, err
}

// CurrencyByID and AccountByID feed the "Unknown" fallbacks of the balance
// query endpoint.
func (r *BalanceRepository) CurrencyByID(id int) (*models.Currency, error) {
	var currency models.Currency
	if err := r.db.First(&currency, "cur_lst_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &currency, nil
}

func (r *BalanceRepository) AccountByID(id int64) (*models.Account, error) {
	var account models.Account
	if err := r.db.First(&account, "ac_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &account, nil
}
