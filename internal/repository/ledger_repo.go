package repository

import "gorm.io/gorm"

type LedgerRepository struct {
	db *gorm.DB
}

func NewLedgerRepository(db *gorm.DB) *LedgerRepository {
	return &LedgerRepository{db: db}
}

// CustomerBalanceRow is a per (customer, currency) sum of posted ledger rows.
// The displayed balance is derived in the service so the rounding-noise clamp
// stays testable outside the database.
type CustomerBalanceRow struct {
	CustomerID    int64   `gorm:"column:customer_id" json:"customer_id"`
	CustomerName  string  `gorm:"column:customer_name" json:"customer_name"`
	CurrencyID    int     `gorm:"column:currency_id" json:"currency_id"`
	CurrencyName  string  `gorm:"column:currency_name" json:"currency_name"`
	TotalGlDebit  float64 `gorm:"column:total_gl_debit" json:"total_gl_debit"`
	TotalGlCredit float64 `gorm:"column:total_gl_credit" json:"total_gl_credit"`
	Balance       float64 `gorm:"-" json:"balance"`
}

// CustomerBalances sums posted debits and credits per customer and currency.
// Customers without ledger activity still appear with zero sums; missing
// currency rows surface as "Unknown".
func (r *LedgerRepository) CustomerBalances() ([]CustomerBalanceRow, error) {
	var rows []CustomerBalanceRow
	err := r.db.Raw(`
		SELECT c.cu_id AS customer_id,
			c.cu_name AS customer_name,
			COALESCE(g.gl_currency_id, 0) AS currency_id,
			COALESCE(cur.cur_lst_name, 'Unknown') AS currency_name,
			COALESCE(g.total_gl_debit, 0) AS total_gl_debit,
			COALESCE(g.total_gl_credit, 0) AS total_gl_credit
		FROM tbl_cust c
		LEFT JOIN (
			SELECT gl_ac_id, gl_currency_id,
				ROUND(SUM(gl_debit)) AS total_gl_debit,
				ROUND(SUM(gl_credit)) AS total_gl_credit
			FROM tbl_gl
			WHERE gl_post = 1
			GROUP BY gl_ac_id, gl_currency_id
		) g ON g.gl_ac_id = c.cu_acc_id
		LEFT JOIN tbl_currency cur ON cur.cur_lst_id = g.gl_currency_id
		ORDER BY c.cu_name ASC, cur.cur_lst_name ASC`).Scan(&rows).Error
	return rows, err
}

// GlSums returns the credit and debit totals of the qualifying ledger rows
// for one account, each amount converted through gl_currency_val. Rows tied
// to a recorded payment batch are excluded so payments are not double
// counted against the due invoices. Legacy payment rows can carry a NULL
// batch id, which must not leak into the NOT IN set or the predicate goes
// three-valued and both sums collapse to 0.
func (r *LedgerRepository) GlSums(accountID int64) (creditSum, debitSum float64, err error) {
	var row struct {
		CreditSum float64 `gorm:"column:credit_sum"`
		DebitSum  float64 `gorm:"column:debit_sum"`
	}
	err = r.db.Raw(`
		SELECT
			COALESCE(SUM(COALESCE(gl_credit, 0) / COALESCE(NULLIF(gl_currency_val, 0), 1)), 0) AS credit_sum,
			COALESCE(SUM(COALESCE(gl_debit, 0) / COALESCE(NULLIF(gl_currency_val, 0), 1)), 0) AS debit_sum
		FROM tbl_gl
		WHERE gl_ac_id = ?
			AND gl_init = 0
			AND gl_const IN (0, 1, 2, 3, 10, 11, 48, 49, 84, 85)
			AND gl_batch_id NOT IN (
					SELECT DISTINCT in_pay_batch_id FROM tbl_invoice_payment
					WHERE in_pay_batch_id IS NOT NULL)`,
		accountID).Scan(&row).Error
	return row.CreditSum, row.DebitSum, err
}
