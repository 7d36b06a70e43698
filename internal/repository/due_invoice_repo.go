package repository

import (
	"erp-reporting-backend/internal/models"

	"gorm.io/gorm"
)

// DueInvoiceRepository covers the tbl_invoice_due table of one tenant
// database. Construct it per request around the resolved tenant handle.
type DueInvoiceRepository struct {
	db *gorm.DB
}

func NewDueInvoiceRepository(db *gorm.DB) *DueInvoiceRepository {
	return &DueInvoiceRepository{db: db}
}

// ReturnTotal sums the invoice-return adjustment for the account: due rows of
// const 104 that are not themselves returns. Nominal-currency rows (curr id 1)
// contribute their open amount directly; foreign rows are converted through
// in_due_inv_curr_val, divided or multiplied depending on the configured rate
// direction.
func (r *DueInvoiceRepository) ReturnTotal(accountID int64, rateDivides bool) (float64, error) {
	var total float64
	err := r.db.Raw(`
		SELECT COALESCE(SUM(
			CASE WHEN in_due_inv_curr_id = 1
				THEN in_due_inv_net - (in_due_inv_payment + in_due_inv_payments)
				ELSE CASE WHEN ?
					THEN (in_due_inv_net - (in_due_inv_payment + in_due_inv_payments))
						/ COALESCE(NULLIF(in_due_inv_curr_val, 0), 1)
					ELSE (in_due_inv_net - (in_due_inv_payment + in_due_inv_payments))
						* COALESCE(NULLIF(in_due_inv_curr_val, 0), 1)
				END
			END), 0)
		FROM tbl_invoice_due
		WHERE in_due_inv_acc_id = ? AND in_due_inv_return_id = 0 AND in_due_inv_const = 104`,
		rateDivides, accountID).Scan(&total).Error
	return total, err
}

// ResetCalc zeroes every calculated field for the account so the aging pass
// always starts from a clean slate.
func (r *DueInvoiceRepository) ResetCalc(accountID int64) error {
	return r.db.Model(&models.DueInvoice{}).
		Where("in_due_inv_acc_id = ?", accountID).
		Updates(map[string]interface{}{
			"in_due_calc_net":     0,
			"in_due_calc_payment": 0,
			"in_due_calc_paid":    0,
			"in_due_calc_status":  0,
		}).Error
}

// ListForAllocation returns the account's non-returned due invoices sorted by
// invoice date ascending, the order the waterfall consumes them in.
func (r *DueInvoiceRepository) ListForAllocation(accountID int64) ([]models.DueInvoice, error) {
	var invoices []models.DueInvoice
	err := r.db.
		Where("in_due_inv_acc_id = ? AND in_due_inv_return_id = 0", accountID).
		Order("in_due_inv_datetime ASC").
		Find(&invoices).Error
	return invoices, err
}

// AccountsWithDue lists every account that still owes at least one unit on a
// sales due invoice, the fan-out set for a full aging run.
func (r *DueInvoiceRepository) AccountsWithDue() ([]int64, error) {
	var ids []int64
	err := r.db.Raw(`
		SELECT DISTINCT in_due_inv_acc_id
		FROM tbl_invoice_due
		WHERE in_due_inv_const = 102
			AND (in_due_inv_net - in_due_calc_paid) >= 1`).Scan(&ids).Error
	return ids, err
}
