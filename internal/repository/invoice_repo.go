package repository

import (
	"time"

	"gorm.io/gorm"

	"erp-reporting-backend/internal/models"
)

// InvoiceRepository reads invoice headers, lines and the sales aggregates
// behind the dashboard of one tenant database.
type InvoiceRepository struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

func (r *InvoiceRepository) GetByID(id int64) (*models.Invoice, error) {
	var invoice models.Invoice
	if err := r.db.First(&invoice, "in_list_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &invoice, nil
}

func (r *InvoiceRepository) LinesByInvoice(invoiceID int64) ([]models.InvoiceLine, error) {
	var lines []models.InvoiceLine
	err := r.db.Where("in_det_list_id = ?", invoiceID).Find(&lines).Error
	return lines, err
}

func (r *InvoiceRepository) ItemsByIDs(ids []int64) (map[int64]models.Item, error) {
	var items []models.Item
	if err := r.db.Where("it_id IN ?", ids).Find(&items).Error; err != nil {
		return nil, err
	}
	byID := make(map[int64]models.Item, len(items))
	for _, item := range items {
		byID[item.ItID] = item
	}
	return byID, nil
}

func (r *InvoiceRepository) CurrenciesByIDs(ids []int) (map[int]models.Currency, error) {
	var currencies []models.Currency
	if err := r.db.Where("cur_lst_id IN ?", ids).Find(&currencies).Error; err != nil {
		return nil, err
	}
	byID := make(map[int]models.Currency, len(currencies))
	for _, currency := range currencies {
		byID[currency.CurLstID] = currency
	}
	return byID, nil
}

func (r *InvoiceRepository) SalesInvoiceTypes() ([]models.InvoiceType, error) {
	var types []models.InvoiceType
	err := r.db.Where("in_type_const = ?", 102).Find(&types).Error
	return types, err
}

// SalesTotal sums net sales between two instants.
func (r *InvoiceRepository) SalesTotal(start, end time.Time) (float64, error) {
	var total float64
	err := r.db.Model(&models.Invoice{}).
		Select("COALESCE(SUM(in_list_net), 0)").
		Where("in_list_type_const = ? AND in_list_datetime BETWEEN ? AND ?", 102, start, end).
		Scan(&total).Error
	return total, err
}

// SeriesPoint is one 30-day bucket of a sales series.
type SeriesPoint struct {
	Bucket int     `gorm:"column:bucket"`
	Total  float64 `gorm:"column:total"`
}

// SalesSeriesByType groups one invoice type's net sales into consecutive
// 30-day buckets counted from start.
func (r *InvoiceRepository) SalesSeriesByType(typeID int, start, end time.Time) ([]SeriesPoint, error) {
	var points []SeriesPoint
	err := r.db.Raw(`
		SELECT FLOOR(EXTRACT(EPOCH FROM (in_list_datetime - ?)) / 2592000)::int AS bucket,
			SUM(in_list_net) AS total
		FROM tbl_invoice_list
		WHERE in_list_type_id = ?
			AND in_list_datetime BETWEEN ? AND ?
			AND in_list_net <> 0
		GROUP BY bucket
		ORDER BY bucket ASC`,
		start, typeID, start, end).Scan(&points).Error
	return points, err
}

// TopRow is one entry of a top-performers report.
type TopRow struct {
	Name  string  `gorm:"column:name" json:"name"`
	Count int64   `gorm:"column:count" json:"count"`
	Total float64 `gorm:"column:total" json:"total"`
}

func (r *InvoiceRepository) TopUsers(start, end time.Time, limit int) ([]TopRow, error) {
	var rows []TopRow
	err := r.db.Raw(`
		SELECT u.us_full_name AS name, COUNT(*) AS count, SUM(i.in_list_net) AS total
		FROM tbl_invoice_list i
		JOIN tbl_users u ON u.us_id = i.in_list_xe_user_ad
		WHERE i.in_list_type_const = 102 AND i.in_list_datetime BETWEEN ? AND ?
		GROUP BY u.us_full_name
		ORDER BY total DESC, count DESC
		LIMIT ?`, start, end, limit).Scan(&rows).Error
	return rows, err
}

func (r *InvoiceRepository) TopAgents(start, end time.Time, limit int) ([]TopRow, error) {
	var rows []TopRow
	err := r.db.Raw(`
		SELECT a.ag_name AS name, COUNT(*) AS count, SUM(i.in_list_net) AS total
		FROM tbl_invoice_list i
		JOIN tbl_agent a ON a.ag_id = i.in_list_agent_id
		WHERE i.in_list_type_const = 102 AND i.in_list_datetime BETWEEN ? AND ?
		GROUP BY a.ag_name
		ORDER BY total DESC, count DESC
		LIMIT ?`, start, end, limit).Scan(&rows).Error
	return rows, err
}

func (r *InvoiceRepository) TopProducts(start, end time.Time, limit int) ([]TopRow, error) {
	var rows []TopRow
	err := r.db.Raw(`
		SELECT it.it_name AS name, COUNT(*) AS count, SUM(d.in_det_total_val) AS total
		FROM tbl_invoice_det d
		JOIN tbl_invoice_list i ON i.in_list_id = d.in_det_list_id
		JOIN tbl_item it ON it.it_id = d.in_det_item_id
		WHERE i.in_list_datetime BETWEEN ? AND ?
		GROUP BY it.it_name
		ORDER BY total DESC
		LIMIT ?`, start, end, limit).Scan(&rows).Error
	return rows, err
}

// DebtRow is one per-currency debt total.
type DebtRow struct {
	Currency  string  `gorm:"column:currency" json:"currency"`
	TotalDebt float64 `gorm:"column:total_debt" json:"totalDebt"`
}

// DebtByCurrency totals the open ledger position of customers (cuType 0,
// debit minus credit) or suppliers (cuType 1, credit minus debit), grouped
// by currency.
func (r *InvoiceRepository) DebtByCurrency(cuType int) ([]DebtRow, error) {
	expr := "SUM(g.gl_debit - g.gl_credit)"
	if cuType == 1 {
		expr = "SUM(g.gl_credit - g.gl_debit)"
	}
	var rows []DebtRow
	err := r.db.Raw(`
		SELECT cur.cur_lst_name AS currency, `+expr+` AS total_debt
		FROM tbl_cust c
		JOIN tbl_gl g ON g.gl_ac_id = c.cu_acc_id
		JOIN tbl_currency cur ON cur.cur_lst_id = g.gl_currency_id
		WHERE c.cu_type = ?
		GROUP BY cur.cur_lst_name`, cuType).Scan(&rows).Error
	return rows, err
}

func (r *InvoiceRepository) CustomerCount(cuType int) (int64, error) {
	var count int64
	err := r.db.Model(&models.Customer{}).Where("cu_type = ?", cuType).Count(&count).Error
	return count, err
}
