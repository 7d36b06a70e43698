package models

// LedgerEntry is one immutable debit/credit posting in the tenant's general
// ledger. Rows are produced by the external accounting system; this backend
// only reads them. Ids are assigned monotonically, which the materialized
// balance high-water mark relies on.
type LedgerEntry struct {
	GlID          int64   `gorm:"column:gl_id;primaryKey"`
	GlAcID        int64   `gorm:"column:gl_ac_id;index"`
	GlCurrencyID  int     `gorm:"column:gl_currency_id;index"`
	GlCurrencyVal float64 `gorm:"column:gl_currency_val"`
	GlDebit       float64 `gorm:"column:gl_debit"`
	GlCredit      float64 `gorm:"column:gl_credit"`
	GlPost        int     `gorm:"column:gl_post"`
	GlInit        int     `gorm:"column:gl_init"`
	GlConst       int     `gorm:"column:gl_const"`
	GlBatchID     int64   `gorm:"column:gl_batch_id"`
}

func (LedgerEntry) TableName() string { return "tbl_gl" }
