package models

import "time"

// DueInvoice is one row per invoice scheduled for aging. The in_due_calc_*
// fields are the only mutable state this backend owns on ERP tables: every
// aging pass zeroes them and rewrites calc_paid from the FIFO waterfall.
type DueInvoice struct {
	InDueID          int64     `gorm:"column:in_due_id;primaryKey" json:"in_due_id"`
	InDueInvID       int64     `gorm:"column:in_due_inv_id;index" json:"in_due_inv_id"`
	InDueInvAccID    int64     `gorm:"column:in_due_inv_acc_id;index" json:"in_due_inv_acc_id"`
	InDueInvDatetime time.Time `gorm:"column:in_due_inv_datetime" json:"in_due_inv_datetime"`
	InDueInvNet      float64   `gorm:"column:in_due_inv_net" json:"in_due_inv_net"`
	InDueInvPayment  float64   `gorm:"column:in_due_inv_payment" json:"in_due_inv_payment"`
	InDueInvPayments float64   `gorm:"column:in_due_inv_payments" json:"in_due_inv_payments"`
	InDueInvCurrID   int       `gorm:"column:in_due_inv_curr_id" json:"in_due_inv_curr_id"`
	InDueInvCurrVal  float64   `gorm:"column:in_due_inv_curr_val" json:"in_due_inv_curr_val"`
	InDueInvReturnID int64     `gorm:"column:in_due_inv_return_id" json:"in_due_inv_return_id"`
	InDueInvConst    int       `gorm:"column:in_due_inv_const" json:"in_due_inv_const"`

	InDueCalcNet     float64 `gorm:"column:in_due_calc_net" json:"in_due_calc_net"`
	InDueCalcPayment float64 `gorm:"column:in_due_calc_payment" json:"in_due_calc_payment"`
	InDueCalcPaid    float64 `gorm:"column:in_due_calc_paid" json:"in_due_calc_paid"`
	InDueCalcStatus  int     `gorm:"column:in_due_calc_status" json:"in_due_calc_status"`
}

func (DueInvoice) TableName() string { return "tbl_invoice_due" }

type InvoicePayment struct {
	InPayID      int64 `gorm:"column:in_pay_id;primaryKey"`
	InPayBatchID int64 `gorm:"column:in_pay_batch_id;index"`
}

func (InvoicePayment) TableName() string { return "tbl_invoice_payment" }
