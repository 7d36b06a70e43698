package aging

import (
	"math"
	"time"
)

// DueInvoiceReport is one enriched due-invoice row as returned to the client
// and fed into reminder dispatch. Optional joins (agent, currency, type)
// default to empty strings at the data-access boundary.
type DueInvoiceReport struct {
	InvoiceID       int64     `json:"invoice_id" gorm:"column:invoice_id"`
	InvoiceNumber   string    `json:"invoice_number" gorm:"column:invoice_number"`
	InvoiceDate     time.Time `json:"invoice_date" gorm:"column:invoice_date"`
	InvoiceDesc     string    `json:"invoice_desc" gorm:"column:invoice_desc"`
	InvoiceNet      float64   `json:"invoice_net" gorm:"column:invoice_net"`
	InvoicePayment  float64   `json:"invoice_payment" gorm:"column:invoice_payment"`
	InvoiceRemind   int       `json:"invoice_remind" gorm:"column:invoice_remind"`
	CustomerName    string    `json:"customer_name" gorm:"column:customer_name"`
	CustomerCompany string    `json:"customer_company" gorm:"column:customer_company"`
	CustomerAddress string    `json:"customer_address" gorm:"column:customer_address"`
	CustomerMobile1 string    `json:"customer_mobile1" gorm:"column:customer_mobile1"`
	CustomerMobile2 string    `json:"customer_mobile2" gorm:"column:customer_mobile2"`
	CustomerEmail   string    `json:"customer_email" gorm:"column:customer_email"`
	AgentName       string    `json:"agent_name" gorm:"column:agent_name"`
	CurrencyID      int       `json:"currency_id" gorm:"column:currency_id"`
	CurrencyName    string    `json:"currency_name" gorm:"column:currency_name"`
	InvoiceTypeName string    `json:"invoice_type_name" gorm:"column:invoice_type_name"`
	CalcNet         float64   `json:"-" gorm:"column:calc_net"`
	CalcPaid        float64   `json:"-" gorm:"column:calc_paid"`
	CurrencyValue   float64   `json:"-" gorm:"column:currency_value"`
	RemainingAmount float64   `json:"remaining_amount" gorm:"-"`
	DueDaysRemain   int       `json:"due_days_remain" gorm:"-"`
	AccountID       int64     `json:"p_acc_id" gorm:"column:account_id"`
}

// finalize derives the open remaining amount in the invoice currency and the
// grace-day count, dropping rows the allocation fully settled. Input order is
// preserved.
func finalize(rows []DueInvoiceReport, now time.Time) []DueInvoiceReport {
	out := make([]DueInvoiceReport, 0, len(rows))
	for _, row := range rows {
		currencyValue := row.CurrencyValue
		if currencyValue == 0 {
			currencyValue = 1
		}
		row.RemainingAmount = (row.CalcNet - row.CalcPaid) / currencyValue
		if row.RemainingAmount <= 0 {
			continue
		}
		row.DueDaysRemain = DueDaysRemain(row.InvoiceRemind, row.InvoiceDate, now)
		out = append(out, row)
	}
	return out
}

// DueDaysRemain computes the grace days left for an invoice. A remind value
// of 0 means the invoice has no grace period and is never counted overdue.
// Otherwise the result is remind minus the whole days elapsed since the
// invoice date, plus one day so the invoice date itself counts. Negative once
// overdue.
func DueDaysRemain(remind int, invoiceDate, now time.Time) int {
	if remind == 0 {
		return 0
	}
	elapsed := int(math.Floor(now.Sub(invoiceDate).Hours() / 24))
	return remind - elapsed + 1
}
