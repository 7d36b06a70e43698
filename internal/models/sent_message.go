package models

import (
	"time"

	"github.com/google/uuid"
)

// SentMessage / SentInvoice form the append-only audit log of reminder
// notifications. One message row, one invoice row per invoice it covered.

type SentMessage struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Phone        string    `json:"phone"`
	Message      string    `json:"message"`
	CustomerName string    `gorm:"index" json:"customer_name"`
	SentBy       uuid.UUID `json:"sent_by"`
	SendDate     time.Time `json:"send_date"`
}

type SentInvoice struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	MessageID       uuid.UUID `gorm:"index" json:"message_id"`
	InvoiceID       string    `json:"invoice_id"`
	InvoiceNumber   string    `json:"invoice_number"`
	InvoicePayment  float64   `json:"invoice_payment"`
	InvoiceNet      float64   `json:"invoice_net"`
	RemainingAmount float64   `json:"remaining_amount"`
	DueDaysRemain   int       `json:"due_days_remain"`
}
