package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"erp-reporting-backend/internal/models"
)

// Invoice is one due-invoice row included in a reminder, as submitted by the
// client from a previous due-invoices response. Amount fields arrive already
// formatted for display.
type Invoice struct {
	InvoiceID       string `json:"invoice_id"`
	InvoiceNumber   string `json:"invoice_number"`
	InvoicePayment  string `json:"invoice_payment"`
	InvoiceNet      string `json:"invoice_net"`
	RemainingAmount string `json:"remaining_amount"`
	DueDaysRemain   int    `json:"due_days_remain"`
	CurrencyName    string `json:"currency_name"`
}

// Reminder is one outbound payment reminder.
type Reminder struct {
	Phone          string
	CustomerName   string
	CurrentBalance string
	Currency       string
	Invoices       []Invoice
}

// Sender submits a reminder to one messaging channel. Implementations do not
// retry; the caller sees a single descriptive failure. Send returns the body
// text actually submitted so it can be audited.
type Sender interface {
	Send(ctx context.Context, r Reminder) (string, error)
}

// Dispatcher routes a reminder to the requested channel and persists the
// audit trail on success.
type Dispatcher struct {
	sms      Sender
	whatsapp Sender
}

func NewDispatcher(sms, whatsapp Sender) *Dispatcher {
	return &Dispatcher{sms: sms, whatsapp: whatsapp}
}

// Send dispatches the reminder and, only after the gateway accepted it,
// records one SentMessage row plus one SentInvoice row per included invoice
// in the tenant database.
func (d *Dispatcher) Send(ctx context.Context, db *gorm.DB, channel string, r Reminder, sentBy uuid.UUID) error {
	var sender Sender
	switch channel {
	case "sms":
		sender = d.sms
	case "whatsapp":
		sender = d.whatsapp
	default:
		return fmt.Errorf("invalid notification type: %s", channel)
	}

	body, err := sender.Send(ctx, r)
	if err != nil {
		return err
	}
	return recordSent(db, r, body, sentBy)
}

func recordSent(db *gorm.DB, r Reminder, body string, sentBy uuid.UUID) error {
	return db.Transaction(func(tx *gorm.DB) error {
		message := &models.SentMessage{
			ID:           uuid.New(),
			Phone:        r.Phone,
			Message:      body,
			CustomerName: r.CustomerName,
			SentBy:       sentBy,
			SendDate:     time.Now(),
		}
		if err := tx.Create(message).Error; err != nil {
			return err
		}
		for _, inv := range r.Invoices {
			sent := &models.SentInvoice{
				ID:              uuid.New(),
				MessageID:       message.ID,
				InvoiceID:       inv.InvoiceID,
				InvoiceNumber:   inv.InvoiceNumber,
				InvoicePayment:  ParseAmount(inv.InvoicePayment),
				InvoiceNet:      ParseAmount(inv.InvoiceNet),
				RemainingAmount: ParseAmount(inv.RemainingAmount),
				DueDaysRemain:   inv.DueDaysRemain,
			}
			if err := tx.Create(sent).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
