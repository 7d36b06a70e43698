package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"erp-reporting-backend/internal/auth"
	"erp-reporting-backend/internal/services/notify"
	"erp-reporting-backend/internal/tenant"
)

type RemindersHandler struct {
	resolver   *tenant.Resolver
	dispatcher *notify.Dispatcher
}

func NewRemindersHandler(resolver *tenant.Resolver, dispatcher *notify.Dispatcher) *RemindersHandler {
	return &RemindersHandler{resolver: resolver, dispatcher: dispatcher}
}

func (h *RemindersHandler) SendSMS(c *gin.Context) {
	h.send(c, "sms")
}

func (h *RemindersHandler) SendWhatsApp(c *gin.Context) {
	h.send(c, "whatsapp")
}

// send validates the reminder payload, derives the current balance from the
// submitted invoices and dispatches through the requested channel.
func (h *RemindersHandler) send(c *gin.Context, channel string) {
	var payload struct {
		Phone        string           `json:"phone"`
		CustomerName string           `json:"customerName"`
		Invoices     []notify.Invoice `json:"invoices"`
	}
	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	if payload.Phone == "" || payload.CustomerName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "phone and customer name are required"})
		return
	}
	if len(payload.Invoices) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "at least one invoice is required"})
		return
	}

	user := auth.CurrentUser(c)
	db, err := h.resolver.DB(user)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var balance float64
	for _, inv := range payload.Invoices {
		balance += notify.ParseAmount(inv.RemainingAmount)
	}

	reminder := notify.Reminder{
		Phone:          payload.Phone,
		CustomerName:   payload.CustomerName,
		CurrentBalance: notify.FormatAmount(balance),
		Currency:       payload.Invoices[0].CurrencyName,
		Invoices:       payload.Invoices,
	}

	if err := h.dispatcher.Send(c.Request.Context(), db, channel, reminder, user.ID); err != nil {
		log.Error().Err(err).Str("channel", channel).Str("phone", payload.Phone).Msg("reminder failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "reminder sent"})
}
