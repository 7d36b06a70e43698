package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"erp-reporting-backend/internal/config"
)

// WhatsApp template body text must stay under the platform's length limit;
// once the assembled invoice list passes this many characters it is cut off
// with a "see your account" suffix.
const whatsappBodyLimit = 1000

// WhatsAppSender submits a templated reminder to the WhatsApp Business API
// with bearer-token auth.
type WhatsAppSender struct {
	cfg    config.Config
	client *http.Client
}

func NewWhatsAppSender(cfg config.Config) *WhatsAppSender {
	return &WhatsAppSender{
		cfg:    cfg,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

// BuildInvoiceList assembles the per-invoice detail lines of the template
// body, truncating once the text exceeds the length limit.
func BuildInvoiceList(invoices []Invoice) string {
	if len(invoices) == 0 {
		return " "
	}

	body := "تفاصيل اخر فواتير هي كالتالي:\\n"
	for i, inv := range invoices {
		body += fmt.Sprintf("%d. فاتورة رقم %s: بقيمة إجمالية %s %s, المبلغ المتبقي %s %s. تأخرت عن موعد سدادها %d يوم.\\n",
			i+1, inv.InvoiceNumber,
			roundWhole(inv.InvoiceNet), inv.CurrencyName,
			roundWhole(inv.RemainingAmount), inv.CurrencyName,
			inv.DueDaysRemain)
		if len([]rune(body)) > whatsappBodyLimit {
			body += "...\\nللمزيد من التفاصيل، يرجى مراجعة الحساب الخاص بكم."
			break
		}
	}
	return body
}

type whatsappParameter struct {
	Type  string            `json:"type"`
	Text  string            `json:"text,omitempty"`
	Image map[string]string `json:"image,omitempty"`
}

type whatsappComponent struct {
	Type       string              `json:"type"`
	Parameters []whatsappParameter `json:"parameters"`
}

type whatsappPayload struct {
	MessagingProduct string `json:"messaging_product"`
	To               string `json:"to"`
	Type             string `json:"type"`
	Template         struct {
		Name       string              `json:"name"`
		Language   map[string]string   `json:"language"`
		Components []whatsappComponent `json:"components"`
	} `json:"template"`
}

func (s *WhatsAppSender) Send(ctx context.Context, r Reminder) (string, error) {
	phone := NormalizePhone(r.Phone, s.cfg.CountryCode)
	body := BuildInvoiceList(r.Invoices)

	payload := whatsappPayload{
		MessagingProduct: "whatsapp",
		To:               phone,
		Type:             "template",
	}
	payload.Template.Name = s.cfg.WhatsAppTemplate
	payload.Template.Language = map[string]string{"code": s.cfg.WhatsAppLanguage}
	payload.Template.Components = []whatsappComponent{
		{
			Type: "header",
			Parameters: []whatsappParameter{
				{Type: "image", Image: map[string]string{"link": s.cfg.WhatsAppImageURL}},
			},
		},
		{
			Type: "body",
			Parameters: []whatsappParameter{
				{Type: "text", Text: r.CustomerName},
				{Type: "text", Text: fmt.Sprintf("%s %s", r.CurrentBalance, r.Currency)},
				{Type: "text", Text: body},
			},
		},
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.WhatsAppURL, bytes.NewReader(raw))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+s.cfg.WhatsAppToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send WhatsApp message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		text, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("failed to send WhatsApp message, response status: %d %s: %s",
			resp.StatusCode, http.StatusText(resp.StatusCode), string(text))
	}

	var result struct {
		Error *struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode WhatsApp API response: %w", err)
	}
	if result.Error != nil {
		if result.Error.Message != "" {
			return "", fmt.Errorf("WhatsApp API error: %s", result.Error.Message)
		}
		return "", fmt.Errorf("unknown error from WhatsApp API")
	}

	return body, nil
}
