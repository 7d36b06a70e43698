package notify

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"erp-reporting-backend/internal/config"
)

func smsConfig(gatewayURL string) config.Config {
	return config.Config{
		SMSGatewayURL: gatewayURL,
		SMSToken:      "test-token",
		SMSDevice:     "active",
		CountryCode:   "218",
		SupportPhone:  "0914567777",
	}
}

func reminder() Reminder {
	return Reminder{
		Phone:          "0912345678",
		CustomerName:   "Test Customer",
		CurrentBalance: "150.00",
		Currency:       "LYD",
		Invoices: []Invoice{
			{InvoiceID: "1", InvoiceNumber: "INV-1", InvoiceNet: "80.00", RemainingAmount: "20.00", DueDaysRemain: -3, CurrencyName: "LYD"},
		},
	}
}

func TestSMSSenderSuccess(t *testing.T) {
	var gotQuery map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		gotQuery = map[string]string{
			"token":  q.Get("token"),
			"device": q.Get("device"),
			"phone":  q.Get("phone"),
			"msg":    q.Get("msg"),
		}
		w.Write([]byte(`{"code":"0"}`))
	}))
	defer server.Close()

	sender := NewSMSSender(smsConfig(server.URL))
	body, err := sender.Send(context.Background(), reminder())
	if err != nil {
		t.Fatalf("Send() error = %v", err)
	}

	if gotQuery["token"] != "test-token" || gotQuery["device"] != "active" {
		t.Errorf("unexpected gateway params: %v", gotQuery)
	}
	if gotQuery["phone"] != "218912345678" {
		t.Errorf("phone = %q, want normalized 218912345678", gotQuery["phone"])
	}
	if !strings.Contains(gotQuery["msg"], "150.00 LYD") {
		t.Errorf("message %q does not mention the balance", gotQuery["msg"])
	}
	if body != gotQuery["msg"] {
		t.Errorf("returned body differs from submitted message")
	}
}

func TestSMSSenderGatewayError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"code":"5","error":"device offline"}`))
	}))
	defer server.Close()

	sender := NewSMSSender(smsConfig(server.URL))
	_, err := sender.Send(context.Background(), reminder())
	if err == nil {
		t.Fatal("Send() expected error for non-zero gateway code")
	}
	if !strings.Contains(err.Error(), "device offline") {
		t.Errorf("error %q should surface the upstream error text", err)
	}
}

func TestSMSSenderHTTPFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	sender := NewSMSSender(smsConfig(server.URL))
	_, err := sender.Send(context.Background(), reminder())
	if err == nil {
		t.Fatal("Send() expected error for non-200 response")
	}
}

func whatsappConfig(apiURL string) config.Config {
	return config.Config{
		WhatsAppURL:      apiURL,
		WhatsAppToken:    "wa-token",
		WhatsAppTemplate: "invoice_remainder",
		WhatsAppLanguage: "ar",
		WhatsAppImageURL: "https://example.com/header.jpg",
		CountryCode:      "218",
	}
}

func TestWhatsAppSenderSuccess(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"messages":[{"id":"wamid.1"}]}`))
	}))
	defer server.Close()

	sender := NewWhatsAppSender(whatsappConfig(server.URL))
	body, err := sender.Send(context.Background(), reminder())
	if err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	if gotAuth != "Bearer wa-token" {
		t.Errorf("Authorization = %q, want bearer token", gotAuth)
	}
	if !strings.Contains(body, "INV-1") {
		t.Errorf("body %q should list the invoice number", body)
	}
}

func TestWhatsAppSenderAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error":{"message":"template not found"}}`))
	}))
	defer server.Close()

	sender := NewWhatsAppSender(whatsappConfig(server.URL))
	_, err := sender.Send(context.Background(), reminder())
	if err == nil {
		t.Fatal("Send() expected error for API error body")
	}
	if !strings.Contains(err.Error(), "template not found") {
		t.Errorf("error %q should surface the upstream message", err)
	}
}

func TestBuildInvoiceListTruncation(t *testing.T) {
	var invoices []Invoice
	for i := 0; i < 60; i++ {
		invoices = append(invoices, Invoice{
			InvoiceNumber:   "INV-134679258",
			InvoiceNet:      "1,234,567.00",
			RemainingAmount: "1,000,000.00",
			DueDaysRemain:   -12,
			CurrencyName:    "LYD",
		})
	}

	body := BuildInvoiceList(invoices)
	if !strings.Contains(body, "...") {
		t.Error("long invoice list should be truncated with an ellipsis")
	}
	// The limit plus one final line plus the suffix bounds the total length.
	if n := len([]rune(body)); n > whatsappBodyLimit+300 {
		t.Errorf("truncated body still %d runes long", n)
	}
}

func TestBuildInvoiceListEmpty(t *testing.T) {
	if got := BuildInvoiceList(nil); got != " " {
		t.Errorf("BuildInvoiceList(nil) = %q, want single space placeholder", got)
	}
}
