package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"erp-reporting-backend/internal/config"
)

// SMSSender submits reminders to the SMS gateway: a GET request with token,
// device, phone and message query parameters, answered by a JSON body whose
// "code" is "0" on success.
type SMSSender struct {
	cfg    config.Config
	client *http.Client
}

func NewSMSSender(cfg config.Config) *SMSSender {
	return &SMSSender{
		cfg:    cfg,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

func (s *SMSSender) Send(ctx context.Context, r Reminder) (string, error) {
	message := fmt.Sprintf(
		"عزيزي %s, عليكم مستحقات بمبلغ %s %s. يرجى تسويتها في أسرع وقت ممكن لضمان استمرارية الخدمة. لأي استفسار، يرجى الاتصال على %s.",
		r.CustomerName, r.CurrentBalance, r.Currency, s.cfg.SupportPhone)

	phone := NormalizePhone(r.Phone, s.cfg.CountryCode)

	params := url.Values{}
	params.Set("token", s.cfg.SMSToken)
	params.Set("device", s.cfg.SMSDevice)
	params.Set("phone", phone)
	params.Set("msg", message)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.cfg.SMSGatewayURL+"?"+params.Encode(), nil)
	if err != nil {
		return "", err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send SMS: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("failed to send SMS, response status: %d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	var result struct {
		Code  string `json:"code"`
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode SMS gateway response: %w", err)
	}

	if result.Code != "0" {
		if result.Error != "" {
			return "", fmt.Errorf("SMS gateway error: %s", result.Error)
		}
		return "", fmt.Errorf("message sending failed, code: %s", result.Code)
	}

	return message, nil
}
