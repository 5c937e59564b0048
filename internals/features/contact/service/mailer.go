package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html"
	"net/http"
	"strings"
	"time"

	"chariots_backend/internals/configs"
)

const resendEndpoint = "https://api.resend.com/emails"

var httpClient = &http.Client{Timeout: 10 * time.Second}

type resendPayload struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

type ContactEmailInput struct {
	Name        string
	Email       string
	Phone       *string
	InquiryType string
	Message     string
}

// SendContactEmails delivers the customer confirmation and the operator
// notification through the Resend API. Callers treat failure as best-effort:
// the contact submission is already persisted.
func SendContactEmails(in ContactEmailInput) error {
	apiKey := configs.ResendAPIKey
	if apiKey == "" {
		return fmt.Errorf("RESEND_API_KEY not configured")
	}

	inquiry := strings.ReplaceAll(in.InquiryType, "_", " ")

	customer := resendPayload{
		From:    "Golf Chariots <onboarding@resend.dev>",
		To:      []string{in.Email},
		Subject: "We received your message!",
		HTML: fmt.Sprintf(
			`<h2>Thank you for contacting us, %s!</h2>`+
				`<p>We have received your %s inquiry and will get back to you within 24 hours.</p>`+
				`<p><strong>Your message:</strong></p><p>%s</p>`,
			html.EscapeString(in.Name),
			html.EscapeString(inquiry),
			html.EscapeString(in.Message),
		),
	}
	if err := sendResend(apiKey, customer); err != nil {
		return fmt.Errorf("customer email: %w", err)
	}

	phone := ""
	if in.Phone != nil {
		phone = *in.Phone
	}
	admin := resendPayload{
		From:    "Golf Chariots Website <onboarding@resend.dev>",
		To:      []string{configs.AdminInboxEmail},
		Subject: fmt.Sprintf("New Contact Form Submission: %s", in.InquiryType),
		HTML: fmt.Sprintf(
			`<h2>New Contact Form Submission</h2>`+
				`<p><strong>Name:</strong> %s</p>`+
				`<p><strong>Email:</strong> %s</p>`+
				`<p><strong>Phone:</strong> %s</p>`+
				`<p><strong>Inquiry Type:</strong> %s</p>`+
				`<p><strong>Message:</strong></p><p>%s</p>`,
			html.EscapeString(in.Name),
			html.EscapeString(in.Email),
			html.EscapeString(phone),
			html.EscapeString(in.InquiryType),
			html.EscapeString(in.Message),
		),
	}
	if err := sendResend(apiKey, admin); err != nil {
		return fmt.Errorf("admin email: %w", err)
	}

	return nil
}

func sendResend(apiKey string, payload resendPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, resendEndpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+apiKey)

	resp, err := httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("resend responded with %s", resp.Status)
	}
	return nil
}
