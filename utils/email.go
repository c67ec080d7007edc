package utils

import (
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// EmailService handles sending emails using SendGrid.
type EmailService struct {
	client *sendgrid.Client
	sender string
}

// NewEmailService initializes the email service. Returns nil when no API
// key is configured; callers treat a nil service as mail disabled.
func NewEmailService(apiKey, sender string) *EmailService {
	if apiKey == "" {
		return nil
	}
	return &EmailService{
		client: sendgrid.NewSendClient(apiKey),
		sender: sender,
	}
}

// SendEmail sends a plain-text email to the specified recipient.
func (es *EmailService) SendEmail(toEmail, subject, content string) error {
	from := mail.NewEmail("Bikerz Heaven", es.sender)
	to := mail.NewEmail("", toEmail)
	message := mail.NewSingleEmail(from, subject, to, content, content)

	resp, err := es.client.Send(message)
	if err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("send email: sendgrid responded %d", resp.StatusCode)
	}
	return nil
}

// SendOrderConfirmation notifies a buyer that their order was placed.
func (es *EmailService) SendOrderConfirmation(toEmail, partName string, quantity int64) error {
	subject := "Order Confirmation - Bikerz Heaven"
	content := fmt.Sprintf(
		"Dear Customer,\n\nYour order for %d x %s has been placed successfully. Complete the payment from your dashboard to start the delivery.\n\nThank you for shopping with Bikerz Heaven!\n",
		quantity, partName,
	)
	return es.SendEmail(toEmail, subject, content)
}
