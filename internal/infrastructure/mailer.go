package infrastructure

import (
	"fmt"
	"log"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Mailer sends the welcome email after sign-up. With no API key configured
// it is a no-op; mail delivery is never on the request's critical path.
type Mailer struct {
	apiKey string
	sender string
}

func NewMailer(apiKey, sender string) *Mailer {
	return &Mailer{
		apiKey: apiKey,
		sender: sender,
	}
}

func (m *Mailer) SendWelcome(recipientEmail, name string) error {
	if m == nil || m.apiKey == "" {
		return nil
	}

	from := mail.NewEmail("Website Movies", m.sender)
	subject := "Welcome to Website Movies"
	to := mail.NewEmail(name, recipientEmail)

	plainTextContent := fmt.Sprintf("Hi %s, your account is ready. Enjoy the movies!", name)
	htmlContent := fmt.Sprintf("<strong>Hi %s, your account is ready. Enjoy the movies!</strong>", name)

	message := mail.NewSingleEmail(from, subject, to, plainTextContent, htmlContent)
	client := sendgrid.NewSendClient(m.apiKey)
	response, err := client.Send(message)
	if err != nil {
		log.Println("Failed to send welcome email:", err)
		return err
	}

	log.Println("Welcome email sent. Status Code:", response.StatusCode)
	return nil
}
