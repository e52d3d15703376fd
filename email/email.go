package email

import (
	"encoding/json"
	"fmt"
	"html"
	"log"
	"strings"
	"time"

	"github.com/valyala/fasthttp"

	"github.com/dvl-uiux/portfolio/contact"
)

const sendGridURL = "https://api.sendgrid.com/v3/mail/send"

// EmailService sends the site owner a copy of each contact message via
// Twilio SendGrid.
type EmailService struct {
	apiKey   string
	from     string
	to       string
	endpoint string
	client   *fasthttp.Client
}

type address struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type personalization struct {
	To []address `json:"to"`
}

// Content represents the content of an email
type Content struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type mail struct {
	Personalizations []personalization `json:"personalizations"`
	From             address           `json:"from"`
	ReplyTo          *address          `json:"reply_to,omitempty"`
	Subject          string            `json:"subject"`
	Content          []Content         `json:"content"`
}

// NewEmailService creates a new email service instance
func NewEmailService(apiKey, from, to string) (*EmailService, error) {
	if apiKey == "" || from == "" || to == "" {
		return nil, fmt.Errorf("missing SendGrid configuration")
	}

	return &EmailService{
		apiKey:   apiKey,
		from:     from,
		to:       to,
		endpoint: sendGridURL,
		client: &fasthttp.Client{
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
		},
	}, nil
}

// SendEmail sends an email via SendGrid
func (s *EmailService) SendEmail(to, replyTo, subject, htmlBody string) error {
	m := mail{
		Personalizations: []personalization{{To: []address{{Email: to}}}},
		From:             address{Email: s.from},
		Subject:          subject,
		Content:          []Content{{Type: "text/html", Value: htmlBody}},
	}
	if replyTo != "" {
		m.ReplyTo = &address{Email: replyTo}
	}

	body, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to marshal email: %w", err)
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(s.endpoint)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.SetContentType("application/json")
	req.SetBody(body)

	if err := s.client.DoTimeout(req, resp, 10*time.Second); err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}

	if resp.StatusCode() >= 400 {
		return fmt.Errorf("SendGrid API error: %d", resp.StatusCode())
	}

	log.Printf("[EMAIL] Email sent successfully to %s", to)
	return nil
}

// NotifyContact emails the owner the contents of a contact message. The
// visitor's address is set as Reply-To.
func (s *EmailService) NotifyContact(msg contact.Message) error {
	subject := fmt.Sprintf("Portfolio Contact: %s", msg.Name)
	return s.SendEmail(s.to, msg.Email, subject, contactBody(msg))
}

func contactBody(msg contact.Message) string {
	message := strings.ReplaceAll(html.EscapeString(msg.Message), "\n", "<br>")
	return fmt.Sprintf(`
<html>
<head>
    <title>New Contact Message</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #2d3436; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .message-box { background-color: #f5f7fa; padding: 15px; border-radius: 8px; margin: 20px 0; }
        .footer { margin-top: 30px; font-size: 12px; color: #636e72; }
    </style>
</head>
<body>
    <div class="container">
        <h2>New contact form submission</h2>
        <p><strong>Name:</strong> %s</p>
        <p><strong>Email:</strong> %s</p>
        <div class="message-box">%s</div>
        <div class="footer">Sent from your portfolio contact form</div>
    </div>
</body>
</html>`, html.EscapeString(msg.Name), html.EscapeString(msg.Email), message)
}

// MockEmailService records notifications instead of sending them.
type MockEmailService struct {
	Sent []contact.Message
	Err  error
}

func (m *MockEmailService) NotifyContact(msg contact.Message) error {
	if m.Err != nil {
		return m.Err
	}
	m.Sent = append(m.Sent, msg)
	log.Printf("[MOCK EMAIL] Contact notification for message from %s", msg.Email)
	return nil
}
