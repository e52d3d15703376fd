package sms

import (
	"fmt"
	"log"

	"github.com/twilio/twilio-go"
	Api "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/dvl-uiux/portfolio/contact"
)

// SMS bodies longer than this are truncated.
const maxPreview = 120

// messageCreator is the part of the Twilio client the service uses.
type messageCreator interface {
	CreateMessage(params *Api.CreateMessageParams) (*Api.ApiV2010Message, error)
}

// SMSService texts the site owner when a contact message arrives.
type SMSService struct {
	api  messageCreator
	from string
	to   string
}

// NewSMSService creates a new SMS service instance
func NewSMSService(accountSid, authToken, fromNumber, toNumber string) (*SMSService, error) {
	if accountSid == "" || authToken == "" || fromNumber == "" || toNumber == "" {
		return nil, fmt.Errorf("missing Twilio configuration")
	}

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSid,
		Password: authToken,
	})

	return &SMSService{
		api:  client.Api,
		from: fromNumber,
		to:   toNumber,
	}, nil
}

// NotifyContact sends the owner a short summary of msg.
func (s *SMSService) NotifyContact(msg contact.Message) error {
	params := &Api.CreateMessageParams{}
	params.SetTo(s.to)
	params.SetFrom(s.from)
	params.SetBody(summary(msg))

	_, err := s.api.CreateMessage(params)
	if err != nil {
		log.Printf("[SMS] Failed to send contact notification to %s: %v", s.to, err)
		return fmt.Errorf("failed to send SMS: %w", err)
	}

	log.Printf("[SMS] Contact notification sent to %s", s.to)
	return nil
}

func summary(msg contact.Message) string {
	preview := []rune(msg.Message)
	text := string(preview)
	if len(preview) > maxPreview {
		text = string(preview[:maxPreview]) + "…"
	}
	return fmt.Sprintf("New portfolio message from %s <%s>: %s", msg.Name, msg.Email, text)
}

// MockSMSService records notifications instead of sending them.
type MockSMSService struct {
	Sent []string
}

func (m *MockSMSService) NotifyContact(msg contact.Message) error {
	m.Sent = append(m.Sent, summary(msg))
	log.Printf("[MOCK SMS] Contact notification for message from %s", msg.Email)
	return nil
}
