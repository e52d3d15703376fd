package contact

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"
)

const (
	SuccessMessage = "Message sent successfully! I will get back to you soon."
	FailureMessage = "Failed to send message. Please try again."
)

var (
	// ErrSubmitInFlight is returned when a submit arrives while another is sending.
	ErrSubmitInFlight = errors.New("contact: submission already in flight")
	// ErrDiscarded is returned when the form was closed before the send resolved.
	ErrDiscarded = errors.New("contact: form closed before send resolved")
)

// Status is the submission lifecycle of the form.
type Status int

const (
	StatusIdle Status = iota
	StatusSending
	StatusSucceeded
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusSending:
		return "sending"
	case StatusSucceeded:
		return "succeeded"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Field names accepted by Set.
const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldMessage = "message"
)

// Message is what gets handed to the Sender.
type Message struct {
	Name    string
	Email   string
	Message string
}

// Sender delivers a contact message somewhere outside the page.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// SenderFunc adapts a function to Sender.
type SenderFunc func(ctx context.Context, msg Message) error

func (f SenderFunc) Send(ctx context.Context, msg Message) error {
	return f(ctx, msg)
}

// State is a snapshot of the form.
type State struct {
	Message
	Status        Status
	StatusMessage string
}

// Form holds the three contact fields and the submission status.
type Form struct {
	mu     sync.Mutex
	sender Sender
	state  State
	closed bool
}

func NewForm(sender Sender) *Form {
	return &Form{sender: sender}
}

// State returns a snapshot of the form.
func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Edit is one field change carried by a submit.
type Edit struct {
	Field string
	Value string
}

// Set updates one field. Unknown field names are ignored and reported as false.
func (f *Form) Set(field, value string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.setLocked(field, value)
}

func (f *Form) setLocked(field, value string) bool {
	switch field {
	case FieldName:
		f.state.Name = value
	case FieldEmail:
		f.state.Email = value
	case FieldMessage:
		f.state.Message.Message = value
	default:
		return false
	}
	return true
}

// Submit applies edits and sends the resulting fields. While a send is in
// flight further calls return ErrSubmitInFlight without touching the fields
// or reaching the sender. A failed send is not an error for the caller: it
// is recorded in the form state.
func (f *Form) Submit(ctx context.Context, edits ...Edit) error {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return ErrDiscarded
	}
	if f.state.Status == StatusSending {
		f.mu.Unlock()
		return ErrSubmitInFlight
	}
	for _, e := range edits {
		f.setLocked(e.Field, e.Value)
	}
	f.state.Status = StatusSending
	f.state.StatusMessage = ""
	msg := f.state.Message
	f.mu.Unlock()

	start := time.Now()
	err := f.sender.Send(ctx, msg)

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		log.Printf("[CONTACT] Discarding send result for closed form (err=%v)", err)
		return ErrDiscarded
	}
	if err != nil {
		log.Printf("[CONTACT] Send failed after %v: %v", time.Since(start), err)
		f.state.Status = StatusFailed
		f.state.StatusMessage = FailureMessage
		return nil
	}
	log.Printf("[CONTACT] Message from %s sent in %v", msg.Email, time.Since(start))
	f.state = State{Status: StatusSucceeded, StatusMessage: SuccessMessage}
	return nil
}

// Close detaches the form from its page. Results of sends still in flight
// are dropped.
func (f *Form) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
}

// Closed reports whether Close has been called.
func (f *Form) Closed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.closed
}
