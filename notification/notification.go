package notification

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/dvl-uiux/portfolio/contact"
	"github.com/dvl-uiux/portfolio/metrics"
)

// Store persists a contact message.
type Store func(ctx context.Context, msg contact.Message) (int64, error)

// Notifier tells the owner about a stored message.
type Notifier interface {
	NotifyContact(msg contact.Message) error
}

// NotificationService delivers contact messages: it stores each one and then
// notifies the owner on every configured channel. It implements contact.Sender.
type NotificationService struct {
	store     Store
	notifiers map[string]Notifier
}

// NewNotificationService needs a store; notifiers are optional.
func NewNotificationService(store Store, notifiers map[string]Notifier) (*NotificationService, error) {
	if store == nil {
		return nil, fmt.Errorf("notification service needs a message store")
	}
	active := make(map[string]Notifier, len(notifiers))
	for name, n := range notifiers {
		if n != nil {
			active[name] = n
		}
	}
	if len(active) == 0 {
		log.Printf("Warning: no contact notifiers configured, messages will only be stored")
	}
	return &NotificationService{store: store, notifiers: active}, nil
}

// Send stores msg. Storage failure fails the send; notification failures are
// logged since the message is already safe in the inbox.
func (n *NotificationService) Send(ctx context.Context, msg contact.Message) error {
	start := time.Now()
	defer func() {
		metrics.ContactSendDuration.Observe(time.Since(start).Seconds())
	}()

	id, err := n.store(ctx, msg)
	if err != nil {
		return fmt.Errorf("store contact message: %w", err)
	}
	log.Printf("[CONTACT] Stored message %d from %s", id, msg.Email)

	for name, notifier := range n.notifiers {
		if err := notifier.NotifyContact(msg); err != nil {
			log.Printf("Warning: %s notification for message %d failed: %v", name, id, err)
		}
	}
	return nil
}
