package contact

import (
	"context"
	"log"
	"time"
)

// Simulated is the sender used when nothing real is configured: it waits
// for Delay and succeeds.
type Simulated struct {
	Delay time.Duration
}

func (s Simulated) Send(ctx context.Context, msg Message) error {
	timer := time.NewTimer(s.Delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
	}
	log.Printf("[CONTACT] Simulated delivery of message from %s", msg.Email)
	return nil
}
