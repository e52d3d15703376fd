// Package inbox stores contact messages received through the site.
package inbox

import (
	"context"
	"fmt"
	"time"

	"github.com/dvl-uiux/portfolio/contact"
	"github.com/dvl-uiux/portfolio/db"
)

// Entry is a stored contact message.
type Entry struct {
	ID        int64
	Name      string
	Email     string
	Message   string
	CreatedAt time.Time
}

// Save stores msg and returns its id.
func Save(ctx context.Context, msg contact.Message) (int64, error) {
	res, err := db.Get().ExecContext(ctx,
		"INSERT INTO ContactMessage (name, email, message, created_at) VALUES (?, ?, ?, ?)",
		msg.Name, msg.Email, msg.Message, time.Now().UTC())
	if err != nil {
		return 0, fmt.Errorf("insert contact message: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("contact message id: %w", err)
	}
	return id, nil
}

// List returns the newest messages first.
func List(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := db.Get().QueryContext(ctx,
		"SELECT id, name, email, message, created_at FROM ContactMessage ORDER BY created_at DESC, id DESC LIMIT ?",
		limit)
	if err != nil {
		return nil, fmt.Errorf("query contact messages: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Name, &e.Email, &e.Message, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan contact message: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Count returns the number of stored messages.
func Count(ctx context.Context) (int, error) {
	var n int
	if err := db.Get().QueryRowContext(ctx, "SELECT COUNT(*) FROM ContactMessage").Scan(&n); err != nil {
		return 0, fmt.Errorf("count contact messages: %w", err)
	}
	return n, nil
}
