package page

import (
	"fmt"
	"log"
	"time"

	"github.com/dvl-uiux/portfolio/cache"
	"github.com/dvl-uiux/portfolio/contact"
	"github.com/dvl-uiux/portfolio/content"
)

// MaxSessions bounds the number of pages held in memory at once.
const MaxSessions = 10000

// Store keeps live page sessions. A session leaves the store when its page
// unmounts, when its TTL runs out, or when the store is full; in every case
// it is closed.
type Store struct {
	sessions *cache.Cache[*Session]
}

func NewStore(ttl time.Duration) (*Store, error) {
	sessions, err := cache.NewWithOptions[*Session](nil, "Page Sessions", cache.Options[*Session]{
		MaxCost:    MaxSessions,
		TTL:        ttl,
		CountItems: true,
		OnEvict: func(s *Session) {
			// Touch replaces an entry with itself; that is not an exit.
			if s == nil || s.touches.Load() > 0 {
				return
			}
			s.Close()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create session cache: %w", err)
	}
	return &Store{sessions: sessions}, nil
}

// Create mounts a new page for doc.
func (st *Store) Create(doc *content.Document, sender contact.Sender) *Session {
	s := NewSession(doc, sender)
	if !st.sessions.Set(s.ID, s, 1) {
		log.Printf("[PAGE] Session %s dropped by cache; page will be stateless", s.ID)
	}
	st.sessions.Wait()
	return s
}

// Get returns the session for id if the page is still mounted.
func (st *Store) Get(id string) (*Session, bool) {
	if id == "" {
		return nil, false
	}
	return st.sessions.Get(id)
}

// Touch restarts the idle timeout of s. Pages in use never expire; only
// pages left alone for the whole TTL do.
func (st *Store) Touch(s *Session) {
	s.touches.Add(1)
	defer s.touches.Add(-1)
	st.sessions.Set(s.ID, s, 1)
}

// Unmount closes and forgets the session for id.
func (st *Store) Unmount(id string) bool {
	s, ok := st.Get(id)
	if !ok {
		return false
	}
	s.Close()
	st.sessions.Del(id)
	return true
}

// Stats reports the session cache metrics.
func (st *Store) Stats() map[string]interface{} {
	return st.sessions.Stats()
}

// Close closes every session and stops the store.
func (st *Store) Close() {
	st.sessions.Clear()
	st.sessions.Close()
}
