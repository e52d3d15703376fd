package page

import (
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/dvl-uiux/portfolio/config"
	"github.com/dvl-uiux/portfolio/contact"
	"github.com/dvl-uiux/portfolio/content"
	"github.com/dvl-uiux/portfolio/metrics"
	"github.com/dvl-uiux/portfolio/nav"
	"github.com/dvl-uiux/portfolio/project"
	"github.com/dvl-uiux/portfolio/visibility"
)

// Session is the interaction state of one loaded page. Its parts are
// independent and each guards its own state.
type Session struct {
	ID       string
	Created  time.Time
	Content  *content.Document
	Projects *project.List
	Sections *visibility.Tracker
	Form     *contact.Form
	Nav      *nav.Dispatcher

	closeOnce    sync.Once
	unsubscribes []func()
	touches      atomic.Int32
}

// NewSession mounts a page for doc. The project list starts in the
// document's literal order.
func NewSession(doc *content.Document, sender contact.Sender) *Session {
	s := &Session{
		ID:       uuid.NewString(),
		Created:  time.Now(),
		Content:  doc,
		Projects: project.NewList(doc.Projects),
		Sections: visibility.NewTracker(config.VisibilityThreshold, content.Sections...),
		Form:     contact.NewForm(sender),
		Nav:      nav.NewDispatcher(content.Sections...),
	}

	s.unsubscribes = append(s.unsubscribes,
		s.Sections.Subscribe(func(section string) {
			metrics.SectionReveals.WithLabelValues(section).Inc()
		}),
		s.Nav.Subscribe(func(scrolled bool) {
			style := "top"
			if scrolled {
				style = "scrolled"
			}
			metrics.NavStyleChanges.WithLabelValues(style).Inc()
		}),
	)

	metrics.PageSessions.Inc()
	metrics.ActiveSessions.Inc()
	return s
}

// Close unmounts the page: a contact send still in flight has its result
// discarded and every listener is released. Close is idempotent.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		s.Form.Close()
		if d := s.Projects.Active(); d != nil {
			d.Cancel()
		}
		for _, unsubscribe := range s.unsubscribes {
			unsubscribe()
		}
		s.unsubscribes = nil
		metrics.ActiveSessions.Dec()
		log.Printf("[PAGE] Session %s closed after %v", s.ID, time.Since(s.Created).Round(time.Second))
	})
}
