package visibility

import (
	"sync"
)

// Listener is called once for every section that becomes visible.
type Listener func(section string)

// Tracker holds the one-shot visibility flag of every watched section.
// A flag goes from false to true once and never back.
type Tracker struct {
	mu        sync.Mutex
	threshold float64
	flags     map[string]bool
	order     []string
	listeners map[int]Listener
	nextID    int
}

// NewTracker watches the given sections. threshold is the minimum
// intersection ratio that counts as visible; 0 means any intersection.
func NewTracker(threshold float64, sections ...string) *Tracker {
	if threshold < 0 {
		threshold = 0
	}
	if threshold > 1 {
		threshold = 1
	}
	t := &Tracker{
		threshold: threshold,
		flags:     make(map[string]bool, len(sections)),
		listeners: make(map[int]Listener),
	}
	for _, s := range sections {
		if _, ok := t.flags[s]; ok {
			continue
		}
		t.flags[s] = false
		t.order = append(t.order, s)
	}
	return t
}

// Observe records an intersection report for section and reports whether
// this call flipped its flag.
func (t *Tracker) Observe(section string, ratio float64) bool {
	t.mu.Lock()
	visible, watched := t.flags[section]
	if !watched || visible || ratio <= 0 || ratio < t.threshold {
		t.mu.Unlock()
		return false
	}
	t.flags[section] = true
	listeners := make([]Listener, 0, len(t.listeners))
	for id := 0; id < t.nextID; id++ {
		if l, ok := t.listeners[id]; ok {
			listeners = append(listeners, l)
		}
	}
	t.mu.Unlock()

	for _, l := range listeners {
		l(section)
	}
	return true
}

// Visible reports the flag of section. Unknown sections are never visible.
func (t *Tracker) Visible(section string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.flags[section]
}

// Watched reports whether section is tracked.
func (t *Tracker) Watched(section string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, ok := t.flags[section]
	return ok
}

// Snapshot returns a copy of every flag.
func (t *Tracker) Snapshot() map[string]bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make(map[string]bool, len(t.flags))
	for k, v := range t.flags {
		out[k] = v
	}
	return out
}

// Sections returns the watched sections in registration order.
func (t *Tracker) Sections() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]string(nil), t.order...)
}

// Subscribe registers l and returns a function that removes it. Calling
// the returned function more than once is harmless.
func (t *Tracker) Subscribe(l Listener) (unsubscribe func()) {
	t.mu.Lock()
	id := t.nextID
	t.nextID++
	t.listeners[id] = l
	t.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			t.mu.Lock()
			delete(t.listeners, id)
			t.mu.Unlock()
		})
	}
}

// Listeners returns the number of registered listeners.
func (t *Tracker) Listeners() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.listeners)
}
