package nav

import (
	"sync"
)

// ScrolledOffset is how far the window must scroll before the bar switches
// to its opaque style.
const ScrolledOffset = 50

// Scroll is the presentation effect for a resolved navigation.
type Scroll struct {
	Anchor   string `json:"anchor"`
	Behavior string `json:"behavior"`
}

// Dispatcher maps section ids to on-page anchors and owns the state of the
// navigation bar: the mobile overlay menu and the scrolled style.
type Dispatcher struct {
	mu        sync.Mutex
	anchors   map[string]string
	order     []string
	menuOpen  bool
	scrolled  bool
	listeners map[int]func(scrolled bool)
	nextID    int
}

// NewDispatcher registers the sections present in the document. Each
// section's anchor is its id.
func NewDispatcher(sections ...string) *Dispatcher {
	d := &Dispatcher{
		anchors:   make(map[string]string, len(sections)),
		listeners: make(map[int]func(bool)),
	}
	for _, s := range sections {
		if s == "" {
			continue
		}
		if _, ok := d.anchors[s]; ok {
			continue
		}
		d.anchors[s] = "#" + s
		d.order = append(d.order, s)
	}
	return d
}

// Sections returns the registered sections in document order.
func (d *Dispatcher) Sections() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]string(nil), d.order...)
}

// ScrollTo resolves section to a smooth scroll. When the section has no
// anchor it returns false and nothing changes. Otherwise an open mobile
// menu is closed.
func (d *Dispatcher) ScrollTo(section string) (Scroll, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	anchor, ok := d.anchors[section]
	if !ok {
		return Scroll{}, false
	}
	d.menuOpen = false
	return Scroll{Anchor: anchor, Behavior: "smooth"}, true
}

// ToggleMenu opens or closes the mobile menu and returns the new state.
func (d *Dispatcher) ToggleMenu() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.menuOpen = !d.menuOpen
	return d.menuOpen
}

func (d *Dispatcher) MenuOpen() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.menuOpen
}

func (d *Dispatcher) Scrolled() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.scrolled
}

// ReportScroll records the window's vertical scroll offset and reports
// whether the bar's style changed.
func (d *Dispatcher) ReportScroll(y float64) bool {
	d.mu.Lock()
	scrolled := y > ScrolledOffset
	if scrolled == d.scrolled {
		d.mu.Unlock()
		return false
	}
	d.scrolled = scrolled
	listeners := make([]func(bool), 0, len(d.listeners))
	for id := 0; id < d.nextID; id++ {
		if l, ok := d.listeners[id]; ok {
			listeners = append(listeners, l)
		}
	}
	d.mu.Unlock()

	for _, l := range listeners {
		l(scrolled)
	}
	return true
}

// Subscribe registers fn for scrolled-style changes and returns a function
// that removes it.
func (d *Dispatcher) Subscribe(fn func(scrolled bool)) (unsubscribe func()) {
	d.mu.Lock()
	id := d.nextID
	d.nextID++
	d.listeners[id] = fn
	d.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			d.mu.Lock()
			delete(d.listeners, id)
			d.mu.Unlock()
		})
	}
}

// Listeners returns the number of registered scroll listeners.
func (d *Dispatcher) Listeners() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.listeners)
}
