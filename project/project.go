package project

import (
	"sync"
)

// Record is a single portfolio entry shown in the projects grid.
type Record struct {
	ID          string   `yaml:"id"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Tags        []string `yaml:"tags"`
	ImageURL    string   `yaml:"image"`
	LiveURL     string   `yaml:"live_url"`
	CodeURL     string   `yaml:"code_url"`
}

// List owns the committed order of the projects on one page.
type List struct {
	mu      sync.Mutex
	records map[string]Record
	order   []string
	drag    *Drag
}

// NewList copies the records in their literal default order.
func NewList(records []Record) *List {
	l := &List{
		records: make(map[string]Record, len(records)),
		order:   make([]string, 0, len(records)),
	}
	for _, r := range records {
		if _, exists := l.records[r.ID]; exists {
			continue
		}
		r.Tags = append([]string(nil), r.Tags...)
		l.records[r.ID] = r
		l.order = append(l.order, r.ID)
	}
	return l
}

func (l *List) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.order)
}

// IDs returns the committed order.
func (l *List) IDs() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.order...)
}

// Records returns the records in committed order.
func (l *List) Records() []Record {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.recordsLocked(l.order)
}

// Get returns the record with the given id.
func (l *List) Get(id string) (Record, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	r, ok := l.records[id]
	return r, ok
}

func (l *List) recordsLocked(order []string) []Record {
	out := make([]Record, 0, len(order))
	for _, id := range order {
		out = append(out, l.records[id])
	}
	return out
}

// Commit replaces the committed order with ids. Anything other than a
// permutation of the current membership leaves the order unchanged and
// returns false.
func (l *List) Commit(ids []string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.commitLocked(ids)
}

func (l *List) commitLocked(ids []string) bool {
	if !isPermutation(l.order, ids) {
		return false
	}
	l.order = append(l.order[:0:0], ids...)
	return true
}

// Move moves the record with the given id to index to and commits.
func (l *List) Move(id string, to int) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	from := indexOf(l.order, id)
	if from < 0 {
		return false
	}
	return l.commitLocked(moveTo(l.order, from, to))
}

func isPermutation(current, proposed []string) bool {
	if len(current) != len(proposed) {
		return false
	}
	seen := make(map[string]int, len(current))
	for _, id := range current {
		seen[id]++
	}
	for _, id := range proposed {
		if seen[id] == 0 {
			return false
		}
		seen[id]--
	}
	return true
}

func indexOf(order []string, id string) int {
	for i, v := range order {
		if v == id {
			return i
		}
	}
	return -1
}

// moveTo returns a copy of order with the element at from placed at to.
func moveTo(order []string, from, to int) []string {
	if to < 0 {
		to = 0
	}
	if to > len(order)-1 {
		to = len(order) - 1
	}
	out := make([]string, 0, len(order))
	moved := order[from]
	for i, id := range order {
		if i != from {
			out = append(out, id)
		}
	}
	out = append(out, "")
	copy(out[to+1:], out[to:])
	out[to] = moved
	return out
}
