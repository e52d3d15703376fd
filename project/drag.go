package project

// Box is the vertical extent of one card measured when a drag starts.
type Box struct {
	ID     string  `json:"id"`
	Top    float64 `json:"top"`
	Height float64 `json:"height"`
}

// Mid returns the vertical midpoint of the box.
func (b Box) Mid() float64 {
	return b.Top + b.Height/2
}

// Drag is an in-progress vertical drag of one record. Moves only change the
// preview; the list's committed order changes on Release.
type Drag struct {
	list    *List
	id      string
	centre  float64
	mids    []float64 // midpoints of the other items, in committed order
	base    []string
	preview []string
	done    bool
}

// BeginDrag starts dragging id. boxes holds the layout measured by the
// client; items it does not mention are placed by their committed index.
// It returns false when id is not in the list.
func (l *List) BeginDrag(id string, boxes []Box) (*Drag, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.drag != nil {
		l.drag.done = true
		l.drag = nil
	}

	from := indexOf(l.order, id)
	if from < 0 {
		return nil, false
	}

	layout := make(map[string]Box, len(boxes))
	for _, b := range boxes {
		layout[b.ID] = b
	}
	box := func(i int, itemID string) Box {
		if b, ok := layout[itemID]; ok {
			return b
		}
		return Box{ID: itemID, Top: float64(i), Height: 1}
	}

	d := &Drag{
		list:    l,
		id:      id,
		centre:  box(from, id).Mid(),
		base:    append([]string(nil), l.order...),
		preview: append([]string(nil), l.order...),
	}
	for i, itemID := range l.order {
		if itemID == id {
			continue
		}
		d.mids = append(d.mids, box(i, itemID).Mid())
	}
	l.drag = d
	return d, true
}

// Active returns the drag in progress, if any.
func (l *List) Active() *Drag {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.drag
}

// ID returns the id of the dragged record.
func (d *Drag) ID() string {
	return d.id
}

// Move updates the live preview for a pointer displaced deltaY from where
// the drag started and returns the preview order.
func (d *Drag) Move(deltaY float64) []string {
	d.list.mu.Lock()
	defer d.list.mu.Unlock()

	if d.done {
		return append([]string(nil), d.list.order...)
	}
	target := targetIndex(d.mids, d.centre+deltaY)
	d.preview = moveTo(d.base, indexOf(d.base, d.id), target)
	return append([]string(nil), d.preview...)
}

// Preview returns the current preview order.
func (d *Drag) Preview() []string {
	d.list.mu.Lock()
	defer d.list.mu.Unlock()
	return append([]string(nil), d.preview...)
}

// Release ends the drag. Inside the drop zone the preview is committed;
// outside it the list snaps back to its last committed order. It returns
// the committed order.
func (d *Drag) Release(inZone bool) []string {
	d.list.mu.Lock()
	defer d.list.mu.Unlock()

	if !d.done {
		if inZone {
			d.list.commitLocked(d.preview)
		}
		d.finishLocked()
	}
	return append([]string(nil), d.list.order...)
}

// Cancel ends the drag without committing.
func (d *Drag) Cancel() {
	d.list.mu.Lock()
	defer d.list.mu.Unlock()
	if !d.done {
		d.finishLocked()
	}
}

func (d *Drag) finishLocked() {
	d.done = true
	if d.list.drag == d {
		d.list.drag = nil
	}
}

// targetIndex counts the sibling midpoints lying above centre.
func targetIndex(mids []float64, centre float64) int {
	n := 0
	for _, m := range mids {
		if m < centre {
			n++
		}
	}
	return n
}
