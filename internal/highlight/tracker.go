// Package highlight tracks which row of a list currently has hover or focus,
// so a decorative background can follow it.
//
// A Tracker owns its state exclusively and is not safe for concurrent use.
// The web front end runs the same state machine in static/highlight.js; the
// terminal UI drives a Tracker directly.
package highlight

import (
	"fmt"
	"sort"
	"strings"
)

// Rect is the position and size of a row, relative to the list container
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Transition is reported to listeners whenever the active row changes.
// An empty From or To means no row was or is active.
type Transition struct {
	From string
	To   string
}

// Options configures a Tracker
type Options struct {
	// EnableHover activates rows on pointer hover. Without it rows are
	// activated by Select (click) and keyboard focus only.
	EnableHover bool
	// ResetOnLeave clears the active row when the pointer or focus leaves the list
	ResetOnLeave bool
	// DefaultID is active before any interaction and after a reset
	DefaultID string
}

// Tracker holds the active correlation id of a list
type Tracker struct {
	opts      Options
	ids       []string
	index     map[string]int
	active    string
	listeners []func(Transition)
}

// New returns a tracker over ids in display order. Ids must be unique,
// otherwise two rows would share one highlight.
func New(ids []string, opts Options) (*Tracker, error) {
	index := make(map[string]int, len(ids))
	var dups []string
	for i, id := range ids {
		if _, ok := index[id]; ok {
			dups = append(dups, id)
			continue
		}
		index[id] = i
	}
	if len(dups) > 0 {
		sort.Strings(dups)
		return nil, fmt.Errorf("duplicate correlation ids: %s", strings.Join(dups, ", "))
	}
	if opts.DefaultID != "" {
		if _, ok := index[opts.DefaultID]; !ok {
			return nil, fmt.Errorf("default id %q is not in the list", opts.DefaultID)
		}
	}

	return &Tracker{
		opts:   opts,
		ids:    append([]string(nil), ids...),
		index:  index,
		active: opts.DefaultID,
	}, nil
}

// OnChange registers fn to be called after every transition
func (t *Tracker) OnChange(fn func(Transition)) {
	t.listeners = append(t.listeners, fn)
}

// Active returns the active id, if any
func (t *Tracker) Active() (string, bool) {
	return t.active, t.active != ""
}

// IDs returns the tracked ids in display order
func (t *Tracker) IDs() []string {
	return append([]string(nil), t.ids...)
}

// Hover activates id when hover is enabled. Unknown ids are ignored.
func (t *Tracker) Hover(id string) {
	if !t.opts.EnableHover {
		return
	}
	t.activate(id)
}

// Focus activates id. Unknown ids are ignored.
func (t *Tracker) Focus(id string) {
	t.activate(id)
}

// Select activates id on click when hover is disabled
func (t *Tracker) Select(id string) {
	if t.opts.EnableHover {
		return
	}
	t.activate(id)
}

// Leave handles the pointer leaving the list
func (t *Tracker) Leave() {
	if t.opts.ResetOnLeave {
		t.set(t.opts.DefaultID)
	}
}

// Blur handles focus leaving the list
func (t *Tracker) Blur() {
	t.Leave()
}

// Next moves focus to the following row, wrapping around
func (t *Tracker) Next() {
	t.step(1)
}

// Prev moves focus to the preceding row, wrapping around
func (t *Tracker) Prev() {
	t.step(-1)
}

func (t *Tracker) step(delta int) {
	n := len(t.ids)
	if n == 0 {
		return
	}

	i, ok := t.index[t.active]
	switch {
	case !ok && delta > 0:
		i = 0
	case !ok:
		i = n - 1
	default:
		i = (i + delta + n) % n
	}
	t.set(t.ids[i])
}

// Highlight returns the rectangle the background should occupy: the bounds
// of the active row. It reports false when nothing is active or the active
// row has not been measured.
func (t *Tracker) Highlight(rects map[string]Rect) (Rect, bool) {
	if t.active == "" {
		return Rect{}, false
	}
	r, ok := rects[t.active]
	return r, ok
}

func (t *Tracker) activate(id string) {
	if _, ok := t.index[id]; !ok {
		return
	}
	t.set(id)
}

func (t *Tracker) set(id string) {
	if id == t.active {
		return
	}
	tr := Transition{From: t.active, To: id}
	t.active = id
	for _, fn := range t.listeners {
		fn(tr)
	}
}
