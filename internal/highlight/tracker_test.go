package highlight

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTracker(t *testing.T, opts Options) (*Tracker, *[]Transition) {
	t.Helper()

	tr, err := New([]string{"blog-5", "blog-4", "blog-3"}, opts)
	require.NoError(t, err)

	var seen []Transition
	tr.OnChange(func(x Transition) { seen = append(seen, x) })
	return tr, &seen
}

func TestHoverTransitionsBetweenRows(t *testing.T) {
	tr, seen := newTracker(t, Options{EnableHover: true, ResetOnLeave: true})

	_, ok := tr.Active()
	assert.False(t, ok)

	tr.Hover("blog-5")
	tr.Hover("blog-4")

	id, ok := tr.Active()
	require.True(t, ok)
	assert.Equal(t, "blog-4", id)
	assert.Equal(t, []Transition{{From: "", To: "blog-5"}, {From: "blog-5", To: "blog-4"}}, *seen)

	tr.Leave()
	_, ok = tr.Active()
	assert.False(t, ok)
	assert.Equal(t, Transition{From: "blog-4", To: ""}, (*seen)[2])
}

func TestLeaveKeepsRowWithoutReset(t *testing.T) {
	tr, _ := newTracker(t, Options{EnableHover: true})

	tr.Hover("blog-3")
	tr.Leave()
	tr.Blur()

	id, ok := tr.Active()
	require.True(t, ok)
	assert.Equal(t, "blog-3", id)
}

func TestResetReturnsToDefault(t *testing.T) {
	tr, _ := newTracker(t, Options{EnableHover: true, ResetOnLeave: true, DefaultID: "blog-3"})

	id, _ := tr.Active()
	assert.Equal(t, "blog-3", id)

	tr.Hover("blog-5")
	tr.Blur()

	id, _ = tr.Active()
	assert.Equal(t, "blog-3", id)
}

func TestUnknownIDsAreIgnored(t *testing.T) {
	tr, seen := newTracker(t, Options{EnableHover: true})

	tr.Hover("blog-5")
	tr.Hover("nope")
	tr.Focus("")

	id, _ := tr.Active()
	assert.Equal(t, "blog-5", id)
	assert.Len(t, *seen, 1)
}

func TestRepeatedHoverDoesNotNotify(t *testing.T) {
	tr, seen := newTracker(t, Options{EnableHover: true})

	tr.Hover("blog-4")
	tr.Hover("blog-4")
	tr.Focus("blog-4")

	assert.Len(t, *seen, 1)
}

func TestClickMode(t *testing.T) {
	tr, _ := newTracker(t, Options{})

	tr.Hover("blog-5")
	_, ok := tr.Active()
	assert.False(t, ok, "hover is disabled")

	tr.Select("blog-5")
	id, _ := tr.Active()
	assert.Equal(t, "blog-5", id)

	tr.Focus("blog-4")
	id, _ = tr.Active()
	assert.Equal(t, "blog-4", id)
}

func TestSelectIgnoredInHoverMode(t *testing.T) {
	tr, _ := newTracker(t, Options{EnableHover: true})

	tr.Select("blog-5")
	_, ok := tr.Active()
	assert.False(t, ok)
}

func TestKeyboardNavigationWraps(t *testing.T) {
	tr, _ := newTracker(t, Options{})

	tr.Next()
	id, _ := tr.Active()
	assert.Equal(t, "blog-5", id)

	tr.Prev()
	id, _ = tr.Active()
	assert.Equal(t, "blog-3", id)

	tr.Next()
	id, _ = tr.Active()
	assert.Equal(t, "blog-5", id)

	empty, err := New(nil, Options{})
	require.NoError(t, err)
	empty.Next()
	_, ok := empty.Active()
	assert.False(t, ok)
}

func TestPrevFromNothingSelectsLast(t *testing.T) {
	tr, _ := newTracker(t, Options{})

	tr.Prev()
	id, _ := tr.Active()
	assert.Equal(t, "blog-3", id)
}

func TestHighlightFollowsActiveRow(t *testing.T) {
	tr, _ := newTracker(t, Options{EnableHover: true, ResetOnLeave: true})
	rects := map[string]Rect{
		"blog-5": {X: 0, Y: 0, Width: 600, Height: 72},
		"blog-4": {X: 0, Y: 72, Width: 600, Height: 96},
	}

	_, ok := tr.Highlight(rects)
	assert.False(t, ok)

	tr.Hover("blog-4")
	r, ok := tr.Highlight(rects)
	require.True(t, ok)
	assert.Equal(t, Rect{Y: 72, Width: 600, Height: 96}, r)

	tr.Hover("blog-3")
	_, ok = tr.Highlight(rects)
	assert.False(t, ok, "blog-3 has not been measured")
}

func TestDuplicateIDsAreRejected(t *testing.T) {
	_, err := New([]string{"blog-1", "blog-2", "blog-1"}, Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate correlation ids: blog-1")
}

func TestUnknownDefaultIsRejected(t *testing.T) {
	_, err := New([]string{"blog-1"}, Options{DefaultID: "blog-9"})
	assert.Error(t, err)
}

func TestIDsReturnsCopy(t *testing.T) {
	tr, _ := newTracker(t, Options{})

	ids := tr.IDs()
	ids[0] = "changed"
	assert.Equal(t, "blog-5", tr.IDs()[0])
}
