// ABOUTME: Multi-select state for the note list.
// ABOUTME: Keeps selection mode and the selected id set in lockstep.

package selection

import (
	"maps"
	"slices"
)

// State is the controller's mode.
type State int

const (
	Idle State = iota
	Selecting
)

func (s State) String() string {
	if s == Selecting {
		return "selecting"
	}
	return "idle"
}

// PinLabel is the display hint for the pin action.
type PinLabel string

const (
	LabelPin    PinLabel = "Pin"
	LabelUnpin  PinLabel = "Unpin"
	LabelToggle PinLabel = "Toggle"
)

// Controller tracks which notes are selected. The zero value is Idle.
// Selection mode is derived from the set, so the two can't disagree.
type Controller struct {
	ids map[int]struct{}
}

func New() *Controller {
	return &Controller{ids: map[int]struct{}{}}
}

func (c *Controller) State() State {
	if len(c.ids) > 0 {
		return Selecting
	}
	return Idle
}

func (c *Controller) IsSelecting() bool { return len(c.ids) > 0 }
func (c *Controller) Len() int          { return len(c.ids) }

func (c *Controller) Contains(id int) bool {
	_, ok := c.ids[id]
	return ok
}

// Selected returns the selected ids in ascending order.
func (c *Controller) Selected() []int {
	return slices.Sorted(maps.Keys(c.ids))
}

func (c *Controller) Select(id int) {
	if c.ids == nil {
		c.ids = map[int]struct{}{}
	}
	c.ids[id] = struct{}{}
}

func (c *Controller) Deselect(id int) {
	delete(c.ids, id)
}

// Toggle flips membership and reports whether id is now selected.
func (c *Controller) Toggle(id int) bool {
	if c.Contains(id) {
		c.Deselect(id)
		return false
	}
	c.Select(id)
	return true
}

func (c *Controller) Cancel() {
	clear(c.ids)
}

// LongPress enters selection mode with id selected when idle. While already
// selecting it toggles id, possibly returning to Idle.
func (c *Controller) LongPress(id int) {
	if !c.IsSelecting() {
		c.Select(id)
		return
	}
	c.Toggle(id)
}

// Tap handles a short press. In selection mode it toggles id and returns
// true; when idle it does nothing and returns false so the caller can open
// the note instead.
func (c *Controller) Tap(id int) bool {
	if !c.IsSelecting() {
		return false
	}
	c.Toggle(id)
	return true
}

// Prune drops selected ids for which exists returns false.
func (c *Controller) Prune(exists func(id int) bool) {
	for id := range c.ids {
		if !exists(id) {
			delete(c.ids, id)
		}
	}
}

// PinSummary counts pinned and unpinned notes in the selection.
func (c *Controller) PinSummary(isPinned func(id int) bool) (pinned, unpinned int) {
	for id := range c.ids {
		if isPinned(id) {
			pinned++
		} else {
			unpinned++
		}
	}
	return pinned, unpinned
}

// PinButtonLabel derives the pin action label from the current selection.
func (c *Controller) PinButtonLabel(isPinned func(id int) bool) PinLabel {
	pinned, unpinned := c.PinSummary(isPinned)
	switch {
	case unpinned == 0 && pinned > 0:
		return LabelUnpin
	case pinned == 0:
		return LabelPin
	default:
		return LabelToggle
	}
}

// PinToast is the notice shown after toggling pins on a selection whose
// counts were taken before the toggle.
func PinToast(pinned, unpinned int) string {
	switch {
	case pinned > 0 && unpinned > 0:
		return "Pin state changed"
	case pinned > 0:
		return "Notes unpinned"
	default:
		return "Notes pinned"
	}
}
