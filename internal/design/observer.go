package design

import (
	"github.com/papapumpkin/bubbleforge/internal/bubble"
	"github.com/papapumpkin/bubbleforge/internal/grid"
)

// ChangeKind identifies what happened to the active stage.
type ChangeKind int

const (
	ChangePlaced  ChangeKind = iota // one cell gained or replaced a bubble
	ChangeRemoved                   // one cell lost its bubble
	ChangeReset                     // every bubble was cleared
	ChangeLoaded                    // the active stage was replaced by a saved level
	ChangeField                     // effect, background or music changed
)

func (k ChangeKind) String() string {
	switch k {
	case ChangePlaced:
		return "placed"
	case ChangeRemoved:
		return "removed"
	case ChangeReset:
		return "reset"
	case ChangeLoaded:
		return "loaded"
	case ChangeField:
		return "field"
	default:
		return "unknown"
	}
}

// Change describes one mutation of the active stage. Position is only
// meaningful for ChangePlaced and ChangeRemoved; other kinds affect the
// whole grid. Bubbles is a snapshot taken after the mutation.
type Change struct {
	Kind     ChangeKind
	Position grid.Position
	Bubbles  map[grid.Position]bubble.Bubble
}

// Single reports whether only the cell at Position needs redrawing.
func (c Change) Single() bool {
	return c.Kind == ChangePlaced || c.Kind == ChangeRemoved
}

// Observer is notified after every visible change to the active stage.
type Observer interface {
	StageChanged(Change)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(Change)

func (f ObserverFunc) StageChanged(c Change) { f(c) }
