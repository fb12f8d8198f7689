package design

import (
	"github.com/papapumpkin/bubbleforge/internal/bubble"
	"github.com/papapumpkin/bubbleforge/internal/grid"
)

// InputHandler receives position-addressed events from a presentation layer.
type InputHandler interface {
	// OnSelect is a tap on a cell.
	OnSelect(p grid.Position)
	// OnForceRemove is a long press on a cell.
	OnForceRemove(p grid.Position)
}

// Palette forwards input events into a Session using the currently selected
// brush. With the eraser selected, OnSelect removes instead of placing.
type Palette struct {
	session *Session
	brush   bubble.Type
	erasing bool

	// stroke tracks cells already touched by the current drag.
	stroke map[grid.Position]bool
}

var _ InputHandler = (*Palette)(nil)

// NewPalette returns a Palette with nothing selected.
func NewPalette(s *Session) *Palette {
	return &Palette{session: s}
}

// Select makes t the brush and deselects the eraser.
func (p *Palette) Select(t bubble.Type) {
	p.brush = t
	p.erasing = false
}

// SelectEraser makes OnSelect remove bubbles.
func (p *Palette) SelectEraser() {
	p.brush = bubble.Type{}
	p.erasing = true
}

// Brush returns the selected type, or false when the eraser or nothing is
// selected.
func (p *Palette) Brush() (bubble.Type, bool) {
	return p.brush, !p.erasing && !p.brush.IsZero()
}

// Erasing reports whether the eraser is selected.
func (p *Palette) Erasing() bool { return p.erasing }

func (p *Palette) OnSelect(pos grid.Position) {
	switch {
	case p.erasing:
		p.session.RemoveBubble(pos)
	case !p.brush.IsZero():
		p.session.InsertBubble(pos, p.brush)
	}
}

func (p *Palette) OnForceRemove(pos grid.Position) {
	p.session.RemoveBubble(pos)
}

// BeginStroke starts a drag gesture.
func (p *Palette) BeginStroke() {
	p.stroke = make(map[grid.Position]bool)
}

// OnStroke applies OnSelect to pos the first time the current drag crosses
// it. Outside a drag it behaves like OnSelect.
func (p *Palette) OnStroke(pos grid.Position) {
	if p.stroke != nil {
		if p.stroke[pos] {
			return
		}
		p.stroke[pos] = true
	}
	p.OnSelect(pos)
}

// EndStroke finishes the drag gesture.
func (p *Palette) EndStroke() {
	p.stroke = nil
}
