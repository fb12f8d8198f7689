package design

import (
	"testing"

	"github.com/papapumpkin/bubbleforge/internal/bubble"
	"github.com/papapumpkin/bubbleforge/internal/grid"
	"github.com/papapumpkin/bubbleforge/internal/store"
)

func TestPalette_OnSelect(t *testing.T) {
	t.Parallel()
	s := newSession(t, store.NewMemoryStore())
	pal := NewPalette(s)
	p := grid.At(2, 3)

	pal.OnSelect(p)
	if _, ok := s.BubbleType(p); ok {
		t.Error("OnSelect with nothing selected placed a bubble")
	}
	if _, ok := pal.Brush(); ok {
		t.Error("Brush() reported a selection on a new palette")
	}

	star := bubble.EffectType(bubble.EffectStar)
	pal.Select(star)
	pal.OnSelect(p)
	if got, _ := s.BubbleType(p); got != star {
		t.Errorf("BubbleType = %v, want %v", got, star)
	}

	pal.SelectEraser()
	if !pal.Erasing() {
		t.Error("Erasing() = false after SelectEraser")
	}
	pal.OnSelect(p)
	if _, ok := s.BubbleType(p); ok {
		t.Error("eraser OnSelect left the bubble in place")
	}

	pal.Select(bubble.CaptureType(bubble.BallUltra))
	if pal.Erasing() {
		t.Error("selecting a brush should deselect the eraser")
	}
	if got, ok := pal.Brush(); !ok || got != bubble.CaptureType(bubble.BallUltra) {
		t.Errorf("Brush() = %v, %v", got, ok)
	}
}

func TestPalette_OnForceRemove(t *testing.T) {
	t.Parallel()
	s := newSession(t, store.NewMemoryStore())
	pal := NewPalette(s)
	rock := bubble.ObstacleType(bubble.ObstacleRock)
	p := grid.At(0, 0)

	pal.Select(rock)
	pal.OnSelect(p)
	pal.OnForceRemove(p)
	if _, ok := s.BubbleType(p); ok {
		t.Error("OnForceRemove left the bubble in place")
	}
	if got, _ := pal.Brush(); got != rock {
		t.Error("OnForceRemove changed the brush")
	}
}

func TestPalette_StrokeTouchesEachCellOnce(t *testing.T) {
	t.Parallel()
	var placed int
	s := newSession(t, store.NewMemoryStore(), WithObserver(ObserverFunc(func(c Change) {
		if c.Kind == ChangePlaced {
			placed++
		}
	})))
	pal := NewPalette(s)
	pal.Select(bubble.EnergyType(bubble.EnergyWater))

	path := []grid.Position{grid.At(0, 0), grid.At(0, 1), grid.At(0, 1), grid.At(0, 0), grid.At(1, 0)}
	pal.BeginStroke()
	for _, p := range path {
		pal.OnStroke(p)
	}
	pal.EndStroke()

	if placed != 3 {
		t.Errorf("placed %d times during stroke, want 3", placed)
	}
	if len(s.Bubbles()) != 3 {
		t.Errorf("Bubbles() = %d entries, want 3", len(s.Bubbles()))
	}

	pal.OnStroke(grid.At(0, 0))
	if placed != 4 {
		t.Errorf("OnStroke outside a drag placed %d times total, want 4", placed)
	}
}
