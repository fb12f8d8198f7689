// Package ui renders bubbleforge state for the terminal.
package ui

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/papapumpkin/bubbleforge/internal/ansi"
	"github.com/papapumpkin/bubbleforge/internal/bubble"
	"github.com/papapumpkin/bubbleforge/internal/grid"
	"github.com/papapumpkin/bubbleforge/internal/stage"
)

// Printer writes human-readable output to an io.Writer.
type Printer struct {
	w     io.Writer
	style ansi.Style
}

// New returns a Printer writing to w with colors unless NO_COLOR is set.
func New(w io.Writer) *Printer {
	return &Printer{w: w, style: ansi.NewStyle()}
}

// NewPlain returns a Printer writing to w without escape codes.
func NewPlain(w io.Writer) *Printer {
	return &Printer{w: w, style: ansi.Plain()}
}

// Error prints msg with a red error prefix.
func (p *Printer) Error(msg string) {
	fmt.Fprintf(p.w, "%s%s\n", p.style.Wrap("error: ", ansi.Red, ansi.Bold), msg)
}

// Info prints msg dimmed.
func (p *Printer) Info(msg string) {
	fmt.Fprintln(p.w, p.style.Wrap(msg, ansi.Dim))
}

// Success prints msg after a check mark.
func (p *Printer) Success(msg string) {
	fmt.Fprintf(p.w, "%s %s\n", p.style.Wrap("✓", ansi.Green, ansi.Bold), msg)
}

// Grid prints the row lengths of d and its cell count.
func (p *Printer) Grid(d grid.Dimensions) {
	fmt.Fprintf(p.w, "%s %s, %d cells\n", p.style.Wrap("grid", ansi.Bold, ansi.Cyan), d, d.CellCount())
	for row := 0; row < d.Rows; row++ {
		fmt.Fprintf(p.w, "  row %2d: %2d cells\n", row, d.RowLength(row))
	}
}

// Presets lists the reference definitions in palette order.
func (p *Printer) Presets(effects map[bubble.EffectKind]bubble.Effect, obstacles map[bubble.ObstacleKind]bubble.Obstacle, creatures map[bubble.CreatureKind]bubble.Creature) {
	fmt.Fprintln(p.w, p.style.Wrap("effects", ansi.Bold, ansi.Magenta))
	for _, k := range bubble.EffectKinds() {
		if e, ok := effects[k]; ok {
			fmt.Fprintf(p.w, "  %-12s %-12s radius=%d  %s\n", k, e.Name, e.Radius, p.style.Wrap(e.Description, ansi.Dim))
		}
	}
	fmt.Fprintln(p.w, p.style.Wrap("obstacles", ansi.Bold, ansi.Yellow))
	for _, k := range bubble.ObstacleKinds() {
		if o, ok := obstacles[k]; ok {
			durability := fmt.Sprintf("durability=%d", o.Durability)
			if o.Indestructible {
				durability = "indestructible"
			}
			fmt.Fprintf(p.w, "  %-12s %-12s %s  %s\n", k, o.Name, durability, p.style.Wrap(o.Description, ansi.Dim))
		}
	}
	fmt.Fprintln(p.w, p.style.Wrap("creatures", ansi.Bold, ansi.Green))
	for _, k := range bubble.CreatureKinds() {
		if c, ok := creatures[k]; ok {
			fmt.Fprintf(p.w, "  %-12s %-12s %-8s catch=%.0f%%  %s\n", k, c.Name, c.Energy, c.CatchRate*100, p.style.Wrap(c.Description, ansi.Dim))
		}
	}
}

// Levels prints titles one per line, or a placeholder when there are none.
func (p *Printer) Levels(heading string, titles []string) {
	fmt.Fprintf(p.w, "%s (%d)\n", p.style.Wrap(heading, ansi.Bold, ansi.Cyan), len(titles))
	if len(titles) == 0 {
		fmt.Fprintln(p.w, p.style.Wrap("  (none)", ansi.Dim))
		return
	}
	for _, t := range titles {
		fmt.Fprintf(p.w, "  %s\n", t)
	}
}

// Stage prints the metadata, field and staggered grid of s followed by a
// legend of the symbols in use.
func (p *Printer) Stage(s *stage.Stage) {
	meta := s.Meta()
	title := meta.Title
	if title == "" {
		title = "(untitled)"
	}
	fmt.Fprintf(p.w, "%s", p.style.Wrap(title, ansi.Bold, ansi.Cyan))
	if meta.Saved() {
		fmt.Fprintf(p.w, "  %s", p.style.Wrap("saved "+meta.Date(), ansi.Dim))
	}
	fmt.Fprintln(p.w)

	f := s.Field()
	fmt.Fprintf(p.w, "field: effect=%s background=%s music=%s\n", f.Effect, f.Background, f.Music)
	fmt.Fprintf(p.w, "bubbles: %d of %d cells\n\n", s.Len(), s.Dimensions().CellCount())

	bubbles := s.Bubbles()
	used := make(map[bubble.Type]string)
	dims := s.Dimensions()
	for row := 0; row < dims.Rows; row++ {
		var line strings.Builder
		if row%2 == 1 {
			line.WriteByte(' ')
		}
		for col := 0; col < dims.RowLength(row); col++ {
			if col > 0 {
				line.WriteByte(' ')
			}
			b, ok := bubbles[grid.At(row, col)]
			if !ok {
				line.WriteString(p.style.Wrap(".", ansi.Dim))
				continue
			}
			sym, color := Symbol(b.Type)
			used[b.Type] = sym
			line.WriteString(p.style.Wrap(sym, color))
		}
		fmt.Fprintln(p.w, line.String())
	}

	if len(used) == 0 {
		return
	}
	fmt.Fprintln(p.w)
	types := slices.SortedFunc(maps.Keys(used), func(a, b bubble.Type) int {
		return strings.Compare(a.String(), b.String())
	})
	for _, t := range types {
		fmt.Fprintf(p.w, "  %s %s\n", used[t], t)
	}
}

// Symbol returns the single-character glyph and color for t.
func Symbol(t bubble.Type) (string, string) {
	switch t.Category {
	case bubble.CategoryEnergy:
		switch bubble.EnergyKind(t.Kind) {
		case bubble.EnergyFire:
			return "F", ansi.Red
		case bubble.EnergyWater:
			return "W", ansi.Blue
		case bubble.EnergyGrass:
			return "G", ansi.Green
		case bubble.EnergyElectric:
			return "E", ansi.Yellow
		case bubble.EnergyPsychic:
			return "P", ansi.Magenta
		case bubble.EnergyFighting:
			return "K", ansi.White
		}
	case bubble.CategoryEffect:
		return "*", ansi.Magenta
	case bubble.CategoryObstacle:
		return "#", ansi.White
	case bubble.CategoryCreature:
		return "@", ansi.Green
	case bubble.CategoryCapture:
		return "o", ansi.Red
	}
	return "?", ansi.Dim
}
