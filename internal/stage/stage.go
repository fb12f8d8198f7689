// Package stage holds the level document edited by a design session: the
// bubble placement map, the environmental field and the save metadata.
package stage

import (
	"maps"
	"slices"
	"time"

	"github.com/papapumpkin/bubbleforge/internal/bubble"
	"github.com/papapumpkin/bubbleforge/internal/grid"
)

// DateLayout is how save dates are rendered for listings.
const DateLayout = "02 Jan 2006 15:04"

// Meta is the save metadata of a stage. It is zero until the stage is saved.
type Meta struct {
	Title   string    `json:"title,omitempty" toml:"title,omitempty" yaml:"title,omitempty"`
	SavedAt time.Time `json:"saved_at" toml:"saved_at" yaml:"saved_at"`
}

// Saved reports whether the stage has been stamped by SaveAs.
func (m Meta) Saved() bool {
	return m.Title != "" || !m.SavedAt.IsZero()
}

// Date renders SavedAt with DateLayout, or "" when unsaved.
func (m Meta) Date() string {
	if m.SavedAt.IsZero() {
		return ""
	}
	return m.SavedAt.Format(DateLayout)
}

// Stage is a level document. Every key of its bubble map is a valid position
// for its dimensions and holds at most one bubble.
type Stage struct {
	dims    grid.Dimensions
	bubbles map[grid.Position]bubble.Bubble
	field   Field
	meta    Meta
}

// New returns an empty, unsaved stage with the default field.
func New(dims grid.Dimensions) *Stage {
	return &Stage{
		dims:    dims,
		bubbles: make(map[grid.Position]bubble.Bubble),
		field:   DefaultField(),
	}
}

// Clone returns a deep copy of s that shares no mutable state with it.
func (s *Stage) Clone() *Stage {
	out := &Stage{
		dims:    s.dims,
		bubbles: make(map[grid.Position]bubble.Bubble, len(s.bubbles)),
		field:   s.field,
		meta:    s.meta,
	}
	for p, b := range s.bubbles {
		out.bubbles[p] = b.Clone()
	}
	return out
}

// Dimensions returns the lattice size the stage validates positions against.
func (s *Stage) Dimensions() grid.Dimensions { return s.dims }

// InsertBubble records b at b.Position, replacing any bubble already there.
// A bubble at an invalid position is not recorded; the return value reports
// whether the stage changed.
func (s *Stage) InsertBubble(b bubble.Bubble) bool {
	if !s.dims.Contains(b.Position) {
		return false
	}
	s.bubbles[b.Position] = b.Clone()
	return true
}

// RemoveBubble deletes the bubble at p and reports whether one was there.
func (s *Stage) RemoveBubble(p grid.Position) bool {
	if _, ok := s.bubbles[p]; !ok {
		return false
	}
	delete(s.bubbles, p)
	return true
}

// ResetBubbles empties the placement map. Field and metadata are kept.
func (s *Stage) ResetBubbles() {
	clear(s.bubbles)
}

// SetEffect sets the field effect.
func (s *Stage) SetEffect(e FieldEffect) { s.field.Effect = e }

// SetBackground sets the field background.
func (s *Stage) SetBackground(b Background) { s.field.Background = b }

// SetMusic sets the field music.
func (s *Stage) SetMusic(m Music) { s.field.Music = m }

// Field returns the environmental field.
func (s *Stage) Field() Field { return s.field }

// Meta returns the save metadata.
func (s *Stage) Meta() Meta { return s.meta }

// SaveAs stamps the save metadata in place. It does not persist anything.
func (s *Stage) SaveAs(title string, date time.Time) {
	s.meta = Meta{Title: title, SavedAt: date}
}

// Bubble returns the bubble at p.
func (s *Stage) Bubble(p grid.Position) (bubble.Bubble, bool) {
	b, ok := s.bubbles[p]
	if !ok {
		return bubble.Bubble{}, false
	}
	return b.Clone(), true
}

// Bubbles returns a snapshot of the placement map. Mutating the snapshot has
// no effect on s.
func (s *Stage) Bubbles() map[grid.Position]bubble.Bubble {
	out := make(map[grid.Position]bubble.Bubble, len(s.bubbles))
	for p, b := range s.bubbles {
		out[p] = b.Clone()
	}
	return out
}

// Len returns the number of placed bubbles.
func (s *Stage) Len() int { return len(s.bubbles) }

// Positions returns the occupied positions in row-major order.
func (s *Stage) Positions() []grid.Position {
	return slices.SortedFunc(maps.Keys(s.bubbles), grid.ComparePositions)
}
