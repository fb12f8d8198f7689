package stage

import (
	"time"

	"github.com/papapumpkin/bubbleforge/internal/bubble"
	"github.com/papapumpkin/bubbleforge/internal/grid"
)

// Document is the serialized form of a Stage. Bubbles are stored as a list in
// row-major order so every codec can represent them.
type Document struct {
	Title   string          `json:"title,omitempty" toml:"title,omitempty" yaml:"title,omitempty"`
	SavedAt time.Time       `json:"saved_at" toml:"saved_at" yaml:"saved_at"`
	Rows    int             `json:"rows" toml:"rows" yaml:"rows"`
	Columns int             `json:"columns" toml:"columns" yaml:"columns"`
	Field   Field           `json:"field" toml:"field" yaml:"field"`
	Bubbles []bubble.Bubble `json:"bubbles" toml:"bubbles" yaml:"bubbles"`
}

// Document returns the serializable form of s.
func (s *Stage) Document() Document {
	doc := Document{
		Title:   s.meta.Title,
		SavedAt: s.meta.SavedAt,
		Rows:    s.dims.Rows,
		Columns: s.dims.Columns,
		Field:   s.field,
		Bubbles: make([]bubble.Bubble, 0, len(s.bubbles)),
	}
	for _, p := range s.Positions() {
		doc.Bubbles = append(doc.Bubbles, s.bubbles[p].Clone())
	}
	return doc
}

// FromDocument rebuilds a Stage from doc. Documents that carry no dimensions
// use fallback. Bubbles at positions outside the dimensions are dropped, the
// same way InsertBubble refuses them.
func FromDocument(doc Document, fallback grid.Dimensions) *Stage {
	dims := grid.Dimensions{Rows: doc.Rows, Columns: doc.Columns}
	if dims.Validate() != nil {
		dims = fallback
	}
	s := New(dims)
	s.field = doc.Field.normalize()
	s.meta = Meta{Title: doc.Title, SavedAt: doc.SavedAt}
	for _, b := range doc.Bubbles {
		s.InsertBubble(b)
	}
	return s
}
