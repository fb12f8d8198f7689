package preset

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/papapumpkin/bubbleforge/internal/bubble"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Document is the serialized form of a definition set. It is both the shape
// of a defaults file and the payload stored under the presets key.
type Document struct {
	Effects   []bubble.Effect   `json:"effects" toml:"effects" yaml:"effects"`
	Obstacles []bubble.Obstacle `json:"obstacles" toml:"obstacles" yaml:"obstacles"`
	Creatures []bubble.Creature `json:"creatures" toml:"creatures" yaml:"creatures"`
}

// Defaults is a validated, immutable definition set used to build a Preset.
// The zero Defaults is valid and defines nothing.
type Defaults struct {
	doc Document
}

// NewDefaults validates doc and returns Defaults holding a copy of it.
func NewDefaults(doc Document) (Defaults, error) {
	if errs := Validate(doc); len(errs) > 0 {
		return Defaults{}, joinValidation(errs)
	}
	return Defaults{doc: cloneDocument(doc)}, nil
}

// DefaultDefinitions returns the built-in definition set.
func DefaultDefinitions() (Defaults, error) {
	d, err := ParseDefaults(defaultsYAML)
	if err != nil {
		return Defaults{}, fmt.Errorf("preset: built-in defaults: %w", err)
	}
	return d, nil
}

// LoadDefaultsFile reads a YAML definition set from path.
func LoadDefaultsFile(path string) (Defaults, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Defaults{}, fmt.Errorf("preset: reading defaults file: %w", err)
	}
	d, err := ParseDefaults(data)
	if err != nil {
		return Defaults{}, fmt.Errorf("preset: %s: %w", path, err)
	}
	return d, nil
}

// ParseDefaults decodes a YAML definition set. Unknown fields are rejected.
func ParseDefaults(data []byte) (Defaults, error) {
	var doc Document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return Defaults{}, fmt.Errorf("parsing defaults: %w", err)
	}
	return NewDefaults(doc)
}

// Document returns a copy of the definitions held by d.
func (d Defaults) Document() Document {
	return cloneDocument(d.doc)
}

// Validate checks every definition for a known, unique kind, a name and
// sane numeric fields.
func Validate(doc Document) []ValidationError {
	var errs []ValidationError

	seenEffects := make(map[bubble.EffectKind]bool)
	for _, e := range doc.Effects {
		if !e.Kind.Valid() {
			errs = append(errs, ValidationError{Section: "effects", Kind: string(e.Kind), Field: "kind",
				Err: fmt.Errorf("%w: %q", ErrUnknownKind, e.Kind)})
			continue
		}
		if seenEffects[e.Kind] {
			errs = append(errs, ValidationError{Section: "effects", Kind: string(e.Kind), Field: "kind",
				Err: ErrDuplicateKind})
		}
		seenEffects[e.Kind] = true
		if e.Name == "" {
			errs = append(errs, ValidationError{Section: "effects", Kind: string(e.Kind), Field: "name",
				Err: fmt.Errorf("%w: name", ErrMissingField)})
		}
		if e.Radius < 0 {
			errs = append(errs, ValidationError{Section: "effects", Kind: string(e.Kind), Field: "radius",
				Err: fmt.Errorf("%w: radius %d is negative", ErrOutOfRange, e.Radius)})
		}
	}

	seenObstacles := make(map[bubble.ObstacleKind]bool)
	for _, o := range doc.Obstacles {
		if !o.Kind.Valid() {
			errs = append(errs, ValidationError{Section: "obstacles", Kind: string(o.Kind), Field: "kind",
				Err: fmt.Errorf("%w: %q", ErrUnknownKind, o.Kind)})
			continue
		}
		if seenObstacles[o.Kind] {
			errs = append(errs, ValidationError{Section: "obstacles", Kind: string(o.Kind), Field: "kind",
				Err: ErrDuplicateKind})
		}
		seenObstacles[o.Kind] = true
		if o.Name == "" {
			errs = append(errs, ValidationError{Section: "obstacles", Kind: string(o.Kind), Field: "name",
				Err: fmt.Errorf("%w: name", ErrMissingField)})
		}
		// Indestructible obstacles ignore durability.
		if !o.Indestructible && o.Durability < 1 {
			errs = append(errs, ValidationError{Section: "obstacles", Kind: string(o.Kind), Field: "durability",
				Err: fmt.Errorf("%w: durability %d must be at least 1", ErrOutOfRange, o.Durability)})
		}
	}

	seenCreatures := make(map[bubble.CreatureKind]bool)
	for _, c := range doc.Creatures {
		if !c.Kind.Valid() {
			errs = append(errs, ValidationError{Section: "creatures", Kind: string(c.Kind), Field: "kind",
				Err: fmt.Errorf("%w: %q", ErrUnknownKind, c.Kind)})
			continue
		}
		if seenCreatures[c.Kind] {
			errs = append(errs, ValidationError{Section: "creatures", Kind: string(c.Kind), Field: "kind",
				Err: ErrDuplicateKind})
		}
		seenCreatures[c.Kind] = true
		if c.Name == "" {
			errs = append(errs, ValidationError{Section: "creatures", Kind: string(c.Kind), Field: "name",
				Err: fmt.Errorf("%w: name", ErrMissingField)})
		}
		if !c.Energy.Valid() {
			errs = append(errs, ValidationError{Section: "creatures", Kind: string(c.Kind), Field: "energy",
				Err: fmt.Errorf("%w: energy %q", ErrUnknownKind, c.Energy)})
		}
		if c.CatchRate <= 0 || c.CatchRate > 1 {
			errs = append(errs, ValidationError{Section: "creatures", Kind: string(c.Kind), Field: "catch_rate",
				Err: fmt.Errorf("%w: catch_rate %g must be in (0, 1]", ErrOutOfRange, c.CatchRate)})
		}
	}

	return errs
}

func joinValidation(errs []ValidationError) error {
	joined := make([]error, 0, len(errs))
	for i := range errs {
		joined = append(joined, &errs[i])
	}
	return fmt.Errorf("preset: invalid definitions: %w", errors.Join(joined...))
}

func cloneDocument(doc Document) Document {
	return Document{
		Effects:   slices.Clone(doc.Effects),
		Obstacles: slices.Clone(doc.Obstacles),
		Creatures: slices.Clone(doc.Creatures),
	}
}
