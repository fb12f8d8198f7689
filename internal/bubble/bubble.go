// Package bubble defines the bubble type taxonomy and resolves placement
// requests into concrete pieces against a catalog of reference definitions.
//
// Energy and capture bubbles carry a plain kind and always resolve. Effect,
// obstacle and creature bubbles carry a catalog key and only resolve when the
// catalog holds a definition for that key.
package bubble

import (
	"errors"
	"fmt"
	"strings"

	"github.com/papapumpkin/bubbleforge/internal/grid"
)

// ErrInvalidType indicates a type string that does not parse as "category:kind".
var ErrInvalidType = errors.New("bubble: invalid type")

// Category is the tag of the Type union.
type Category string

const (
	CategoryEnergy   Category = "energy"
	CategoryEffect   Category = "effect"
	CategoryObstacle Category = "obstacle"
	CategoryCreature Category = "creature"
	CategoryCapture  Category = "capture"
)

// Categories returns the closed set of type tags.
func Categories() []Category {
	return []Category{CategoryEnergy, CategoryEffect, CategoryObstacle, CategoryCreature, CategoryCapture}
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryEnergy, CategoryEffect, CategoryObstacle, CategoryCreature, CategoryCapture:
		return true
	}
	return false
}

// Type tags a bubble with its category and the kind within that category.
// Types are comparable and serializable.
type Type struct {
	Category Category `json:"category" toml:"category" yaml:"category"`
	Kind     string   `json:"kind" toml:"kind" yaml:"kind"`
}

// EnergyType returns the type of an energy bubble of kind k.
func EnergyType(k EnergyKind) Type {
	return Type{Category: CategoryEnergy, Kind: string(k)}
}

// EffectType returns the type of an effect bubble of kind k.
func EffectType(k EffectKind) Type {
	return Type{Category: CategoryEffect, Kind: string(k)}
}

// ObstacleType returns the type of an obstacle bubble of kind k.
func ObstacleType(k ObstacleKind) Type {
	return Type{Category: CategoryObstacle, Kind: string(k)}
}

// CreatureType returns the type of a creature bubble of kind k.
func CreatureType(k CreatureKind) Type {
	return Type{Category: CategoryCreature, Kind: string(k)}
}

// CaptureType returns the type of a capture bubble thrown with ball k.
func CaptureType(k BallKind) Type {
	return Type{Category: CategoryCapture, Kind: string(k)}
}

func (t Type) String() string {
	return string(t.Category) + ":" + t.Kind
}

// IsZero reports whether t is the empty type.
func (t Type) IsZero() bool {
	return t == Type{}
}

// ParseType parses the "category:kind" form produced by Type.String. Only the
// category is checked; whether the kind resolves is decided by Resolve.
func ParseType(s string) (Type, error) {
	cat, kind, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok || kind == "" {
		return Type{}, fmt.Errorf("%w: %q", ErrInvalidType, s)
	}
	c := Category(strings.ToLower(cat))
	if !c.Valid() {
		return Type{}, fmt.Errorf("%w: unknown category %q", ErrInvalidType, cat)
	}
	return Type{Category: c, Kind: strings.ToLower(kind)}, nil
}

// Effect is the reference definition of a special-effect bubble.
type Effect struct {
	Kind        EffectKind `json:"kind" toml:"kind" yaml:"kind"`
	Name        string     `json:"name" toml:"name" yaml:"name"`
	Description string     `json:"description,omitempty" toml:"description,omitempty" yaml:"description,omitempty"`
	Radius      int        `json:"radius" toml:"radius" yaml:"radius"` // cells cleared around the bubble
}

// Obstacle is the reference definition of an obstacle bubble.
type Obstacle struct {
	Kind           ObstacleKind `json:"kind" toml:"kind" yaml:"kind"`
	Name           string       `json:"name" toml:"name" yaml:"name"`
	Description    string       `json:"description,omitempty" toml:"description,omitempty" yaml:"description,omitempty"`
	Durability     int          `json:"durability" toml:"durability" yaml:"durability"`
	Indestructible bool         `json:"indestructible,omitempty" toml:"indestructible,omitempty" yaml:"indestructible,omitempty"`
}

// Creature is the reference definition of a creature bubble.
type Creature struct {
	Kind        CreatureKind `json:"kind" toml:"kind" yaml:"kind"`
	Name        string       `json:"name" toml:"name" yaml:"name"`
	Description string       `json:"description,omitempty" toml:"description,omitempty" yaml:"description,omitempty"`
	Energy      EnergyKind   `json:"energy" toml:"energy" yaml:"energy"`
	CatchRate   float64      `json:"catch_rate" toml:"catch_rate" yaml:"catch_rate"`
}

// Bubble is a placed piece. Reference-typed bubbles carry a copy of the
// definition they resolved to; exactly one of Effect, Obstacle and Creature
// is set for those, none for energy and capture bubbles.
type Bubble struct {
	Position grid.Position `json:"position" toml:"position" yaml:"position"`
	Type     Type          `json:"type" toml:"type" yaml:"type"`
	Effect   *Effect       `json:"effect,omitempty" toml:"effect,omitempty" yaml:"effect,omitempty"`
	Obstacle *Obstacle     `json:"obstacle,omitempty" toml:"obstacle,omitempty" yaml:"obstacle,omitempty"`
	Creature *Creature     `json:"creature,omitempty" toml:"creature,omitempty" yaml:"creature,omitempty"`
}

// Clone returns a copy of b that shares no definition pointers with it.
func (b Bubble) Clone() Bubble {
	out := b
	if b.Effect != nil {
		e := *b.Effect
		out.Effect = &e
	}
	if b.Obstacle != nil {
		o := *b.Obstacle
		out.Obstacle = &o
	}
	if b.Creature != nil {
		c := *b.Creature
		out.Creature = &c
	}
	return out
}

// At returns a copy of b placed at p.
func (b Bubble) At(p grid.Position) Bubble {
	out := b.Clone()
	out.Position = p
	return out
}

// Catalog looks up reference definitions by key.
type Catalog interface {
	LookupEffect(k EffectKind) (Effect, bool)
	LookupObstacle(k ObstacleKind) (Obstacle, bool)
	LookupCreature(k CreatureKind) (Creature, bool)
}

// Resolve turns t into a concrete Bubble using cat for reference kinds. It
// returns false when t cannot be resolved, in which case the caller's
// placement is a no-op. The returned Bubble has a zero Position.
func Resolve(t Type, cat Catalog) (Bubble, bool) {
	switch t.Category {
	case CategoryEnergy:
		if !EnergyKind(t.Kind).Valid() {
			return Bubble{}, false
		}
		return Bubble{Type: t}, true
	case CategoryCapture:
		if !BallKind(t.Kind).Valid() {
			return Bubble{}, false
		}
		return Bubble{Type: t}, true
	case CategoryEffect, CategoryObstacle, CategoryCreature:
		if cat == nil {
			return Bubble{}, false
		}
		return resolveReference(t, cat)
	default:
		return Bubble{}, false
	}
}

// resolveReference handles the catalog-backed categories. A key missing from
// the catalog yields no bubble.
func resolveReference(t Type, cat Catalog) (Bubble, bool) {
	switch t.Category {
	case CategoryEffect:
		def, ok := cat.LookupEffect(EffectKind(t.Kind))
		if !ok {
			return Bubble{}, false
		}
		return Bubble{Type: t, Effect: &def}, true
	case CategoryObstacle:
		def, ok := cat.LookupObstacle(ObstacleKind(t.Kind))
		if !ok {
			return Bubble{}, false
		}
		return Bubble{Type: t, Obstacle: &def}, true
	case CategoryCreature:
		def, ok := cat.LookupCreature(CreatureKind(t.Kind))
		if !ok {
			return Bubble{}, false
		}
		return Bubble{Type: t, Creature: &def}, true
	}
	return Bubble{}, false
}
