// Package preset holds the catalogs of reference definitions that effect,
// obstacle and creature bubbles resolve against.
package preset

import (
	"context"
	"fmt"
	"maps"

	"github.com/papapumpkin/bubbleforge/internal/bubble"
	"github.com/papapumpkin/bubbleforge/internal/store"
)

// Preset is an immutable aggregate of the effect, obstacle and creature
// catalogs. Accessors return copies. The zero Preset defines nothing.
type Preset struct {
	effects   map[bubble.EffectKind]bubble.Effect
	obstacles map[bubble.ObstacleKind]bubble.Obstacle
	creatures map[bubble.CreatureKind]bubble.Creature
}

var _ bubble.Catalog = Preset{}

// Build constructs a Preset from d.
func Build(d Defaults) (Preset, error) {
	return FromDocument(d.doc)
}

// FromDocument validates doc and constructs the Preset it describes.
func FromDocument(doc Document) (Preset, error) {
	if errs := Validate(doc); len(errs) > 0 {
		return Preset{}, joinValidation(errs)
	}
	p := Preset{
		effects:   make(map[bubble.EffectKind]bubble.Effect, len(doc.Effects)),
		obstacles: make(map[bubble.ObstacleKind]bubble.Obstacle, len(doc.Obstacles)),
		creatures: make(map[bubble.CreatureKind]bubble.Creature, len(doc.Creatures)),
	}
	for _, e := range doc.Effects {
		p.effects[e.Kind] = e
	}
	for _, o := range doc.Obstacles {
		p.obstacles[o.Kind] = o
	}
	for _, c := range doc.Creatures {
		p.creatures[c.Kind] = c
	}
	return p, nil
}

// Bootstrap builds the Preset from d, writes it to s under the presets key
// and returns the value read back from s. Absent or undecodable data after
// the write yields ErrUnavailable.
func Bootstrap(ctx context.Context, s store.Store, c store.Codec, d Defaults) (Preset, error) {
	built, err := Build(d)
	if err != nil {
		return Preset{}, err
	}
	if err := store.Put(ctx, s, c, store.KeyPresets, built.Document()); err != nil {
		return Preset{}, fmt.Errorf("preset: write presets: %w", err)
	}

	doc, ok, err := store.Get[Document](ctx, s, c, store.KeyPresets)
	if err != nil {
		return Preset{}, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	if !ok {
		return Preset{}, fmt.Errorf("%w: nothing stored under %q", ErrUnavailable, store.KeyPresets)
	}
	p, err := FromDocument(doc)
	if err != nil {
		return Preset{}, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	return p, nil
}

// Document returns the serializable form of p, with definitions in palette order.
func (p Preset) Document() Document {
	var doc Document
	for _, k := range bubble.EffectKinds() {
		if e, ok := p.effects[k]; ok {
			doc.Effects = append(doc.Effects, e)
		}
	}
	for _, k := range bubble.ObstacleKinds() {
		if o, ok := p.obstacles[k]; ok {
			doc.Obstacles = append(doc.Obstacles, o)
		}
	}
	for _, k := range bubble.CreatureKinds() {
		if c, ok := p.creatures[k]; ok {
			doc.Creatures = append(doc.Creatures, c)
		}
	}
	return doc
}

// Effects returns a copy of the effect definitions.
func (p Preset) Effects() map[bubble.EffectKind]bubble.Effect {
	return maps.Clone(p.effects)
}

// Obstacles returns a copy of the obstacle definitions.
func (p Preset) Obstacles() map[bubble.ObstacleKind]bubble.Obstacle {
	return maps.Clone(p.obstacles)
}

// Creatures returns a copy of the creature definitions.
func (p Preset) Creatures() map[bubble.CreatureKind]bubble.Creature {
	return maps.Clone(p.creatures)
}

// LookupEffect returns the definition of effect k, if any. LookupObstacle and
// LookupCreature do the same for their categories.
func (p Preset) LookupEffect(k bubble.EffectKind) (bubble.Effect, bool) {
	e, ok := p.effects[k]
	return e, ok
}

// LookupObstacle returns the definition of obstacle k, if any.
func (p Preset) LookupObstacle(k bubble.ObstacleKind) (bubble.Obstacle, bool) {
	o, ok := p.obstacles[k]
	return o, ok
}

// LookupCreature returns the definition of creature k, if any.
func (p Preset) LookupCreature(k bubble.CreatureKind) (bubble.Creature, bool) {
	c, ok := p.creatures[k]
	return c, ok
}

// Len returns the total number of definitions across all three catalogs.
func (p Preset) Len() int {
	return len(p.effects) + len(p.obstacles) + len(p.creatures)
}
