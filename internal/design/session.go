// Package design is the level-design orchestrator. A Session owns the active
// stage being edited, the preset catalog placements resolve against, and the
// two saved-level catalogs, and keeps all of them consistent with the store.
//
// A Session is meant for a single caller. It holds no locks; LoadLevel swaps
// in a fully built copy so readers of an earlier snapshot are unaffected.
package design

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/papapumpkin/bubbleforge/internal/bubble"
	"github.com/papapumpkin/bubbleforge/internal/grid"
	"github.com/papapumpkin/bubbleforge/internal/preset"
	"github.com/papapumpkin/bubbleforge/internal/stage"
	"github.com/papapumpkin/bubbleforge/internal/store"
	"github.com/papapumpkin/bubbleforge/internal/telemetry"
)

// Session is a level-design session.
type Session struct {
	id    string
	store store.Store
	codec store.Codec
	dims  grid.Dimensions

	presets      preset.Preset
	stage        *stage.Stage
	custom       map[string]*stage.Stage
	presetLevels map[string]*stage.Stage
	unreadable   map[string]error // catalogs that failed to decode, by key

	logger   *zap.Logger
	emitter  *telemetry.Emitter
	observer Observer
	now      func() time.Time
}

// New starts a session on st. It writes the presets built from defaults and
// reads them back, loads both saved-level catalogs (absent catalogs are
// empty) and starts an empty stage of size dims. A preset catalog that
// cannot be read back fails with preset.ErrUnavailable.
func New(ctx context.Context, st store.Store, dims grid.Dimensions, defaults preset.Defaults, opts ...Option) (*Session, error) {
	if err := dims.Validate(); err != nil {
		return nil, fmt.Errorf("design: %w", err)
	}

	s := &Session{
		id:         uuid.NewString(),
		store:      st,
		codec:      store.JSON(),
		dims:       dims,
		unreadable: make(map[string]error),
		logger:     zap.NewNop(),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.Named("design").With(zap.String("session", s.id))

	presets, err := preset.Bootstrap(ctx, st, s.codec, defaults)
	if err != nil {
		return nil, fmt.Errorf("design: load presets: %w", err)
	}
	s.presets = presets
	s.custom = s.loadOrEmpty(ctx, store.KeyCustomLevels)
	s.presetLevels = s.loadOrEmpty(ctx, store.KeyPresetLevels)
	s.stage = stage.New(dims)

	s.logger.Info("session started",
		zap.Stringer("dimensions", dims),
		zap.String("codec", s.codec.Name()),
		zap.Int("definitions", presets.Len()),
		zap.Int("levels", len(s.custom)),
		zap.Int("preset_levels", len(s.presetLevels)),
	)
	s.emit(telemetry.KindSessionStart, "", map[string]any{
		"rows":    dims.Rows,
		"columns": dims.Columns,
	})
	return s, nil
}

// ID returns the session identifier attached to logs and telemetry.
func (s *Session) ID() string { return s.id }

// Dimensions returns the lattice size of new stages.
func (s *Session) Dimensions() grid.Dimensions { return s.dims }

// BubbleType returns the type of the bubble at p on the active stage.
func (s *Session) BubbleType(p grid.Position) (bubble.Type, bool) {
	b, ok := s.stage.Bubble(p)
	if !ok {
		return bubble.Type{}, false
	}
	return b.Type, true
}

// Bubbles returns a snapshot of the active stage's bubbles.
func (s *Session) Bubbles() map[grid.Position]bubble.Bubble {
	return s.stage.Bubbles()
}

// CopyOfStage returns an independent copy of the active stage.
func (s *Session) CopyOfStage() *stage.Stage {
	return s.stage.Clone()
}

// Field returns the field of the active stage.
func (s *Session) Field() stage.Field { return s.stage.Field() }

// Meta returns the save metadata of the active stage.
func (s *Session) Meta() stage.Meta { return s.stage.Meta() }

// Presets returns the definitions loaded from the store at startup.
func (s *Session) Presets() preset.Preset { return s.presets }

// Effects returns a copy of the effect definitions keyed by kind.
func (s *Session) Effects() map[bubble.EffectKind]bubble.Effect { return s.presets.Effects() }

// Obstacles returns a copy of the obstacle definitions keyed by kind.
func (s *Session) Obstacles() map[bubble.ObstacleKind]bubble.Obstacle {
	return s.presets.Obstacles()
}

// Creatures returns a copy of the creature definitions keyed by kind.
func (s *Session) Creatures() map[bubble.CreatureKind]bubble.Creature {
	return s.presets.Creatures()
}

// Levels returns the custom level titles in ascending order.
func (s *Session) Levels() []string {
	return slices.Sorted(maps.Keys(s.custom))
}

// PresetLevels returns the preset-flagged level titles in ascending order.
func (s *Session) PresetLevels() []string {
	return slices.Sorted(maps.Keys(s.presetLevels))
}

// InsertBubble resolves t and places it at p, replacing any bubble already
// there. Types that do not resolve and positions outside the lattice are
// ignored. It reports whether the stage changed.
func (s *Session) InsertBubble(p grid.Position, t bubble.Type) bool {
	b, ok := bubble.Resolve(t, s.presets)
	if !ok {
		s.logger.Debug("ignoring unresolvable bubble", zap.Stringer("type", t), zap.Stringer("position", p))
		return false
	}
	if !s.stage.InsertBubble(b.At(p)) {
		s.logger.Debug("ignoring placement outside grid", zap.Stringer("type", t), zap.Stringer("position", p))
		return false
	}
	s.emit(telemetry.KindBubblePlaced, "", map[string]any{
		"position": p.String(),
		"type":     t.String(),
	})
	s.notify(ChangePlaced, p)
	return true
}

// RemoveBubble clears p. It reports whether a bubble was removed.
func (s *Session) RemoveBubble(p grid.Position) bool {
	if !s.stage.RemoveBubble(p) {
		return false
	}
	s.emit(telemetry.KindBubbleRemoved, "", map[string]any{"position": p.String()})
	s.notify(ChangeRemoved, p)
	return true
}

// ResetDesign clears every bubble. The field and title are kept.
func (s *Session) ResetDesign() {
	n := s.stage.Len()
	s.stage.ResetBubbles()
	s.emit(telemetry.KindDesignReset, "", map[string]any{"cleared": n})
	s.notify(ChangeReset, grid.Position{})
}

// SetFieldEffect sets the field effect of the active stage.
func (s *Session) SetFieldEffect(e stage.FieldEffect) {
	s.stage.SetEffect(e)
	s.fieldChanged("effect", string(e))
}

// SetBackground sets the background of the active stage.
func (s *Session) SetBackground(b stage.Background) {
	s.stage.SetBackground(b)
	s.fieldChanged("background", string(b))
}

// SetMusic sets the music of the active stage.
func (s *Session) SetMusic(m stage.Music) {
	s.stage.SetMusic(m)
	s.fieldChanged("music", string(m))
}

func (s *Session) fieldChanged(attr, value string) {
	s.emit(telemetry.KindFieldChanged, "", map[string]any{attr: value})
	s.notify(ChangeField, grid.Position{})
}

func (s *Session) notify(kind ChangeKind, p grid.Position) {
	if s.observer == nil {
		return
	}
	s.observer.StageChanged(Change{Kind: kind, Position: p, Bubbles: s.stage.Bubbles()})
}

// emit records a telemetry event. Failures are logged, never returned.
func (s *Session) emit(kind, title string, data any) {
	if s.emitter == nil {
		return
	}
	err := s.emitter.Emit(telemetry.Event{
		Timestamp: s.now(),
		Kind:      kind,
		SessionID: s.id,
		Title:     title,
		Data:      data,
	})
	if err != nil {
		s.logger.Warn("telemetry emit failed", zap.String("kind", kind), zap.Error(err))
	}
}
