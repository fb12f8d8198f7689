package design

import (
	"context"
	"fmt"
	"maps"
	"strings"

	"go.uber.org/zap"

	"github.com/papapumpkin/bubbleforge/internal/grid"
	"github.com/papapumpkin/bubbleforge/internal/stage"
	"github.com/papapumpkin/bubbleforge/internal/store"
	"github.com/papapumpkin/bubbleforge/internal/telemetry"
)

// SaveLevel stamps the active stage with title and the current time, stores
// it in the custom catalog and reloads that catalog from the store. If the
// write fails the in-memory catalog is unchanged.
func (s *Session) SaveLevel(ctx context.Context, title string) error {
	return s.save(ctx, title, store.KeyCustomLevels)
}

// SavePresetLevel is SaveLevel for the preset-flagged catalog.
func (s *Session) SavePresetLevel(ctx context.Context, title string) error {
	return s.save(ctx, title, store.KeyPresetLevels)
}

// LoadLevel replaces the active stage with a copy of the custom level named
// title. An unknown title returns ErrUnknownLevel and leaves the active
// stage as it was.
func (s *Session) LoadLevel(title string) error {
	return s.load(title, store.KeyCustomLevels)
}

// LoadPresetLevel is LoadLevel for the preset-flagged catalog.
func (s *Session) LoadPresetLevel(title string) error {
	return s.load(title, store.KeyPresetLevels)
}

// DeleteLevel removes title from the custom catalog, persists the catalog
// and reloads it from the store. Deleting an absent title still rewrites
// the catalog. A catalog that could not be decoded is never rewritten; see
// ErrCatalogUnreadable.
func (s *Session) DeleteLevel(ctx context.Context, title string) error {
	if err := s.writable(store.KeyCustomLevels); err != nil {
		return fmt.Errorf("design: delete level %q: %w", title, err)
	}
	next := maps.Clone(s.custom)
	delete(next, title)
	if err := s.writeCatalog(ctx, store.KeyCustomLevels, next); err != nil {
		return fmt.Errorf("design: delete level %q: %w", title, err)
	}
	reloaded, err := s.readCatalog(ctx, store.KeyCustomLevels)
	if err != nil {
		return fmt.Errorf("design: reload after delete: %w", err)
	}
	s.custom = reloaded

	s.logger.Info("level deleted", zap.String("title", title))
	s.emit(telemetry.KindLevelDeleted, title, nil)
	return nil
}

// Refresh re-reads both saved-level catalogs from the store. Use it when
// another writer may have changed the store. A successful refresh makes
// previously unreadable catalogs writable again.
func (s *Session) Refresh(ctx context.Context) error {
	custom, err := s.readCatalog(ctx, store.KeyCustomLevels)
	if err != nil {
		return fmt.Errorf("design: refresh: %w", err)
	}
	presetLevels, err := s.readCatalog(ctx, store.KeyPresetLevels)
	if err != nil {
		return fmt.Errorf("design: refresh: %w", err)
	}
	s.custom, s.presetLevels = custom, presetLevels
	clear(s.unreadable)
	s.logger.Debug("catalogs refreshed",
		zap.Int("levels", len(custom)),
		zap.Int("preset_levels", len(presetLevels)),
	)
	return nil
}

func (s *Session) save(ctx context.Context, title, key string) error {
	if strings.TrimSpace(title) == "" {
		return ErrEmptyTitle
	}
	if err := s.writable(key); err != nil {
		return fmt.Errorf("design: save level %q: %w", title, err)
	}
	s.stage.SaveAs(title, s.now())

	next := maps.Clone(s.catalog(key))
	if next == nil {
		next = make(map[string]*stage.Stage)
	}
	next[title] = s.stage.Clone()
	if err := s.writeCatalog(ctx, key, next); err != nil {
		return fmt.Errorf("design: save level %q: %w", title, err)
	}
	reloaded, err := s.readCatalog(ctx, key)
	if err != nil {
		return fmt.Errorf("design: reload after save: %w", err)
	}
	s.setCatalog(key, reloaded)

	s.logger.Info("level saved",
		zap.String("title", title),
		zap.String("catalog", key),
		zap.Int("bubbles", s.stage.Len()),
	)
	s.emit(telemetry.KindLevelSaved, title, map[string]any{
		"catalog": key,
		"bubbles": s.stage.Len(),
	})
	return nil
}

func (s *Session) load(title, key string) error {
	saved, ok := s.catalog(key)[title]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownLevel, title)
	}
	s.stage = saved.Clone()

	s.logger.Info("level loaded", zap.String("title", title), zap.String("catalog", key))
	s.emit(telemetry.KindLevelLoaded, title, map[string]any{"catalog": key})
	s.notify(ChangeLoaded, grid.Position{})
	return nil
}

func (s *Session) catalog(key string) map[string]*stage.Stage {
	if key == store.KeyPresetLevels {
		return s.presetLevels
	}
	return s.custom
}

func (s *Session) setCatalog(key string, levels map[string]*stage.Stage) {
	if key == store.KeyPresetLevels {
		s.presetLevels = levels
		return
	}
	s.custom = levels
}

func (s *Session) writeCatalog(ctx context.Context, key string, levels map[string]*stage.Stage) error {
	docs := make(map[string]stage.Document, len(levels))
	for title, lvl := range levels {
		docs[title] = lvl.Document()
	}
	return store.Put(ctx, s.store, s.codec, key, docs)
}

// readCatalog returns the levels stored under key. An absent key is an
// empty catalog.
func (s *Session) readCatalog(ctx context.Context, key string) (map[string]*stage.Stage, error) {
	docs, _, err := store.Get[map[string]stage.Document](ctx, s.store, s.codec, key)
	if err != nil {
		return nil, err
	}
	levels := make(map[string]*stage.Stage, len(docs))
	for title, doc := range docs {
		levels[title] = stage.FromDocument(doc, s.dims)
	}
	return levels, nil
}

// loadOrEmpty is readCatalog for session start. An unreadable catalog lists
// as empty and is marked so that saves and deletes do not overwrite it.
func (s *Session) loadOrEmpty(ctx context.Context, key string) map[string]*stage.Stage {
	levels, err := s.readCatalog(ctx, key)
	if err != nil {
		s.logger.Warn("saved levels unreadable, starting empty", zap.String("catalog", key), zap.Error(err))
		s.unreadable[key] = err
		return make(map[string]*stage.Stage)
	}
	return levels
}

func (s *Session) writable(key string) error {
	if err, ok := s.unreadable[key]; ok {
		return fmt.Errorf("%w: %s: %v", ErrCatalogUnreadable, key, err)
	}
	return nil
}
