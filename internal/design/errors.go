package design

import "errors"

var (
	// ErrUnknownLevel is returned when loading a title that is not in the catalog.
	ErrUnknownLevel = errors.New("design: unknown level")
	// ErrEmptyTitle is returned when saving without a title.
	ErrEmptyTitle = errors.New("design: empty level title")
	// ErrCatalogUnreadable is returned when writing to a saved-level catalog
	// that could not be decoded when it was last read.
	ErrCatalogUnreadable = errors.New("design: saved levels unreadable")
)
