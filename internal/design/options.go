package design

import (
	"time"

	"go.uber.org/zap"

	"github.com/papapumpkin/bubbleforge/internal/store"
	"github.com/papapumpkin/bubbleforge/internal/telemetry"
)

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger. Nil keeps the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithEmitter records design events to e.
func WithEmitter(e *telemetry.Emitter) Option {
	return func(s *Session) { s.emitter = e }
}

// WithObserver registers o to be notified after each visible change to the
// active stage.
func WithObserver(o Observer) Option {
	return func(s *Session) { s.observer = o }
}

// WithCodec sets the codec used for every stored payload. Defaults to JSON.
func WithCodec(c store.Codec) Option {
	return func(s *Session) {
		if c != nil {
			s.codec = c
		}
	}
}

// WithClock overrides the time source used to stamp saved levels.
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		if now != nil {
			s.now = now
		}
	}
}
