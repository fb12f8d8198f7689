package preset

import "errors"

// Sentinel errors for preset construction and bootstrapping.
var (
	// ErrUnavailable indicates the preset catalog could not be read back from the store.
	ErrUnavailable = errors.New("preset: catalog unavailable")
	// ErrUnknownKind indicates a definition keyed by a kind outside its closed set.
	ErrUnknownKind = errors.New("unknown kind")
	// ErrDuplicateKind indicates two definitions share the same kind.
	ErrDuplicateKind = errors.New("duplicate kind")
	// ErrMissingField indicates a required field (e.g. name) is empty.
	ErrMissingField = errors.New("required field missing")
	// ErrOutOfRange indicates a numeric field is outside its valid range.
	ErrOutOfRange = errors.New("value out of range")
)

// ValidationError records a problem with one definition.
type ValidationError struct {
	Section string // effects, obstacles or creatures
	Kind    string
	Field   string
	Err     error
}

// Error returns a human-readable string including the section and kind.
func (e *ValidationError) Error() string {
	if e.Kind != "" {
		return e.Section + ": " + e.Kind + ": " + e.Err.Error()
	}
	return e.Section + ": " + e.Err.Error()
}

// Unwrap returns the underlying error for use with errors.Is/As.
func (e *ValidationError) Unwrap() error {
	return e.Err
}
