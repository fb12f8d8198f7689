// Package ansi provides ANSI escape code constants and helpers for terminal output.
// All colored/styled terminal output should reference these constants to avoid duplication.
package ansi

import "os"

// ANSI SGR (Select Graphic Rendition) codes.
const (
	Reset   = "\033[0m"
	Bold    = "\033[1m"
	Dim     = "\033[2m"
	Blue    = "\033[34m"
	Yellow  = "\033[33m"
	Green   = "\033[32m"
	Red     = "\033[31m"
	Cyan    = "\033[36m"
	Magenta = "\033[35m"
	White   = "\033[37m"
)

// Style applies SGR codes to text.
type Style struct {
	enabled bool
}

// NewStyle returns a Style that emits escape codes unless the NO_COLOR
// environment variable is set.
func NewStyle() Style {
	_, noColor := os.LookupEnv("NO_COLOR")
	return Style{enabled: !noColor}
}

// Plain returns a Style that never emits escape codes.
func Plain() Style {
	return Style{}
}

// Wrap returns s surrounded by codes and a trailing Reset.
func (st Style) Wrap(s string, codes ...string) string {
	if !st.enabled || len(codes) == 0 {
		return s
	}
	out := ""
	for _, c := range codes {
		out += c
	}
	return out + s + Reset
}
