package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNew_Levels(t *testing.T) {
	t.Parallel()
	tests := []struct {
		level   string
		verbose bool
		want    zapcore.Level
		wantErr bool
	}{
		{"info", false, zapcore.InfoLevel, false},
		{"warn", false, zapcore.WarnLevel, false},
		{"error", true, zapcore.DebugLevel, false},
		{"", false, zapcore.InfoLevel, false},
		{"chatty", false, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logger, err := New(tt.level, tt.verbose)
			if (err != nil) != tt.wantErr {
				t.Fatalf("New(%q, %v) error = %v, wantErr %v", tt.level, tt.verbose, err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if !logger.Core().Enabled(tt.want) {
				t.Errorf("New(%q, %v): level %v not enabled", tt.level, tt.verbose, tt.want)
			}
			if tt.want > zapcore.DebugLevel && logger.Core().Enabled(tt.want-1) {
				t.Errorf("New(%q, %v): level %v unexpectedly enabled", tt.level, tt.verbose, tt.want-1)
			}
		})
	}
}
