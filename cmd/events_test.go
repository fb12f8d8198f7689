package cmd

import (
	"bufio"
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

func TestPrintEvent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line string
		want string
	}{
		{
			name: "session and title",
			line: `{"ts":"2026-10-17T09:30:00Z","kind":"level_saved","session":"1b4e28ba-2fa1-11d2-883f-0016d3cca427","title":"Alpha","data":{"catalog":"customLevels","bubbles":3}}`,
			want: `[09:30:00] level_saved session=1b4e28ba title="Alpha" bubbles=3 catalog=customLevels`,
		},
		{
			name: "no data",
			line: `{"ts":"2026-10-17T09:30:05Z","kind":"design_reset"}`,
			want: `[09:30:05] design_reset`,
		},
		{
			name: "non-map data",
			line: `{"ts":"2026-10-17T09:30:05Z","kind":"custom","data":[1,2]}`,
			want: `[09:30:05] custom [1,2]`,
		},
		{
			name: "garbage",
			line: `not json`,
			want: `??? not json`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			printEvent(&buf, tt.line)
			if got := strings.TrimSuffix(buf.String(), "\n"); got != tt.want {
				t.Errorf("printEvent:\n got %s\nwant %s", got, tt.want)
			}
		})
	}
}

func TestFormatDataMap_SortsKeys(t *testing.T) {
	t.Parallel()

	got := formatDataMap(map[string]any{"row": 1, "col": 5, "attr": "music"})
	if want := "attr=music col=5 row=1"; got != want {
		t.Errorf("formatDataMap = %q, want %q", got, want)
	}
}

func TestPrintLines_SkipsBlankLines(t *testing.T) {
	t.Parallel()

	input := `{"ts":"2026-10-17T09:30:00Z","kind":"session_start"}` + "\n\n" +
		`{"ts":"2026-10-17T09:30:01Z","kind":"design_reset"}` + "\n"
	var buf bytes.Buffer
	if err := printLines(&buf, bufio.NewReader(strings.NewReader(input))); err != nil {
		t.Fatalf("printLines: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d:\n%s", len(lines), buf.String())
	}
}

func TestEventsCmd_ReadsSessionLog(t *testing.T) {
	dir := t.TempDir()
	events := filepath.Join(dir, "events.jsonl")
	t.Setenv("BUBBLEFORGE_EVENTS_FILE", events)

	if _, err := execute(t, dir, "design", "Alpha", "--place", "0,0=energy:fire", "--effect", "rain"); err != nil {
		t.Fatalf("design: %v", err)
	}

	out, err := execute(t, dir, "events")
	if err != nil {
		t.Fatalf("events: %v", err)
	}
	for _, want := range []string{"session_start", "bubble_placed", "field_changed", `level_saved session=`, `title="Alpha"`} {
		if !strings.Contains(out, want) {
			t.Errorf("expected events output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestEventsCmd_NoLogConfigured(t *testing.T) {
	t.Setenv("BUBBLEFORGE_EVENTS_FILE", "")
	_, err := execute(t, t.TempDir(), "events")
	if err == nil || !strings.Contains(err.Error(), "no event log configured") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestWatchCmd_RequiresFileBackend(t *testing.T) {
	_, err := execute(t, t.TempDir(), "--store", "memory", "watch")
	if err == nil || !strings.Contains(err.Error(), "cannot be watched") {
		t.Errorf("unexpected error: %v", err)
	}
}
