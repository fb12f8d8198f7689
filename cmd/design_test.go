package cmd

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/papapumpkin/bubbleforge/internal/bubble"
	"github.com/papapumpkin/bubbleforge/internal/design"
	"github.com/papapumpkin/bubbleforge/internal/grid"
)

func TestParsePlacement(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    placement
		wantErr error
	}{
		{
			name:  "energy",
			input: "0,5=energy:fire",
			want:  placement{pos: grid.At(0, 5), typ: bubble.EnergyType(bubble.EnergyFire)},
		},
		{
			name:  "spaces and case",
			input: " 3 , 2 = Obstacle:METAL",
			want:  placement{pos: grid.At(3, 2), typ: bubble.ObstacleType(bubble.ObstacleMetal)},
		},
		{name: "missing equals", input: "0,5 energy:fire", wantErr: nil},
		{name: "bad position", input: "0=energy:fire", wantErr: grid.ErrInvalidPosition},
		{name: "bad category", input: "0,0=weather:rain", wantErr: bubble.ErrInvalidType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := parsePlacement(tt.input)
			if tt.want == (placement{}) {
				if err == nil {
					t.Fatalf("parsePlacement(%q) expected error", tt.input)
				}
				if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
					t.Errorf("parsePlacement(%q) error = %v, want %v", tt.input, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("parsePlacement(%q): %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("parsePlacement(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestDesignCmd_SaveShowDelete(t *testing.T) {
	dir := t.TempDir()

	out, err := execute(t, dir, "design", "Alpha",
		"--place", "0,0=energy:fire",
		"--place", "1,11=energy:water",
		"--place", "2,3=creature:emberfox",
		"--background", "cave",
	)
	if err != nil {
		t.Fatalf("design: %v", err)
	}
	if !strings.Contains(out, `saved "Alpha": 2 placed, 0 removed`) {
		t.Errorf("unexpected design output:\n%s", out)
	}
	if !strings.Contains(out, "skipped 1 placement") {
		t.Errorf("expected skipped placement to be reported, got:\n%s", out)
	}

	out, err = execute(t, dir, "levels")
	if err != nil {
		t.Fatalf("levels: %v", err)
	}
	if !strings.Contains(out, "levels (1)") || !strings.Contains(out, "  Alpha\n") {
		t.Errorf("unexpected levels output:\n%s", out)
	}

	out, err = execute(t, dir, "show", "Alpha")
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	for _, want := range []string{"Alpha  saved ", "background=cave", "bubbles: 2 of", "F energy:fire", "@ creature:emberfox"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected show output to contain %q, got:\n%s", want, out)
		}
	}

	out, err = execute(t, dir, "delete", "Alpha")
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if !strings.Contains(out, `deleted "Alpha"`) {
		t.Errorf("unexpected delete output:\n%s", out)
	}

	out, err = execute(t, dir, "levels")
	if err != nil {
		t.Fatalf("levels: %v", err)
	}
	if !strings.Contains(out, "(none)") {
		t.Errorf("expected empty listing after delete, got:\n%s", out)
	}
}

func TestDesignCmd_EditsExistingLevel(t *testing.T) {
	dir := t.TempDir()

	if _, err := execute(t, dir, "design", "Beta", "--place", "0,0=energy:grass", "--place", "0,1=capture:poke"); err != nil {
		t.Fatalf("first design: %v", err)
	}
	out, err := execute(t, dir, "design", "Beta", "--remove", "0,1", "--place", "4,4=effect:bomb", "--show")
	if err != nil {
		t.Fatalf("second design: %v", err)
	}
	for _, want := range []string{`1 placed, 1 removed`, "bubbles: 2 of", "G energy:grass", "* effect:bomb"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, out)
		}
	}
	if strings.Contains(out, "capture:poke") {
		t.Errorf("removed bubble still rendered:\n%s", out)
	}
}

func TestDesignCmd_ResetClearsLoadedLevel(t *testing.T) {
	dir := t.TempDir()

	if _, err := execute(t, dir, "design", "Gamma", "--place", "0,0=energy:fire"); err != nil {
		t.Fatalf("first design: %v", err)
	}
	out, err := execute(t, dir, "design", "Gamma", "--reset", "--show")
	if err != nil {
		t.Fatalf("reset design: %v", err)
	}
	if !strings.Contains(out, "bubbles: 0 of") {
		t.Errorf("expected reset stage, got:\n%s", out)
	}
}

func TestDesignCmd_PresetCatalog(t *testing.T) {
	dir := t.TempDir()

	if _, err := execute(t, dir, "design", "World 1", "--preset", "--music", "gym"); err != nil {
		t.Fatalf("design --preset: %v", err)
	}

	out, err := execute(t, dir, "levels", "--presets")
	if err != nil {
		t.Fatalf("levels --presets: %v", err)
	}
	if !strings.Contains(out, "  World 1\n") {
		t.Errorf("expected preset level listed, got:\n%s", out)
	}

	out, err = execute(t, dir, "levels")
	if err != nil {
		t.Fatalf("levels: %v", err)
	}
	if !strings.Contains(out, "(none)") {
		t.Errorf("preset level leaked into custom levels:\n%s", out)
	}

	out, err = execute(t, dir, "show", "World 1", "--preset")
	if err != nil {
		t.Fatalf("show --preset: %v", err)
	}
	if !strings.Contains(out, "music=gym") {
		t.Errorf("unexpected show output:\n%s", out)
	}
}

func TestDesignCmd_RejectsInvalidFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"bad placement", []string{"design", "X", "--place", "nope"}},
		{"bad removal", []string{"design", "X", "--remove", "a,b"}},
		{"bad effect", []string{"design", "X", "--effect", "hail"}},
		{"bad background", []string{"design", "X", "--background", "moon"}},
		{"bad music", []string{"design", "X", "--music", "polka"}},
		{"blank title", []string{"design", "   "}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			if _, err := execute(t, dir, tt.args...); err == nil {
				t.Errorf("expected error for %v", tt.args)
			}
		})
	}
}

func TestDesignCmd_BlankTitleIsEmptyTitle(t *testing.T) {
	_, err := execute(t, t.TempDir(), "design", " ")
	if !errors.Is(err, design.ErrEmptyTitle) {
		t.Errorf("error = %v, want %v", err, design.ErrEmptyTitle)
	}
}

func TestShowCmd_UnknownLevel(t *testing.T) {
	_, err := execute(t, t.TempDir(), "show", "Nowhere")
	if !errors.Is(err, design.ErrUnknownLevel) {
		t.Errorf("error = %v, want %v", err, design.ErrUnknownLevel)
	}
}

func TestDeleteCmd_UnknownLevel(t *testing.T) {
	_, err := execute(t, t.TempDir(), "delete", "Nowhere")
	if err == nil || !strings.Contains(err.Error(), `no custom level titled "Nowhere"`) {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestDesignCmd_OtherBackends(t *testing.T) {
	for _, backend := range []string{"sqlite", "bolt"} {
		t.Run(backend, func(t *testing.T) {
			dir := t.TempDir()
			if _, err := execute(t, dir, "--store", backend, "design", "Delta", "--place", "0,0=obstacle:rock"); err != nil {
				t.Fatalf("design: %v", err)
			}
			out, err := execute(t, dir, "--store", backend, "levels")
			if err != nil {
				t.Fatalf("levels: %v", err)
			}
			if !strings.Contains(out, "  Delta\n") {
				t.Errorf("expected Delta listed, got:\n%s", out)
			}
		})
	}
}

func TestDesignCmd_TOMLCodec(t *testing.T) {
	dir := t.TempDir()
	if _, err := execute(t, dir, "--codec", "toml", "design", "Echo", "--place", "0,0=energy:psychic"); err != nil {
		t.Fatalf("design: %v", err)
	}
	matches, _ := filepath.Glob(filepath.Join(dir, "*.toml"))
	if len(matches) != 2 {
		t.Errorf("expected presets and customLevels toml files, got %v", matches)
	}
}

func TestLevelCommands_TrimTitle(t *testing.T) {
	dir := t.TempDir()

	if _, err := execute(t, dir, "design", "  Padded ", "--place", "0,0=energy:fire"); err != nil {
		t.Fatalf("design: %v", err)
	}
	out, err := execute(t, dir, "show", " Padded  ")
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	if !strings.Contains(out, "Padded  saved ") {
		t.Errorf("unexpected show output:\n%s", out)
	}
	if _, err := execute(t, dir, "delete", "Padded "); err != nil {
		t.Fatalf("delete: %v", err)
	}
	out, err = execute(t, dir, "levels")
	if err != nil {
		t.Fatalf("levels: %v", err)
	}
	if !strings.Contains(out, "(none)") {
		t.Errorf("expected empty listing after delete, got:\n%s", out)
	}
}

func TestDesignCmd_CountsOnlyCellsThatChanged(t *testing.T) {
	dir := t.TempDir()

	out, err := execute(t, dir, "design", "Foxtrot",
		"--remove", "3,3",
		"--place", "0,0=energy:fire",
		"--place", "0,0=energy:water",
		"--place", "0,1=effect:nope",
	)
	if err != nil {
		t.Fatalf("design: %v", err)
	}
	if !strings.Contains(out, `saved "Foxtrot": 2 placed, 0 removed`) || !strings.Contains(out, "skipped 1 placement") {
		t.Errorf("unexpected design output:\n%s", out)
	}
}
