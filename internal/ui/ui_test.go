package ui

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/papapumpkin/bubbleforge/internal/bubble"
	"github.com/papapumpkin/bubbleforge/internal/grid"
	"github.com/papapumpkin/bubbleforge/internal/stage"
)

func TestGrid(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	NewPlain(&buf).Grid(grid.Dimensions{Rows: 3, Columns: 4})

	out := buf.String()
	checks := []string{"3x4, 11 cells", "row  0:  4 cells", "row  1:  3 cells", "row  2:  4 cells"}
	for _, c := range checks {
		if !strings.Contains(out, c) {
			t.Errorf("expected output to contain %q, got:\n%s", c, out)
		}
	}
}

func TestLevels(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		titles []string
		want   []string
	}{
		{"empty", nil, []string{"levels (0)", "(none)"}},
		{"some", []string{"a", "b"}, []string{"levels (2)", "  a\n", "  b\n"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			NewPlain(&buf).Levels("levels", tt.titles)
			for _, w := range tt.want {
				if !strings.Contains(buf.String(), w) {
					t.Errorf("expected output to contain %q, got:\n%s", w, buf.String())
				}
			}
		})
	}
}

func TestStage_RendersStaggeredGrid(t *testing.T) {
	t.Parallel()
	s := stage.New(grid.Dimensions{Rows: 2, Columns: 3})
	s.InsertBubble(bubble.Bubble{Position: grid.At(0, 0), Type: bubble.EnergyType(bubble.EnergyFire)})
	s.InsertBubble(bubble.Bubble{Position: grid.At(1, 1), Type: bubble.CaptureType(bubble.BallPoke)})
	s.SaveAs("Demo", time.Date(2026, 10, 17, 9, 30, 0, 0, time.UTC))

	var buf bytes.Buffer
	NewPlain(&buf).Stage(s)
	out := buf.String()

	checks := []string{
		"Demo  saved 17 Oct 2026 09:30",
		"field: effect=none background=meadow music=route",
		"bubbles: 2 of 5 cells",
		"F . .\n",
		" . o\n",
		"  F energy:fire\n",
		"  o capture:poke\n",
	}
	for _, c := range checks {
		if !strings.Contains(out, c) {
			t.Errorf("expected output to contain %q, got:\n%s", c, out)
		}
	}
}

func TestStage_Untitled(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	NewPlain(&buf).Stage(stage.New(grid.Dimensions{Rows: 1, Columns: 2}))
	if !strings.HasPrefix(buf.String(), "(untitled)\n") {
		t.Errorf("unexpected header:\n%s", buf.String())
	}
}

func TestSymbol_DistinctEnergies(t *testing.T) {
	t.Parallel()
	seen := make(map[string]bubble.EnergyKind)
	for _, k := range bubble.EnergyKinds() {
		sym, _ := Symbol(bubble.EnergyType(k))
		if prev, ok := seen[sym]; ok {
			t.Errorf("energies %q and %q share symbol %q", prev, k, sym)
		}
		seen[sym] = k
	}
	if sym, _ := Symbol(bubble.Type{Category: "weather"}); sym != "?" {
		t.Errorf("Symbol(unknown) = %q, want ?", sym)
	}
}

func TestPresets(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	NewPlain(&buf).Presets(
		map[bubble.EffectKind]bubble.Effect{bubble.EffectBomb: {Kind: bubble.EffectBomb, Name: "Bomb", Radius: 1}},
		map[bubble.ObstacleKind]bubble.Obstacle{bubble.ObstacleMetal: {Kind: bubble.ObstacleMetal, Name: "Metal", Indestructible: true}},
		map[bubble.CreatureKind]bubble.Creature{bubble.CreatureVoltkit: {Kind: bubble.CreatureVoltkit, Name: "Voltkit", Energy: bubble.EnergyElectric, CatchRate: 0.3}},
	)
	out := buf.String()
	for _, c := range []string{"radius=1", "indestructible", "catch=30%", "electric"} {
		if !strings.Contains(out, c) {
			t.Errorf("expected output to contain %q, got:\n%s", c, out)
		}
	}
}

func TestError_IsStyled(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	var buf bytes.Buffer
	New(&buf).Error("boom")
	if strings.Contains(buf.String(), "\033[") {
		t.Errorf("NO_COLOR output contains escape codes: %q", buf.String())
	}
	if !strings.Contains(buf.String(), "error: boom") {
		t.Errorf("unexpected output: %q", buf.String())
	}
}
