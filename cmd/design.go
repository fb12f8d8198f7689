package cmd

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/bubbleforge/internal/bubble"
	"github.com/papapumpkin/bubbleforge/internal/design"
	"github.com/papapumpkin/bubbleforge/internal/grid"
	"github.com/papapumpkin/bubbleforge/internal/stage"
	"github.com/papapumpkin/bubbleforge/internal/ui"
)

var designCmd = &cobra.Command{
	Use:   "design <title>",
	Short: "Edit a level and save it under title",
	Long: `Loads the level titled <title> when it exists, or starts from an empty
stage otherwise, applies the requested edits and saves the result.

Edits are applied in this order: --reset, --remove, --place, then the field
flags. Placements use the form ROW,COL=CATEGORY:KIND, for example
--place 0,5=energy:fire --place 1,2=obstacle:metal. Placements outside the
grid or naming a definition that does not exist are skipped.`,
	Args: cobra.ExactArgs(1),
	RunE: runDesign,
}

func init() {
	f := designCmd.Flags()
	f.StringArray("place", nil, "place a bubble: ROW,COL=CATEGORY:KIND with CATEGORY one of "+joinValues(bubble.Categories())+" (repeatable)")
	f.StringArray("remove", nil, "remove the bubble at ROW,COL (repeatable)")
	f.Bool("reset", false, "clear every bubble before placing")
	f.String("effect", "", "field effect: "+joinValues(stage.FieldEffects()))
	f.String("background", "", "background: "+joinValues(stage.Backgrounds()))
	f.String("music", "", "music: "+joinValues(stage.Musics()))
	f.Bool("preset", false, "edit the preset level catalog instead of custom levels")
	f.Bool("show", false, "render the stage after saving")

	rootCmd.AddCommand(designCmd)
}

// edits holds the parsed flags of a design invocation.
type edits struct {
	reset      bool
	removals   []grid.Position
	placements []placement
	effect     *stage.FieldEffect
	background *stage.Background
	music      *stage.Music
}

type placement struct {
	pos grid.Position
	typ bubble.Type
}

// tally counts the cell changes a session reports.
type tally struct {
	placed, removed int
}

func (t *tally) StageChanged(c design.Change) {
	switch c.Kind {
	case design.ChangePlaced:
		t.placed++
	case design.ChangeRemoved:
		t.removed++
	}
}

func runDesign(cmd *cobra.Command, args []string) error {
	title := levelTitle(args)
	e, err := parseEdits(cmd)
	if err != nil {
		return err
	}
	toPresets, _ := cmd.Flags().GetBool("preset")
	show, _ := cmd.Flags().GetBool("show")

	changes := &tally{}
	ws, err := openWorkspace(cmd.Context(), design.WithObserver(changes))
	if err != nil {
		return err
	}
	defer ws.Close()

	s := ws.session
	existing, load, save := s.Levels(), s.LoadLevel, s.SaveLevel
	if toPresets {
		existing, load, save = s.PresetLevels(), s.LoadPresetLevel, s.SavePresetLevel
	}
	if slices.Contains(existing, title) {
		if err := load(title); err != nil {
			return err
		}
	}

	printer := ui.New(cmd.OutOrStdout())
	placed, skipped, removed := applyEdits(s, e, changes)
	if err := save(cmd.Context(), title); err != nil {
		printer.Error(err.Error())
		return err
	}

	printer.Success(fmt.Sprintf("saved %q: %d placed, %d removed", title, placed, removed))
	if skipped > 0 {
		printer.Info(fmt.Sprintf("skipped %d placement(s) outside the grid or without a definition", skipped))
	}
	if show {
		printer.Stage(s.CopyOfStage())
	}
	return nil
}

// applyEdits runs e against s through a palette, the way a grid view feeds
// taps and long presses, and reports from t how many placements landed, how
// many were skipped and how many bubbles were removed. t must observe s.
func applyEdits(s *design.Session, e edits, t *tally) (placed, skipped, removed int) {
	before := *t
	if e.reset {
		s.ResetDesign()
	}
	palette := design.NewPalette(s)
	for _, p := range e.removals {
		palette.OnForceRemove(p)
	}
	for _, p := range e.placements {
		palette.Select(p.typ)
		palette.OnSelect(p.pos)
	}
	if e.effect != nil {
		s.SetFieldEffect(*e.effect)
	}
	if e.background != nil {
		s.SetBackground(*e.background)
	}
	if e.music != nil {
		s.SetMusic(*e.music)
	}
	placed = t.placed - before.placed
	removed = t.removed - before.removed
	return placed, len(e.placements) - placed, removed
}

func parseEdits(cmd *cobra.Command) (edits, error) {
	f := cmd.Flags()
	var e edits
	e.reset, _ = f.GetBool("reset")

	removals, _ := f.GetStringArray("remove")
	for _, r := range removals {
		p, err := grid.ParsePosition(r)
		if err != nil {
			return edits{}, fmt.Errorf("--remove: %w", err)
		}
		e.removals = append(e.removals, p)
	}

	places, _ := f.GetStringArray("place")
	for _, raw := range places {
		p, err := parsePlacement(raw)
		if err != nil {
			return edits{}, fmt.Errorf("--place: %w", err)
		}
		e.placements = append(e.placements, p)
	}

	if v, _ := f.GetString("effect"); v != "" {
		fe, err := stage.ParseFieldEffect(v)
		if err != nil {
			return edits{}, fmt.Errorf("--effect: %w", err)
		}
		e.effect = &fe
	}
	if v, _ := f.GetString("background"); v != "" {
		bg, err := stage.ParseBackground(v)
		if err != nil {
			return edits{}, fmt.Errorf("--background: %w", err)
		}
		e.background = &bg
	}
	if v, _ := f.GetString("music"); v != "" {
		m, err := stage.ParseMusic(v)
		if err != nil {
			return edits{}, fmt.Errorf("--music: %w", err)
		}
		e.music = &m
	}
	return e, nil
}

// parsePlacement parses ROW,COL=CATEGORY:KIND.
func parsePlacement(s string) (placement, error) {
	posText, typeText, ok := strings.Cut(s, "=")
	if !ok {
		return placement{}, fmt.Errorf("invalid placement %q: want ROW,COL=CATEGORY:KIND", s)
	}
	pos, err := grid.ParsePosition(posText)
	if err != nil {
		return placement{}, err
	}
	typ, err := bubble.ParseType(typeText)
	if err != nil {
		return placement{}, err
	}
	return placement{pos: pos, typ: typ}, nil
}

func joinValues[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}
