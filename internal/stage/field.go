package stage

import "fmt"

// FieldEffect is the weather-like effect applied to the whole stage.
type FieldEffect string

const (
	FieldNone      FieldEffect = "none"
	FieldRain      FieldEffect = "rain"
	FieldSnow      FieldEffect = "snow"
	FieldSandstorm FieldEffect = "sandstorm"
	FieldFog       FieldEffect = "fog"
)

// FieldEffects returns every field effect in menu order.
func FieldEffects() []FieldEffect {
	return []FieldEffect{FieldNone, FieldRain, FieldSnow, FieldSandstorm, FieldFog}
}

// Background is the backdrop drawn behind the grid.
type Background string

const (
	BackgroundMeadow  Background = "meadow"
	BackgroundCave    Background = "cave"
	BackgroundOcean   Background = "ocean"
	BackgroundVolcano Background = "volcano"
	BackgroundNight   Background = "night"
)

// Backgrounds returns every background in menu order.
func Backgrounds() []Background {
	return []Background{BackgroundMeadow, BackgroundCave, BackgroundOcean, BackgroundVolcano, BackgroundNight}
}

// Music is the track played while the stage is active.
type Music string

const (
	MusicRoute   Music = "route"
	MusicBattle  Music = "battle"
	MusicGym     Music = "gym"
	MusicVictory Music = "victory"
	MusicSilence Music = "silence"
)

// Musics returns every music track in menu order.
func Musics() []Music {
	return []Music{MusicRoute, MusicBattle, MusicGym, MusicVictory, MusicSilence}
}

// Field is the environmental attribute triple of a stage.
type Field struct {
	Effect     FieldEffect `json:"effect" toml:"effect" yaml:"effect"`
	Background Background  `json:"background" toml:"background" yaml:"background"`
	Music      Music       `json:"music" toml:"music" yaml:"music"`
}

// DefaultField is the field every new stage starts with.
func DefaultField() Field {
	return Field{Effect: FieldNone, Background: BackgroundMeadow, Music: MusicRoute}
}

// ParseFieldEffect returns the FieldEffect named s.
func ParseFieldEffect(s string) (FieldEffect, error) {
	for _, v := range FieldEffects() {
		if string(v) == s {
			return v, nil
		}
	}
	return "", fmt.Errorf("stage: unknown field effect %q", s)
}

// ParseBackground returns the Background named s.
func ParseBackground(s string) (Background, error) {
	for _, v := range Backgrounds() {
		if string(v) == s {
			return v, nil
		}
	}
	return "", fmt.Errorf("stage: unknown background %q", s)
}

// ParseMusic returns the Music named s.
func ParseMusic(s string) (Music, error) {
	for _, v := range Musics() {
		if string(v) == s {
			return v, nil
		}
	}
	return "", fmt.Errorf("stage: unknown music %q", s)
}

// normalize replaces unknown or empty attributes with their defaults. Stored
// documents written by older builds may omit the field entirely.
func (f Field) normalize() Field {
	def := DefaultField()
	if _, err := ParseFieldEffect(string(f.Effect)); err != nil {
		f.Effect = def.Effect
	}
	if _, err := ParseBackground(string(f.Background)); err != nil {
		f.Background = def.Background
	}
	if _, err := ParseMusic(string(f.Music)); err != nil {
		f.Music = def.Music
	}
	return f
}
