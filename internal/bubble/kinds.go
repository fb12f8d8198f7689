package bubble

// EnergyKind is the elemental kind carried by a plain energy bubble.
type EnergyKind string

const (
	EnergyFire     EnergyKind = "fire"
	EnergyWater    EnergyKind = "water"
	EnergyGrass    EnergyKind = "grass"
	EnergyElectric EnergyKind = "electric"
	EnergyPsychic  EnergyKind = "psychic"
	EnergyFighting EnergyKind = "fighting"
)

// EnergyKinds returns every energy kind in palette order.
func EnergyKinds() []EnergyKind {
	return []EnergyKind{EnergyFire, EnergyWater, EnergyGrass, EnergyElectric, EnergyPsychic, EnergyFighting}
}

// Valid reports whether k is a known energy kind.
func (k EnergyKind) Valid() bool {
	switch k {
	case EnergyFire, EnergyWater, EnergyGrass, EnergyElectric, EnergyPsychic, EnergyFighting:
		return true
	}
	return false
}

// BallKind is the kind of capture ball held by a capture bubble.
type BallKind string

const (
	BallPoke   BallKind = "poke"
	BallGreat  BallKind = "great"
	BallUltra  BallKind = "ultra"
	BallMaster BallKind = "master"
)

// BallKinds returns every ball kind in palette order.
func BallKinds() []BallKind {
	return []BallKind{BallPoke, BallGreat, BallUltra, BallMaster}
}

// Valid reports whether k is a known ball kind.
func (k BallKind) Valid() bool {
	switch k {
	case BallPoke, BallGreat, BallUltra, BallMaster:
		return true
	}
	return false
}

// EffectKind keys an Effect definition in a preset catalog.
type EffectKind string

const (
	EffectBomb      EffectKind = "bomb"
	EffectLightning EffectKind = "lightning"
	EffectStar      EffectKind = "star"
	EffectMagnet    EffectKind = "magnet"
)

// EffectKinds returns every effect kind in palette order.
func EffectKinds() []EffectKind {
	return []EffectKind{EffectBomb, EffectLightning, EffectStar, EffectMagnet}
}

// Valid reports whether k is a known effect kind.
func (k EffectKind) Valid() bool {
	switch k {
	case EffectBomb, EffectLightning, EffectStar, EffectMagnet:
		return true
	}
	return false
}

// ObstacleKind keys an Obstacle definition in a preset catalog.
type ObstacleKind string

const (
	ObstacleMetal ObstacleKind = "metal"
	ObstacleRock  ObstacleKind = "rock"
	ObstacleIce   ObstacleKind = "ice"
)

// ObstacleKinds returns every obstacle kind in palette order.
func ObstacleKinds() []ObstacleKind {
	return []ObstacleKind{ObstacleMetal, ObstacleRock, ObstacleIce}
}

// Valid reports whether k is a known obstacle kind.
func (k ObstacleKind) Valid() bool {
	switch k {
	case ObstacleMetal, ObstacleRock, ObstacleIce:
		return true
	}
	return false
}

// CreatureKind keys a Creature definition in a preset catalog.
type CreatureKind string

const (
	CreatureEmberfox   CreatureKind = "emberfox"
	CreatureTidepup    CreatureKind = "tidepup"
	CreatureSproutling CreatureKind = "sproutling"
	CreatureVoltkit    CreatureKind = "voltkit"
)

// CreatureKinds returns every creature kind in palette order.
func CreatureKinds() []CreatureKind {
	return []CreatureKind{CreatureEmberfox, CreatureTidepup, CreatureSproutling, CreatureVoltkit}
}

// Valid reports whether k is a known creature kind.
func (k CreatureKind) Valid() bool {
	switch k {
	case CreatureEmberfox, CreatureTidepup, CreatureSproutling, CreatureVoltkit:
		return true
	}
	return false
}
