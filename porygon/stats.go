package porygon

import (
	"math"
)

// StatBlock holds one value per stat. It is used for base stats, EV and IV spreads, and computed stats.
type StatBlock struct {
	Hp       int `json:"hp"`
	Attack   int `json:"attack"`
	Def      int `json:"defense"`
	SpAttack int `json:"special-attack"`
	SpDef    int `json:"special-defense"`
	Speed    int `json:"speed"`
}

// NewStatBlock builds a StatBlock from values ordered HP, ATTACK, DEF, SPATTACK, SPDEF, SPEED
func NewStatBlock(values [6]int) StatBlock {
	return StatBlock{
		Hp:       values[0],
		Attack:   values[1],
		Def:      values[2],
		SpAttack: values[3],
		SpDef:    values[4],
		Speed:    values[5],
	}
}

// Spread is the inverse of NewStatBlock
func (s StatBlock) Spread() [6]int {
	return [6]int{s.Hp, s.Attack, s.Def, s.SpAttack, s.SpDef, s.Speed}
}

// Get returns the value for a stat name, or 0 if the name isn't a stat
func (s StatBlock) Get(stat string) int {
	switch stat {
	case STAT_HP:
		return s.Hp
	case STAT_ATTACK:
		return s.Attack
	case STAT_DEFENSE:
		return s.Def
	case STAT_SPATTACK:
		return s.SpAttack
	case STAT_SPDEF:
		return s.SpDef
	case STAT_SPEED:
		return s.Speed
	default:
		return 0
	}
}

func (s StatBlock) Total() int {
	return s.Hp + s.Attack + s.Def + s.SpAttack + s.SpDef + s.Speed
}

func (s StatBlock) Average() float64 {
	return float64(s.Total()) / 6
}

// ComputeStat calculates the in-battle value of a stat.
//
// Non-HP stats: floor((floor((2*base + iv + floor(ev/4)) * level / 100) + 5) * natureModifier)
//
// HP ignores natureModifier: floor((2*base + iv + floor(ev/4)) * level / 100) + level + 10
//
// Nothing is range checked here, see ValidateSpread.
func ComputeStat(base int, level int, ev int, iv int, natureModifier float64, isHP bool) int {
	statNumerator := (2*base + iv + floorDiv(ev, 4)) * level
	scaled := floorDiv(statNumerator, 100)

	if isHP {
		return scaled + level + 10
	}

	return applyModifier(scaled+5, natureModifier)
}

// ComputeStats runs ComputeStat over all six stats, taking nature modifiers from natureName
func ComputeStats(base StatBlock, level int, evs StatBlock, ivs StatBlock, natureName string) StatBlock {
	var computed [6]int

	baseSpread := base.Spread()
	evSpread := evs.Spread()
	ivSpread := ivs.Spread()

	for i, stat := range STAT_NAMES {
		isHP := stat == STAT_HP

		natureMod := 1.0
		if !isHP {
			natureMod = NatureModifier(natureName, stat)
		}

		computed[i] = ComputeStat(baseSpread[i], level, evSpread[i], ivSpread[i], natureMod, isHP)
	}

	internalLogger.V(2).Info("computed stats",
		"level", level,
		"nature", natureName,
		"base", baseSpread,
		"evs", evSpread,
		"ivs", ivSpread,
		"stats", computed,
	)

	return NewStatBlock(computed)
}

// applyModifier floors value * mod. The epsilon makes a product that should be a whole number,
// but lands just under it in floating point, still floor to that number.
func applyModifier(value int, mod float64) int {
	return int(math.Floor(float64(value)*mod + 1e-9))
}

func floorDiv(a int, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}

	return q
}
