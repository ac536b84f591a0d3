package porygon

import (
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"
)

const (
	NATURE_BOOST = 1.1
	NATURE_NERF  = 0.9
)

// Nature raises Plus by 10% and lowers Minus by 10%.
// Neutral natures leave both empty.
type Nature struct {
	Name  string
	Plus  string
	Minus string
}

// Modifier returns 1.1, 0.9 or 1.0 for the given stat
func (n Nature) Modifier(stat string) float64 {
	switch stat {
	case "":
		return 1
	case n.Plus:
		return NATURE_BOOST
	case n.Minus:
		return NATURE_NERF
	default:
		return 1
	}
}

func (n Nature) IsNeutral() bool {
	return n.Plus == "" && n.Minus == ""
}

/// ======== No effect natures ========

var NATURE_HARDY = Nature{"hardy", "", ""}
var NATURE_DOCILE = Nature{"docile", "", ""}
var NATURE_BASHFUL = Nature{"bashful", "", ""}
var NATURE_QUIRKY = Nature{"quirky", "", ""}
var NATURE_SERIOUS = Nature{"serious", "", ""}

/// ======== -Attack Natures ========

var NATURE_BOLD = Nature{"bold", STAT_DEFENSE, STAT_ATTACK}
var NATURE_MODEST = Nature{"modest", STAT_SPATTACK, STAT_ATTACK}
var NATURE_CALM = Nature{"calm", STAT_SPDEF, STAT_ATTACK}
var NATURE_TIMID = Nature{"timid", STAT_SPEED, STAT_ATTACK}

/// ======== -Defense Natures ========

var NATURE_LONELY = Nature{"lonely", STAT_ATTACK, STAT_DEFENSE}
var NATURE_MILD = Nature{"mild", STAT_SPATTACK, STAT_DEFENSE}
var NATURE_GENTLE = Nature{"gentle", STAT_SPDEF, STAT_DEFENSE}
var NATURE_HASTY = Nature{"hasty", STAT_SPEED, STAT_DEFENSE}

/// ======== -SpAttack Natures ========

var NATURE_ADAMANT = Nature{"adamant", STAT_ATTACK, STAT_SPATTACK}
var NATURE_IMPISH = Nature{"impish", STAT_DEFENSE, STAT_SPATTACK}
var NATURE_CAREFUL = Nature{"careful", STAT_SPDEF, STAT_SPATTACK}
var NATURE_JOLLY = Nature{"jolly", STAT_SPEED, STAT_SPATTACK}

/// ======== -SpDef Natures ========

var NATURE_NAUGHTY = Nature{"naughty", STAT_ATTACK, STAT_SPDEF}
var NATURE_LAX = Nature{"lax", STAT_DEFENSE, STAT_SPDEF}
var NATURE_RASH = Nature{"rash", STAT_SPATTACK, STAT_SPDEF}
var NATURE_NAIVE = Nature{"naive", STAT_SPEED, STAT_SPDEF}

/// ======== -Speed Natures ========

var NATURE_BRAVE = Nature{"brave", STAT_ATTACK, STAT_SPEED}
var NATURE_RELAXED = Nature{"relaxed", STAT_DEFENSE, STAT_SPEED}
var NATURE_QUIET = Nature{"quiet", STAT_SPATTACK, STAT_SPEED}
var NATURE_SASSY = Nature{"sassy", STAT_SPDEF, STAT_SPEED}

var NATURES = [...]Nature{
	NATURE_HARDY,
	NATURE_DOCILE,
	NATURE_BASHFUL,
	NATURE_QUIRKY,
	NATURE_SERIOUS,
	NATURE_BOLD,
	NATURE_MODEST,
	NATURE_CALM,
	NATURE_TIMID,
	NATURE_LONELY,
	NATURE_MILD,
	NATURE_GENTLE,
	NATURE_HASTY,
	NATURE_ADAMANT,
	NATURE_IMPISH,
	NATURE_CAREFUL,
	NATURE_JOLLY,
	NATURE_NAUGHTY,
	NATURE_LAX,
	NATURE_RASH,
	NATURE_NAIVE,
	NATURE_BRAVE,
	NATURE_RELAXED,
	NATURE_QUIET,
	NATURE_SASSY,
}

var natureMap = lo.KeyBy(NATURES[:], func(n Nature) string {
	return n.Name
})

// Natures returns all 25 natures
func Natures() []Nature {
	return slices.Clone(NATURES[:])
}

// NatureByName looks up a nature, ignoring case
func NatureByName(name string) (Nature, bool) {
	nature, ok := natureMap[strings.ToLower(strings.TrimSpace(name))]
	return nature, ok
}

// NatureModifier gets the multiplier natureName applies to statName.
// Unknown natures are neutral and give 1.0 for every stat.
func NatureModifier(natureName string, statName string) float64 {
	nature, ok := NatureByName(natureName)
	if !ok {
		internalLogger.V(1).Info("unknown nature, treating as neutral", "nature", natureName)
		return 1
	}

	return nature.Modifier(statName)
}

func NatureModifierStrict(natureName string, statName string) (float64, error) {
	nature, ok := NatureByName(natureName)
	if !ok {
		return 1, fmt.Errorf("nature %q: %w", natureName, ErrUnknownNature)
	}

	if !slices.Contains(STAT_NAMES[:], statName) {
		return 1, fmt.Errorf("stat %q: %w", statName, ErrUnknownStat)
	}

	return nature.Modifier(statName), nil
}
