package porygon

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/samber/lo"
)

// KOChance is how reliably a damage range knocks out the defender. Larger values are stronger results.
type KOChance int

const (
	KO_NONE KOChance = iota
	KO_POSSIBLE_3HKO
	KO_GUARANTEED_3HKO
	KO_POSSIBLE_2HKO
	KO_GUARANTEED_2HKO
	KO_POSSIBLE_OHKO
	KO_GUARANTEED_OHKO
)

func (k KOChance) String() string {
	switch k {
	case KO_GUARANTEED_OHKO:
		return "Guaranteed OHKO"
	case KO_POSSIBLE_OHKO:
		return "Possible OHKO"
	case KO_GUARANTEED_2HKO:
		return "Guaranteed 2HKO"
	case KO_POSSIBLE_2HKO:
		return "Possible 2HKO"
	case KO_GUARANTEED_3HKO:
		return "Guaranteed 3HKO"
	case KO_POSSIBLE_3HKO:
		return "Possible 3HKO"
	default:
		return "No KO"
	}
}

// DamageModifiers are the situational effects on an attack.
//
// Terrain and DefenderItem are carried for callers but don't change the result.
// Reflect and LightScreen are only read by CalculateMoveDamage, which applies them to the defense stat
// before calling CalculateDamage. CalculateDamage never looks at them.
type DamageModifiers struct {
	Weather      string
	Critical     bool
	AttackerItem string
	DefenderItem string
	Terrain      string
	Reflect      bool
	LightScreen  bool
}

// DamageInput is everything CalculateDamage needs. AttackStat and DefenseStat should already be the stats
// that match the move's damage class, with screens already applied.
type DamageInput struct {
	Level         int
	AttackStat    int
	DefenseStat   int
	MovePower     int
	MoveType      string
	DamageClass   string
	AttackerTypes []string
	DefenderTypes []string
	DefenderMaxHP int
	Modifiers     DamageModifiers
}

type DamageResult struct {
	Min        int
	Max        int
	MinPercent float64
	MaxPercent float64
	KOChance   KOChance
}

// ValidateDamageInput returns ErrDivisionUndefined if either denominator of the damage formula is not positive.
// CalculateDamage clamps those values to 1 instead of failing.
func ValidateDamageInput(in DamageInput) error {
	if in.DefenseStat <= 0 {
		return fmt.Errorf("defense stat %d: %w", in.DefenseStat, ErrDivisionUndefined)
	}

	if in.DefenderMaxHP <= 0 {
		return fmt.Errorf("defender max hp %d: %w", in.DefenderMaxHP, ErrDivisionUndefined)
	}

	return nil
}

// CalculateDamage gives the damage range of one attack, from the lowest to the highest random roll.
//
// The modifiers are multiplied in a fixed order (STAB, type effectiveness, weather, crit, item) and the
// result is only floored once, when the 85% and 100% rolls are taken.
// A DefenseStat or DefenderMaxHP below 1 is treated as 1.
func CalculateDamage(in DamageInput) DamageResult {
	defense := in.DefenseStat
	if defense <= 0 {
		internalLogger.V(1).Info("defense stat is not positive, clamping to 1", "defense", defense)
		defense = 1
	}

	maxHp := in.DefenderMaxHP
	if maxHp <= 0 {
		internalLogger.V(1).Info("defender max hp is not positive, clamping to 1", "maxHp", maxHp)
		maxHp = 1
	}

	level := float64(in.Level)
	baseDamage := (2*level/5+2)*float64(in.MovePower)*(float64(in.AttackStat)/float64(defense))/50 + 2

	stab := stabBonus(in.MoveType, in.AttackerTypes)
	effectiveness := Multiplier(in.MoveType, in.DefenderTypes...)
	weatherBonus := weatherModifier(in.Modifiers.Weather, in.MoveType)

	critBoost := 1.0
	if in.Modifiers.Critical {
		critBoost = CRIT_BONUS
	}

	itemBonus := itemModifier(in.Modifiers.AttackerItem, in.DamageClass)

	damage := baseDamage
	damage *= stab
	damage *= effectiveness
	damage *= weatherBonus
	damage *= critBoost
	damage *= itemBonus

	minDamage := int(math.Floor(damage * MIN_ROLL))
	maxDamage := int(math.Floor(damage))

	result := DamageResult{
		Min:        minDamage,
		Max:        maxDamage,
		MinPercent: float64(minDamage) / float64(maxHp) * 100,
		MaxPercent: float64(maxDamage) / float64(maxHp) * 100,
		KOChance:   ClassifyKO(minDamage, maxDamage, maxHp),
	}

	internalLogger.V(2).Info("damage range",
		"power", in.MovePower,
		"level", in.Level,
		"attackValue", in.AttackStat,
		"defValue", defense,
		"attackType", in.MoveType,
		"damageClass", in.DamageClass,
		"baseDamage", baseDamage,
		"STAB", stab,
		"Net Type Effectiveness", effectiveness,
		"weatherBonus", weatherBonus,
		"crit", critBoost,
		"itemBonus", itemBonus,
		"min", result.Min,
		"max", result.Max,
		"koChance", result.KOChance.String(),
	)

	return result
}

// ClassifyKO labels a damage range against the defender's HP. The first matching check wins,
// so a range that guarantees a OHKO is never reported as anything weaker.
func ClassifyKO(minDamage int, maxDamage int, hp int) KOChance {
	switch {
	case minDamage >= hp:
		return KO_GUARANTEED_OHKO
	case maxDamage >= hp:
		return KO_POSSIBLE_OHKO
	case minDamage*2 >= hp:
		return KO_GUARANTEED_2HKO
	case maxDamage*2 >= hp:
		return KO_POSSIBLE_2HKO
	case minDamage*3 >= hp:
		return KO_GUARANTEED_3HKO
	case maxDamage*3 >= hp:
		return KO_POSSIBLE_3HKO
	default:
		return KO_NONE
	}
}

// ApplyScreens doubles defense against physical moves under Reflect and against special moves under Light Screen.
// This is done by the caller, CalculateDamage does not know about screens.
func ApplyScreens(defense int, damageClass string, reflect bool, lightScreen bool) int {
	if reflect && damageClass == DAMAGETYPE_PHYSICAL {
		return defense * SCREEN_MULTIPLY
	}

	if lightScreen && damageClass == DAMAGETYPE_SPECIAL {
		return defense * SCREEN_MULTIPLY
	}

	return defense
}

// CalculateMoveDamage picks the attacking and defending stats for move's damage class, applies screens from mods,
// and calculates the damage attacker does to defender. Status moves and moves without power do nothing.
func CalculateMoveDamage(attacker Battler, defender Battler, move Move, mods DamageModifiers) DamageResult {
	if !move.IsDamaging() {
		return DamageResult{KOChance: KO_NONE}
	}

	var a, d int

	switch move.DamageClass {
	case DAMAGETYPE_PHYSICAL:
		a = attacker.Stats.Attack
		d = defender.Stats.Def
	case DAMAGETYPE_SPECIAL:
		a = attacker.Stats.SpAttack
		d = defender.Stats.SpDef
	}

	d = ApplyScreens(d, move.DamageClass, mods.Reflect, mods.LightScreen)

	if mods.AttackerItem == "" {
		mods.AttackerItem = attacker.Item
	}
	if mods.DefenderItem == "" {
		mods.DefenderItem = defender.Item
	}

	return CalculateDamage(DamageInput{
		Level:         attacker.Level,
		AttackStat:    a,
		DefenseStat:   d,
		MovePower:     move.Power,
		MoveType:      move.Type,
		DamageClass:   move.DamageClass,
		AttackerTypes: attacker.Types,
		DefenderTypes: defender.Types,
		DefenderMaxHP: defender.Stats.Hp,
		Modifiers:     mods,
	})
}

// MoveDamage is one of an attacker's moves and what it does to a defender
type MoveDamage struct {
	Index  int
	Move   Move
	Result DamageResult
}

// RankMoves orders the attacker's damaging moves by their max damage against defender, best first.
// Moves with equal max damage keep the order they're known in.
func RankMoves(attacker Battler, defender Battler, mods DamageModifiers) []MoveDamage {
	ranked := lo.FilterMap(attacker.Moves, func(move Move, i int) (MoveDamage, bool) {
		if !move.IsDamaging() {
			return MoveDamage{}, false
		}

		return MoveDamage{
			Index:  i,
			Move:   move,
			Result: CalculateMoveDamage(attacker, defender, move, mods),
		}, true
	})

	slices.SortStableFunc(ranked, func(a, b MoveDamage) int {
		return cmp.Compare(b.Result.Max, a.Result.Max)
	})

	return ranked
}

func stabBonus(moveType string, attackerTypes []string) float64 {
	for _, t := range attackerTypes {
		if normalizeTypeName(t) == normalizeTypeName(moveType) {
			return STAB_BONUS
		}
	}

	return 1
}

func weatherModifier(weather string, moveType string) float64 {
	moveType = normalizeTypeName(moveType)

	switch weather {
	case WEATHER_SUN:
		if moveType == TYPENAME_FIRE {
			return WEATHER_BOOST
		}
		if moveType == TYPENAME_WATER {
			return WEATHER_NERF
		}
	case WEATHER_RAIN:
		if moveType == TYPENAME_WATER {
			return WEATHER_BOOST
		}
		if moveType == TYPENAME_FIRE {
			return WEATHER_NERF
		}
	}

	return 1
}

// itemModifier matches the attacker's item by name, ignoring case and reading "-" as a space.
// Only a handful of damage items are recognized.
func itemModifier(item string, damageClass string) float64 {
	item = strings.ReplaceAll(strings.ToLower(item), "-", " ")

	switch {
	case strings.Contains(item, "life orb"):
		return LIFE_ORB_BONUS
	case strings.Contains(item, "choice band"):
		if damageClass == DAMAGETYPE_PHYSICAL {
			return CHOICE_BONUS
		}
	case strings.Contains(item, "choice specs"):
		if damageClass == DAMAGETYPE_SPECIAL {
			return CHOICE_BONUS
		}
	}

	return 1
}
