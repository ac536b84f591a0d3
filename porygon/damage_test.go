package porygon

import (
	"errors"
	"math"
	"testing"

	"pgregory.net/rapid"
)

// neutralInput is a level 100, 90 power attack between equal stats with no modifiers.
// Its base damage is 77.6.
func neutralInput() DamageInput {
	return DamageInput{
		Level:         100,
		AttackStat:    100,
		DefenseStat:   100,
		MovePower:     90,
		MoveType:      TYPENAME_NORMAL,
		DamageClass:   DAMAGETYPE_PHYSICAL,
		AttackerTypes: []string{TYPENAME_WATER},
		DefenderTypes: []string{TYPENAME_FIRE},
		DefenderMaxHP: 300,
		Modifiers:     DamageModifiers{Weather: WEATHER_NONE},
	}
}

func checkRange(t *testing.T, name string, result DamageResult, low int, high int) {
	t.Helper()

	if result.Min != low || result.Max != high {
		t.Errorf("%s: expected %d - %d, got %d - %d", name, low, high, result.Min, result.Max)
	}
}

func TestDamageNeutral(t *testing.T) {
	result := CalculateDamage(neutralInput())

	checkRange(t, "neutral", result, 65, 77)

	if math.Abs(result.MinPercent-65.0/300*100) > 1e-9 || math.Abs(result.MaxPercent-77.0/300*100) > 1e-9 {
		t.Fatalf("unexpected percents: %v - %v", result.MinPercent, result.MaxPercent)
	}

	if result.KOChance != KO_NONE {
		t.Fatalf("expected No KO, got %s", result.KOChance)
	}
}

func TestDamageModifiers(t *testing.T) {
	cases := []struct {
		name   string
		modify func(in *DamageInput)
		low    int
		high   int
	}{
		{"stab", func(in *DamageInput) { in.AttackerTypes = []string{TYPENAME_NORMAL} }, 98, 116},
		{"super effective", func(in *DamageInput) { in.MoveType = TYPENAME_WATER; in.AttackerTypes = nil }, 131, 155},
		{"immune", func(in *DamageInput) { in.DefenderTypes = []string{TYPENAME_GHOST} }, 0, 0},
		{"sun boosts fire", func(in *DamageInput) {
			in.MoveType = TYPENAME_FIRE
			in.DefenderTypes = []string{TYPENAME_NORMAL}
			in.Modifiers.Weather = WEATHER_SUN
		}, 98, 116},
		{"sun weakens water", func(in *DamageInput) {
			in.MoveType = TYPENAME_WATER
			in.AttackerTypes = nil
			in.DefenderTypes = []string{TYPENAME_NORMAL}
			in.Modifiers.Weather = WEATHER_SUN
		}, 32, 38},
		{"rain boosts water", func(in *DamageInput) {
			in.MoveType = TYPENAME_WATER
			in.AttackerTypes = nil
			in.DefenderTypes = []string{TYPENAME_NORMAL}
			in.Modifiers.Weather = WEATHER_RAIN
		}, 98, 116},
		{"sand does nothing", func(in *DamageInput) { in.Modifiers.Weather = WEATHER_SAND }, 65, 77},
		{"crit", func(in *DamageInput) { in.Modifiers.Critical = true }, 98, 116},
		{"life orb", func(in *DamageInput) { in.Modifiers.AttackerItem = "Life Orb" }, 85, 100},
		{"choice band physical", func(in *DamageInput) { in.Modifiers.AttackerItem = "choice band" }, 98, 116},
		{"choice band special", func(in *DamageInput) {
			in.Modifiers.AttackerItem = "choice band"
			in.DamageClass = DAMAGETYPE_SPECIAL
		}, 65, 77},
		{"choice specs special", func(in *DamageInput) {
			in.Modifiers.AttackerItem = "choice-specs"
			in.DamageClass = DAMAGETYPE_SPECIAL
		}, 98, 116},
		{"defender item ignored", func(in *DamageInput) { in.Modifiers.DefenderItem = "life orb" }, 65, 77},
		{"terrain ignored", func(in *DamageInput) { in.Modifiers.Terrain = "electric" }, 65, 77},
		{"screens ignored", func(in *DamageInput) { in.Modifiers.Reflect = true }, 65, 77},
	}

	for _, c := range cases {
		in := neutralInput()
		c.modify(&in)
		checkRange(t, c.name, CalculateDamage(in), c.low, c.high)
	}
}

func TestDamageZeroDenominators(t *testing.T) {
	in := neutralInput()
	in.DefenseStat = 0
	in.DefenderMaxHP = 0

	if err := ValidateDamageInput(in); !errors.Is(err, ErrDivisionUndefined) {
		t.Fatalf("expected ErrDivisionUndefined, got %v", err)
	}

	clamped := neutralInput()
	clamped.DefenseStat = 1
	clamped.DefenderMaxHP = 1

	got := CalculateDamage(in)
	expected := CalculateDamage(clamped)

	if got != expected {
		t.Fatalf("zero denominators should act like 1: expected %+v, got %+v", expected, got)
	}

	if math.IsInf(got.MaxPercent, 0) || math.IsNaN(got.MaxPercent) {
		t.Fatalf("percent should be finite, got %v", got.MaxPercent)
	}

	if err := ValidateDamageInput(neutralInput()); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
}

func TestDamageZeroPower(t *testing.T) {
	in := neutralInput()
	in.MovePower = 0

	// only the +2 of the formula is left
	checkRange(t, "zero power", CalculateDamage(in), 1, 2)
}

func TestClassifyKO(t *testing.T) {
	cases := []struct {
		min      int
		max      int
		expected KOChance
		label    string
	}{
		{100, 120, KO_GUARANTEED_OHKO, "Guaranteed OHKO"},
		{90, 110, KO_POSSIBLE_OHKO, "Possible OHKO"},
		{50, 60, KO_GUARANTEED_2HKO, "Guaranteed 2HKO"},
		{45, 55, KO_POSSIBLE_2HKO, "Possible 2HKO"},
		{34, 40, KO_GUARANTEED_3HKO, "Guaranteed 3HKO"},
		{30, 34, KO_POSSIBLE_3HKO, "Possible 3HKO"},
		{10, 20, KO_NONE, "No KO"},
	}

	for _, c := range cases {
		got := ClassifyKO(c.min, c.max, 100)
		if got != c.expected || got.String() != c.label {
			t.Errorf("%d - %d: expected %s, got %s", c.min, c.max, c.label, got)
		}
	}
}

func TestClassifyKOPrecedence(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		hp := rapid.IntRange(1, 800).Draw(t, "hp")
		minDamage := rapid.IntRange(0, 1000).Draw(t, "min")
		maxDamage := rapid.IntRange(minDamage, 1200).Draw(t, "max")

		got := ClassifyKO(minDamage, maxDamage, hp)

		if minDamage >= hp && got != KO_GUARANTEED_OHKO {
			t.Fatalf("min %d >= hp %d but got %s", minDamage, hp, got)
		}

		// a higher roll never makes the label weaker
		if higher := ClassifyKO(minDamage, maxDamage+1, hp); higher < got {
			t.Fatalf("raising max lowered the label: %s -> %s", got, higher)
		}
	})
}

func TestDamageRangeOrdered(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		in := DamageInput{
			Level:         rapid.IntRange(MIN_LEVEL, MAX_LEVEL).Draw(t, "level"),
			AttackStat:    rapid.IntRange(1, 700).Draw(t, "attack"),
			DefenseStat:   rapid.IntRange(1, 700).Draw(t, "defense"),
			MovePower:     rapid.IntRange(0, 250).Draw(t, "power"),
			MoveType:      rapid.SampledFrom(AllTypes()).Draw(t, "moveType"),
			DamageClass:   rapid.SampledFrom([]string{DAMAGETYPE_PHYSICAL, DAMAGETYPE_SPECIAL}).Draw(t, "class"),
			AttackerTypes: []string{rapid.SampledFrom(AllTypes()).Draw(t, "attackerType")},
			DefenderTypes: []string{rapid.SampledFrom(AllTypes()).Draw(t, "defenderType")},
			DefenderMaxHP: rapid.IntRange(1, 800).Draw(t, "hp"),
			Modifiers: DamageModifiers{
				Weather:  rapid.SampledFrom([]string{WEATHER_NONE, WEATHER_SUN, WEATHER_RAIN}).Draw(t, "weather"),
				Critical: rapid.Bool().Draw(t, "crit"),
			},
		}

		first := CalculateDamage(in)
		if first.Min > first.Max || first.Min < 0 {
			t.Fatalf("bad range %d - %d", first.Min, first.Max)
		}

		if second := CalculateDamage(in); second != first {
			t.Fatalf("same input gave %+v then %+v", first, second)
		}
	})
}

func TestApplyScreens(t *testing.T) {
	if got := ApplyScreens(100, DAMAGETYPE_PHYSICAL, true, false); got != 200 {
		t.Errorf("reflect should double defense against physical moves, got %d", got)
	}
	if got := ApplyScreens(100, DAMAGETYPE_SPECIAL, true, false); got != 100 {
		t.Errorf("reflect should not affect special moves, got %d", got)
	}
	if got := ApplyScreens(100, DAMAGETYPE_SPECIAL, false, true); got != 200 {
		t.Errorf("light screen should double defense against special moves, got %d", got)
	}
	if got := ApplyScreens(100, DAMAGETYPE_PHYSICAL, false, true); got != 100 {
		t.Errorf("light screen should not affect physical moves, got %d", got)
	}
}

func testBattler(name string, types []string, stats StatBlock, moves ...Move) Battler {
	return Battler{
		ID:    name,
		Name:  name,
		Types: types,
		Level: 100,
		Stats: stats,
		Moves: moves,
	}
}

var (
	tackle      = Move{Name: "tackle", Type: TYPENAME_NORMAL, Power: 40, DamageClass: DAMAGETYPE_PHYSICAL}
	surf        = Move{Name: "surf", Type: TYPENAME_WATER, Power: 90, DamageClass: DAMAGETYPE_SPECIAL}
	earthquake  = Move{Name: "earthquake", Type: TYPENAME_GROUND, Power: 100, DamageClass: DAMAGETYPE_PHYSICAL}
	swordsDance = Move{Name: "swords-dance", Type: TYPENAME_NORMAL, DamageClass: DAMAGETYPE_STATUS}
)

func TestCalculateMoveDamage(t *testing.T) {
	stats := StatBlock{Hp: 300, Attack: 100, Def: 100, SpAttack: 100, SpDef: 200, Speed: 100}
	attacker := testBattler("attacker", []string{TYPENAME_FIRE}, stats)
	defender := testBattler("defender", []string{TYPENAME_NORMAL}, stats)

	physical := Move{Name: "strength", Type: TYPENAME_FIGHTING, Power: 90, DamageClass: DAMAGETYPE_PHYSICAL}
	// fighting is super effective on normal
	checkRange(t, "physical", CalculateMoveDamage(attacker, defender, physical, DamageModifiers{}), 131, 155)

	// special moves use the defender's special defense of 200
	special := Move{Name: "hyper-voice", Type: TYPENAME_ELECTRIC, Power: 90, DamageClass: DAMAGETYPE_SPECIAL}
	expected := CalculateDamage(DamageInput{
		Level: 100, AttackStat: 100, DefenseStat: 200, MovePower: 90, MoveType: TYPENAME_ELECTRIC,
		DamageClass: DAMAGETYPE_SPECIAL, AttackerTypes: attacker.Types, DefenderTypes: defender.Types, DefenderMaxHP: 300,
	})
	if got := CalculateMoveDamage(attacker, defender, special, DamageModifiers{}); got != expected {
		t.Fatalf("special: expected %+v, got %+v", expected, got)
	}

	withReflect := CalculateMoveDamage(attacker, defender, physical, DamageModifiers{Reflect: true})
	withoutReflect := CalculateMoveDamage(attacker, defender, physical, DamageModifiers{})
	if withReflect.Max >= withoutReflect.Max {
		t.Fatalf("reflect should lower physical damage: %d vs %d", withReflect.Max, withoutReflect.Max)
	}

	if got := CalculateMoveDamage(attacker, defender, swordsDance, DamageModifiers{}); got != (DamageResult{KOChance: KO_NONE}) {
		t.Fatalf("status moves should do nothing, got %+v", got)
	}
}

func TestCalculateMoveDamageUsesHeldItem(t *testing.T) {
	stats := StatBlock{Hp: 300, Attack: 100, Def: 100, SpAttack: 100, SpDef: 100, Speed: 100}
	attacker := testBattler("attacker", []string{TYPENAME_WATER}, stats)
	attacker.Item = "Life Orb"
	defender := testBattler("defender", []string{TYPENAME_FIRE}, stats)

	strength := Move{Name: "strength", Type: TYPENAME_NORMAL, Power: 90, DamageClass: DAMAGETYPE_PHYSICAL}
	checkRange(t, "held life orb", CalculateMoveDamage(attacker, defender, strength, DamageModifiers{}), 85, 100)
}

func TestRankMoves(t *testing.T) {
	stats := StatBlock{Hp: 300, Attack: 100, Def: 100, SpAttack: 100, SpDef: 100, Speed: 100}
	attacker := testBattler("attacker", []string{TYPENAME_WATER}, stats, tackle, swordsDance, surf, earthquake)
	defender := testBattler("defender", []string{TYPENAME_FIRE}, stats)

	ranked := RankMoves(attacker, defender, DamageModifiers{})

	if len(ranked) != 3 {
		t.Fatalf("expected 3 damaging moves, got %d", len(ranked))
	}

	// surf: stab and super effective, earthquake: super effective, tackle: neutral
	expectedOrder := []int{2, 3, 0}
	for i, md := range ranked {
		if md.Index != expectedOrder[i] {
			t.Fatalf("expected move %d at rank %d, got %d (%s)", expectedOrder[i], i, md.Index, md.Move.Name)
		}
	}
}

// Held items come from user data in any casing, so item names are matched case-insensitively
// with hyphens read as spaces.
func TestItemNamesNormalized(t *testing.T) {
	cases := []struct {
		item        string
		damageClass string
		expected    float64
	}{
		{"life orb", DAMAGETYPE_PHYSICAL, LIFE_ORB_BONUS},
		{"Life Orb", DAMAGETYPE_SPECIAL, LIFE_ORB_BONUS},
		{"LIFE-ORB", DAMAGETYPE_PHYSICAL, LIFE_ORB_BONUS},
		{"Choice Band", DAMAGETYPE_PHYSICAL, CHOICE_BONUS},
		{"choice-band", DAMAGETYPE_SPECIAL, 1},
		{"Choice-Specs", DAMAGETYPE_SPECIAL, CHOICE_BONUS},
		{"choice specs", DAMAGETYPE_PHYSICAL, 1},
		{"leftovers", DAMAGETYPE_PHYSICAL, 1},
		{"", DAMAGETYPE_PHYSICAL, 1},
	}

	for _, c := range cases {
		if got := itemModifier(c.item, c.damageClass); got != c.expected {
			t.Errorf("%q (%s): expected %v, got %v", c.item, c.damageClass, c.expected, got)
		}
	}
}
