package porygon

import (
	"errors"
	"slices"
	"testing"

	"pgregory.net/rapid"
)

func TestMultiplierSingleType(t *testing.T) {
	cases := []struct {
		attack   string
		defend   string
		expected float64
	}{
		{TYPENAME_FIRE, TYPENAME_GRASS, 2},
		{TYPENAME_FIRE, TYPENAME_FIRE, .5},
		{TYPENAME_WATER, TYPENAME_WATER, .5},
		{TYPENAME_NORMAL, TYPENAME_GHOST, 0},
		{TYPENAME_PSYCHIC, TYPENAME_DARK, 0},
		{TYPENAME_DRAGON, TYPENAME_FAIRY, 0},
		{TYPENAME_GHOST, TYPENAME_GHOST, 2},
		{TYPENAME_NORMAL, TYPENAME_NORMAL, 1},
	}

	for _, c := range cases {
		if got := Multiplier(c.attack, c.defend); got != c.expected {
			t.Errorf("%s -> %s: expected %v, got %v", c.attack, c.defend, c.expected, got)
		}
	}
}

func TestMultiplierDualType(t *testing.T) {
	cases := []struct {
		attack   string
		defend   []string
		expected float64
	}{
		{TYPENAME_GROUND, []string{TYPENAME_FIRE, TYPENAME_ROCK}, 4},
		{TYPENAME_ICE, []string{TYPENAME_DRAGON, TYPENAME_FLYING}, 4},
		{TYPENAME_GRASS, []string{TYPENAME_FIRE, TYPENAME_FLYING}, .25},
		{TYPENAME_ELECTRIC, []string{TYPENAME_WATER, TYPENAME_GROUND}, 0},
		{TYPENAME_WATER, []string{TYPENAME_WATER, TYPENAME_GROUND}, 1},
	}

	for _, c := range cases {
		if got := Multiplier(c.attack, c.defend...); got != c.expected {
			t.Errorf("%s -> %v: expected %v, got %v", c.attack, c.defend, c.expected, got)
		}
	}
}

func TestMultiplierIgnoresCase(t *testing.T) {
	if got := Multiplier("Fire", "GRASS"); got != 2 {
		t.Fatalf("expected 2, got %v", got)
	}
}

func TestMultiplierUnknownTypeIsNeutral(t *testing.T) {
	if got := Multiplier("laser", TYPENAME_FIRE); got != 1 {
		t.Fatalf("unknown attacking type should be neutral, got %v", got)
	}

	if got := Multiplier(TYPENAME_FIRE, "plastic"); got != 1 {
		t.Fatalf("unknown defending type should be neutral, got %v", got)
	}

	if got := Multiplier(TYPENAME_FIRE, "plastic", TYPENAME_GRASS); got != 2 {
		t.Fatalf("unknown defending type should not change the known one, got %v", got)
	}
}

func TestMultiplierStrict(t *testing.T) {
	if _, err := MultiplierStrict("laser", TYPENAME_FIRE); !errors.Is(err, ErrUnknownType) {
		t.Fatalf("expected ErrUnknownType, got %v", err)
	}

	if _, err := MultiplierStrict(TYPENAME_FIRE, "plastic"); !errors.Is(err, ErrUnknownType) {
		t.Fatalf("expected ErrUnknownType, got %v", err)
	}

	if _, err := MultiplierStrict(TYPENAME_FIRE); !errors.Is(err, ErrInvalidTypeCount) {
		t.Fatalf("expected ErrInvalidTypeCount, got %v", err)
	}

	if _, err := MultiplierStrict(TYPENAME_FIRE, TYPENAME_GRASS, TYPENAME_BUG, TYPENAME_ICE); !errors.Is(err, ErrInvalidTypeCount) {
		t.Fatalf("expected ErrInvalidTypeCount, got %v", err)
	}

	got, err := MultiplierStrict(TYPENAME_FIRE, TYPENAME_GRASS, TYPENAME_BUG)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if got != 4 {
		t.Fatalf("expected 4, got %v", got)
	}
}

func TestClassifyFireFlying(t *testing.T) {
	c := Classify(TYPENAME_FIRE, TYPENAME_FLYING)

	expectedWeak := []string{TYPENAME_WATER, TYPENAME_ELECTRIC, TYPENAME_ROCK}
	expectedResist := []string{TYPENAME_FIRE, TYPENAME_GRASS, TYPENAME_FIGHTING, TYPENAME_BUG, TYPENAME_STEEL, TYPENAME_FAIRY}
	expectedImmune := []string{TYPENAME_GROUND}

	if !slices.Equal(c.Weak, expectedWeak) {
		t.Errorf("weak: expected %v, got %v", expectedWeak, c.Weak)
	}
	if !slices.Equal(c.Resistant, expectedResist) {
		t.Errorf("resistant: expected %v, got %v", expectedResist, c.Resistant)
	}
	if !slices.Equal(c.Immune, expectedImmune) {
		t.Errorf("immune: expected %v, got %v", expectedImmune, c.Immune)
	}
}

func TestClassifyStrict(t *testing.T) {
	if _, err := ClassifyStrict("plastic"); !errors.Is(err, ErrUnknownType) {
		t.Fatalf("expected ErrUnknownType, got %v", err)
	}

	if _, err := ClassifyStrict(); !errors.Is(err, ErrInvalidTypeCount) {
		t.Fatalf("expected ErrInvalidTypeCount, got %v", err)
	}
}

func TestOffensiveCoverage(t *testing.T) {
	got := OffensiveCoverage(TYPENAME_FIRE, TYPENAME_WATER, TYPENAME_FIRE)
	expected := []string{TYPENAME_BUG, TYPENAME_FIRE, TYPENAME_GRASS, TYPENAME_GROUND, TYPENAME_ICE, TYPENAME_ROCK, TYPENAME_STEEL}

	if !slices.Equal(got, expected) {
		t.Fatalf("expected %v, got %v", expected, got)
	}

	if got := OffensiveCoverage(TYPENAME_NORMAL); len(got) != 0 {
		t.Fatalf("normal should not hit anything super effectively, got %v", got)
	}

	if _, err := OffensiveCoverageStrict(TYPENAME_FIRE, "laser"); !errors.Is(err, ErrUnknownType) {
		t.Fatalf("expected ErrUnknownType, got %v", err)
	}
}

func TestMultiplierValues(t *testing.T) {
	valid := []float64{0, .25, .5, 1, 2, 4}

	rapid.Check(t, func(t *rapid.T) {
		types := AllTypes()
		attack := rapid.SampledFrom(types).Draw(t, "attack")
		defend := rapid.SliceOfNDistinct(rapid.SampledFrom(types), 1, 2, rapid.ID[string]).Draw(t, "defend")

		got := Multiplier(attack, defend...)
		if !slices.Contains(valid, got) {
			t.Fatalf("%s -> %v gave %v", attack, defend, got)
		}

		if len(defend) == 1 && got != TYPE_MAP[attack].AttackEffectiveness(defend[0]) {
			t.Fatalf("%s -> %s does not match the chart", attack, defend[0])
		}
	})
}

func TestClassifyPartitions(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		defend := rapid.SliceOfNDistinct(rapid.SampledFrom(AllTypes()), 1, 2, rapid.ID[string]).Draw(t, "defend")
		c := Classify(defend...)

		seen := make(map[string]int)
		for _, bucket := range [][]string{c.Weak, c.Resistant, c.Immune} {
			for _, attackType := range bucket {
				seen[attackType]++
			}
		}

		for attackType, count := range seen {
			if count > 1 {
				t.Fatalf("%s appears in %d buckets for %v", attackType, count, defend)
			}
		}

		for _, attackType := range AllTypes() {
			_, classified := seen[attackType]
			neutral := Multiplier(attackType, defend...) == 1
			if classified == neutral {
				t.Fatalf("%s -> %v: classified=%t neutral=%t", attackType, defend, classified, neutral)
			}
		}
	})
}
