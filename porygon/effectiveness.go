package porygon

import (
	"fmt"
	"slices"

	"github.com/samber/lo"
)

// Classification buckets every attacking type by how it hits a set of defending types.
// Neutral (1x) types are left out of all three buckets.
type Classification struct {
	Weak      []string
	Resistant []string
	Immune    []string
}

// Multiplier gets the effectiveness of an attackingType attack against a defender with the given types.
// Each defending type is looked up on its own and the results are multiplied, so dual types can give 4x, 0.25x or 0x.
//
// Unknown type names are treated as neutral. Use MultiplierStrict to reject them instead.
func Multiplier(attackingType string, defendingTypes ...string) float64 {
	attackType := GetAttackTypeMapping(attackingType)
	if attackType == &TYPE_TYPELESS {
		internalLogger.V(1).Info("unknown attacking type, treating as neutral", "type", attackingType)
	}

	effectiveness := 1.0
	for _, defendingType := range defendingTypes {
		if !IsType(defendingType) {
			internalLogger.V(1).Info("unknown defending type, treating as neutral", "type", defendingType)
		}

		effectiveness *= attackType.AttackEffectiveness(defendingType)
	}

	return effectiveness
}

// MultiplierStrict is Multiplier but returns ErrUnknownType for names outside the chart
// and ErrInvalidTypeCount unless there are one or two defending types.
func MultiplierStrict(attackingType string, defendingTypes ...string) (float64, error) {
	if !IsType(attackingType) {
		return 0, fmt.Errorf("attacking type %q: %w", attackingType, ErrUnknownType)
	}

	if err := checkTypes(defendingTypes); err != nil {
		return 0, err
	}

	return Multiplier(attackingType, defendingTypes...), nil
}

// Classify runs every attacking type against ownTypes and sorts them into weaknesses, resistances and immunities
func Classify(ownTypes ...string) Classification {
	classification := Classification{
		Weak:      make([]string, 0),
		Resistant: make([]string, 0),
		Immune:    make([]string, 0),
	}

	for _, attackingType := range TYPE_ORDER {
		effectiveness := Multiplier(attackingType, ownTypes...)

		switch {
		case effectiveness > 1:
			classification.Weak = append(classification.Weak, attackingType)
		case effectiveness == 0:
			classification.Immune = append(classification.Immune, attackingType)
		case effectiveness < 1:
			classification.Resistant = append(classification.Resistant, attackingType)
		}
	}

	return classification
}

func ClassifyStrict(ownTypes ...string) (Classification, error) {
	if err := checkTypes(ownTypes); err != nil {
		return Classification{}, err
	}

	return Classify(ownTypes...), nil
}

// OffensiveCoverage returns every defending type that at least one of moveTypes hits super effectively,
// without duplicates and sorted by name.
func OffensiveCoverage(moveTypes ...string) []string {
	covered := make([]string, 0)

	for _, moveType := range lo.Uniq(moveTypes) {
		attackType := GetAttackTypeMapping(moveType)

		for _, defendingType := range TYPE_ORDER {
			if attackType.AttackEffectiveness(defendingType) >= 2 {
				covered = append(covered, defendingType)
			}
		}
	}

	covered = lo.Uniq(covered)
	slices.Sort(covered)

	return covered
}

func OffensiveCoverageStrict(moveTypes ...string) ([]string, error) {
	for _, moveType := range moveTypes {
		if !IsType(moveType) {
			return nil, fmt.Errorf("move type %q: %w", moveType, ErrUnknownType)
		}
	}

	return OffensiveCoverage(moveTypes...), nil
}

func checkTypes(types []string) error {
	if len(types) < 1 || len(types) > 2 {
		return fmt.Errorf("got %d types: %w", len(types), ErrInvalidTypeCount)
	}

	for _, t := range types {
		if !IsType(t) {
			return fmt.Errorf("defending type %q: %w", t, ErrUnknownType)
		}
	}

	return nil
}
