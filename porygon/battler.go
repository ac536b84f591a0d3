package porygon

import (
	"slices"
	"strings"
)

// Move is the part of a move's data the calculators need
type Move struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Power       int    `json:"power"`
	DamageClass string `json:"damage_class"`
	Accuracy    int    `json:"accuracy"`
	Priority    int    `json:"priority"`
}

func (m Move) IsNil() bool {
	return m.Name == ""
}

// IsDamaging reports whether the move is physical or special and has power
func (m Move) IsDamaging() bool {
	return m.DamageClass != DAMAGETYPE_STATUS && m.Power > 0
}

// Battler is a fully built team member: its types, computed stats and moves.
type Battler struct {
	ID    string    `json:"id"`
	Name  string    `json:"name"`
	Types []string  `json:"types"`
	Level int       `json:"level"`
	Stats StatBlock `json:"stats"`
	Moves []Move    `json:"moves"`
	Item  string    `json:"item"`
}

func (b Battler) HasType(t string) bool {
	return slices.ContainsFunc(b.Types, func(own string) bool {
		return strings.EqualFold(own, t)
	})
}

// DefenseEffectiveness gets the effectiveness of an attackType attack against this battler's types
func (b Battler) DefenseEffectiveness(attackType string) float64 {
	return Multiplier(attackType, b.Types...)
}

// MoveTypes returns the type of every move this battler knows, including status moves
func (b Battler) MoveTypes() []string {
	types := make([]string, 0, len(b.Moves))
	for _, move := range b.Moves {
		if move.Type != "" {
			types = append(types, normalizeTypeName(move.Type))
		}
	}

	return types
}
