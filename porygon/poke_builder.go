package porygon

import (
	"slices"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

var builderLogger = func() *zerolog.Logger {
	logger := log.With().Str("location", "battler-builder").Logger()
	return &logger
}

// BattlerBuilder turns a Species and a spread into a Battler with computed stats.
// New builders start at level 100 with a hardy nature and no EVs or IVs.
type BattlerBuilder struct {
	species  Species
	nickname string
	level    int
	evs      StatBlock
	ivs      StatBlock
	nature   string
	moves    []Move
	item     string
}

func NewBattlerBuilder(species *Species) *BattlerBuilder {
	return &BattlerBuilder{
		species:  *species,
		nickname: species.Name,
		level:    MAX_LEVEL,
		nature:   NATURE_HARDY.Name,
		moves:    make([]Move, 0, 4),
	}
}

func (bb *BattlerBuilder) SetNickname(nickname string) *BattlerBuilder {
	if nickname != "" {
		bb.nickname = nickname
	}

	return bb
}

func (bb *BattlerBuilder) SetLevel(level int) *BattlerBuilder {
	bb.level = level
	return bb
}

func (bb *BattlerBuilder) SetEvs(evs [6]int) *BattlerBuilder {
	bb.evs = NewStatBlock(evs)

	builderLogger().Debug().
		Int("HP", evs[0]).
		Int("ATTACK", evs[1]).
		Int("DEF", evs[2]).
		Int("SPATTACK", evs[3]).
		Int("SPDEF", evs[4]).
		Int("SPEED", evs[5]).Msg("Setting EVs")

	return bb
}

func (bb *BattlerBuilder) SetIvs(ivs [6]int) *BattlerBuilder {
	bb.ivs = NewStatBlock(ivs)

	builderLogger().Debug().
		Int("HP", ivs[0]).
		Int("ATTACK", ivs[1]).
		Int("DEF", ivs[2]).
		Int("SPATTACK", ivs[3]).
		Int("SPDEF", ivs[4]).
		Int("SPEED", ivs[5]).Msg("Setting IVs")

	return bb
}

func (bb *BattlerBuilder) SetPerfectIvs() *BattlerBuilder {
	bb.ivs = NewStatBlock([6]int{MAX_IV, MAX_IV, MAX_IV, MAX_IV, MAX_IV, MAX_IV})

	builderLogger().Debug().Msg("Setting Perfect IVS")

	return bb
}

func (bb *BattlerBuilder) SetNature(nature string) *BattlerBuilder {
	if _, ok := NatureByName(nature); !ok {
		builderLogger().Warn().Str("nature", nature).Msg("Unknown nature, stats will be neutral")
	}

	bb.nature = nature
	return bb
}

func (bb *BattlerBuilder) SetMoves(moves ...Move) *BattlerBuilder {
	bb.moves = slices.Clone(moves)

	moveNames := lo.Map(moves, func(move Move, _ int) string {
		return move.Name
	})

	builderLogger().Debug().Strs("Moves", moveNames).Msg("Setting moves")

	return bb
}

func (bb *BattlerBuilder) SetItem(item string) *BattlerBuilder {
	bb.item = item
	return bb
}

func (bb *BattlerBuilder) Build() Battler {
	builderLogger().Debug().Str("species", bb.species.Name).Int("level", bb.level).Msg("Building battler")

	return Battler{
		ID:    uuid.NewString(),
		Name:  bb.nickname,
		Types: slices.Clone(bb.species.Types),
		Level: bb.level,
		Stats: ComputeStats(bb.species.Base, bb.level, bb.evs, bb.ivs, bb.nature),
		Moves: slices.Clone(bb.moves),
		Item:  bb.item,
	}
}

// BuildStrict checks the level, spread and nature before building
func (bb *BattlerBuilder) BuildStrict() (Battler, error) {
	if err := ValidateSpread(bb.level, bb.evs, bb.ivs); err != nil {
		return Battler{}, err
	}

	if _, err := NatureModifierStrict(bb.nature, STAT_ATTACK); err != nil {
		return Battler{}, err
	}

	return bb.Build(), nil
}
