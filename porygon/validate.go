package porygon

import (
	"fmt"
)

// ValidateSpread checks a level and EV / IV spread against the game's caps.
// ComputeStat itself accepts anything, so callers that take user input should run this first.
func ValidateSpread(level int, evs StatBlock, ivs StatBlock) error {
	if level < MIN_LEVEL || level > MAX_LEVEL {
		return fmt.Errorf("level %d is outside %d-%d: %w", level, MIN_LEVEL, MAX_LEVEL, ErrStatRangeInvalid)
	}

	evSpread := evs.Spread()
	ivSpread := ivs.Spread()

	for i, stat := range STAT_NAMES {
		if evSpread[i] < 0 || evSpread[i] > MAX_EV {
			return fmt.Errorf("%s EV %d is outside 0-%d: %w", stat, evSpread[i], MAX_EV, ErrStatRangeInvalid)
		}

		if ivSpread[i] < 0 || ivSpread[i] > MAX_IV {
			return fmt.Errorf("%s IV %d is outside 0-%d: %w", stat, ivSpread[i], MAX_IV, ErrStatRangeInvalid)
		}
	}

	if evTotal := evs.Total(); evTotal > MAX_TOTAL_EV {
		return fmt.Errorf("EV total (%d) is greater than the max allowed: %d: %w", evTotal, MAX_TOTAL_EV, ErrStatRangeInvalid)
	}

	return nil
}

// ValidateRoster rejects rosters bigger than a full team
func ValidateRoster(roster []Battler) error {
	if len(roster) > MAX_TEAM_SIZE {
		return fmt.Errorf("roster has %d members, max is %d: %w", len(roster), MAX_TEAM_SIZE, ErrRosterTooLarge)
	}

	return nil
}
