// Package porygon turns pokemon battle data into type matchups, computed stats, damage ranges and team synergy scores.
// Every calculation is a pure function of its arguments and is safe to call from multiple goroutines.
package porygon

const (
	MAX_IV       = 31
	MAX_EV       = 252
	MAX_TOTAL_EV = 510

	MIN_LEVEL = 1
	MAX_LEVEL = 100

	// MAX_TEAM_SIZE is the largest roster Analyze is meant to score
	MAX_TEAM_SIZE = 6
)

const (
	DAMAGETYPE_PHYSICAL = "physical"
	DAMAGETYPE_SPECIAL  = "special"
	DAMAGETYPE_STATUS   = "status"
)

const (
	TYPENAME_NORMAL   = "normal"
	TYPENAME_FIRE     = "fire"
	TYPENAME_WATER    = "water"
	TYPENAME_ELECTRIC = "electric"
	TYPENAME_GRASS    = "grass"
	TYPENAME_ICE      = "ice"
	TYPENAME_FIGHTING = "fighting"
	TYPENAME_POISON   = "poison"
	TYPENAME_GROUND   = "ground"
	TYPENAME_FLYING   = "flying"
	TYPENAME_PSYCHIC  = "psychic"
	TYPENAME_BUG      = "bug"
	TYPENAME_ROCK     = "rock"
	TYPENAME_GHOST    = "ghost"
	TYPENAME_DRAGON   = "dragon"
	TYPENAME_DARK     = "dark"
	TYPENAME_STEEL    = "steel"
	TYPENAME_FAIRY    = "fairy"
)

const (
	WEATHER_NONE = "none"
	WEATHER_SUN  = "sun"
	WEATHER_RAIN = "rain"
	WEATHER_SAND = "sand"
	WEATHER_SNOW = "snow"
)

const (
	STAT_HP       = "hp"
	STAT_ATTACK   = "attack"
	STAT_DEFENSE  = "defense"
	STAT_SPATTACK = "special-attack"
	STAT_SPDEF    = "special-defense"
	STAT_SPEED    = "speed"
)

// STAT_NAMES follows the order used by EV / IV spreads: HP, ATTACK, DEF, SPATTACK, SPDEF, SPEED
var STAT_NAMES = [6]string{
	STAT_HP,
	STAT_ATTACK,
	STAT_DEFENSE,
	STAT_SPATTACK,
	STAT_SPDEF,
	STAT_SPEED,
}

const (
	STAB_BONUS      = 1.5
	CRIT_BONUS      = 1.5
	WEATHER_BOOST   = 1.5
	WEATHER_NERF    = 0.5
	LIFE_ORB_BONUS  = 1.3
	CHOICE_BONUS    = 1.5
	MIN_ROLL        = 0.85
	SCREEN_MULTIPLY = 2
)
