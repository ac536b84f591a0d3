package porygon

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	ROLE_PHYSICAL_SWEEPER = "Physical Sweeper"
	ROLE_SPECIAL_SWEEPER  = "Special Sweeper"
	ROLE_PHYSICAL_WALL    = "Physical Wall"
	ROLE_SPECIAL_WALL     = "Special Wall"
	ROLE_TANK             = "Tank"
	ROLE_FAST_SUPPORT     = "Fast Support"
	ROLE_BULKY_SUPPORT    = "Bulky Support"
	ROLE_BALANCED         = "Balanced"
)

// ROLES is every role in the order DetectRole checks for them
var ROLES = [...]string{
	ROLE_PHYSICAL_SWEEPER,
	ROLE_SPECIAL_SWEEPER,
	ROLE_PHYSICAL_WALL,
	ROLE_SPECIAL_WALL,
	ROLE_TANK,
	ROLE_FAST_SUPPORT,
	ROLE_BULKY_SUPPORT,
	ROLE_BALANCED,
}

// Score weights, they sum to 1
const (
	WEIGHT_TYPE_COVERAGE     = 0.20
	WEIGHT_ROLE_BALANCE      = 0.20
	WEIGHT_WEAKNESS_COVERAGE = 0.30
	WEIGHT_SPEED_TIERS       = 0.15
	WEIGHT_MOVE_COVERAGE     = 0.15
)

const (
	idealRoleCount       = 2
	roleDeviationPenalty = 15

	criticalWeaknessCount = 4
)

type RoleGroup struct {
	Role    string
	Count   int
	Members []string
}

// WeaknessOverlap is an attacking type and every roster member weak to it
type WeaknessOverlap struct {
	Type    string
	Count   int
	Members []string
}

// SynergyScore holds the five sub-scores, each 0-100, and their weighted and rounded total
type SynergyScore struct {
	TypeCoverage     float64
	RoleBalance      float64
	WeaknessCoverage float64
	SpeedTiers       float64
	MoveCoverage     float64
	Overall          int
}

type TeamAnalysis struct {
	Roles           []RoleGroup
	WeaknessOverlap []WeaknessOverlap
	Score           SynergyScore
	Suggestions     []string
}

// DetectRole gives a battler a role from how its stats compare to its own average stat.
// The checks run in the order of ROLES and the first that passes wins.
func DetectRole(b Battler) string {
	s := b.Stats
	avg := s.Average()

	above := func(stat int, factor float64) bool {
		return float64(stat) > avg*factor
	}

	switch {
	case above(s.Attack, 1.3) && above(s.Speed, 1.2):
		return ROLE_PHYSICAL_SWEEPER
	case above(s.SpAttack, 1.3) && above(s.Speed, 1.2):
		return ROLE_SPECIAL_SWEEPER
	case above(s.Def, 1.3) && above(s.Hp, 1.1):
		return ROLE_PHYSICAL_WALL
	case above(s.SpDef, 1.3) && above(s.Hp, 1.1):
		return ROLE_SPECIAL_WALL
	case above(s.Hp, 1.2) && (above(s.Def, 1) || above(s.SpDef, 1)):
		return ROLE_TANK
	case above(s.Speed, 1.2):
		return ROLE_FAST_SUPPORT
	case above(s.Hp, 1.1):
		return ROLE_BULKY_SUPPORT
	default:
		return ROLE_BALANCED
	}
}

func isSweeper(role string) bool {
	return strings.Contains(role, "Sweeper")
}

func isWall(role string) bool {
	return strings.Contains(role, "Wall")
}

// Analyze scores how well a roster works together.
// An empty roster scores 0 everywhere and gets no roles, weaknesses or suggestions.
func Analyze(roster []Battler) TeamAnalysis {
	if len(roster) == 0 {
		return TeamAnalysis{
			Roles:           []RoleGroup{},
			WeaknessOverlap: []WeaknessOverlap{},
			Suggestions:     []string{},
		}
	}

	if len(roster) > MAX_TEAM_SIZE {
		internalLogger.V(1).Info("analyzing a roster larger than a full team", "size", len(roster))
	}

	roles := lo.Map(roster, func(b Battler, _ int) string {
		return DetectRole(b)
	})

	roleGroups := groupRoles(roster, roles)
	weaknesses := weaknessOverlap(roster)

	score := SynergyScore{
		TypeCoverage:     typeCoverageScore(roster),
		RoleBalance:      roleBalanceScore(roles),
		WeaknessCoverage: weaknessCoverageScore(weaknesses),
		SpeedTiers:       speedTierScore(roster),
		MoveCoverage:     moveCoverageScore(roster),
	}
	score.Overall = int(math.Round(
		WEIGHT_TYPE_COVERAGE*score.TypeCoverage +
			WEIGHT_ROLE_BALANCE*score.RoleBalance +
			WEIGHT_WEAKNESS_COVERAGE*score.WeaknessCoverage +
			WEIGHT_SPEED_TIERS*score.SpeedTiers +
			WEIGHT_MOVE_COVERAGE*score.MoveCoverage,
	))

	internalLogger.V(2).Info("team synergy",
		"size", len(roster),
		"typeCoverage", score.TypeCoverage,
		"roleBalance", score.RoleBalance,
		"weaknessCoverage", score.WeaknessCoverage,
		"speedTiers", score.SpeedTiers,
		"moveCoverage", score.MoveCoverage,
		"overall", score.Overall,
	)

	return TeamAnalysis{
		Roles:           roleGroups,
		WeaknessOverlap: weaknesses,
		Score:           score,
		Suggestions:     suggest(roles, weaknesses, score),
	}
}

// AnalyzeStrict is Analyze but rejects rosters larger than a full team
func AnalyzeStrict(roster []Battler) (TeamAnalysis, error) {
	if err := ValidateRoster(roster); err != nil {
		return TeamAnalysis{}, err
	}

	return Analyze(roster), nil
}

func groupRoles(roster []Battler, roles []string) []RoleGroup {
	groups := make([]RoleGroup, 0)

	for _, role := range ROLES {
		members := make([]string, 0)
		for i, memberRole := range roles {
			if memberRole == role {
				members = append(members, roster[i].Name)
			}
		}

		if len(members) > 0 {
			groups = append(groups, RoleGroup{Role: role, Count: len(members), Members: members})
		}
	}

	return groups
}

// weaknessOverlap lists every attacking type at least one member is weak to, most shared first.
// Types with the same count stay in chart order.
func weaknessOverlap(roster []Battler) []WeaknessOverlap {
	weakMembers := make(map[string][]string)

	for _, b := range roster {
		for _, weakType := range Classify(b.Types...).Weak {
			weakMembers[weakType] = append(weakMembers[weakType], b.Name)
		}
	}

	overlaps := make([]WeaknessOverlap, 0, len(weakMembers))
	for _, t := range TYPE_ORDER {
		members, ok := weakMembers[t]
		if !ok {
			continue
		}

		overlaps = append(overlaps, WeaknessOverlap{Type: t, Count: len(members), Members: members})
	}

	slices.SortStableFunc(overlaps, func(a, b WeaknessOverlap) int {
		return cmp.Compare(b.Count, a.Count)
	})

	return overlaps
}

func typeCoverageScore(roster []Battler) float64 {
	types := lo.Uniq(lo.FilterMap(lo.Flatten(lo.Map(roster, func(b Battler, _ int) []string {
		return b.Types
	})), func(t string, _ int) (string, bool) {
		return normalizeTypeName(t), IsType(t)
	}))

	return math.Min(float64(len(types))/float64(len(TYPE_ORDER))*100, 100)
}

func roleBalanceScore(roles []string) float64 {
	sweepers := lo.CountBy(roles, isSweeper)
	walls := lo.CountBy(roles, isWall)
	support := len(roles) - sweepers - walls

	deviation := absInt(sweepers-idealRoleCount) + absInt(walls-idealRoleCount) + absInt(support-idealRoleCount)

	return math.Max(0, 100-float64(roleDeviationPenalty*deviation))
}

func weaknessCoverageScore(weaknesses []WeaknessOverlap) float64 {
	penalty := 0
	for _, w := range weaknesses {
		switch {
		case w.Count >= 4:
			penalty += 30
		case w.Count == 3:
			penalty += 15
		case w.Count == 2:
			penalty += 5
		}
	}

	return math.Max(0, float64(100-penalty))
}

// speedTierScore rewards rosters spread evenly across fast, mid and slow members.
// Because it scores the smallest tier, it can never go above 33.3.
func speedTierScore(roster []Battler) float64 {
	avgSpeed := lo.SumBy(roster, func(b Battler) float64 {
		return float64(b.Stats.Speed)
	}) / float64(len(roster))

	fast := lo.CountBy(roster, func(b Battler) bool {
		return float64(b.Stats.Speed) > avgSpeed*1.2
	})
	slow := lo.CountBy(roster, func(b Battler) bool {
		return float64(b.Stats.Speed) < avgSpeed*0.8
	})
	mid := len(roster) - fast - slow

	return float64(min(fast, slow, mid)) / float64(len(roster)) * 100
}

func moveCoverageScore(roster []Battler) float64 {
	moveTypes := lo.Uniq(lo.Filter(lo.FlatMap(roster, func(b Battler, _ int) []string {
		return b.MoveTypes()
	}), func(t string, _ int) bool {
		return IsType(t)
	}))

	return math.Min(float64(len(moveTypes))/float64(len(TYPE_ORDER))*100, 100)
}

func suggest(roles []string, weaknesses []WeaknessOverlap, score SynergyScore) []string {
	suggestions := make([]string, 0)
	title := cases.Title(language.English)

	sweepers := lo.CountBy(roles, isSweeper)
	walls := lo.CountBy(roles, isWall)

	if sweepers == 0 {
		suggestions = append(suggestions, "Add a physical or special sweeper to put offensive pressure on opponents")
	}

	if sweepers > 3 {
		suggestions = append(suggestions, "Too many sweepers, consider swapping one for defensive support")
	}

	if walls == 0 {
		suggestions = append(suggestions, "Add a physical or special wall to take hits for the team")
	}

	for _, w := range weaknesses {
		if w.Count >= criticalWeaknessCount {
			suggestions = append(suggestions, fmt.Sprintf("Critical weakness: %d members are weak to %s", w.Count, title.String(w.Type)))
		}
	}

	if score.MoveCoverage < 50 {
		suggestions = append(suggestions, "Improve type coverage by teaching moves of more types")
	}

	if score.SpeedTiers < 40 {
		suggestions = append(suggestions, "Improve speed distribution so the team has fast, mid and slow members")
	}

	if len(suggestions) == 0 {
		suggestions = append(suggestions, "Team synergy looks great!")
	}

	return suggestions
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
