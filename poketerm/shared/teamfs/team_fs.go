package teamfs

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"

	"github.com/nathanieltooley/porycalc/porygon"
	"github.com/samber/lo"
)

var ErrNoSuchTeam = errors.New("no such team exists")

const DemoTeamName = "Demo Team"

// SavedBattler is a team member as written to disk. Species and moves are looked up
// in the dex when the team is resolved.
type SavedBattler struct {
	Species  string   `json:"species"`
	Nickname string   `json:"nickname,omitempty"`
	Level    int      `json:"level,omitempty"`
	Nature   string   `json:"nature,omitempty"`
	Evs      [6]int   `json:"evs"`
	Ivs      [6]int   `json:"ivs"`
	Moves    []string `json:"moves"`
	Item     string   `json:"item,omitempty"`
}

type SavedTeams map[string][]SavedBattler

func SaveTeam(filePath string, name string, team []SavedBattler) error {
	teams, err := LoadTeamMap(filePath)
	if err != nil {
		return err
	}

	teams[name] = lo.Filter(team, func(b SavedBattler, _ int) bool {
		return b.Species != ""
	})

	return writeTeamMap(filePath, teams)
}

func LoadTeam(filePath string, name string) ([]SavedBattler, error) {
	teams, err := LoadTeamMap(filePath)
	if err != nil {
		return nil, err
	}

	team, ok := teams[name]
	if !ok {
		return nil, ErrNoSuchTeam
	}

	// This should only happen if a user manually edits the teams.json
	if len(team) > porygon.MAX_TEAM_SIZE {
		team = team[:porygon.MAX_TEAM_SIZE]
	}

	return team, nil
}

// TeamNames gets every saved team's name, sorted
func TeamNames(filePath string) ([]string, error) {
	teams, err := LoadTeamMap(filePath)
	if err != nil {
		return nil, err
	}

	names := lo.Keys(teams)
	slices.Sort(names)

	return names, nil
}

func LoadTeamMap(filePath string) (SavedTeams, error) {
	teamFile, err := os.Open(filePath)
	// If there is an error, assume the file doesn't exist
	if err != nil {
		if err := os.MkdirAll(filepath.Dir(filePath), 0750); err != nil {
			return nil, err
		}

		teamFile, err = os.Create(filePath)
		// If we still have errors, then bail
		if err != nil {
			return nil, err
		}
	}
	defer teamFile.Close()

	teamFileBytes, err := io.ReadAll(teamFile)
	if err != nil {
		return nil, err
	}

	teams := make(SavedTeams)
	if err := json.Unmarshal(teamFileBytes, &teams); err != nil {
		// If there is an err, ignore it for now and just continue as if it was empty
		teams = make(SavedTeams)
	}

	return teams, nil
}

// SeedDemoTeam writes DemoTeam to filePath if it has no saved teams yet
func SeedDemoTeam(filePath string) error {
	teams, err := LoadTeamMap(filePath)
	if err != nil {
		return err
	}

	if len(teams) > 0 {
		return nil
	}

	teams[DemoTeamName] = DemoTeam()
	return writeTeamMap(filePath, teams)
}

func writeTeamMap(filePath string, teams SavedTeams) error {
	teamsJson, err := json.MarshalIndent(teams, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(filePath, teamsJson, 0644)
}

// ResolveTeam builds battlers for every saved entry.
// Entries without a level get defaultLevel. Unknown species, moves or natures and bad spreads are errors.
func ResolveTeam(dex *porygon.Dex, team []SavedBattler, defaultLevel int) ([]porygon.Battler, error) {
	battlers := make([]porygon.Battler, 0, len(team))

	for i, saved := range team {
		battler, err := resolveBattler(dex, saved, defaultLevel)
		if err != nil {
			return nil, fmt.Errorf("team member %d: %w", i+1, err)
		}

		battlers = append(battlers, battler)
	}

	return battlers, nil
}

func resolveBattler(dex *porygon.Dex, saved SavedBattler, defaultLevel int) (porygon.Battler, error) {
	species, err := dex.LookupSpecies(saved.Species)
	if err != nil {
		return porygon.Battler{}, err
	}

	moves := make([]porygon.Move, 0, len(saved.Moves))
	for _, moveName := range saved.Moves {
		move, err := dex.LookupMove(moveName)
		if err != nil {
			return porygon.Battler{}, err
		}

		moves = append(moves, move)
	}

	level := saved.Level
	if level == 0 {
		level = defaultLevel
	}

	nature := saved.Nature
	if nature == "" {
		nature = porygon.NATURE_HARDY.Name
	}

	return porygon.NewBattlerBuilder(&species).
		SetNickname(saved.Nickname).
		SetLevel(level).
		SetNature(nature).
		SetEvs(saved.Evs).
		SetIvs(saved.Ivs).
		SetMoves(moves...).
		SetItem(saved.Item).
		BuildStrict()
}

func perfectIvs() [6]int {
	return [6]int{porygon.MAX_IV, porygon.MAX_IV, porygon.MAX_IV, porygon.MAX_IV, porygon.MAX_IV, porygon.MAX_IV}
}

// DemoTeam is a sample team made only of species and moves in the bundled data
func DemoTeam() []SavedBattler {
	return []SavedBattler{
		{
			Species: "Garchomp",
			Nature:  porygon.NATURE_JOLLY.Name,
			Evs:     [6]int{0, 252, 0, 0, 4, 252},
			Ivs:     perfectIvs(),
			Moves:   []string{"earthquake", "outrage", "stone-edge", "swords-dance"},
			Item:    "Choice Band",
		},
		{
			Species: "Gengar",
			Nature:  porygon.NATURE_TIMID.Name,
			Evs:     [6]int{0, 0, 0, 252, 4, 252},
			Ivs:     perfectIvs(),
			Moves:   []string{"shadow-ball", "sludge-bomb", "thunderbolt", "toxic"},
			Item:    "Life Orb",
		},
		{
			Species: "Skarmory",
			Nature:  porygon.NATURE_IMPISH.Name,
			Evs:     [6]int{252, 0, 252, 0, 4, 0},
			Ivs:     perfectIvs(),
			Moves:   []string{"brave-bird", "roost", "toxic"},
		},
		{
			Species: "Chansey",
			Nature:  porygon.NATURE_BOLD.Name,
			Evs:     [6]int{252, 0, 252, 0, 4, 0},
			Ivs:     perfectIvs(),
			Moves:   []string{"soft-boiled", "toxic", "thunder-wave", "ice-beam"},
		},
		{
			Species: "Blastoise",
			Nature:  porygon.NATURE_MODEST.Name,
			Evs:     [6]int{252, 0, 0, 252, 4, 0},
			Ivs:     perfectIvs(),
			Moves:   []string{"hydro-pump", "ice-beam", "flash-cannon"},
		},
		{
			Species: "Scizor",
			Nature:  porygon.NATURE_ADAMANT.Name,
			Evs:     [6]int{248, 252, 0, 0, 8, 0},
			Ivs:     perfectIvs(),
			Moves:   []string{"bullet-punch", "u-turn", "swords-dance", "close-combat"},
		},
	}
}
