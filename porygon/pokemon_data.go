package porygon

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io/fs"
	"strconv"
	"strings"
	"sync"
)

// Species is the dex entry a Battler is built from
type Species struct {
	PokedexNumber uint
	Name          string
	Types         []string
	Base          StatBlock
}

// MoveRegistry maps lowercase move names to move info
type MoveRegistry map[string]Move

// Dex supplies species and moves to the builder. It is read only once loaded.
type Dex struct {
	species []Species
	moves   MoveRegistry
}

func NewDex(species []Species, moves MoveRegistry) *Dex {
	if moves == nil {
		moves = MoveRegistry{}
	}

	return &Dex{species: species, moves: moves}
}

func (d *Dex) AllSpecies() []Species {
	return d.species
}

func (d *Dex) SpeciesByName(name string) *Species {
	for _, s := range d.species {
		if strings.EqualFold(s.Name, name) {
			return &s
		}
	}

	return nil
}

func (d *Dex) SpeciesByPokedex(pkdNumber int) *Species {
	for _, s := range d.species {
		if s.PokedexNumber == uint(pkdNumber) {
			return &s
		}
	}

	return nil
}

// LookupSpecies is SpeciesByName with an ErrUnknownSpecies error instead of nil
func (d *Dex) LookupSpecies(name string) (Species, error) {
	s := d.SpeciesByName(name)
	if s == nil {
		return Species{}, fmt.Errorf("species %q: %w", name, ErrUnknownSpecies)
	}

	return *s, nil
}

func (d *Dex) Move(name string) *Move {
	move, ok := d.moves[strings.ToLower(name)]
	if ok {
		return &move
	} else {
		return nil
	}
}

// LookupMove is Move with an ErrUnknownMove error instead of nil
func (d *Dex) LookupMove(name string) (Move, error) {
	move := d.Move(name)
	if move == nil {
		return Move{}, fmt.Errorf("move %q: %w", name, ErrUnknownMove)
	}

	return *move, nil
}

// LoadSpecies takes in the bytes of a csv file with a header row and the following columns:
// PokedexNumber, Name, Type1, Type2, HP, Attack, Defense, SpecialAttack, SpecialDefense, Speed
// in that order. Type2 may be empty. All stat values must be valid integers.
func LoadSpecies(fileBytes []byte) ([]Species, error) {
	csvReader := csv.NewReader(bytes.NewBuffer(fileBytes))
	csvReader.FieldsPerRecord = 10

	rows, err := csvReader.ReadAll()
	if err != nil {
		internalLogger.Error(err, "invalid csv data")
		return nil, err
	}

	if len(rows) > 0 {
		// header
		rows = rows[1:]
	}

	speciesList := make([]Species, 0, len(rows))

	for i, row := range rows {
		pokedexNumber, err := strconv.ParseUint(row[0], 10, 16)
		if err != nil {
			internalLogger.WithName("species_parsing").Error(err, "invalid pokedex number", "row", i+1)
			return nil, fmt.Errorf("row %d: invalid pokedex number: %w", i+1, err)
		}

		var stats [6]int
		for statIndex := range stats {
			value, err := strconv.ParseInt(row[4+statIndex], 10, 16)
			if err != nil {
				internalLogger.WithName("species_parsing").Error(err, "invalid stat", "row", i+1, "stat", STAT_NAMES[statIndex])
				return nil, fmt.Errorf("row %d: invalid %s: %w", i+1, STAT_NAMES[statIndex], err)
			}

			stats[statIndex] = int(value)
		}

		types := []string{normalizeTypeName(row[2])}
		if type2 := normalizeTypeName(row[3]); type2 != "" {
			types = append(types, type2)
		}

		species := Species{
			PokedexNumber: uint(pokedexNumber),
			Name:          row[1],
			Types:         types,
			Base:          NewStatBlock(stats),
		}

		internalLogger.WithName("load_species").V(1).Info("loaded species", "pokedex", species.PokedexNumber, "name", species.Name, "types", species.Types, "base", stats)

		speciesList = append(speciesList, species)
	}

	internalLogger.Info("Loaded species", "count", len(speciesList))

	return speciesList, nil
}

// LoadMoves takes in a json array of moves
func LoadMoves(moveBytes []byte) (MoveRegistry, error) {
	parsedMoves := make([]Move, 0, 1000)
	if err := json.Unmarshal(moveBytes, &parsedMoves); err != nil {
		internalLogger.Error(err, "Couldn't unmarshal move data")
		return nil, err
	}

	registry := make(MoveRegistry, len(parsedMoves))
	for _, move := range parsedMoves {
		move.Type = normalizeTypeName(move.Type)
		registry[strings.ToLower(move.Name)] = move
	}

	internalLogger.Info("Loaded moves", "count", len(registry))

	return registry, nil
}

// DefaultLoader loads data/species.csv and data/moves.json from files
func DefaultLoader(files fs.FS) (*Dex, []error) {
	var wg sync.WaitGroup
	wg.Add(2)
	errChan := make(chan error, 2)

	var species []Species
	var moves MoveRegistry

	go func() {
		defer wg.Done()

		speciesBytes, err := fs.ReadFile(files, "data/species.csv")
		if err != nil {
			errChan <- err
			return
		}

		species, err = LoadSpecies(speciesBytes)
		if err != nil {
			errChan <- err
		}
	}()
	go func() {
		defer wg.Done()

		moveBytes, err := fs.ReadFile(files, "data/moves.json")
		if err != nil {
			errChan <- err
			return
		}

		moves, err = LoadMoves(moveBytes)
		if err != nil {
			errChan <- err
		}
	}()

	wg.Wait()
	close(errChan)

	errs := make([]error, 0)
	for err := range errChan {
		errs = append(errs, err)
	}

	return NewDex(species, moves), errs
}
