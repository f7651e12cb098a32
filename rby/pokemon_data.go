package rby

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io/fs"
	"strconv"
	"strings"

	"github.com/go-logr/logr"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

var dataLogger = func() logr.Logger {
	return internalLogger.WithName("data")
}

const (
	SPECIES_DATA_PATH = "gen1-data.csv"
	MOVE_DATA_PATH    = "moves.json"
)

// Dex is the species and move data a battle is set up from.
type Dex struct {
	Species []Species
	// Moves maps lower case move names to moves
	Moves map[string]Move
}

func (d Dex) GetSpeciesByName(name string) (*Species, error) {
	species, ok := lo.Find(d.Species, func(s Species) bool {
		return strings.EqualFold(s.Name, name)
	})
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSpecies, name)
	}

	return &species, nil
}

func (d Dex) GetSpeciesByPokedex(number uint) (*Species, error) {
	species, ok := lo.Find(d.Species, func(s Species) bool {
		return s.PokedexNumber == number
	})
	if !ok {
		return nil, fmt.Errorf("%w: pokedex number %d", ErrUnknownSpecies, number)
	}

	return &species, nil
}

func (d Dex) GetMove(name string) (Move, error) {
	move, ok := d.Moves[strings.ToLower(name)]
	if !ok {
		return Move{}, fmt.Errorf("%w: %q", ErrUnknownMove, name)
	}

	return move, nil
}

// LoadSpecies takes in the bytes of a csv file with a header row and the columns
// PokedexNumber, Name, Type1, Type2, HP, Attack, Defense, Special, Speed.
// Type2 may be empty.
func LoadSpecies(fileBytes []byte) ([]Species, error) {
	csvReader := csv.NewReader(bytes.NewReader(fileBytes))
	csvReader.FieldsPerRecord = 9

	rows, err := csvReader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("invalid species csv: %w", err)
	}

	if len(rows) == 0 {
		return nil, nil
	}

	speciesList := make([]Species, 0, len(rows)-1)

	// first row is the header
	for i, row := range rows[1:] {
		line := i + 2

		pokedexNumber, err := strconv.ParseUint(row[0], 10, 16)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid pokedex number: %w", line, err)
		}

		var baseStats StatSet
		for stat := range baseStats {
			value, err := strconv.ParseUint(row[4+stat], 10, 8)
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid base %s: %w", line, Stat(stat), err)
			}

			baseStats[stat] = uint16(value)
		}

		types := make([]Type, 0, 2)
		for _, typeName := range row[2:4] {
			if typeName == "" {
				continue
			}

			t, err := ParseType(typeName)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}

			types = append(types, t)
		}

		if len(types) == 0 {
			return nil, fmt.Errorf("line %d: %w: %s has no type", line, ErrInvalidPokemon, row[1])
		}

		species := Species{
			PokedexNumber: uint(pokedexNumber),
			Name:          row[1],
			BaseStats:     baseStats,
			Types:         types,
		}

		dataLogger().V(1).Info("loaded species", "pokedex", species.PokedexNumber, "name", species.Name, "base_stats", species.BaseStats)

		speciesList = append(speciesList, species)
	}

	dataLogger().Info("Loaded species", "count", len(speciesList))

	return speciesList, nil
}

// moveEntry is how a move is written in moves.json.
// Accuracy is a percentage there, null for moves that never miss.
type moveEntry struct {
	Name          string `json:"name"`
	Type          string `json:"type"`
	Power         *int   `json:"power"`
	Accuracy      *int   `json:"accuracy"`
	Effect        string `json:"effect"`
	RecoilDivider int    `json:"recoil_divider"`
}

// accuracyFromPercent converts a percentage into the cartridge's 0-255 scale.
func accuracyFromPercent(percent int) uint8 {
	return uint8(percent * 255 / 100)
}

func (e moveEntry) toMove() (Move, error) {
	move := Move{Name: strings.ToLower(e.Name)}

	t, err := ParseType(e.Type)
	if err != nil {
		return move, err
	}
	move.Type = t

	if e.Power != nil {
		if *e.Power < 0 || *e.Power > 255 {
			return move, fmt.Errorf("%w: %s has power %d", ErrInvalidMove, e.Name, *e.Power)
		}
		move.Power = uint8(*e.Power)
	}

	if e.Accuracy != nil {
		if *e.Accuracy <= 0 || *e.Accuracy > 100 {
			return move, fmt.Errorf("%w: %s has accuracy %d%%", ErrInvalidMove, e.Name, *e.Accuracy)
		}
		move.Accuracy = accuracyFromPercent(*e.Accuracy)
	}

	switch e.Effect {
	case "", "normal":
		move.Effect = NormalEffect()
	case "recoil":
		if e.RecoilDivider <= 0 || e.RecoilDivider > 255 {
			return move, fmt.Errorf("%w: %s has recoil divider %d", ErrInvalidMove, e.Name, e.RecoilDivider)
		}
		move.Effect = RecoilEffect(uint8(e.RecoilDivider))
	case "self-ko":
		move.Effect = SelfKOEffect()
	case "high-crit":
		move.Effect = HighCritEffect()
	default:
		return move, fmt.Errorf("%w: %s has unknown effect %q", ErrInvalidMove, e.Name, e.Effect)
	}

	return move, nil
}

// LoadMoves takes in a json list of moves and returns them keyed by lower case name.
func LoadMoves(moveBytes []byte) (map[string]Move, error) {
	entries := make([]moveEntry, 0, 165)
	if err := json.Unmarshal(moveBytes, &entries); err != nil {
		return nil, fmt.Errorf("couldn't unmarshal move data: %w", err)
	}

	moves := make(map[string]Move, len(entries))
	for _, entry := range entries {
		move, err := entry.toMove()
		if err != nil {
			return nil, err
		}

		moves[move.Name] = move
	}

	dataLogger().Info("Loaded moves", "count", len(moves))

	return moves, nil
}

// DefaultLoader loads gen1-data.csv and moves.json from the root of files concurrently.
func DefaultLoader(files fs.FS) (Dex, error) {
	var dex Dex
	var g errgroup.Group

	g.Go(func() error {
		speciesBytes, err := fs.ReadFile(files, SPECIES_DATA_PATH)
		if err != nil {
			return err
		}

		species, err := LoadSpecies(speciesBytes)
		if err != nil {
			return fmt.Errorf("%s: %w", SPECIES_DATA_PATH, err)
		}

		dex.Species = species
		return nil
	})

	g.Go(func() error {
		moveBytes, err := fs.ReadFile(files, MOVE_DATA_PATH)
		if err != nil {
			return err
		}

		moves, err := LoadMoves(moveBytes)
		if err != nil {
			return fmt.Errorf("%s: %w", MOVE_DATA_PATH, err)
		}

		dex.Moves = moves
		return nil
	})

	if err := g.Wait(); err != nil {
		return Dex{}, err
	}

	return dex, nil
}
