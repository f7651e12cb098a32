package rby

import "errors"

var (
	ErrUnknownType    = errors.New("unknown type")
	ErrUnknownSpecies = errors.New("unknown species")
	ErrUnknownMove    = errors.New("unknown move")
	ErrInvalidPokemon = errors.New("invalid pokemon")
	ErrInvalidMove    = errors.New("invalid move")
)

// Must returns value if err is nil and panics otherwise.
func Must[T any](value T, err error) T {
	if err != nil {
		panic(err)
	}

	return value
}
