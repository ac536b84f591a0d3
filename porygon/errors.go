package porygon

import "errors"

var (
	ErrUnknownType       = errors.New("unknown type")
	ErrInvalidTypeCount  = errors.New("a pokemon must have one or two types")
	ErrUnknownNature     = errors.New("unknown nature")
	ErrUnknownStat       = errors.New("unknown stat")
	ErrStatRangeInvalid  = errors.New("stat value out of range")
	ErrDivisionUndefined = errors.New("division by zero")
	ErrRosterTooLarge    = errors.New("roster has too many members")
	ErrUnknownSpecies    = errors.New("unknown species")
	ErrUnknownMove       = errors.New("unknown move")
)
