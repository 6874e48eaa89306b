package rubik

import "errors"

// Sentinel errors for the rubik package.
var (
	// Construction errors
	ErrInvalidMagnitude = errors.New("rubik: invalid move magnitude")
	ErrInvalidFace      = errors.New("rubik: invalid face")

	// Parsing errors
	ErrInvalidNotation = errors.New("rubik: invalid move notation")

	// Query errors
	ErrOutOfRange = errors.New("rubik: sticker index out of range")

	// State errors
	ErrInvalidPermutation = errors.New("rubik: pieces are not a permutation")
	ErrDispatcherClosed   = errors.New("rubik: dispatcher closed")
)
