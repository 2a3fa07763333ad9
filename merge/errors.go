package merge

import "errors"

var (
	// ErrCellOccupied is returned when spawning into a non-empty cell
	ErrCellOccupied = errors.New("merge: cell occupied")

	// ErrOutOfBounds is returned for row/col outside the grid
	ErrOutOfBounds = errors.New("merge: cell out of bounds")

	// ErrInsufficientFunds is returned when coins are below the spawn cost
	ErrInsufficientFunds = errors.New("merge: insufficient funds")

	// ErrGridFull is returned when a purchase finds no empty cell
	ErrGridFull = errors.New("merge: grid full")

	// ErrUpgradeUnavailable is returned when "level up all" is used while hidden
	ErrUpgradeUnavailable = errors.New("merge: upgrade not available")

	// ErrInvalidLevel is returned for spawn levels below 1
	ErrInvalidLevel = errors.New("merge: invalid level")
)
