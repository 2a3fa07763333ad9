package charging

import "errors"

var (
	// ErrInvalidSlotIndex is returned for indexes outside [0, SlotCount)
	ErrInvalidSlotIndex = errors.New("charging: invalid slot index")

	// ErrSlotOccupied is returned when adding to an occupied slot
	ErrSlotOccupied = errors.New("charging: slot occupied")

	// ErrSlotEmpty is returned when removing from an empty slot
	ErrSlotEmpty = errors.New("charging: slot empty")

	// ErrTokenPlaced is returned when adding a token that still sits in a
	// cell or slot, or was consumed by a merge
	ErrTokenPlaced = errors.New("charging: token is not detached")
)
