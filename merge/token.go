package merge

import "fmt"

// LocationKind tells which kind of container currently holds a token
type LocationKind int

const (
	// InTransit: not placed in any container (fresh or destroyed)
	InTransit LocationKind = iota
	InGrid
	InChargingSlot
)

func (k LocationKind) String() string {
	switch k {
	case InGrid:
		return "grid"
	case InChargingSlot:
		return "slot"
	default:
		return "transit"
	}
}

// Location is the logical home of a token. Row/Col are meaningful for InGrid,
// Slot for InChargingSlot.
type Location struct {
	Kind     LocationKind
	Row, Col int
	Slot     int
}

// GridLocation returns the location of a grid cell
func GridLocation(row, col int) Location {
	return Location{Kind: InGrid, Row: row, Col: col}
}

// SlotLocation returns the location of a charging slot
func SlotLocation(slot int) Location {
	return Location{Kind: InChargingSlot, Slot: slot}
}

func (l Location) String() string {
	switch l.Kind {
	case InGrid:
		return fmt.Sprintf("grid(%d,%d)", l.Row, l.Col)
	case InChargingSlot:
		return fmt.Sprintf("slot(%d)", l.Slot)
	default:
		return "transit"
	}
}

// Token is a leveled battery. Level only ever increases.
type Token struct {
	id        uint64
	level     int
	loc       Location
	destroyed bool
}

// NewToken creates an unplaced token. Levels below 1 are raised to 1.
func NewToken(id uint64, level int) *Token {
	if level < 1 {
		level = 1
	}
	return &Token{id: id, level: level}
}

// ID returns the token identity
func (t *Token) ID() uint64 { return t.id }

// Level returns the current level
func (t *Token) Level() int { return t.level }

// Location returns where the token logically sits
func (t *Token) Location() Location { return t.loc }

// Destroyed reports whether the token was consumed by a merge or replacement
func (t *Token) Destroyed() bool { return t.destroyed }

// MoveTo records the token's new home. Containers call this from Put.
func (t *Token) MoveTo(loc Location) {
	t.loc = loc
}

// LevelUp raises the level by one and returns the new level
func (t *Token) LevelUp() int {
	t.level++
	return t.level
}

func (t *Token) destroy() {
	t.destroyed = true
	t.loc = Location{}
}

func (t *Token) String() string {
	return fmt.Sprintf("token#%d(L%d@%s)", t.id, t.level, t.loc)
}
