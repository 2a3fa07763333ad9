package merge

import (
	"fmt"

	"chargeracer/clock"
	"chargeracer/event"
)

// Board is the Grid Merge Model: the grid, the purchase economy, the drag
// lifecycle and the free-upgrade timer. All calls come from one goroutine.
type Board struct {
	cfg     Config
	clock   clock.Clock
	sink    event.Sink
	grid    *Grid
	slots   SlotSet
	locator Locators
	economy Economy
	upgrade *UpgradeTimer

	nextID   uint64
	dragging *Token
	started  bool
}

// NewBoard creates an empty board. A nil sink discards events.
func NewBoard(cfg Config, clk clock.Clock, sink event.Sink) *Board {
	if clk == nil {
		panic("merge: nil clock")
	}
	if sink == nil {
		sink = event.Discard
	}
	grid := NewGrid(cfg.Layout)
	return &Board{
		cfg:     cfg,
		clock:   clk,
		sink:    sink,
		grid:    grid,
		locator: Locators{grid},
		economy: NewEconomy(cfg),
		upgrade: NewUpgradeTimer(cfg),
	}
}

// Attach registers the charging slots. Drops are located on slots before
// grid cells, and "level up all" reaches slot tokens.
func (b *Board) Attach(slots SlotSet) {
	b.slots = slots
	b.locator = Locators{slots, b.grid}
}

// Grid returns the board grid
func (b *Board) Grid() *Grid { return b.grid }

// Economy returns a copy of the coin/tier state
func (b *Board) Economy() Economy { return b.economy }

// Upgrade returns the free-upgrade timer
func (b *Board) Upgrade() *UpgradeTimer { return b.upgrade }

// Dragging returns the token currently held by the pointer, or nil
func (b *Board) Dragging() *Token { return b.dragging }

// Started reports whether the player has interacted yet
func (b *Board) Started() bool { return b.started }

// ContainerAt locates the drop target under p
func (b *Board) ContainerAt(p Point) Container {
	return b.locator.ContainerAt(p)
}

// Home returns the container a token logically occupies
func (b *Board) Home(tok *Token) Container {
	if tok == nil {
		return nil
	}
	loc := tok.Location()
	switch loc.Kind {
	case InGrid:
		return b.grid.Cell(loc.Row, loc.Col)
	case InChargingSlot:
		if b.slots == nil {
			return nil
		}
		slots := b.slots.Slots()
		if loc.Slot < 0 || loc.Slot >= len(slots) {
			return nil
		}
		return slots[loc.Slot]
	}
	return nil
}

// Placed returns every token in the grid followed by every slot token
func (b *Board) Placed() []*Token {
	out := b.grid.Tokens()
	if b.slots != nil {
		for _, s := range b.slots.Slots() {
			if t := s.Occupant(); t != nil {
				out = append(out, t)
			}
		}
	}
	return out
}

func (b *Board) emit(e event.Event) {
	e.At = b.clock.Now()
	b.sink.Emit(e)
}

// startPlay starts the free-upgrade wait on the first interaction
func (b *Board) startPlay() {
	if b.started {
		return
	}
	b.started = true
	b.upgrade.Start(b.clock.Now())
}

func (b *Board) newToken(level int) *Token {
	b.nextID++
	return NewToken(b.nextID, level)
}

// observe feeds a level into the economy and reports a tier raise
func (b *Board) observe(level int) {
	if b.economy.Observe(level) {
		b.emit(event.Event{
			Kind:   event.SpawnTierRaised,
			Level:  b.economy.SpawnLevel,
			Amount: float64(b.economy.SpawnCost),
		})
	}
}

// Spawn creates a token of level at (row, col)
func (b *Board) Spawn(row, col, level int) (*Token, error) {
	if level < 1 {
		return nil, fmt.Errorf("spawn level %d: %w", level, ErrInvalidLevel)
	}
	c := b.grid.Cell(row, col)
	if c == nil {
		return nil, fmt.Errorf("spawn at (%d,%d): %w", row, col, ErrOutOfBounds)
	}
	if !IsEmpty(c) {
		return nil, fmt.Errorf("spawn at (%d,%d): %w", row, col, ErrCellOccupied)
	}
	return b.place(c, level), nil
}

func (b *Board) place(c Container, level int) *Token {
	tok := b.newToken(level)
	c.Put(tok)
	center := c.Bounds().Center()
	b.emit(event.Event{Kind: event.TokenSpawned, TokenID: tok.ID(), Level: level, X: center.X, Y: center.Y})
	b.observe(level)
	return tok
}

// Buy pays the spawn cost and spawns a token at the spawn level in the first
// empty cell (row-major). State is untouched on error.
func (b *Board) Buy() (*Token, error) {
	if !b.economy.CanAfford() {
		return nil, ErrInsufficientFunds
	}
	c, ok := b.grid.FirstEmpty()
	if !ok {
		return nil, ErrGridFull
	}
	if err := b.economy.Spend(); err != nil {
		return nil, err
	}
	b.startPlay()
	return b.place(c, b.economy.SpawnLevel), nil
}

// BeginDrag picks up tok. The token keeps its logical home until the drop
// resolves, so an abandoned drag leaves the board exactly as it was.
func (b *Board) BeginDrag(tok *Token) bool {
	if tok == nil || tok.Destroyed() || b.Home(tok) == nil {
		return false
	}
	b.dragging = tok
	b.startPlay()
	return true
}

// UpdateDrag reports whether the pointer is still over the token's home.
// It never mutates state; hosts use it to hide the home cell highlight.
func (b *Board) UpdateDrag(tok *Token, p Point) bool {
	home := b.Home(tok)
	if home == nil {
		return false
	}
	return home.Bounds().Contains(p)
}

// EndDrag drops tok at p and applies the resolved action
func (b *Board) EndDrag(tok *Token, p Point) Action {
	if b.dragging == tok {
		b.dragging = nil
	}
	if tok == nil || tok.Destroyed() {
		return Return
	}
	return b.Drop(tok, b.locator.ContainerAt(p))
}

// Drop applies ResolveDrop(tok, target). Placements happen before clears so no
// container group observes a transient empty state.
func (b *Board) Drop(tok *Token, target Container) Action {
	home := b.Home(tok)
	if home == nil {
		return Return
	}
	action := ResolveDrop(tok, target)
	switch action {
	case Return:
		center := home.Bounds().Center()
		b.emit(event.Event{Kind: event.TokenReturned, TokenID: tok.ID(), Level: tok.Level(), X: center.X, Y: center.Y})

	case Move:
		target.Put(tok)
		home.Put(nil)
		center := target.Bounds().Center()
		b.emit(event.Event{Kind: event.TokenMoved, TokenID: tok.ID(), Level: tok.Level(), X: center.X, Y: center.Y})

	case Swap:
		other := target.Occupant()
		target.Put(tok)
		home.Put(other)
		b.emit(event.Event{Kind: event.TokenSwapped, TokenID: tok.ID(), OtherID: other.ID()})

	case Merge:
		other := target.Occupant()
		level := other.Level() + 1
		merged := b.newToken(level)
		target.Put(merged)
		home.Put(nil)
		tok.destroy()
		other.destroy()
		center := target.Bounds().Center()
		b.emit(event.Event{Kind: event.TokenMerged, TokenID: merged.ID(), Level: level, X: center.X, Y: center.Y})
		b.observe(level)
	}
	return action
}

// Update advances the free-upgrade timer and emits its transitions
func (b *Board) Update() {
	now := b.clock.Now()
	for {
		switch b.upgrade.Update(now) {
		case BecameVisible:
			b.emit(event.Event{Kind: event.UpgradeAvailable})
		case Expired:
			b.emit(event.Event{Kind: event.UpgradeExpired})
		default:
			return
		}
	}
}

// UpgradeAll raises every token in the grid and in the attached slots by one
// level. A token being dragged still occupies its home and is included.
func (b *Board) UpgradeAll() (int, error) {
	if err := b.upgrade.Use(b.clock.Now()); err != nil {
		return 0, err
	}
	tokens := b.Placed()
	for _, t := range tokens {
		b.observe(t.LevelUp())
	}
	if b.slots != nil {
		// re-place slot tokens so the slots report their new rates
		for _, s := range b.slots.Slots() {
			if t := s.Occupant(); t != nil {
				s.Put(t)
			}
		}
	}
	b.emit(event.Event{Kind: event.UpgradeAllApplied, Level: len(tokens)})
	return len(tokens), nil
}
