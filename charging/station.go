package charging

import (
	"fmt"
	"time"

	"chargeracer/clock"
	"chargeracer/event"
	"chargeracer/merge"
)

// Slot is one charging receptacle. It is a merge.Container, so the board
// resolves drops onto it with the same rules as grid cells.
type Slot struct {
	index   int
	bounds  merge.Rect
	token   *merge.Token
	station *Station
}

// Occupant implements merge.Container
func (s *Slot) Occupant() *merge.Token { return s.token }

// Put implements merge.Container
func (s *Slot) Put(tok *merge.Token) {
	s.token = tok
	if tok != nil {
		tok.MoveTo(s.Location())
	}
	s.station.occupancyChanged(s)
}

// Bounds implements merge.Container
func (s *Slot) Bounds() merge.Rect { return s.bounds }

// Location implements merge.Container
func (s *Slot) Location() merge.Location { return merge.SlotLocation(s.index) }

// Index returns the slot position
func (s *Slot) Index() int { return s.index }

// ChargeRate returns the charge per minute of the held token (0 when empty)
func (s *Slot) ChargeRate() float64 {
	if s.token == nil {
		return 0
	}
	return float64(s.token.Level()) * s.station.cfg.RatePerLevel
}

// Station is the Charging Bridge: three slots feeding one meter. Accrual is
// event-counted, one per whole Interval since the first slot was filled.
type Station struct {
	cfg   Config
	clock clock.Clock
	sink  event.Sink
	slots [SlotCount]*Slot
	meter Meter

	running bool
	start   time.Duration
	cycles  int
}

// NewStation creates a station with empty slots and an empty meter
func NewStation(cfg Config, clk clock.Clock, sink event.Sink) *Station {
	if clk == nil {
		panic("charging: nil clock")
	}
	if sink == nil {
		sink = event.Discard
	}
	st := &Station{
		cfg:   cfg,
		clock: clk,
		sink:  sink,
		meter: Meter{Max: cfg.MaxCharge},
	}
	for i := range st.slots {
		st.slots[i] = &Slot{
			index:   i,
			bounds:  merge.RectAround(cfg.SlotCenter(i), cfg.SlotSize, cfg.SlotSize),
			station: st,
		}
	}
	return st
}

// Slot returns slot i or nil
func (st *Station) Slot(i int) *Slot {
	if i < 0 || i >= SlotCount {
		return nil
	}
	return st.slots[i]
}

// Slots implements merge.SlotSet
func (st *Station) Slots() []merge.Container {
	out := make([]merge.Container, SlotCount)
	for i, s := range st.slots {
		out[i] = s
	}
	return out
}

// ContainerAt implements merge.Locator
func (st *Station) ContainerAt(p merge.Point) merge.Container {
	for _, s := range st.slots {
		if s.bounds.Contains(p) {
			return s
		}
	}
	return nil
}

// AddToken places a detached token into slot i
func (st *Station) AddToken(i int, tok *merge.Token) error {
	s := st.Slot(i)
	if s == nil {
		return fmt.Errorf("add to slot %d: %w", i, ErrInvalidSlotIndex)
	}
	if s.token != nil {
		return fmt.Errorf("add to slot %d: %w", i, ErrSlotOccupied)
	}
	if tok == nil {
		return nil
	}
	if tok.Destroyed() || tok.Location().Kind != merge.InTransit {
		return fmt.Errorf("add %v to slot %d: %w", tok, i, ErrTokenPlaced)
	}
	s.Put(tok)
	return nil
}

// RemoveToken clears slot i and returns the token it held, detached
func (st *Station) RemoveToken(i int) (*merge.Token, error) {
	s := st.Slot(i)
	if s == nil {
		return nil, fmt.Errorf("remove from slot %d: %w", i, ErrInvalidSlotIndex)
	}
	tok := s.token
	if tok == nil {
		return nil, fmt.Errorf("remove from slot %d: %w", i, ErrSlotEmpty)
	}
	s.Put(nil)
	tok.MoveTo(merge.Location{Kind: merge.InTransit})
	return tok, nil
}

// occupancyChanged starts the accrual phase when the first slot fills and
// stops and resets it when the last one empties
func (st *Station) occupancyChanged(s *Slot) {
	level := 0
	if s.token != nil {
		level = s.token.Level()
	}
	st.emit(event.Event{Kind: event.SlotChanged, Slot: s.index, Level: level, Amount: s.ChargeRate()})

	occupied := st.Occupied() > 0
	switch {
	case occupied && !st.running:
		st.running = true
		st.start = st.clock.Now()
		st.cycles = 0
	case !occupied && st.running:
		st.running = false
		st.start = 0
		st.cycles = 0
	}
}

func (st *Station) emit(e event.Event) {
	e.At = st.clock.Now()
	st.sink.Emit(e)
}

// Occupied returns the number of filled slots
func (st *Station) Occupied() int {
	n := 0
	for _, s := range st.slots {
		if s.token != nil {
			n++
		}
	}
	return n
}

// Running reports whether the accrual phase is active
func (st *Station) Running() bool {
	return st.running
}

// ChargeRate returns the per-minute rate of slot i
func (st *Station) ChargeRate(i int) float64 {
	s := st.Slot(i)
	if s == nil {
		return 0
	}
	return s.ChargeRate()
}

// TotalRate returns the summed per-minute rate of all slots
func (st *Station) TotalRate() float64 {
	total := 0.0
	for _, s := range st.slots {
		total += s.ChargeRate()
	}
	return total
}

// Meter returns a copy of the charge meter
func (st *Station) Meter() Meter {
	return st.meter
}

// Update performs one accrual per Interval boundary crossed since the phase
// started. The first fires at one Interval, not at zero. Returns the number of
// accruals performed.
func (st *Station) Update() int {
	if !st.running || st.cfg.Interval <= 0 {
		return 0
	}
	due := int((st.clock.Now() - st.start) / st.cfg.Interval)
	n := 0
	for st.cycles < due {
		st.cycles++
		n++
		amount := st.TotalRate() * st.cfg.Interval.Minutes()
		added := st.meter.Add(amount)
		st.emit(event.Event{Kind: event.ChargeAccrued, Amount: added})
	}
	return n
}
