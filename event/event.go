package event

import "time"

// Kind identifies a presentation intent emitted by the models
type Kind int

const (
	// TokenSpawned: a token appeared in a container (buy, spawn or merge result)
	// Fields: TokenID, Level, X/Y (container centre)
	TokenSpawned Kind = iota

	// TokenMoved: a dragged token moved into an empty container
	// Fields: TokenID, Level, X/Y (destination centre)
	TokenMoved

	// TokenSwapped: two tokens exchanged containers
	// Fields: TokenID, OtherID
	TokenSwapped

	// TokenReturned: a drag ended without a target, the token snaps home
	// Fields: TokenID, X/Y (home centre)
	TokenReturned

	// TokenMerged: two equal tokens were replaced by one of Level
	// Fields: TokenID (result), Level, X/Y (merge point)
	TokenMerged

	// SpawnTierRaised: spawn level and cost ratcheted up
	// Fields: Level (new spawn level), Amount (new cost)
	SpawnTierRaised

	// UpgradeAvailable: the free "level up all" action became visible
	UpgradeAvailable

	// UpgradeExpired: the free upgrade window ran out unused
	UpgradeExpired

	// UpgradeAllApplied: every placed token gained one level
	// Fields: Level (number of tokens upgraded)
	UpgradeAllApplied

	// ChargeAccrued: one accrual tick added Amount to the charge meter
	// Fields: Amount
	ChargeAccrued

	// SlotChanged: a charging slot occupancy or rate changed
	// Fields: Slot, Level (0 when empty), Amount (rate per minute)
	SlotChanged
)

var kindNames = [...]string{
	TokenSpawned:      "token-spawned",
	TokenMoved:        "token-moved",
	TokenSwapped:      "token-swapped",
	TokenReturned:     "token-returned",
	TokenMerged:       "token-merged",
	SpawnTierRaised:   "spawn-tier-raised",
	UpgradeAvailable:  "upgrade-available",
	UpgradeExpired:    "upgrade-expired",
	UpgradeAllApplied: "upgrade-all-applied",
	ChargeAccrued:     "charge-accrued",
	SlotChanged:       "slot-changed",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Event is a single intent for the view layer. Unused fields stay zero.
type Event struct {
	Kind    Kind
	At      time.Duration // simulation time of emission
	TokenID uint64
	OtherID uint64
	Level   int
	Slot    int
	X, Y    float64
	Amount  float64
}

// Sink receives events from the models
type Sink interface {
	Emit(Event)
}

// Discard drops every event
var Discard Sink = discard{}

type discard struct{}

func (discard) Emit(Event) {}
