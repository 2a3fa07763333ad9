package merge

// Economy tracks coins and the purchase tier. SpawnCost and SpawnLevel only
// ratchet upward.
type Economy struct {
	Coins        int
	SpawnCost    int
	SpawnLevel   int
	HighestLevel int

	tierThreshold int
	tierOffset    int
	costPerLevel  int
}

// NewEconomy creates the economy from the board config
func NewEconomy(cfg Config) Economy {
	return Economy{
		Coins:         cfg.StartCoins,
		SpawnCost:     cfg.SpawnCost,
		SpawnLevel:    cfg.SpawnLevel,
		HighestLevel:  cfg.SpawnLevel,
		tierThreshold: cfg.TierThreshold,
		tierOffset:    cfg.TierOffset,
		costPerLevel:  cfg.CostPerLevel,
	}
}

// CanAfford reports whether one purchase is possible
func (e *Economy) CanAfford() bool {
	return e.Coins >= e.SpawnCost
}

// Spend deducts one purchase
func (e *Economy) Spend() error {
	if !e.CanAfford() {
		return ErrInsufficientFunds
	}
	e.Coins -= e.SpawnCost
	return nil
}

// Observe records a token level. It returns true when the spawn tier was raised.
func (e *Economy) Observe(level int) bool {
	if level <= e.HighestLevel {
		return false
	}
	e.HighestLevel = level
	if e.HighestLevel < e.tierThreshold {
		return false
	}
	next := e.HighestLevel - e.tierOffset
	if next <= e.SpawnLevel {
		return false
	}
	e.SpawnLevel = next
	e.SpawnCost = next * e.costPerLevel
	return true
}
