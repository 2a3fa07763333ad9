package merge

import "time"

const (
	// Rows and Cols fix the board at 3x3
	Rows = 3
	Cols = 3
)

// Layout places the grid cells in host coordinates
type Layout struct {
	// Origin is the centre of cell (0,0)
	Origin Point `yaml:"origin"`

	// CellSize is the width and height of a cell in pixels
	CellSize float64 `yaml:"cell_size"`

	// Gap is the spacing between neighbouring cells in pixels
	Gap float64 `yaml:"gap"`
}

// CellCenter returns the centre of cell (row, col)
func (l Layout) CellCenter(row, col int) Point {
	step := l.CellSize + l.Gap
	return Point{
		X: l.Origin.X + float64(col)*step,
		Y: l.Origin.Y + float64(row)*step,
	}
}

// CellRect returns the drop area of cell (row, col)
func (l Layout) CellRect(row, col int) Rect {
	return RectAround(l.CellCenter(row, col), l.CellSize, l.CellSize)
}

// Config holds the merge board tuning
type Config struct {
	Layout Layout `yaml:"layout"`

	// StartCoins is the purse at scene start
	StartCoins int `yaml:"start_coins"`

	// SpawnCost and SpawnLevel are the initial purchase tier
	SpawnCost  int `yaml:"spawn_cost"`
	SpawnLevel int `yaml:"spawn_level"`

	// TierThreshold is the highest level from which the spawn tier follows it
	TierThreshold int `yaml:"tier_threshold"`

	// TierOffset: spawn level = highest level - TierOffset
	TierOffset int `yaml:"tier_offset"`

	// CostPerLevel: spawn cost = spawn level * CostPerLevel
	CostPerLevel int `yaml:"cost_per_level"`

	// FirstUpgradeWait is the wait before the first free upgrade appears
	FirstUpgradeWait time.Duration `yaml:"first_upgrade_wait"`

	// UpgradeWait is the wait before every later free upgrade
	UpgradeWait time.Duration `yaml:"upgrade_wait"`

	// UpgradeWindow is how long the free upgrade stays available
	UpgradeWindow time.Duration `yaml:"upgrade_window"`
}

// DefaultConfig returns the prototype tuning for a 720px wide scene
func DefaultConfig() Config {
	const sceneWidth = 720.0
	layout := Layout{CellSize: 100, Gap: 15}
	gridWidth := Cols*layout.CellSize + (Cols-1)*layout.Gap
	layout.Origin = Point{X: (sceneWidth-gridWidth)/2 + layout.CellSize/2, Y: 740}

	return Config{
		Layout:           layout,
		StartCoins:       1000,
		SpawnCost:        10,
		SpawnLevel:       1,
		TierThreshold:    9,
		TierOffset:       7,
		CostPerLevel:     10,
		FirstUpgradeWait: 20 * time.Second,
		UpgradeWait:      30 * time.Second,
		UpgradeWindow:    30 * time.Second,
	}
}
