package game

// DebugState holds global debug flags that persist for the whole session
type DebugState struct {
	ShowAxles bool // Axle anchors and physics bodies
	ShowStats bool // TPS, tick count and clock
}

var globalDebugState = &DebugState{}

// GetDebugState returns the global debug state
func GetDebugState() *DebugState {
	return globalDebugState
}

// Toggle flips the whole overlay on or off
func (d *DebugState) Toggle() {
	on := !(d.ShowAxles || d.ShowStats)
	d.ShowAxles = on
	d.ShowStats = on
}
