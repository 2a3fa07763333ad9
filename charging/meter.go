package charging

// Meter is the vehicle charge, clamped to [0, Max] and never decreasing
type Meter struct {
	Current float64
	Max     float64
}

// Add raises the charge by amount (negative amounts are ignored) and returns
// what was actually added after clamping
func (m *Meter) Add(amount float64) float64 {
	if amount <= 0 || m.Current >= m.Max {
		return 0
	}
	next := m.Current + amount
	if next > m.Max {
		next = m.Max
	}
	added := next - m.Current
	m.Current = next
	return added
}

// Fraction returns the fill ratio in [0, 1]
func (m Meter) Fraction() float64 {
	if m.Max <= 0 {
		return 0
	}
	return m.Current / m.Max
}

// Full reports whether the meter reached Max
func (m Meter) Full() bool {
	return m.Current >= m.Max
}
