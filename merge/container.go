package merge

// Container holds at most one token. Grid cells and charging slots both
// implement it so drop resolution is written once.
type Container interface {
	// Occupant returns the held token or nil
	Occupant() *Token

	// Put places tok (replacing any occupant) and records the new location on
	// tok. Put(nil) clears the container without touching the old token.
	Put(tok *Token)

	// Bounds is the drop area in host coordinates
	Bounds() Rect

	// Location is the location a token placed here reports
	Location() Location
}

// IsEmpty reports whether c holds no token
func IsEmpty(c Container) bool {
	return c.Occupant() == nil
}

// Locator finds the container whose drop area covers a point
type Locator interface {
	ContainerAt(p Point) Container
}

// Locators tries each locator in order and returns the first hit
type Locators []Locator

// ContainerAt implements Locator
func (ls Locators) ContainerAt(p Point) Container {
	for _, l := range ls {
		if l == nil {
			continue
		}
		if c := l.ContainerAt(p); c != nil {
			return c
		}
	}
	return nil
}

// SlotSet is an external group of containers (the charging slots) that the
// board can drop into and that "level up all" reaches
type SlotSet interface {
	Locator
	Slots() []Container
}
