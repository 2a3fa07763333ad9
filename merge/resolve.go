package merge

// Action is the outcome of dropping a token on a target
type Action int

const (
	// Return: no target, or the token's own container; nothing changes
	Return Action = iota
	// Move: target empty, the token relocates
	Move
	// Merge: target holds an equal-level token, both become one of level+1
	Merge
	// Swap: target holds a different-level token, the two exchange places
	Swap
)

func (a Action) String() string {
	switch a {
	case Move:
		return "move"
	case Merge:
		return "merge"
	case Swap:
		return "swap"
	default:
		return "return"
	}
}

// ResolveDrop decides what dropping source onto target does. It is pure: no
// state is read beyond the two arguments and nothing is mutated.
func ResolveDrop(source *Token, target Container) Action {
	if source == nil || target == nil {
		return Return
	}
	occupant := target.Occupant()
	switch {
	case occupant == nil:
		return Move
	case occupant == source:
		return Return
	case occupant.Level() == source.Level():
		return Merge
	default:
		return Swap
	}
}
