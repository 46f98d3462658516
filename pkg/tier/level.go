package tier

// Level identifies a subscription tier. Levels are strictly ordered:
// starter < pro < advanced < enterprise.
type Level string

const (
	Starter    Level = "starter"
	Pro        Level = "pro"
	Advanced   Level = "advanced"
	Enterprise Level = "enterprise"
)

// levelOrder defines the fixed tier ordering. Rank lookups and Next
// derive from this single slice.
var levelOrder = []Level{Starter, Pro, Advanced, Enterprise}

// Levels returns all tier levels in ascending order.
func Levels() []Level {
	out := make([]Level, len(levelOrder))
	copy(out, levelOrder)
	return out
}

// Known reports whether l is one of the defined tier levels.
func (l Level) Known() bool {
	for _, level := range levelOrder {
		if level == l {
			return true
		}
	}
	return false
}

// Rank returns the position of l in the tier ordering, starting at 0
// for starter. Unknown levels rank below starter (-1).
func (l Level) Rank() int {
	for i, level := range levelOrder {
		if level == l {
			return i
		}
	}
	return -1
}

// AtLeast reports whether l grants at least the access of other.
func (l Level) AtLeast(other Level) bool {
	return l.Rank() >= other.Rank()
}

// Next returns the level directly above l, or false when l is the top
// tier or unknown.
func (l Level) Next() (Level, bool) {
	rank := l.Rank()
	if rank < 0 || rank >= len(levelOrder)-1 {
		return "", false
	}
	return levelOrder[rank+1], true
}
