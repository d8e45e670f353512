// Package gesture turns pointer input into drag samples for the sheet.
package gesture

// Phase is the lifecycle stage of a drag.
type Phase int

const (
	Began Phase = iota
	Changed
	Ended
	Cancelled
)

func (p Phase) String() string {
	switch p {
	case Began:
		return "began"
	case Changed:
		return "changed"
	case Ended:
		return "ended"
	case Cancelled:
		return "cancelled"
	}
	return "unknown"
}

// IsTerminal reports whether the phase finishes a drag.
func (p Phase) IsTerminal() bool {
	return p == Ended || p == Cancelled
}

// Sample is one drag callback. Delta is the vertical movement in points since
// the previous sample; Velocity is in points per second, positive downward.
type Sample struct {
	Phase    Phase
	Delta    float64
	Velocity float64
}
