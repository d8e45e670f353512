package drawer

// Owner says who receives a drag: the sheet itself or its scrollable content.
type Owner int

const (
	// OwnerNone means the gesture has not been claimed yet.
	OwnerNone Owner = iota
	OwnerDrawer
	OwnerContent
)

func (o Owner) String() string {
	switch o {
	case OwnerNone:
		return "none"
	case OwnerDrawer:
		return "drawer"
	case OwnerContent:
		return "content"
	}
	return "unknown"
}

// NestedScroll describes the scrollable content hosted inside the sheet.
// Offset is how far the content is scrolled away from its top edge.
type NestedScroll struct {
	Scrollable bool
	Offset     float64
}

// AtTop reports whether the content shows its first line.
func (n NestedScroll) AtTop() bool {
	return n.Offset <= 0
}

// DragContext is the sheet side of the arbitration.
// Direction is negative for an upward drag and positive for a downward one.
type DragContext struct {
	AtMax     bool
	Direction float64
}

// ArbitrateScroll decides who owns a drag. The sheet claims it only while
// the content sits at its top edge, and yields an upward drag once it is
// already fully expanded so the content can scroll.
func ArbitrateScroll(d DragContext, n NestedScroll) Owner {
	switch {
	case !n.Scrollable:
		return OwnerDrawer
	case !n.AtTop():
		return OwnerContent
	case d.AtMax && d.Direction < 0:
		return OwnerContent
	}
	return OwnerDrawer
}
