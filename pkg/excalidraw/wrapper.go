package excalidraw

// Handle is a lightweight positional view of a created element: its
// identifier and authoritative geometry at creation time. Handles are
// what callers pass to routing operations like [Diagram.ArrowBetween].
//
// A Handle does not track later mutation of the underlying element;
// it is a snapshot, not a live reference.
type Handle struct {
	ID     string
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// NewHandle snapshots an element's identity and geometry.
func NewHandle(e Element) Handle {
	b := e.Common()
	return Handle{ID: b.ID, X: b.X, Y: b.Y, Width: b.Width, Height: b.Height}
}

// CenterX returns the horizontal center.
func (h Handle) CenterX() float64 { return h.X + h.Width/2 }

// CenterY returns the vertical center.
func (h Handle) CenterY() float64 { return h.Y + h.Height/2 }

// Left returns the left edge.
func (h Handle) Left() float64 { return h.X }

// Right returns the right edge.
func (h Handle) Right() float64 { return h.X + h.Width }

// Top returns the top edge.
func (h Handle) Top() float64 { return h.Y }

// Bottom returns the bottom edge.
func (h Handle) Bottom() float64 { return h.Y + h.Height }

// Zero reports whether the handle is the zero value, i.e. it does not
// reference any element.
func (h Handle) Zero() bool { return h.ID == "" }
