package excalidraw

// Flowchart layout directions.
const (
	DirectionVertical   = "vertical"
	DirectionHorizontal = "horizontal"
)

// Reserved registry keys used by [Flowchart.Start] and [Flowchart.End].
// Calling Start or End twice overwrites the reserved entry, silently
// orphaning the earlier element in the document (it stays drawn but is
// no longer reachable by key).
const (
	StartKey = "__start__"
	EndKey   = "__end__"
)

// defaultSpacing is the gap between consecutive flowchart nodes.
const defaultSpacing = 80.0

// Decision nodes default to a wider, flatter diamond so yes/no branch
// labels fit.
const (
	decisionWidth  = 120.0
	decisionHeight = 80.0
)

// cursorOrigin is where auto-placement starts.
const cursorOrigin = 100.0

// Flowchart is a diagram specialized for flowcharts: nodes are placed
// along a write cursor that advances in the configured direction, and
// registered under caller-chosen keys for later connection.
//
// The cursor only ever advances; there is no wrapping or collision
// avoidance when [Flowchart.PositionAt] jumps it elsewhere. Reusing a
// key overwrites the registry entry, not the element.
type Flowchart struct {
	*Diagram

	direction string
	spacing   float64
	nodes     map[string]Handle
	nextX     float64
	nextY     float64
}

// NewFlowchart creates a flowchart builder. An empty direction means
// vertical, and a zero spacing means the default gap of 80.
func NewFlowchart(direction string, spacing float64, opts ...Option) *Flowchart {
	if direction == "" {
		direction = DirectionVertical
	}
	if spacing == 0 {
		spacing = defaultSpacing
	}
	return &Flowchart{
		Diagram:   New(opts...),
		direction: direction,
		spacing:   spacing,
		nodes:     map[string]Handle{},
		nextX:     cursorOrigin,
		nextY:     cursorOrigin,
	}
}

// Node places a box at the current cursor, registers it under key, and
// advances the cursor past it along the configured axis.
func (fc *Flowchart) Node(key, label string, opts BoxOptions) (Handle, error) {
	opts.setDefaults()

	h, err := fc.Box(fc.nextX, fc.nextY, label, opts)
	if err != nil {
		return Handle{}, err
	}
	fc.nodes[key] = h

	if fc.direction == DirectionVertical {
		fc.nextY += opts.Height + fc.spacing
	} else {
		fc.nextX += opts.Width + fc.spacing
	}

	return h, nil
}

// Start adds the start node: a green ellipse registered under the
// reserved start key. An empty label means "Start".
func (fc *Flowchart) Start(label string) Handle {
	if label == "" {
		label = "Start"
	}
	h, _ := fc.Node(StartKey, label, BoxOptions{Shape: TypeEllipse, Color: "green"})
	return h
}

// End adds the end node: a red ellipse registered under the reserved
// end key. An empty label means "End".
func (fc *Flowchart) End(label string) Handle {
	if label == "" {
		label = "End"
	}
	h, _ := fc.Node(EndKey, label, BoxOptions{Shape: TypeEllipse, Color: "red"})
	return h
}

// Process adds a process node (rectangle). An empty color means blue.
func (fc *Flowchart) Process(key, label, color string) Handle {
	h, _ := fc.Node(key, label, BoxOptions{Shape: TypeRectangle, Color: color})
	return h
}

// Decision adds a decision node: a diamond with an enlarged 120×80
// default extent. An empty color means yellow.
func (fc *Flowchart) Decision(key, label, color string) Handle {
	if color == "" {
		color = "yellow"
	}
	h, _ := fc.Node(key, label, BoxOptions{
		Shape:  TypeDiamond,
		Color:  color,
		Width:  decisionWidth,
		Height: decisionHeight,
	})
	return h
}

// Connect draws an arrow from one registered node to another. Unknown
// keys make the call a silent no-op: partial graphs are tolerated
// during incremental construction rather than raising an error.
func (fc *Flowchart) Connect(fromKey, toKey, label, color string) {
	source, okFrom := fc.nodes[fromKey]
	target, okTo := fc.nodes[toKey]
	if !okFrom || !okTo {
		return
	}
	fc.ArrowBetween(source, target, ArrowOptions{Label: label, Color: color})
}

// Lookup returns the handle registered under key.
func (fc *Flowchart) Lookup(key string) (Handle, bool) {
	h, ok := fc.nodes[key]
	return h, ok
}

// PositionAt relocates the cursor without creating an element, for
// manual layout overrides mid-sequence.
func (fc *Flowchart) PositionAt(x, y float64) *Flowchart {
	fc.nextX = x
	fc.nextY = y
	return fc
}
