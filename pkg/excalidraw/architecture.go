package excalidraw

// Default extents for architecture components.
const (
	componentWidth  = 150.0
	componentHeight = 80.0
	serviceWidth    = 140.0
	serviceHeight   = 70.0
	databaseWidth   = 120.0
	databaseHeight  = 60.0
	userSize        = 80.0
)

// ArchitectureDiagram is a diagram specialized for system architecture
// sketches. There is no placement cursor: every component is positioned
// by the caller. Components register into a single registry keyed by
// caller-chosen IDs; reusing an ID overwrites the registry entry only.
type ArchitectureDiagram struct {
	*Diagram

	components map[string]Handle
}

// NewArchitecture creates an architecture diagram builder.
func NewArchitecture(opts ...Option) *ArchitectureDiagram {
	return &ArchitectureDiagram{
		Diagram:    New(opts...),
		components: map[string]Handle{},
	}
}

// register stores the handle and returns it.
func (a *ArchitectureDiagram) register(id string, h Handle) Handle {
	a.components[id] = h
	return h
}

// Component adds a generic system component: a 150×80 rectangle, blue
// unless overridden via opts.
func (a *ArchitectureDiagram) Component(id, label string, x, y float64, opts BoxOptions) Handle {
	if opts.Width == 0 {
		opts.Width = componentWidth
	}
	if opts.Height == 0 {
		opts.Height = componentHeight
	}
	h, _ := a.Box(x, y, label, opts)
	return a.register(id, h)
}

// Service adds a service component: a 140×70 rectangle, violet unless
// color is non-empty.
func (a *ArchitectureDiagram) Service(id, label string, x, y float64, color string) Handle {
	if color == "" {
		color = "violet"
	}
	h, _ := a.Box(x, y, label, BoxOptions{Width: serviceWidth, Height: serviceHeight, Color: color})
	return a.register(id, h)
}

// Database adds a database component: a 120×60 ellipse, green unless
// color is non-empty.
func (a *ArchitectureDiagram) Database(id, label string, x, y float64, color string) Handle {
	if color == "" {
		color = "green"
	}
	h, _ := a.Box(x, y, label, BoxOptions{
		Width:  databaseWidth,
		Height: databaseHeight,
		Color:  color,
		Shape:  TypeEllipse,
	})
	return a.register(id, h)
}

// User adds a user/actor: an 80×80 gray ellipse. An empty label means
// "User".
func (a *ArchitectureDiagram) User(id, label string, x, y float64) Handle {
	if label == "" {
		label = "User"
	}
	h, _ := a.Box(x, y, label, BoxOptions{
		Width:  userSize,
		Height: userSize,
		Color:  "gray",
		Shape:  TypeEllipse,
	})
	return a.register(id, h)
}

// Lookup returns the handle registered under id.
func (a *ArchitectureDiagram) Lookup(id string) (Handle, bool) {
	h, ok := a.components[id]
	return h, ok
}

// Connect draws an arrow between two registered components. Unknown
// keys make the call a silent no-op, matching [Flowchart.Connect].
//
// When bidirectional is set, two independent arrows are issued: forward
// with the label, return without. Side selection runs separately for
// each direction; because it depends only on relative center positions,
// the return arrow's sides come out as the exact mirror of the forward
// arrow's. That symmetry is emergent, not enforced, and is pinned by a
// test rather than by code.
func (a *ArchitectureDiagram) Connect(fromID, toID, label string, bidirectional bool, color string) {
	source, okFrom := a.components[fromID]
	target, okTo := a.components[toID]
	if !okFrom || !okTo {
		return
	}
	a.ArrowBetween(source, target, ArrowOptions{Label: label, Color: color})
	if bidirectional {
		a.ArrowBetween(target, source, ArrowOptions{Color: color})
	}
}
