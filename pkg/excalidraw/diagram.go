package excalidraw

import (
	"github.com/robtaylor/excalidraw-diagrams/pkg/errors"
)

// Connection sides for [Diagram.ArrowBetween].
const (
	SideAuto   = "auto"
	SideLeft   = "left"
	SideRight  = "right"
	SideTop    = "top"
	SideBottom = "bottom"
)

// Default box geometry.
const (
	defaultBoxWidth    = 150.0
	defaultBoxHeight   = 60.0
	defaultBoxFontSize = 18.0
)

// =============================================================================
// Diagram - Ordered Element Sequence + Composite Operations
// =============================================================================

// Diagram is the base document builder: an ordered, append-only
// collection of elements plus a background color. Element order defines
// paint order in the consuming renderer, and no element is ever removed
// once added.
type Diagram struct {
	factory    *Factory
	elements   []Element
	index      map[string]int // element id → position, keeps Group linear
	background string
	source     string
}

// Option configures a Diagram (and the builders embedding one).
type Option func(*Diagram)

// WithBackground sets the document background color. Accepts a palette
// name or a raw literal; the default is white.
func WithBackground(color string) Option {
	return func(d *Diagram) { d.background = ResolveColor(color) }
}

// WithSource sets the document's source attribution string.
func WithSource(source string) Option {
	return func(d *Diagram) { d.source = source }
}

// WithIdentity replaces the element identifier source.
func WithIdentity(src IdentitySource) Option {
	return func(d *Diagram) { d.factory.NewID = src }
}

// WithJitter replaces the render seed source.
func WithJitter(src JitterSource) Option {
	return func(d *Diagram) { d.factory.NewSeed = src }
}

// WithDeterministicSources replaces both identity and jitter sources
// with counter-backed implementations for reproducible output.
func WithDeterministicSources() Option {
	return func(d *Diagram) {
		d.factory.NewID, d.factory.NewSeed = DeterministicSources()
	}
}

// New creates an empty diagram with a white background.
func New(opts ...Option) *Diagram {
	d := &Diagram{
		factory:    NewFactory(),
		elements:   []Element{},
		index:      map[string]int{},
		background: Colors["white"],
		source:     DefaultSource,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Factory exposes the diagram's element factory for callers that need
// raw elements outside the composite operations.
func (d *Diagram) Factory() *Factory { return d.factory }

// Elements returns the element sequence in insertion order. The slice
// is the diagram's own backing store; treat it as read-only.
func (d *Diagram) Elements() []Element { return d.elements }

// Add appends raw elements to the document.
func (d *Diagram) Add(elements ...Element) {
	for _, e := range elements {
		d.index[e.Common().ID] = len(d.elements)
		d.elements = append(d.elements, e)
	}
}

// =============================================================================
// Composite Operations
// =============================================================================

// BoxOptions configures [Diagram.Box]. Zero values fall back to a
// 150×60 blue rounded rectangle with 18pt label text.
type BoxOptions struct {
	Width    float64
	Height   float64
	Color    string
	Shape    string // rectangle, ellipse, or diamond
	FontSize float64
}

func (o *BoxOptions) setDefaults() {
	if o.Width == 0 {
		o.Width = defaultBoxWidth
	}
	if o.Height == 0 {
		o.Height = defaultBoxHeight
	}
	if o.Color == "" {
		o.Color = "blue"
	}
	if o.Shape == "" {
		o.Shape = TypeRectangle
	}
	if o.FontSize == 0 {
		o.FontSize = defaultBoxFontSize
	}
}

// Box creates a labeled shape: one shape element plus one text element
// bound to it as a container label. The text's position and extent are
// forced to match the shape exactly; the renderer centers the label
// using the alignment flags. Both elements are appended, shape first,
// and the returned handle addresses the shape.
//
// Returns an INVALID_SHAPE error for unknown shape kinds.
func (d *Diagram) Box(x, y float64, label string, opts BoxOptions) (Handle, error) {
	opts.setDefaults()

	var shape Element
	switch opts.Shape {
	case TypeRectangle:
		shape = d.factory.Rectangle(x, y, opts.Width, opts.Height, opts.Color, true, true)
	case TypeEllipse:
		shape = d.factory.Ellipse(x, y, opts.Width, opts.Height, opts.Color, true)
	case TypeDiamond:
		shape = d.factory.Diamond(x, y, opts.Width, opts.Height, opts.Color, true)
	default:
		return Handle{}, errors.New(errors.ErrCodeInvalidShape, "unknown shape kind: %s", opts.Shape)
	}

	text := d.factory.Text(x, y, label, opts.FontSize, "", opts.Color, "")

	// Container-binding protocol: reciprocal shape↔text references, the
	// text centered by alignment flags, its geometry mirroring the shape.
	base := shape.Common()
	base.BoundElements = []BoundElement{{ID: text.ID, Type: "text"}}
	text.ContainerID = &base.ID
	text.TextAlign = AlignCenter
	text.VerticalAlign = VAlignMiddle
	text.X = x
	text.Y = y
	text.Width = opts.Width
	text.Height = opts.Height

	d.Add(shape, text)
	return NewHandle(shape), nil
}

// MustBox is Box for callers using only the built-in shape kinds, where
// the shape error cannot occur. It panics on invalid input.
func (d *Diagram) MustBox(x, y float64, label string, opts BoxOptions) Handle {
	h, err := d.Box(x, y, label, opts)
	if err != nil {
		panic(err)
	}
	return h
}

// TextBox creates a standalone text element. Zero-value fontSize and
// empty color fall back to 20pt black.
func (d *Diagram) TextBox(x, y float64, content string, fontSize float64, color string) Handle {
	text := d.factory.Text(x, y, content, fontSize, "", color, "")
	d.Add(text)
	return NewHandle(text)
}

// ArrowOptions configures [Diagram.ArrowBetween]. Empty sides mean
// automatic selection; empty color means black.
type ArrowOptions struct {
	Label    string
	Color    string
	FromSide string
	ToSide   string
}

// ArrowBetween draws an arrow between two element handles.
//
// When both sides are automatic, the connection axis follows the larger
// absolute center delta: a strictly greater horizontal delta connects
// right↔left (or left↔right), anything else connects bottom↔top (or
// top↔bottom), so an exact diagonal takes the vertical branch. Each
// side anchors at the midpoint of the chosen edge. Endpoints are joined
// by a straight segment; no elbow routing is performed even when the
// anchors are not axis-aligned.
func (d *Diagram) ArrowBetween(source, target Handle, opts ArrowOptions) {
	fromSide, toSide := opts.FromSide, opts.ToSide
	if fromSide == "" {
		fromSide = SideAuto
	}
	if toSide == "" {
		toSide = SideAuto
	}

	if fromSide == SideAuto && toSide == SideAuto {
		dx := target.CenterX() - source.CenterX()
		dy := target.CenterY() - source.CenterY()

		if abs(dx) > abs(dy) {
			// Horizontal connection
			if dx > 0 {
				fromSide, toSide = SideRight, SideLeft
			} else {
				fromSide, toSide = SideLeft, SideRight
			}
		} else {
			// Vertical connection
			if dy > 0 {
				fromSide, toSide = SideBottom, SideTop
			} else {
				fromSide, toSide = SideTop, SideBottom
			}
		}
	}

	sx, sy := anchorPoint(source, fromSide)
	ex, ey := anchorPoint(target, toSide)

	d.Add(d.factory.Arrow(sx, sy, ex, ey, opts.Color, "", "", opts.Label)...)
}

// anchorPoint returns the fixed anchor on a handle's bounding box for a
// connection side: the midpoint of the named edge.
func anchorPoint(h Handle, side string) (float64, float64) {
	switch side {
	case SideRight:
		return h.Right(), h.CenterY()
	case SideLeft:
		return h.Left(), h.CenterY()
	case SideBottom:
		return h.CenterX(), h.Bottom()
	default: // top
		return h.CenterX(), h.Top()
	}
}

// LineBetween draws a plain line from the center of source to the
// center of target. Lines never carry arrowheads.
func (d *Diagram) LineBetween(source, target Handle, color string) {
	d.Add(d.factory.Line(
		source.CenterX(), source.CenterY(),
		target.CenterX(), target.CenterY(),
		color,
	))
}

// Group assigns a fresh group identifier to the named elements and
// returns it. The identifier is appended to each element's group
// membership, so an element may belong to several groups at once
// (nested grouping). Handles for unknown elements are ignored.
func (d *Diagram) Group(handles ...Handle) string {
	groupID := d.factory.NewID()
	for _, h := range handles {
		i, ok := d.index[h.ID]
		if !ok {
			continue
		}
		base := d.elements[i].Common()
		base.GroupIDs = append(base.GroupIDs, groupID)
	}
	return groupID
}
