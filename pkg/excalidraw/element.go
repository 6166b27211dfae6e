package excalidraw

// Element types recognized by the schema.
const (
	TypeRectangle = "rectangle"
	TypeEllipse   = "ellipse"
	TypeDiamond   = "diamond"
	TypeText      = "text"
	TypeArrow     = "arrow"
	TypeLine      = "line"
)

// Text alignment values.
const (
	AlignLeft   = "left"
	AlignCenter = "center"
	AlignRight  = "right"

	VAlignTop    = "top"
	VAlignMiddle = "middle"
	VAlignBottom = "bottom"
)

// Element is implemented by every element kind. Common returns the
// shared attribute block, giving composite operations (binding,
// grouping) uniform access regardless of the concrete type.
type Element interface {
	Common() *ElementBase
}

// Roundness describes corner rounding. The schema's adaptive-radius
// variant is type 3; a nil *Roundness means sharp corners.
type Roundness struct {
	Type int `json:"type"`
}

// BoundElement is a container's back-reference to a bound element,
// e.g. a shape referencing its centered label text.
type BoundElement struct {
	ID   string `json:"id"`
	Type string `json:"type"`
}

// Binding is a live endpoint binding on a linear element. Connectors
// built here are geometrically routed and never carry bindings, but the
// field must still serialize as an explicit null.
type Binding struct {
	ElementID string  `json:"elementId"`
	Focus     float64 `json:"focus"`
	Gap       float64 `json:"gap"`
}

// Point is an (x, y) pair serialized as a two-element JSON array.
type Point [2]float64

// ElementBase holds the attributes present on every element regardless
// of type. Field order and JSON names follow the Excalidraw schema;
// fields that are always null for generated elements (frameId, link,
// index) are pointers so they serialize as explicit nulls.
type ElementBase struct {
	ID              string         `json:"id"`
	Type            string         `json:"type"`
	X               float64        `json:"x"`
	Y               float64        `json:"y"`
	Width           float64        `json:"width"`
	Height          float64        `json:"height"`
	Angle           float64        `json:"angle"`
	StrokeColor     string         `json:"strokeColor"`
	BackgroundColor string         `json:"backgroundColor"`
	FillStyle       string         `json:"fillStyle"`
	StrokeWidth     int            `json:"strokeWidth"`
	StrokeStyle     string         `json:"strokeStyle"`
	Roughness       int            `json:"roughness"`
	Opacity         int            `json:"opacity"`
	Seed            int            `json:"seed"`
	Version         int            `json:"version"`
	VersionNonce    int            `json:"versionNonce"`
	Index           *string        `json:"index"`
	IsDeleted       bool           `json:"isDeleted"`
	GroupIDs        []string       `json:"groupIds"`
	FrameID         *string        `json:"frameId"`
	BoundElements   []BoundElement `json:"boundElements"`
	Updated         int            `json:"updated"`
	Link            *string        `json:"link"`
	Locked          bool           `json:"locked"`
	Roundness       *Roundness     `json:"roundness"`
}

// Common implements [Element].
func (e *ElementBase) Common() *ElementBase { return e }

// TextElement carries string content plus font and alignment attributes.
// When bound to a container, ContainerID references the containing shape
// and position/extent mirror the container exactly.
type TextElement struct {
	ElementBase
	FontSize      float64 `json:"fontSize"`
	FontFamily    int     `json:"fontFamily"`
	Text          string  `json:"text"`
	TextAlign     string  `json:"textAlign"`
	VerticalAlign string  `json:"verticalAlign"`
	ContainerID   *string `json:"containerId"`
	OriginalText  string  `json:"originalText"`
	AutoResize    bool    `json:"autoResize"`
	LineHeight    float64 `json:"lineHeight"`
}

// LinearElement is an arrow or line: a straight segment defined by two
// points relative to the element's own anchor. Width and height are the
// absolute deltas of the segment even when the path runs up or left.
// Elbowed is only part of the arrow schema; lines omit it.
type LinearElement struct {
	ElementBase
	Points         []Point  `json:"points"`
	StartBinding   *Binding `json:"startBinding"`
	EndBinding     *Binding `json:"endBinding"`
	StartArrowhead *string  `json:"startArrowhead"`
	EndArrowhead   *string  `json:"endArrowhead"`
	Elbowed        *bool    `json:"elbowed,omitempty"`
}
