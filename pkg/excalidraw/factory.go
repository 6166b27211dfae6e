package excalidraw

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/google/uuid"
)

// =============================================================================
// Identity and Jitter Sources
// =============================================================================

// IdentitySource produces unique element identifiers.
type IdentitySource func() string

// JitterSource produces the render seeds and version nonces that the
// Excalidraw renderer uses for reproducible hand-drawn jitter and
// optimistic-update conflict detection. Values are opaque here beyond
// being unique per element.
type JitterSource func() int

// maxSeed bounds random seeds and nonces.
const maxSeed = 2_000_000_000

// elementIDLength is the length of generated element identifiers.
const elementIDLength = 20

// RandomIdentity returns a fresh element identifier: a random UUID with
// the dashes stripped, truncated to 20 characters.
func RandomIdentity() string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return id[:elementIDLength]
}

// RandomJitter returns a random seed in [1, 2e9).
func RandomJitter() int {
	return 1 + rand.IntN(maxSeed-1)
}

// DeterministicSources returns counter-backed identity and jitter
// sources for reproducible output. Each call returns fresh counters.
func DeterministicSources() (IdentitySource, JitterSource) {
	var ids, seeds int
	identity := func() string {
		ids++
		return fmt.Sprintf("element-%012d", ids)
	}
	jitter := func() int {
		seeds++
		return seeds
	}
	return identity, jitter
}

// =============================================================================
// Factory
// =============================================================================

// Text sizing heuristics. The consuming renderer recomputes real glyph
// metrics on load; these factors must match the reference output, not
// approximate true text measurement.
const (
	textWidthFactor  = 0.6
	textHeightFactor = 1.35

	defaultStrokeWidth = 2
	defaultRoughness   = 1
	defaultOpacity     = 100

	defaultFontSize      = 20
	defaultLabelFontSize = 16
	defaultLineHeight    = 1.25
)

// Factory constructs schema-complete elements. The zero value is not
// usable; create one with [NewFactory] or let [New] build one.
type Factory struct {
	NewID   IdentitySource
	NewSeed JitterSource
}

// NewFactory returns a Factory backed by ambient randomness.
func NewFactory() *Factory {
	return &Factory{NewID: RandomIdentity, NewSeed: RandomJitter}
}

// base populates the attribute block shared by all element types.
func (f *Factory) base(elemType string, x, y, width, height float64, stroke, bg string, roundness *Roundness) ElementBase {
	return ElementBase{
		ID:              f.NewID(),
		Type:            elemType,
		X:               x,
		Y:               y,
		Width:           width,
		Height:          height,
		StrokeColor:     stroke,
		BackgroundColor: bg,
		FillStyle:       FillSolid,
		StrokeWidth:     defaultStrokeWidth,
		StrokeStyle:     StrokeSolid,
		Roughness:       defaultRoughness,
		Opacity:         defaultOpacity,
		Seed:            f.NewSeed(),
		Version:         1,
		VersionNonce:    f.NewSeed(),
		GroupIDs:        []string{},
		Updated:         1,
		Roundness:       roundness,
	}
}

// shapeBackground resolves the fill for a shape: the stroke color's
// light variant when fill is requested, transparent otherwise.
func shapeBackground(color string, fill bool) string {
	if !fill {
		return Colors["transparent"]
	}
	return BackgroundFor(color)
}

// orBlack substitutes the default stroke color for an empty name.
func orBlack(color string) string {
	if color == "" {
		return "black"
	}
	return color
}

// Rectangle creates a rectangle element. Extents are not validated;
// zero or negative values produce a degenerate but schema-valid element.
func (f *Factory) Rectangle(x, y, width, height float64, color string, fill, rounded bool) *ElementBase {
	color = orBlack(color)
	e := f.base(TypeRectangle, x, y, width, height,
		ResolveColor(color), shapeBackground(color, fill), ResolveRoundness(rounded))
	return &e
}

// Ellipse creates an ellipse element.
func (f *Factory) Ellipse(x, y, width, height float64, color string, fill bool) *ElementBase {
	color = orBlack(color)
	e := f.base(TypeEllipse, x, y, width, height,
		ResolveColor(color), shapeBackground(color, fill), nil)
	return &e
}

// Diamond creates a diamond element.
func (f *Factory) Diamond(x, y, width, height float64, color string, fill bool) *ElementBase {
	color = orBlack(color)
	e := f.base(TypeDiamond, x, y, width, height,
		ResolveColor(color), shapeBackground(color, fill), nil)
	return &e
}

// Text creates a standalone text element. Width and height are estimated
// from the content: longest line × fontSize × 0.6 wide, line count ×
// fontSize × 1.35 tall. Empty content yields a degenerate zero-extent
// element. Zero-value fontSize, fontFamily, color, and align fall back
// to 20, "hand", "black", and "center".
func (f *Factory) Text(x, y float64, content string, fontSize float64, fontFamily, color, align string) *TextElement {
	if fontSize == 0 {
		fontSize = defaultFontSize
	}
	if color == "" {
		color = "black"
	}
	if align == "" {
		align = AlignCenter
	}

	lines := strings.Split(content, "\n")
	longest := 0
	for _, line := range lines {
		if n := len([]rune(line)); n > longest {
			longest = n
		}
	}
	width := float64(longest) * fontSize * textWidthFactor
	height := float64(len(lines)) * fontSize * textHeightFactor

	return &TextElement{
		ElementBase: f.base(TypeText, x, y, width, height,
			ResolveColor(color), Colors["transparent"], nil),
		FontSize:      fontSize,
		FontFamily:    ResolveFont(fontFamily),
		Text:          content,
		TextAlign:     align,
		VerticalAlign: VAlignTop,
		OriginalText:  content,
		AutoResize:    true,
		LineHeight:    defaultLineHeight,
	}
}

// Arrow creates an arrow from (startX, startY) to (endX, endY) and
// returns one or two elements: the arrow itself and, when label is
// non-empty, a text element centered at the segment midpoint and shifted
// 20 units up. The shift is a nominal-horizontal approximation, not a
// true perpendicular offset, and is kept for output compatibility.
//
// An empty or unknown endHead falls back to "arrow"; an empty or unknown
// startHead yields no arrowhead. Pass "none" to suppress a head
// explicitly.
func (f *Factory) Arrow(startX, startY, endX, endY float64, color, startHead, endHead, label string) []Element {
	color = orBlack(color)
	dx := endX - startX
	dy := endY - startY

	start, _ := ResolveArrowhead(startHead)
	end, ok := ResolveArrowhead(endHead)
	if !ok {
		end = ptr("arrow")
	}

	arrow := &LinearElement{
		ElementBase: f.base(TypeArrow, startX, startY, abs(dx), abs(dy),
			ResolveColor(color), Colors["transparent"], nil),
		Points:         []Point{{0, 0}, {dx, dy}},
		StartArrowhead: start,
		EndArrowhead:   end,
		Elbowed:        ptr(false),
	}

	elements := []Element{arrow}

	if label != "" {
		midX := startX + dx/2
		midY := startY + dy/2 - 20 // offset above the line
		elements = append(elements, f.Text(midX, midY, label, defaultLabelFontSize, "", color, ""))
	}

	return elements
}

// Line creates a plain line from (startX, startY) to (endX, endY) with
// no arrowheads.
func (f *Factory) Line(startX, startY, endX, endY float64, color string) *LinearElement {
	color = orBlack(color)
	dx := endX - startX
	dy := endY - startY

	return &LinearElement{
		ElementBase: f.base(TypeLine, startX, startY, abs(dx), abs(dy),
			ResolveColor(color), Colors["transparent"], nil),
		Points: []Point{{0, 0}, {dx, dy}},
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
