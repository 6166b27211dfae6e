package excalidraw

// =============================================================================
// Style Tables - Semantic Names → Schema Literals
// =============================================================================

// Colors maps semantic color names to the literal values used by the
// Excalidraw schema. Stroke colors are open-color shade 4; the "_bg"
// entries are the shade 1 light variants used for fills.
var Colors = map[string]string{
	"black":       "#1e1e1e",
	"white":       "#ffffff",
	"transparent": "transparent",
	// Stroke colors
	"red":    "#e03131",
	"pink":   "#c2255c",
	"grape":  "#9c36b5",
	"violet": "#6741d9",
	"blue":   "#1971c2",
	"cyan":   "#0c8599",
	"teal":   "#099268",
	"green":  "#2f9e44",
	"yellow": "#f08c00",
	"orange": "#e8590c",
	"gray":   "#868e96",
	// Background colors (lighter variants)
	"red_bg":    "#ffe3e3",
	"pink_bg":   "#ffdeeb",
	"grape_bg":  "#f3d9fa",
	"violet_bg": "#e5dbff",
	"blue_bg":   "#d0ebff",
	"cyan_bg":   "#c5f6fa",
	"teal_bg":   "#c3fae8",
	"green_bg":  "#d3f9d8",
	"yellow_bg": "#fff3bf",
	"orange_bg": "#ffe8cc",
	"gray_bg":   "#e9ecef",
}

// bgForStroke maps a stroke color name to its light background variant.
// Black has no light variant and falls through to transparent.
var bgForStroke = map[string]string{
	"red":    "red_bg",
	"pink":   "pink_bg",
	"grape":  "grape_bg",
	"violet": "violet_bg",
	"blue":   "blue_bg",
	"cyan":   "cyan_bg",
	"teal":   "teal_bg",
	"green":  "green_bg",
	"yellow": "yellow_bg",
	"orange": "orange_bg",
	"gray":   "gray_bg",
	"black":  "transparent",
}

// fontFamilies maps font family names to Excalidraw's numeric font IDs.
var fontFamilies = map[string]int{
	"hand":       1, // Virgil - hand-drawn style
	"normal":     2, // Helvetica - clean
	"code":       3, // Cascadia - monospace
	"excalifont": 5,
}

// arrowheads maps arrowhead names to schema literals. A nil value means
// no arrowhead. "dot" is a legacy alias for "circle".
var arrowheads = map[string]*string{
	"arrow":    ptr("arrow"),
	"triangle": ptr("triangle"),
	"bar":      ptr("bar"),
	"dot":      ptr("circle"),
	"circle":   ptr("circle"),
	"diamond":  ptr("diamond"),
	"none":     nil,
}

// Fill styles supported by the schema.
const (
	FillHachure    = "hachure"
	FillSolid      = "solid"
	FillCrossHatch = "cross-hatch"
	FillZigzag     = "zigzag"
)

// Stroke styles supported by the schema.
const (
	StrokeSolid  = "solid"
	StrokeDashed = "dashed"
	StrokeDotted = "dotted"
)

// roundnessAdaptive is the schema's adaptive-radius roundness type.
const roundnessAdaptive = 3

// =============================================================================
// Resolution
// =============================================================================

// ResolveColor maps a semantic color name to its schema literal. Unknown
// names pass through unchanged, so callers can supply raw hex strings
// interchangeably with palette names.
func ResolveColor(name string) string {
	if c, ok := Colors[name]; ok {
		return c
	}
	return name
}

// BackgroundFor returns the light background variant for a stroke color
// name. Colors without a defined light variant resolve to "transparent".
func BackgroundFor(strokeName string) string {
	bg, ok := bgForStroke[strokeName]
	if !ok {
		return Colors["transparent"]
	}
	return ResolveColor(bg)
}

// ResolveFont maps a font family name to its numeric schema ID. Unknown
// names resolve to the hand-drawn default.
func ResolveFont(name string) int {
	if f, ok := fontFamilies[name]; ok {
		return f
	}
	return fontFamilies["hand"]
}

// ResolveRoundness returns the roundness descriptor for rounded corners,
// or nil for sharp corners.
func ResolveRoundness(rounded bool) *Roundness {
	if rounded {
		return &Roundness{Type: roundnessAdaptive}
	}
	return nil
}

// ResolveArrowhead maps an arrowhead name to its schema literal. The
// returned value is nil for "none". The second return reports whether
// the name was recognized, letting callers pick their own fallback.
func ResolveArrowhead(name string) (*string, bool) {
	head, ok := arrowheads[name]
	return head, ok
}

func ptr[T any](v T) *T { return &v }
