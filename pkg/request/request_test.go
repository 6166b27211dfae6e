package request

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/robtaylor/excalidraw-diagrams/pkg/errors"
	"github.com/robtaylor/excalidraw-diagrams/pkg/excalidraw"
)

func TestRead(t *testing.T) {
	input := `{
		"nodes": [
			{"id": "a", "label": "A", "x": 100, "y": 100},
			{"id": "b", "label": "B", "x": 0, "y": 300, "color": "green", "shape": "ellipse"}
		],
		"edges": [
			{"from": "a", "to": "b", "label": "flow"}
		]
	}`

	req, err := Read(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	if len(req.Nodes) != 2 {
		t.Fatalf("nodes = %d, want 2", len(req.Nodes))
	}
	if len(req.Edges) != 1 {
		t.Fatalf("edges = %d, want 1", len(req.Edges))
	}

	// Explicit zero coordinates survive decoding.
	b := req.Nodes[1]
	if b.X == nil || *b.X != 0 {
		t.Errorf("node b x = %v, want explicit 0", b.X)
	}
	if b.Color != "green" || b.Shape != "ellipse" {
		t.Errorf("node b styling = %q/%q, want green/ellipse", b.Color, b.Shape)
	}
}

func TestReadInvalid(t *testing.T) {
	_, err := Read(strings.NewReader("{not json"))
	if err == nil {
		t.Fatal("Read of malformed input should fail")
	}
	if !errors.Is(err, errors.ErrCodeInvalidRequest) {
		t.Errorf("error code = %v, want INVALID_REQUEST", errors.GetCode(err))
	}
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "req.json")
	content := `{"nodes": [{"id": "a", "label": "A"}], "edges": []}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	req, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if len(req.Nodes) != 1 {
		t.Errorf("nodes = %d, want 1", len(req.Nodes))
	}

	if _, err := ReadFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("ReadFile of a missing file should fail")
	}
}

func TestNodeKey(t *testing.T) {
	if got := (Node{ID: "a", Label: "Alpha"}).Key(); got != "a" {
		t.Errorf("Key() = %q, want id", got)
	}
	if got := (Node{Label: "Alpha"}).Key(); got != "Alpha" {
		t.Errorf("Key() = %q, want label fallback", got)
	}
}

func TestBuild(t *testing.T) {
	ptr := func(v float64) *float64 { return &v }
	req := Request{
		Nodes: []Node{
			{ID: "a", Label: "A", X: ptr(0), Y: ptr(0)},
			{ID: "b", Label: "B", X: ptr(300), Y: ptr(0)},
			{Label: "C"}, // no id: keyed by label; no position: defaults
		},
		Edges: []Edge{
			{From: "a", To: "b", Label: "flow"},
			{From: "b", To: "C"},
			{From: "a", To: "ghost"}, // unknown endpoint: skipped
		},
	}

	d := excalidraw.New(excalidraw.WithDeterministicSources())
	if err := Build(req, d); err != nil {
		t.Fatalf("Build: %v", err)
	}

	// 3 boxes (shape+text each) + 2 arrows + 1 edge label
	counts := map[string]int{}
	for _, e := range d.Elements() {
		counts[e.Common().Type]++
	}
	if counts["rectangle"] != 3 {
		t.Errorf("rectangles = %d, want 3", counts["rectangle"])
	}
	if counts["arrow"] != 2 {
		t.Errorf("arrows = %d, want 2 (unknown endpoint skipped)", counts["arrow"])
	}
	if counts["text"] != 4 {
		t.Errorf("texts = %d, want 4 (3 labels + 1 edge label)", counts["text"])
	}
}

func TestBuildDefaultPosition(t *testing.T) {
	req := Request{Nodes: []Node{{ID: "n"}}}

	d := excalidraw.New(excalidraw.WithDeterministicSources())
	if err := Build(req, d); err != nil {
		t.Fatalf("Build: %v", err)
	}

	shape := d.Elements()[0].Common()
	if shape.X != 100 || shape.Y != 100 {
		t.Errorf("default position = (%v,%v), want (100,100)", shape.X, shape.Y)
	}
	label := d.Elements()[1].(*excalidraw.TextElement)
	if label.Text != "Node" {
		t.Errorf("default label = %q, want Node", label.Text)
	}
}

func TestBuildInvalidShape(t *testing.T) {
	req := Request{Nodes: []Node{{ID: "n", Shape: "hexagon"}}}

	d := excalidraw.New(excalidraw.WithDeterministicSources())
	err := Build(req, d)
	if err == nil {
		t.Fatal("Build with unknown shape should fail")
	}
	if !errors.Is(err, errors.ErrCodeInvalidShape) {
		t.Errorf("error code = %v, want INVALID_SHAPE", errors.GetCode(err))
	}
}
