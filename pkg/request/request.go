// Package request defines the node/edge wire format consumed by the
// diagram builder's outer surfaces (CLI, HTTP API).
//
// The format is a minimal description of a diagram as a graph:
//
//	{
//	  "nodes": [
//	    {"id": "fe", "label": "Frontend", "x": 100, "y": 100, "color": "blue"},
//	    {"id": "be", "label": "Backend", "x": 350, "y": 100, "shape": "ellipse"}
//	  ],
//	  "edges": [
//	    {"from": "fe", "to": "be", "label": "REST API"}
//	  ]
//	}
//
// Nodes become labeled boxes; edges become auto-routed arrows. Omitted
// node fields default to position (100, 100), label "Node", color blue,
// and a rectangle shape. A node without an id is addressed by its
// label. Edges whose endpoints are unknown are skipped silently,
// matching the builder's tolerance for partial graphs.
package request

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/robtaylor/excalidraw-diagrams/pkg/errors"
	"github.com/robtaylor/excalidraw-diagrams/pkg/excalidraw"
)

// Defaults for omitted node fields.
const (
	defaultX     = 100.0
	defaultY     = 100.0
	defaultLabel = "Node"
)

// Request describes a diagram as a node/edge list.
type Request struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// Node describes one box. X and Y are pointers so an explicit zero
// coordinate is distinguishable from an omitted one.
type Node struct {
	ID    string   `json:"id,omitempty"`
	Label string   `json:"label,omitempty"`
	X     *float64 `json:"x,omitempty"`
	Y     *float64 `json:"y,omitempty"`
	Color string   `json:"color,omitempty"`
	Shape string   `json:"shape,omitempty"`
}

// Key returns the registry key for the node: its id, falling back to
// the label when no id is given.
func (n Node) Key() string {
	if n.ID != "" {
		return n.ID
	}
	return n.Label
}

// Edge describes one arrow between two nodes by key.
type Edge struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Label string `json:"label,omitempty"`
}

// Read decodes a request from r.
func Read(r io.Reader) (Request, error) {
	var req Request
	if err := json.NewDecoder(r).Decode(&req); err != nil {
		return Request{}, errors.Wrap(errors.ErrCodeInvalidRequest, err, "decode request")
	}
	return req, nil
}

// ReadFile decodes a request from a JSON file.
func ReadFile(path string) (Request, error) {
	f, err := os.Open(path)
	if err != nil {
		return Request{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f)
}

// Build translates the request into builder calls on d: one labeled box
// per node, one auto-routed arrow per edge. Edges referencing unknown
// node keys are skipped. Returns an error only for invalid node shapes.
func Build(req Request, d *excalidraw.Diagram) error {
	handles := make(map[string]excalidraw.Handle, len(req.Nodes))

	for _, n := range req.Nodes {
		x, y := defaultX, defaultY
		if n.X != nil {
			x = *n.X
		}
		if n.Y != nil {
			y = *n.Y
		}
		label := n.Label
		if label == "" {
			label = defaultLabel
		}

		h, err := d.Box(x, y, label, excalidraw.BoxOptions{Color: n.Color, Shape: n.Shape})
		if err != nil {
			return fmt.Errorf("node %s: %w", n.Key(), err)
		}
		handles[n.Key()] = h
	}

	for _, e := range req.Edges {
		source, okFrom := handles[e.From]
		target, okTo := handles[e.To]
		if !okFrom || !okTo {
			continue
		}
		d.ArrowBetween(source, target, excalidraw.ArrowOptions{Label: e.Label})
	}

	return nil
}
