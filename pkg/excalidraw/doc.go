// Package excalidraw builds Excalidraw scene documents programmatically.
//
// This package is the core construction engine: a typed element model,
// the geometry and binding rules keeping shapes, labels, and connectors
// consistent, and the auto-placement used by the specialized builders.
// The output is a .excalidraw JSON document that can be opened directly
// in the Excalidraw editor.
//
// # Architecture
//
// Construction flows through a small stack of layers:
//
//   - Style tables: semantic names → schema literals (colors, fonts,
//     roundness, arrowheads)
//   - [Factory]: constructs individual schema-complete elements
//   - [Handle]: positional view of a created element, used for routing
//   - [Diagram]: ordered element sequence plus composite operations
//     (labeled boxes, connectors, grouping)
//   - [Flowchart], [ArchitectureDiagram]: domain builders with named
//     node registries and auto-placement
//
// # Usage
//
//	d := excalidraw.New()
//	a := d.MustBox(100, 100, "Frontend", excalidraw.BoxOptions{})
//	b := d.MustBox(350, 100, "Backend", excalidraw.BoxOptions{Color: "green"})
//	d.ArrowBetween(a, b, excalidraw.ArrowOptions{Label: "REST API"})
//	path, err := d.Save("my_diagram")
//
// Flowcharts place nodes along a cursor and connect them by key:
//
//	fc := excalidraw.NewFlowchart(excalidraw.DirectionVertical, 0)
//	fc.Start("")
//	fc.Process("load", "Load data", "")
//	fc.End("")
//	fc.Connect("__start__", "load", "", "")
//	fc.Connect("load", "__end__", "", "")
//
// # Determinism
//
// Element identity and render seeds come from ambient randomness by
// default. For reproducible output (golden-file tests, stable diffs)
// inject counter-backed sources:
//
//	d := excalidraw.New(excalidraw.WithDeterministicSources())
//
// # Concurrency
//
// A Diagram is a plain in-memory value with no internal locking. Each
// builder instance is independent; do not share one across goroutines.
package excalidraw
