// Package pkg provides the core libraries for programmatic Excalidraw
// diagram generation.
//
// # Overview
//
// The libraries build complete Excalidraw documents from code: typed
// elements, composite shapes, layout helpers, and serialization. The pkg
// directory is organized into four main areas:
//
//  1. [excalidraw] - Domain logic (elements, styles, composites, layouts, documents)
//  2. [request] - Wire format (node/edge request parsing and translation)
//  3. [upload] - Remote publishing (HTTP push with retries)
//  4. [errors] - Structured errors shared by CLI and API
//
// # Architecture
//
// The typical data flow:
//
//	node/edge request (JSON)
//	         ↓
//	    [request] package (decode + validate)
//	         ↓
//	    [excalidraw] package (elements, binding, layout)
//	         ↓
//	    .excalidraw document (JSON)
//	         ↓
//	    [upload] package (optional remote push)
//
// # Quick Start
//
// Build a small architecture sketch and save it:
//
//	import "github.com/robtaylor/excalidraw-diagrams/pkg/excalidraw"
//
//	d := excalidraw.New()
//	fe := d.MustBox(100, 100, "Frontend", excalidraw.BoxOptions{Color: "blue"})
//	be := d.MustBox(350, 100, "Backend", excalidraw.BoxOptions{Color: "green"})
//	d.ArrowBetween(fe, be, excalidraw.ArrowOptions{Label: "REST API"})
//	path, err := d.Save("architecture")
//
// # Main Packages
//
// [excalidraw] - The diagram builder. Element types matching the
// Excalidraw file format, a style resolver (named colors, fonts,
// arrowheads), an element factory, composite operations (labeled boxes,
// auto-routed arrows, groups), flowchart and architecture layout
// helpers, and document serialization.
//
// [request] - The node/edge wire format consumed by the CLI and the
// HTTP API, and its translation into builder calls.
//
// [upload] - HTTP client for pushing finished documents to a remote
// endpoint, with retry on transient failures.
//
// [errors] - Structured errors with machine-readable codes, used for
// consistent handling across the CLI and API surfaces.
//
// [buildinfo] - Build-time version information injected via ldflags.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...              # All tests
//	go test ./pkg/excalidraw/...   # Specific package
//
// [excalidraw]: https://pkg.go.dev/github.com/robtaylor/excalidraw-diagrams/pkg/excalidraw
// [request]: https://pkg.go.dev/github.com/robtaylor/excalidraw-diagrams/pkg/request
// [upload]: https://pkg.go.dev/github.com/robtaylor/excalidraw-diagrams/pkg/upload
// [errors]: https://pkg.go.dev/github.com/robtaylor/excalidraw-diagrams/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/robtaylor/excalidraw-diagrams/pkg/buildinfo
package pkg
