package excalidraw

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// DefaultSource is the source attribution recorded in documents.
const DefaultSource = "https://excalidraw.com"

// FileExtension is appended by [Diagram.Save] when the target path has
// no extension.
const FileExtension = ".excalidraw"

// Fixed appState grid defaults.
const (
	gridSize = 20
	gridStep = 5
)

// Document is the serialized form of a diagram: fixed format header,
// the element sequence in insertion order, the application state, and
// an empty file-attachment table.
type Document struct {
	Type     string         `json:"type"`
	Version  int            `json:"version"`
	Source   string         `json:"source"`
	Elements []Element      `json:"elements"`
	AppState AppState       `json:"appState"`
	Files    map[string]any `json:"files"`
}

// AppState holds the viewer-facing application state.
type AppState struct {
	GridSize            int    `json:"gridSize"`
	GridStep            int    `json:"gridStep"`
	GridModeEnabled     bool   `json:"gridModeEnabled"`
	ViewBackgroundColor string `json:"viewBackgroundColor"`
}

// Document assembles the exportable structure for the diagram.
func (d *Diagram) Document() Document {
	return Document{
		Type:     "excalidraw",
		Version:  2,
		Source:   d.source,
		Elements: d.elements,
		AppState: AppState{
			GridSize:            gridSize,
			GridStep:            gridStep,
			ViewBackgroundColor: d.background,
		},
		Files: map[string]any{},
	}
}

// Encode writes the diagram as indented JSON to w. Unicode content is
// written verbatim: HTML escaping is disabled so text like "<script>"
// or multi-byte glyphs survive byte-for-byte.
func (d *Diagram) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d.Document()); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// JSON returns the diagram serialized as indented JSON bytes.
func (d *Diagram) JSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.Encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Save writes the diagram to path, appending ".excalidraw" when the
// path has no extension, and returns the path actually written. The
// write is a single synchronous operation; a failure surfaces as an
// error with no partial-write recovery.
func (d *Diagram) Save(path string) (string, error) {
	if filepath.Ext(path) == "" {
		path += FileExtension
	}

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := d.Encode(f); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
