package cli

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestRootCommand(t *testing.T) {
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()

	if root.Use != appName {
		t.Errorf("Use = %q, want %q", root.Use, appName)
	}

	want := []string{"generate", "example", "serve", "upload", "completion"}
	for _, name := range want {
		found := false
		for _, sub := range root.Commands() {
			if sub.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestSetLogLevel(t *testing.T) {
	c := New(io.Discard, LogInfo)
	c.SetLogLevel(LogDebug)

	if got := c.Logger.GetLevel(); got != LogDebug {
		t.Errorf("level = %v, want debug", got)
	}
}

func TestGenerate(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "req.json")
	content := `{
		"nodes": [
			{"id": "a", "label": "A", "x": 100, "y": 100},
			{"id": "b", "label": "B", "x": 350, "y": 100}
		],
		"edges": [{"from": "a", "to": "b", "label": "calls"}]
	}`
	if err := os.WriteFile(input, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	output := filepath.Join(dir, "out")
	c := New(io.Discard, LogInfo)
	if err := c.runGenerate(input, &generateOpts{output: output}); err != nil {
		t.Fatalf("runGenerate: %v", err)
	}

	data, err := os.ReadFile(output + ".excalidraw")
	if err != nil {
		t.Fatalf("read output: %v", err)
	}

	var doc struct {
		Type     string           `json:"type"`
		Elements []map[string]any `json:"elements"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if doc.Type != "excalidraw" {
		t.Errorf("type = %q, want excalidraw", doc.Type)
	}
	// 2 labeled boxes + arrow + arrow label
	if len(doc.Elements) != 6 {
		t.Errorf("elements = %d, want 6", len(doc.Elements))
	}
}

func TestGenerateMissingInput(t *testing.T) {
	c := New(io.Discard, LogInfo)
	err := c.runGenerate(filepath.Join(t.TempDir(), "missing.json"), &generateOpts{output: "out"})
	if err == nil {
		t.Fatal("runGenerate with a missing input file should fail")
	}
}

func TestExample(t *testing.T) {
	output := filepath.Join(t.TempDir(), "example")

	c := New(io.Discard, LogInfo)
	if err := c.runExample(output); err != nil {
		t.Fatalf("runExample: %v", err)
	}

	data, err := os.ReadFile(output + ".excalidraw")
	if err != nil {
		t.Fatalf("read output: %v", err)
	}

	var doc struct {
		Elements []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"elements"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("decode output: %v", err)
	}

	// 3 labeled boxes + 2 arrows with labels = 10 elements
	if len(doc.Elements) != 10 {
		t.Fatalf("elements = %d, want 10", len(doc.Elements))
	}

	labels := map[string]bool{}
	for _, e := range doc.Elements {
		if e.Type == "text" {
			labels[e.Text] = true
		}
	}
	for _, want := range []string{"Frontend", "Backend", "Database", "REST API", "SQL"} {
		if !labels[want] {
			t.Errorf("label %q missing from example diagram", want)
		}
	}
}

func TestDiagramOptions(t *testing.T) {
	if got := diagramOptions("", ""); len(got) != 0 {
		t.Errorf("no flags should produce no options, got %d", len(got))
	}
	if got := diagramOptions("#fafafa", "https://internal.example"); len(got) != 2 {
		t.Errorf("both flags should produce 2 options, got %d", len(got))
	}
}
