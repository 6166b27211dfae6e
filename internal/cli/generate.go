package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/robtaylor/excalidraw-diagrams/pkg/excalidraw"
	"github.com/robtaylor/excalidraw-diagrams/pkg/request"
)

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	output     string // output file path (".excalidraw" appended if no extension)
	background string // canvas background color
	source     string // document source URL
}

// generateCommand creates the generate command. It reads a node/edge
// request from a file (or stdin when the argument is "-"), builds the
// document, and writes it to --output.
func (c *CLI) generateCommand() *cobra.Command {
	opts := generateOpts{output: "diagram"}

	cmd := &cobra.Command{
		Use:   "generate [file]",
		Short: "Build a document from a node/edge request",
		Long: `Build an Excalidraw document from a JSON node/edge request.

The request format:

  {
    "nodes": [
      {"id": "fe", "label": "Frontend", "x": 100, "y": 100, "color": "blue"},
      {"id": "be", "label": "Backend", "x": 350, "y": 100, "shape": "ellipse"}
    ],
    "edges": [
      {"from": "fe", "to": "be", "label": "REST API"}
    ]
  }

Pass "-" as the file argument to read the request from stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGenerate(args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", opts.output, "output file path")
	cmd.Flags().StringVar(&opts.background, "background", "", "canvas background color")
	cmd.Flags().StringVar(&opts.source, "source", "", "document source URL")

	return cmd
}

func (c *CLI) runGenerate(input string, opts *generateOpts) error {
	prog := newProgress(c.Logger)

	var req request.Request
	var err error
	if input == "-" {
		req, err = request.Read(os.Stdin)
	} else {
		req, err = request.ReadFile(input)
	}
	if err != nil {
		return err
	}
	c.Logger.Debug("request parsed", "nodes", len(req.Nodes), "edges", len(req.Edges))

	d := excalidraw.New(diagramOptions(opts.background, opts.source)...)
	if err := request.Build(req, d); err != nil {
		return err
	}

	path, err := d.Save(opts.output)
	if err != nil {
		return fmt.Errorf("save: %w", err)
	}
	prog.done(fmt.Sprintf("Built %d elements", len(d.Elements())))

	printSuccess("Diagram written")
	printFile(path)
	printStats(len(req.Nodes), len(req.Edges), len(d.Elements()))
	printNextStep("Open it", "https://excalidraw.com (File > Open)")
	return nil
}

// diagramOptions translates the shared flags into builder options.
func diagramOptions(background, source string) []excalidraw.Option {
	var diagOpts []excalidraw.Option
	if background != "" {
		diagOpts = append(diagOpts, excalidraw.WithBackground(background))
	}
	if source != "" {
		diagOpts = append(diagOpts, excalidraw.WithSource(source))
	}
	return diagOpts
}
