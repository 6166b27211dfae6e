package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/robtaylor/excalidraw-diagrams/pkg/excalidraw"
)

// exampleCommand creates the example command, which writes a built-in
// three-tier sample diagram. Useful for a first look at the output
// format without writing a request file.
func (c *CLI) exampleCommand() *cobra.Command {
	output := "example"

	cmd := &cobra.Command{
		Use:   "example",
		Short: "Write a built-in sample diagram",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runExample(output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", output, "output file path")

	return cmd
}

func (c *CLI) runExample(output string) error {
	d := excalidraw.New()

	frontend := d.MustBox(100, 100, "Frontend", excalidraw.BoxOptions{Color: "blue"})
	backend := d.MustBox(350, 100, "Backend", excalidraw.BoxOptions{Color: "green"})
	database := d.MustBox(600, 100, "Database", excalidraw.BoxOptions{Color: "orange"})

	d.ArrowBetween(frontend, backend, excalidraw.ArrowOptions{Label: "REST API"})
	d.ArrowBetween(backend, database, excalidraw.ArrowOptions{Label: "SQL"})

	path, err := d.Save(output)
	if err != nil {
		return fmt.Errorf("save: %w", err)
	}

	printSuccess("Example diagram written")
	printFile(path)
	printStats(3, 2, len(d.Elements()))
	return nil
}
