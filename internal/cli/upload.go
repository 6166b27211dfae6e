package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/robtaylor/excalidraw-diagrams/pkg/upload"
)

// uploadOpts holds the command-line flags for the upload command.
type uploadOpts struct {
	endpoint string // remote endpoint URL
	retries  int    // retry count for transient failures
}

// uploadCommand creates the upload command, which pushes an existing
// .excalidraw document to a remote endpoint.
func (c *CLI) uploadCommand() *cobra.Command {
	opts := uploadOpts{retries: 3}

	cmd := &cobra.Command{
		Use:   "upload [file]",
		Short: "Push a document to a remote endpoint",
		Long: `Push an .excalidraw document to a remote endpoint via HTTP POST.

Transient failures (network errors, 5xx responses) are retried with
exponential backoff. The endpoint's response body is printed, which
share services typically use to return a URL.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.endpoint == "" {
				return fmt.Errorf("--endpoint is required")
			}
			return c.runUpload(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVar(&opts.endpoint, "endpoint", "", "endpoint URL to POST the document to")
	cmd.Flags().IntVar(&opts.retries, "retries", opts.retries, "retry count for transient failures")

	return cmd
}

func (c *CLI) runUpload(cmd *cobra.Command, path string, opts *uploadOpts) error {
	document, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	prog := newProgress(c.Logger)
	client := upload.NewClient(opts.endpoint,
		upload.WithRetryMax(opts.retries),
		upload.WithLogger(c.Logger),
	)

	body, err := client.Push(cmd.Context(), document)
	if err != nil {
		printError("Upload failed")
		return err
	}
	prog.done(fmt.Sprintf("Uploaded %d bytes", len(document)))

	printSuccess("Document uploaded")
	if len(body) > 0 {
		printInfo("%s", body)
	}
	return nil
}
