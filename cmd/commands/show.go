package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/miniide/miniide-cli/internal/cli"
)

// ShowResult represents the output structure for show command
type ShowResult struct {
	Path     string `json:"path" yaml:"path"`
	Language string `json:"language" yaml:"language"`
	Size     int    `json:"size" yaml:"size"`
	Content  string `json:"content" yaml:"content"`
}

var showFormat string

// NewShowCommand creates the show command
func NewShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <path>",
		Short: "Print a workspace file",
		Long: `Print a file's content to stdout.

Examples:
  # Print content
  minide show script.js

  # Metadata and content as JSON
  minide show script.js --format json`,
		Args: cobra.ExactArgs(1),
		RunE: runShow,
	}

	cmd.Flags().StringVarP(&showFormat, "format", "o", "text", "Output format (text, json, yaml)")

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	if err := cli.ValidateOutputFormat(showFormat); err != nil {
		return err
	}

	ctx, err := cli.NewWorkspaceContext()
	if err != nil {
		return err
	}
	defer ctx.Close()

	rec, ok := ctx.Store.Get(args[0])
	if !ok {
		return fmt.Errorf("file not found: %s", args[0])
	}

	if showFormat != "text" {
		return cli.OutputResults(os.Stdout, showFormat, ShowResult{
			Path:     rec.ID,
			Language: string(rec.Language),
			Size:     len(rec.Content),
			Content:  rec.Content,
		})
	}

	fmt.Print(rec.Content)
	if len(rec.Content) > 0 && rec.Content[len(rec.Content)-1] != '\n' {
		fmt.Println()
	}
	return nil
}
