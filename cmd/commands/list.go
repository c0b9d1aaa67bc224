package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/miniide/miniide-cli/internal/cli"
)

// ListResult represents the output structure for list command
type ListResult struct {
	Items []ListItem `json:"items" yaml:"items"`
	Count int        `json:"count" yaml:"count"`
}

// ListItem represents a single workspace file in the list
type ListItem struct {
	Path     string `json:"path" yaml:"path"`
	Language string `json:"language" yaml:"language"`
	Size     int    `json:"size" yaml:"size"`
}

var (
	listFormat string
	listFolder string
)

// NewListCommand creates the list command
func NewListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List workspace files",
		Long: `List all files in the workspace.

Examples:
  # List all files
  minide list

  # List files under a folder
  minide list --folder src

  # Machine-readable output
  minide list --format json`,
		Args: cobra.NoArgs,
		RunE: runList,
	}

	cmd.Flags().StringVarP(&listFormat, "format", "o", "text", "Output format (text, json, yaml)")
	cmd.Flags().StringVar(&listFolder, "folder", "", "Only list files under this folder")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	if err := cli.ValidateOutputFormat(listFormat); err != nil {
		return err
	}

	ctx, err := cli.NewWorkspaceContext()
	if err != nil {
		return err
	}
	defer ctx.Close()

	result := ListResult{}
	prefix := ""
	if listFolder != "" {
		prefix = strings.TrimSuffix(listFolder, "/") + "/"
	}
	for _, rec := range ctx.Store.List() {
		if prefix != "" && !strings.HasPrefix(rec.ID, prefix) {
			continue
		}
		result.Items = append(result.Items, ListItem{
			Path:     rec.ID,
			Language: string(rec.Language),
			Size:     len(rec.Content),
		})
	}
	result.Count = len(result.Items)

	if listFormat != "text" {
		return cli.OutputResults(os.Stdout, listFormat, result)
	}

	if result.Count == 0 {
		fmt.Println("No files found.")
		return nil
	}

	table := cli.NewTableFormatter(os.Stdout)
	table.Header("PATH", "LANGUAGE", "SIZE")
	for _, item := range result.Items {
		table.Row(item.Path, item.Language, humanize.Bytes(uint64(item.Size)))
	}
	table.Flush()
	fmt.Printf("\n%d file(s)\n", result.Count)

	return nil
}
