package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/miniide/miniide-cli/internal/cli"
	"github.com/miniide/miniide-cli/pkg/archive"
)

// NewExportCommand creates the export command
func NewExportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <archive.zip>",
		Short: "Export the workspace as a zip archive",
		Long: `Write every workspace file into a zip archive, preserving the
folder structure. A manifest entry records the export metadata.

Examples:
  minide export project.zip`,
		Args: cobra.ExactArgs(1),
		RunE: runExport,
	}

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx, err := cli.NewWorkspaceContext()
	if err != nil {
		return err
	}
	defer ctx.Close()

	f, err := os.Create(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	if err := archive.ExportZip(f, ctx.Store.List()); err != nil {
		return err
	}

	cli.PrintSuccess("Exported %d file(s) to %s", ctx.Store.Len(), args[0])
	return nil
}
