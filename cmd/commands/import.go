package commands

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/miniide/miniide-cli/internal/cli"
	"github.com/miniide/miniide-cli/pkg/archive"
	"github.com/miniide/miniide-cli/pkg/console"
	"github.com/miniide/miniide-cli/pkg/session"
)

// NewImportCommand creates the import command
func NewImportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <path>",
		Short: "Import local files into the workspace",
		Long: `Import a local file, a directory tree, or a zip archive into the
workspace. Files whose names already exist in the workspace are skipped.

Examples:
  # Import a single file
  minide import ./script.js

  # Import a directory tree
  minide import ./my-project

  # Import a previously exported archive
  minide import project.zip`,
		Args: cobra.ExactArgs(1),
		RunE: runImport,
	}

	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	path := args[0]
	if err := cli.ValidateLocalPath(path); err != nil {
		return err
	}

	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	var items []session.ImportItem
	switch {
	case info.IsDir():
		items, err = archive.ImportDir(path)
	case strings.HasSuffix(path, ".zip"):
		items, err = archive.ImportZip(path)
	default:
		items = []session.ImportItem{archive.ImportFile(path)}
	}
	if err != nil {
		return err
	}

	ctx, err := cli.NewWorkspaceContext()
	if err != nil {
		return err
	}
	defer ctx.Close()

	sess, err := ctx.Session(console.Writer{Out: os.Stdout})
	if err != nil {
		return err
	}

	sess.Import(items)
	return sess.Flush()
}
