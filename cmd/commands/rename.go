package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/miniide/miniide-cli/internal/cli"
	"github.com/miniide/miniide-cli/pkg/console"
)

// NewRenameCommand creates the rename command
func NewRenameCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rename <path> <new-path>",
		Short: "Rename a workspace file",
		Long: `Rename a file. The language is re-derived from the new name's
extension, and folder paths inside the new name move the file.

Examples:
  # Rename in place
  minide rename notes.md readme.md

  # Move into a folder
  minide rename util.js src/util.js`,
		Args: cobra.ExactArgs(2),
		RunE: runRename,
	}

	return cmd
}

func runRename(cmd *cobra.Command, args []string) error {
	if err := cli.ValidateFileName(args[1]); err != nil {
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

	if err := sess.Rename(args[0], args[1]); err != nil {
		return err
	}

	return sess.Flush()
}
