package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/miniide/miniide-cli/internal/cli"
	"github.com/miniide/miniide-cli/pkg/console"
)

var (
	deleteForce  bool
	deleteFolder bool
)

// NewDeleteCommand creates the delete command
func NewDeleteCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <path>",
		Short: "Delete a file or folder",
		Long: `Permanently delete a workspace file, or a folder and every file
inside it. This action cannot be undone.

Examples:
  # Delete a file (with confirmation)
  minide delete notes.md

  # Delete a folder and its contents
  minide delete src --folder

  # Force delete without confirmation
  minide delete old.js --force`,
		Args: cobra.ExactArgs(1),
		RunE: runDelete,
	}

	cmd.Flags().BoolVarP(&deleteForce, "force", "f", false, "Force deletion without confirmation")
	cmd.Flags().BoolVar(&deleteFolder, "folder", false, "Delete a folder and all files inside it")

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	path := args[0]

	if !deleteForce {
		prompt := fmt.Sprintf("Delete '%s'?", path)
		if deleteFolder {
			prompt = fmt.Sprintf("Delete folder '%s' and all files inside it?", path)
		}
		confirmed, err := cli.Confirm(prompt, false)
		if err != nil {
			return err
		}
		if !confirmed {
			cli.PrintInfo("Deletion cancelled.")
			return nil
		}
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

	if deleteFolder {
		if _, err := sess.DeleteFolder(path); err != nil {
			return err
		}
	} else if err := sess.DeleteFile(path); err != nil {
		return err
	}

	return sess.Flush()
}
