package commands

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/miniide/miniide-cli/internal/cli"
	"github.com/miniide/miniide-cli/pkg/console"
)

var (
	createFolder   bool
	createFromFile string
)

// NewCreateCommand creates the create command
func NewCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create <path>",
		Short: "Create a new file or folder",
		Long: `Create a new file in the workspace. Folder paths inside the
name create the folder structure implicitly.

Examples:
  # Create a file at the workspace root
  minide create notes.md

  # Create a file inside a folder
  minide create src/util.js

  # Create an empty folder (placed with a placeholder file)
  minide create src/assets --folder

  # Seed the new file from a local file
  minide create data.json --from ./data.json`,
		Args: cobra.ExactArgs(1),
		RunE: runCreate,
	}

	cmd.Flags().BoolVar(&createFolder, "folder", false, "Create a folder instead of a file")
	cmd.Flags().StringVar(&createFromFile, "from", "", "Seed content from a local file")

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	name := args[0]
	if createFolder {
		if err := cli.ValidateFolderName(name); err != nil {
			return err
		}
	} else if err := cli.ValidateFileName(name); err != nil {
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

	if createFolder {
		if err := sess.CreateFolder(name); err != nil {
			return err
		}
		return sess.Flush()
	}

	if err := sess.CreateFile(name); err != nil {
		return err
	}

	if createFromFile != "" {
		if err := cli.ValidateLocalPath(createFromFile); err != nil {
			return err
		}
		f, err := os.Open(createFromFile)
		if err != nil {
			return err
		}
		content, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return err
		}
		// CreateFile made the new file current, so the edit lands there.
		sess.OnWidgetEdit(string(content))
	}

	return sess.Flush()
}
