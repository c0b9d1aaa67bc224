package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/miniide/miniide-cli/internal/cli"
	"github.com/miniide/miniide-cli/pkg/console"
)

// NewSetCommand creates the set command
func NewSetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <path> <language>",
		Short: "Override a file's language",
		Long: `Override the language a file is treated as, regardless of its
extension. The override persists until the file is renamed.

Examples:
  # Treat a .txt file as javascript
  minide set notes.txt javascript`,
		Args: cobra.ExactArgs(2),
		RunE: runSet,
	}

	return cmd
}

func runSet(cmd *cobra.Command, args []string) error {
	if err := cli.ValidateLanguageTag(args[1]); err != nil {
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

	if err := sess.SetLanguage(args[0], args[1]); err != nil {
		return err
	}

	cli.PrintSuccess("Language for %s set to %s", args[0], args[1])
	return sess.Flush()
}
