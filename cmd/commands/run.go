package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/miniide/miniide-cli/internal/cli"
	"github.com/miniide/miniide-cli/pkg/console"
	"github.com/miniide/miniide-cli/pkg/models"
	"github.com/miniide/miniide-cli/pkg/runner"
)

var (
	runOut     string
	runTimeout time.Duration
)

// NewRunCommand creates the run command
func NewRunCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <path>",
		Short: "Execute a workspace file",
		Long: `Execute a file outside the interactive workspace. Script
languages run in the embedded interpreter with output on stdout. Web
languages compose a preview document, written to --out or stdout. Compiled
languages print the source with a link to an external compiler.

Examples:
  # Run a lua script
  minide run tools/build.lua

  # Compose the html preview into a file
  minide run index.html --out preview.html`,
		Args: cobra.ExactArgs(1),
		RunE: runRun,
	}

	cmd.Flags().StringVar(&runOut, "out", "", "Write composed preview documents to this file")
	cmd.Flags().DurationVar(&runTimeout, "timeout", 30*time.Second, "Execution timeout")

	return cmd
}

// fileSurface writes composed preview documents to a file or stdout instead
// of serving them.
type fileSurface struct {
	path string
}

func (f fileSurface) Render(doc string) error {
	if f.path == "" {
		fmt.Print(doc)
		return nil
	}
	return os.WriteFile(f.path, []byte(doc), 0o644)
}

func (f fileSurface) Clear() error { return nil }

func runRun(cmd *cobra.Command, args []string) error {
	ctx, err := cli.NewWorkspaceContext()
	if err != nil {
		return err
	}
	defer ctx.Close()

	rec, ok := ctx.Store.Get(args[0])
	if !ok {
		return fmt.Errorf("file not found: %s", args[0])
	}

	d := runner.New(console.Writer{Out: os.Stdout}, fileSurface{path: runOut})
	d.RegisterInterpreter(models.LangLua, runner.NewLuaEngine())

	runCtx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()

	if refusal := d.Run(runCtx, rec, ctx.Store.List()); refusal != nil {
		fmt.Printf("\nPaste the source at %s\n", refusal.CompilerURL)
	}
	return nil
}
