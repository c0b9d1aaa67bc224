package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/miniide/miniide-cli/cmd/commands"
	"github.com/miniide/miniide-cli/internal/cli"
	"github.com/miniide/miniide-cli/pkg/config"
	"github.com/miniide/miniide-cli/pkg/console"
	"github.com/miniide/miniide-cli/pkg/logging"
	"github.com/miniide/miniide-cli/pkg/models"
	"github.com/miniide/miniide-cli/pkg/runner"
	"github.com/miniide/miniide-cli/pkg/session"
	"github.com/miniide/miniide-cli/pkg/store"
	"github.com/miniide/miniide-cli/pkg/tui"
)

// Version is set during build with -ldflags
var version = "dev"

var (
	flagQuiet   bool
	flagNoColor bool
	flagYes     bool
)

var rootCmd = &cobra.Command{
	Use:   "minide",
	Short: "Terminal workspace for editing and running a multi-file project",
	Long: `MiniIDE is a terminal workspace editor. It keeps a virtual project
of files and folders in a local database, edits them with per-file undo
history and debounced autosave, and runs them: scripts through an embedded
interpreter, web files through a local live preview with console relay.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cli.SetGlobalFlags(flagQuiet, flagNoColor, flagYes)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return launchWorkspace()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of MiniIDE",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("MiniIDE version %s\n", version)
	},
}

func launchWorkspace() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logPath := cfg.Logging.Path
	if logPath == "" {
		logPath = logging.DefaultLogPath()
	}
	if err := logging.Init(logPath, cfg.Logging.Level); err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer logging.Close()

	st, err := store.Open(cfg.DataDir)
	if err != nil {
		return fmt.Errorf("failed to open workspace at %s: %w", cfg.DataDir, err)
	}
	defer st.Close()

	buf := console.NewBuffer(500)
	editorPane := tui.NewEditorPane()

	sess, err := session.New(st, editorPane, buf, session.Options{
		AutosaveInterval: cfg.AutosaveInterval,
	})
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}

	preview := runner.NewPreviewServer(buf)
	dispatcher := runner.New(buf, preview)
	dispatcher.RegisterInterpreter(models.LangLua, runner.NewLuaEngine())

	app := tui.NewApp(sess, dispatcher, preview, buf, editorPane,
		tui.ThemeByName(cfg.Theme), cfg.Preview.ListenAddr)

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to start the terminal user interface: %w", err)
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress non-essential output")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&flagYes, "yes", "y", false, "Assume yes on confirmation prompts")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(commands.NewListCommand())
	rootCmd.AddCommand(commands.NewCreateCommand())
	rootCmd.AddCommand(commands.NewDeleteCommand())
	rootCmd.AddCommand(commands.NewRenameCommand())
	rootCmd.AddCommand(commands.NewShowCommand())
	rootCmd.AddCommand(commands.NewSetCommand())
	rootCmd.AddCommand(commands.NewExportCommand())
	rootCmd.AddCommand(commands.NewImportCommand())
	rootCmd.AddCommand(commands.NewRunCommand())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
