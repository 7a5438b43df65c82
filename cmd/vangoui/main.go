package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/vangoui/internal/config"
	"github.com/vango-dev/vangoui/internal/errors"
	"github.com/vango-dev/vangoui/internal/stories"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ╦  ╦┌─┐┌┐┌┌─┐┌─┐╦ ╦╦
  ╚╗╔╝├─┤││││ ┬│ │║ ║║
   ╚╝ ┴ ┴┘└┘└─┘└─┘╚═╝╩
`

// globalFlags are shared by every command.
type globalFlags struct {
	dir     string
	verbose bool
}

func main() {
	var flags globalFlags

	rootCmd := &cobra.Command{
		Use:   "vangoui",
		Short: "Component gallery for VangoUI",
		Long: `VangoUI renders Go UI components from a story catalog.

Browse stories live in the browser, export them as static HTML,
or try the toast and carousel controllers in the terminal.

Configuration is read from vangoui.json in the project root,
with VANGOUI_* environment overrides and an optional .env file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if flags.verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		},
	}
	rootCmd.PersistentFlags().StringVarP(&flags.dir, "dir", "C", "", "Project directory (default: nearest vangoui.json)")
	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(
		initCmd(&flags),
		serveCmd(&flags),
		exportCmd(&flags),
		previewCmd(&flags),
		renderCmd(&flags),
		storiesCmd(&flags),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		errors.Fprint(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig loads the project configuration named by --dir, or the
// nearest one above the working directory, falling back to defaults.
func loadConfig(flags *globalFlags) (*config.Config, error) {
	if flags.dir != "" {
		return config.LoadOrDefault(flags.dir)
	}
	return config.LoadFromWorkingDir()
}

// loadProject loads the configuration and its story catalog.
func loadProject(flags *globalFlags) (*config.Config, *stories.Catalog, error) {
	cfg, err := loadConfig(flags)
	if err != nil {
		return nil, nil, err
	}
	catalog, err := stories.Open(cfg.CatalogPath())
	if err != nil {
		return nil, nil, err
	}
	slog.Debug("catalog loaded", "source", catalog.Source(), "stories", len(catalog.List()))
	return cfg, catalog, nil
}

// printBanner prints the ASCII art banner.
func printBanner() {
	fmt.Print(banner)
}

// success prints a success message.
func success(format string, args ...any) {
	fmt.Printf("\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(format string, args ...any) {
	fmt.Printf("  %s\n", fmt.Sprintf(format, args...))
}
