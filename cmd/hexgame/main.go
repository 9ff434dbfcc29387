// hexgame is a hex grid map explorer that runs in the terminal or in a
// desktop window.
//
// Usage:
//
//	hexgame play                 - Play in the terminal
//	hexgame window               - Play in a desktop window
//	hexgame inspect hex <q> <r>  - Show the geometry of a cell
//	hexgame inspect pixel <x> <y> - Show the cell under a window pixel
//	hexgame config               - Print the effective settings
//
// Global flags:
//
//	--config <path>     - Settings file (default: search order)
//	--log-level <level> - debug, info, warn or error (default: info)
//	--log-file <path>   - Terminal frontend log (default: ~/.hexgame/hexgame.log)
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/hexgame/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hexgame",
	Short: "hexgame - explore a generated hex map",
	Long: `hexgame generates an island on a hexagonal grid and lets you scroll
around it and select cells, either in the terminal or in a desktop window.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  inspect  - Print hex grid geometry
  config   - Print the effective settings

Examples:
  hexgame play
  hexgame play --seed 42 --skip-intro
  hexgame window --config ./my-hexgame.yaml
  hexgame inspect hex 2 -1
  hexgame inspect hex -- -2 1
  hexgame inspect pixel 500 380`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to settings YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.hexgame/hexgame.log", "Log file for the terminal frontend")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(configCmd)
}

// fail prints err and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// newLogger builds the logger for a command. With toFile set it writes to
// --log-file instead of stderr; the returned close func must be called.
func newLogger(toFile bool) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("--log-level: %w", err)
	}

	var w io.Writer = os.Stderr
	closeFn := func() {}
	if toFile {
		path, err := expandHome(flagLogFile)
		if err != nil {
			return nil, nil, err
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "hexgame",
	})
	logger.SetLevel(level)
	return logger, closeFn, nil
}

// loadSettings loads and validates the settings named by --config.
func loadSettings(logger *log.Logger) (config.Settings, error) {
	settings, source, err := config.Load(flagConfig)
	if err != nil {
		return settings, err
	}
	if logger != nil {
		logger.Info("settings loaded", "source", source)
	}
	return settings, nil
}
