package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hexgame/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective settings",
	Long: `Print the settings hexgame would run with as YAML, preceded by a
comment naming where they were loaded from.

Search order:
  --config <path>
  ~/.hexgame/config.yaml
  ./configs/hexgame.yaml
  built-in defaults`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(_ *cobra.Command, _ []string) {
	settings, source, err := config.Load(flagConfig)
	if err != nil {
		fail("%v", err)
	}
	data, err := config.Marshal(settings)
	if err != nil {
		fail("%v", err)
	}
	fmt.Printf("# source: %s\n", source)
	os.Stdout.Write(data)
}
