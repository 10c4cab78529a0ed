package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"physbox/internal/core"
	"physbox/internal/platform/tui"
	"physbox/internal/scene"
	"physbox/internal/scenes/cube"
	"physbox/internal/scenes/swarm"
	"physbox/internal/storage"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play <scene>",
	Short: "Run a scene",
	Long: `Start the specified scene.

Controls:
  WASD/HJKL/Arrows - Push the body
  Shift + direction - Boost (3x thrust)
  P/Esc            - Pause
  R                - Restart
  Q/Ctrl+C         - Quit

Examples:
  physbox play cube
  physbox play swarm --seed 42
  physbox play cube --config ./my-cube.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom scene config YAML")
}

func runPlay(cmd *cobra.Command, args []string) {
	sceneID := args[0]

	// Check if scene exists
	if !scene.Exists(sceneID) {
		fmt.Fprintf(os.Stderr, "Error: unknown scene %q\n", sceneID)
		fmt.Fprintln(os.Stderr, "Run 'physbox list' to see available scenes.")
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Set config path for scenes before creation
	switch sceneID {
	case "cube":
		cube.SetConfigPath(flagConfig)
	case "swarm":
		swarm.SetConfigPath(flagConfig)
	}

	// Create scene instance
	scn, err := scene.Create(sceneID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating scene: %v\n", err)
		os.Exit(1)
	}

	// Open session storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open sessions database: %v\n", err)
		// Continue without storage - the scene still works
		store = nil
	}

	// Run the scene
	runErr := tui.Run(scn, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running scene: %v\n", runErr)
		os.Exit(1)
	}
}
