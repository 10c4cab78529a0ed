// physbox is a terminal physics sandbox for pushing bodies around
// bounded 2D worlds.
//
// Usage:
//
//	physbox list             - List available scenes
//	physbox play <scene>     - Run a scene
//	physbox serve            - Start SSH server for remote sessions
//	physbox stats <scene>    - Show recorded sessions for a scene
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible runs
//	--db <path>     - Set database path (default: ~/.physbox/sessions.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import scenes to register them
	_ "physbox/internal/scenes/cube"
	_ "physbox/internal/scenes/swarm"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "physbox",
	Short: "physbox - A terminal physics sandbox",
	Long: `physbox runs small 2D physics scenes directly in your terminal.
Bodies accelerate under your input, slow down under friction, and
bounce off the walls of the world.

Available commands:
  list     - Show all available scenes
  play     - Run a specific scene
  serve    - Start SSH server for remote sessions
  stats    - View recorded sessions

Examples:
  physbox list
  physbox play cube
  physbox play swarm --seed 42
  physbox serve --ssh :2222
  physbox stats cube`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.physbox/sessions.db", "Path to sessions database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(statsCmd)
}
