package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"physbox/internal/platform/tui"
	"physbox/internal/scene"
	"physbox/internal/storage"
)

var flagStatsPlain bool

var statsCmd = &cobra.Command{
	Use:   "stats [scene]",
	Short: "Show recorded sessions",
	Long: `Display recorded sessions ranked by bounce count.

Without arguments, opens an interactive board that can cycle between
scenes. With a scene argument and --plain, prints the top sessions to
stdout instead.

Examples:
  physbox stats
  physbox stats cube --plain`,
	Args: cobra.MaximumNArgs(1),
	Run:  runStats,
}

func init() {
	statsCmd.Flags().BoolVar(&flagStatsPlain, "plain", false, "Print sessions to stdout instead of the interactive board")
}

func runStats(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening sessions database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagStatsPlain {
		if len(args) == 0 {
			fmt.Fprintln(os.Stderr, "Error: --plain requires a scene argument")
			os.Exit(1)
		}
		printStats(store, args[0])
		return
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if err := tui.RunStats(store, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error running stats board: %v\n", err)
		os.Exit(1)
	}
}

func printStats(store *storage.Store, sceneID string) {
	if !scene.Exists(sceneID) {
		fmt.Fprintf(os.Stderr, "Error: unknown scene %q\n", sceneID)
		fmt.Fprintln(os.Stderr, "Run 'physbox list' to see available scenes.")
		os.Exit(1)
	}

	sessions, err := store.TopSessions(sceneID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving sessions: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Sessions - %s\n", sceneID)
	fmt.Println()

	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Printf("Run 'physbox play %s' to record the first session!\n", sceneID)
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-8s  %-8s  %-10s  %s\n", "Rank", "Bounces", "Ticks", "Peak", "Date")
	fmt.Printf("  %-4s  %-8s  %-8s  %-10s  %s\n", "----", "-------", "-----", "----", "----")

	// Print sessions
	for i, entry := range sessions {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8d  %-8d  %-10.1f  %s\n", i+1, entry.Bounces, entry.Ticks, entry.PeakSpeed, dateStr)
	}

	fmt.Println()
	best, err := store.BestBounces(sceneID)
	if err == nil {
		fmt.Printf("Best: %d bounces\n", best)
	}
}
