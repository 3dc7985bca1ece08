// tetris is a terminal Tetris with a word-bonus panel.
//
// Usage:
//
//	tetris [play]            - Play (Bubble Tea frontend by default)
//	tetris list              - List available games
//	tetris serve             - Start SSH server for remote play
//	tetris words             - Show the bonus word list in use
//	tetris config            - Print the default config YAML
//
// Global flags:
//
//	--tick-ms <ms>          - Gravity interval (default: from config, 333)
//	--seed <value>          - Set RNG seed for reproducible gameplay
//	--config <path>         - Custom config YAML
//	--words <path>          - Custom bonus word list (.txt or .yaml)
//	--difficulty <preset>   - easy, normal, hard or fixed
//	--sound                 - Enable sound cues
//	--frontend <name>       - bubbletea or tcell
//	--log <path>            - Write debug log to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

var (
	// Global flags
	flagTickMS     int
	flagSeed       int64
	flagConfig     string
	flagWords      string
	flagDifficulty string
	flagSound      bool
	flagFrontend   string
	flagLog        string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris",
	Short: "Tetris in your terminal, with bonus words",
	Long: `Falling blocks in the terminal. Every cleared row reveals a random
word in the BONUS panel; clearing four rows at once counts as a tetris.

Available commands:
  play     - Play (default)
  list     - Show all available games
  serve    - Start SSH server for remote play
  words    - Show the bonus word list in use
  config   - Print the default configuration

Examples:
  tetris
  tetris play --difficulty hard
  tetris play --frontend tcell --sound
  tetris serve --ssh :2222
  tetris words --words ./palabras.txt`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagTickMS, "tick-ms", 0, "Gravity interval in milliseconds (0 = config value)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	pf.StringVar(&flagWords, "words", "", "Path to bonus word list (.txt or .yaml)")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.BoolVar(&flagSound, "sound", false, "Enable sound cues (overrides config)")
	pf.StringVar(&flagFrontend, "frontend", frontendBubbleTea, "Terminal frontend: bubbletea or tcell")
	pf.StringVar(&flagLog, "log", "", "Write a debug log to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(wordsCmd)
	rootCmd.AddCommand(configCmd)
}
