package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/words"
)

var titleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("14")).
	MarginBottom(1)

var wordsCmd = &cobra.Command{
	Use:   "words",
	Short: "Show the bonus word list in use",
	Long: `Resolve the bonus word list the same way play does and print it.

Search order:
  1. --words <path> (or words.path in the config)
  2. ~/.tetris/words.txt
  3. ./words.txt
  4. the built-in list

Plain text lists hold one word per line; blank lines and lines starting
with # are skipped. YAML lists use a top-level "words:" sequence.

Examples:
  tetris words
  tetris words --words ./palabras.txt
  tetris words --words ./bonus.yaml`,
	Run: runWords,
}

func runWords(cmd *cobra.Command, _ []string) {
	path := flagWords
	if path == "" {
		cfg, err := config.LoadTetris(flagConfig)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		path = cfg.Words.Path
	}

	list, err := words.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	printWords(os.Stdout, words.Source(path), list)
}

// printWords renders list as a static table.
func printWords(w io.Writer, source string, list []string) {
	rows := make([]table.Row, 0, len(list))
	for i, word := range list {
		rows = append(rows, table.Row{strconv.Itoa(i + 1), word})
	}

	wordWidth := 12
	for _, word := range list {
		wordWidth = max(wordWidth, lipgloss.Width(word))
	}

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		Bold(true)
	styles.Selected = lipgloss.NewStyle()

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "#", Width: 4},
			{Title: "Word", Width: wordWidth},
		}),
		table.WithRows(rows),
		table.WithStyles(styles),
		table.WithHeight(len(rows)+2), // header text plus its border
		table.WithFocused(false),
	)

	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("Bonus words (%d) from %s", len(list), source)))
	fmt.Fprintln(w, t.View())
}
