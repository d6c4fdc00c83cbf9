package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/matchboard/internal/config"
	"github.com/jask/matchboard/internal/scoreboard"
	"github.com/jask/matchboard/internal/summary"
	"github.com/jask/matchboard/internal/testdata"
	"github.com/jask/matchboard/internal/tui"
)

func main() {
	demo := flag.Bool("demo", false, "start the sample fixtures before opening the board")
	plain := flag.Bool("plain", false, "print the current summary to stdout and exit")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	board := scoreboard.NewBoard()
	if *demo {
		if err := testdata.SeedWorldCup(board); err != nil {
			log.Fatalf("seed demo fixtures: %v", err)
		}
	}
	if n := cfg.UI.DemoMatches; n > 0 {
		testdata.Seed(board, n)
	}

	if *plain {
		opts := cfg.SummaryOptions()
		fmt.Print(summary.Render(board.SortMatches(scoreboard.GoalsTotal), opts))
		return
	}

	app := tui.NewApp(board, cfg, colorCapable(cfg.UI.Color))
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatalf("run: %v", err)
	}
}

// colorCapable resolves the configured color mode against the environment
// once, here at the process boundary; the renderer and the TUI only ever see
// the resulting flag.
func colorCapable(mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		_, noColor := os.LookupEnv("NO_COLOR")
		return !noColor && os.Getenv("TERM") != "dumb"
	}
}
