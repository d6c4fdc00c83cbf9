// Package summary renders a ranked slice of matches as fixed-width text.
// The exact character layout is a compatibility contract for anything that
// displays it, so the plain layout is built with byte-precise padding and
// decoration is only ever layered on top of it.
package summary

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/matchboard/internal/scoreboard"
)

// nameEllipsis marks a truncated team name inside its column.
const nameEllipsis = "..."

// scoreFieldWidth is the fixed width of "<home>:<away>" between the name
// columns: three characters per score plus the separator.
const scoreFieldWidth = 7

// Options control a single render call. Pass a value built from
// DefaultOptions into every call; there is no process-wide mutable state.
type Options struct {
	// MaxLines caps the number of match rows; rows beyond the window are
	// replaced by a single Ellipsis line.
	MaxLines int
	// StartFrom skips that many rows of the sorted input before rendering.
	StartFrom int

	Padding        int
	MinColumnWidth int
	MaxColumnWidth int

	HomeHeader string
	AwayHeader string
	Ellipsis   string

	// Decorated wraps the home and away halves of each row in distinct
	// styles and adds a header and footer. Whether the environment can
	// display that is the caller's call; the renderer never sniffs it.
	Decorated bool
}

func DefaultOptions() Options {
	return Options{
		MaxLines:       20,
		Padding:        5,
		MinColumnWidth: 10,
		MaxColumnWidth: 30,
		HomeHeader:     "HOME",
		AwayHeader:     "AWAY",
		Ellipsis:       "(...)",
	}
}

var (
	homeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#89b4fa"))
	awayStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#fab387"))
	headerStyle = lipgloss.NewStyle().Bold(true)
	ruleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#585b70"))
)

// Render turns an already sorted slice of matches into the summary table.
// Pure function of its arguments; it never mutates board state. Zero rows
// render to the empty string in both modes.
func Render(matches []scoreboard.Match, opts Options) string {
	start := opts.StartFrom
	if start < 0 {
		start = 0
	}
	if start >= len(matches) {
		return ""
	}
	rows := matches[start:]
	truncated := false
	if opts.MaxLines > 0 && len(rows) > opts.MaxLines {
		rows = rows[:opts.MaxLines]
		truncated = true
	}

	col := columnWidth(rows, opts)

	var sb strings.Builder
	if opts.Decorated {
		sb.WriteString(headerLine(col, opts))
	}
	for _, m := range rows {
		sb.WriteString(matchLine(m, col, opts))
	}
	if truncated {
		sb.WriteString(ellipsisLine(col, opts))
	}
	if opts.Decorated {
		sb.WriteString(footerLine(col))
	}
	return sb.String()
}

// columnWidth sizes both name columns for this call:
// min(max(longest home, longest away, MinColumnWidth), MaxColumnWidth),
// plus padding. The bounds keep the table visually stable regardless of
// name length.
func columnWidth(rows []scoreboard.Match, opts Options) int {
	longest := opts.MinColumnWidth
	for _, m := range rows {
		if n := len([]rune(m.Home())); n > longest {
			longest = n
		}
		if n := len([]rune(m.Away())); n > longest {
			longest = n
		}
	}
	if opts.MaxColumnWidth > 0 && longest > opts.MaxColumnWidth {
		longest = opts.MaxColumnWidth
	}
	return longest + opts.Padding
}

// matchLine lays out one row: home name left-aligned, the fixed score field,
// away name right-aligned, newline.
func matchLine(m scoreboard.Match, col int, opts Options) string {
	home := fmt.Sprintf("%-*s", col, truncateName(m.Home(), col-opts.Padding))
	away := fmt.Sprintf("%*s", col, truncateName(m.Away(), col-opts.Padding))

	homeHalf := home + fmt.Sprintf("%3s", scoreText(m.HomeScore()))
	awayHalf := fmt.Sprintf("%-3s", scoreText(m.AwayScore())) + away
	if opts.Decorated {
		homeHalf = homeStyle.Render(homeHalf)
		awayHalf = awayStyle.Render(awayHalf)
	}
	return homeHalf + ":" + awayHalf + "\n"
}

// scoreText zero-pads to two digits; a third digit fills the slot that the
// alignment in matchLine reserves, so the field width never changes.
func scoreText(v int) string {
	return fmt.Sprintf("%02d", v)
}

// truncateName shortens a name that overflows the column's usable width so
// that name plus marker exactly fill it.
func truncateName(name string, allowed int) string {
	runes := []rune(name)
	if len(runes) <= allowed {
		return name
	}
	if allowed <= len(nameEllipsis) {
		return string(runes[:allowed])
	}
	return string(runes[:allowed-len(nameEllipsis)]) + nameEllipsis
}

func headerLine(col int, opts Options) string {
	line := fmt.Sprintf("%-*s", col, opts.HomeHeader) +
		strings.Repeat(" ", scoreFieldWidth) +
		fmt.Sprintf("%*s", col, opts.AwayHeader)
	return headerStyle.Render(line) + "\n"
}

func footerLine(col int) string {
	return ruleStyle.Render(strings.Repeat("─", lineWidth(col))) + "\n"
}

// ellipsisLine centers the truncation marker under the table.
func ellipsisLine(col int, opts Options) string {
	indent := (lineWidth(col) - len([]rune(opts.Ellipsis))) / 2
	if indent < 0 {
		indent = 0
	}
	return strings.Repeat(" ", indent) + opts.Ellipsis + "\n"
}

func lineWidth(col int) int {
	return 2*col + scoreFieldWidth
}
