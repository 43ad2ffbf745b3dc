// Package tui renders the intake form, the loading spinner and the
// recommendations dashboard with bubbletea.
package tui

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/amishk599/careernav/internal/career"
	"github.com/amishk599/careernav/internal/ranker"
)

var (
	colorAccent = lipgloss.Color("39")  // bright blue
	colorDim    = lipgloss.Color("240") // dim gray
	colorGreen  = lipgloss.Color("42")
	colorYellow = lipgloss.Color("214")
	colorRed    = lipgloss.Color("196")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent).
			Padding(1, 0, 0, 2)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Padding(0, 0, 1, 2)

	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("24")).
			Padding(0, 1)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(colorDim).
				Padding(0, 1)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent)

	statusBarStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("236"))

	labelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent).
			Width(18)

	itemTitleStyle = lipgloss.NewStyle().
			Bold(true)

	selectedItemStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("15")).
				Background(lipgloss.Color("24"))

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Italic(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorRed)

	chipStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("238")).
			Padding(0, 1)

	highlightChipStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("16")).
				Background(colorYellow).
				Padding(0, 1)

	dividerStyle = lipgloss.NewStyle().
			Foreground(colorDim)
)

// bar draws a horizontal gauge of width cells filled to percent.
func bar(percent float64, width int, color lipgloss.Color) string {
	percent = max(0, min(percent, 100))
	filled := int(percent / 100 * float64(width))
	return lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", filled)) +
		dividerStyle.Render(strings.Repeat("░", width-filled))
}

// labelledBar is a bar followed by its percentage.
func labelledBar(percent float64, width int, color lipgloss.Color) string {
	return fmt.Sprintf("%s %3.0f%%", bar(percent, width, color), percent)
}

func matchTierColor(t career.MatchTier) lipgloss.Color {
	switch t {
	case career.MatchExcellent:
		return colorGreen
	case career.MatchGood:
		return colorAccent
	case career.MatchFair:
		return colorYellow
	default:
		return colorRed
	}
}

func relevanceTierColor(t ranker.Tier) lipgloss.Color {
	switch t {
	case ranker.TierHigh:
		return colorGreen
	case ranker.TierGood:
		return colorAccent
	case ranker.TierFair:
		return colorYellow
	default:
		return colorRed
	}
}

func chips(items []string, highlight func(string) bool) string {
	if len(items) == 0 {
		return mutedStyle.Render("none")
	}
	out := make([]string, 0, len(items))
	for _, s := range items {
		if highlight != nil && highlight(s) {
			out = append(out, highlightChipStyle.Render(s))
		} else {
			out = append(out, chipStyle.Render(s))
		}
	}
	return strings.Join(out, " ")
}

func divider(label string, width int) string {
	fill := strings.Repeat("─", max(width-lipgloss.Width(label), 3))
	return dividerStyle.Render(label + fill)
}

func wordWrap(text string, width int) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return ""
	}
	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if lipgloss.Width(line)+1+lipgloss.Width(w) <= width {
			line += " " + w
		} else {
			lines = append(lines, line)
			line = w
		}
	}
	lines = append(lines, line)
	return strings.Join(lines, "\n")
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// openURL opens url in the default system browser, fire-and-forget.
func openURL(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "linux":
		cmd = exec.Command("xdg-open", url)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", url)
	default:
		return
	}
	_ = cmd.Start()
}
