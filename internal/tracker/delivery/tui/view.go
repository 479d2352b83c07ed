package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"task-tracker/internal/timeline"
	"task-tracker/internal/tracker"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#4A90E2")).
			Padding(0, 1)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7D56F4")).
			MarginTop(1)

	currentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true)

	cursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F7DC6F")).
			Bold(true)

	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFA500"))
	nowStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true)
)

// categoryColors keys the timeline fill by category.
var categoryColors = map[string]lipgloss.Color{
	"会議":  lipgloss.Color("#E74C3C"),
	"作業":  lipgloss.Color("#3498DB"),
	"雑務":  lipgloss.Color("#F1C40F"),
	"その他": lipgloss.Color("#9B59B6"),
	"休憩":  lipgloss.Color("#2ECC71"),
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(m.state.Header))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "%s %s\n",
		currentStyle.Render(fmt.Sprintf("%s＞%s", m.state.Current.Category, m.state.Current.Title)),
		dimStyle.Render(fmt.Sprintf("%s〜 %s", m.state.Current.StartClock, m.state.ElapsedCompact)))

	b.WriteString(sectionStyle.Render("タイムライン"))
	b.WriteString("\n")
	b.WriteString(renderTimeline(m.proj))
	b.WriteString("\n")

	b.WriteString(sectionStyle.Render("タスク"))
	b.WriteString("\n")
	for i, k := range m.kinds {
		line := fmt.Sprintf("%2d. %s＞%s", i, k.Category, k.Title)
		if i == m.cursor && m.focus == focusTasks {
			b.WriteString(cursorStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	if m.mode == modeReserve {
		b.WriteString("\n予約時刻: ")
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}

	b.WriteString(sectionStyle.Render("予約"))
	b.WriteString("\n")
	if len(m.state.Reserving) == 0 {
		b.WriteString(dimStyle.Render("  なし"))
		b.WriteString("\n")
	}
	for i, r := range m.state.Reserving {
		line := fmt.Sprintf("%s %s＞%s", r.Start.Format("15:04"), r.Category, r.Title)
		if i == m.resvCursor && m.focus == focusReservations {
			b.WriteString(cursorStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	b.WriteString(sectionStyle.Render("終了したタスク"))
	b.WriteString("\n")
	b.WriteString(renderFinished(m.state.Finished))

	if len(m.state.Totals) > 0 {
		b.WriteString(sectionStyle.Render("合計"))
		b.WriteString("\n")
		for _, t := range m.state.Totals {
			fmt.Fprintf(&b, "  %s %s\n", colored(t.Category).Render("■"), fmt.Sprintf("%s %s", t.Category, formatTotal(t)))
		}
	}

	b.WriteString("\n")
	b.WriteString(statusStyle.Render(m.status))
	b.WriteString("\n")
	return b.String()
}

// renderTimeline draws one cell per pixel unit of proj: an hour ruler, the task bars and the reservation and now markers.
func renderTimeline(proj timeline.Projection) string {
	width := int(proj.Width)
	if width <= 0 {
		return ""
	}

	ruler := []rune(strings.Repeat(" ", width))
	for _, g := range proj.Gridlines {
		label := []rune(fmt.Sprintf("%d", g.Hour))
		x := cell(g.X, width)
		for i, r := range label {
			if x+i < width {
				ruler[x+i] = r
			}
		}
	}

	bars := make([]string, width)
	for x := range bars {
		bars[x] = dimStyle.Render("·")
	}
	// Later bars paint over earlier ones, as the list is current-first.
	for _, bar := range proj.Bars {
		from, to := cell(bar.Left, width), cell(bar.Right, width)
		for x := from; x <= to && x < width; x++ {
			bars[x] = colored(bar.Category).Render("█")
		}
	}

	markers := []rune(strings.Repeat(" ", width))
	for _, r := range proj.Reservations {
		markers[cell(r.X, width)] = '▲'
	}
	nowX := cell(proj.NowX, width)
	markers[nowX] = '|'

	var b strings.Builder
	b.WriteString(dimStyle.Render(string(ruler)))
	b.WriteString("\n")
	b.WriteString(strings.Join(bars, ""))
	b.WriteString("\n")
	b.WriteString(nowStyle.Render(string(markers)))
	b.WriteString("\n")
	return b.String()
}

func renderFinished(rows []tracker.TaskView) string {
	if len(rows) == 0 {
		return dimStyle.Render("  なし") + "\n"
	}
	var b strings.Builder
	for i := len(rows) - 1; i >= 0; i-- {
		r := rows[i]
		fmt.Fprintf(&b, "  %s %s-%s %s %s＞%s\n",
			colored(r.Category).Render("■"), r.StartClock, r.FinishClock, r.DurationClock, r.Category, r.Title)
	}
	return b.String()
}

func formatTotal(t tracker.CategoryTotal) string {
	h := int(t.Duration.Hours())
	m := int(t.Duration.Minutes()) % 60
	return fmt.Sprintf("%d:%02d", h, m)
}

func colored(category string) lipgloss.Style {
	c, ok := categoryColors[category]
	if !ok {
		c = lipgloss.Color("#BBBBBB")
	}
	return lipgloss.NewStyle().Foreground(c)
}

// cell clamps a projected x into [0, width).
func cell(x float64, width int) int {
	i := int(math.Floor(x))
	if i < 0 {
		return 0
	}
	if i >= width {
		return width - 1
	}
	return i
}
