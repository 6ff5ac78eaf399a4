package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"kanacombo/internal/rows"
)

var (
	headerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#00983A"))
	placeholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")).Italic(true)
	selectedStyle    = lipgloss.NewStyle().Reverse(true)
)

// PopupComponent renders a scrolling window over control rows.
type PopupComponent struct {
	rows     []rows.Row
	items    []int
	selected int
	current  int
	height   int
	width    int
}

// NewPopupComponent creates a popup over items, which index into rs.
// selected is a position in items and current a row index, either may be -1.
func NewPopupComponent(rs []rows.Row, items []int, selected, current, maxVisible, width int) PopupComponent {
	if maxVisible < 1 {
		maxVisible = 1
	}
	height := min(len(items), maxVisible)

	return PopupComponent{
		rows:     rs,
		items:    items,
		selected: selected,
		current:  current,
		height:   height,
		width:    width,
	}
}

// Window returns the half-open range of item positions on screen.
func (c PopupComponent) Window() (int, int) {
	startIdx := 0
	endIdx := len(c.items)

	if len(c.items) > c.height {
		// Scroll to keep selected item visible
		if c.selected >= c.height {
			startIdx = c.selected - c.height + 1
		}
		endIdx = startIdx + c.height
		if endIdx > len(c.items) {
			endIdx = len(c.items)
			startIdx = endIdx - c.height
		}
	}
	return startIdx, endIdx
}

func (c PopupComponent) Render() string {
	if len(c.items) == 0 || c.width < 6 {
		return ""
	}
	inner := c.width - 2

	startIdx, endIdx := c.Window()
	border := strings.Repeat("─", inner)

	var b strings.Builder
	b.WriteString("┌" + border + "┐\n")
	for pos := startIdx; pos < endIdx; pos++ {
		b.WriteString("│" + c.renderLine(pos, inner) + "│\n")
	}
	b.WriteString("└" + border + "┘")
	return b.String()
}

func (c PopupComponent) renderLine(pos, width int) string {
	idx := c.items[pos]
	row := c.rows[idx]

	marker := "  "
	if idx == c.current {
		marker = "✓ "
	}
	if pos == c.selected {
		marker = "> "
	}
	textWidth := width - runewidth.StringWidth(marker)

	var text string
	switch row.(type) {
	case rows.Header:
		text = headerStyle.Render(tailFit(row.Text(), textWidth))
	case rows.Placeholder:
		text = placeholderStyle.Render(fit(row.Text(), textWidth))
	default:
		text = fit(row.Text(), textWidth)
	}

	line := marker + text
	if pos == c.selected {
		return selectedStyle.Render(line)
	}
	return line
}

func (c PopupComponent) Height() int {
	if len(c.items) == 0 {
		return 0
	}
	return c.height + 2 // +2 for borders
}

// fit truncates s to width cells and pads it on the right.
func fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.FillRight(runewidth.Truncate(s, width, "…"), width)
}

// tailFit keeps the end of s, so long header rules still show their label.
func tailFit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	r := []rune(s)
	start := len(r)
	used := 0
	for start > 0 {
		w := runewidth.RuneWidth(r[start-1])
		if used+w > width {
			break
		}
		used += w
		start--
	}
	return runewidth.FillRight(string(r[start:]), width)
}
