package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/gitroast/pkg/roast"
)

var (
	viewerHelpStyle   = lipgloss.NewStyle().Foreground(colorDim)
	viewerAspectStyle = lipgloss.NewStyle().Bold(true).Foreground(colorYellow)
	viewerBoxStyle    = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorCyan).
				Padding(1, 2)
)

// roastViewer pages through roasts one at a time. Paging wraps around in
// both directions.
type roastViewer struct {
	title  string
	roasts []roast.Roast
	index  int
	width  int
}

func newRoastViewer(title string, roasts []roast.Roast) roastViewer {
	return roastViewer{title: title, roasts: roasts, width: roastWidth + 8}
}

func (m roastViewer) Init() tea.Cmd {
	return nil
}

func (m roastViewer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "right", "l", "n", " ", "tab":
			return m.next(), nil
		case "left", "h", "p", "shift+tab":
			return m.prev(), nil
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
	}
	return m, nil
}

func (m roastViewer) next() roastViewer {
	if n := len(m.roasts); n > 0 {
		m.index = (m.index + 1) % n
	}
	return m
}

func (m roastViewer) prev() roastViewer {
	if n := len(m.roasts); n > 0 {
		m.index = (m.index - 1 + n) % n
	}
	return m
}

// position is the "i of n" indicator.
func (m roastViewer) position() string {
	return fmt.Sprintf("%d of %d", m.index+1, len(m.roasts))
}

func (m roastViewer) View() string {
	var b strings.Builder
	b.WriteString(StyleTitle.Render(m.title))
	b.WriteString("\n")
	b.WriteString(viewerHelpStyle.Render("←/→ previous/next  q quit"))
	b.WriteString("\n\n")

	if len(m.roasts) == 0 {
		b.WriteString(StyleDim.Render("No roasts to show."))
		return b.String()
	}

	width := min(max(m.width-6, 20), roastWidth)
	r := m.roasts[m.index]
	content := viewerAspectStyle.Render(r.Aspect) + "\n" +
		StyleDim.Render("winner ") + StyleWinner.Render(r.Winner) +
		StyleDim.Render("  roasted ") + StyleLoser.Render(r.Loser) + "\n\n" +
		lipgloss.NewStyle().Width(width).Render(r.Roast)

	b.WriteString(viewerBoxStyle.Render(content))
	b.WriteString("\n\n")
	b.WriteString(viewerHelpStyle.Render("  [" + m.position() + "]"))
	return b.String()
}
