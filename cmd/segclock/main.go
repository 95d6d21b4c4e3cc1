// Command segclock shows the current time as seven-segment digits in the
// terminal, redrawing once per second. Press q or ctrl+c to quit.
package main

import (
	"fmt"
	"image"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gogpu/sevenseg"
)

const (
	cellWidth  = 9
	cellHeight = 9
)

var digitStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))

type tickMsg time.Time

func doTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

type model struct {
	font *sevenseg.Font[bool]
	now  time.Time
}

func newModel() model {
	return model{
		font: sevenseg.New(cellWidth, cellHeight, true),
		now:  time.Now(),
	}
}

func (m model) Init() tea.Cmd {
	return doTick()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.now = time.Time(msg)
		return m, doTick()
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m model) View() string {
	// The font only knows digits and '.', so the clock uses dots as
	// separators instead of colons.
	text := m.now.Format("15.04.05")

	metrics := m.font.MeasureString(text, image.Pt(0, 0), sevenseg.BaselineTop)
	grid := newGrid(metrics.BoundingBox.Dx(), m.font.LineHeight())
	if _, err := m.font.DrawString(grid, text, image.Pt(0, 0), sevenseg.BaselineTop); err != nil {
		return err.Error()
	}

	var b strings.Builder
	b.WriteString("\n")
	for y := 0; y < grid.h; y++ {
		b.WriteString("  ")
		var row strings.Builder
		for x := 0; x < grid.w; x++ {
			if grid.at(x, y) {
				row.WriteString("██")
			} else {
				row.WriteString("  ")
			}
		}
		b.WriteString(digitStyle.Render(row.String()))
		b.WriteString("\n")
	}
	b.WriteString("\n  q to quit\n")
	return b.String()
}

// grid is a terminal-cell drawing surface: one boolean per pixel,
// rendered as double-width blocks.
type grid struct {
	w, h int
	pix  []bool
}

func newGrid(w, h int) *grid {
	return &grid{w: w, h: h, pix: make([]bool, w*h)}
}

func (g *grid) Bounds() image.Rectangle {
	return image.Rect(0, 0, g.w, g.h)
}

func (g *grid) SetPixel(x, y int, on bool) error {
	if x < 0 || y < 0 || x >= g.w || y >= g.h {
		return nil
	}
	if on {
		g.pix[y*g.w+x] = true
	}
	return nil
}

func (g *grid) at(x, y int) bool {
	return g.pix[y*g.w+x]
}

func main() {
	if _, err := tea.NewProgram(newModel()).Run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
