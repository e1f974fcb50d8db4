package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/ortfo/gui/pkg/core/blocks"
	"github.com/ortfo/gui/pkg/core/content"
	"github.com/ortfo/gui/pkg/core/layout"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// LanguageListModel - Interactive language selection
// =============================================================================

// LanguageListModel is the bubbletea model for picking the language to
// preview.
type LanguageListModel struct {
	Languages []string
	Counts    map[string]int
	Cursor    int
	Selected  string
}

// NewLanguageListModel creates a language list for the blocks of t.
func NewLanguageListModel(t content.Translated[blocks.Block]) LanguageListModel {
	counts := make(map[string]int, len(t))
	for lang, items := range t {
		counts[lang] = len(items)
	}
	return LanguageListModel{Languages: t.Languages(), Counts: counts}
}

func (m LanguageListModel) Init() tea.Cmd {
	return nil
}

func (m LanguageListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(m.Languages)-1 {
				m.Cursor++
			}
		case "enter":
			if len(m.Languages) == 0 {
				return m, tea.Quit
			}
			m.Selected = m.Languages[m.Cursor]
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m LanguageListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Language"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	for i, lang := range m.Languages {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		line := fmt.Sprintf("%s%-12s %s", cursor, lang, listDimStyle.Render(plural(m.Counts[lang], "block")))
		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// =============================================================================
// Grid Preview
// =============================================================================

// gridCells returns, for each cell of a grid of the given row capacity, the
// block covering it. Uncovered cells are nil.
func gridCells(items []blocks.Block, capacity int) [][]*blocks.Block {
	height := 0
	for _, b := range items {
		if p, ok := b.Placement(capacity); ok && p.Y+p.H > height {
			height = p.Y + p.H
		}
	}

	cells := make([][]*blocks.Block, height)
	for y := range cells {
		cells[y] = make([]*blocks.Block, capacity)
	}
	for i := range items {
		p, ok := items[i].Placement(capacity)
		if !ok {
			continue
		}
		for y := p.Y; y < p.Y+p.H; y++ {
			for x := p.X; x < p.X+p.W && x < capacity; x++ {
				cells[y][x] = &items[i]
			}
		}
	}
	return cells
}

// renderGrid draws the blocks of one language as a table of block ids.
func renderGrid(items []blocks.Block, capacity int) string {
	cells := gridCells(items, capacity)

	rows := make([][]string, len(cells))
	for y, row := range cells {
		rows[y] = make([]string, len(row))
		for x, b := range row {
			if b == nil {
				rows[y][x] = "·"
				continue
			}
			rows[y][x] = b.ID.String()
		}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		BorderRow(true).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Padding(0, 1)
			if row < 0 || row >= len(cells) || col >= len(cells[row]) {
				return base
			}
			b := cells[row][col]
			if b == nil {
				return base.Foreground(colorDim)
			}
			switch b.ID.Kind {
			case layout.KindMedia:
				return base.Inherit(styleMedia)
			case layout.KindLink:
				return base.Inherit(styleLink)
			}
			return base.Inherit(styleParagraph)
		})

	return t.Render()
}
