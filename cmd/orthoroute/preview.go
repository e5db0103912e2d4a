package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"orthoroute/render"
)

var (
	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#5F5FAF")).
			Padding(0, 1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000")).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00FF00")).
			Bold(true)
)

// copyToClipboard is swapped out in tests.
var copyToClipboard = clipboard.WriteAll

type keyMap struct {
	Left   key.Binding
	Right  key.Binding
	Up     key.Binding
	Down   key.Binding
	Home   key.Binding
	Export key.Binding
	Copy   key.Binding
	Quit   key.Binding
}

var keys = keyMap{
	Left: key.NewBinding(
		key.WithKeys("h", "left", "H", "shift+left"),
		key.WithHelp("←/h", "pan left"),
	),
	Right: key.NewBinding(
		key.WithKeys("l", "right", "L", "shift+right"),
		key.WithHelp("→/l", "pan right"),
	),
	Up: key.NewBinding(
		key.WithKeys("k", "up", "K", "shift+up"),
		key.WithHelp("↑/k", "pan up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down", "J", "shift+down"),
		key.WithHelp("↓/j", "pan down"),
	),
	Home: key.NewBinding(
		key.WithKeys("0"),
		key.WithHelp("0", "reset pan"),
	),
	Export: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "export png"),
	),
	Copy: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "copy json"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Up, k.Down, k.Export, k.Copy, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down, k.Home},
		{k.Export, k.Copy, k.Quit},
	}
}

type preview struct {
	job        *job
	lines      [][]rune
	panX, panY int
	width      int
	height     int
	help       help.Model
	message    string
	messageErr bool
}

func newPreview(j *job) preview {
	p := preview{job: j, help: help.New(), width: 80, height: 24}
	for _, l := range render.Text(j.diagram, j.routes, textScale) {
		p.lines = append(p.lines, []rune(l))
	}
	return p
}

func (m preview) Init() tea.Cmd {
	return nil
}

func (m preview) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Left, keys.Right, keys.Up, keys.Down):
			m.handlePan(msg.String(), moveSpeed(msg.String()))
		case key.Matches(msg, keys.Home):
			m.panX, m.panY = 0, 0
		case key.Matches(msg, keys.Export):
			name := strings.TrimSuffix(filepath.Base(m.job.source), filepath.Ext(m.job.source)) + ".png"
			if err := m.job.exportPNG(name); err != nil {
				m.setMessage(err.Error(), true)
			} else {
				m.setMessage("exported "+m.job.cfg.GetSavePath(name), false)
			}
		case key.Matches(msg, keys.Copy):
			text, err := marshalRoutes(m.job.routes)
			if err == nil {
				err = copyToClipboard(text)
			}
			if err != nil {
				m.setMessage("copy failed: "+err.Error(), true)
			} else {
				m.setMessage(fmt.Sprintf("copied %d routes", m.job.routes.Len()), false)
			}
		}
	}
	return m, nil
}

func (m *preview) setMessage(s string, isErr bool) {
	m.message = s
	m.messageErr = isErr
}

// handlePan moves the viewport over the drawing. Pan offsets never go below
// zero.
func (m *preview) handlePan(k string, speed int) {
	switch k {
	case "h", "left", "H", "shift+left":
		m.panX -= speed
	case "l", "right", "L", "shift+right":
		m.panX += speed
	case "k", "up", "K", "shift+up":
		m.panY -= speed
	case "j", "down", "J", "shift+down":
		m.panY += speed
	}
	m.panX = max(m.panX, 0)
	m.panY = max(m.panY, 0)
}

func moveSpeed(k string) int {
	switch k {
	case "H", "L", "K", "J", "shift+left", "shift+right", "shift+up", "shift+down":
		return 8
	default:
		return 1
	}
}

// viewport returns the visible part of the drawing.
func (m preview) viewport() []string {
	rows := max(m.height-2, 1)
	out := make([]string, 0, rows)
	for y := m.panY; y < m.panY+rows; y++ {
		if y >= len(m.lines) {
			out = append(out, "")
			continue
		}
		line := m.lines[y]
		if m.panX >= len(line) {
			out = append(out, "")
			continue
		}
		end := min(len(line), m.panX+m.width)
		out = append(out, string(line[m.panX:end]))
	}
	return out
}

func (m preview) View() string {
	var b strings.Builder
	b.WriteString(strings.Join(m.viewport(), "\n"))
	b.WriteString("\n")

	status := fmt.Sprintf("%s  %d nodes  %d edges  pan %d,%d",
		filepath.Base(m.job.source), len(m.job.diagram.Nodes()), m.job.routes.Len(), m.panX, m.panY)
	b.WriteString(statusStyle.Render(status))
	b.WriteString(" ")
	switch {
	case m.message == "":
		b.WriteString(m.help.View(keys))
	case m.messageErr:
		b.WriteString(errorStyle.Render(m.message))
	default:
		b.WriteString(successStyle.Render(m.message))
	}
	return b.String()
}
