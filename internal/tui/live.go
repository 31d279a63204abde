// Package tui animates a simulated response in the terminal.
package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/controlsim/internal/sim"
)

const (
	chartWidth  = 70
	chartHeight = 14
)

var (
	frameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)
	titleStyle = lipgloss.NewStyle().Bold(true)
	hintStyle  = lipgloss.NewStyle().Faint(true)
)

type tickMsg time.Time

type model struct {
	resp  *sim.Response
	title string
	idx   int
	done  bool
}

// Run plays the response series as a growing chart until the series is
// exhausted or the user quits.
func Run(resp *sim.Response, title string) error {
	m := model{resp: resp, title: title, idx: 2}
	_, err := tea.NewProgram(m).Run()
	return err
}

func tick() tea.Cmd {
	return tea.Tick(50*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m model) Init() tea.Cmd {
	return tick()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	case tickMsg:
		if m.done {
			return m, nil
		}
		stride := m.resp.Len() / 100
		if stride < 1 {
			stride = 1
		}
		m.idx += stride
		if m.idx >= m.resp.Len() {
			m.idx = m.resp.Len()
			m.done = true
			return m, nil
		}
		return m, tick()
	}
	return m, nil
}

func (m model) View() string {
	if m.idx < 2 {
		return ""
	}
	chart := asciigraph.Plot(m.resp.Values[:m.idx],
		asciigraph.Width(chartWidth),
		asciigraph.Height(chartHeight),
	)
	t := m.resp.Times[m.idx-1]
	status := fmt.Sprintf("t = %.3f   y = %.4f", t, m.resp.Values[m.idx-1])
	if m.done {
		status += "   (finished)"
	}
	return frameStyle.Render(
		titleStyle.Render(m.title)+"\n"+chart+"\n"+status,
	) + "\n" + hintStyle.Render("q to quit") + "\n"
}
