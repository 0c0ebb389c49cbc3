package main

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/brensch/snekwrap/render"
	"github.com/brensch/snekwrap/sim"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	deathStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("160"))
	helpStyle   = lipgloss.NewStyle().Faint(true)
)

// tickMsg carries the generation it was scheduled in so ticks from before a
// pause are dropped.
type tickMsg struct {
	gen int
	at  time.Time
}

type model struct {
	sim    *sim.Simulation
	delay  time.Duration
	record func(*sim.Simulation, sim.TickResult) error

	gen     int
	paused  bool
	done    bool
	eaten   int
	last    sim.TickResult
	err     error
	started time.Time
}

func newModel(s *sim.Simulation, delay time.Duration, record func(*sim.Simulation, sim.TickResult) error) model {
	return model{
		sim:     s,
		delay:   delay,
		record:  record,
		last:    sim.TickResult{Alive: true},
		started: time.Now(),
	}
}

func (m model) tickCmd() tea.Cmd {
	gen := m.gen
	delay := m.delay
	if delay <= 0 {
		delay = time.Millisecond
	}
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return tickMsg{gen: gen, at: t}
	})
}

func (m model) Init() tea.Cmd {
	return m.tickCmd()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ", "p":
			if m.done {
				return m, nil
			}
			m.paused = !m.paused
			m.gen++
			if !m.paused {
				return m, m.tickCmd()
			}
		case "n":
			if m.paused && !m.done {
				m = m.step()
			}
		}
	case tickMsg:
		if msg.gen != m.gen || m.paused || m.done {
			return m, nil
		}
		m = m.step()
		if m.done {
			return m, nil
		}
		return m, m.tickCmd()
	}
	return m, nil
}

func (m model) step() model {
	res := m.sim.Tick()
	m.last = res
	if res.AteFood {
		m.eaten++
	}
	if m.record != nil {
		if err := m.record(m.sim, res); err != nil {
			m.err = fmt.Errorf("record tick: %w", err)
			m.done = true
			return m
		}
	}
	if limit := m.sim.Config().MaxTicks; !res.Alive || (limit > 0 && m.sim.Turn() >= limit) {
		m.done = true
	}
	return m
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("snekwrap · %s", m.sim.Strategy().Name())))
	b.WriteString("\n")
	b.WriteString(render.Styled(m.sim.State(), m.sim.Alive()))
	b.WriteString("\n")

	b.WriteString(statusStyle.Render(fmt.Sprintf("turn %d  length %d  food %v  eaten %d  elapsed %s",
		m.sim.Turn(), len(m.sim.Body()), m.sim.Food(), m.eaten, time.Since(m.started).Round(time.Second))))
	b.WriteString("\n")

	switch {
	case m.err != nil:
		b.WriteString(deathStyle.Render(m.err.Error()))
	case !m.last.Alive:
		line := fmt.Sprintf("dead: final length %d, age %d", m.last.FinalLength, m.last.Age())
		if m.last.NoSafeMove {
			line += " (boxed in)"
		}
		b.WriteString(deathStyle.Render(line))
	case m.done:
		b.WriteString(statusStyle.Render("tick limit reached"))
	case m.paused:
		b.WriteString(statusStyle.Render("paused"))
	}
	b.WriteString("\n")

	b.WriteString(helpStyle.Render("space pause · n step · q quit"))
	b.WriteString("\n")
	return b.String()
}
