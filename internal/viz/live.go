package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/drainsim/internal/drain"
)

const (
	tankRows        = 12
	tankCols        = 40
	historyCapacity = 600

	// Simulated seconds advanced per frame. Drain times run to minutes,
	// so the view plays faster than real time.
	simPerTick = 0.5
)

type TickMsg time.Time

// Model steps a drainage between frames and draws the tank
// cross-section with the falling water line.
type Model struct {
	bucket  *drain.Bucket
	stepper *drain.Stepper
	dt      float64
	history []float64
	running bool
}

func NewModel(bucket *drain.Bucket, dt float64) Model {
	return Model{
		bucket:  bucket,
		stepper: bucket.Stepper(),
		dt:      dt,
		history: make([]float64, 0, historyCapacity),
		running: true,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.stepper = m.bucket.Stepper()
			m.history = m.history[:0]
			m.running = true
		}
	case TickMsg:
		if m.running && !m.stepper.Done() {
			steps := int(simPerTick / m.dt)
			if steps < 1 {
				steps = 1
			}
			for i := 0; i < steps && !m.stepper.Done(); i++ {
				m.stepper.Step(m.dt)
			}
			m.history = append(m.history, m.stepper.Height())
			if len(m.history) > historyCapacity {
				m.history = m.history[1:]
			}
		}
		return m, tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("drainsim live"))
	b.WriteString("\n")

	tank := m.renderTank()
	stats := m.renderStats()
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tank, stats))
	b.WriteString("\n")

	if len(m.history) > 1 {
		graph := asciigraph.Plot(m.history,
			asciigraph.Height(8),
			asciigraph.Width(70),
			asciigraph.Caption("water height (m)"),
		)
		b.WriteString(graphStyle.Render(graph))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("space pause · r reset · q quit"))
	b.WriteString("\n")

	return b.String()
}

// renderTank draws the frustum cross-section, one row per height band,
// filled below the current water line.
func (m Model) renderTank() string {
	geom := m.bucket.Geometry()
	height := geom.Height()
	waterLine := m.stepper.Height()

	var b strings.Builder
	for row := 0; row < tankRows; row++ {
		// Band center, top row first.
		level := height * (1 - (float64(row)+0.5)/tankRows)
		r := geom.RadiusAt(level)

		half := int(math.Round(r / geom.R1() * tankCols / 2))
		if half < 1 {
			half = 1
		}
		pad := tankCols/2 - half

		fill := " "
		if level <= waterLine {
			fill = "█"
		}

		b.WriteString(strings.Repeat(" ", pad+1))
		b.WriteString(wallStyle.Render("\\"))
		b.WriteString(waterStyle.Render(strings.Repeat(fill, 2*half)))
		b.WriteString(wallStyle.Render("/"))
		b.WriteString("\n")
	}

	bottom := int(math.Round(geom.R2() / geom.R1() * tankCols))
	if bottom < 2 {
		bottom = 2
	}
	b.WriteString(strings.Repeat(" ", (tankCols-bottom)/2+2))
	b.WriteString(wallStyle.Render(strings.Repeat("‾", bottom)))
	b.WriteString("\n")

	return b.String()
}

func (m Model) renderStats() string {
	geom := m.bucket.Geometry()

	percent := 0.0
	if geom.Height() > 0 {
		percent = m.stepper.Height() / geom.Height() * 100
	}

	rows := []string{
		labelStyle.Render("time") + valueStyle.Render(fmt.Sprintf("%8.1f s", m.stepper.Time())),
		labelStyle.Render("height") + valueStyle.Render(fmt.Sprintf("%8.4f m", m.stepper.Height())),
		labelStyle.Render("outflow") + valueStyle.Render(fmt.Sprintf("%8.6f m³/s", m.stepper.Rate())),
		labelStyle.Render("full") + valueStyle.Render(fmt.Sprintf("%8.1f %%", percent)),
		labelStyle.Render("fluid") + valueStyle.Render(m.bucket.Flow().Fluid().Name),
		labelStyle.Render("cd") + valueStyle.Render(fmt.Sprintf("%8.2f", m.bucket.Flow().Cd())),
	}

	if m.stepper.Done() {
		rows = append(rows, "", doneStyle.Render(m.stepper.Reason().String()))
	} else if !m.running {
		rows = append(rows, "", doneStyle.Render("paused"))
	}

	return statsStyle.Render(strings.Join(rows, "\n"))
}
