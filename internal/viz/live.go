package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/automaton/internal/grid"
	"github.com/san-kum/automaton/internal/session"
	"github.com/san-kum/automaton/internal/snapshot"
)

const (
	defaultWidth  = 100
	defaultHeight = 40
	panelWidth    = 44
	graphPoints   = 30
)

type TickMsg time.Time

// Model drives a session from Bubble Tea ticks and renders it as text.
type Model struct {
	session  *session.Session
	painter  *cellPainter
	theme    Theme
	styles   styles
	width    int
	height   int
	showHelp bool
	status   string
	err      error
}

// NewModel wraps s for a Bubble Tea program styled with the named theme.
func NewModel(s *session.Session, theme string) Model {
	t := GetTheme(theme)
	return Model{
		session: s,
		painter: newCellPainter(s.Palette()),
		theme:   t,
		styles:  newStyles(t),
		width:   defaultWidth,
		height:  defaultHeight,
	}
}

// Err returns the failure that ended the program, if any.
func (m Model) Err() error { return m.err }

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.session.Delay(), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd { return m.tick() }

// Update handles input events and steps the simulation.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.session.Handle(session.Quit)
			return m, tea.Quit
		case "p", " ":
			m.session.Handle(session.TogglePause)
		case "up", "k":
			m.session.Handle(session.SpeedUp)
		case "down", "j":
			m.session.Handle(session.SlowDown)
		case "n":
			if m.session.Paused() {
				if err := m.session.Advance(); err != nil {
					m.err = err
					return m, tea.Quit
				}
			}
		case "s":
			if err := m.saveNow(); err != nil {
				m.err = err
				return m, tea.Quit
			}
		case "t":
			m.theme = NextTheme(m.theme.Name)
			m.styles = newStyles(m.theme)
		case "?":
			m.showHelp = !m.showHelp
		}
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case TickMsg:
		if err := m.session.Tick(); err != nil {
			m.err = err
			return m, tea.Quit
		}
		return m, m.tick()
	}
	return m, nil
}

// saveNow writes the current generation to the configured snapshot path. A
// write failure is fatal to the program.
func (m *Model) saveNow() error {
	path := m.session.Config().Snapshots.Path
	if path == "" {
		m.status = "no snapshot path configured"
		return nil
	}
	if err := snapshot.Write(m.session.Grid(), path); err != nil {
		m.status = err.Error()
		return err
	}
	m.status = fmt.Sprintf("saved generation %d to %s", m.session.Generation(), path)
	return nil
}

func (m Model) View() string {
	cols := max(m.width-panelWidth, 1)
	rows := max(m.height-1, 1)

	var cells string
	m.session.Grid().Read(func(b grid.Buffer) {
		cells = m.painter.Render(b, cols, rows)
	})

	return lipgloss.JoinHorizontal(lipgloss.Top, cells, m.styles.panel.Render(m.panel()))
}

func (m Model) panel() string {
	s := m.session
	cfg := s.Config()

	var b strings.Builder
	b.WriteString(m.styles.header.Render(strings.ToUpper(s.Rule().Name())) + "\n")

	switch {
	case m.err != nil:
		b.WriteString(m.styles.failed.Render("FAILED") + "\n\n")
	case s.Paused():
		b.WriteString(m.styles.paused.Render("PAUSED") + "\n\n")
	default:
		b.WriteString(m.styles.running.Render("RUNNING") + "\n\n")
	}

	row := func(label, value string) {
		b.WriteString(m.styles.label.Render(label) + m.styles.value.Render(value) + "\n")
	}
	row("Generation", fmt.Sprintf("%d", s.Generation()))
	row("Grid", fmt.Sprintf("%dx%d", cfg.Width, cfg.Height))
	row("States", fmt.Sprintf("%d", cfg.States))
	row("Delay", s.Delay().String())
	row("Snapshots", fmt.Sprintf("%d", s.Snapshots().Writes()))

	if activity := s.Activity(); len(activity) > 1 {
		if len(activity) > graphPoints {
			activity = activity[len(activity)-graphPoints:]
		}
		chart := asciigraph.Plot(activity,
			asciigraph.Height(5),
			asciigraph.Width(graphPoints),
			asciigraph.Caption("changed cells"))
		b.WriteString(m.styles.graph.Render(chart) + "\n")
	}

	if m.status != "" {
		b.WriteString(m.styles.value.Render(m.status) + "\n")
	}

	if m.showHelp {
		b.WriteString(m.styles.help.Render(strings.Join([]string{
			"P/Space  pause",
			"Up/K     faster",
			"Down/J   slower",
			"N        step (paused)",
			"S        snapshot",
			"T        theme",
			"Esc/Q    quit",
		}, "\n")))
	} else {
		b.WriteString(m.styles.help.Render("?:Help  P:Pause  Q:Quit"))
	}
	return b.String()
}

// Run drives s in the terminal until the user quits or a step or snapshot
// fails.
func Run(s *session.Session, theme string) error {
	p := tea.NewProgram(NewModel(s, theme), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(Model); ok {
		return m.Err()
	}
	return nil
}
