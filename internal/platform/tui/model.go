package tui

import (
	"errors"
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/leapengine/internal/loop"
)

// footerRows is the space below the frame: status line and help.
const footerRows = 2

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

// Model is the Bubble Tea model driving a frame loop.
type Model struct {
	loop     *loop.Loop
	surface  *Surface
	keys     KeyMap
	help     help.Model
	tickRate int
	logger   *log.Logger
	shotDir  string
	err      error
	quitting bool
}

// NewModel creates a model for l, which must present to surface.
func NewModel(l *loop.Loop, surface *Surface, tickRate int, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return Model{
		loop:     l,
		surface:  surface,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		tickRate: tickRate,
		logger:   logger,
		shotDir:  filepath.Join(os.Getenv("HOME"), ".leap", "screenshots"),
	}
}

// WithScreenshotDir returns a copy of m that saves screenshots into dir.
func (m Model) WithScreenshotDir(dir string) Model {
	m.shotDir = dir
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.surface.Resize(msg.Width, msg.Height-footerRows)
		m.help.Width = msg.Width
		m.logger.Debug("terminal resized", "cols", msg.Width, "rows", msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.surface.Close()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Shot):
		path, err := m.saveScreenshot()
		if err != nil {
			m.logger.Warn("screenshot failed", "err", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	for _, in := range m.keys.Inputs(msg) {
		m.surface.Press(in)
	}
	return m, nil
}

// handleTick runs one frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	err := m.loop.Step()
	switch {
	case err == nil:
		return m, tickCmd(m.tickRate)
	case errors.Is(err, loop.ErrStopped):
		m.logger.Info("loop stopped", "frames", m.loop.Frame())
	default:
		m.logger.Error("loop aborted", "frames", m.loop.Frame(), "err", err)
		m.err = err
	}
	m.quitting = true
	return m, tea.Quit
}

// saveScreenshot writes the last full-resolution frame as PNG.
func (m Model) saveScreenshot() (string, error) {
	if err := os.MkdirAll(m.shotDir, 0o755); err != nil {
		return "", fmt.Errorf("tui: screenshot dir: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405.000")
	path := filepath.Join(m.shotDir, fmt.Sprintf("%s_%s.png", m.loop.Scene().ID(), timestamp))

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("tui: screenshot: %w", err)
	}
	if err := png.Encode(f, m.loop.Buffer().Image()); err != nil {
		f.Close()
		return "", fmt.Errorf("tui: screenshot: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("tui: screenshot: %w", err)
	}
	return path, nil
}

// View renders the last frame with a status line and help.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	res := m.loop.Last()
	p := res.Player
	status := statusStyle.Render(fmt.Sprintf("%s | %s | x=%.1f y=%.1f vy=%.2f | frame %d",
		m.loop.Scene().Title(), p.Phase, p.X, p.Y, p.VelocityY, res.Frame))

	return m.surface.Frame() + "\n" + status + "\n" + m.help.View(m.keys)
}

// Err returns the error that ended the session, if any.
func (m Model) Err() error {
	return m.err
}

// Run starts the Bubble Tea program and blocks until the loop stops.
func Run(l *loop.Loop, surface *Surface, tickRate int, logger *log.Logger) error {
	model := NewModel(l, surface, tickRate, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	if fm, ok := final.(Model); ok {
		return fm.Err()
	}
	return nil
}
