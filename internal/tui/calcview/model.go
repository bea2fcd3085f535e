// ============================================================================
// mCalc - Terminal-Taschenrechner
// ============================================================================
//
// Package:     calcview
// Description: Main Bubbletea model for the mCalc calculator
// Author:      Mike Stoffels
// Created:     2025-12-19
// License:     MIT
// ============================================================================

// Package calcview is the terminal user interface of mCalc: display,
// keypad, help bar and the christmas overlay.
package calcview

import (
	"context"
	"math/rand"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	calc "github.com/msto63/mCalc/internal/calculator"
	"github.com/msto63/mCalc/internal/easteregg"
	"github.com/msto63/mCalc/pkg/core/config"
	"github.com/msto63/mCalc/pkg/core/logging"
	"github.com/msto63/mCalc/pkg/core/version"
)

// flashDuration is how long a pressed key stays highlighted
const flashDuration = 150 * time.Millisecond

// Model is the main Bubbletea model for the calculator
type Model struct {
	// State
	width  int
	height int
	state  calc.State

	// Pressed key highlight
	pressed  string
	pressSeq int

	// Easter egg
	eggStart  time.Time
	eggGen    int
	particles []easteregg.Particle

	// Components
	keys   keyMap
	help   help.Model
	styles Styles

	// Configuration
	cfg     *config.Config
	verbose bool
	logger  *logging.Logger
	rng     *rand.Rand
	now     func() time.Time
}

// Options configures a calculator model
type Options struct {
	Config     *config.Config
	ConfigPath string
	Watch      bool
	Logger     *logging.Logger

	// Verbose keeps debug logging when a reloaded config names another level
	Verbose bool

	// Rand and Now are replaced in tests
	Rand *rand.Rand
	Now  func() time.Time
}

// New creates a new calculator model
func New(opts Options) Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Nop()
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	h := help.New()
	h.Styles.ShortKey = h.Styles.ShortKey.Foreground(lipgloss.Color(cfg.Theme.OperatorBg))
	h.Styles.FullKey = h.Styles.FullKey.Foreground(lipgloss.Color(cfg.Theme.OperatorBg))

	return Model{
		state:  calc.New(),
		keys:   defaultKeyMap(),
		help:   h,
		styles: NewStyles(cfg.Theme),
		cfg:     cfg,
		verbose: opts.Verbose,
		logger:  logger.With("component", "tui"),
		rng:     rng,
		now:     now,
	}
}

// State returns the calculator state
func (m Model) State() calc.State {
	return m.state
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	m.logger.Info("Calculator started", "version", version.App)
	return nil
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case frameMsg:
		if msg.gen != m.eggGen || !m.state.EasterEgg {
			return m, nil
		}
		return m, m.frameTick()

	case releaseMsg:
		if msg.seq == m.pressSeq {
			m.pressed = ""
		}

	case ConfigReloadedMsg:
		if msg.Config != nil {
			m.cfg = msg.Config
			m.styles = NewStyles(msg.Config.Theme)
			m.help.Styles.ShortKey = m.help.Styles.ShortKey.Foreground(lipgloss.Color(msg.Config.Theme.OperatorBg))
			m.help.Styles.FullKey = m.help.Styles.FullKey.Foreground(lipgloss.Color(msg.Config.Theme.OperatorBg))
			if !m.verbose {
				m.logger.SetLevel(msg.Config.General.LogLevel)
			}
			m.logger.Info("Theme updated")
		}
	}

	return m, nil
}

// handleKeyPress handles keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	// The overlay takes all input until it is dismissed
	if m.state.EasterEgg {
		if key.Matches(msg, overlayKeys) {
			m.dismissEasterEgg()
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action, ok := calc.KeyAction(msg.String())
	if !ok {
		return m, nil
	}
	return m.press(action)
}

// handleMouse dispatches left clicks to the keypad or the overlay button
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	if m.state.EasterEgg {
		if m.onCardButton(msg.X, msg.Y) {
			m.dismissEasterEgg()
		}
		return m, nil
	}

	b, ok := m.buttonAt(msg.X, msg.Y)
	if !ok {
		return m, nil
	}
	return m.press(b.action)
}

// press runs an action and flashes its key
func (m Model) press(action calc.Action) (tea.Model, tea.Cmd) {
	before := m.state
	m.state = m.apply(action)

	if m.state.EasterEgg && !before.EasterEgg {
		return m, m.openEasterEgg()
	}

	label := ""
	for _, b := range keypad {
		if b.action == action {
			label = b.label
			break
		}
	}
	if label == "" {
		return m, nil
	}

	m.pressSeq++
	m.pressed = label
	seq := m.pressSeq
	return m, tea.Tick(flashDuration, func(time.Time) tea.Msg {
		return releaseMsg{seq: seq}
	})
}

// apply feeds an action into the reducer and logs the outcome
func (m Model) apply(action calc.Action) calc.State {
	before := m.state

	var next calc.State
	if action.Kind == calc.ActionEquals && !m.cfg.EasterEgg.Enabled {
		next = before.Resolve()
	} else {
		next = before.Apply(action)
	}

	m.logger.Debug("Key pressed", "key", action.String(), "display", next.Current)

	switch {
	case next.EasterEgg && !before.EasterEgg:
		m.logger.Info("Easter egg activated")
	case next.Current == calc.ErrorDisplay && before.HasPending() && next.IsResult:
		m.logger.Warn("Division by zero",
			"dividend", before.Previous,
			"divisor", before.Current)
	case action.Kind == calc.ActionEquals && before.HasPending():
		m.logger.Info("Calculation",
			"expression", before.PendingLine()+" "+calc.FormatDisplay(before.Current),
			"result", next.Current)
	}

	return next
}

// openEasterEgg starts the overlay animation
func (m *Model) openEasterEgg() tea.Cmd {
	m.eggGen++
	m.eggStart = m.now()
	m.particles = easteregg.Generate(m.rng, m.cfg.EasterEgg.IconCount)
	m.pressed = ""
	return m.frameTick()
}

// dismissEasterEgg closes the overlay and resets the calculator
func (m *Model) dismissEasterEgg() {
	m.state = m.state.Apply(calc.DismissEasterEgg)
	m.eggGen++
	m.eggStart = time.Time{}
	m.particles = nil
	m.logger.Info("Easter egg dismissed")
}

func (m Model) frameTick() tea.Cmd {
	gen := m.eggGen
	return tea.Tick(m.cfg.EasterEgg.FrameInterval.Duration, func(t time.Time) tea.Msg {
		return frameMsg{gen: gen, at: t}
	})
}

// View renders the UI
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Starte mCalc..."
	}

	if m.state.EasterEgg {
		return m.renderOverlay()
	}

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
		m.renderBody(geometryFor(m.height)))
}

// renderBody renders the calculator without centering
func (m Model) renderBody(g keyGeometry) string {
	title := lipgloss.JoinHorizontal(lipgloss.Bottom,
		m.styles.Title.Render(Logo),
		" ",
		m.styles.PendingLine.UnsetBackground().Render("v"+version.App),
	)

	parts := []string{
		title,
		m.renderDisplay(g),
		m.renderKeypad(g),
	}
	if m.cfg.Display.ShowHelp {
		h := m.help
		h.Width = g.width()
		parts = append(parts, m.styles.Help.Render(h.View(m.keys)))
	}

	return m.styles.App.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// Offsets of the keypad inside the body: app padding, title line and the
// display panel with border, pending line and main line
const (
	appPadTop  = 1
	appPadLeft = 2
	titleLines = 1
)

func (m Model) keypadOffset() (x, y int) {
	displayHeight := 2 + 1 + m.displayLines()
	return appPadLeft, appPadTop + titleLines + displayHeight
}

// buttonAt returns the keypad button under a screen cell
func (m Model) buttonAt(x, y int) (button, bool) {
	g := geometryFor(m.height)
	body := m.renderBody(g)

	left := (m.width - lipgloss.Width(body)) / 2
	if left < 0 {
		left = 0
	}
	top := (m.height - lipgloss.Height(body)) / 2
	if top < 0 {
		top = 0
	}

	kx, ky := m.keypadOffset()
	return g.hit(x-left-kx, y-top-ky)
}

// Run starts the calculator TUI and blocks until the user quits. With
// opts.Watch set, changes of opts.ConfigPath restyle the running program.
func Run(opts Options) error {
	if opts.Config == nil {
		opts.Config = config.Default()
	}
	if opts.Logger == nil {
		opts.Logger = logging.Nop()
	}

	progOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if opts.Config.Display.Mouse {
		progOpts = append(progOpts, tea.WithMouseCellMotion())
	}

	p := tea.NewProgram(New(opts), progOpts...)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if opts.Watch && opts.ConfigPath != "" {
		go func() {
			err := config.Watch(ctx, opts.ConfigPath, func(cfg *config.Config) {
				p.Send(ConfigReloadedMsg{Config: cfg})
			}, opts.Logger)
			if err != nil {
				opts.Logger.Error("Config watcher stopped", "error", err)
			}
		}()
	}

	_, err := p.Run()
	return err
}
