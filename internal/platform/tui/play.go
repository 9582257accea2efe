package tui

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/balloon-math/internal/core"
	"github.com/vovakirdan/balloon-math/internal/formula"
	"github.com/vovakirdan/balloon-math/internal/games/balloons"
	"github.com/vovakirdan/balloon-math/internal/level"
)

// Lines below the plane: formula input, status, help.
const playFooter = 3

// PlayModel runs one level: the formula input, the plane and the dialogs.
type PlayModel struct {
	session    *Session
	game       *balloons.Game
	levelKey   string
	screen     *core.Screen
	input      textinput.Model
	keys       PlayKeyMap
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	warning    string // Shown under the input, cleared on the next shot
	alert      string // Blocking dialog, dismissed with Enter or Esc
	width      int
	height     int
	backToMenu bool
	scoreSaved bool

	// Current flight, recorded in the shot history when it lands
	flying     bool
	flightSrc  string
	flightHits int
	flightPops int
}

// NewPlayModel creates a gameplay view for the given level.
func NewPlayModel(session *Session, lvl level.Level, width, height int) PlayModel {
	g := balloons.New(session.LevelConfig(), lvl)
	g.SetSpeed(session.Speed())
	g.SetScore(session.Score())

	ti := textinput.New()
	ti.Prompt = "y = "
	ti.Placeholder = "2*x + 1"
	ti.CharLimit = 120
	ti.Width = max(width-8, 10)
	ti.Focus()

	return PlayModel{
		session:    session,
		game:       g,
		levelKey:   lvl.Key(),
		screen:     core.NewScreen(width, max(height-playFooter, 1)),
		input:      ti,
		keys:       DefaultPlayKeyMap(),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
		gameState:  g.State(),
		width:      width,
		height:     height,
	}
}

// Init initializes the gameplay view.
func (m PlayModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the gameplay view.
func (m PlayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The plane is re-mapped on every render; the game itself is untouched.
		m.width = msg.Width
		m.height = msg.Height
		m.screen.Resize(msg.Width, max(msg.Height-playFooter, 1))
		m.input.Width = max(msg.Width-8, 10)
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleKey processes keyboard input.
func (m PlayModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.alert != "" {
		switch msg.String() {
		case "enter", "esc", " ":
			m.alert = ""
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Back):
		m.backToMenu = true
		return m, nil

	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil

	case key.Matches(msg, m.keys.SpeedUp):
		m.session.SetSpeed(m.game.Speed() + 1)
		m.game.SetSpeed(m.session.Speed())
		return m, nil

	case key.Matches(msg, m.keys.SpeedDown):
		m.session.SetSpeed(m.game.Speed() - 1)
		m.game.SetSpeed(m.session.Speed())
		return m, nil
	}

	if m.gameState.Won {
		if key.Matches(msg, m.keys.Replay) {
			m.inputFrame.Set(core.ActionRestart)
		}
		return m, nil
	}

	if key.Matches(msg, m.keys.Shoot) {
		m.shoot()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// shoot launches a rocket with the typed formula.
func (m *PlayModel) shoot() {
	src := m.input.Value()
	err := m.game.Shoot(src)
	switch {
	case errors.Is(err, formula.ErrEmpty):
		m.warning = "Please enter a formula."
		return
	case errors.Is(err, formula.ErrInvalid):
		m.alert = "Invalid formula. Please check your input."
		return
	case errors.Is(err, balloons.ErrBusy):
		m.warning = "Wait for the rocket to land."
		return
	case err != nil:
		return
	}

	m.warning = ""
	m.flying = true
	m.flightSrc = strings.TrimSpace(src)
	m.flightHits = 0
	m.flightPops = 0
	m.gameState = m.game.State()
	m.afterStep()
}

// handleTick processes simulation ticks.
func (m PlayModel) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.Won {
		m.scoreSaved = false
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.flightHits += result.Hits
	m.flightPops += result.Pops
	m.afterStep()

	m.inputFrame.Clear()
	return m, nil
}

// afterStep records a landed flight and a won level, each once.
func (m *PlayModel) afterStep() {
	st := m.gameState

	if m.flying && !st.Flying {
		m.flying = false
		m.session.RecordShot(m.levelKey, m.flightSrc, m.flightHits, m.flightPops)
		if st.Err != nil {
			m.warning = st.Err.Error()
		}
	}

	if st.Won && !m.scoreSaved {
		m.scoreSaved = true
		m.session.RecordWin(m.levelKey, st)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *PlayModel) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".balloons", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", slug(m.levelKey), timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the gameplay view.
func (m PlayModel) View() string {
	m.game.Render(m.screen)
	if m.alert != "" {
		m.screen.DrawMessageBox("Invalid formula", "", m.alert, "", "[Enter] OK")
	}

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	if m.warning != "" {
		b.WriteString(warningStyle.Render(fitLine(m.warning, m.width)))
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// State returns the last observed game state.
func (m PlayModel) State() core.GameState {
	return m.gameState
}

// BackToMenu returns true if the player wants to go back to the menu.
func (m PlayModel) BackToMenu() bool {
	return m.backToMenu
}
