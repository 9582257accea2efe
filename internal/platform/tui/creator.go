package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/balloon-math/internal/core"
	"github.com/vovakirdan/balloon-math/internal/games/balloons"
	"github.com/vovakirdan/balloon-math/internal/level"
)

// Lines below the plane: name input, status, help.
const creatorFooter = 3

// CreatorModel is the level creator: a cursor on the integer grid,
// mouse placement, a name field and save/export actions.
type CreatorModel struct {
	session   *Session
	editor    *balloons.Editor
	screen    *core.Screen
	name      textinput.Model
	keys      CreatorKeyMap
	help      help.Model
	keyMapper *KeyMapper
	confirm   bool // Waiting for overwrite confirmation
	warning   string
	notice    string
	width     int
	height    int
	saved     string // Name of the saved level
	done      bool
}

// NewCreatorModel creates a creator, optionally preloaded with a level.
func NewCreatorModel(session *Session, width, height int, edit *level.Level) CreatorModel {
	cfg := session.Config()
	ed := balloons.NewEditor(cfg.Plane.Min, cfg.Plane.Max)

	ti := textinput.New()
	ti.Prompt = "Level name: "
	ti.Placeholder = "my level"
	ti.CharLimit = 40
	ti.Width = 40

	if edit != nil {
		ed.Load(*edit)
		ti.SetValue(edit.Name)
	}

	return CreatorModel{
		session:   session,
		editor:    ed,
		screen:    core.NewScreen(width, max(height-creatorFooter, 1)),
		name:      ti,
		keys:      DefaultCreatorKeyMap(),
		help:      help.New(),
		keyMapper: NewKeyMapper(),
		width:     width,
		height:    height,
	}
}

// Init initializes the creator.
func (m CreatorModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the creator.
func (m CreatorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.screen.Resize(msg.Width, max(msg.Height-creatorFooter, 1))
		m.help.Width = msg.Width
	}
	return m, nil
}

func (m CreatorModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.confirm {
		switch msg.String() {
		case "y", "Y", "enter":
			m.confirm = false
			m.save(true)
		case "n", "N", "esc":
			m.confirm = false
			m.notice = ""
		}
		return m, nil
	}

	if m.name.Focused() {
		switch msg.String() {
		case "enter":
			m.name.Blur()
			m.save(false)
			return m, nil
		case "esc":
			m.name.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.name, cmd = m.name.Update(msg)
		return m, cmd
	}

	m.notice = ""
	switch msg.String() {
	case "n":
		m.warning = ""
		return m, m.name.Focus()
	case "ctrl+e":
		m.export()
		return m, nil
	case "c":
		m.editor.Clear()
		return m, nil
	case "1", "2", "3":
		m.editor.SetTier(level.Tiers[msg.String()[0]-'1'])
		return m, nil
	case "enter":
		m.save(false)
		return m, nil
	case "esc":
		m.done = true
		return m, nil
	}

	in := core.NewInputFrame()
	m.keyMapper.MapKeyToFrame(msg, &in)
	if in.Empty() {
		return m, nil
	}
	m.editor.Step(in)
	return m, nil
}

func (m CreatorModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.confirm {
		return m, nil
	}
	p := m.editor.PlaneFor(m.screen.Width(), m.screen.Height())
	x, y, ok := p.FromScreen(msg.X, msg.Y)
	if !ok {
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionMotion:
		m.editor.SetCursor(x, y)
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.editor.ToggleAt(x, y)
		}
	}
	return m, nil
}

// save validates the level and stores it in the session library.
func (m *CreatorModel) save(overwrite bool) {
	name := strings.TrimSpace(m.name.Value())
	if name == "" {
		m.warning = "Please enter a level name."
		m.name.Focus()
		return
	}

	lvl := m.editor.Level(name)
	if len(lvl.Balloons) == 0 {
		m.warning = "Place at least one balloon before saving."
		return
	}

	err := m.session.SaveLevel(lvl, overwrite)
	switch {
	case errors.Is(err, level.ErrExists):
		m.confirm = true
		return
	case err != nil:
		m.warning = err.Error()
		return
	}

	m.warning = ""
	m.saved = name
	m.done = true
}

// export writes the level as YAML without adding it to the library.
func (m *CreatorModel) export() {
	name := strings.TrimSpace(m.name.Value())
	if name == "" {
		m.warning = "Please enter a level name."
		return
	}
	path, err := m.session.ExportLevel(m.editor.Level(name))
	if err != nil {
		m.warning = err.Error()
		return
	}
	m.warning = ""
	m.notice = "Exported to " + path
}

// View renders the creator.
func (m CreatorModel) View() string {
	m.editor.Render(m.screen)

	if m.confirm {
		m.screen.DrawMessageBox(
			"Level already exists",
			"",
			fmt.Sprintf("Overwrite %q?", strings.TrimSpace(m.name.Value())),
			"",
			"[Y] Yes   [N] No",
		)
	}

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	b.WriteString(m.name.View())
	b.WriteString("\n")
	switch {
	case m.warning != "":
		b.WriteString(warningStyle.Render(fitLine(m.warning, m.width)))
	case m.notice != "":
		b.WriteString(noticeStyle.Render(fitLine(m.notice, m.width)))
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// IsDone returns true once the level was saved or the creator was cancelled.
func (m CreatorModel) IsDone() bool {
	return m.done
}

// Saved returns the name of the saved level, or empty if cancelled.
func (m CreatorModel) Saved() string {
	return m.saved
}
