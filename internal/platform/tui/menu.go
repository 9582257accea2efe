package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/balloon-math/internal/core"
	"github.com/vovakirdan/balloon-math/internal/games/balloons"
)

// MenuChoice is the button picked in the startup menu.
type MenuChoice int

const (
	MenuNone MenuChoice = iota
	MenuPlay
	MenuEdit
	MenuOptions
	MenuScores
	MenuQuit
)

var menuButtons = []struct {
	label  string
	choice MenuChoice
}{
	{"Play", MenuPlay},
	{"Options", MenuOptions},
	{"High Scores", MenuScores},
	{"Quit", MenuQuit},
}

// MenuModel is the startup menu: a level selector and buttons drawn over
// the animated background.
type MenuModel struct {
	session     *Session
	levels      []LevelChoice
	levelCursor int
	cursor      int
	screen      *core.Screen
	background  *balloons.Background
	keyMapper   *KeyMapper
	choice      MenuChoice
}

// NewMenuModel creates a new menu model.
func NewMenuModel(session *Session, width, height int) MenuModel {
	return MenuModel{
		session:    session,
		levels:     session.Levels(),
		screen:     core.NewScreen(width, height),
		background: balloons.NewBackground(session.Runtime.Seed, width, height),
		keyMapper:  NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height)
		m.background.Resize(msg.Width, msg.Height)

	case TickMsg:
		m.background.Step()
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "e" && len(m.levels) > 0 && m.levels[m.levelCursor].Custom {
		m.choice = MenuEdit
		return m, nil
	}

	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.choice = MenuQuit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(menuButtons)-1 {
			m.cursor++
		}

	case MenuActionLeft:
		if len(m.levels) > 0 {
			m.levelCursor = (m.levelCursor - 1 + len(m.levels)) % len(m.levels)
		}

	case MenuActionRight:
		if len(m.levels) > 0 {
			m.levelCursor = (m.levelCursor + 1) % len(m.levels)
		}

	case MenuActionSelect:
		m.choice = menuButtons[m.cursor].choice

	case MenuActionScoreboard:
		m.choice = MenuScores
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	m.screen.Clear()
	m.background.Render(m.screen)

	title := "B A L L O O N   M A T H"
	lines := []string{title, "", "Level:", m.levelLabel(), ""}
	for i, b := range menuButtons {
		label := "  " + b.label + "  "
		if i == m.cursor {
			label = "> " + b.label + " <"
		}
		lines = append(lines, label)
	}
	box := m.screen.DrawMessageBox(lines...)
	m.screen.DrawTextColored(box.X+(box.W-len([]rune(title)))/2, box.Y+1, title, core.ColorBrightYellow)

	footer := "Up/Down: Navigate  |  Left/Right: Level  |  Enter: Select  |  Tab: Scores  |  Q: Quit"
	if len(m.levels) > 0 && m.levels[m.levelCursor].Custom {
		footer += "  |  E: Edit"
	}
	m.screen.DrawTextCentered(m.screen.Height()-1, fitLine(footer, m.screen.Width()))

	return RenderScreen(m.screen)
}

func (m MenuModel) levelLabel() string {
	if len(m.levels) == 0 {
		return "(no levels)"
	}
	c := m.levels[m.levelCursor]
	title := c.Title
	if c.Custom {
		title += " *"
	}
	return fmt.Sprintf("< %s >", title)
}

// Choice returns the button the player picked, if any.
func (m MenuModel) Choice() MenuChoice {
	return m.choice
}

// Selected returns the level shown in the level selector.
func (m MenuModel) Selected() (LevelChoice, bool) {
	if len(m.levels) == 0 {
		return LevelChoice{}, false
	}
	return m.levels[m.levelCursor], true
}

// Refresh reloads the level list, keeping the selection when possible, and
// clears the pending choice.
func (m MenuModel) Refresh() MenuModel {
	var selected string
	if c, ok := m.Selected(); ok {
		selected = c.ID
	}
	m.levels = m.session.Levels()
	m.choice = MenuNone
	return m.SelectLevel(selected)
}

// SelectLevel moves the level selector to the given ID or custom name.
func (m MenuModel) SelectLevel(id string) MenuModel {
	m.levelCursor = 0
	for i, c := range m.levels {
		if c.ID == id {
			m.levelCursor = i
			break
		}
	}
	return m
}
