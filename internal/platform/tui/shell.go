package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// View identifies the screen the shell is showing.
type View int

const (
	ViewMenu View = iota
	ViewOptions
	ViewCreator
	ViewPlay
	ViewScores
)

// ShellModel is the top-level model: it owns the tick loop and switches
// between the menu, options, creator, gameplay and scoreboard.
// The same model runs locally and for every SSH session.
type ShellModel struct {
	session  *Session
	view     View
	width    int
	height   int
	menu     MenuModel
	options  OptionsModel
	creator  CreatorModel
	play     PlayModel
	scores   ScoreboardModel
	quitting bool
}

// NewShellModel creates a shell that starts at the menu.
func NewShellModel(session *Session) ShellModel {
	w, h := session.Runtime.ScreenW, session.Runtime.ScreenH
	if w <= 0 {
		w = 80
	}
	if h <= 0 {
		h = 24
	}
	return ShellModel{
		session: session,
		view:    ViewMenu,
		width:   w,
		height:  h,
		menu:    NewMenuModel(session, w, h),
	}
}

// StartLevel switches straight to gameplay on the given level ID or
// custom level name.
func (m ShellModel) StartLevel(id string) (ShellModel, error) {
	c, ok := m.session.FindLevel(id)
	if !ok {
		return m, fmt.Errorf("tui: unknown level %q", id)
	}
	if err := m.startPlay(c); err != nil {
		return m, err
	}
	m.menu = m.menu.SelectLevel(c.ID)
	return m, nil
}

// Init starts the tick loop.
func (m ShellModel) Init() tea.Cmd {
	return tickCmd(m.session.Runtime.TickRate)
}

// Update routes messages to the active view.
func (m ShellModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.session.Runtime.ScreenW = msg.Width
		m.session.Runtime.ScreenH = msg.Height
		// The menu keeps running in the background, so it always gets resized.
		m.menu = m.updateMenu(msg)

	case TickMsg:
		// Background animation only runs while the menu is visible.
		if m.view == ViewMenu {
			m.menu = m.updateMenu(msg)
		}
		var cmd tea.Cmd
		if m.view == ViewPlay {
			cmd = m.updatePlay(msg)
		}
		return m, tea.Batch(cmd, tickCmd(m.session.Runtime.TickRate))
	}

	var cmd tea.Cmd
	switch m.view {
	case ViewMenu:
		if _, ok := msg.(tea.WindowSizeMsg); !ok {
			m.menu = m.updateMenu(msg)
		}
		cmd = m.afterMenu()
	case ViewOptions:
		newM, c := m.options.Update(msg)
		if om, ok := newM.(OptionsModel); ok {
			m.options = om
		}
		cmd = c
		m.afterOptions()
	case ViewCreator:
		newM, c := m.creator.Update(msg)
		if cm, ok := newM.(CreatorModel); ok {
			m.creator = cm
		}
		cmd = c
		m.afterCreator()
	case ViewPlay:
		cmd = m.updatePlay(msg)
	case ViewScores:
		newM, c := m.scores.Update(msg)
		if sm, ok := newM.(ScoreboardModel); ok {
			m.scores = sm
		}
		cmd = c
		m.afterScores()
	}

	if m.quitting {
		return m, tea.Quit
	}
	return m, cmd
}

func (m *ShellModel) updateMenu(msg tea.Msg) MenuModel {
	newM, _ := m.menu.Update(msg)
	if mm, ok := newM.(MenuModel); ok {
		return mm
	}
	return m.menu
}

func (m *ShellModel) updatePlay(msg tea.Msg) tea.Cmd {
	newM, cmd := m.play.Update(msg)
	if pm, ok := newM.(PlayModel); ok {
		m.play = pm
	}
	if m.play.BackToMenu() {
		m.toMenu()
	}
	return cmd
}

// afterMenu acts on the button picked in the menu.
func (m *ShellModel) afterMenu() tea.Cmd {
	choice := m.menu.Choice()
	if choice == MenuNone {
		return nil
	}
	m.menu = m.menu.Refresh()

	switch choice {
	case MenuQuit:
		m.quitting = true

	case MenuPlay:
		if c, ok := m.menu.Selected(); ok {
			if err := m.startPlay(c); err == nil {
				return m.play.Init()
			}
		}

	case MenuEdit:
		c, ok := m.menu.Selected()
		if !ok || !c.Custom {
			return nil
		}
		lvl, err := m.session.Library.Get(c.ID)
		if err != nil {
			return nil
		}
		m.creator = NewCreatorModel(m.session, m.width, m.height, &lvl)
		m.view = ViewCreator

	case MenuOptions:
		m.options = NewOptionsModel(m.session, m.width, m.height)
		m.view = ViewOptions

	case MenuScores:
		m.scores = NewScoreboardModel(m.session, m.width, m.height)
		if c, ok := m.menu.Selected(); ok {
			m.scores = m.scores.SelectLevel(m.session.LevelKey(c))
		}
		m.view = ViewScores
	}
	return nil
}

func (m *ShellModel) afterOptions() {
	switch {
	case m.options.WantsCreator():
		m.creator = NewCreatorModel(m.session, m.width, m.height, nil)
		m.view = ViewCreator
	case m.options.IsGoingBack():
		m.toMenu()
	}
}

func (m *ShellModel) afterCreator() {
	if !m.creator.IsDone() {
		return
	}
	saved := m.creator.Saved()
	m.toMenu()
	if saved != "" {
		m.menu = m.menu.SelectLevel(saved)
	}
}

func (m *ShellModel) afterScores() {
	switch {
	case m.scores.IsQuitting():
		m.quitting = true
	case m.scores.IsGoingBack():
		m.toMenu()
	}
}

func (m *ShellModel) startPlay(c LevelChoice) error {
	lvl, err := m.session.BuildLevel(c)
	if err != nil {
		return err
	}
	m.play = NewPlayModel(m.session, lvl, m.width, m.height)
	m.view = ViewPlay
	return nil
}

func (m *ShellModel) toMenu() {
	m.menu = m.menu.Refresh()
	m.view = ViewMenu
}

// View renders the active view.
func (m ShellModel) View() string {
	if m.quitting {
		return ""
	}
	switch m.view {
	case ViewOptions:
		return m.options.View()
	case ViewCreator:
		return m.creator.View()
	case ViewPlay:
		return m.play.View()
	case ViewScores:
		return m.scores.View()
	default:
		return m.menu.View()
	}
}

// CurrentView returns the view being shown.
func (m ShellModel) CurrentView() View {
	return m.view
}

// Run starts the shell on the local terminal, optionally jumping straight
// into a level.
func Run(session *Session, startLevel string) error {
	model := NewShellModel(session)
	if startLevel != "" {
		var err error
		if model, err = model.StartLevel(startLevel); err != nil {
			return err
		}
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)
	_, err := p.Run()
	return err
}
