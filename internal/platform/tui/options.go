package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/balloon-math/internal/config"
)

// Options rows
const (
	optSpeed = iota
	optDifficulty
	optCreate
	optBack
	optCount
)

// OptionsModel is the options panel: rocket speed slider, difficulty
// select and the entry point to the level creator.
type OptionsModel struct {
	session     *Session
	cursor      int
	width       int
	height      int
	keyMapper   *KeyMapper
	createLevel bool
	back        bool
}

// NewOptionsModel creates a new options model.
func NewOptionsModel(session *Session, width, height int) OptionsModel {
	return OptionsModel{
		session:   session,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the options model.
func (m OptionsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the options panel.
func (m OptionsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m OptionsModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionUp:
		m.cursor = (m.cursor - 1 + optCount) % optCount
	case MenuActionDown:
		m.cursor = (m.cursor + 1) % optCount
	case MenuActionLeft:
		m.adjust(-1)
	case MenuActionRight:
		m.adjust(1)
	case MenuActionSelect:
		switch m.cursor {
		case optCreate:
			m.createLevel = true
		case optBack:
			m.back = true
		default:
			m.adjust(1)
		}
	case MenuActionBack, MenuActionQuit:
		m.back = true
	}
	return m, nil
}

// adjust moves the slider or the select on the current row.
func (m *OptionsModel) adjust(delta int) {
	switch m.cursor {
	case optSpeed:
		m.session.SetSpeed(m.session.Speed() + delta)
	case optDifficulty:
		presets := config.Presets
		idx := 0
		for i, p := range presets {
			if p == m.session.Preset() {
				idx = i
			}
		}
		idx = (idx + delta + len(presets)) % len(presets)
		m.session.SetPreset(presets[idx])
	}
}

// View renders the options panel.
func (m OptionsModel) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("O P T I O N S"), m.width))
	b.WriteString("\n\n")

	cfg := m.session.Config()
	rows := []string{
		fmt.Sprintf("Graph Speed:  %s  %d", slider(m.session.Speed(), cfg.Rocket.MinSpeed, cfg.Rocket.MaxSpeed), m.session.Speed()),
		fmt.Sprintf("Difficulty:   < %s >", m.session.Preset()),
		"Create New Level",
		"Back to Menu",
	}

	selected := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	for i, row := range rows {
		cursor := "  "
		line := row
		if i == m.cursor {
			cursor = "> "
			line = selected.Render(row)
		}
		b.WriteString(centerText(cursor+line, m.width))
		b.WriteString("\n\n")
	}

	b.WriteString(centerText(helpStyle.Render("Up/Down: Navigate  |  Left/Right: Change  |  Enter: Select  |  Esc: Back"), m.width))
	b.WriteString("\n")
	return b.String()
}

// slider draws a horizontal slider for val in [min, max].
func slider(val, min, max int) string {
	n := max - min + 1
	if n < 1 {
		n = 1
	}
	filled := val - min + 1
	if filled < 0 {
		filled = 0
	}
	if filled > n {
		filled = n
	}
	return "[" + strings.Repeat("■", filled) + strings.Repeat("□", n-filled) + "]"
}

// WantsCreator returns true if the player chose to create a level.
func (m OptionsModel) WantsCreator() bool {
	return m.createLevel
}

// IsGoingBack returns true if the player wants to go back to the menu.
func (m OptionsModel) IsGoingBack() bool {
	return m.back
}
