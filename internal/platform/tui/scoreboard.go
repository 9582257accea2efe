package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/balloon-math/internal/registry"
	"github.com/vovakirdan/balloon-math/internal/storage"
)

// Scoreboard layout constants
const (
	minWidthForSidebar = 80  // Minimum width to show level list sidebar
	sidebarWidth       = 24  // Width of level list sidebar
	maxScores          = 100 // Max scores to load
	maxShots           = 50  // Max history rows to load
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	History   key.Binding
	Back      key.Binding
	Quit      key.Binding
	NextLevel key.Binding
	PrevLevel key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextLevel, k.PrevLevel, k.History, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextLevel, k.PrevLevel},
		{k.History, k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("left", "prev level"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right/l", "next level"),
		),
		NextLevel: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next level"),
		),
		PrevLevel: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-tab", "prev level"),
		),
		History: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "scores/history"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model for the scoreboard screen.
type ScoreboardModel struct {
	levels      []LevelChoice
	keysByLevel []string // Storage key for each entry in levels
	levelCursor int
	store       *storage.Store
	scores      []storage.ScoreEntry
	shots       []storage.ShotEntry
	stats       *storage.LevelStats
	table       table.Model
	help        help.Model
	keys        ScoreboardKeyMap
	width       int
	height      int
	history     bool // Show shot history instead of top scores
	standalone  bool // Back and quit end the program
	quitting    bool
	goingBack   bool
	showSidebar bool
}

// NewScoreboardModel creates a scoreboard over the session's levels.
func NewScoreboardModel(session *Session, width, height int) ScoreboardModel {
	levels := session.Levels()
	keys := make([]string, len(levels))
	for i, c := range levels {
		keys[i] = session.LevelKey(c)
	}
	return newScoreboard(session.Store, levels, keys, width, height)
}

func newScoreboard(store *storage.Store, levels []LevelChoice, levelKeys []string, width, height int) ScoreboardModel {
	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		levels:      levels,
		keysByLevel: levelKeys,
		store:       store,
		keys:        DefaultScoreboardKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}

	m.table = m.createTable()
	m.load()
	return m
}

// SelectLevel moves the cursor to the level with the given storage key.
func (m ScoreboardModel) SelectLevel(levelKey string) ScoreboardModel {
	for i, k := range m.keysByLevel {
		if k == levelKey {
			m.levelCursor = i
			m.load()
			break
		}
	}
	return m
}

// createTable creates a table with columns for the current mode.
func (m *ScoreboardModel) createTable() table.Model {
	tableWidth := m.width - 4 // Margins
	if m.showSidebar {
		tableWidth -= sidebarWidth + 3 // Sidebar + border + gap
	}

	var columns []table.Column
	if m.history {
		columns = []table.Column{
			{Title: "Formula", Width: 24},
			{Title: "Hits", Width: 6},
			{Title: "Popped", Width: 7},
			{Title: "Date", Width: 14},
		}
		if tableWidth > 60 {
			columns[0].Width = tableWidth - 33
		}
	} else {
		columns = []table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Score", Width: 8},
			{Title: "Rockets", Width: 8},
			{Title: "Date", Width: 14},
		}
		if tableWidth > 50 {
			columns[3].Width = min(tableWidth-26, 20)
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)), // Leave room for header, stats, help
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// currentKey returns the storage key of the selected level.
func (m ScoreboardModel) currentKey() string {
	if len(m.keysByLevel) == 0 {
		return ""
	}
	return m.keysByLevel[m.levelCursor]
}

// load reads scores, history and stats for the selected level.
func (m *ScoreboardModel) load() {
	m.scores, m.shots, m.stats = nil, nil, nil
	if m.store != nil && len(m.levels) > 0 {
		id := m.currentKey()
		if scores, err := m.store.TopScores(id, maxScores); err == nil {
			m.scores = scores
		}
		if shots, err := m.store.RecentShots(id, maxShots); err == nil {
			m.shots = shots
		}
		if stats, err := m.store.LevelStats(id); err == nil {
			m.stats = stats
		}
	}
	m.updateTableRows()
}

// updateTableRows fills the table for the current mode.
func (m *ScoreboardModel) updateTableRows() {
	var rows []table.Row
	if m.history {
		rows = make([]table.Row, len(m.shots))
		for i, s := range m.shots {
			rows[i] = table.Row{
				"y = " + s.Formula,
				fmt.Sprintf("%d", s.Hits),
				fmt.Sprintf("%d", s.Popped),
				s.CreatedAt.Format("Jan 02 15:04"),
			}
		}
	} else {
		rows = make([]table.Row, len(m.scores))
		for i, s := range m.scores {
			rows[i] = table.Row{
				fmt.Sprintf("#%d", i+1),
				fmt.Sprintf("%d", s.Score),
				fmt.Sprintf("%d", s.Rockets),
				s.CreatedAt.Format("Jan 02 15:04"),
			}
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			if m.standalone {
				return m, tea.Quit
			}
			return m, nil

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			if m.standalone {
				return m, tea.Quit
			}
			return m, nil

		case key.Matches(msg, m.keys.History):
			m.history = !m.history
			m.table = m.createTable()
			m.updateTableRows()
			return m, nil

		case key.Matches(msg, m.keys.NextLevel), key.Matches(msg, m.keys.Right):
			if len(m.levels) > 0 {
				m.levelCursor = (m.levelCursor + 1) % len(m.levels)
				m.load()
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevLevel), key.Matches(msg, m.keys.Left):
			if len(m.levels) > 0 {
				m.levelCursor--
				if m.levelCursor < 0 {
					m.levelCursor = len(m.levels) - 1
				}
				m.load()
			}
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.standalone && (m.quitting || m.goingBack) {
		return ""
	}

	var b strings.Builder

	title := "HIGH SCORES"
	if m.history {
		title = "SHOT HISTORY"
	}
	if len(m.levels) > 0 {
		title = fmt.Sprintf("%s - %s", title, m.levels[m.levelCursor].Title)
	}

	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	if m.showSidebar {
		b.WriteString(m.renderWideLayout())
	} else {
		b.WriteString(m.renderNarrowLayout())
	}

	b.WriteString("\n")
	b.WriteString(m.renderStats())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderStats renders the aggregate line for the selected level.
func (m ScoreboardModel) renderStats() string {
	if m.stats == nil || (m.stats.Completions == 0 && m.stats.Shots == 0) {
		return ""
	}
	s := m.stats
	line := fmt.Sprintf("Completed %d | Best %d | Avg %.0f | Fewest rockets %d | Shots %d",
		s.Completions, s.HighScore, s.AvgScore, s.BestRockets, s.Shots)
	return noticeStyle.Render(centerText(fitLine(line, m.width), m.width))
}

// renderWideLayout renders the scoreboard with sidebar for level selection.
func (m ScoreboardModel) renderWideLayout() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sidebar strings.Builder
	sidebar.WriteString("Levels\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for i, l := range m.levels {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.levelCursor {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}
		sidebar.WriteString(style.Render(cursor + fitLine(l.Title, sidebarWidth-6)))
		sidebar.WriteString("\n")
	}

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	return lipgloss.JoinHorizontal(lipgloss.Top,
		sidebarStyle.Render(sidebar.String()), "  ", tableStyle.Render(m.renderTableContent()))
}

// renderNarrowLayout shows only the current level name with arrows.
func (m ScoreboardModel) renderNarrowLayout() string {
	var b strings.Builder

	if len(m.levels) > 0 {
		b.WriteString(centerText(fmt.Sprintf("< %s >", m.levels[m.levelCursor].Title), m.width))
		b.WriteString("\n\n")
	}

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	b.WriteString(tableStyle.Render(m.renderTableContent()))
	return b.String()
}

// renderTableContent renders the table or empty message.
func (m ScoreboardModel) renderTableContent() string {
	empty := len(m.scores) == 0
	msg := "No scores recorded yet.\nPop every balloon to set a high score!"
	if m.history {
		empty = len(m.shots) == 0
		msg = "No rockets launched yet."
	}
	if empty {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render(msg)
	}

	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard as its own program over the registered
// levels, starting at levelID when it is not empty.
func RunScoreboard(store *storage.Store, levelID string, width, height int) error {
	infos := registry.List()
	levels := make([]LevelChoice, len(infos))
	keys := make([]string, len(infos))
	for i, info := range infos {
		levels[i] = LevelChoice{ID: info.ID, Title: info.Title}
		keys[i] = info.ID
	}
	if levelID != "" && !registry.Exists(levelID) {
		// Scores for custom levels are stored under their own key.
		levels = append(levels, LevelChoice{ID: levelID, Title: levelID, Custom: true})
		keys = append(keys, levelID)
	}

	model := newScoreboard(store, levels, keys, width, height)
	model.standalone = true
	if levelID != "" {
		model = model.SelectLevel(levelID)
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
