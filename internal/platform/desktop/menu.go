package desktop

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/balloon-math/internal/config"
	"github.com/vovakirdan/balloon-math/internal/core"
	"github.com/vovakirdan/balloon-math/internal/games/balloons"
	"github.com/vovakirdan/balloon-math/internal/level"
	"github.com/vovakirdan/balloon-math/internal/platform/tui"
)

// The backdrop animates on a coarse grid scaled up to the window.
const (
	bgCellW = 8
	bgCellH = 16
)

const (
	rowLevel = iota
	rowPlay
	rowSpeed
	rowDifficulty
	rowCreate
	rowQuit
	rowCount
)

type menuState struct {
	app        *App
	levels     []tui.LevelChoice
	level      int
	cursor     int
	background *balloons.Background
}

func newMenuState(app *App) *menuState {
	return &menuState{
		app:        app,
		cursor:     rowPlay,
		background: balloons.NewBackground(app.session.Runtime.Seed, ScreenWidth/bgCellW, ScreenHeight/bgCellH),
	}
}

func (s *menuState) Enter() {
	s.levels = s.app.session.Levels()
}

func (s *menuState) Exit() {}

func (s *menuState) Update() error {
	s.background.Step()

	in := keyFrame()
	switch {
	case in.Has(core.ActionUp):
		s.cursor = (s.cursor - 1 + rowCount) % rowCount
	case in.Has(core.ActionDown):
		s.cursor = (s.cursor + 1) % rowCount
	case in.Has(core.ActionLeft):
		s.adjust(-1)
	case in.Has(core.ActionRight):
		s.adjust(1)
	case in.Has(core.ActionBack):
		s.app.quit = true
	case in.Has(core.ActionConfirm):
		return s.activate()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyE) && s.cursor == rowLevel && s.current().Custom {
		if lvl, err := s.app.session.Library.Get(s.current().ID); err == nil {
			s.app.sm.SetState(newCreatorState(s.app, &lvl))
		}
	}
	return nil
}

func (s *menuState) current() tui.LevelChoice {
	if len(s.levels) == 0 {
		return tui.LevelChoice{}
	}
	return s.levels[s.level]
}

func (s *menuState) adjust(delta int) {
	session := s.app.session
	switch s.cursor {
	case rowLevel:
		if len(s.levels) > 0 {
			s.level = (s.level + delta + len(s.levels)) % len(s.levels)
		}
	case rowSpeed:
		session.SetSpeed(session.Speed() + delta)
	case rowDifficulty:
		idx := 0
		for i, p := range config.Presets {
			if p == session.Preset() {
				idx = i
			}
		}
		idx = (idx + delta + len(config.Presets)) % len(config.Presets)
		session.SetPreset(config.Presets[idx])
	}
}

func (s *menuState) activate() error {
	switch s.cursor {
	case rowLevel, rowPlay:
		if len(s.levels) > 0 {
			return s.app.play(s.current())
		}
	case rowCreate:
		s.app.sm.SetState(newCreatorState(s.app, nil))
	case rowQuit:
		s.app.quit = true
	default:
		s.adjust(1)
	}
	return nil
}

func (s *menuState) Draw(screen *ebiten.Image) {
	balloonPos, rocketPos := s.background.Positions()
	for i, p := range balloonPos {
		c := tierColor(level.Tiers[i%len(level.Tiers)])
		faded := color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0x90}
		vector.DrawFilledCircle(screen, float32(p.X*bgCellW), float32(p.Y*bgCellH), balloonSize, faded, true)
	}
	for _, p := range rocketPos {
		vector.DrawFilledCircle(screen, float32(p.X*bgCellW), float32(p.Y*bgCellH), 4, rocketColor, true)
	}

	session := s.app.session
	name := "(no levels)"
	if len(s.levels) > 0 {
		name = s.current().Title
		if s.current().Custom {
			name += " *"
		}
	}
	rows := []string{
		fmt.Sprintf("Level: < %s >", name),
		"Play",
		fmt.Sprintf("Speed: < %d >", session.Speed()),
		fmt.Sprintf("Difficulty: < %s >", session.Preset()),
		"Create New Level",
		"Quit",
	}

	lines := []string{"B A L L O O N   M A T H", ""}
	colors := map[int]color.Color{0: selectColor}
	for i, r := range rows {
		if i == s.cursor {
			r = "> " + r + " <"
			colors[len(lines)] = selectColor
		}
		lines = append(lines, r)
	}
	drawPanel(screen, lines, colors)

	help := "Up/Down: Navigate   Left/Right: Change   Enter: Select   Esc: Quit"
	if s.current().Custom {
		help += "   E: Edit level"
	}
	drawTextCentered(screen, help, ScreenHeight-24, axisColor)
}
