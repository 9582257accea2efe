package desktop

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/balloon-math/internal/core"
	"github.com/vovakirdan/balloon-math/internal/formula"
	"github.com/vovakirdan/balloon-math/internal/games/balloons"
	"github.com/vovakirdan/balloon-math/internal/level"
)

const formulaLimit = 120

type playState struct {
	app      *App
	game     *balloons.Game
	levelKey string
	plane    balloons.Plane
	input    []rune
	warning  string
	alert    string
	state    core.GameState
	saved    bool

	flying bool
	src    string
	hits   int
	pops   int
}

func newPlayState(app *App, lvl level.Level) *playState {
	session := app.session
	g := balloons.New(session.LevelConfig(), lvl)
	g.SetSpeed(session.Speed())
	g.SetScore(session.Score())

	cfg := g.Config()
	return &playState{
		app:      app,
		game:     g,
		levelKey: lvl.Key(),
		plane:    pixelPlane(cfg.Plane.Min, cfg.Plane.Max),
		state:    g.State(),
	}
}

func (s *playState) Enter() {}

func (s *playState) Exit() {}

func (s *playState) Update() error {
	in := core.NewInputFrame()

	switch {
	case s.alert != "":
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			s.alert = ""
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		s.app.toMenu()
		return nil
	case s.state.Won:
		if inpututil.IsKeyJustPressed(ebiten.KeyR) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			in.Set(core.ActionRestart)
			s.saved = false
		}
	default:
		s.input = editLine(s.input, formulaLimit)
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter) {
			s.shoot()
		}
	}

	session := s.app.session
	if inpututil.IsKeyJustPressed(ebiten.KeyPageUp) {
		session.SetSpeed(s.game.Speed() + 1)
		s.game.SetSpeed(session.Speed())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPageDown) {
		session.SetSpeed(s.game.Speed() - 1)
		s.game.SetSpeed(session.Speed())
	}

	result := s.game.Step(in)
	s.state = result.State
	s.hits += result.Hits
	s.pops += result.Pops
	s.record()
	return nil
}

func (s *playState) shoot() {
	src := string(s.input)
	err := s.game.Shoot(src)
	switch {
	case errors.Is(err, formula.ErrEmpty):
		s.warning = "Please enter a formula."
		return
	case errors.Is(err, formula.ErrInvalid):
		s.alert = "Invalid formula. Please check your input."
		return
	case err != nil:
		s.warning = err.Error()
		return
	}

	s.warning = ""
	s.flying = true
	s.src = strings.TrimSpace(src)
	s.hits, s.pops = 0, 0
	s.state = s.game.State()
	s.record()
}

// record stores a landed rocket and a won level, each once.
func (s *playState) record() {
	session := s.app.session
	if s.flying && !s.state.Flying {
		s.flying = false
		session.RecordShot(s.levelKey, s.src, s.hits, s.pops)
		if s.state.Err != nil {
			s.warning = s.state.Err.Error()
		}
	}
	if s.state.Won && !s.saved {
		s.saved = true
		session.RecordWin(s.levelKey, s.state)
	}
}

func (s *playState) Draw(screen *ebiten.Image) {
	drawAxes(screen, s.plane)
	drawTrack(screen, s.plane, s.game.Track())
	drawBalloons(screen, s.plane, s.game.Balloons())
	drawRocket(screen, s.plane, s.game.Rocket())

	st := s.state
	hud := fmt.Sprintf("%s   Rockets: %d   Balloons: %d   Score: %d   Speed: %d",
		s.game.Level().Name, st.RocketsUsed, st.Balloons, st.Score, s.game.Speed())
	drawText(screen, hud, 8, 8, textColor)

	footer := ScreenHeight - footerHeight
	cursor := ""
	if !st.Won && s.alert == "" {
		cursor = "_"
	}
	drawText(screen, "y = "+string(s.input)+cursor, 8, footer+8, cursorColor)
	if s.warning != "" {
		drawText(screen, s.warning, 8, footer+8+lineHeight, warnColor)
	}
	drawText(screen, "Enter: launch   PgUp/PgDn: speed   Esc: menu", 8, footer+8+2*lineHeight, axisColor)

	switch {
	case s.alert != "":
		drawPanel(screen, []string{"Invalid formula", "", s.alert, "", "[Enter] OK"},
			map[int]color.Color{0: warnColor})
	case st.Won:
		drawPanel(screen, []string{
			"LEVEL COMPLETE",
			"",
			fmt.Sprintf("Rockets used: %d", st.RocketsUsed),
			fmt.Sprintf("Level score: %d", st.LevelScore),
			fmt.Sprintf("Total score: %d", st.Score),
			"",
			"[R] Play Again   [Esc] Menu",
		}, map[int]color.Color{0: noticeColor})
	}
}
