package desktop

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/balloon-math/internal/core"
	"github.com/vovakirdan/balloon-math/internal/games/balloons"
	"github.com/vovakirdan/balloon-math/internal/level"
)

const nameLimit = 40

type creatorState struct {
	app       *App
	editor    *balloons.Editor
	plane     balloons.Plane
	name      []rune
	nameFocus bool
	confirm   bool
	warning   string
	notice    string
	mouseX    int
	mouseY    int
}

func newCreatorState(app *App, edit *level.Level) *creatorState {
	cfg := app.session.Config()
	s := &creatorState{
		app:    app,
		editor: balloons.NewEditor(cfg.Plane.Min, cfg.Plane.Max),
		plane:  pixelPlane(cfg.Plane.Min, cfg.Plane.Max),
	}
	if edit != nil {
		s.editor.Load(*edit)
		s.name = []rune(edit.Name)
	}
	return s
}

func (s *creatorState) Enter() {}

func (s *creatorState) Exit() {}

func (s *creatorState) Update() error {
	if s.confirm {
		switch {
		case inpututil.IsKeyJustPressed(ebiten.KeyY), inpututil.IsKeyJustPressed(ebiten.KeyEnter):
			s.confirm = false
			s.save(true)
		case inpututil.IsKeyJustPressed(ebiten.KeyN), inpututil.IsKeyJustPressed(ebiten.KeyEscape):
			s.confirm = false
		}
		return nil
	}

	s.handleMouse()

	if s.nameFocus {
		s.name = editLine(s.name, nameLimit)
		switch {
		case inpututil.IsKeyJustPressed(ebiten.KeyEnter):
			s.nameFocus = false
			s.save(false)
		case inpututil.IsKeyJustPressed(ebiten.KeyEscape), inpututil.IsKeyJustPressed(ebiten.KeyTab):
			s.nameFocus = false
		}
		return nil
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		s.app.toMenu()
		return nil
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		s.save(false)
		return nil
	case inpututil.IsKeyJustPressed(ebiten.KeyE) && ctrlPressed():
		s.export()
		return nil
	case inpututil.IsKeyJustPressed(ebiten.KeyN):
		s.nameFocus = true
		s.warning = ""
		return nil
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		s.editor.Clear()
	case inpututil.IsKeyJustPressed(ebiten.KeyDigit1):
		s.editor.SetTier(level.TierRed)
	case inpututil.IsKeyJustPressed(ebiten.KeyDigit2):
		s.editor.SetTier(level.TierGreen)
	case inpututil.IsKeyJustPressed(ebiten.KeyDigit3):
		s.editor.SetTier(level.TierBlue)
	}

	in := keyFrame()
	if in.Has(core.ActionToggle) || in.Has(core.ActionCycle) || in.Has(core.ActionUp) ||
		in.Has(core.ActionDown) || in.Has(core.ActionLeft) || in.Has(core.ActionRight) {
		s.notice = ""
	}
	s.editor.Step(in)
	return nil
}

// handleMouse follows the pointer only while it moves, so the arrow keys
// keep working with the pointer resting over the plane.
func (s *creatorState) handleMouse() {
	mx, my := ebiten.CursorPosition()
	moved := mx != s.mouseX || my != s.mouseY
	s.mouseX, s.mouseY = mx, my

	x, y, ok := s.plane.FromScreen(mx, my)
	if !ok {
		return
	}
	if moved {
		s.editor.SetCursor(x, y)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		s.editor.ToggleAt(x, y)
		s.notice = ""
	}
}

func (s *creatorState) save(overwrite bool) {
	name := strings.TrimSpace(string(s.name))
	if name == "" {
		s.warning = "Please enter a level name."
		s.nameFocus = true
		return
	}

	lvl := s.editor.Level(name)
	if len(lvl.Balloons) == 0 {
		s.warning = "Place at least one balloon before saving."
		return
	}

	err := s.app.session.SaveLevel(lvl, overwrite)
	switch {
	case errors.Is(err, level.ErrExists):
		s.confirm = true
		return
	case err != nil:
		s.warning = err.Error()
		return
	}
	s.app.toMenu()
}

func (s *creatorState) export() {
	name := strings.TrimSpace(string(s.name))
	if name == "" {
		s.warning = "Please enter a level name."
		return
	}
	path, err := s.app.session.ExportLevel(s.editor.Level(name))
	if err != nil {
		s.warning = err.Error()
		return
	}
	s.warning = ""
	s.notice = "Exported to " + path
}

func (s *creatorState) Draw(screen *ebiten.Image) {
	drawAxes(screen, s.plane)

	cur := s.editor.Cursor()
	cx, cy := s.plane.ToScreenF(cur.X, cur.Y)
	lx, _ := s.plane.ToScreenF(s.plane.Min, cur.Y)
	rx, _ := s.plane.ToScreenF(s.plane.Max, cur.Y)
	_, ty := s.plane.ToScreenF(cur.X, s.plane.Max)
	_, by := s.plane.ToScreenF(cur.X, s.plane.Min)
	vector.StrokeLine(screen, float32(lx), float32(cy), float32(rx), float32(cy), 1, axisColor, false)
	vector.StrokeLine(screen, float32(cx), float32(ty), float32(cx), float32(by), 1, axisColor, false)

	drawBalloons(screen, s.plane, s.editor.Balloons())
	vector.StrokeCircle(screen, float32(cx), float32(cy), balloonSize+3, 2, tierColor(s.editor.Tier()), true)
	drawText(screen, fmt.Sprintf("(%g, %g)", cur.X, cur.Y), int(cx)+14, int(cy)-20, cursorColor)

	drawText(screen, fmt.Sprintf("Tier: %s   Balloons: %d", s.editor.Tier(), len(s.editor.Balloons())), 8, 8, textColor)

	footer := ScreenHeight - footerHeight
	label := "Level name: " + string(s.name)
	if s.nameFocus {
		label += "_"
	}
	drawText(screen, label, 8, footer+8, cursorColor)
	switch {
	case s.warning != "":
		drawText(screen, s.warning, 8, footer+8+lineHeight, warnColor)
	case s.notice != "":
		drawText(screen, s.notice, 8, footer+8+lineHeight, noticeColor)
	}
	drawText(screen, "Click/Space: place   Tab/1-3: tier   N: name   Enter: save   Ctrl+E: export   C: clear   Esc: cancel",
		8, footer+8+2*lineHeight, axisColor)

	if s.confirm {
		drawPanel(screen, []string{
			"Level already exists",
			"",
			fmt.Sprintf("Overwrite %q?", strings.TrimSpace(string(s.name))),
			"",
			"[Y] Yes   [N] No",
		}, map[int]color.Color{0: warnColor})
	}
}
