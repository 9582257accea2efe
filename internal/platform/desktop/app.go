package desktop

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/balloon-math/internal/core"
	"github.com/vovakirdan/balloon-math/internal/platform/tui"
)

// App is the ebiten.Game running one desktop session.
type App struct {
	session *tui.Session
	sm      StateMachine
	quit    bool
}

// NewApp creates the desktop app, starting at the menu or, when
// startLevel is set, directly in that level.
func NewApp(session *tui.Session, startLevel string) (*App, error) {
	a := &App{session: session}
	if startLevel == "" {
		a.toMenu()
		return a, nil
	}

	c, ok := session.FindLevel(startLevel)
	if !ok {
		return nil, fmt.Errorf("desktop: unknown level %q", startLevel)
	}
	if err := a.play(c); err != nil {
		return nil, err
	}
	return a, nil
}

// Update advances the current screen by one tick.
func (a *App) Update() error {
	if a.quit {
		return ebiten.Termination
	}
	return a.sm.Update()
}

// Draw draws the current screen.
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(bgColor)
	a.sm.Draw(screen)
}

// Layout keeps a fixed logical size; ebiten scales it to the window.
func (a *App) Layout(_, _ int) (int, int) {
	return ScreenWidth, ScreenHeight
}

func (a *App) toMenu() {
	a.sm.SetState(newMenuState(a))
}

func (a *App) play(c tui.LevelChoice) error {
	lvl, err := a.session.BuildLevel(c)
	if err != nil {
		return err
	}
	a.sm.SetState(newPlayState(a, lvl))
	return nil
}

// Run opens the window and blocks until it is closed.
func Run(session *tui.Session, startLevel string) error {
	app, err := NewApp(session, startLevel)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(ScreenWidth, ScreenHeight)
	ebiten.SetWindowTitle("Balloon Math")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(session.Runtime.TickRate)

	return ebiten.RunGame(app)
}

// keyFrame maps the keys pressed this tick to actions.
// Letters are left out so they can be typed into text fields.
func keyFrame() core.InputFrame {
	frame := core.NewInputFrame()
	keys := []struct {
		key    ebiten.Key
		action core.Action
	}{
		{ebiten.KeyArrowUp, core.ActionUp},
		{ebiten.KeyArrowDown, core.ActionDown},
		{ebiten.KeyArrowLeft, core.ActionLeft},
		{ebiten.KeyArrowRight, core.ActionRight},
		{ebiten.KeySpace, core.ActionToggle},
		{ebiten.KeyTab, core.ActionCycle},
		{ebiten.KeyEnter, core.ActionConfirm},
		{ebiten.KeyNumpadEnter, core.ActionConfirm},
		{ebiten.KeyEscape, core.ActionBack},
	}
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k.key) || repeating(k.key) {
			frame.Set(k.action)
		}
	}
	return frame
}

// repeating reports key auto-repeat for held arrow keys.
func repeating(k ebiten.Key) bool {
	switch k {
	case ebiten.KeyArrowUp, ebiten.KeyArrowDown, ebiten.KeyArrowLeft, ebiten.KeyArrowRight:
	default:
		return false
	}
	d := inpututil.KeyPressDuration(k)
	return d > 20 && d%4 == 0
}

// editLine applies the characters typed this tick and backspace to buf.
func editLine(buf []rune, limit int) []rune {
	for _, r := range ebiten.AppendInputChars(nil) {
		if len(buf) < limit {
			buf = append(buf, r)
		}
	}
	if len(buf) > 0 && (inpututil.IsKeyJustPressed(ebiten.KeyBackspace) || backspaceRepeat()) {
		buf = buf[:len(buf)-1]
	}
	return buf
}

func backspaceRepeat() bool {
	d := inpututil.KeyPressDuration(ebiten.KeyBackspace)
	return d > 20 && d%3 == 0
}

func ctrlPressed() bool {
	return ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)
}
