// Package desktop provides the Ebiten window front end for Balloon Math.
// It runs the same game engine, level editor and backdrop as the terminal
// front end, drawn with vector shapes instead of text cells.
package desktop

import "github.com/hajimehoshi/ebiten/v2"

// State is one screen of the desktop app.
type State interface {
	Enter()
	Update() error
	Draw(screen *ebiten.Image)
	Exit()
}

// StateMachine switches between screens.
type StateMachine struct {
	current State
}

// SetState leaves the current screen and enters the next one.
func (sm *StateMachine) SetState(next State) {
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = next
	if sm.current != nil {
		sm.current.Enter()
	}
}

// Update updates the current screen.
func (sm *StateMachine) Update() error {
	if sm.current == nil {
		return nil
	}
	return sm.current.Update()
}

// Draw draws the current screen.
func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}
