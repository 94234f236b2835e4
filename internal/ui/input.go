package ui

import "github.com/hajimehoshi/ebiten/v2"

var (
	cursorPosition       = ebiten.CursorPosition
	isMouseButtonPressed = ebiten.IsMouseButtonPressed
	isKeyPressed         = ebiten.IsKeyPressed
	windowClosing        = ebiten.IsWindowBeingClosed
)

// SetInputForTest replaces input functions during tests and returns a function
// to restore the originals.
func SetInputForTest(
	cursor func() (int, int),
	mouse func(ebiten.MouseButton) bool,
	key func(ebiten.Key) bool,
	closing func() bool,
) func() {
	oldCursor := cursorPosition
	oldMouse := isMouseButtonPressed
	oldKey := isKeyPressed
	oldClosing := windowClosing
	cursorPosition = cursor
	isMouseButtonPressed = mouse
	isKeyPressed = key
	windowClosing = closing
	return func() {
		cursorPosition = oldCursor
		isMouseButtonPressed = oldMouse
		isKeyPressed = oldKey
		windowClosing = oldClosing
	}
}

// keyEdges turns polled key state into press events.
type keyEdges struct {
	prev map[ebiten.Key]bool
}

func newKeyEdges() *keyEdges { return &keyEdges{prev: map[ebiten.Key]bool{}} }

// justPressed reports whether k is down now but was up on the previous poll.
func (e *keyEdges) justPressed(k ebiten.Key) bool {
	down := isKeyPressed(k)
	was := e.prev[k]
	e.prev[k] = down
	return down && !was
}
