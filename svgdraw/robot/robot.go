// Package robot implements svgdraw.Pointer for the
// actual mouse of the desktop, using robotgo.
package robot

import (
	"errors"

	"github.com/benoitkugler/svgmouse/svgdraw"
	"github.com/go-vgo/robotgo"
)

var _ svgdraw.Pointer = (*Pointer)(nil) // assert interface conformance

// ErrNoScreen is returned when no display is available.
var ErrNoScreen = errors.New("robot: no screen available for pointer automation")

const button = "left"

// Pointer drives the system mouse, using its primary button.
type Pointer struct {
	width, height int
}

// New checks that a screen is available and returns
// a pointer acting on it.
func New() (*Pointer, error) {
	w, h := robotgo.GetScreenSize()
	if w <= 0 || h <= 0 {
		return nil, ErrNoScreen
	}
	svgdraw.Logger().Debug("pointer automation ready", "width", w, "height", h)
	return &Pointer{width: w, height: h}, nil
}

// ScreenSize returns the size of the main screen, in pixels.
func (p *Pointer) ScreenSize() (width, height int) { return p.width, p.height }

func (p *Pointer) MoveTo(x, y int) { robotgo.Move(x, y) }

func (p *Pointer) Press() { robotgo.Toggle(button) }

func (p *Pointer) Release() { robotgo.Toggle(button, "up") }

func (p *Pointer) Position() (x, y int) { return robotgo.Location() }
