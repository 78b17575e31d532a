// Given a parsed set of SVG outlines, implements how to
// draw it on screen with a pointing device.
// This requires a driver implementing the actual pointer operations,
// such as a desktop automation backend (see svgdraw/robot) or
// the Recorder defined here, which is used for previews.
package svgdraw

import (
	"errors"
	"fmt"
	"math"

	"github.com/benoitkugler/svgmouse/svgpath"
)

// Pointer is the pointing device driven by a Controller.
// Coordinates are screen pixels.
type Pointer interface {
	// MoveTo moves the pointer to the absolute position (x, y)
	MoveTo(x, y int)
	// Press pushes the primary button down
	Press()
	// Release lifts the primary button
	Release()
	// Position returns the live position of the pointer
	Position() (x, y int)
}

// State is the state of a drawing pass.
type State uint8

const (
	Idle State = iota
	Running
	Done
	Aborted
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Done:
		return "done"
	case Aborted:
		return "aborted"
	default:
		return "<unknown State>"
	}
}

var errInterference = errors.New("pointer moved by an external actor")

// Controller walks the shapes of a model and reproduces them
// with a Pointer.
// A Controller must not be used concurrently.
type Controller struct {
	pointer Pointer
	state   State

	pressed bool
	// last position set by the controller, in screen pixels
	cursorX, cursorY int
}

// NewController returns an idle controller driving `p`.
func NewController(p Pointer) *Controller {
	return &Controller{pointer: p}
}

// State returns the state of the last drawing pass.
func (c *Controller) State() State { return c.state }

// Draw draws every shape of `model`, with each point mapped by `transform`
// into screen coordinates (see svgpath.Fit).
// Before each move, the live pointer position is compared
// to the last one set: if it differs, the button is released and Draw
// returns false right away.
// Draw returns true when all the shapes have been drawn.
func (c *Controller) Draw(model *svgpath.Model, transform svgpath.Matrix2D) bool {
	c.state = Running
	c.pressed = false
	if model == nil || model.Len() == 0 {
		c.state = Done
		return true
	}

	logger := Logger()
	c.cursorX, c.cursorY = c.pointer.Position()
	logger.Info("drawing started", "shapes", model.Len(), "x", c.cursorX, "y", c.cursorY)

	for i, shape := range model.Shapes() {
		logger.Debug("drawing shape", "index", i, "segments", len(shape))
		if err := c.drawShape(shape, transform); err != nil {
			c.release()
			c.state = Aborted
			logger.Warn("drawing aborted", "shape", i, "error", err)
			return false
		}
	}

	c.state = Done
	logger.Info("drawing done")
	return true
}

func (c *Controller) drawShape(shape svgpath.Path, m svgpath.Matrix2D) error {
	c.release()

	var start, previous svgpath.Point
	for _, op := range shape {
		switch op := op.(type) {
		case svgpath.MoveTo:
			p := m.Apply(svgpath.Point(op))
			c.release()
			if err := c.moveTo(p); err != nil {
				return err
			}
			start, previous = p, p
		case svgpath.LineTo:
			p := m.Apply(svgpath.Point(op))
			c.press()
			if err := c.moveTo(p); err != nil {
				return err
			}
			previous = p
		case svgpath.Close:
			c.press()
			if err := c.moveTo(start); err != nil {
				return err
			}
			previous = start
		case svgpath.QuadTo:
			ctrl, p := m.Apply(op[0]), m.Apply(op[1])
			c.press()
			if err := c.moveThrough(svgpath.FlattenQuad(previous, ctrl, p, svgpath.Subdivisions)); err != nil {
				return err
			}
			previous = p
		case svgpath.CubicTo:
			ctrl1, ctrl2, p := m.Apply(op[0]), m.Apply(op[1]), m.Apply(op[2])
			c.press()
			if err := c.moveThrough(svgpath.FlattenCubic(previous, ctrl1, ctrl2, p, svgpath.Subdivisions)); err != nil {
				return err
			}
			previous = p
		}
	}

	c.release()
	return nil
}

func (c *Controller) moveThrough(points []svgpath.Point) error {
	for _, p := range points {
		if err := c.moveTo(p); err != nil {
			return err
		}
	}
	return nil
}

// moveTo checks for interference, then moves to the pixel nearest to `p`.
func (c *Controller) moveTo(p svgpath.Point) error {
	if x, y := c.pointer.Position(); x != c.cursorX || y != c.cursorY {
		return fmt.Errorf("%w: expected (%d, %d), got (%d, %d)", errInterference, c.cursorX, c.cursorY, x, y)
	}
	x, y := int(math.Round(p.X)), int(math.Round(p.Y))
	c.pointer.MoveTo(x, y)
	c.cursorX, c.cursorY = x, y
	return nil
}

func (c *Controller) press() {
	if c.pressed {
		return
	}
	c.pointer.Press()
	c.pressed = true
}

func (c *Controller) release() {
	if !c.pressed {
		return
	}
	c.pointer.Release()
	c.pressed = false
}
