package svgdraw

import (
	"fmt"

	"github.com/benoitkugler/svgmouse/svgpath"
)

var _ Pointer = (*Recorder)(nil) // assert interface conformance

// ActionKind is the kind of a pointer action.
type ActionKind uint8

const (
	ActionMove ActionKind = iota
	ActionPress
	ActionRelease
)

func (k ActionKind) String() string {
	switch k {
	case ActionMove:
		return "move"
	case ActionPress:
		return "press"
	case ActionRelease:
		return "release"
	default:
		return "<unknown ActionKind>"
	}
}

// Action is one primitive call received by a Recorder.
// X and Y are only meaningful for ActionMove.
type Action struct {
	Kind ActionKind
	X, Y int
}

func (a Action) String() string {
	if a.Kind == ActionMove {
		return fmt.Sprintf("move(%d,%d)", a.X, a.Y)
	}
	return a.Kind.String()
}

// Recorder is a simulated pointer, which stores the actions
// it receives. Its position always is the last one set,
// so that drawing with a Recorder is never interrupted.
type Recorder struct {
	actions []Action
	x, y    int
}

// NewRecorder returns a recorder whose pointer starts at (x, y).
func NewRecorder(x, y int) *Recorder {
	return &Recorder{x: x, y: y}
}

func (r *Recorder) MoveTo(x, y int) {
	r.actions = append(r.actions, Action{Kind: ActionMove, X: x, Y: y})
	r.x, r.y = x, y
}

func (r *Recorder) Press() { r.actions = append(r.actions, Action{Kind: ActionPress}) }

func (r *Recorder) Release() { r.actions = append(r.actions, Action{Kind: ActionRelease}) }

func (r *Recorder) Position() (x, y int) { return r.x, r.y }

// Actions returns the recorded actions, in order.
func (r *Recorder) Actions() []Action { return r.actions }

// Reset forgets the recorded actions, but not the position.
// Slices previously returned by Actions are left untouched.
func (r *Recorder) Reset() { r.actions = nil }

// Stroker consumes polylines. It is implemented by
// the preview renderers, and by *svgpath.Path.
type Stroker interface {
	Start(a svgpath.Point)
	Line(b svgpath.Point)
	Stop(closeLoop bool)
}

// Replay sends to `d` the lines drawn while the button
// was pressed: each press starts a polyline at the current position,
// and each release ends it.
func (r *Recorder) Replay(d Stroker) {
	var (
		current svgpath.Point
		pressed bool
	)
	for _, action := range r.actions {
		switch action.Kind {
		case ActionMove:
			current = svgpath.Point{X: float64(action.X), Y: float64(action.Y)}
			if pressed {
				d.Line(current)
			}
		case ActionPress:
			if !pressed {
				d.Start(current)
			}
			pressed = true
		case ActionRelease:
			if pressed {
				d.Stop(false)
			}
			pressed = false
		}
	}
	if pressed {
		d.Stop(false)
	}
}
