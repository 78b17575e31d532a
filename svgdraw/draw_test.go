package svgdraw

import (
	"bytes"
	"context"
	"log/slog"
	"math/rand"
	"testing"
	"time"

	"github.com/benoitkugler/svgmouse/svgpath"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func move(x, y int) Action { return Action{Kind: ActionMove, X: x, Y: y} }

var (
	press   = Action{Kind: ActionPress}
	release = Action{Kind: ActionRelease}
)

func squareModel() *svgpath.Model {
	var p svgpath.Path
	p.Start(svgpath.Point{X: 0, Y: 0})
	p.Line(svgpath.Point{X: 10, Y: 0})
	p.Line(svgpath.Point{X: 10, Y: 10})
	p.Stop(true)
	var m svgpath.Model
	m.AddShape(p)
	return &m
}

// fitTo returns the transform drawing `model` into the rectangle with corners a and b.
func fitTo(t *testing.T, model *svgpath.Model, a, b svgpath.Point) svgpath.Matrix2D {
	t.Helper()
	box, err := model.BoundingBox()
	require.NoError(t, err)
	return svgpath.Fit(box, svgpath.NewRect(a, b))
}

// intruder simulates a user grabbing the pointer
// once `after` moves have been made.
type intruder struct {
	*Recorder
	after int
}

func (in *intruder) moves() int {
	n := 0
	for _, a := range in.Actions() {
		if a.Kind == ActionMove {
			n++
		}
	}
	return n
}

func (in *intruder) Position() (int, int) {
	if in.moves() >= in.after {
		return -1, -1
	}
	return in.Recorder.Position()
}

func TestDrawSquare(t *testing.T) {
	model := squareModel()
	tr := fitTo(t, model, svgpath.Point{X: 100, Y: 100}, svgpath.Point{X: 300, Y: 300})

	rec := NewRecorder(0, 0)
	ct := NewController(rec)
	assert.Equal(t, Idle, ct.State())

	require.True(t, ct.Draw(model, tr))
	assert.Equal(t, Done, ct.State())

	expected := []Action{move(100, 100), press, move(300, 100), move(300, 300), move(100, 100), release}
	if diff := cmp.Diff(expected, rec.Actions()); diff != "" {
		t.Errorf("unexpected actions (-want +got):\n%s", diff)
	}

	// corners given in the other order
	rec.Reset()
	tr = fitTo(t, model, svgpath.Point{X: 300, Y: 100}, svgpath.Point{X: 100, Y: 300})
	require.True(t, ct.Draw(model, tr))
	if diff := cmp.Diff(expected, rec.Actions()); diff != "" {
		t.Errorf("unexpected actions (-want +got):\n%s", diff)
	}
}

func TestDrawEmpty(t *testing.T) {
	rec := NewRecorder(0, 0)
	ct := NewController(rec)
	assert.True(t, ct.Draw(&svgpath.Model{}, svgpath.Identity))
	assert.True(t, ct.Draw(nil, svgpath.Identity))
	assert.Equal(t, Done, ct.State())
	assert.Empty(t, rec.Actions())
}

func TestDrawCurves(t *testing.T) {
	var p svgpath.Path
	p.Start(svgpath.Point{X: 0, Y: 0})
	p.QuadBezier(svgpath.Point{X: 5, Y: 10}, svgpath.Point{X: 10, Y: 0})
	p.CubeBezier(svgpath.Point{X: 10, Y: 10}, svgpath.Point{X: 20, Y: 10}, svgpath.Point{X: 20, Y: 0})
	var m svgpath.Model
	m.AddShape(p)

	rec := NewRecorder(0, 0)
	require.True(t, NewController(rec).Draw(&m, svgpath.Identity))

	actions := rec.Actions()
	// move, press, 2 * Subdivisions moves, release
	require.Len(t, actions, 3+2*svgpath.Subdivisions)
	assert.Equal(t, move(0, 0), actions[0])
	assert.Equal(t, press, actions[1])
	assert.Equal(t, move(5, 5), actions[2+4], "apex of the quadratic curve")
	assert.Equal(t, move(10, 0), actions[1+svgpath.Subdivisions])
	assert.Equal(t, move(15, 8), actions[1+svgpath.Subdivisions+5], "cubic at t = 0.5 is (15, 7.5)")
	assert.Equal(t, move(20, 0), actions[len(actions)-2])
	assert.Equal(t, release, actions[len(actions)-1])
}

func TestDrawRounding(t *testing.T) {
	var p svgpath.Path
	p.Start(svgpath.Point{X: 0, Y: 0})
	p.Line(svgpath.Point{X: 1, Y: 1})
	var m svgpath.Model
	m.AddShape(p)

	rec := NewRecorder(0, 0)
	require.True(t, NewController(rec).Draw(&m, svgpath.Identity.Translate(0.4, 0.6)))
	expected := []Action{move(0, 1), press, move(1, 2), release}
	if diff := cmp.Diff(expected, rec.Actions()); diff != "" {
		t.Errorf("unexpected actions (-want +got):\n%s", diff)
	}
}

func TestDrawSeveralShapes(t *testing.T) {
	var m svgpath.Model
	var p svgpath.Path
	p.Start(svgpath.Point{X: 0, Y: 0})
	p.Line(svgpath.Point{X: 1, Y: 0})
	// a second sub path inside the same shape
	p.Start(svgpath.Point{X: 5, Y: 5})
	p.Line(svgpath.Point{X: 6, Y: 5})
	m.AddShape(p)
	p.Clear()
	p.Start(svgpath.Point{X: 2, Y: 2})
	m.AddShape(p)

	rec := NewRecorder(0, 0)
	require.True(t, NewController(rec).Draw(&m, svgpath.Identity))
	expected := []Action{
		move(0, 0), press, move(1, 0), release, move(5, 5), press, move(6, 5), release,
		move(2, 2),
	}
	if diff := cmp.Diff(expected, rec.Actions()); diff != "" {
		t.Errorf("unexpected actions (-want +got):\n%s", diff)
	}
}

func randomModel(rnd *rand.Rand) *svgpath.Model {
	pt := func() svgpath.Point { return svgpath.Point{X: rnd.Float64()*200 - 100, Y: rnd.Float64() * 50} }
	var m svgpath.Model
	for range [5]int{} {
		var p svgpath.Path
		p.Start(pt())
		for range [6]int{} {
			switch rnd.Intn(5) {
			case 0:
				p.Start(pt())
			case 1:
				p.Line(pt())
			case 2:
				p.QuadBezier(pt(), pt())
			case 3:
				p.CubeBezier(pt(), pt(), pt())
			case 4:
				p.Stop(true)
			}
		}
		m.AddShape(p)
	}
	return &m
}

func TestPenBalance(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	for range [20]int{} {
		model := randomModel(rnd)
		tr := fitTo(t, model, svgpath.Point{X: 0, Y: 0}, svgpath.Point{X: 640, Y: 480})
		rec := NewRecorder(320, 240)
		require.True(t, NewController(rec).Draw(model, tr))

		pressed := false
		for _, a := range rec.Actions() {
			switch a.Kind {
			case ActionPress:
				require.False(t, pressed, "two presses without release")
				pressed = true
			case ActionRelease:
				require.True(t, pressed, "release without press")
				pressed = false
			case ActionMove:
				assert.True(t, 0 <= a.X && a.X <= 640 && 0 <= a.Y && a.Y <= 480, a)
			}
		}
		assert.False(t, pressed)
	}
}

func TestAbort(t *testing.T) {
	model := squareModel()
	tr := fitTo(t, model, svgpath.Point{X: 100, Y: 100}, svgpath.Point{X: 300, Y: 300})

	for _, test := range []struct {
		after    int
		expected []Action
	}{
		{1, []Action{move(100, 100), press, release}},
		{2, []Action{move(100, 100), press, move(300, 100), release}},
		{4, []Action{move(100, 100), press, move(300, 100), move(300, 300), move(100, 100), release}},
	} {
		in := &intruder{Recorder: NewRecorder(0, 0), after: test.after}
		ct := NewController(in)
		ok := ct.Draw(model, tr)
		if test.after < 4 {
			assert.False(t, ok)
			assert.Equal(t, Aborted, ct.State())
		} else {
			// the user moved after the last move: nothing to interrupt
			assert.True(t, ok)
		}
		if diff := cmp.Diff(test.expected, in.Actions()); diff != "" {
			t.Errorf("after %d moves: unexpected actions (-want +got):\n%s", test.after, diff)
		}
	}
}

func TestAbortIsImmediate(t *testing.T) {
	rnd := rand.New(rand.NewSource(2))
	model := randomModel(rnd)
	tr := fitTo(t, model, svgpath.Point{X: 0, Y: 0}, svgpath.Point{X: 640, Y: 480})
	for after := 1; after < 30; after++ {
		in := &intruder{Recorder: NewRecorder(0, 0), after: after}
		require.False(t, NewController(in).Draw(model, tr))

		actions := in.Actions()
		assert.Equal(t, after, in.moves())
		// only a release may follow the last move
		last := 0
		for i, a := range actions {
			if a.Kind == ActionMove {
				last = i
			}
		}
		for _, a := range actions[last+1:] {
			assert.NotEqual(t, ActionMove, a.Kind)
		}
		if n := len(actions) - last - 1; n > 0 {
			assert.Equal(t, release, actions[len(actions)-1])
		}
	}
}

func TestPaced(t *testing.T) {
	var sleeps []time.Duration
	rec := NewRecorder(0, 0)
	paced := NewPaced(rec, 20*time.Millisecond, func(d time.Duration) { sleeps = append(sleeps, d) })

	model := squareModel()
	tr := fitTo(t, model, svgpath.Point{X: 100, Y: 100}, svgpath.Point{X: 300, Y: 300})
	require.True(t, NewController(paced).Draw(model, tr))

	assert.Len(t, sleeps, len(rec.Actions()))
	for _, d := range sleeps {
		assert.Equal(t, 20*time.Millisecond, d)
	}

	x, y := paced.Position()
	assert.Equal(t, [2]int{100, 100}, [2]int{x, y})
	assert.Len(t, sleeps, len(rec.Actions()), "position is not paced")
}

func TestRecorderReset(t *testing.T) {
	rec := NewRecorder(0, 0)
	rec.MoveTo(1, 2)
	rec.Press()
	before := rec.Actions()

	rec.Reset()
	assert.Empty(t, rec.Actions())
	rec.MoveTo(3, 4)
	rec.Release()

	assert.Equal(t, []Action{move(1, 2), press}, before)
	assert.Equal(t, []Action{move(3, 4), release}, rec.Actions())
	x, y := rec.Position()
	assert.Equal(t, [2]int{3, 4}, [2]int{x, y})
}

func TestReplay(t *testing.T) {
	model := squareModel()
	tr := fitTo(t, model, svgpath.Point{X: 100, Y: 100}, svgpath.Point{X: 300, Y: 300})
	rec := NewRecorder(0, 0)
	require.True(t, NewController(rec).Draw(model, tr))

	var got svgpath.Path
	rec.Replay(&got)
	expected := svgpath.Path{
		svgpath.MoveTo{X: 100, Y: 100},
		svgpath.LineTo{X: 300, Y: 100},
		svgpath.LineTo{X: 300, Y: 300},
		svgpath.LineTo{X: 100, Y: 100},
	}
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("unexpected strokes (-want +got):\n%s", diff)
	}
}

func TestAbortIsLogged(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	defer SetLogger(nil)

	in := &intruder{Recorder: NewRecorder(0, 0), after: 2}
	model := squareModel()
	require.False(t, NewController(in).Draw(model, svgpath.Identity))
	assert.Contains(t, buf.String(), "drawing aborted")
	assert.Contains(t, buf.String(), "pointer moved by an external actor")
}

func TestNopLogger(t *testing.T) {
	SetLogger(nil)
	require.NotNil(t, Logger())
	assert.False(t, Logger().Enabled(context.Background(), slog.LevelError))
}
