package main

import (
	"bufio"
	"fmt"
	"io"
	"time"

	"github.com/benoitkugler/svgmouse/svgpath"
)

// locator returns the live position of the pointer.
type locator interface {
	Position() (x, y int)
}

// prompter runs the console dialog with the user.
type prompter struct {
	in    *bufio.Scanner
	out   io.Writer
	sleep func(time.Duration)
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewScanner(in), out: out, sleep: time.Sleep}
}

func (p *prompter) println(a ...interface{}) { fmt.Fprintln(p.out, a...) }

// waitEnter prints `lines` and blocks until a line is read.
// A closed input is not an error.
func (p *prompter) waitEnter(lines ...string) error {
	for _, line := range lines {
		p.println(line)
	}
	if !p.in.Scan() {
		return p.in.Err()
	}
	return nil
}

// askArea asks the user to point two opposite corners of the drawing area.
func (p *prompter) askArea(pointer locator) (svgpath.Rect, error) {
	var corners [2]svgpath.Point
	for i, name := range [2]string{"first", "opposite"} {
		if err := p.waitEnter(fmt.Sprintf("Move the pointer to the %s corner of the drawing area, then press Enter.", name)); err != nil {
			return svgpath.Rect{}, err
		}
		x, y := pointer.Position()
		corners[i] = svgpath.Point{X: float64(x), Y: float64(y)}
	}
	area := svgpath.NewRect(corners[0], corners[1])
	p.println(fmt.Sprintf("Drawing area: (%g, %g) to (%g, %g).", area.Min.X, area.Min.Y, area.Max.X, area.Max.Y))
	return area, nil
}

// countdown prints n, n-1, ..., 1, one per second.
func (p *prompter) countdown(n int) error {
	if err := p.waitEnter(
		"Press Enter, then focus the window to draw onto: drawing starts after the countdown.",
		"Moving the mouse while drawing aborts it.",
	); err != nil {
		return err
	}
	for i := n; i > 0; i-- {
		p.println(i)
		p.sleep(time.Second)
	}
	return nil
}
