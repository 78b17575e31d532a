package svgdraw

import "time"

var _ Pointer = (*Paced)(nil) // assert interface conformance

// Paced waits for a fixed delay after each action
// sent to the wrapped pointer, so that the system
// has time to process it.
type Paced struct {
	pointer Pointer
	delay   time.Duration
	sleep   func(time.Duration)
}

// NewPaced wraps `p`. `sleep` is used to wait; if nil,
// time.Sleep is used.
func NewPaced(p Pointer, delay time.Duration, sleep func(time.Duration)) *Paced {
	if sleep == nil {
		sleep = time.Sleep
	}
	return &Paced{pointer: p, delay: delay, sleep: sleep}
}

func (pc *Paced) MoveTo(x, y int) {
	pc.pointer.MoveTo(x, y)
	pc.sleep(pc.delay)
}

func (pc *Paced) Press() {
	pc.pointer.Press()
	pc.sleep(pc.delay)
}

func (pc *Paced) Release() {
	pc.pointer.Release()
	pc.sleep(pc.delay)
}

// Position is not paced.
func (pc *Paced) Position() (x, y int) { return pc.pointer.Position() }
