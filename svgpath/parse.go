package svgpath

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"unicode"
)

var (
	// ErrParamMismatch is returned when a command has the wrong number of arguments.
	ErrParamMismatch = errors.New("svgpath: param mismatch")
	// ErrCommandUnknown is returned for an unsupported path command letter.
	ErrCommandUnknown = errors.New("svgpath: unknown command")
)

// pathCursor is used to compile the content of
// a `d` attribute into a Path
type pathCursor struct {
	path                   Path
	placeX, placeY         float64 // current point
	cntlPtX, cntlPtY       float64 // last control point, for S and T
	pathStartX, pathStartY float64
	points                 []float64
	lastKey                uint8
	inPath                 bool
}

// ParsePath compiles the path data `d` (the `d` attribute of an SVG path element).
func ParsePath(d string) (Path, error) {
	var c pathCursor
	if err := c.compilePath(d); err != nil {
		return nil, err
	}
	return c.path, nil
}

func (c *pathCursor) init() {
	c.placeX = 0.0
	c.placeY = 0.0
	c.points = c.points[0:0]
	c.lastKey = ' '
	c.path.Clear()
	c.inPath = false
}

// compilePath translates the svgPath description string into a Path.
func (c *pathCursor) compilePath(svgPath string) error {
	c.init()
	lastIndex := -1
	for i, v := range svgPath {
		if unicode.IsLetter(v) && v != 'e' && v != 'E' {
			if lastIndex != -1 {
				if err := c.addSeg(svgPath[lastIndex:i]); err != nil {
					return err
				}
			}
			lastIndex = i
		}
	}
	if lastIndex != -1 {
		if err := c.addSeg(svgPath[lastIndex:]); err != nil {
			return err
		}
	}
	return nil
}

func isNumberSeparator(r byte) bool {
	return r == ' ' || r == ',' || r == '\t' || r == '\n' || r == '\r'
}

// getPoints reads a set of floating point values from the SVG format number string,
// and add them to the cursor's points slice.
// Numbers may be glued together, as in "1.5.5" or "10-5".
// For arcs, the two flags of each group of 7 arguments are a single
// character, so that "0110" reads as 0, 1, 10.
func (c *pathCursor) getPoints(dataPoints string, arc bool) error {
	c.points = c.points[0:0]
	for i := 0; i < len(dataPoints); {
		if isNumberSeparator(dataPoints[i]) {
			i++
			continue
		}
		if slot := len(c.points) % 7; arc && (slot == 3 || slot == 4) {
			switch dataPoints[i] {
			case '0':
				c.points = append(c.points, 0)
			case '1':
				c.points = append(c.points, 1)
			default:
				return fmt.Errorf("svgpath: invalid arc flag in %q", dataPoints)
			}
			i++
			continue
		}
		end := scanNumber(dataPoints, i)
		if end == i {
			return fmt.Errorf("svgpath: invalid number in %q", dataPoints)
		}
		f, err := strconv.ParseFloat(dataPoints[i:end], 64)
		if err != nil {
			return err
		}
		c.points = append(c.points, f)
		i = end
	}
	return nil
}

// scanNumber returns the end of the number starting at `start`.
func scanNumber(s string, start int) int {
	i := start
	if i < len(s) && (s[i] == '-' || s[i] == '+') {
		i++
	}
	var seenDot, seenDigit bool
	for ; i < len(s); i++ {
		ch := s[i]
		if '0' <= ch && ch <= '9' {
			seenDigit = true
		} else if ch == '.' && !seenDot {
			seenDot = true
		} else {
			break
		}
	}
	if !seenDigit {
		return start
	}
	// exponent
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '-' || s[j] == '+') {
			j++
		}
		k := j
		for k < len(s) && '0' <= s[k] && s[k] <= '9' {
			k++
		}
		if k > j {
			i = k
		}
	}
	return i
}

// reflectControlQuad updates the control point for the implicit
// T command, from the previous Q or T command.
func (c *pathCursor) reflectControlQuad() {
	switch c.lastKey {
	case 'q', 'Q', 'T', 't':
		c.cntlPtX, c.cntlPtY = 2*c.placeX-c.cntlPtX, 2*c.placeY-c.cntlPtY
	default:
		c.cntlPtX, c.cntlPtY = c.placeX, c.placeY
	}
}

// reflectControlCube does the same as reflectControlQuad for S commands.
func (c *pathCursor) reflectControlCube() {
	switch c.lastKey {
	case 'c', 'C', 's', 'S':
		c.cntlPtX, c.cntlPtY = 2*c.placeX-c.cntlPtX, 2*c.placeY-c.cntlPtY
	default:
		c.cntlPtX, c.cntlPtY = c.placeX, c.placeY
	}
}

func (c *pathCursor) place() Point { return Point{c.placeX, c.placeY} }

// addSeg decodes an SVG segment string into equivalent path commands
func (c *pathCursor) addSeg(segString string) error {
	// Parse the string describing the numeric points in SVG format
	k := segString[0]
	if err := c.getPoints(segString[1:], k == 'a' || k == 'A'); err != nil {
		return err
	}
	l := len(c.points)
	rel := false
	switch k {
	case 'z', 'Z':
		if l != 0 {
			return ErrParamMismatch
		}
		if c.inPath {
			c.path.Stop(true)
			c.placeX = c.pathStartX
			c.placeY = c.pathStartY
			c.inPath = false
		}
	case 'm':
		rel = true
		fallthrough
	case 'M':
		if l == 0 || l%2 != 0 {
			return ErrParamMismatch
		}
		if rel {
			c.placeX += c.points[0]
			c.placeY += c.points[1]
		} else {
			c.placeX = c.points[0]
			c.placeY = c.points[1]
		}
		c.pathStartX, c.pathStartY = c.placeX, c.placeY
		c.path.Start(c.place())
		c.inPath = true
		// subsequent pairs are implicit line commands
		for i := 2; i < l-1; i += 2 {
			if rel {
				c.placeX += c.points[i]
				c.placeY += c.points[i+1]
			} else {
				c.placeX = c.points[i]
				c.placeY = c.points[i+1]
			}
			c.path.Line(c.place())
		}
	case 'l':
		rel = true
		fallthrough
	case 'L':
		if l == 0 || l%2 != 0 {
			return ErrParamMismatch
		}
		for i := 0; i < l-1; i += 2 {
			if rel {
				c.placeX += c.points[i]
				c.placeY += c.points[i+1]
			} else {
				c.placeX = c.points[i]
				c.placeY = c.points[i+1]
			}
			c.path.Line(c.place())
		}
		c.inPath = true
	case 'v':
		rel = true
		fallthrough
	case 'V':
		if l == 0 {
			return ErrParamMismatch
		}
		for _, p := range c.points {
			if rel {
				c.placeY += p
			} else {
				c.placeY = p
			}
			c.path.Line(c.place())
		}
		c.inPath = true
	case 'h':
		rel = true
		fallthrough
	case 'H':
		if l == 0 {
			return ErrParamMismatch
		}
		for _, p := range c.points {
			if rel {
				c.placeX += p
			} else {
				c.placeX = p
			}
			c.path.Line(c.place())
		}
		c.inPath = true
	case 'q':
		rel = true
		fallthrough
	case 'Q':
		if l == 0 || l%4 != 0 {
			return ErrParamMismatch
		}
		for i := 0; i < l-3; i += 4 {
			if rel {
				c.points[i] += c.placeX
				c.points[i+1] += c.placeY
				c.points[i+2] += c.placeX
				c.points[i+3] += c.placeY
			}
			c.cntlPtX, c.cntlPtY = c.points[i], c.points[i+1]
			c.placeX, c.placeY = c.points[i+2], c.points[i+3]
			c.path.QuadBezier(Point{c.cntlPtX, c.cntlPtY}, c.place())
		}
		c.inPath = true
	case 't':
		rel = true
		fallthrough
	case 'T':
		if l == 0 || l%2 != 0 {
			return ErrParamMismatch
		}
		for i := 0; i < l-1; i += 2 {
			c.reflectControlQuad()
			if rel {
				c.placeX += c.points[i]
				c.placeY += c.points[i+1]
			} else {
				c.placeX = c.points[i]
				c.placeY = c.points[i+1]
			}
			c.path.QuadBezier(Point{c.cntlPtX, c.cntlPtY}, c.place())
			c.lastKey = k
		}
		c.inPath = true
	case 'c':
		rel = true
		fallthrough
	case 'C':
		if l == 0 || l%6 != 0 {
			return ErrParamMismatch
		}
		for i := 0; i < l-5; i += 6 {
			if rel {
				c.points[i] += c.placeX
				c.points[i+1] += c.placeY
				c.points[i+2] += c.placeX
				c.points[i+3] += c.placeY
				c.points[i+4] += c.placeX
				c.points[i+5] += c.placeY
			}
			c.cntlPtX, c.cntlPtY = c.points[i+2], c.points[i+3]
			c.placeX, c.placeY = c.points[i+4], c.points[i+5]
			c.path.CubeBezier(Point{c.points[i], c.points[i+1]}, Point{c.cntlPtX, c.cntlPtY}, c.place())
		}
		c.inPath = true
	case 's':
		rel = true
		fallthrough
	case 'S':
		if l == 0 || l%4 != 0 {
			return ErrParamMismatch
		}
		for i := 0; i < l-3; i += 4 {
			c.reflectControlCube()
			if rel {
				c.points[i] += c.placeX
				c.points[i+1] += c.placeY
				c.points[i+2] += c.placeX
				c.points[i+3] += c.placeY
			}
			first := Point{c.cntlPtX, c.cntlPtY}
			c.cntlPtX, c.cntlPtY = c.points[i], c.points[i+1]
			c.placeX, c.placeY = c.points[i+2], c.points[i+3]
			c.path.CubeBezier(first, Point{c.cntlPtX, c.cntlPtY}, c.place())
			c.lastKey = k
		}
		c.inPath = true
	case 'a':
		rel = true
		fallthrough
	case 'A':
		if l == 0 || l%7 != 0 {
			return ErrParamMismatch
		}
		for i := 0; i < l-6; i += 7 {
			if rel {
				c.points[i+5] += c.placeX
				c.points[i+6] += c.placeY
			}
			if c.points[i+5] == c.placeX && c.points[i+6] == c.placeY {
				continue // zero length arc: nothing to draw
			}
			if c.points[i] == 0 || c.points[i+1] == 0 {
				// a zero radius is a straight line
				c.placeX, c.placeY = c.points[i+5], c.points[i+6]
				c.path.Line(c.place())
				continue
			}
			c.points[i], c.points[i+1] = math.Abs(c.points[i]), math.Abs(c.points[i+1])
			rotX := c.points[i+2] * math.Pi / 180
			cx, cy := findEllipseCenter(&c.points[i], &c.points[i+1], rotX, c.placeX, c.placeY,
				c.points[i+5], c.points[i+6], c.points[i+4] == 0, c.points[i+3] == 0)
			c.placeX, c.placeY = c.path.addArc(c.points[i:i+7], cx, cy, c.placeX, c.placeY)
		}
		c.inPath = true
	default:
		return fmt.Errorf("%w: %q", ErrCommandUnknown, k)
	}
	c.lastKey = k
	return nil
}
