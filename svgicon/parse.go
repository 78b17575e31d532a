package svgicon

import (
	"encoding/xml"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/benoitkugler/svgmouse/svgpath"
)

var errParamMismatch = errors.New("svgicon: param mismatch")

// iconCursor is used while parsing SVG files
type iconCursor struct {
	icon                    *SvgIcon
	transforms              []svgpath.Matrix2D // current transform is on top
	points                  []float64
	errorMode               ErrorMode
	inTitleText, inDescText bool
	skipDepth               int // > 0 inside an element whose content is not drawn
}

// splitOnCommaOrSpace returns a list of strings after splitting the input on comma and space delimiters
func splitOnCommaOrSpace(s string) []string {
	return strings.FieldsFunc(s,
		func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
		})
}

// getPoints reads a list of numbers into c.points
func (c *iconCursor) getPoints(dataPoints string) error {
	c.points = c.points[:0]
	for _, f := range splitOnCommaOrSpace(dataPoints) {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return err
		}
		c.points = append(c.points, v)
	}
	return nil
}

// parseBasicFloat parses a length, ignoring its unit
func parseBasicFloat(s string) (float64, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimRightFunc(s, func(r rune) bool {
		return r == '%' || ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
	})
	return strconv.ParseFloat(s, 64)
}

func (c *iconCursor) handleError(errStr string) error {
	switch c.errorMode {
	case StrictErrorMode:
		return errors.New(errStr)
	case WarnErrorMode:
		slog.Warn(errStr)
	}
	return nil
}

func (c *iconCursor) readTransformAttr(m1 svgpath.Matrix2D, k string) (svgpath.Matrix2D, error) {
	ln := len(c.points)
	switch k {
	case "rotate":
		if ln == 1 {
			m1 = m1.Rotate(c.points[0] * math.Pi / 180)
		} else if ln == 3 {
			m1 = m1.Translate(c.points[1], c.points[2]).
				Rotate(c.points[0]*math.Pi/180).
				Translate(-c.points[1], -c.points[2])
		} else {
			return m1, errParamMismatch
		}
	case "translate":
		if ln == 1 {
			m1 = m1.Translate(c.points[0], 0)
		} else if ln == 2 {
			m1 = m1.Translate(c.points[0], c.points[1])
		} else {
			return m1, errParamMismatch
		}
	case "skewx":
		if ln == 1 {
			m1 = m1.SkewX(c.points[0] * math.Pi / 180)
		} else {
			return m1, errParamMismatch
		}
	case "skewy":
		if ln == 1 {
			m1 = m1.SkewY(c.points[0] * math.Pi / 180)
		} else {
			return m1, errParamMismatch
		}
	case "scale":
		if ln == 1 {
			m1 = m1.Scale(c.points[0], c.points[0])
		} else if ln == 2 {
			m1 = m1.Scale(c.points[0], c.points[1])
		} else {
			return m1, errParamMismatch
		}
	case "matrix":
		if ln == 6 {
			m1 = m1.Mult(svgpath.Matrix2D{
				A: c.points[0],
				B: c.points[1],
				C: c.points[2],
				D: c.points[3],
				E: c.points[4],
				F: c.points[5]})
		} else {
			return m1, errParamMismatch
		}
	default:
		return m1, errParamMismatch
	}
	return m1, nil
}

// parseTransform applies the transform list `v` on top of the current transform.
func (c *iconCursor) parseTransform(v string) (svgpath.Matrix2D, error) {
	ts := strings.Split(v, ")")
	m1 := c.transforms[len(c.transforms)-1]
	for _, t := range ts {
		t = strings.TrimSpace(t)
		t = strings.TrimLeft(t, ", ")
		if len(t) == 0 {
			continue
		}
		d := strings.Split(t, "(")
		if len(d) != 2 || len(d[1]) < 1 {
			return m1, errParamMismatch // badly formed transformation
		}
		err := c.getPoints(d[1])
		if err != nil {
			return m1, err
		}
		m1, err = c.readTransformAttr(m1, strings.ToLower(strings.TrimSpace(d[0])))
		if err != nil {
			return m1, err
		}
	}
	return m1, nil
}

// pushTransform reads the transform attribute of the element
// and push it on the stack. Elements which are not drawn
// only repeat the current transform.
func (c *iconCursor) pushTransform(se xml.StartElement) error {
	current := c.transforms[len(c.transforms)-1]
	if c.skipDepth > 0 || skippedElements[se.Name.Local] {
		c.transforms = append(c.transforms, current)
		return nil
	}
	for _, attr := range se.Attr {
		if strings.ToLower(attr.Name.Local) != "transform" {
			continue
		}
		m, err := c.parseTransform(attr.Value)
		if err != nil {
			return fmt.Errorf("invalid transform %q: %w", attr.Value, err)
		}
		current = m
	}
	c.transforms = append(c.transforms, current)
	return nil
}

func (c *iconCursor) readStartElement(se xml.StartElement) error {
	if c.skipDepth > 0 {
		c.skipDepth++
		return nil
	}
	if skippedElements[se.Name.Local] {
		c.skipDepth = 1
		return nil
	}
	df, ok := drawFuncs[se.Name.Local]
	if !ok {
		return c.handleError("Cannot process svg element " + se.Name.Local)
	}
	return df(c, se.Attr)
}

type svgFunc func(c *iconCursor, attrs []xml.Attr) error

var drawFuncs = map[string]svgFunc{
	"svg":   svgF,
	"g":     gF,
	"path":  pathF,
	"desc":  descF,
	"title": titleF,
}

// elements whose content is never drawn
var skippedElements = map[string]bool{
	"defs":      true,
	"metadata":  true,
	"style":     true,
	"namedview": true, // inkscape
}

func svgF(c *iconCursor, attrs []xml.Attr) error {
	c.icon.ViewBox = Bounds{}
	var width, height float64
	var err error
	for _, attr := range attrs {
		switch attr.Name.Local {
		case "viewBox":
			if err = c.getPoints(attr.Value); err != nil {
				return err
			}
			if len(c.points) != 4 {
				return errParamMismatch
			}
			c.icon.ViewBox.X = c.points[0]
			c.icon.ViewBox.Y = c.points[1]
			c.icon.ViewBox.W = c.points[2]
			c.icon.ViewBox.H = c.points[3]
		case "width":
			c.icon.Width = attr.Value
			width, err = parseBasicFloat(attr.Value)
		case "height":
			c.icon.Height = attr.Value
			height, err = parseBasicFloat(attr.Value)
		}
		if err != nil {
			return err
		}
	}
	if c.icon.ViewBox.W == 0 {
		c.icon.ViewBox.W = width
	}
	if c.icon.ViewBox.H == 0 {
		c.icon.ViewBox.H = height
	}
	return nil
}

func gF(*iconCursor, []xml.Attr) error { return nil } // g does nothing but push the transform

func pathF(c *iconCursor, attrs []xml.Attr) error {
	for _, attr := range attrs {
		if attr.Name.Local != "d" {
			continue
		}
		path, err := svgpath.ParsePath(attr.Value)
		if err != nil {
			return fmt.Errorf("invalid path data: %w", err)
		}
		if len(path) == 0 {
			return nil
		}
		if m := c.transforms[len(c.transforms)-1]; m != svgpath.Identity {
			path = path.Transform(m)
		}
		c.icon.Shapes.AddShape(path)
	}
	return nil
}

func descF(c *iconCursor, attrs []xml.Attr) error {
	c.inDescText = true
	c.icon.Descriptions = append(c.icon.Descriptions, "")
	return nil
}

func titleF(c *iconCursor, attrs []xml.Attr) error {
	c.inTitleText = true
	c.icon.Titles = append(c.icon.Titles, "")
	return nil
}
