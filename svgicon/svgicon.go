// Provides parsing of the outlines of SVG images.
// SVG files are parsed into an abstract representation,
// a list of shapes made of path commands, which can
// then be drawn with svgdraw.
// Only <path> elements are supported.
package svgicon

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/benoitkugler/svgmouse/svgpath"
	"golang.org/x/net/html/charset"
)

// ErrorMode is the for setting how the parser reacts to unparsed elements
type ErrorMode uint8

const (
	// IgnoreErrorMode skips unparsed SVG elements
	IgnoreErrorMode ErrorMode = iota
	// WarnErrorMode outputs a warning for unparsed SVG elements
	WarnErrorMode
	// StrictErrorMode causes an error when an unparsed SVG element is found
	StrictErrorMode
)

func (m ErrorMode) String() string {
	switch m {
	case IgnoreErrorMode:
		return "ignore"
	case WarnErrorMode:
		return "warn"
	case StrictErrorMode:
		return "strict"
	default:
		return "<unknown ErrorMode>"
	}
}

// ParseErrorMode is the inverse of ErrorMode.String.
func ParseErrorMode(s string) (ErrorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ignore":
		return IgnoreErrorMode, nil
	case "warn", "":
		return WarnErrorMode, nil
	case "strict":
		return StrictErrorMode, nil
	default:
		return 0, fmt.Errorf("invalid error mode %q", s)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler, using ParseErrorMode.
func (m *ErrorMode) UnmarshalText(text []byte) error {
	mode, err := ParseErrorMode(string(text))
	if err != nil {
		return err
	}
	*m = mode
	return nil
}

var errInvalidIcon = errors.New("invalid svg xml icon")

// Bounds defines a bounding box, such as a viewport.
type Bounds struct{ X, Y, W, H float64 }

// SvgIcon holds data from parsed SVGs.
type SvgIcon struct {
	ViewBox      Bounds
	Titles       []string // Title elements collect here
	Descriptions []string // Description elements collect here

	// Shapes stores one shape per <path> element, in document order,
	// with the transforms of the document already applied.
	Shapes svgpath.Model

	Width, Height string // top level width and height attributes
}

// ReadIconStream reads the Icon from the given io.Reader
// This only supports a sub-set of SVG, but
// is enough to draw many outlines. errMode determines if the icon ignores, errors out, or logs a warning
// if it does not handle an element found in the icon file.
func ReadIconStream(stream io.Reader, errMode ErrorMode) (*SvgIcon, error) {
	icon := &SvgIcon{}
	cursor := &iconCursor{transforms: []svgpath.Matrix2D{svgpath.Identity}, icon: icon, errorMode: errMode}
	decoder := xml.NewDecoder(stream)
	decoder.CharsetReader = charset.NewReaderLabel
	seenTag := false
	for {
		t, err := decoder.Token()
		if err != nil {
			if err == io.EOF {
				if !seenTag {
					return nil, errInvalidIcon
				}
				break
			}
			return icon, err
		}
		// Inspect the type of the XML token
		switch se := t.(type) {
		case xml.StartElement:
			seenTag = true
			// Reads the transform attribute of the start element
			// and places it on top of the stack
			if err = cursor.pushTransform(se); err != nil {
				return icon, err
			}
			if err = cursor.readStartElement(se); err != nil {
				return icon, err
			}
		case xml.EndElement:
			cursor.transforms = cursor.transforms[:len(cursor.transforms)-1]
			if cursor.skipDepth > 0 {
				cursor.skipDepth--
				continue
			}
			switch se.Name.Local {
			case "title":
				cursor.inTitleText = false
			case "desc":
				cursor.inDescText = false
			}
		case xml.CharData:
			if cursor.inTitleText {
				icon.Titles[len(icon.Titles)-1] += string(se)
			}
			if cursor.inDescText {
				icon.Descriptions[len(icon.Descriptions)-1] += string(se)
			}
		}
	}
	return icon, nil
}

// ReadIcon reads the Icon from the named file
// This only supports a sub-set of SVG, but
// is enough to draw many outlines. errMode determines if the icon ignores, errors out, or logs a warning
// if it does not handle an element found in the icon file.
func ReadIcon(iconFile string, errMode ErrorMode) (*SvgIcon, error) {
	fin, errf := os.Open(iconFile)
	if errf != nil {
		return nil, errf
	}
	defer fin.Close()
	return ReadIconStream(fin, errMode)
}
