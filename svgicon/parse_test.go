package svgicon

import (
	"strconv"
	"strings"
	"testing"

	"github.com/benoitkugler/svgmouse/svgpath"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseString(t *testing.T, content string, mode ErrorMode) *SvgIcon {
	t.Helper()
	icon, err := ReadIconStream(strings.NewReader(content), mode)
	require.NoError(t, err)
	return icon
}

const square = `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 20 10" width="200px" height="100px">
	<title>A square</title>
	<desc>two shapes</desc>
	<path d="M0 0 L10 0 L10 10 Z"/>
	<g transform="translate(10, 0)">
		<path d="M0 0 h5" transform="scale(2)"/>
	</g>
</svg>`

func TestReadIconStream(t *testing.T) {
	icon := parseString(t, square, StrictErrorMode)

	assert.Equal(t, Bounds{0, 0, 20, 10}, icon.ViewBox)
	assert.Equal(t, "200px", icon.Width)
	assert.Equal(t, []string{"A square"}, icon.Titles)
	assert.Equal(t, []string{"two shapes"}, icon.Descriptions)

	expected := []svgpath.Path{
		{svgpath.MoveTo{X: 0, Y: 0}, svgpath.LineTo{X: 10, Y: 0}, svgpath.LineTo{X: 10, Y: 10}, svgpath.Close{}},
		{svgpath.MoveTo{X: 10, Y: 0}, svgpath.LineTo{X: 20, Y: 0}},
	}
	if diff := cmp.Diff(expected, icon.Shapes.Shapes()); diff != "" {
		t.Errorf("unexpected shapes (-want +got):\n%s", diff)
	}

	box, err := icon.Shapes.BoundingBox()
	require.NoError(t, err)
	assert.Equal(t, svgpath.Rect{Max: svgpath.Point{X: 20, Y: 10}}, box)
}

func TestNestedTransforms(t *testing.T) {
	icon := parseString(t, `<svg>
	<g transform="translate(1 1)">
		<g transform="scale(2, 3)">
			<path d="M1 1 L2 2"/>
		</g>
		<path d="M1 1"/>
	</g>
	<path d="M1 1"/>
	</svg>`, StrictErrorMode)

	shapes := icon.Shapes.Shapes()
	require.Len(t, shapes, 3)
	assert.Equal(t, svgpath.Path{svgpath.MoveTo{X: 3, Y: 4}, svgpath.LineTo{X: 5, Y: 7}}, shapes[0])
	// transforms are popped with their element
	assert.Equal(t, svgpath.Path{svgpath.MoveTo{X: 2, Y: 2}}, shapes[1])
	assert.Equal(t, svgpath.Path{svgpath.MoveTo{X: 1, Y: 1}}, shapes[2])
}

func TestTransformList(t *testing.T) {
	icon := parseString(t, `<svg>
		<path d="M1 0" transform="rotate(90)"/>
		<path d="M1 0" transform="translate(10) rotate(90, 1, 0)"/>
		<path d="M1 1" transform="matrix(1 0 0 1 5 6)"/>
	</svg>`, StrictErrorMode)

	shapes := icon.Shapes.Shapes()
	require.Len(t, shapes, 3)
	p := shapes[0][0].(svgpath.MoveTo)
	assert.InDelta(t, 0, p.X, 1e-9)
	assert.InDelta(t, 1, p.Y, 1e-9)
	p = shapes[1][0].(svgpath.MoveTo)
	assert.InDelta(t, 11, p.X, 1e-9)
	assert.InDelta(t, 0, p.Y, 1e-9)
	assert.Equal(t, svgpath.MoveTo{X: 6, Y: 7}, shapes[2][0])

	_, err := ReadIconStream(strings.NewReader(`<svg><path d="M0 0" transform="scale(1,2,3)"/></svg>`), IgnoreErrorMode)
	assert.Error(t, err)
	_, err = ReadIconStream(strings.NewReader(`<svg><g transform="spin(1)"></g></svg>`), IgnoreErrorMode)
	assert.Error(t, err)
}

func TestSkippedElements(t *testing.T) {
	icon := parseString(t, `<svg>
		<defs>
			<path id="hidden" d="M0 0 L100 100"/>
			<linearGradient><stop offset="0"/></linearGradient>
		</defs>
		<metadata><rdf>x</rdf></metadata>
		<path d="M1 1 L2 2"/>
	</svg>`, StrictErrorMode)

	require.Equal(t, 1, icon.Shapes.Len())
	assert.Equal(t, svgpath.MoveTo{X: 1, Y: 1}, icon.Shapes.Shapes()[0][0])
}

func TestSkippedTransforms(t *testing.T) {
	icon := parseString(t, `<svg>
		<defs transform="nonsense">
			<g transform="spin(1)"><path d="M0 0" transform="scale(1,2,3)"/></g>
		</defs>
		<metadata><rdf transform="?"/></metadata>
		<g transform="translate(1)"><path d="M1 1"/></g>
	</svg>`, StrictErrorMode)

	require.Equal(t, 1, icon.Shapes.Len())
	assert.Equal(t, svgpath.Path{svgpath.MoveTo{X: 2, Y: 1}}, icon.Shapes.Shapes()[0])
}

func TestErrorModes(t *testing.T) {
	const withCircle = `<svg><circle cx="1" cy="1" r="1"/><path d="M0 0 L1 1"/></svg>`

	_, err := ReadIconStream(strings.NewReader(withCircle), StrictErrorMode)
	assert.Error(t, err)

	for _, mode := range []ErrorMode{IgnoreErrorMode, WarnErrorMode} {
		icon := parseString(t, withCircle, mode)
		assert.Equal(t, 1, icon.Shapes.Len(), mode.String())
	}
}

func TestParseErrorMode(t *testing.T) {
	for _, mode := range []ErrorMode{IgnoreErrorMode, WarnErrorMode, StrictErrorMode} {
		got, err := ParseErrorMode(mode.String())
		require.NoError(t, err)
		assert.Equal(t, mode, got)
	}
	got, err := ParseErrorMode("")
	require.NoError(t, err)
	assert.Equal(t, WarnErrorMode, got)

	_, err = ParseErrorMode("loud")
	assert.Error(t, err)
}

func TestInvalidDocuments(t *testing.T) {
	_, err := ReadIconStream(strings.NewReader(""), WarnErrorMode)
	assert.Equal(t, errInvalidIcon, err)

	_, err = ReadIconStream(strings.NewReader(`<svg><path d="M0 0"></svg>`), WarnErrorMode)
	assert.Error(t, err)

	_, err = ReadIconStream(strings.NewReader(`<svg><path d="M0 0 X1"/></svg>`), WarnErrorMode)
	assert.ErrorIs(t, err, svgpath.ErrCommandUnknown)

	_, err = ReadIconStream(strings.NewReader(`<svg viewBox="0 0 1"></svg>`), WarnErrorMode)
	assert.Equal(t, errParamMismatch, err)

	_, err = ReadIconStream(strings.NewReader(`<svg viewBox="0 0 1 x"></svg>`), WarnErrorMode)
	var numErr *strconv.NumError
	assert.ErrorAs(t, err, &numErr, "the number error is reported")

	_, err = ReadIcon("does/not/exist.svg", WarnErrorMode)
	assert.Error(t, err)
}

func TestCharset(t *testing.T) {
	// "é" in latin-1
	content := "<?xml version=\"1.0\" encoding=\"ISO-8859-1\"?><svg><title>caf\xe9</title><path d=\"M0 0 L1 1\"/></svg>"
	icon := parseString(t, content, StrictErrorMode)
	assert.Equal(t, []string{"café"}, icon.Titles)
	assert.Equal(t, 1, icon.Shapes.Len())
}
