// Implements a raster backend to preview drawings,
// by wrapping rasterx.
package svgraster

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	"github.com/benoitkugler/svgmouse/svgdraw"
	"github.com/benoitkugler/svgmouse/svgpath"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/draw"
	"golang.org/x/image/math/fixed"
)

var _ svgdraw.Stroker = (*Renderer)(nil) // assert interface conformance

// LineWidth is the default width of the strokes, in pixels.
const LineWidth = 2.

// Renderer strokes polylines with round joins and caps.
type Renderer struct {
	dasher *rasterx.Dasher
}

// NewRenderer returns a renderer drawing black lines of width LineWidth.
// If scanner is nil, a default scanner rasterx.ScannerGV is used
// on a new image of the given size.
func NewRenderer(width, height int, scanner rasterx.Scanner) *Renderer {
	if scanner == nil {
		img := image.NewRGBA(image.Rect(0, 0, width, height))
		scanner = rasterx.NewScannerGV(width, height, img, img.Bounds())
	}
	rd := &Renderer{dasher: rasterx.NewDasher(width, height, scanner)}
	rd.SetStrokeOptions(LineWidth, color.Black)
	return rd
}

// SetStrokeOptions changes the line width and color of the following strokes.
func (rd *Renderer) SetStrokeOptions(width float64, c color.Color) {
	rd.dasher.SetStroke(fixed.Int26_6(width*64), 4*64, rasterx.RoundCap, rasterx.RoundCap,
		rasterx.RoundGap, rasterx.Round, nil, 0)
	rd.dasher.SetColor(c)
}

func toFixed(p svgpath.Point) fixed.Point26_6 {
	return fixed.Point26_6{X: fixed.Int26_6(p.X * 64), Y: fixed.Int26_6(p.Y * 64)}
}

func (rd *Renderer) Start(a svgpath.Point) { rd.dasher.Start(toFixed(a)) }

func (rd *Renderer) Line(b svgpath.Point) { rd.dasher.Line(toFixed(b)) }

func (rd *Renderer) Stop(closeLoop bool) { rd.dasher.Stop(closeLoop) }

// Stroke renders the accumulated lines.
func (rd *Renderer) Stroke() { rd.dasher.Draw() }

// Clear forgets the accumulated lines.
func (rd *Renderer) Clear() { rd.dasher.Clear() }

// RasterRecording renders the lines drawn with `rec`,
// in black on a white image of the given size.
func RasterRecording(rec *svgdraw.Recorder, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	renderer := NewRenderer(width, height, scanner)
	rec.Replay(renderer)
	renderer.Stroke()
	return img
}

// WritePNG renders the recording (see RasterRecording) as a PNG image.
func WritePNG(out io.Writer, rec *svgdraw.Recorder, width, height int) error {
	return png.Encode(out, RasterRecording(rec, width, height))
}

// SavePNG is the same as WritePNG, but writes to the file `filePath`.
func SavePNG(filePath string, rec *svgdraw.Recorder, width, height int) error {
	f, err := os.Create(filePath)
	if err != nil {
		return err
	}
	if err = WritePNG(f, rec, width, height); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
