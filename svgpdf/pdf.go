// Implements a PDF backend to preview drawings,
// by wrapping github.com/jung-kurt/gofpdf.
package svgpdf

import (
	"io"

	"github.com/benoitkugler/svgmouse/svgdraw"
	"github.com/benoitkugler/svgmouse/svgpath"
	"github.com/jung-kurt/gofpdf"
)

var _ svgdraw.Stroker = (*Renderer)(nil) // assert interface conformance

// LineWidth is the default width of the strokes, in points.
const LineWidth = 2.

// Renderer strokes each polyline as soon as it is stopped.
type Renderer struct {
	pdf *gofpdf.Fpdf

	boundingBox svgpath.Rect // of all the points written so far
	hasBox      bool
}

// NewRenderer return a renderer which will
// write to the current page of the given `pdf`.
func NewRenderer(pdf *gofpdf.Fpdf) *Renderer {
	return &Renderer{pdf: pdf}
}

func (p *Renderer) extend(a svgpath.Point) {
	if !p.hasBox {
		p.boundingBox, p.hasBox = svgpath.NewRect(a, a), true // degenerate case
		return
	}
	p.boundingBox = p.boundingBox.Union(svgpath.NewRect(a, a))
}

// BoundingBox returns the bounds of the points written,
// or false if none has been.
func (p *Renderer) BoundingBox() (svgpath.Rect, bool) { return p.boundingBox, p.hasBox }

func (p *Renderer) Start(a svgpath.Point) {
	p.pdf.MoveTo(a.X, a.Y)
	p.extend(a)
}

func (p *Renderer) Line(b svgpath.Point) {
	p.pdf.LineTo(b.X, b.Y)
	p.extend(b)
}

func (p *Renderer) Stop(closeLoop bool) {
	if closeLoop {
		p.pdf.ClosePath()
	}
	p.pdf.DrawPath("D")
}

// newDocument returns a one page document of the given size, in points.
func newDocument(width, height float64) *gofpdf.Fpdf {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: width, Ht: height},
	})
	pdf.AddPage()
	pdf.SetLineWidth(LineWidth)
	pdf.SetLineCapStyle("round")
	pdf.SetLineJoinStyle("round")
	pdf.SetDrawColor(0, 0, 0)
	return pdf
}

// RenderRecording writes to `out` a PDF document showing the lines
// drawn with `rec`, on a page of the given size (one point per pixel).
func RenderRecording(rec *svgdraw.Recorder, width, height float64, out io.Writer) error {
	pdf := newDocument(width, height)
	rec.Replay(NewRenderer(pdf))
	return pdf.Output(out)
}

// SavePDF is the same as RenderRecording, but writes to the file `filePath`.
func SavePDF(filePath string, rec *svgdraw.Recorder, width, height float64) error {
	pdf := newDocument(width, height)
	rec.Replay(NewRenderer(pdf))
	return pdf.OutputFileAndClose(filePath)
}
