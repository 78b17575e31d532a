package svgpath

import "errors"

// ErrNoBounds is returned when asking the bounding box of an empty model.
var ErrNoBounds = errors.New("svgpath: model has no shape, so no bounds")

// Model is an ordered collection of independent shapes,
// each one being drawn as a whole.
type Model struct {
	shapes []Path
}

// AddShape appends a copy of `p` to the model.
// No validation is performed on the path.
func (m *Model) AddShape(p Path) {
	m.shapes = append(m.shapes, append(Path(nil), p...))
}

// Shapes returns the shapes of the model, in insertion order.
// The returned slice must not be modified.
func (m *Model) Shapes() []Path { return m.shapes }

// Len returns the number of shapes.
func (m *Model) Len() int { return len(m.shapes) }

// BoundingBox returns the union of the bounds of every shape.
// It is computed on each call.
func (m *Model) BoundingBox() (Rect, error) {
	var (
		box Rect
		ok  bool
	)
	for _, shape := range m.shapes {
		b, hasPoint := shape.Bounds()
		if !hasPoint {
			continue
		}
		if !ok {
			box, ok = b, true
			continue
		}
		box = box.Union(b)
	}
	if !ok {
		return Rect{}, ErrNoBounds
	}
	return box, nil
}
