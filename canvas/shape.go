package canvas

import (
	"fmt"
	"strings"
)

// ShapeKind selects how a shape decides which cells of its bounding box
// it covers.
type ShapeKind int

const (
	Rectangle ShapeKind = iota
	Ellipse
)

func (k ShapeKind) String() string {
	switch k {
	case Rectangle:
		return "rectangle"
	case Ellipse:
		return "ellipse"
	default:
		return fmt.Sprintf("ShapeKind(%d)", int(k))
	}
}

// ParseShapeKind is the inverse of ShapeKind.String. Matching is
// case-insensitive.
func ParseShapeKind(s string) (ShapeKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rectangle", "rect":
		return Rectangle, nil
	case "ellipse":
		return Ellipse, nil
	}
	return 0, fmt.Errorf("unknown shape kind %q", s)
}

// Contains reports whether the local point p, relative to the top-left of
// a bounding box of the given size, belongs to a shape of this kind.
func (k ShapeKind) Contains(p Point, size Size) bool {
	if p.X < 0 || p.Y < 0 || p.X >= size.Width || p.Y >= size.Height {
		return false
	}
	if k == Ellipse {
		return PointInEllipse(p, size)
	}
	return true
}

// PointInEllipse reports whether the centre of cell p lies inside the
// ellipse inscribed in a box of the given size.
func PointInEllipse(p Point, size Size) bool {
	if size.Empty() {
		return false
	}
	// Offsets are taken in doubled coordinates so they stay exact integers
	// and mirror cells get the same normalized distance.
	w, h := float64(size.Width), float64(size.Height)
	nx := float64(2*int64(p.X)+1-int64(size.Width)) / w
	ny := float64(2*int64(p.Y)+1-int64(size.Height)) / h
	return nx*nx+ny*ny <= 1
}

// Shape is a positioned, sized region that samples a texture.
// A new shape has zero position and size and no texture.
type Shape struct {
	kind     ShapeKind
	position Point
	size     Size
	texture  *Texture
}

func NewShape(kind ShapeKind) *Shape {
	return &Shape{kind: kind}
}

func (s *Shape) Kind() ShapeKind     { return s.kind }
func (s *Shape) Position() Point     { return s.position }
func (s *Shape) Size() Size          { return s.size }
func (s *Shape) Texture() *Texture   { return s.texture }
func (s *Shape) SetPosition(p Point) { s.position = p }
func (s *Shape) SetSize(size Size)   { s.size = size }

// SetTexture attaches tex to the shape. A nil texture draws Filler.
func (s *Shape) SetTexture(tex *Texture) { s.texture = tex }

// Draw rasterizes the shape onto grid. Cells that fall outside grid are
// dropped, and cells of the bounding box not covered by the shape keep
// whatever grid already holds.
func (s *Shape) Draw(grid [][]rune) {
	// Only the local rows and columns that land on grid are visited.
	y0, y1 := clipSpan(s.position.Y, s.size.Height, len(grid))
	for y := y0; y < y1; y++ {
		row := grid[s.position.Y+y]
		x0, x1 := clipSpan(s.position.X, s.size.Width, len(row))
		for x := x0; x < x1; x++ {
			dstX := s.position.X + x
			local := Point{X: x, Y: y}
			if !s.kind.Contains(local, s.size) {
				continue
			}
			row[dstX] = s.texture.PixelColor(local)
		}
	}
}

// clipSpan returns the local range [lo, hi) of a span of length n starting
// at pos that falls inside [0, limit). The range is empty when nothing does.
func clipSpan(pos, n, limit int) (lo, hi int) {
	lo = max(0, -pos)
	hi = min(n, limit-pos)
	if hi < lo {
		hi = lo
	}
	return lo, hi
}
