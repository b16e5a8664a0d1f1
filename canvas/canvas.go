package canvas

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ShapeID identifies a shape within its canvas. IDs are insertion indices
// and stay valid for the canvas lifetime.
type ShapeID int

// Canvas is a fixed-size character grid and the ordered shapes composed
// onto it. Later shapes are drawn over earlier ones.
type Canvas struct {
	size   Size
	shapes []*Shape
}

// New returns an empty canvas. Either dimension may be zero but not
// negative.
func New(size Size) (*Canvas, error) {
	if size.Width < 0 || size.Height < 0 {
		Logger().Warn("rejected canvas size", "width", size.Width, "height", size.Height)
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, size.Width, size.Height)
	}
	return &Canvas{
		size:   size,
		shapes: make([]*Shape, 0),
	}, nil
}

func (c *Canvas) Size() Size { return c.size }

// Len returns the number of shapes on the canvas.
func (c *Canvas) Len() int { return len(c.shapes) }

// AddShape appends a new shape and returns its id.
func (c *Canvas) AddShape(kind ShapeKind, pos Point, size Size, tex *Texture) ShapeID {
	shape := NewShape(kind)
	shape.SetPosition(pos)
	shape.SetSize(size)
	shape.SetTexture(tex)
	return c.appendShape(shape)
}

func (c *Canvas) appendShape(shape *Shape) ShapeID {
	id := ShapeID(len(c.shapes))
	c.shapes = append(c.shapes, shape)
	Logger().Debug("shape added",
		"id", int(id), "kind", shape.kind.String(),
		"x", shape.position.X, "y", shape.position.Y,
		"width", shape.size.Width, "height", shape.size.Height)
	return id
}

func (c *Canvas) lookup(id ShapeID, op string) (*Shape, error) {
	if id < 0 || int(id) >= len(c.shapes) {
		Logger().Warn("rejected shape id", "op", op, "id", int(id), "shapes", len(c.shapes))
		return nil, fmt.Errorf("%s: %w: %d (have %d shapes)", op, ErrInvalidShapeID, id, len(c.shapes))
	}
	return c.shapes[id], nil
}

// DuplicateShape appends a copy of shape id placed at pos. The copy shares
// the original's texture but has its own size.
func (c *Canvas) DuplicateShape(id ShapeID, pos Point) (ShapeID, error) {
	src, err := c.lookup(id, "duplicate shape")
	if err != nil {
		return -1, err
	}
	dup := NewShape(src.kind)
	dup.SetPosition(pos)
	dup.SetSize(src.size)
	dup.SetTexture(src.texture)
	return c.appendShape(dup), nil
}

// ResizeShape changes the size of shape id in place.
func (c *Canvas) ResizeShape(id ShapeID, size Size) error {
	shape, err := c.lookup(id, "resize shape")
	if err != nil {
		return err
	}
	shape.SetSize(size)
	Logger().Debug("shape resized", "id", int(id), "width", size.Width, "height", size.Height)
	return nil
}

// RetextureShape replaces the texture of shape id. tex may be nil.
func (c *Canvas) RetextureShape(id ShapeID, tex *Texture) error {
	shape, err := c.lookup(id, "retexture shape")
	if err != nil {
		return err
	}
	shape.SetTexture(tex)
	Logger().Debug("shape retextured", "id", int(id), "texture", tex.Size())
	return nil
}

// Shape returns a copy of shape id. Mutating the copy does not affect the
// canvas.
func (c *Canvas) Shape(id ShapeID) (*Shape, error) {
	shape, err := c.lookup(id, "shape")
	if err != nil {
		return nil, err
	}
	dup := *shape
	return &dup, nil
}

// Render composes every shape, in insertion order, onto a fresh grid
// filled with Background.
func (c *Canvas) Render() [][]rune {
	grid := make([][]rune, c.size.Height)
	for i := range grid {
		grid[i] = make([]rune, c.size.Width)
		for j := range grid[i] {
			grid[i][j] = Background
		}
	}
	for _, shape := range c.shapes {
		shape.Draw(grid)
	}
	return grid
}

// Lines returns the composed grid as one string per row, without the
// frame.
func (c *Canvas) Lines() []string {
	grid := c.Render()
	lines := make([]string, len(grid))
	for i, row := range grid {
		lines[i] = string(row)
	}
	return lines
}

// FramedLines returns the composed grid surrounded by a Frame border.
func (c *Canvas) FramedLines() []string {
	border := strings.Repeat(string(Frame), c.size.Width+2)
	body := c.Lines()
	lines := make([]string, 0, len(body)+2)
	lines = append(lines, border)
	for _, row := range body {
		lines = append(lines, string(Frame)+row+string(Frame))
	}
	return append(lines, border)
}

// Print writes the framed composition to w, one newline-terminated line
// per row plus the top and bottom borders.
func (c *Canvas) Print(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, line := range c.FramedLines() {
		bw.WriteString(line)
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// String returns what Print would write.
func (c *Canvas) String() string {
	var sb strings.Builder
	c.Print(&sb)
	return sb.String()
}
