package canvas

// Texture is an immutable grid of characters sampled by shapes.
// A single Texture may be shared by any number of shapes.
type Texture struct {
	rows [][]rune
}

// NewTexture builds a texture from rows of text. Rows may differ in length,
// but the texture width is always the length of the first row.
func NewTexture(rows []string) *Texture {
	t := &Texture{rows: make([][]rune, len(rows))}
	for i, row := range rows {
		t.rows[i] = []rune(row)
	}
	return t
}

// NewSolidTexture returns a texture of the given size filled with ch.
func NewSolidTexture(size Size, ch rune) *Texture {
	return NewCheckersTexture(size, ch, ch)
}

// NewCheckersTexture returns a checkerboard texture: cells where x+y is
// even hold even, the others hold odd.
func NewCheckersTexture(size Size, even, odd rune) *Texture {
	if size.Empty() {
		return &Texture{}
	}
	t := &Texture{rows: make([][]rune, size.Height)}
	for y := range t.rows {
		row := make([]rune, size.Width)
		for x := range row {
			if (x+y)%2 != 0 {
				row[x] = odd
			} else {
				row[x] = even
			}
		}
		t.rows[y] = row
	}
	return t
}

// Size returns the texture dimensions: the first row's length by the
// number of rows, or a zero size when there are no rows.
func (t *Texture) Size() Size {
	if t == nil || len(t.rows) == 0 {
		return Size{}
	}
	return Size{Width: len(t.rows[0]), Height: len(t.rows)}
}

// PixelColor returns the character at p, or Filler when p lies outside
// the texture. Bounds use the first row's width for every row; positions
// past the end of a shorter row also yield Filler.
func (t *Texture) PixelColor(p Point) rune {
	if t == nil || len(t.rows) == 0 {
		return Filler
	}
	if p.Y < 0 || p.Y >= len(t.rows) || p.X < 0 || p.X >= len(t.rows[0]) {
		return Filler
	}
	row := t.rows[p.Y]
	if p.X >= len(row) {
		return Filler
	}
	return row[p.X]
}

// Rows returns a copy of the texture contents as strings.
func (t *Texture) Rows() []string {
	if t == nil {
		return nil
	}
	rows := make([]string, len(t.rows))
	for i, row := range t.rows {
		rows[i] = string(row)
	}
	return rows
}
