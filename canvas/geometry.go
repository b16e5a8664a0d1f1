package canvas

// Point is a grid coordinate. The origin is the top-left cell, X grows to
// the right and Y grows downward.
type Point struct {
	X, Y int
}

// Size is a width/height pair. A non-positive dimension means empty.
type Size struct {
	Width, Height int
}

// Empty reports whether the size covers no cells.
func (s Size) Empty() bool {
	return s.Width <= 0 || s.Height <= 0
}

const (
	// Filler is returned for texture lookups that miss the texture.
	Filler = '.'
	// Background is the initial value of every canvas cell.
	Background = ' '
	// Frame is the border character used by Print.
	Frame = '#'
)
