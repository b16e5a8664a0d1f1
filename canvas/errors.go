package canvas

import "errors"

var (
	// ErrInvalidShapeID is returned when a shape id was never issued by
	// the canvas.
	ErrInvalidShapeID = errors.New("canvas: invalid shape id")
	// ErrInvalidSize is returned when a canvas is created with a negative
	// dimension.
	ErrInvalidSize = errors.New("canvas: invalid size")
	// ErrUnsavableTexture is returned when a texture row holds a line
	// break, which the line-oriented scene format cannot carry.
	ErrUnsavableTexture = errors.New("canvas: texture row contains a line break")
)
