package main

import (
	"fmt"

	"charcanvas/canvas"
)

// demoCanvas builds the "C++" logo: a letter C cut from two ellipses, the
// inner one drawn in the background colour, and two plus signs made from
// one rectangle and its duplicates.
func demoCanvas() (*canvas.Canvas, error) {
	c, err := canvas.New(canvas.Size{Width: 77, Height: 17})
	if err != nil {
		return nil, err
	}

	c.AddShape(canvas.Ellipse, canvas.Point{X: 2, Y: 1}, canvas.Size{Width: 30, Height: 15},
		canvas.NewCheckersTexture(canvas.Size{Width: 100, Height: 100}, 'c', 'C'))
	c.AddShape(canvas.Ellipse, canvas.Point{X: 8, Y: 4}, canvas.Size{Width: 30, Height: 9},
		canvas.NewSolidTexture(canvas.Size{Width: 100, Height: 100}, canvas.Background))

	// Horizontal bars
	h1 := c.AddShape(canvas.Rectangle, canvas.Point{X: 54, Y: 7}, canvas.Size{Width: 22, Height: 3},
		canvas.NewSolidTexture(canvas.Size{Width: 100, Height: 100}, '+'))
	if _, err := c.DuplicateShape(h1, canvas.Point{X: 30, Y: 7}); err != nil {
		return nil, fmt.Errorf("demo: %w", err)
	}

	// Vertical bars
	v1, err := c.DuplicateShape(h1, canvas.Point{X: 62, Y: 3})
	if err != nil {
		return nil, fmt.Errorf("demo: %w", err)
	}
	if err := c.ResizeShape(v1, canvas.Size{Width: 6, Height: 11}); err != nil {
		return nil, fmt.Errorf("demo: %w", err)
	}
	if _, err := c.DuplicateShape(v1, canvas.Point{X: 38, Y: 3}); err != nil {
		return nil, fmt.Errorf("demo: %w", err)
	}
	return c, nil
}

// loadCanvas reads scenePath, or builds the demo when no scene is given.
func loadCanvas(scenePath string) (*canvas.Canvas, error) {
	if scenePath == "" {
		return demoCanvas()
	}
	c, err := canvas.LoadSceneFile(scenePath)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", scenePath, err)
	}
	return c, nil
}
