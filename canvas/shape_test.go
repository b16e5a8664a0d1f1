package canvas

import (
	"fmt"
	"testing"
)

func newGrid(w, h int, fill rune) [][]rune {
	grid := make([][]rune, h)
	for y := range grid {
		grid[y] = make([]rune, w)
		for x := range grid[y] {
			grid[y][x] = fill
		}
	}
	return grid
}

func gridLines(grid [][]rune) []string {
	lines := make([]string, len(grid))
	for i, row := range grid {
		lines[i] = string(row)
	}
	return lines
}

func assertLines(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d lines, want %d:\n%q", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestNewShapeZeroValue(t *testing.T) {
	s := NewShape(Ellipse)
	if s.Kind() != Ellipse {
		t.Errorf("Kind() = %v, want ellipse", s.Kind())
	}
	if s.Position() != (Point{}) || s.Size() != (Size{}) || s.Texture() != nil {
		t.Errorf("new shape = %+v, want zero position/size and no texture", s)
	}
	grid := newGrid(2, 2, 'x')
	s.Draw(grid)
	assertLines(t, gridLines(grid), []string{"xx", "xx"})
}

func TestPointInEllipseCornersAndCentre(t *testing.T) {
	sizes := []Size{
		{4, 4}, {5, 4}, {30, 15}, {30, 9}, {7, 100},
		{60000, 60000}, {1 << 20, 1 << 20}, {3000000, 3000000}, {1 << 20, 7},
	}
	for _, size := range sizes {
		t.Run(fmt.Sprintf("%dx%d", size.Width, size.Height), func(t *testing.T) {
			corners := []Point{
				{0, 0}, {size.Width - 1, 0},
				{0, size.Height - 1}, {size.Width - 1, size.Height - 1},
			}
			for _, c := range corners {
				if PointInEllipse(c, size) {
					t.Errorf("corner %+v inside ellipse", c)
				}
			}
			centre := Point{size.Width / 2, size.Height / 2}
			if !PointInEllipse(centre, size) {
				t.Errorf("centre %+v outside ellipse", centre)
			}
			for _, m := range []Point{{0, size.Height / 2}, {size.Width / 2, 0}} {
				if !PointInEllipse(m, size) {
					t.Errorf("edge midpoint %+v outside ellipse", m)
				}
			}
		})
	}
}

func TestPointInEllipseSymmetric(t *testing.T) {
	for _, size := range []Size{{1, 1}, {2, 3}, {7, 4}, {30, 15}, {13, 29}} {
		for y := 0; y < size.Height; y++ {
			for x := 0; x < size.Width; x++ {
				in := PointInEllipse(Point{x, y}, size)
				mx, my := size.Width-1-x, size.Height-1-y
				for _, m := range []Point{{mx, y}, {x, my}, {mx, my}} {
					if PointInEllipse(m, size) != in {
						t.Fatalf("size %+v: %+v and mirror %+v disagree", size, Point{x, y}, m)
					}
				}
			}
		}
	}
}

func TestPointInEllipseEmpty(t *testing.T) {
	for _, size := range []Size{{0, 5}, {5, 0}, {-3, 3}} {
		if PointInEllipse(Point{0, 0}, size) {
			t.Errorf("PointInEllipse in empty size %+v = true", size)
		}
	}
}

func TestShapeKindParse(t *testing.T) {
	for _, k := range []ShapeKind{Rectangle, Ellipse} {
		got, err := ParseShapeKind(k.String())
		if err != nil || got != k {
			t.Errorf("ParseShapeKind(%q) = %v, %v", k.String(), got, err)
		}
	}
	if _, err := ParseShapeKind("triangle"); err == nil {
		t.Error("ParseShapeKind(triangle) succeeded")
	}
}

func TestRectangleDrawFillsBox(t *testing.T) {
	s := NewShape(Rectangle)
	s.SetPosition(Point{1, 1})
	s.SetSize(Size{3, 2})
	s.SetTexture(NewTexture([]string{"abc", "def"}))

	grid := newGrid(5, 4, ' ')
	s.Draw(grid)
	assertLines(t, gridLines(grid), []string{
		"     ",
		" abc ",
		" def ",
		"     ",
	})
}

func TestDrawWithoutTextureUsesFiller(t *testing.T) {
	s := NewShape(Rectangle)
	s.SetSize(Size{2, 2})

	grid := newGrid(3, 3, ' ')
	s.Draw(grid)
	assertLines(t, gridLines(grid), []string{".. ", ".. ", "   "})
}

func TestDrawFillerBeyondTexture(t *testing.T) {
	s := NewShape(Rectangle)
	s.SetSize(Size{3, 2})
	s.SetTexture(NewTexture([]string{"ab"}))

	grid := newGrid(3, 2, ' ')
	s.Draw(grid)
	assertLines(t, gridLines(grid), []string{"ab.", "..."})
}

func TestDrawClipsToGrid(t *testing.T) {
	tex := NewSolidTexture(Size{10, 10}, '*')
	tests := []struct {
		name string
		pos  Point
		want []string
	}{
		{"negative origin", Point{-2, -1}, []string{"** ", "** "}},
		{"past bottom right", Point{2, 1}, []string{"   ", "  *"}},
		{"fully outside", Point{10, 10}, []string{"   ", "   "}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewShape(Rectangle)
			s.SetPosition(tt.pos)
			s.SetSize(Size{4, 3})
			s.SetTexture(tex)
			grid := newGrid(3, 2, ' ')
			s.Draw(grid)
			assertLines(t, gridLines(grid), tt.want)
		})
	}
}

func TestDrawHugeShapeVisitsOnlyGrid(t *testing.T) {
	tests := []struct {
		name string
		kind ShapeKind
		pos  Point
		size Size
		want []string
	}{
		{"tall rectangle", Rectangle, Point{-1, -1}, Size{3, 2000000000}, []string{"** ", "** ", "** "}},
		{"wide rectangle", Rectangle, Point{-5, 1}, Size{2000000000, 1}, []string{"   ", "***", "   "}},
		{"ellipse centred on grid", Ellipse, Point{-999999999, -999999999}, Size{2000000000, 2000000000}, []string{"...", "...", "..."}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewShape(tt.kind)
			s.SetPosition(tt.pos)
			s.SetSize(tt.size)
			s.SetTexture(NewSolidTexture(Size{10, 10}, '*'))
			grid := newGrid(3, 3, ' ')
			s.Draw(grid)
			assertLines(t, gridLines(grid), tt.want)
		})
	}
}

func TestDrawNonPositiveSizeDrawsNothing(t *testing.T) {
	for _, size := range []Size{{0, 3}, {3, 0}, {-1, 2}, {2, -5}} {
		s := NewShape(Rectangle)
		s.SetSize(size)
		grid := newGrid(3, 3, ' ')
		s.Draw(grid)
		assertLines(t, gridLines(grid), []string{"   ", "   ", "   "})
	}
}

func TestEllipseLeavesOutsideUntouched(t *testing.T) {
	s := NewShape(Ellipse)
	s.SetSize(Size{6, 4})
	s.SetTexture(NewSolidTexture(Size{6, 4}, 'o'))

	grid := newGrid(6, 4, '~')
	s.Draw(grid)
	assertLines(t, gridLines(grid), []string{
		"~oooo~",
		"oooooo",
		"oooooo",
		"~oooo~",
	})
}
