package main

import (
	"testing"

	"charcanvas/canvas"
)

func testModel(t *testing.T, size canvas.Size, width, height int) *model {
	t.Helper()
	c, err := canvas.New(size)
	if err != nil {
		t.Fatal(err)
	}
	m := initialModel(c, "", defaultConfig())
	m.width, m.height = width, height
	return &m
}

func TestHandlePanClamps(t *testing.T) {
	// Framed canvas is 12x6; the viewport is 5x3 after the status line.
	m := testModel(t, canvas.Size{Width: 10, Height: 4}, 5, 4)

	tests := []struct {
		key          string
		wantX, wantY int
	}{
		{"l", 1, 0},
		{"L", 3, 0},
		{"shift+right", 5, 0},
		{"right", 6, 0},
		{"l", 7, 0},
		{"l", 7, 0}, // clamped
		{"j", 7, 1},
		{"J", 7, 3},
		{"down", 7, 3}, // clamped
		{"h", 6, 3},
		{"0", 0, 0},
		{"k", 0, 0}, // clamped at the origin
	}
	for i, tt := range tests {
		m.handlePan(tt.key, m.getMoveSpeed(tt.key))
		if m.panX != tt.wantX || m.panY != tt.wantY {
			t.Fatalf("step %d (%s): pan = %d,%d, want %d,%d", i, tt.key, m.panX, m.panY, tt.wantX, tt.wantY)
		}
	}
}

func TestSmallCanvasCannotPan(t *testing.T) {
	m := testModel(t, canvas.Size{Width: 2, Height: 2}, 80, 24)
	m.handlePan("L", 2)
	m.handlePan("J", 2)
	if m.panX != 0 || m.panY != 0 {
		t.Errorf("pan = %d,%d, want 0,0", m.panX, m.panY)
	}
}

func TestViewportWithoutStatusBar(t *testing.T) {
	m := testModel(t, canvas.Size{Width: 2, Height: 2}, 10, 5)
	m.config.StatusBar = false
	if w, h := m.viewportSize(); w != 10 || h != 5 {
		t.Errorf("viewportSize() = %d,%d, want 10,5", w, h)
	}
}

func TestVisibleLines(t *testing.T) {
	lines := []string{"abcdef", "ghijkl", "mnop"}
	tests := []struct {
		name             string
		panX, panY, w, h int
		want             []string
	}{
		{"origin", 0, 0, 3, 2, []string{"abc", "ghi"}},
		{"panned", 2, 1, 3, 2, []string{"ijk", "op "}},
		{"wider than content", 4, 0, 4, 5, []string{"ef  ", "kl  ", "    "}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := visibleLines(lines, tt.panX, tt.panY, tt.w, tt.h)
			if len(got) != len(tt.want) {
				t.Fatalf("visibleLines = %q, want %q", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("line %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}
