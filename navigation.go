package main

func (m *model) handlePan(key string, speed int) {
	switch key {
	case "h", "left", "H", "shift+left":
		m.panX -= speed
	case "l", "right", "L", "shift+right":
		m.panX += speed
	case "k", "up", "K", "shift+up":
		m.panY -= speed
	case "j", "down", "J", "shift+down":
		m.panY += speed
	case "0", "home":
		m.panX, m.panY = 0, 0
	}
	m.ensurePanInBounds()
}

func (m *model) getMoveSpeed(key string) int {
	switch key {
	case "H", "L", "K", "J", "shift+left", "shift+right", "shift+up", "shift+down":
		return 2
	default:
		return 1
	}
}

// ensurePanInBounds keeps the viewport over the framed canvas. A canvas
// smaller than the viewport cannot be panned.
func (m *model) ensurePanInBounds() {
	frameW, frameH := m.framedSize()
	viewW, viewH := m.viewportSize()

	maxX := max(0, frameW-viewW)
	maxY := max(0, frameH-viewH)
	m.panX = min(max(m.panX, 0), maxX)
	m.panY = min(max(m.panY, 0), maxY)
}

func (m *model) framedSize() (int, int) {
	if m.canvas == nil {
		return 0, 0
	}
	size := m.canvas.Size()
	return size.Width + 2, size.Height + 2
}

func (m *model) viewportSize() (int, int) {
	width := m.width
	if width < 1 {
		width = 1
	}
	height := m.height
	if m.config == nil || m.config.StatusBar {
		height-- // status line
	}
	if height < 1 {
		height = 1
	}
	return width, height
}
