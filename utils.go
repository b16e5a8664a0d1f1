package main

import (
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"
)

func (m *model) framedText() string {
	if m.canvas == nil {
		return ""
	}
	return m.canvas.String()
}

func (m *model) copyToClipboard() error {
	return writeClipboardText(m.framedText())
}

func writeClipboardText(text string) error {
	return clipboard.WriteAll(text)
}

// visibleLines cuts a width x height window at (panX, panY) out of lines,
// padding short rows with spaces.
func visibleLines(lines []string, panX, panY, width, height int) []string {
	result := make([]string, 0, height)
	for y := panY; y < panY+height && y < len(lines); y++ {
		if y < 0 {
			continue
		}
		row := []rune(lines[y])
		line := make([]rune, width)
		for x := range line {
			src := panX + x
			if src >= 0 && src < len(row) {
				line[x] = row[src]
			} else {
				line[x] = ' '
			}
		}
		result = append(result, string(line))
	}
	return result
}

// sceneBaseName returns the scene file name without directory or
// extension, used as the default export name.
func (m *model) sceneBaseName() string {
	if m.scenePath == "" {
		return defaultSceneName
	}
	base := filepath.Base(m.scenePath)
	if name := strings.TrimSuffix(base, filepath.Ext(base)); name != "" {
		return name
	}
	return defaultSceneName
}
