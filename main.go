package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"charcanvas/canvas"
)

func main() {
	scenePath := flag.String("scene", "", "scene `file` to load (default: built-in demo)")
	printOut := flag.Bool("print", false, "print the framed canvas to stdout and exit")
	txtOut := flag.String("txt", "", "export framed text to `file` and exit")
	pngOut := flag.String("png", "", "export a PNG image to `file` and exit")
	pdfOut := flag.String("pdf", "", "export a PDF document to `file` and exit")
	sceneOut := flag.String("save", "", "save the scene to `file` and exit")
	copyOut := flag.Bool("copy", false, "copy the framed canvas to the clipboard and exit")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	if *scenePath == "" && flag.NArg() > 0 {
		*scenePath = flag.Arg(0)
	}

	batch := batchOptions{
		print: *printOut,
		txt:   *txtOut,
		png:   *pngOut,
		pdf:   *pdfOut,
		scene: *sceneOut,
		copy:  *copyOut,
	}

	config := loadConfig()
	closeLog, err := setupLogging(config, *verbose, !batch.enabled())
	if err != nil {
		log.Fatal(err)
	}

	if err := run(*scenePath, config, batch); err != nil {
		closeLog()
		log.Fatal(err)
	}
	closeLog()
}

func run(scenePath string, config *Config, batch batchOptions) error {
	c, err := loadCanvas(scenePath)
	if err != nil {
		return err
	}
	if batch.enabled() {
		return runBatch(c, config, batch)
	}

	p := tea.NewProgram(
		initialModel(c, scenePath, config),
		tea.WithAltScreen(),
	)
	_, err = p.Run()
	return err
}

func initialModel(c *canvas.Canvas, scenePath string, config *Config) model {
	return model{
		canvas:    c,
		scenePath: scenePath,
		mode:      ModeView,
		config:    config,
		styles:    DefaultStyles(),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ensurePanInBounds()
		return m, nil

	case tea.KeyMsg:
		key := msg.String()
		if key == "ctrl+c" {
			return m, tea.Quit
		}

		switch m.mode {
		case ModeHelp:
			m.mode = ModeView
			return m, nil

		case ModeFileInput:
			return m.handleFileInput(msg)

		default:
			return m.handleViewKey(key)
		}
	}
	return m, nil
}

func (m model) handleViewKey(key string) (tea.Model, tea.Cmd) {
	m.errorMessage = ""
	m.successMessage = ""

	switch key {
	case "q", "esc":
		return m, tea.Quit
	case "?":
		m.mode = ModeHelp
	case "y":
		if err := m.copyToClipboard(); err != nil {
			m.errorMessage = fmt.Sprintf("Copy failed: %v", err)
		} else {
			m.successMessage = "Copied canvas to clipboard"
		}
	case "t":
		m.startFileInput(FileOpSaveTXT)
	case "p":
		m.startFileInput(FileOpSavePNG)
	case "d":
		m.startFileInput(FileOpSavePDF)
	case "s":
		m.startFileInput(FileOpSaveScene)
	case "r":
		m.reload()
	default:
		m.handlePan(key, m.getMoveSpeed(key))
	}
	return m, nil
}

func (m *model) startFileInput(op FileOperation) {
	m.mode = ModeFileInput
	m.fileOp = op
	m.filename = m.sceneBaseName() + op.extension()
}

func (m model) handleFileInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEscape:
		m.mode = ModeView
		m.filename = ""
	case tea.KeyEnter:
		m.mode = ModeView
		path, err := m.exportFile(m.fileOp, m.filename)
		if err != nil {
			m.errorMessage = fmt.Sprintf("Export failed: %v", err)
		} else {
			m.successMessage = fmt.Sprintf("Saved %s to %s", m.fileOp, path)
		}
		m.filename = ""
	case tea.KeyBackspace:
		if runes := []rune(m.filename); len(runes) > 0 {
			m.filename = string(runes[:len(runes)-1])
		}
	case tea.KeyRunes, tea.KeySpace:
		m.filename += string(msg.Runes)
	}
	return m, nil
}

// reload re-reads the scene file, keeping the current canvas on failure.
func (m *model) reload() {
	if m.scenePath == "" {
		m.errorMessage = "No scene file to reload"
		return
	}
	c, err := loadCanvas(m.scenePath)
	if err != nil {
		m.errorMessage = err.Error()
		return
	}
	m.canvas = c
	m.ensurePanInBounds()
	m.successMessage = "Reloaded " + m.scenePath
}

func (m model) View() string {
	if m.mode == ModeHelp {
		return m.helpView()
	}

	viewW, viewH := m.viewportSize()
	var lines []string
	if m.canvas != nil {
		lines = visibleLines(m.canvas.FramedLines(), m.panX, m.panY, viewW, viewH)
	}
	for len(lines) < viewH {
		lines = append(lines, strings.Repeat(" ", viewW))
	}

	var b strings.Builder
	b.WriteString(m.styles.Canvas.Render(strings.Join(lines, "\n")))
	if m.config == nil || m.config.StatusBar {
		b.WriteString("\n")
		b.WriteString(m.statusLine(viewW))
	}
	return b.String()
}

func (m model) statusLine(width int) string {
	mode := m.styles.Mode.Render(m.modeString())

	var text string
	switch {
	case m.mode == ModeFileInput:
		text = m.styles.Prompt.Render(fmt.Sprintf("Save %s as: %s█", m.fileOp, m.filename))
	case m.errorMessage != "":
		text = m.styles.Error.Render(m.errorMessage)
	case m.successMessage != "":
		text = m.styles.Success.Render(m.successMessage)
	default:
		size := canvas.Size{}
		shapes := 0
		if m.canvas != nil {
			size = m.canvas.Size()
			shapes = m.canvas.Len()
		}
		text = fmt.Sprintf("%s  %dx%d  %d shapes  pan %d,%d  ? help",
			m.sceneBaseName(), size.Width, size.Height, shapes, m.panX, m.panY)
	}
	return m.styles.StatusBar.MaxWidth(width).Render(mode + " " + text)
}

func (m model) modeString() string {
	switch m.mode {
	case ModeHelp:
		return "HELP"
	case ModeFileInput:
		return "SAVE"
	default:
		return "VIEW"
	}
}

func (m model) helpView() string {
	keys := []struct{ key, desc string }{
		{"h j k l / arrows", "pan the view (shift pans faster)"},
		{"0", "reset pan"},
		{"y", "copy the framed canvas to the clipboard"},
		{"t", "export framed text"},
		{"p", "export PNG"},
		{"d", "export PDF"},
		{"s", "save scene file"},
		{"r", "reload scene file"},
		{"?", "this help"},
		{"q", "quit"},
	}

	var b strings.Builder
	b.WriteString("charcanvas\n\n")
	for _, k := range keys {
		fmt.Fprintf(&b, "%s  %s\n", m.styles.HelpKey.Render(fmt.Sprintf("%-18s", k.key)), k.desc)
	}
	b.WriteString("\nPress any key to return.")
	if m.config != nil && m.config.SaveDirectory != "" {
		fmt.Fprintf(&b, "\nExports are saved to %s", m.config.SaveDirectory)
	}
	return m.styles.Help.Render(b.String())
}
