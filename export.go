package main

import (
	"fmt"
	"os"

	"charcanvas/canvas"
)

func pngOptions(config *Config) canvas.PNGOptions {
	return canvas.PNGOptions{
		CellWidth:  config.CellWidth,
		CellHeight: config.CellHeight,
		FontSize:   config.FontSize,
		Frame:      true,
	}
}

func pdfOptions(config *Config) canvas.PDFOptions {
	opts := canvas.DefaultPDFOptions()
	opts.FontSize = config.PDFFontSize
	return opts
}

// exportFile writes the canvas to filename in the format of op and returns
// the path actually written.
func (m *model) exportFile(op FileOperation, filename string) (string, error) {
	if m.canvas == nil {
		return "", fmt.Errorf("no canvas available")
	}
	if filename == "" {
		return "", fmt.Errorf("no filename given")
	}
	path := m.config.GetSavePath(filename)
	return path, exportCanvas(m.canvas, m.config, op, path)
}

func exportCanvas(c *canvas.Canvas, config *Config, op FileOperation, path string) error {
	switch op {
	case FileOpSavePNG:
		return c.ExportPNG(path, pngOptions(config))
	case FileOpSavePDF:
		return c.ExportPDF(path, pdfOptions(config))
	case FileOpSaveScene:
		return c.SaveSceneFile(path)
	default:
		return c.ExportTXT(path)
	}
}

type batchOptions struct {
	print bool
	txt   string
	png   string
	pdf   string
	scene string
	copy  bool
}

func (b batchOptions) enabled() bool {
	return b.print || b.copy || b.txt != "" || b.png != "" || b.pdf != "" || b.scene != ""
}

// runBatch performs every requested output without starting the viewer.
func runBatch(c *canvas.Canvas, config *Config, opts batchOptions) error {
	if opts.print {
		if err := c.Print(os.Stdout); err != nil {
			return err
		}
	}
	outputs := []struct {
		op   FileOperation
		path string
	}{
		{FileOpSaveTXT, opts.txt},
		{FileOpSavePNG, opts.png},
		{FileOpSavePDF, opts.pdf},
		{FileOpSaveScene, opts.scene},
	}
	for _, out := range outputs {
		if out.path == "" {
			continue
		}
		if err := exportCanvas(c, config, out.op, out.path); err != nil {
			return fmt.Errorf("export %s: %w", out.op, err)
		}
	}
	if opts.copy {
		if err := writeClipboardText(c.String()); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
	}
	return nil
}
