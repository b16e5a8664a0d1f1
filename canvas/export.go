package canvas

import (
	"fmt"
	"image/color"
	"io"
	"os"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"github.com/jung-kurt/gofpdf"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

// PNGOptions controls raster export. Zero numeric fields take the defaults of
// DefaultPNGOptions.
type PNGOptions struct {
	CellWidth  float64 // pixels per character column
	CellHeight float64 // pixels per character row
	FontSize   float64
	Frame      bool // include the # border
}

func DefaultPNGOptions() PNGOptions {
	return PNGOptions{
		CellWidth:  8,
		CellHeight: 16,
		FontSize:   12,
		Frame:      true,
	}
}

func (o PNGOptions) withDefaults() PNGOptions {
	def := DefaultPNGOptions()
	if o.CellWidth <= 0 {
		o.CellWidth = def.CellWidth
	}
	if o.CellHeight <= 0 {
		o.CellHeight = def.CellHeight
	}
	if o.FontSize <= 0 {
		o.FontSize = def.FontSize
	}
	return o
}

func (c *Canvas) exportLines(frame bool) []string {
	if frame {
		return c.FramedLines()
	}
	return c.Lines()
}

// WritePNG renders the composition as black monospace glyphs on white and
// encodes it to w. The image is exactly one cell per character.
func (c *Canvas) WritePNG(w io.Writer, opts PNGOptions) error {
	opts = opts.withDefaults()
	lines := c.exportLines(opts.Frame)

	cols := 0
	if len(lines) > 0 {
		cols = len([]rune(lines[0]))
	}
	imageWidth := int(float64(cols) * opts.CellWidth)
	imageHeight := int(float64(len(lines)) * opts.CellHeight)
	if imageWidth < 1 || imageHeight < 1 {
		return fmt.Errorf("png export: nothing to export")
	}

	dc := gg.NewContext(imageWidth, imageHeight)
	dc.SetColor(color.White)
	dc.Clear()
	dc.SetColor(color.Black)

	ttfFont, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return fmt.Errorf("png export: failed to parse font: %w", err)
	}
	face := truetype.NewFace(ttfFont, &truetype.Options{
		Size:    opts.FontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	defer face.Close()
	dc.SetFontFace(face)

	// Baseline sits a quarter cell above the bottom of each row.
	baseline := opts.CellHeight * 0.75
	for row, line := range lines {
		y := float64(row)*opts.CellHeight + baseline
		for col, ch := range []rune(line) {
			if ch == Background {
				continue
			}
			dc.DrawString(string(ch), float64(col)*opts.CellWidth, y)
		}
	}

	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("png export: %w", err)
	}
	Logger().Debug("exported png", "width", imageWidth, "height", imageHeight)
	return nil
}

// ExportPNG writes the composition to filename as a PNG image.
func (c *Canvas) ExportPNG(filename string, opts PNGOptions) error {
	return writeFile(filename, func(w io.Writer) error { return c.WritePNG(w, opts) })
}

// PDFOptions controls PDF export. Zero numeric fields take the defaults of
// DefaultPDFOptions.
type PDFOptions struct {
	FontSize float64 // points
	Margin   float64 // points
	Frame    bool
}

func DefaultPDFOptions() PDFOptions {
	return PDFOptions{FontSize: 10, Margin: 18, Frame: true}
}

// pdfFontFamily is the name the embedded Go Mono face is registered under.
const pdfFontFamily = "gomono"

// monoAdvance is the advance width of every Go Mono glyph, in ems.
const monoAdvance = 0.6

// WritePDF writes the composition as a single-page PDF set in Go Mono,
// embedded as a UTF-8 font so cells keep their characters. The page is
// sized to fit the text.
func (c *Canvas) WritePDF(w io.Writer, opts PDFOptions) error {
	def := DefaultPDFOptions()
	if opts.FontSize <= 0 {
		opts.FontSize = def.FontSize
	}
	if opts.Margin <= 0 {
		opts.Margin = def.Margin
	}
	lines := c.exportLines(opts.Frame)

	cols := 0
	if len(lines) > 0 {
		cols = len([]rune(lines[0]))
	}
	lineHeight := opts.FontSize * 1.2
	pageWidth := float64(cols)*opts.FontSize*monoAdvance + 2*opts.Margin
	pageHeight := float64(len(lines))*lineHeight + 2*opts.Margin

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: pageWidth, Ht: pageHeight},
	})
	pdf.SetMargins(opts.Margin, opts.Margin, opts.Margin)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	pdf.AddUTF8FontFromBytes(pdfFontFamily, "", gomono.TTF)
	pdf.SetFont(pdfFontFamily, "", opts.FontSize)

	for i, line := range lines {
		pdf.Text(opts.Margin, opts.Margin+float64(i)*lineHeight+opts.FontSize, line)
	}
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("pdf export: %w", err)
	}
	Logger().Debug("exported pdf", "lines", len(lines))
	return nil
}

// ExportPDF writes the composition to filename as a PDF document.
func (c *Canvas) ExportPDF(filename string, opts PDFOptions) error {
	return writeFile(filename, func(w io.Writer) error { return c.WritePDF(w, opts) })
}

// ExportTXT writes the framed composition to filename.
func (c *Canvas) ExportTXT(filename string) error {
	return writeFile(filename, c.Print)
}

func writeFile(filename string, write func(io.Writer) error) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := write(file); err != nil {
		file.Close()
		os.Remove(filename)
		return err
	}
	return file.Close()
}
