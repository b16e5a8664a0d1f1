package canvas

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

const sceneHeader = "CANVAS"

// noTexture marks a shape without a texture in scene files.
const noTexture = "-"

// SaveScene writes the canvas in the scene format. Each distinct texture is
// written once, and shapes refer to it by name, so texture sharing
// survives a save and load. Texture rows holding '\r' or '\n' fail with
// ErrUnsavableTexture before anything is written.
func (c *Canvas) SaveScene(w io.Writer) error {
	names := make(map[*Texture]string)
	var order []*Texture
	for _, shape := range c.shapes {
		if shape.texture == nil {
			continue
		}
		if _, ok := names[shape.texture]; ok {
			continue
		}
		for i, row := range shape.texture.rows {
			if strings.ContainsAny(string(row), "\r\n") {
				return fmt.Errorf("save scene: texture row %d: %w", i, ErrUnsavableTexture)
			}
		}
		names[shape.texture] = "t" + strconv.Itoa(len(order))
		order = append(order, shape.texture)
	}

	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "%s\n", sceneHeader)
	fmt.Fprintf(bw, "SIZE:%d,%d\n", c.size.Width, c.size.Height)
	fmt.Fprintf(bw, "TEXTURES:%d\n", len(order))
	for _, tex := range order {
		fmt.Fprintf(bw, "%s:rows,%d\n", names[tex], len(tex.rows))
		for _, row := range tex.rows {
			fmt.Fprintf(bw, "%s\n", string(row))
		}
	}
	fmt.Fprintf(bw, "SHAPES:%d\n", len(c.shapes))
	for _, shape := range c.shapes {
		name := noTexture
		if shape.texture != nil {
			name = names[shape.texture]
		}
		fmt.Fprintf(bw, "%s,%d,%d,%d,%d,%s\n",
			shape.kind, shape.position.X, shape.position.Y,
			shape.size.Width, shape.size.Height, name)
	}
	return bw.Flush()
}

// SaveSceneFile writes the canvas to filename in the scene format.
// A failed save leaves no file behind.
func (c *Canvas) SaveSceneFile(filename string) error {
	return writeFile(filename, c.SaveScene)
}

// LoadSceneFile reads a canvas from a scene file.
func LoadSceneFile(filename string) (*Canvas, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return LoadScene(file)
}

// sceneScanner tracks line numbers for error messages.
type sceneScanner struct {
	*bufio.Scanner
	line int
}

func (s *sceneScanner) next(what string) (string, error) {
	if !s.Scan() {
		if err := s.Err(); err != nil {
			return "", err
		}
		return "", fmt.Errorf("line %d: missing %s", s.line+1, what)
	}
	s.line++
	return s.Text(), nil
}

func (s *sceneScanner) errorf(format string, args ...any) error {
	return fmt.Errorf("line %d: "+format, append([]any{s.line}, args...)...)
}

// LoadScene reads a canvas in the scene format.
func LoadScene(r io.Reader) (*Canvas, error) {
	s := &sceneScanner{Scanner: bufio.NewScanner(r)}
	s.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	header, err := s.next("header")
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(header) != sceneHeader {
		return nil, s.errorf("invalid scene header %q", header)
	}

	line, err := s.next("size")
	if err != nil {
		return nil, err
	}
	dims, err := parseInts(strings.TrimPrefix(line, "SIZE:"), 2)
	if err != nil || !strings.HasPrefix(line, "SIZE:") {
		return nil, s.errorf("invalid size %q", line)
	}
	c, err := New(Size{Width: dims[0], Height: dims[1]})
	if err != nil {
		return nil, s.errorf("%w", err)
	}

	textures, err := readTextures(s)
	if err != nil {
		return nil, err
	}

	line, err = s.next("shapes header")
	if err != nil {
		return nil, err
	}
	count, err := parseCount(line, "SHAPES:")
	if err != nil {
		return nil, s.errorf("%v", err)
	}
	for i := 0; i < count; i++ {
		line, err := s.next("shape")
		if err != nil {
			return nil, err
		}
		parts := strings.Split(line, ",")
		if len(parts) != 6 {
			return nil, s.errorf("invalid shape %q", line)
		}
		kind, err := ParseShapeKind(parts[0])
		if err != nil {
			return nil, s.errorf("%v", err)
		}
		nums, err := parseInts(strings.Join(parts[1:5], ","), 4)
		if err != nil {
			return nil, s.errorf("invalid shape geometry %q", line)
		}
		var tex *Texture
		if name := strings.TrimSpace(parts[5]); name != noTexture {
			var ok bool
			if tex, ok = textures[name]; !ok {
				return nil, s.errorf("unknown texture %q", name)
			}
		}
		c.AddShape(kind, Point{X: nums[0], Y: nums[1]}, Size{Width: nums[2], Height: nums[3]}, tex)
	}
	return c, nil
}

func readTextures(s *sceneScanner) (map[string]*Texture, error) {
	line, err := s.next("textures header")
	if err != nil {
		return nil, err
	}
	count, err := parseCount(line, "TEXTURES:")
	if err != nil {
		return nil, s.errorf("%v", err)
	}

	textures := make(map[string]*Texture, count)
	for i := 0; i < count; i++ {
		line, err := s.next("texture")
		if err != nil {
			return nil, err
		}
		name, def, ok := strings.Cut(line, ":")
		if !ok || name == "" || name == noTexture {
			return nil, s.errorf("invalid texture %q", line)
		}
		if _, dup := textures[name]; dup {
			return nil, s.errorf("duplicate texture %q", name)
		}
		tex, err := readTexture(s, def)
		if err != nil {
			return nil, err
		}
		textures[name] = tex
	}
	return textures, nil
}

// readTexture parses one of:
//
//	rows,<k>             followed by k raw rows
//	solid,<w>,<h>,<ch>
//	checkers,<w>,<h>,<ch1>,<ch2>
func readTexture(s *sceneScanner, def string) (*Texture, error) {
	kind, rest, _ := strings.Cut(def, ",")
	switch kind {
	case "rows":
		n, err := strconv.Atoi(strings.TrimSpace(rest))
		if err != nil || n < 0 {
			return nil, s.errorf("invalid row count %q", rest)
		}
		rows := make([]string, n)
		for i := range rows {
			if rows[i], err = s.next("texture row"); err != nil {
				return nil, err
			}
		}
		return NewTexture(rows), nil
	case "solid", "checkers":
		fields := strings.SplitN(rest, ",", 3)
		if len(fields) != 3 {
			return nil, s.errorf("invalid %s texture %q", kind, def)
		}
		dims, err := parseInts(fields[0]+","+fields[1], 2)
		if err != nil {
			return nil, s.errorf("invalid %s texture size %q", kind, def)
		}
		size := Size{Width: dims[0], Height: dims[1]}
		chars := []rune(fields[2])
		if kind == "solid" {
			if len(chars) != 1 {
				return nil, s.errorf("solid texture needs one character, got %q", fields[2])
			}
			return NewSolidTexture(size, chars[0]), nil
		}
		if len(chars) != 3 || chars[1] != ',' {
			return nil, s.errorf("checkers texture needs two characters, got %q", fields[2])
		}
		return NewCheckersTexture(size, chars[0], chars[2]), nil
	}
	return nil, s.errorf("unknown texture kind %q", kind)
}

func parseCount(line, prefix string) (int, error) {
	if !strings.HasPrefix(line, prefix) {
		return 0, fmt.Errorf("expected %s, got %q", prefix, line)
	}
	n, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(line, prefix)))
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid count in %q", line)
	}
	return n, nil
}

func parseInts(s string, n int) ([]int, error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("want %d values, got %d", n, len(parts))
	}
	out := make([]int, n)
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
