package render

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"math"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// ErrMalformedScene is returned for a scene that cannot be rasterized.
var ErrMalformedScene = errors.New("malformed scene")

// MaxCanvasSize bounds either canvas dimension.
const MaxCanvasSize = 8192

type faceKey struct {
	bold bool
	size float64
}

// Rasterizer turns a Scene into PNG bytes. Safe for concurrent use.
type Rasterizer struct {
	regular *opentype.Font
	bold    *opentype.Font

	mu    sync.Mutex
	faces map[faceKey]font.Face
}

// NewRasterizer parses the embedded Go fonts.
func NewRasterizer() (*Rasterizer, error) {
	regular, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse regular font: %w", err)
	}
	bold, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse bold font: %w", err)
	}
	return &Rasterizer{regular: regular, bold: bold, faces: make(map[faceKey]font.Face)}, nil
}

// Rasterize draws scene and encodes it as PNG.
func (r *Rasterizer) Rasterize(scene Scene) ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.validate(scene); err != nil {
		return nil, err
	}

	canvas := image.NewRGBA(image.Rect(0, 0, scene.Width, scene.Height))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(scene.Background), image.Point{}, draw.Src)

	for _, rect := range scene.Rects {
		draw.Draw(canvas, rect.Bounds, image.NewUniform(rect.Color), image.Point{}, draw.Over)
	}

	for _, text := range scene.Texts {
		face, err := r.face(text)
		if err != nil {
			return nil, err
		}
		d := &font.Drawer{Dst: canvas, Src: image.NewUniform(text.Color), Face: face}
		x := fixed.I(text.X)
		if text.Align == AlignRight {
			x -= d.MeasureString(text.Content)
		}
		d.Dot = fixed.Point26_6{X: x, Y: fixed.I(text.Y)}
		d.DrawString(text.Content)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, canvas); err != nil {
		return nil, fmt.Errorf("failed to encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// Measure returns the advance width of text in pixels. A face that cannot be
// built measures as infinitely wide.
func (r *Rasterizer) Measure(text Text) int {
	if text.Size <= 0 {
		return math.MaxInt
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	face, err := r.face(text)
	if err != nil {
		return math.MaxInt
	}
	return font.MeasureString(face, text.Content).Ceil()
}

func (r *Rasterizer) validate(scene Scene) error {
	if scene.Width <= 0 || scene.Height <= 0 || scene.Width > MaxCanvasSize || scene.Height > MaxCanvasSize {
		return fmt.Errorf("%w: canvas %dx%d", ErrMalformedScene, scene.Width, scene.Height)
	}
	canvas := image.Rect(0, 0, scene.Width, scene.Height)

	for i, rect := range scene.Rects {
		if rect.Bounds.Empty() || !rect.Bounds.In(canvas) {
			return fmt.Errorf("%w: rect %d outside canvas", ErrMalformedScene, i)
		}
	}

	for i, text := range scene.Texts {
		if text.Size <= 0 {
			return fmt.Errorf("%w: text %d has size %.1f", ErrMalformedScene, i, text.Size)
		}
		if !image.Pt(text.X, text.Y).In(canvas) {
			return fmt.Errorf("%w: text %d anchored outside canvas", ErrMalformedScene, i)
		}
		face, err := r.face(text)
		if err != nil {
			return err
		}
		width := font.MeasureString(face, text.Content).Ceil()
		left := text.X
		if text.Align == AlignRight {
			left -= width
		}
		if left < 0 || left+width > scene.Width {
			return fmt.Errorf("%w: text %d overflows the canvas", ErrMalformedScene, i)
		}
	}
	return nil
}

// face returns a cached face. Callers hold r.mu.
func (r *Rasterizer) face(text Text) (font.Face, error) {
	key := faceKey{bold: text.Bold, size: text.Size}
	if face, ok := r.faces[key]; ok {
		return face, nil
	}

	f := r.regular
	if text.Bold {
		f = r.bold
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: text.Size, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return nil, fmt.Errorf("failed to create font face: %w", err)
	}
	r.faces[key] = face
	return face, nil
}
