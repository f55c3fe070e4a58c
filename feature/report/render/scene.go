package render

import (
	"fmt"
	"image"
	"image/color"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Canvas geometry. The height grows by RowHeight per listed entry.
const (
	CanvasWidth  = 800
	BaseHeight   = 600
	RowHeight    = 40
	marginX      = 40
	headerHeight = 100
	listTop      = 260
	maxNameRunes = 40
	rankSize     = 20
	minRankSize  = 12
)

// Align positions a text element relative to its anchor X.
type Align int

const (
	AlignLeft Align = iota
	AlignRight
)

var (
	colorBackground = color.RGBA{R: 0xf8, G: 0xf9, B: 0xfb, A: 0xff}
	colorHeader     = color.RGBA{R: 0x1f, G: 0x3a, B: 0x5f, A: 0xff}
	colorTitle      = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	colorText       = color.RGBA{R: 0x22, G: 0x22, B: 0x22, A: 0xff}
	colorMuted      = color.RGBA{R: 0x6b, G: 0x72, B: 0x80, A: 0xff}
)

// Rect is a filled rectangle.
type Rect struct {
	Bounds image.Rectangle
	Color  color.RGBA
}

// Text is a single line of text anchored on its baseline.
type Text struct {
	X, Y    int
	Content string
	Size    float64
	Bold    bool
	Align   Align
	Color   color.RGBA
}

// Scene is the vector description of the summary report.
type Scene struct {
	Width      int
	Height     int
	Background color.RGBA
	Rects      []Rect
	Texts      []Text
}

// Entry is one ranked line of the report.
type Entry struct {
	Name string  `json:"name"`
	GDP  float64 `json:"estimated_gdp"`
}

// Snapshot is the data a report is rendered from.
type Snapshot struct {
	Total       int64     `json:"total_countries"`
	Top         []Entry   `json:"top_countries"`
	GeneratedAt time.Time `json:"generated_at"`
}

// Measurer reports the rendered width in pixels of a text element.
// *Rasterizer implements it.
type Measurer interface {
	Measure(text Text) int
}

// HeightFor returns the canvas height for n listed entries.
func HeightFor(n int) int {
	return BaseHeight + RowHeight*n
}

// BuildScene lays out snapshot on an 800 pixel wide canvas. When m is set,
// ranked lines are fitted to the margins: the name is elided first, then the
// font shrinks. A nil m only caps names at 40 runes.
func BuildScene(snapshot Snapshot, m Measurer) Scene {
	height := HeightFor(len(snapshot.Top))
	title := cases.Title(language.English)

	scene := Scene{
		Width:      CanvasWidth,
		Height:     height,
		Background: colorBackground,
		Rects: []Rect{
			{Bounds: image.Rect(0, 0, CanvasWidth, headerHeight), Color: colorHeader},
		},
	}

	scene.Texts = append(scene.Texts,
		Text{X: marginX, Y: 64, Content: "Country Summary", Size: 36, Bold: true, Color: colorTitle},
		Text{X: marginX, Y: 160, Content: fmt.Sprintf("Total countries: %d", snapshot.Total), Size: 24, Color: colorText},
		Text{X: marginX, Y: 215, Content: "Top 5 countries by estimated GDP", Size: 22, Bold: true, Color: colorText},
	)

	if len(snapshot.Top) == 0 {
		scene.Texts = append(scene.Texts,
			Text{X: marginX, Y: listTop, Content: "No GDP estimates available", Size: 20, Color: colorMuted})
	}
	for i, e := range snapshot.Top {
		line := Text{X: marginX, Y: listTop + i*RowHeight, Size: rankSize, Color: colorText}
		name := truncate(title.String(e.Name), maxNameRunes)
		scene.Texts = append(scene.Texts, fitRankLine(m, line, i+1, name, e.GDP))
	}

	scene.Texts = append(scene.Texts, Text{
		X:       CanvasWidth - marginX,
		Y:       height - marginX,
		Content: "Last refreshed: " + snapshot.GeneratedAt.UTC().Format(time.RFC1123),
		Size:    16,
		Align:   AlignRight,
		Color:   colorMuted,
	})

	return scene
}

// fitRankLine returns line holding "rank. name: $gdpB" within the margins.
// If no candidate fits, the last one tried is returned and the rasterizer rejects it.
func fitRankLine(m Measurer, line Text, rank int, name string, gdp float64) Text {
	amounts := []string{fmt.Sprintf("$%.2fB", gdp/1e9), fmt.Sprintf("$%.3eB", gdp/1e9)}
	line.Content = fmt.Sprintf("%d. %s: %s", rank, name, amounts[0])
	if m == nil {
		return line
	}

	maxWidth := CanvasWidth - 2*marginX
	runes := []rune(name)
	for _, amount := range amounts {
		for size := float64(rankSize); size >= minRankSize; size -= 2 {
			line.Size = size
			for n := len(runes); n >= 0; n-- {
				shown := name
				if n < len(runes) {
					shown = string(runes[:n]) + "…"
				}
				line.Content = fmt.Sprintf("%d. %s: %s", rank, shown, amount)
				if m.Measure(line) <= maxWidth {
					return line
				}
			}
		}
	}
	return line
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}
