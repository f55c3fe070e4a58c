// Package render draws the country summary report.
//
// Rendering has two stages. BuildScene turns a Snapshot into a Scene, a plain
// description of rectangles and text lines on an 800 pixel wide canvas whose
// height is 600 plus 40 per ranked entry. Ranked lines are measured against
// the Rasterizer's faces and elided or shrunk to fit. The Rasterizer then draws the scene
// with the embedded Go fonts and encodes it as PNG, rejecting scenes with a
// non-positive size or elements that fall outside the canvas.
package render
