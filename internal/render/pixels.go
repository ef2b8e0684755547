package render

import (
	"image"
	"image/color"
)

// HalfCell holds the two colors of one terminal cell drawn as an upper half
// block: Top is the foreground, Bottom the background.
type HalfCell struct {
	Top, Bottom color.RGBA
}

// SampleHalfCells box-averages img into cols×rows half-block cells, each cell
// covering two vertically stacked samples. Cells outside the image are black.
func SampleHalfCells(img *image.RGBA, cols, rows int) []HalfCell {
	if cols <= 0 || rows <= 0 {
		return nil
	}
	cells := make([]HalfCell, cols*rows)
	if img == nil {
		return cells
	}
	b := img.Bounds()
	sx := float64(b.Dx()) / float64(cols)
	sy := float64(b.Dy()) / float64(rows*2)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			x0 := b.Min.X + int(float64(col)*sx)
			x1 := b.Min.X + int(float64(col+1)*sx)
			top0 := b.Min.Y + int(float64(row*2)*sy)
			mid := b.Min.Y + int(float64(row*2+1)*sy)
			bot1 := b.Min.Y + int(float64(row*2+2)*sy)
			cells[row*cols+col] = HalfCell{
				Top:    averageRGBA(img, x0, top0, x1, mid),
				Bottom: averageRGBA(img, x0, mid, x1, bot1),
			}
		}
	}
	return cells
}

// averageRGBA returns the mean color of the half-open rectangle; empty
// rectangles sample their top-left pixel.
func averageRGBA(img *image.RGBA, x0, y0, x1, y1 int) color.RGBA {
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	rect := image.Rect(x0, y0, x1, y1).Intersect(img.Bounds())
	if rect.Empty() {
		return color.RGBA{}
	}
	var r, g, b, a, n uint32
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		base := img.PixOffset(rect.Min.X, y)
		for x := rect.Min.X; x < rect.Max.X; x++ {
			px := img.Pix[base : base+4 : base+4]
			r += uint32(px[0])
			g += uint32(px[1])
			b += uint32(px[2])
			a += uint32(px[3])
			n++
			base += 4
		}
	}
	return color.RGBA{R: uint8(r / n), G: uint8(g / n), B: uint8(b / n), A: uint8(a / n)}
}

// ToRGBA returns img as *image.RGBA, converting when necessary.
func ToRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	b := img.Bounds()
	out := image.NewRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			out.Set(x, y, img.At(x, y))
		}
	}
	return out
}
