package vis

import "image"

// blackenColumns zeroes the RGB channels of every pixel in columns [x0, x1),
// full image height. Alpha stays opaque.
func blackenColumns(img *image.RGBA, x0, x1 int) {
	b := img.Bounds()
	if x0 < 0 {
		x0 = 0
	}
	if x1 > b.Dx() {
		x1 = b.Dx()
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X + x0; x < b.Min.X+x1; x++ {
			i := img.PixOffset(x, y)
			img.Pix[i] = 0
			img.Pix[i+1] = 0
			img.Pix[i+2] = 0
		}
	}
}

// greyscale replaces every pixel with its channel mean, replicated across the
// RGB channels.
func greyscale(img *image.RGBA) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			i := img.PixOffset(x, y)
			m := (int(img.Pix[i]) + int(img.Pix[i+1]) + int(img.Pix[i+2])) / 3
			img.Pix[i] = uint8(m)
			img.Pix[i+1] = uint8(m)
			img.Pix[i+2] = uint8(m)
		}
	}
}
