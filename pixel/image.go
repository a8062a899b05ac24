package pixel

import (
	"fmt"
	"image"
	"image/color"
	"io"

	// Registered decoders: maze bitmaps arrive as PNG, GIF, JPEG or BMP.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"

	"github.com/katalvlaran/mazegraph/grid"
)

// Decode reads an encoded image (PNG, GIF, JPEG or BMP) from r and converts
// it into a Buffer. The registered format name is returned alongside.
// Decoding failures are wrapped in ErrDecode.
func Decode(r io.Reader) (*Buffer, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrDecode, err)
	}
	buf, err := FromImage(img)
	if err != nil {
		return nil, format, err
	}

	return buf, format, nil
}

// FromImage converts any image.Image into a Buffer of 8-bit RGB colors.
// Alpha is ignored: every pixel keeps its non-premultiplied RGB, so a fully
// transparent white stays white. *image.NRGBA is read directly; opaque
// images are drawn onto an NRGBA canvas; anything else is converted pixel by
// pixel through color.NRGBAModel.
// Complexity: O(W×H).
func FromImage(img image.Image) (*Buffer, error) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrEmptyBuffer, w, h)
	}

	nrgba, ok := img.(*image.NRGBA)
	if !ok {
		nrgba = image.NewNRGBA(image.Rect(0, 0, w, h))
		if opaque(img) {
			draw.Draw(nrgba, nrgba.Bounds(), img, bounds.Min, draw.Src)
		} else {
			// Premultiplied drawing would zero the color of transparent pixels.
			for y := 0; y < h; y++ {
				for x := 0; x < w; x++ {
					c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
					nrgba.SetNRGBA(x, y, c)
				}
			}
		}
	}

	pix := make([]Color, 0, w*h)
	origin := nrgba.Bounds().Min
	for y := 0; y < h; y++ {
		off := nrgba.PixOffset(origin.X, origin.Y+y)
		row := nrgba.Pix[off : off+4*w]
		for x := 0; x < w; x++ {
			pix = append(pix, Color{R: row[4*x], G: row[4*x+1], B: row[4*x+2]})
		}
	}

	return &Buffer{dims: grid.Dims{Width: w, Height: h}, pix: pix}, nil
}

// opaque reports whether img declares every pixel fully opaque.
func opaque(img image.Image) bool {
	o, ok := img.(interface{ Opaque() bool })
	return ok && o.Opaque()
}

// Image renders the buffer back into an *image.RGBA, mainly so fixtures can
// be encoded to disk by tests and tools.
func (b *Buffer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, b.dims.Width, b.dims.Height))
	for i, c := range b.pix {
		o := 4 * i
		img.Pix[o], img.Pix[o+1], img.Pix[o+2], img.Pix[o+3] = c.R, c.G, c.B, 0xff
	}
	return img
}
