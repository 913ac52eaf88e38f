// Package frames decodes a multi-frame GIF into an ordered, random-access
// sequence of normalized still images. Every frame comes out as 3-channel
// RGB with 8-bit samples on the animation's full canvas, so a viewer can
// seek to any frame without caring how the source encoded it.
//
// Decode fails closed: corrupt files, unsupported data, and zero-frame
// animations all collapse to an empty sequence. Callers that need to
// distinguish "absent" from "corrupt" wrap this package (see the dash
// facade).
package frames

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"image/png"
	"os"
)

// Frame is one decoded, normalized still image: 8-bit RGB, interleaved,
// len(Pix) == 3*W*H. All frames of one decoded sequence share W and H.
type Frame struct {
	W, H int
	Pix  []uint8
}

// RGB returns the pixel at (x, y).
func (f Frame) RGB(x, y int) (r, g, b uint8) {
	off := (y*f.W + x) * 3
	return f.Pix[off], f.Pix[off+1], f.Pix[off+2]
}

// Image reconstructs the frame as an opaque NRGBA image, e.g. for PNG
// export.
func (f Frame) Image() image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, f.W, f.H))
	for i := 0; i < f.W*f.H; i++ {
		img.Pix[i*4+0] = f.Pix[i*3+0]
		img.Pix[i*4+1] = f.Pix[i*3+1]
		img.Pix[i*4+2] = f.Pix[i*3+2]
		img.Pix[i*4+3] = 0xff
	}
	return img
}

// EncodePNG renders the frame as a PNG, for per-frame export.
func (f Frame) EncodePNG() ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, f.Image()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode reads the GIF at path and materializes the whole animation.
// Frames are composited onto the logical canvas in sequence (later
// frames may only update a sub-rectangle), then normalized. On any
// decode error the result is an empty sequence, never a panic or error.
func Decode(path string) []Frame {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	g, err := gif.DecodeAll(f)
	if err != nil || len(g.Image) == 0 {
		return nil
	}

	w, h := g.Config.Width, g.Config.Height
	if w == 0 || h == 0 {
		b := g.Image[0].Bounds()
		w, h = b.Dx(), b.Dy()
	}

	canvas := image.NewNRGBA(image.Rect(0, 0, w, h))
	out := make([]Frame, 0, len(g.Image))
	for _, p := range g.Image {
		// Transparent palette entries leave the previous canvas
		// content visible, which is how inter-frame deltas work.
		draw.Draw(canvas, p.Bounds(), p, p.Bounds().Min, draw.Over)
		out = append(out, Normalize(snapshotNRGBA(canvas)))
	}
	return out
}

func snapshotNRGBA(src *image.NRGBA) *image.NRGBA {
	dst := image.NewNRGBA(src.Rect)
	copy(dst.Pix, src.Pix)
	return dst
}

// Normalize converts one raw frame into the uniform 8-bit RGB layout:
//
//  1. single-channel (grayscale) input is replicated across R, G and B;
//  2. a fourth (alpha) channel is dropped, with no compositing against
//     a background;
//  3. samples deeper than 8 bits are rescaled into 0–255 by the frame's
//     own maximum value and truncated; an all-zero frame skips the
//     rescale so there is no division by zero.
func Normalize(img image.Image) Frame {
	switch src := img.(type) {
	case *image.Gray:
		return fromGray8(src)
	case *image.Gray16:
		return fromGray16(src)
	case *image.NRGBA:
		return fromNRGBA8(src)
	case *image.NRGBA64:
		return fromNRGBA16(src)
	}
	return fromGeneric(img)
}

func fromGray8(src *image.Gray) Frame {
	b := src.Bounds()
	f := Frame{W: b.Dx(), H: b.Dy()}
	f.Pix = make([]uint8, 3*f.W*f.H)
	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			v := src.GrayAt(x, y).Y
			f.Pix[i], f.Pix[i+1], f.Pix[i+2] = v, v, v
			i += 3
		}
	}
	return f
}

func fromGray16(src *image.Gray16) Frame {
	b := src.Bounds()
	samples := make([]uint32, 0, b.Dx()*b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			samples = append(samples, uint32(src.Gray16At(x, y).Y))
		}
	}
	scaled := rescaleToByte(samples)
	f := Frame{W: b.Dx(), H: b.Dy()}
	f.Pix = make([]uint8, 3*f.W*f.H)
	for i, v := range scaled {
		f.Pix[i*3], f.Pix[i*3+1], f.Pix[i*3+2] = v, v, v
	}
	return f
}

func fromNRGBA8(src *image.NRGBA) Frame {
	b := src.Bounds()
	f := Frame{W: b.Dx(), H: b.Dy()}
	f.Pix = make([]uint8, 3*f.W*f.H)
	for i := 0; i < f.W*f.H; i++ {
		// Drop the alpha channel, keep the color samples untouched.
		f.Pix[i*3+0] = src.Pix[i*4+0]
		f.Pix[i*3+1] = src.Pix[i*4+1]
		f.Pix[i*3+2] = src.Pix[i*4+2]
	}
	return f
}

func fromNRGBA16(src *image.NRGBA64) Frame {
	b := src.Bounds()
	n := b.Dx() * b.Dy()
	samples := make([]uint32, 0, 3*n)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := src.NRGBA64At(x, y)
			samples = append(samples, uint32(c.R), uint32(c.G), uint32(c.B))
		}
	}
	f := Frame{W: b.Dx(), H: b.Dy(), Pix: rescaleToByte(samples)}
	return f
}

// fromGeneric handles paletted and any other color model by converting
// pixels through NRGBA (8-bit, non-premultiplied) and dropping alpha.
func fromGeneric(img image.Image) Frame {
	b := img.Bounds()
	f := Frame{W: b.Dx(), H: b.Dy()}
	f.Pix = make([]uint8, 3*f.W*f.H)
	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			f.Pix[i], f.Pix[i+1], f.Pix[i+2] = c.R, c.G, c.B
			i += 3
		}
	}
	return f
}

// rescaleToByte maps samples into 0–255 by the slice's own maximum,
// truncating to integer. A zero maximum (degenerate all-black frame)
// skips the rescale and truncates directly.
func rescaleToByte(samples []uint32) []uint8 {
	var max uint32
	for _, v := range samples {
		if v > max {
			max = v
		}
	}
	out := make([]uint8, len(samples))
	if max == 0 {
		return out
	}
	for i, v := range samples {
		out[i] = uint8(uint64(v) * 255 / uint64(max))
	}
	return out
}
