package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const captionMargin = 4

var (
	captionBand = color.RGBA{R: 240, G: 240, B: 240, A: 230}
	captionText = color.RGBA{R: 60, G: 60, B: 60, A: 255}
)

// drawCaption stamps text right-aligned in the bottom margin of img, where the charts leave
// white space below the x-axis label. Text wider than the image loses its start so the end of
// a file name stays readable.
func drawCaption(img image.Image, text string) image.Image {
	text = strings.TrimSpace(text)
	if img == nil || text == "" {
		return img
	}
	b := img.Bounds()
	out := image.NewRGBA(b)
	draw.Draw(out, b, img, b.Min, draw.Src)

	face := basicfont.Face7x13
	d := &font.Drawer{Dst: out, Src: image.NewUniform(captionText), Face: face}
	avail := b.Dx() - 4*captionMargin
	if d.MeasureString(text).Ceil() > avail {
		rest := []rune(text)
		for len(rest) > 0 && d.MeasureString("..."+string(rest)).Ceil() > avail {
			rest = rest[1:]
		}
		text = "..." + string(rest)
	}
	tw := d.MeasureString(text).Ceil()
	m := face.Metrics()
	band := image.Rect(b.Max.X-tw-3*captionMargin, b.Max.Y-(m.Ascent+m.Descent).Ceil()-2*captionMargin, b.Max.X, b.Max.Y)
	draw.Draw(out, band, image.NewUniform(captionBand), image.Point{}, draw.Over)

	d.Dot = fixed.P(b.Max.X-tw-2*captionMargin, b.Max.Y-m.Descent.Ceil()-captionMargin)
	d.DrawString(text)
	return out
}

// captionPNG re-encodes PNG bytes with a caption stamped on.
func captionPNG(data []byte, text string) ([]byte, error) {
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode png: %w", err)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, drawCaption(img, text)); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}
