package render

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"testing"
)

func whiteImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	return img
}

func isWhite(c color.Color) bool {
	r, g, b, _ := c.RGBA()
	return r == 0xffff && g == 0xffff && b == 0xffff
}

func TestDrawCaptionStampsBottomRight(t *testing.T) {
	src := whiteImage(400, 200)
	out := drawCaption(src, "Rabi_Model.json")
	if isWhite(out.At(395, 195)) {
		t.Fatalf("bottom-right corner not stamped")
	}
	if !isWhite(out.At(5, 195)) || !isWhite(out.At(395, 5)) {
		t.Fatalf("caption spilled outside the bottom-right band")
	}
	if !isWhite(src.At(395, 195)) {
		t.Fatalf("source image modified")
	}
}

func TestDrawCaptionBlankLeavesImage(t *testing.T) {
	src := whiteImage(50, 20)
	if out := drawCaption(src, "   "); out != image.Image(src) {
		t.Fatalf("blank caption must return the input")
	}
}

func TestDrawCaptionLongTextStaysInside(t *testing.T) {
	src := whiteImage(80, 30)
	out := drawCaption(src, "results/resource_estimation_playground/photon_loss_sweep.json")
	if !isWhite(out.At(0, 0)) {
		t.Fatalf("top-left pixel touched")
	}
	if out.Bounds() != src.Bounds() {
		t.Fatalf("bounds changed: %v", out.Bounds())
	}
}

func TestCaptionPNG(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, whiteImage(300, 100)); err != nil {
		t.Fatal(err)
	}
	data, err := captionPNG(buf.Bytes(), "example3.json")
	if err != nil {
		t.Fatalf("caption: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if isWhite(img.At(295, 95)) {
		t.Fatalf("caption not present after re-encode")
	}
	if _, err := captionPNG([]byte("not a png"), "x"); err == nil {
		t.Fatalf("expected decode error")
	}
}
