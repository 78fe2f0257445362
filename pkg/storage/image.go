package storage

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"

	// register GIF so Decode can report its config
	_ "image/gif"

	"golang.org/x/image/draw"
)

// MaxImageWidth is the width images are scaled down to.
const MaxImageWidth = 800

// ResizeImage scales JPEG and PNG images wider than maxWidth down to
// maxWidth, keeping the aspect ratio and the original format. Other formats
// and images that already fit are returned unchanged.
func ResizeImage(data []byte, maxWidth int) ([]byte, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image config: %w", err)
	}
	if (format != "jpeg" && format != "png") || cfg.Width <= maxWidth {
		return data, nil
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", format, err)
	}

	bounds := img.Bounds()
	newHeight := bounds.Dy() * maxWidth / bounds.Dx()
	if newHeight < 1 {
		newHeight = 1
	}
	resized := image.NewRGBA(image.Rect(0, 0, maxWidth, newHeight))
	draw.CatmullRom.Scale(resized, resized.Bounds(), img, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if format == "png" {
		err = png.Encode(&buf, resized)
	} else {
		err = jpeg.Encode(&buf, resized, &jpeg.Options{Quality: 85})
	}
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", format, err)
	}
	return buf.Bytes(), nil
}
