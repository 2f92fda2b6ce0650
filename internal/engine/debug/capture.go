// Package debug provides frame capture utilities.
package debug

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
)

// SavePNG writes raw framebuffer pixels to a PNG file. pixels must be
// tightly packed RGBA, width*height*4 bytes, bottom row first (the order
// OpenGL's ReadPixels delivers); the image is flipped vertically while
// copying so the file is top row first.
func SavePNG(path string, pixels []byte, width, height int) error {
	if len(pixels) != width*height*4 {
		return fmt.Errorf("pixel data size mismatch: expected %d, got %d", width*height*4, len(pixels))
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output dir: %w", err)
		}
	}

	img := FlipToImage(pixels, width, height)

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("encoding PNG: %w", err)
	}

	return nil
}

// FlipToImage converts bottom-first RGBA pixel rows into a top-first image.
func FlipToImage(pixels []byte, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	rowSize := width * 4
	for y := 0; y < height; y++ {
		srcY := height - 1 - y
		srcOffset := srcY * rowSize
		dstOffset := y * img.Stride

		copy(img.Pix[dstOffset:dstOffset+rowSize], pixels[srcOffset:srcOffset+rowSize])
	}

	return img
}
