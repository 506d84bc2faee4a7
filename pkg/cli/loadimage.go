package cli

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"gopkg.in/gographics/imagick.v3/imagick"
)

// LoadImage decodes path into an image.Image. PNG/JPEG/GIF go through
// Go's standard decoders; anything else (TIFF, BMP, WEBP, and other
// wide-format inputs the stdlib doesn't know) falls back to ImageMagick
// via gographics/imagick.
func LoadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cli: open %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err == nil {
		return img, nil
	}

	return loadWithImagick(path)
}

func loadWithImagick(path string) (image.Image, error) {
	imagick.Initialize()
	defer imagick.Terminate()

	mw := imagick.NewMagickWand()
	defer mw.Destroy()

	if err := mw.ReadImage(path); err != nil {
		return nil, fmt.Errorf("cli: imagick read %s: %w", path, err)
	}

	width := int(mw.GetImageWidth())
	height := int(mw.GetImageHeight())

	pixels, err := mw.ExportImagePixels(0, 0, uint(width), uint(height), "RGBA", imagick.PIXEL_CHAR)
	if err != nil {
		return nil, fmt.Errorf("cli: imagick export pixels %s: %w", path, err)
	}

	out := image.NewNRGBA(image.Rect(0, 0, width, height))
	for i, v := range pixels.([]byte) {
		out.Pix[i] = v
	}
	return out, nil
}
