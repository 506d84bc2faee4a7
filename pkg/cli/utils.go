package cli

import (
	"bufio"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"
)

// PromptLine displays a prompt and reads a full line of input from the
// user, trimmed of surrounding whitespace.
func PromptLine(prompt string) (string, error) {
	fmt.Print(prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// SaveImage saves an image.Image to disk, with the format inferred from
// the filename extension (defaulting to PNG).
func SaveImage(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return jpeg.Encode(f, img, &jpeg.Options{Quality: 92})
	default:
		return png.Encode(f, img)
	}
}

// GetImageInfoImage returns a short human-readable summary of an
// image.Image's dimensions.
func GetImageInfoImage(img image.Image) (string, error) {
	if img == nil {
		return "", fmt.Errorf("cli: nil image")
	}
	b := img.Bounds()
	return fmt.Sprintf("%dx%d", b.Dx(), b.Dy()), nil
}
