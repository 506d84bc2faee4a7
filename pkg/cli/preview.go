package cli

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"os"
	"os/exec"
	"strings"
)

// Terminal preview for the annotated detection output: kitty graphics
// protocol, iTerm2-style inline OSC 1337, and a chafa fallback for
// everything else. Sixel support and per-backend environment-variable
// tuning knobs are left out -- this tool previews one PNG per run, not
// an interactive image editor, so the extra backend doesn't earn its
// complexity here.
func isKitty() bool {
	if os.Getenv("KITTY_WINDOW_ID") != "" {
		return true
	}
	term := strings.ToLower(os.Getenv("TERM"))
	return strings.Contains(term, "kitty") || strings.Contains(term, "ghostty")
}

func isInlineImageCapable() bool {
	switch os.Getenv("TERM_PROGRAM") {
	case "iTerm.app", "WezTerm", "vscode", "VSCode":
		return true
	}
	return os.Getenv("ITERM_SESSION_ID") != ""
}

func hasChafa() bool {
	_, err := exec.LookPath("chafa")
	return err == nil
}

// PreviewSupported reports whether the current terminal can likely show
// an inline preview via one of the backends below.
func PreviewSupported() bool {
	return isKitty() || isInlineImageCapable() || hasChafa()
}

// PreviewImage encodes img as PNG and writes it to the terminal using
// whichever backend is detected, preferring kitty, then iTerm2-style
// inline, then chafa.
func PreviewImage(img image.Image) error {
	if img == nil {
		return fmt.Errorf("cli: nil preview image")
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("cli: png encode for preview: %w", err)
	}
	data := buf.Bytes()

	if isKitty() {
		return sendKittyImage(data)
	}
	if isInlineImageCapable() {
		return sendInlineImage(data)
	}
	if hasChafa() {
		return sendChafaImage(data)
	}
	return fmt.Errorf("cli: no terminal preview backend detected")
}

// sendKittyImage transmits a PNG payload via the kitty graphics
// protocol, chunked into <=4096-byte base64 pieces per the protocol.
func sendKittyImage(data []byte) error {
	enc := base64.StdEncoding.EncodeToString(data)
	const chunkSize = 4096

	total := len(enc)
	first := true
	for pos := 0; pos < total; pos += chunkSize {
		end := pos + chunkSize
		if end > total {
			end = total
		}
		chunk := enc[pos:end]
		last := end == total
		m := "1"
		if last {
			m = "0"
		}
		var header string
		if first {
			header = fmt.Sprintf("\x1b_Ga=T,f=100,t=d,q=2,m=%s;%s\x1b\\", m, chunk)
			first = false
		} else {
			header = fmt.Sprintf("\x1b_Gm=%s;%s\x1b\\", m, chunk)
		}
		if _, err := os.Stdout.Write([]byte(header)); err != nil {
			return err
		}
	}
	fmt.Println()
	return nil
}

// sendInlineImage emits the iTerm2-style OSC 1337 inline-file sequence.
func sendInlineImage(data []byte) error {
	enc := base64.StdEncoding.EncodeToString(data)
	seq := fmt.Sprintf("\x1b]1337;File=name=detect.png;inline=1;size=%d:%s\a", len(data), enc)
	_, err := os.Stdout.Write([]byte(seq))
	fmt.Println()
	return err
}

// sendChafaImage shells out to chafa for a block-character rendering.
func sendChafaImage(data []byte) error {
	cmd := exec.Command("chafa", "--fill=block", "--symbols=block", "-")
	cmd.Stdin = bytes.NewReader(data)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
