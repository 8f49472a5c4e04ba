package imageprocessor

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"

	_ "golang.org/x/image/webp"
)

// Info describes a decoded image header.
type Info struct {
	Format string // "jpeg", "png", "gif", "webp"
	Width  int
	Height int
}

// ContentType returns the MIME type of the detected format.
func (i Info) ContentType() string {
	return "image/" + i.Format
}

// Sniff decodes only the image header and reports format and
// dimensions. It inspects the actual bytes, so a renamed text file or
// a forged Content-Type header does not pass.
func Sniff(r io.Reader) (Info, error) {
	cfg, format, err := image.DecodeConfig(r)
	if err != nil {
		return Info{}, fmt.Errorf("not a decodable image: %w", err)
	}
	return Info{Format: format, Width: cfg.Width, Height: cfg.Height}, nil
}
