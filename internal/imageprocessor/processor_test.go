package imageprocessor

import (
	"bytes"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSniffDetectsFormats(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 2))

	cases := []struct {
		format string
		encode func(*bytes.Buffer) error
	}{
		{"png", func(buf *bytes.Buffer) error { return png.Encode(buf, img) }},
		{"jpeg", func(buf *bytes.Buffer) error { return jpeg.Encode(buf, img, nil) }},
		{"gif", func(buf *bytes.Buffer) error { return gif.Encode(buf, img, nil) }},
	}

	for _, tc := range cases {
		var buf bytes.Buffer
		require.NoError(t, tc.encode(&buf))

		info, err := Sniff(&buf)
		require.NoError(t, err, "format %s", tc.format)
		assert.Equal(t, tc.format, info.Format)
		assert.Equal(t, "image/"+tc.format, info.ContentType())
		assert.Equal(t, 4, info.Width)
		assert.Equal(t, 2, info.Height)
	}
}

func TestSniffRejectsNonImages(t *testing.T) {
	for _, bad := range []string{"", "just some text", "<html></html>", "\x89PNG but truncated"} {
		_, err := Sniff(strings.NewReader(bad))
		assert.Error(t, err, "input %q must not sniff as an image", bad)
	}
}
