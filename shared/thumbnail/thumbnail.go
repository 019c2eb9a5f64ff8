// Package thumbnail shrinks uploaded images for grid views.
package thumbnail

import (
	"bytes"
	"fmt"

	"github.com/disintegration/imaging"
)

const (
	ContentType = "image/jpeg"
	Extension   = ".jpg"

	jpegQuality = 80
)

// Generate fits the image into maxWidth x maxHeight, keeping its aspect ratio,
// and encodes the result as JPEG. EXIF orientation is applied first so phone
// photos are not rotated.
func Generate(content []byte, maxWidth, maxHeight int) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(content), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	thumb := imaging.Fit(img, maxWidth, maxHeight, imaging.Lanczos)

	buf := new(bytes.Buffer)
	if err = imaging.Encode(buf, thumb, imaging.JPEG, imaging.JPEGQuality(jpegQuality)); err != nil {
		return nil, fmt.Errorf("failed to encode thumbnail: %w", err)
	}

	return buf.Bytes(), nil
}
