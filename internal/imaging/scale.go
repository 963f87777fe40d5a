package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"

	"github.com/nfnt/resize"
)

// Options bounds the scaled output. Exactly one of MaxWidth or MaxHeight
// must be set; the other dimension follows the aspect ratio.
type Options struct {
	MaxWidth  int
	MaxHeight int
}

var (
	// ErrNoBound indicates neither dimension bound was given.
	ErrNoBound = errors.New("at least one of width or height must be given")

	// ErrBothBounds indicates both dimension bounds were given.
	ErrBothBounds = errors.New("only one of width or height can be given")
)

// ScaleDown resizes the encoded image in data so it fits the bound in opts,
// using Lanczos resampling. Images already within the bound are returned
// unchanged. The output keeps the input's format (JPEG or PNG; anything
// else is re-encoded as JPEG).
func ScaleDown(data []byte, opts Options) ([]byte, error) {
	if opts.MaxWidth <= 0 && opts.MaxHeight <= 0 {
		return nil, ErrNoBound
	}
	if opts.MaxWidth > 0 && opts.MaxHeight > 0 {
		return nil, ErrBothBounds
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	switch {
	case opts.MaxHeight > 0 && bounds.Dy() >= opts.MaxHeight:
		img = resize.Resize(0, uint(opts.MaxHeight), img, resize.Lanczos3)
	case opts.MaxWidth > 0 && bounds.Dx() >= opts.MaxWidth:
		img = resize.Resize(uint(opts.MaxWidth), 0, img, resize.Lanczos3)
	default:
		return data, nil
	}

	var buf bytes.Buffer
	switch format {
	case "png":
		err = png.Encode(&buf, img)
	default:
		err = jpeg.Encode(&buf, img, nil)
	}
	if err != nil {
		return nil, fmt.Errorf("encode scaled image: %w", err)
	}
	return buf.Bytes(), nil
}
