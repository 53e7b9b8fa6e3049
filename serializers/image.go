package serializers

import (
	"image"
	"io"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

const (
	MaxImageHeight = 4096
	MaxImageWidth  = 4096
	MaxImageBytes  = 2 * 1024 * 1024
)

// ValidateImage bounds-checks an uploaded image before it is stored:
// pixel height, pixel width, then byte size, each with its own message.
// Only the image header is read; pixels are never decoded.
func ValidateImage(r io.Reader, size int64) Errors {
	errs := Errors{}
	cfg, _, err := image.DecodeConfig(r)
	if err != nil {
		errs["image"] = "Upload a valid image."
		return errs
	}
	if cfg.Height > MaxImageHeight {
		errs["image"] = "Your image exceeds the height limit of 4096px."
		return errs
	}
	if cfg.Width > MaxImageWidth {
		errs["image"] = "Your image exceeds the width limit of 4096px."
		return errs
	}
	if size > MaxImageBytes {
		errs["image"] = "Your image is too large. Max size is 2MB."
		return errs
	}
	return errs
}
