// Package qr renders QR codes with an optional centered logo overlay and
// converts the result to a PNG data URL suitable for storage.
package qr

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"strings"

	qrcode "github.com/skip2/go-qrcode"
	xdraw "golang.org/x/image/draw"
)

var (
	// ErrEmptyContent is returned when there is nothing to encode.
	ErrEmptyContent = errors.New("content is empty")

	// ErrUnsupportedFormat is returned for non-raster output requests.
	// Vector output is not implemented; rejecting beats relabeling a PNG.
	ErrUnsupportedFormat = errors.New("unsupported output format")
)

const (
	// DefaultWidth is the rendered image width in pixels.
	DefaultWidth = 1000

	// logoScale is the logo edge length as a fraction of the code area.
	logoScale = 0.2

	// logoCornerRadius is the corner rounding of the logo overlay, in pixels.
	logoCornerRadius = 8
)

// Options configures a single render.
type Options struct {
	// Content is the text or URL to encode. Required.
	Content string

	// Width is the output width in pixels; DefaultWidth when <= 0.
	Width int

	// Logo is an optional data-URL-encoded raster image drawn over the
	// center of the code.
	Logo string

	// Format selects the output encoding: "png" (the default) or "jpeg".
	// Anything else, vector formats included, is rejected.
	Format string
}

// Generate renders a QR code for opts and returns it as a data URL in the
// requested raster format.
func Generate(opts Options) (string, error) {
	if strings.TrimSpace(opts.Content) == "" {
		return "", ErrEmptyContent
	}
	switch opts.Format {
	case "", "png", "jpeg", "jpg":
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, opts.Format)
	}

	width := opts.Width
	if width <= 0 {
		width = DefaultWidth
	}

	code, err := qrcode.New(opts.Content, qrcode.Medium)
	if err != nil {
		return "", fmt.Errorf("render qr: %w", err)
	}

	img := code.Image(width)

	if opts.Logo != "" {
		logo, err := DecodeImage(opts.Logo)
		if err != nil {
			return "", fmt.Errorf("decode logo: %w", err)
		}
		img = overlayLogo(img, logo)
	}

	if opts.Format == "jpeg" || opts.Format == "jpg" {
		return EncodeJPEG(img)
	}
	return EncodePNG(img)
}

// overlayLogo scales the logo to logoScale of the code edge and draws it
// centered with rounded corners.
func overlayLogo(code image.Image, logo image.Image) image.Image {
	bounds := code.Bounds()
	out := image.NewRGBA(bounds)
	draw.Draw(out, bounds, code, bounds.Min, draw.Src)

	size := int(logoScale * float64(bounds.Dx()))
	if size < 1 {
		size = 1
	}

	scaled := image.NewRGBA(image.Rect(0, 0, size, size))
	xdraw.CatmullRom.Scale(scaled, scaled.Bounds(), logo, logo.Bounds(), xdraw.Over, nil)

	offset := image.Pt(
		bounds.Min.X+(bounds.Dx()-size)/2,
		bounds.Min.Y+(bounds.Dy()-size)/2,
	)
	target := image.Rectangle{Min: offset, Max: offset.Add(image.Pt(size, size))}

	mask := roundedMask(size, logoCornerRadius)
	draw.DrawMask(out, target, scaled, image.Point{}, mask, image.Point{}, draw.Over)

	return out
}

// roundedMask builds a size×size alpha mask that is opaque except for the
// four corners, which are clipped by quarter circles of the given radius.
func roundedMask(size, radius int) *image.Alpha {
	if radius > size/2 {
		radius = size / 2
	}
	mask := image.NewAlpha(image.Rect(0, 0, size, size))
	r2 := radius * radius
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if insideRounded(x, y, size, radius, r2) {
				mask.SetAlpha(x, y, color.Alpha{A: 0xff})
			}
		}
	}
	return mask
}

func insideRounded(x, y, size, radius, r2 int) bool {
	// Distance to the nearest corner circle center, when in a corner region.
	cx, cy := -1, -1
	switch {
	case x < radius && y < radius:
		cx, cy = radius-1, radius-1
	case x >= size-radius && y < radius:
		cx, cy = size-radius, radius-1
	case x < radius && y >= size-radius:
		cx, cy = radius-1, size-radius
	case x >= size-radius && y >= size-radius:
		cx, cy = size-radius, size-radius
	default:
		return true
	}
	dx, dy := x-cx, y-cy
	return dx*dx+dy*dy <= r2
}
