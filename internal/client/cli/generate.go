package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/qrkeeper/qrkeeper/internal/qr"
)

func (a *App) Generate(ctx context.Context) error {
	content, err := GetSimpleText(a.reader, "Enter text or URL to encode", os.Stdout)
	if err != nil {
		return err
	}

	widthText, err := GetSimpleText(a.reader, fmt.Sprintf("Image width in pixels (empty for %d)", qr.DefaultWidth), os.Stdout)
	if err != nil {
		return err
	}
	width := 0
	if widthText != "" {
		width, err = strconv.Atoi(widthText)
		if err != nil {
			printlnFn("Width must be a number")
			return err
		}
	}

	logoPath, err := GetSimpleText(a.reader, "Path to a logo image (empty for none)", os.Stdout)
	if err != nil {
		return err
	}
	logo := ""
	if logoPath != "" {
		logo, err = readLogoFile(logoPath)
		if err != nil {
			printlnFn(fmt.Sprintf("Cannot read logo: %v", err))
			return err
		}
	}

	image, err := qr.Generate(qr.Options{Content: content, Width: width, Logo: logo})
	if err != nil {
		printlnFn(fmt.Sprintf("Failed to generate QR: %v", err))
		return err
	}

	rec, err := a.store.Create(ctx, content, image, logo)
	if err != nil {
		printlnFn(fmt.Sprintf("Failed to save QR: %v", err))
		return err
	}

	printlnFn(fmt.Sprintf("Saved QR %s", rec.ID))
	return nil
}

// readLogoFile loads a PNG or JPEG file and wraps it in a data URL.
func readLogoFile(path string) (string, error) {
	var mimeType string
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		mimeType = "image/png"
	case ".jpg", ".jpeg":
		mimeType = "image/jpeg"
	default:
		return "", fmt.Errorf("unsupported logo file type: %s", filepath.Ext(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return qr.EncodeDataURL(mimeType, data), nil
}
