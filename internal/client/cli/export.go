package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/qrkeeper/qrkeeper/internal/client/models"
	"github.com/qrkeeper/qrkeeper/internal/qr"
)

// Download re-render widths. "high" is for print, "low" for screens.
const (
	exportWidthHigh = 2000
	exportWidthLow  = 500
)

// Export re-renders a stored record at a chosen quality and format and
// writes the result to a file. The image is rendered fresh from the
// record's content and logo rather than scaling the stored preview.
func (a *App) Export(ctx context.Context) error {
	id, err := GetSimpleText(a.reader, "Enter the id of the QR to export", os.Stdout)
	if err != nil {
		return err
	}

	list, err := a.store.List(ctx)
	if err != nil {
		printlnFn(fmt.Sprintf("Failed to list QRs: %v", err))
		return err
	}
	rec, ok := findRecord(list, id)
	if !ok {
		printlnFn(fmt.Sprintf("No QR with id %s", id))
		return fmt.Errorf("record %s not found", id)
	}

	quality, err := GetSimpleText(a.reader, "Quality: high (2000px) or low (500px), empty for high", os.Stdout)
	if err != nil {
		return err
	}
	width, err := exportWidth(quality)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	format, err := GetSimpleText(a.reader, "Format: png or jpeg, empty for png", os.Stdout)
	if err != nil {
		return err
	}
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = "png"
	}

	image, err := qr.Generate(qr.Options{
		Content: rec.Content,
		Width:   width,
		Logo:    rec.Logo,
		Format:  format,
	})
	if err != nil {
		printlnFn(fmt.Sprintf("Failed to render QR: %v", err))
		return err
	}

	path, err := GetSimpleText(a.reader, fmt.Sprintf("Output file (empty for %s)", exportFilename(id, format)), os.Stdout)
	if err != nil {
		return err
	}
	if path == "" {
		path = exportFilename(id, format)
	}

	data, err := qr.DecodePayload(image)
	if err != nil {
		printlnFn(fmt.Sprintf("Failed to render QR: %v", err))
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		printlnFn(fmt.Sprintf("Failed to write file: %v", err))
		return err
	}

	printlnFn(fmt.Sprintf("Saved %s", path))
	return nil
}

func findRecord(list []models.Record, id string) (models.Record, bool) {
	for _, rec := range list {
		if rec.ID == id {
			return rec, true
		}
	}
	return models.Record{}, false
}

func exportWidth(quality string) (int, error) {
	switch strings.ToLower(strings.TrimSpace(quality)) {
	case "", "high":
		return exportWidthHigh, nil
	case "low":
		return exportWidthLow, nil
	default:
		return 0, fmt.Errorf("quality must be high or low, got %q", quality)
	}
}

func exportFilename(id, format string) string {
	ext := format
	if ext == "jpg" {
		ext = "jpeg"
	}
	return fmt.Sprintf("qr-%s.%s", id, ext)
}
