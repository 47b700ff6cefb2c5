package cli

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qrkeeper/qrkeeper/internal/client/records"
	"github.com/qrkeeper/qrkeeper/internal/client/storage"
	"github.com/qrkeeper/qrkeeper/internal/qr"
)

func newExportApp(t *testing.T, script string) (*App, *records.LocalStore) {
	t.Helper()
	local := records.NewLocalStore(storage.NewStore(filepath.Join(t.TempDir(), "qr-data-v1.json")))
	app := &App{
		local:  local,
		store:  local,
		reader: bufio.NewReader(strings.NewReader(script)),
	}
	return app, local
}

func captureOutput(t *testing.T) *[]string {
	t.Helper()
	var out []string
	old := printlnFn
	printlnFn = func(args ...any) (int, error) {
		for _, arg := range args {
			out = append(out, arg.(string))
		}
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = old })
	return &out
}

func TestExport_WritesLowQualityPNG(t *testing.T) {
	ctx := context.Background()
	dest := filepath.Join(t.TempDir(), "out.png")

	app, local := newExportApp(t, "")
	rec, err := local.Create(ctx, "https://example.com", "img", "")
	require.NoError(t, err)

	app.reader = bufio.NewReader(strings.NewReader(
		fmt.Sprintf("%s\nlow\npng\n%s\n", rec.ID, dest)))
	out := captureOutput(t)

	require.NoError(t, app.Export(ctx))

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	img, format, err := image.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, "png", format)
	assert.Equal(t, exportWidthLow, img.Bounds().Dx())
	assert.Contains(t, *out, "Saved "+dest)
}

func TestExport_DefaultsToHighQuality(t *testing.T) {
	ctx := context.Background()
	dest := filepath.Join(t.TempDir(), "out.jpeg")

	app, local := newExportApp(t, "")
	rec, err := local.Create(ctx, "hello", "img", "")
	require.NoError(t, err)

	app.reader = bufio.NewReader(strings.NewReader(
		fmt.Sprintf("%s\n\njpeg\n%s\n", rec.ID, dest)))
	captureOutput(t)

	require.NoError(t, app.Export(ctx))

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	img, format, err := image.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
	assert.Equal(t, exportWidthHigh, img.Bounds().Dx())
}

func TestExport_RejectsVectorFormat(t *testing.T) {
	ctx := context.Background()

	app, local := newExportApp(t, "")
	rec, err := local.Create(ctx, "hello", "img", "")
	require.NoError(t, err)

	app.reader = bufio.NewReader(strings.NewReader(rec.ID + "\nlow\nsvg\n"))
	captureOutput(t)

	err = app.Export(ctx)
	assert.ErrorIs(t, err, qr.ErrUnsupportedFormat)
}

func TestExport_UnknownID(t *testing.T) {
	app, _ := newExportApp(t, "nope\n")
	out := captureOutput(t)

	err := app.Export(context.Background())
	require.Error(t, err)

	found := false
	for _, line := range *out {
		if strings.Contains(line, "No QR with id nope") {
			found = true
		}
	}
	assert.True(t, found)
}

func TestExport_BadQuality(t *testing.T) {
	ctx := context.Background()

	app, local := newExportApp(t, "")
	rec, err := local.Create(ctx, "hello", "img", "")
	require.NoError(t, err)

	app.reader = bufio.NewReader(strings.NewReader(rec.ID + "\nmedium\n"))
	captureOutput(t)

	assert.Error(t, app.Export(ctx))
}

func TestExportFilename(t *testing.T) {
	assert.Equal(t, "qr-123.png", exportFilename("123", "png"))
	assert.Equal(t, "qr-123.jpeg", exportFilename("123", "jpg"))
}
