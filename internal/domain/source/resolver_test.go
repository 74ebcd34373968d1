package source

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"iconforge/internal/domain/catalog"
)

func writePNG(t *testing.T, dir, name string, width, height int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 0x80, A: 0xFF})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
	return path
}

func writeJPEG(t *testing.T, dir, name string, width, height int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, nil))
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
	return path
}

func TestResolveFirstPassingCandidateWins(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	badFormat := writeJPEG(t, dir, "a.jpg", 2048, 2048)
	good := writePNG(t, dir, "b.png", 1024, 1024)
	// Never created: if the resolver opened it, resolution would fail.
	neverOpened := filepath.Join(dir, "c.png")

	var diag bytes.Buffer
	resolved, err := NewResolver(nil).Resolve(ctx, catalog.TypeIcon,
		[]string{badFormat, good, neverOpened}, &diag)
	require.NoError(t, err)
	require.Equal(t, good, resolved.Path)
	require.Equal(t, "png", resolved.Format)
	require.Equal(t, 1024, resolved.Width)
	require.Equal(t, 1024, resolved.Height)
	require.NotNil(t, resolved.Image)

	// Only the jpeg rejection reaches the sink.
	lines := strings.Split(strings.TrimSpace(diag.String()), "\n")
	require.Len(t, lines, 1)
	require.Contains(t, lines[0], "a.jpg")
}

func TestResolveAllCandidatesFail(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	tooSmall := writePNG(t, dir, "small.png", 512, 512)
	wrongFormat := writeJPEG(t, dir, "photo.jpg", 2048, 2048)
	missing := filepath.Join(dir, "missing.png")

	_, err := NewResolver(nil).Resolve(ctx, catalog.TypeIcon,
		[]string{tooSmall, wrongFormat, missing}, nil)
	require.Error(t, err)

	var noViable *NoViableSourceError
	require.ErrorAs(t, err, &noViable)
	require.Equal(t, catalog.TypeIcon, noViable.ResourceType)
	require.Len(t, noViable.Failures, 3)

	// Candidate order is preserved in the aggregate.
	require.Equal(t, tooSmall, noViable.Failures[0].Path)
	require.Equal(t, wrongFormat, noViable.Failures[1].Path)
	require.Equal(t, missing, noViable.Failures[2].Path)

	sizeFailure, ok := noViable.Failures[0].Validation()
	require.True(t, ok)
	require.Equal(t, FailureBadSize, sizeFailure.Code)

	formatFailure, ok := noViable.Failures[1].Validation()
	require.True(t, ok)
	require.Equal(t, FailureBadFormat, formatFailure.Code)

	// The unreadable file is a generic error, not a validation failure.
	_, ok = noViable.Failures[2].Validation()
	require.False(t, ok)
	require.True(t, errors.Is(noViable.Failures[2].Err, os.ErrNotExist))
}

func TestResolveEmptyCandidateList(t *testing.T) {
	_, err := NewResolver(nil).Resolve(context.Background(), catalog.TypeSplash, nil, nil)

	var noViable *NoViableSourceError
	require.ErrorAs(t, err, &noViable)
	require.Empty(t, noViable.Failures)
	require.Contains(t, noViable.Error(), "splash")
}

func TestResolveIsRestartable(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()
	good := writePNG(t, dir, "icon.png", 1024, 1024)

	resolver := NewResolver(nil)
	first, err := resolver.Resolve(ctx, catalog.TypeIcon, []string{good}, nil)
	require.NoError(t, err)
	second, err := resolver.Resolve(ctx, catalog.TypeIcon, []string{good}, nil)
	require.NoError(t, err)

	require.Equal(t, first.Path, second.Path)
	require.Equal(t, first.Width, second.Width)
}

func TestResolveHonoursCancellation(t *testing.T) {
	dir := t.TempDir()
	good := writePNG(t, dir, "icon.png", 1024, 1024)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewResolver(nil).Resolve(ctx, catalog.TypeIcon, []string{good}, nil)
	require.ErrorIs(t, err, context.Canceled)
}
