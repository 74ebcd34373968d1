package generate

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"

	xdraw "golang.org/x/image/draw"

	"iconforge/internal/domain/catalog"
	"iconforge/internal/domain/source"
)

// EncodeOptions tunes output encoding. Quality runs 1-100 and selects the
// PNG compression effort; zero means encoder defaults.
type EncodeOptions struct {
	Quality int
}

func compressionLevel(opts *EncodeOptions) png.CompressionLevel {
	if opts == nil || opts.Quality <= 0 {
		return png.DefaultCompression
	}
	switch {
	case opts.Quality <= 33:
		return png.BestSpeed
	case opts.Quality <= 66:
		return png.DefaultCompression
	default:
		return png.BestCompression
	}
}

// Generate resizes the resolved source to exactly the spec dimensions and
// writes the encoded result to destPath, replacing any existing file. The
// encoded image is buffered in full before the single write, so a failure
// never leaves a truncated file behind. Mismatched aspect ratios distort;
// no cropping or padding is applied.
func Generate(spec catalog.ImageSpec, resolved *source.ResolvedSource, destPath string, opts *EncodeOptions) error {
	if resolved == nil || resolved.Image == nil {
		return fmt.Errorf("generate %s: no resolved source", spec.Name)
	}

	dst := image.NewRGBA(image.Rect(0, 0, spec.Width, spec.Height))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), resolved.Image, resolved.Image.Bounds(), xdraw.Src, nil)

	var buf bytes.Buffer
	encoder := png.Encoder{CompressionLevel: compressionLevel(opts)}
	if err := encoder.Encode(&buf, dst); err != nil {
		return fmt.Errorf("encode %s: %w", spec.Name, err)
	}

	if err := os.WriteFile(destPath, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", destPath, err)
	}
	return nil
}
