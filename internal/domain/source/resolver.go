package source

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"io"
	"os"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"

	"iconforge/internal/domain/catalog"
	"iconforge/internal/platform/logging"
)

// Resolver picks the first usable source image from an ordered candidate
// list. It holds no state across calls.
type Resolver struct {
	logger *logging.Logger
}

// NewResolver constructs a resolver. The logger may be nil.
func NewResolver(logger *logging.Logger) *Resolver {
	return &Resolver{logger: logger}
}

// Resolve walks candidates in order and returns the first one that passes
// validation for the resource type, fully decoded. Candidates after the
// winner are never opened. When every candidate fails, the returned error
// is a *NoViableSourceError carrying each rejection in candidate order.
//
// When diag is non-nil, every per-candidate failure is also written to it
// as one warning line, whether or not resolution ultimately succeeds.
func (r *Resolver) Resolve(ctx context.Context, resourceType catalog.ResourceType, candidates []string, diag io.Writer) (*ResolvedSource, error) {
	failures := make([]CandidateFailure, 0, len(candidates))

	for _, candidate := range candidates {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		resolved, err := r.tryCandidate(resourceType, candidate)
		if err == nil {
			r.logDebug("using %s source %s (%dx%d)",
				resourceType, candidate, resolved.Width, resolved.Height)
			return resolved, nil
		}

		failures = append(failures, CandidateFailure{Path: candidate, Err: err})
		if diag != nil {
			fmt.Fprintf(diag, "warning: skipping %s: %v\n", candidate, err)
		}
		r.logWarn("skipping %s candidate %s: %v", resourceType, candidate, err)
	}

	return nil, &NoViableSourceError{ResourceType: resourceType, Failures: failures}
}

func (r *Resolver) tryCandidate(resourceType catalog.ResourceType, path string) (*ResolvedSource, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read source: %w", err)
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decode image header: %w", err)
	}

	meta := Metadata{Format: format, Width: cfg.Width, Height: cfg.Height}
	if failure := Validate(resourceType, path, meta); failure != nil {
		return nil, failure
	}

	// Full pixel decode only for the winning candidate.
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	return &ResolvedSource{
		Path:   path,
		Image:  img,
		Format: format,
		Width:  cfg.Width,
		Height: cfg.Height,
	}, nil
}

func (r *Resolver) logWarn(msg string, args ...interface{}) {
	if r.logger != nil {
		r.logger.WarnTag("resolve", msg, args...)
	}
}

func (r *Resolver) logDebug(msg string, args ...interface{}) {
	if r.logger != nil {
		r.logger.DebugTag("resolve", msg, args...)
	}
}
