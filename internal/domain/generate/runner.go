package generate

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"

	"iconforge/internal/domain/catalog"
	"iconforge/internal/domain/source"
	"iconforge/internal/platform/logging"
)

// TypeRequest asks the runner to generate one resource type from an
// ordered candidate source list. Encode overrides the run-wide encode
// options for this type when set.
type TypeRequest struct {
	Type    catalog.ResourceType
	Sources []string
	Encode  *EncodeOptions
}

// GeneratedImage records one written output with its catalog metadata.
type GeneratedImage struct {
	Platform   catalog.Platform     `json:"platform"`
	Type       catalog.ResourceType `json:"type"`
	OutputPath string               `json:"output_path"`
	SourcePath string               `json:"source_path"`
	Spec       catalog.ImageSpec    `json:"spec"`
}

// Runner generates every catalog image of the requested resource types for
// one platform. Safe for concurrent use across platforms; it holds no
// per-run state.
type Runner struct {
	resolver    *source.Resolver
	logger      *logging.Logger
	diag        io.Writer
	concurrency int
}

// NewRunner constructs a runner. The logger may be nil.
func NewRunner(resolver *source.Resolver, logger *logging.Logger) *Runner {
	return &Runner{
		resolver:    resolver,
		logger:      logger,
		concurrency: runtime.NumCPU(),
	}
}

// WithDiagnostics routes per-candidate validation warnings to w.
func (r *Runner) WithDiagnostics(w io.Writer) *Runner {
	r.diag = w
	return r
}

// WithConcurrency caps how many images of one resource type are generated
// at once.
func (r *Runner) WithConcurrency(n int) *Runner {
	if n > 0 {
		r.concurrency = n
	}
	return r
}

// Run processes requests in order. For each resource type it resolves the
// source once, then generates every catalog entry from that single decoded
// source. Outputs land in <outputRoot>/<platform>/<type>/<name>. The
// returned list preserves request order, then catalog order within a type.
// Any resolution or generation failure aborts the run and is reported in
// full; nothing is skipped silently.
func (r *Runner) Run(ctx context.Context, platform catalog.Platform, outputRoot string, requests []TypeRequest, shared *EncodeOptions) ([]GeneratedImage, error) {
	var results []GeneratedImage

	for _, request := range requests {
		cfg, ok := catalog.Lookup(platform, request.Type)
		if !ok {
			return nil, fmt.Errorf("no catalog entry for %s/%s", platform, request.Type)
		}

		outputDir := filepath.Join(outputRoot, catalog.SubPath(platform, request.Type))
		if err := os.MkdirAll(outputDir, 0o755); err != nil {
			return nil, fmt.Errorf("create output directory %s: %w", outputDir, err)
		}

		resolved, err := r.resolver.Resolve(ctx, request.Type, request.Sources, r.diag)
		if err != nil {
			return nil, fmt.Errorf("resolve %s source for %s: %w", request.Type, platform, err)
		}

		opts := request.Encode
		if opts == nil {
			opts = shared
		}

		generated, err := r.generateType(ctx, platform, request.Type, cfg, resolved, outputDir, opts)
		if err != nil {
			return nil, err
		}
		results = append(results, generated...)

		if r.logger != nil {
			r.logger.InfoTag("generate", "%s/%s: %d image(s) from %s",
				platform, request.Type, len(generated), resolved.Path)
		}
	}

	return results, nil
}

// generateType fans the catalog entries out over a bounded errgroup. Each
// spec writes to a distinct path and the resolved source is read-only, so
// the only ordering requirement is the result slice, which is indexed by
// catalog position.
func (r *Runner) generateType(ctx context.Context, platform catalog.Platform, resourceType catalog.ResourceType, cfg catalog.TypeConfig, resolved *source.ResolvedSource, outputDir string, opts *EncodeOptions) ([]GeneratedImage, error) {
	results := make([]GeneratedImage, len(cfg.Images))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(r.concurrency)

	for i, spec := range cfg.Images {
		i, spec := i, spec
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			destPath := filepath.Join(outputDir, spec.Name)
			if err := Generate(spec, resolved, destPath, opts); err != nil {
				return fmt.Errorf("generate %s/%s: %w", platform, resourceType, err)
			}

			results[i] = GeneratedImage{
				Platform:   platform,
				Type:       resourceType,
				OutputPath: destPath,
				SourcePath: resolved.Path,
				Spec:       spec,
			}
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
