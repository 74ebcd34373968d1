// Package bootstrap wires configuration, logging and the generation
// pipeline into the iconforge CLI run lifecycle.
package bootstrap

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"iconforge/internal/domain/catalog"
	"iconforge/internal/domain/generate"
	"iconforge/internal/domain/manifest"
	"iconforge/internal/domain/source"
	platformconfig "iconforge/internal/platform/config"
	platformerrors "iconforge/internal/platform/errors"
	platformlogging "iconforge/internal/platform/logging"
)

// stringList collects repeatable flag values in the order given.
type stringList []string

func (s *stringList) String() string { return strings.Join(*s, ",") }

func (s *stringList) Set(value string) error {
	*s = append(*s, value)
	return nil
}

type options struct {
	configPath   string
	icons        stringList
	splashes     stringList
	platforms    stringList
	outputDir    string
	quality      int
	report       string
	manifestXML  string
	contentsJSON string
}

func parseFlags(args []string) (*options, error) {
	opts := &options{}
	fs := flag.NewFlagSet("iconforge", flag.ContinueOnError)
	fs.StringVar(&opts.configPath, "config", "", "config file path (default: .iconforge.yaml)")
	fs.Var(&opts.icons, "icon", "icon source candidate, repeatable, tried in order")
	fs.Var(&opts.splashes, "splash", "splash source candidate, repeatable, tried in order")
	fs.Var(&opts.platforms, "platform", "target platform (android, ios), repeatable")
	fs.StringVar(&opts.outputDir, "out", "", "output root directory")
	fs.IntVar(&opts.quality, "quality", 0, "encode quality 1-100 (0 = encoder default)")
	fs.StringVar(&opts.report, "report", "", "write a JSON run report to this path")
	fs.StringVar(&opts.manifestXML, "manifest", "", "write a resource XML manifest to this path")
	fs.StringVar(&opts.contentsJSON, "contents-json", "", "write an iOS Contents.json to this path")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return opts, nil
}

// Report is the machine-readable summary of one run.
type Report struct {
	RunID      string                    `json:"run_id"`
	StartedAt  time.Time                 `json:"started_at"`
	DurationMS int64                     `json:"duration_ms"`
	Platforms  []string                  `json:"platforms"`
	Images     []generate.GeneratedImage `json:"images"`
	Errors     []string                  `json:"errors,omitempty"`
}

// Run executes the whole CLI lifecycle: flags, config, logging, per-platform
// generation, manifests and report.
func Run(ctx context.Context, args []string) error {
	opts, err := parseFlags(args)
	if err != nil {
		return platformerrors.Wrap(platformerrors.KindBootstrap, "parse flags", "invalid arguments", err)
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	loader := platformconfig.NewLoader()
	if opts.configPath != "" {
		loader = loader.WithPath(opts.configPath)
	}
	result, err := loader.Load()
	if err != nil {
		return platformerrors.Wrap(platformerrors.KindConfig, "load", "failed to load configuration", err)
	}
	cfg := mergeOptions(result.Config, opts)
	if err := platformconfig.Validate(cfg); err != nil {
		return platformerrors.Wrap(platformerrors.KindConfig, "validate", "invalid configuration", err)
	}

	logger, err := platformlogging.New(platformlogging.Config{
		Level: cfg.Log.Level,
		Dir:   cfg.Log.Dir,
		File:  cfg.Log.File,
	})
	if err != nil {
		return platformerrors.Wrap(platformerrors.KindBootstrap, "logging", "failed to initialise logger", err)
	}
	defer logger.Close()

	if result.Path != "" {
		logger.InfoTag("config", "loaded %s", result.Path)
	}

	platforms, err := resolvePlatforms(cfg.Platforms)
	if err != nil {
		return platformerrors.Wrap(platformerrors.KindConfig, "platforms", "invalid platform list", err)
	}

	requests := buildRequests(cfg)
	if len(requests) == 0 {
		return platformerrors.New(platformerrors.KindConfig, "sources",
			"no icon or splash sources configured; pass --icon/--splash or fill sources in the config file")
	}

	var shared *generate.EncodeOptions
	if cfg.Output.Quality > 0 {
		shared = &generate.EncodeOptions{Quality: cfg.Output.Quality}
	}

	runID := uuid.New().String()
	startedAt := time.Now()
	logger.InfoTag("bootstrap", "run %s: %d platform(s), %d resource type(s), output %s",
		runID, len(platforms), len(requests), cfg.Output.Dir)

	runner := generate.NewRunner(source.NewResolver(logger), logger).
		WithDiagnostics(os.Stderr).
		WithConcurrency(cfg.Output.Concurrency)

	// Platforms share no mutable state; run them concurrently but let each
	// finish independently so one failure does not abandon the sibling.
	var (
		mu         sync.Mutex
		perResults = make(map[catalog.Platform][]generate.GeneratedImage, len(platforms))
		perErrors  = make(map[catalog.Platform]error, len(platforms))
	)
	var group errgroup.Group
	for _, platform := range platforms {
		platform := platform
		group.Go(func() error {
			images, err := runner.Run(ctx, platform, cfg.Output.Dir, requests, shared)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				perErrors[platform] = err
				return nil
			}
			perResults[platform] = images
			return nil
		})
	}
	_ = group.Wait()

	report := Report{
		RunID:     runID,
		StartedAt: startedAt,
		Platforms: make([]string, 0, len(platforms)),
	}
	for _, platform := range platforms {
		report.Platforms = append(report.Platforms, string(platform))
		if err := perErrors[platform]; err != nil {
			logger.ErrorTag("generate", "%s failed: %v", platform, err)
			report.Errors = append(report.Errors, fmt.Sprintf("%s: %v", platform, err))
			continue
		}
		report.Images = append(report.Images, perResults[platform]...)
	}
	report.DurationMS = time.Since(startedAt).Milliseconds()

	if len(report.Images) > 0 {
		if err := writeManifests(cfg, logger, report.Images); err != nil {
			return err
		}
	}

	if cfg.Output.Report != "" {
		if err := writeReport(cfg.Output.Report, &report); err != nil {
			return platformerrors.Wrap(platformerrors.KindIO, "report", "failed to write run report", err)
		}
		logger.InfoTag("report", "wrote %s", cfg.Output.Report)
	}

	logger.InfoTag("bootstrap", "run %s: %d image(s) in %dms",
		runID, len(report.Images), report.DurationMS)

	if len(report.Errors) > 0 {
		return platformerrors.New(platformerrors.KindBootstrap, "run",
			fmt.Sprintf("%d platform(s) failed", len(report.Errors)))
	}
	return nil
}

// mergeOptions layers CLI flags over the loaded config.
func mergeOptions(cfg *platformconfig.Config, opts *options) *platformconfig.Config {
	// Source flags replace the configured source set wholesale, so that
	// `--icon` alone runs icon generation only.
	if len(opts.icons) > 0 || len(opts.splashes) > 0 {
		cfg.Sources = platformconfig.SourcesConfig{
			Icon:   opts.icons,
			Splash: opts.splashes,
		}
	}
	if len(opts.platforms) > 0 {
		cfg.Platforms = opts.platforms
	}
	if opts.outputDir != "" {
		cfg.Output.Dir = opts.outputDir
	}
	if opts.quality > 0 {
		cfg.Output.Quality = opts.quality
	}
	if opts.report != "" {
		cfg.Output.Report = opts.report
	}
	if opts.manifestXML != "" {
		cfg.Manifest.XML = opts.manifestXML
	}
	if opts.contentsJSON != "" {
		cfg.Manifest.ContentsJSON = opts.contentsJSON
	}
	return cfg
}

func resolvePlatforms(names []string) ([]catalog.Platform, error) {
	platforms := make([]catalog.Platform, 0, len(names))
	seen := make(map[catalog.Platform]bool, len(names))
	for _, name := range names {
		platform, err := catalog.ParsePlatform(name)
		if err != nil {
			return nil, err
		}
		if seen[platform] {
			continue
		}
		seen[platform] = true
		platforms = append(platforms, platform)
	}
	return platforms, nil
}

// buildRequests maps configured sources to type requests, icons first.
func buildRequests(cfg *platformconfig.Config) []generate.TypeRequest {
	var requests []generate.TypeRequest
	if len(cfg.Sources.Icon) > 0 {
		requests = append(requests, generate.TypeRequest{
			Type:    catalog.TypeIcon,
			Sources: cfg.Sources.Icon,
		})
	}
	if len(cfg.Sources.Splash) > 0 {
		requests = append(requests, generate.TypeRequest{
			Type:    catalog.TypeSplash,
			Sources: cfg.Sources.Splash,
		})
	}
	return requests
}

func writeManifests(cfg *platformconfig.Config, logger *platformlogging.Logger, images []generate.GeneratedImage) error {
	writer := manifest.NewWriter(cfg.Output.Dir)

	if cfg.Manifest.XML != "" {
		path := resolveOutputPath(cfg.Output.Dir, cfg.Manifest.XML)
		if err := writer.WriteXML(path, images); err != nil {
			return platformerrors.Wrap(platformerrors.KindManifest, "xml", "failed to write resource manifest", err)
		}
		logger.InfoTag("manifest", "wrote %s", path)
	}

	if cfg.Manifest.ContentsJSON != "" {
		path := resolveOutputPath(cfg.Output.Dir, cfg.Manifest.ContentsJSON)
		if err := writer.WriteContentsJSON(path, images); err != nil {
			return platformerrors.Wrap(platformerrors.KindManifest, "contents-json", "failed to write Contents.json", err)
		}
		logger.InfoTag("manifest", "wrote %s", path)
	}

	return nil
}

// resolveOutputPath keeps relative manifest/report paths inside the output
// directory while honouring absolute ones.
func resolveOutputPath(outputDir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(outputDir, path)
}

func writeReport(path string, report *Report) error {
	encoded, err := sonic.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, append(encoded, '\n'), 0o644)
}
