package source

import (
	"fmt"
	"image"
	"strings"

	"iconforge/internal/domain/catalog"
)

// Metadata is the decoded header of a candidate image, read without
// loading pixel data.
type Metadata struct {
	Format string
	Width  int
	Height int
}

// FailureCode classifies why a candidate was rejected.
type FailureCode string

const (
	FailureBadFormat FailureCode = "bad_format"
	FailureBadSize   FailureCode = "bad_size"
)

// ValidationFailure records one rejected candidate with the observed and
// required values, so callers can render an actionable message.
type ValidationFailure struct {
	SourcePath   string
	ResourceType catalog.ResourceType
	Code         FailureCode

	ObservedFormat string
	ObservedWidth  int
	ObservedHeight int

	RequiredFormat    string
	RequiredMinWidth  int
	RequiredMinHeight int
}

func (f *ValidationFailure) Error() string {
	switch f.Code {
	case FailureBadFormat:
		return fmt.Sprintf("%s: %s source must be %s, got %s",
			f.SourcePath, f.ResourceType, f.RequiredFormat, f.ObservedFormat)
	case FailureBadSize:
		return fmt.Sprintf("%s: %s source must be at least %dx%d, got %dx%d",
			f.SourcePath, f.ResourceType,
			f.RequiredMinWidth, f.RequiredMinHeight,
			f.ObservedWidth, f.ObservedHeight)
	}
	return fmt.Sprintf("%s: %s source rejected (%s)", f.SourcePath, f.ResourceType, f.Code)
}

// CandidateFailure pairs a candidate path with the error that removed it
// from consideration. Err is either a *ValidationFailure or a generic
// read/decode error.
type CandidateFailure struct {
	Path string
	Err  error
}

// Validation returns the structured failure when the candidate failed
// validation rather than I/O or decoding.
func (c CandidateFailure) Validation() (*ValidationFailure, bool) {
	failure, ok := c.Err.(*ValidationFailure)
	return failure, ok
}

// NoViableSourceError is returned when every candidate for a resource type
// was rejected. Failures preserves candidate order.
type NoViableSourceError struct {
	ResourceType catalog.ResourceType
	Failures     []CandidateFailure
}

func (e *NoViableSourceError) Error() string {
	if len(e.Failures) == 0 {
		return fmt.Sprintf("no source candidates supplied for %s", e.ResourceType)
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "no viable %s source among %d candidate(s):", e.ResourceType, len(e.Failures))
	for _, failure := range e.Failures {
		fmt.Fprintf(&sb, "\n  %s: %v", failure.Path, failure.Err)
	}
	return sb.String()
}

// ResolvedSource is a validated, fully decoded source image. It is decoded
// once and reused read-only for every output of its resource type.
type ResolvedSource struct {
	Path   string
	Image  image.Image
	Format string
	Width  int
	Height int
}
