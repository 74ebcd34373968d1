package source

import (
	"strings"

	"iconforge/internal/domain/catalog"
)

// Validate checks a candidate's decoded metadata against the requirement
// for a resource type. It returns nil on success. Oversized sources are
// valid; they are downscaled during generation.
func Validate(resourceType catalog.ResourceType, sourcePath string, meta Metadata) *ValidationFailure {
	req, ok := catalog.RequirementFor(resourceType)
	if !ok {
		return &ValidationFailure{
			SourcePath:     sourcePath,
			ResourceType:   resourceType,
			Code:           FailureBadFormat,
			ObservedFormat: meta.Format,
		}
	}

	if !strings.EqualFold(meta.Format, req.Format) {
		return &ValidationFailure{
			SourcePath:     sourcePath,
			ResourceType:   resourceType,
			Code:           FailureBadFormat,
			ObservedFormat: meta.Format,
			RequiredFormat: req.Format,
		}
	}

	if meta.Width < req.MinWidth || meta.Height < req.MinHeight {
		return &ValidationFailure{
			SourcePath:        sourcePath,
			ResourceType:      resourceType,
			Code:              FailureBadSize,
			ObservedFormat:    meta.Format,
			ObservedWidth:     meta.Width,
			ObservedHeight:    meta.Height,
			RequiredFormat:    req.Format,
			RequiredMinWidth:  req.MinWidth,
			RequiredMinHeight: req.MinHeight,
		}
	}

	return nil
}
