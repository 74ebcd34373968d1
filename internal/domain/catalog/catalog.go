// Package catalog holds the static tables describing every icon and
// splash-screen image the generator produces per platform, together with
// the minimum source requirements derived from those tables.
package catalog

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Platform identifies a target mobile platform.
type Platform string

const (
	PlatformAndroid Platform = "android"
	PlatformIOS     Platform = "ios"
)

// ResourceType identifies a class of generated images.
type ResourceType string

const (
	TypeIcon   ResourceType = "icon"
	TypeSplash ResourceType = "splash"
)

// Density tags Android screen-density variants.
type Density string

const (
	DensityLDPI    Density = "ldpi"
	DensityMDPI    Density = "mdpi"
	DensityHDPI    Density = "hdpi"
	DensityXHDPI   Density = "xhdpi"
	DensityXXHDPI  Density = "xxhdpi"
	DensityXXXHDPI Density = "xxxhdpi"
)

// Orientation tags splash-screen variants that differ by device rotation.
type Orientation string

const (
	OrientationPortrait  Orientation = "port"
	OrientationLandscape Orientation = "land"
)

// ImageSpec describes one required output image. Name is unique within its
// (platform, resource type) scope.
type ImageSpec struct {
	Name        string
	Width       int
	Height      int
	Density     Density
	Orientation Orientation
}

// TypeConfig is the catalog entry for one (platform, resource type) pair.
// NodeName and NodeAttrs drive manifest emission and are consumed as-is.
type TypeConfig struct {
	Images    []ImageSpec
	NodeName  string
	NodeAttrs []string
}

// Requirement is the minimum a source image must satisfy before it may be
// used for a resource type. The minimum dimensions equal the largest
// output the type produces on any platform.
type Requirement struct {
	Format    string
	MinWidth  int
	MinHeight int
}

// Lookup returns the catalog entry for a platform and resource type.
func Lookup(platform Platform, resourceType ResourceType) (TypeConfig, bool) {
	types, ok := resources[platform]
	if !ok {
		return TypeConfig{}, false
	}
	cfg, ok := types[resourceType]
	return cfg, ok
}

// RequirementFor returns the source validation requirement for a resource
// type.
func RequirementFor(resourceType ResourceType) (Requirement, bool) {
	req, ok := requirements[resourceType]
	return req, ok
}

// SubPath returns the output directory for a platform and resource type,
// relative to the output root.
func SubPath(platform Platform, resourceType ResourceType) string {
	return filepath.Join(string(platform), string(resourceType))
}

// Platforms lists all supported platforms in stable order.
func Platforms() []Platform {
	return []Platform{PlatformAndroid, PlatformIOS}
}

// Types lists all supported resource types in stable order.
func Types() []ResourceType {
	return []ResourceType{TypeIcon, TypeSplash}
}

// ParsePlatform converts a user-supplied platform name.
func ParsePlatform(s string) (Platform, error) {
	switch Platform(strings.ToLower(s)) {
	case PlatformAndroid:
		return PlatformAndroid, nil
	case PlatformIOS:
		return PlatformIOS, nil
	}
	return "", fmt.Errorf("unknown platform %q (android, ios)", s)
}

// ParseResourceType converts a user-supplied resource type name.
func ParseResourceType(s string) (ResourceType, error) {
	switch ResourceType(strings.ToLower(s)) {
	case TypeIcon:
		return TypeIcon, nil
	case TypeSplash:
		return TypeSplash, nil
	}
	return "", fmt.Errorf("unknown resource type %q (icon, splash)", s)
}

// MaxDimensions scans every catalog entry of a resource type across all
// platforms and returns the largest width and height any output needs.
func MaxDimensions(resourceType ResourceType) (maxWidth, maxHeight int) {
	for _, types := range resources {
		cfg, ok := types[resourceType]
		if !ok {
			continue
		}
		for _, spec := range cfg.Images {
			if spec.Width > maxWidth {
				maxWidth = spec.Width
			}
			if spec.Height > maxHeight {
				maxHeight = spec.Height
			}
		}
	}
	return maxWidth, maxHeight
}
