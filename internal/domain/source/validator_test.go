package source

import (
	"strings"
	"testing"

	"iconforge/internal/domain/catalog"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name         string
		resourceType catalog.ResourceType
		meta         Metadata
		wantCode     FailureCode
	}{
		{
			name:         "icon exact minimum passes",
			resourceType: catalog.TypeIcon,
			meta:         Metadata{Format: "png", Width: 1024, Height: 1024},
		},
		{
			name:         "oversized source passes",
			resourceType: catalog.TypeIcon,
			meta:         Metadata{Format: "png", Width: 4096, Height: 4096},
		},
		{
			name:         "height one short of minimum",
			resourceType: catalog.TypeIcon,
			meta:         Metadata{Format: "png", Width: 1024, Height: 1023},
			wantCode:     FailureBadSize,
		},
		{
			name:         "zero dimensions",
			resourceType: catalog.TypeIcon,
			meta:         Metadata{Format: "png", Width: 0, Height: 0},
			wantCode:     FailureBadSize,
		},
		{
			name:         "correctly sized jpeg rejected",
			resourceType: catalog.TypeIcon,
			meta:         Metadata{Format: "jpeg", Width: 1024, Height: 1024},
			wantCode:     FailureBadFormat,
		},
		{
			name:         "splash needs the larger minimum",
			resourceType: catalog.TypeSplash,
			meta:         Metadata{Format: "png", Width: 1024, Height: 1024},
			wantCode:     FailureBadSize,
		},
		{
			name:         "splash at minimum passes",
			resourceType: catalog.TypeSplash,
			meta:         Metadata{Format: "png", Width: 2732, Height: 2732},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			failure := Validate(tt.resourceType, "source.png", tt.meta)
			if tt.wantCode == "" {
				if failure != nil {
					t.Fatalf("expected success, got %v", failure)
				}
				return
			}
			if failure == nil {
				t.Fatal("expected validation failure")
			}
			if failure.Code != tt.wantCode {
				t.Errorf("code = %s, want %s", failure.Code, tt.wantCode)
			}
			if failure.SourcePath != "source.png" {
				t.Errorf("source path = %q", failure.SourcePath)
			}
			if failure.ResourceType != tt.resourceType {
				t.Errorf("resource type = %s, want %s", failure.ResourceType, tt.resourceType)
			}
		})
	}
}

func TestValidationFailureMessages(t *testing.T) {
	sizeFailure := Validate(catalog.TypeIcon, "small.png", Metadata{Format: "png", Width: 512, Height: 512})
	if sizeFailure == nil {
		t.Fatal("expected size failure")
	}
	msg := sizeFailure.Error()
	for _, want := range []string{"small.png", "1024x1024", "512x512"} {
		if !strings.Contains(msg, want) {
			t.Errorf("size failure message %q missing %q", msg, want)
		}
	}

	formatFailure := Validate(catalog.TypeIcon, "photo.jpg", Metadata{Format: "jpeg", Width: 2048, Height: 2048})
	if formatFailure == nil {
		t.Fatal("expected format failure")
	}
	msg = formatFailure.Error()
	for _, want := range []string{"photo.jpg", "png", "jpeg"} {
		if !strings.Contains(msg, want) {
			t.Errorf("format failure message %q missing %q", msg, want)
		}
	}
}
