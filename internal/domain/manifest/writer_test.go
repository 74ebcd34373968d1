package manifest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bytedance/sonic"

	"iconforge/internal/domain/catalog"
	"iconforge/internal/domain/generate"
)

func sampleImages(outputRoot string) []generate.GeneratedImage {
	return []generate.GeneratedImage{
		{
			Platform:   catalog.PlatformAndroid,
			Type:       catalog.TypeIcon,
			OutputPath: filepath.Join(outputRoot, "android", "icon", "drawable-hdpi-icon.png"),
			SourcePath: "icon.png",
			Spec:       catalog.ImageSpec{Name: "drawable-hdpi-icon.png", Width: 72, Height: 72, Density: catalog.DensityHDPI},
		},
		{
			Platform:   catalog.PlatformAndroid,
			Type:       catalog.TypeSplash,
			OutputPath: filepath.Join(outputRoot, "android", "splash", "drawable-land-hdpi-screen.png"),
			SourcePath: "splash.png",
			Spec: catalog.ImageSpec{
				Name: "drawable-land-hdpi-screen.png", Width: 800, Height: 480,
				Density: catalog.DensityHDPI, Orientation: catalog.OrientationLandscape,
			},
		},
		{
			Platform:   catalog.PlatformIOS,
			Type:       catalog.TypeIcon,
			OutputPath: filepath.Join(outputRoot, "ios", "icon", "icon-60@3x.png"),
			SourcePath: "icon.png",
			Spec:       catalog.ImageSpec{Name: "icon-60@3x.png", Width: 180, Height: 180},
		},
		{
			Platform:   catalog.PlatformIOS,
			Type:       catalog.TypeIcon,
			OutputPath: filepath.Join(outputRoot, "ios", "icon", "icon-83.5@2x.png"),
			SourcePath: "icon.png",
			Spec:       catalog.ImageSpec{Name: "icon-83.5@2x.png", Width: 167, Height: 167},
		},
	}
}

func TestWriteXML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resources.xml")

	err := NewWriter(dir).WriteXML(path, sampleImages(dir))
	if err != nil {
		t.Fatalf("WriteXML: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	content := string(raw)

	for _, want := range []string{
		`<platform name="android">`,
		`<platform name="ios">`,
		`src="android/icon/drawable-hdpi-icon.png"`,
		`density="hdpi"`,
		`density="land-hdpi"`,
		`width="72"`,
		`height="480"`,
		`src="ios/icon/icon-60@3x.png"`,
	} {
		if !strings.Contains(content, want) {
			t.Errorf("manifest missing %q:\n%s", want, content)
		}
	}

	// iOS entries carry no density attribute.
	iosSection := content[strings.Index(content, `<platform name="ios">`):]
	if strings.Contains(iosSection, "density=") {
		t.Errorf("ios section should not carry density attributes:\n%s", iosSection)
	}

	// The catalog declares src before density for android icons.
	iconNode := content[strings.Index(content, "<icon"):]
	if strings.Index(iconNode, "src=") > strings.Index(iconNode, "density=") {
		t.Errorf("attribute order should follow the catalog:\n%s", iconNode)
	}
}

func TestWriteContentsJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Contents.json")

	err := NewWriter(dir).WriteContentsJSON(path, sampleImages(dir))
	if err != nil {
		t.Fatalf("WriteContentsJSON: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	var contents struct {
		Images []struct {
			Size     string `json:"size"`
			Idiom    string `json:"idiom"`
			Filename string `json:"filename"`
			Scale    string `json:"scale"`
		} `json:"images"`
		Info struct {
			Version int    `json:"version"`
			Author  string `json:"author"`
		} `json:"info"`
	}
	if err := sonic.Unmarshal(raw, &contents); err != nil {
		t.Fatalf("parse Contents.json: %v", err)
	}

	if contents.Info.Version != 1 {
		t.Errorf("info version = %d", contents.Info.Version)
	}
	if len(contents.Images) != 2 {
		t.Fatalf("expected 2 ios icon entries, got %d", len(contents.Images))
	}

	first := contents.Images[0]
	if first.Filename != "icon-60@3x.png" || first.Scale != "3x" || first.Size != "60x60" {
		t.Errorf("unexpected entry: %+v", first)
	}

	second := contents.Images[1]
	if second.Filename != "icon-83.5@2x.png" || second.Scale != "2x" || second.Size != "83.5x83.5" {
		t.Errorf("unexpected entry: %+v", second)
	}
}
