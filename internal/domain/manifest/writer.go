// Package manifest renders the generated image list into the files build
// tooling consumes: a Cordova-style XML resource snippet and an iOS
// Contents.json for the icon set. Element names and attribute order come
// from the catalog and are emitted as-is.
package manifest

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/bytedance/sonic"

	"iconforge/internal/domain/catalog"
	"iconforge/internal/domain/generate"
)

// Writer renders manifests from a completed run.
type Writer struct {
	outputRoot string
}

// NewWriter creates a writer. Paths inside manifests are relative to
// outputRoot.
func NewWriter(outputRoot string) *Writer {
	return &Writer{outputRoot: outputRoot}
}

// WriteXML writes the resource snippet for every generated image, grouped
// by platform in first-seen order.
func (w *Writer) WriteXML(path string, images []generate.GeneratedImage) error {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)

	enc := xml.NewEncoder(&buf)
	enc.Indent("", "    ")

	root := xml.StartElement{Name: xml.Name{Local: "resources"}}
	if err := enc.EncodeToken(root); err != nil {
		return err
	}

	var platformOrder []catalog.Platform
	byPlatform := make(map[catalog.Platform][]generate.GeneratedImage)
	for _, img := range images {
		if _, ok := byPlatform[img.Platform]; !ok {
			platformOrder = append(platformOrder, img.Platform)
		}
		byPlatform[img.Platform] = append(byPlatform[img.Platform], img)
	}

	for _, platform := range platformOrder {
		platformEl := xml.StartElement{
			Name: xml.Name{Local: "platform"},
			Attr: []xml.Attr{{Name: xml.Name{Local: "name"}, Value: string(platform)}},
		}
		if err := enc.EncodeToken(platformEl); err != nil {
			return err
		}

		for _, img := range byPlatform[platform] {
			element, err := w.resourceElement(img)
			if err != nil {
				return err
			}
			if err := enc.EncodeToken(element); err != nil {
				return err
			}
			if err := enc.EncodeToken(element.End()); err != nil {
				return err
			}
		}

		if err := enc.EncodeToken(platformEl.End()); err != nil {
			return err
		}
	}

	if err := enc.EncodeToken(root.End()); err != nil {
		return err
	}
	if err := enc.Flush(); err != nil {
		return err
	}
	buf.WriteByte('\n')

	return os.WriteFile(path, buf.Bytes(), 0o644)
}

// resourceElement builds one element using the catalog's node name and
// attribute order. Attributes without a value for the image are omitted.
func (w *Writer) resourceElement(img generate.GeneratedImage) (xml.StartElement, error) {
	cfg, ok := catalog.Lookup(img.Platform, img.Type)
	if !ok {
		return xml.StartElement{}, fmt.Errorf("no catalog entry for %s/%s", img.Platform, img.Type)
	}

	element := xml.StartElement{Name: xml.Name{Local: cfg.NodeName}}
	for _, key := range cfg.NodeAttrs {
		value := w.attrValue(key, img)
		if value == "" {
			continue
		}
		element.Attr = append(element.Attr, xml.Attr{
			Name:  xml.Name{Local: key},
			Value: value,
		})
	}
	return element, nil
}

func (w *Writer) attrValue(key string, img generate.GeneratedImage) string {
	switch key {
	case "src":
		rel, err := filepath.Rel(w.outputRoot, img.OutputPath)
		if err != nil {
			return filepath.ToSlash(img.OutputPath)
		}
		return filepath.ToSlash(rel)
	case "density":
		return densityAttr(img.Spec)
	case "width":
		return strconv.Itoa(img.Spec.Width)
	case "height":
		return strconv.Itoa(img.Spec.Height)
	}
	return ""
}

// densityAttr composes the Cordova density value, prefixing the
// orientation for splash variants ("land-hdpi").
func densityAttr(spec catalog.ImageSpec) string {
	if spec.Density == "" {
		return ""
	}
	if spec.Orientation != "" {
		return fmt.Sprintf("%s-%s", spec.Orientation, spec.Density)
	}
	return string(spec.Density)
}

// contentsEntry is one image record in an Xcode Contents.json.
type contentsEntry struct {
	Size     string `json:"size"`
	Idiom    string `json:"idiom"`
	Filename string `json:"filename"`
	Scale    string `json:"scale"`
}

type contentsInfo struct {
	Version int    `json:"version"`
	Author  string `json:"author"`
}

type contentsFile struct {
	Images []contentsEntry `json:"images"`
	Info   contentsInfo    `json:"info"`
}

// WriteContentsJSON writes an Xcode asset-catalog Contents.json covering
// the iOS icons among the generated images. Scale is recovered from the
// @2x/@3x filename convention.
func (w *Writer) WriteContentsJSON(path string, images []generate.GeneratedImage) error {
	contents := contentsFile{
		Info: contentsInfo{Version: 1, Author: "iconforge"},
	}

	for _, img := range images {
		if img.Platform != catalog.PlatformIOS || img.Type != catalog.TypeIcon {
			continue
		}
		scale := scaleFromName(img.Spec.Name)
		contents.Images = append(contents.Images, contentsEntry{
			Size:     fmt.Sprintf("%sx%s", pointSize(img.Spec.Width, scale), pointSize(img.Spec.Height, scale)),
			Idiom:    "universal",
			Filename: img.Spec.Name,
			Scale:    fmt.Sprintf("%dx", scale),
		})
	}

	encoded, err := sonic.MarshalIndent(contents, "", "  ")
	if err != nil {
		return fmt.Errorf("encode Contents.json: %w", err)
	}
	return os.WriteFile(path, append(encoded, '\n'), 0o644)
}

// pointSize renders pixels/scale, keeping the half-point sizes Apple uses
// (83.5pt) readable.
func pointSize(pixels, scale int) string {
	if pixels%scale == 0 {
		return strconv.Itoa(pixels / scale)
	}
	return strings.TrimSuffix(fmt.Sprintf("%.1f", float64(pixels)/float64(scale)), ".0")
}

func scaleFromName(name string) int {
	switch {
	case strings.HasSuffix(name, "@3x.png"):
		return 3
	case strings.HasSuffix(name, "@2x.png"):
		return 2
	}
	return 1
}
