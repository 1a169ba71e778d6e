package assets

import (
	"bufio"
	"bytes"
	"embed"
	"errors"
	"fmt"
	"image"
	_ "image/png" // Register PNG format
	"os"
	"strings"
)

//go:embed data/departments.txt
var projectAssets embed.FS

// ErrNoAsset is returned when an optional asset has no path configured.
var ErrNoAsset = errors.New("asset not configured")

// Departments returns the embedded list of stack labels.
func Departments() []string {
	data, err := projectAssets.ReadFile("data/departments.txt")
	if err != nil {
		// The file is compiled in; this cannot fail at runtime.
		panic(fmt.Sprintf("read embedded departments: %v", err))
	}
	return parseLabels(data)
}

func parseLabels(data []byte) []string {
	var labels []string
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		labels = append(labels, line)
	}
	return labels
}

// ReadFile reads an optional asset from disk.
func ReadFile(path string) ([]byte, error) {
	if path == "" {
		return nil, ErrNoAsset
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read asset %q: %w", path, err)
	}
	return data, nil
}

// LoadImage decodes a PNG from disk.
func LoadImage(path string) (image.Image, error) {
	data, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image %q: %w", path, err)
	}
	return img, nil
}

// Open opens an optional asset for streaming. The caller closes it.
func Open(path string) (*os.File, error) {
	if path == "" {
		return nil, ErrNoAsset
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open asset %q: %w", path, err)
	}
	return f, nil
}
