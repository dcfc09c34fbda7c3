package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mindloom/mindloom/pkg/mindmap"
)

// parseColor parses a hex color like "1e90ff" or "#1e90ff".
func parseColor(s string) (mindmap.Color, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return mindmap.Color{}, fmt.Errorf("invalid color %q: want six hex digits", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return mindmap.Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return mindmap.Color{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}, nil
}

// parsePoint parses a scene position like "120,40.5".
func parsePoint(s string) (x, y float64, err error) {
	parts := strings.SplitN(strings.TrimSpace(s), ",", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid position %q: want X,Y", s)
	}
	x, err = strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid x in %q", s)
	}
	y, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid y in %q", s)
	}
	return x, y, nil
}

// parseSize parses an image size like "800x600".
func parseSize(s string) (width, height int, err error) {
	parts := strings.SplitN(strings.TrimSpace(s), "x", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid size %q: want WIDTHxHEIGHT", s)
	}
	width, err = strconv.Atoi(parts[0])
	if err != nil || width <= 0 {
		return 0, 0, fmt.Errorf("invalid width in %q", s)
	}
	height, err = strconv.Atoi(parts[1])
	if err != nil || height <= 0 {
		return 0, 0, fmt.Errorf("invalid height in %q", s)
	}
	return width, height, nil
}
