// Package snapshot turns a rendered terminal frame into a PNG image.
package snapshot

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

const (
	padding     = 16
	defaultSize = 18
)

// LoadFace returns an OpenType face read from path, or the built-in 7x13
// bitmap face when path is empty. The bitmap face only covers ASCII.
func LoadFace(path string) (font.Face, error) {
	if path == "" {
		return basicfont.Face7x13, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("snapshot: read font: %w", err)
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("snapshot: parse font %s: %w", filepath.Base(path), err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    defaultSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("snapshot: create face: %w", err)
	}
	return face, nil
}

// Rasterize draws frame, with ANSI styling removed, as black text on white.
func Rasterize(frame string, face font.Face) *image.RGBA {
	lines := strings.Split(strings.TrimRight(ansi.Strip(frame), "\n"), "\n")
	for i, line := range lines {
		lines[i] = substituteMissing(face, line)
	}

	metrics := face.Metrics()
	lineHeight := metrics.Height.Ceil()
	if lineHeight <= 0 {
		lineHeight = 13
	}
	ascent := metrics.Ascent.Ceil()

	width := 0
	for _, line := range lines {
		if w := font.MeasureString(face, line).Ceil(); w > width {
			width = w
		}
	}

	img := image.NewRGBA(image.Rect(0, 0, width+2*padding, len(lines)*lineHeight+2*padding))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	d := &font.Drawer{Dst: img, Src: image.Black, Face: face}
	for i, line := range lines {
		d.Dot = fixed.P(padding, padding+ascent+i*lineHeight)
		d.DrawString(line)
	}
	return img
}

// SavePNG encodes img to path, creating the parent directory if needed.
func SavePNG(path string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("snapshot: ensure dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("snapshot: create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("snapshot: encode png: %w", err)
	}
	return f.Close()
}

// PNGPath forces a .png extension onto a user-entered save path.
func PNGPath(path string) string {
	path = strings.TrimSpace(path)
	if strings.EqualFold(filepath.Ext(path), ".png") {
		return path
	}
	return path + ".png"
}

// substituteMissing swaps runes the face cannot draw for ASCII stand-ins,
// so borders survive with the bitmap face.
func substituteMissing(face font.Face, s string) string {
	return strings.Map(func(r rune) rune {
		if hasGlyph(face, r) {
			return r
		}
		switch {
		case r == '─' || r == '━' || r == '═':
			return '-'
		case r == '│' || r == '┃' || r == '║':
			return '|'
		case r >= 0x2500 && r <= 0x257f:
			return '+'
		case r == '　':
			return ' '
		default:
			return '?'
		}
	}, s)
}

// hasGlyph reports whether face can draw r. Bitmap faces silently fall back
// to U+FFFD, so their ranges are checked directly.
func hasGlyph(face font.Face, r rune) bool {
	if bf, ok := face.(*basicfont.Face); ok {
		for _, rng := range bf.Ranges {
			if rng.Low <= r && r < rng.High {
				return true
			}
		}
		return false
	}
	_, ok := face.GlyphAdvance(r)
	return ok
}
