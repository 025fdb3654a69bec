package render

import (
	"image/color"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// ErrUnknownPalette is returned by PaletteByName for unregistered schemes.
var ErrUnknownPalette = errors.New("unknown palette")

// Palette is the color scheme of a board view.
type Palette struct {
	Dead   color.RGBA
	Live   color.RGBA
	Border color.RGBA
	Ghost  color.NRGBA // stamp preview tint, not premultiplied
}

var palettes = map[string]Palette{
	"classic": {
		Dead:   color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Live:   color.RGBA{A: 255},
		Border: color.RGBA{R: 77, G: 77, B: 77, A: 255},
		Ghost:  color.NRGBA{R: 255, G: 102, B: 26, A: 160},
	},
	"dark": {
		Dead:   color.RGBA{A: 255},
		Live:   color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Border: color.RGBA{R: 16, G: 16, B: 20, A: 255},
		Ghost:  color.NRGBA{R: 128, G: 0, B: 255, A: 160},
	},
}

// DefaultPalette is the scheme used when none is configured.
const DefaultPalette = "classic"

// PaletteByName resolves a registered scheme, ignoring case.
func PaletteByName(name string) (Palette, error) {
	p, ok := palettes[strings.ToLower(name)]
	if !ok {
		return Palette{}, errors.Wrapf(ErrUnknownPalette, "[PaletteByName] %q (have %s)", name, strings.Join(PaletteNames(), ", "))
	}
	return p, nil
}

// PaletteNames lists registered schemes in sorted order.
func PaletteNames() []string {
	names := make([]string, 0, len(palettes))
	for name := range palettes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
