package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	HUD   FontName = "hud"
	Bold  FontName = "bold"
	Title FontName = "title"
	Mono  FontName = "mono"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	fonts = map[FontName]font.Face{}
)

// LoadDefaults registers every face used by the client from the embedded Go fonts.
func LoadDefaults() error {
	faces := []struct {
		name FontName
		ttf  []byte
		size float64
	}{
		{HUD, goregular.TTF, 14},
		{Bold, gobold.TTF, 20},
		{Title, gobold.TTF, 40},
		{Mono, gomono.TTF, 12},
	}
	for _, f := range faces {
		if err := LoadFontWithSize(f.name, f.ttf, f.size); err != nil {
			return err
		}
	}
	return nil
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) error {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("parse font %s: %w", name, err)
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
	return nil
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
