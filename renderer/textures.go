package renderer

import (
	"log/slog"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Placeholder checker colors, one pair per missing texture slot.
var placeholderColors = [][2]rl.Color{
	{{R: 120, G: 160, B: 110, A: 255}, {R: 90, G: 120, B: 80, A: 255}},
	{{R: 200, G: 130, B: 90, A: 255}, {R: 150, G: 95, B: 60, A: 255}},
	{{R: 110, G: 150, B: 200, A: 255}, {R: 80, G: 110, B: 160, A: 255}},
	{{R: 170, G: 110, B: 170, A: 255}, {R: 130, G: 80, B: 130, A: 255}},
}

// LoadTextures loads note textures. A missing or unreadable file is replaced by
// a checker placeholder so the field still renders. At least one texture is
// always returned.
func LoadTextures(paths []string) []rl.Texture2D {
	out := make([]rl.Texture2D, 0, len(paths))
	for i, path := range paths {
		tex, ok := loadNoteTexture(path)
		if !ok {
			tex = placeholderTexture(i)
		}
		out = append(out, tex)
	}
	if len(out) == 0 {
		out = append(out, placeholderTexture(0))
	}
	return out
}

func loadNoteTexture(path string) (rl.Texture2D, bool) {
	if _, err := os.Stat(path); err != nil {
		slog.Warn("note texture missing, using placeholder", "path", path, "error", err)
		return rl.Texture2D{}, false
	}

	img := rl.LoadImage(path)
	if img == nil || img.Width == 0 {
		slog.Warn("note texture unreadable, using placeholder", "path", path)
		return rl.Texture2D{}, false
	}
	// UVs put v=0 at the bottom edge of the image.
	rl.ImageFlipVertical(img)
	tex := rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)

	prepareTexture(&tex)
	return tex, true
}

func placeholderTexture(slot int) rl.Texture2D {
	c := placeholderColors[slot%len(placeholderColors)]
	img := rl.GenImageChecked(256, 256, 32, 32, c[0], c[1])
	tex := rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)

	prepareTexture(&tex)
	return tex
}

// prepareTexture sets sampling for the split atlas. Remapped V leaves [0, 1]
// so the texture must repeat.
func prepareTexture(tex *rl.Texture2D) {
	rl.GenTextureMipmaps(tex)
	rl.SetTextureFilter(*tex, rl.FilterTrilinear)
	rl.SetTextureWrap(*tex, rl.WrapRepeat)
}
