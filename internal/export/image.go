package export

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/retroenv/ticdump/internal/chunk"
	"github.com/retroenv/ticdump/internal/nibble"
)

const (
	tileSize      = 8
	tilePixels    = tileSize * tileSize
	tileBytes     = tilePixels / 2
	tilesPerRow   = 16
	paletteColors = 16
	rgbBytes      = 3
)

var errNoTiles = errors.New("chunk contains no tile")

// defaultPalette is the SWEETIE-16 palette that TIC-80 uses for new
// cartridges.
var defaultPalette = color.Palette{
	color.RGBA{0x1a, 0x1c, 0x2c, 0xff},
	color.RGBA{0x5d, 0x27, 0x5d, 0xff},
	color.RGBA{0xb1, 0x3e, 0x53, 0xff},
	color.RGBA{0xef, 0x7d, 0x57, 0xff},
	color.RGBA{0xff, 0xcd, 0x75, 0xff},
	color.RGBA{0xa7, 0xf0, 0x70, 0xff},
	color.RGBA{0x38, 0xb7, 0x64, 0xff},
	color.RGBA{0x25, 0x71, 0x79, 0xff},
	color.RGBA{0x29, 0x36, 0x6f, 0xff},
	color.RGBA{0x3b, 0x5d, 0xc9, 0xff},
	color.RGBA{0x41, 0xa6, 0xf6, 0xff},
	color.RGBA{0x73, 0xef, 0xf7, 0xff},
	color.RGBA{0xf4, 0xf4, 0xf4, 0xff},
	color.RGBA{0x94, 0xb0, 0xc2, 0xff},
	color.RGBA{0x56, 0x6c, 0x86, 0xff},
	color.RGBA{0x33, 0x3c, 0x57, 0xff},
}

// Palette returns the 16 color palette stored in the Palette chunk. Colors
// missing from the chunk are taken from the default palette, a color cut
// short by trimmed trailing zero bytes gets zero components.
func Palette(chunks []chunk.Chunk) color.Palette {
	palette := make(color.Palette, paletteColors)
	copy(palette, defaultPalette)

	c, ok := chunk.Extract(chunks, chunk.Palette)
	if !ok {
		return palette
	}

	for i, rgb := range nibble.Group(padded(c.Data, rgbBytes), rgbBytes) {
		if i == paletteColors {
			break
		}
		palette[i] = color.RGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 0xff}
	}
	return palette
}

// TileSheet renders the 4 bit per pixel tiles of a Tiles or Sprites chunk
// into a paletted image, 16 tiles per row. A last tile that is cut short is
// filled with color 0.
func TileSheet(c chunk.Chunk, palette color.Palette) (*image.Paletted, error) {
	tiles := nibble.Group(padded(c.Data, tileBytes), tileBytes)
	if len(tiles) == 0 {
		return nil, fmt.Errorf("%s: %w", c.Type, errNoTiles)
	}

	columns := min(len(tiles), tilesPerRow)
	rows := (len(tiles) + tilesPerRow - 1) / tilesPerRow
	img := image.NewPaletted(image.Rect(0, 0, columns*tileSize, rows*tileSize), palette)

	for i, tile := range tiles {
		originX := (i % tilesPerRow) * tileSize
		originY := (i / tilesPerRow) * tileSize

		for y, line := range nibble.Group(nibble.Split(tile), tileSize) {
			for x, index := range line {
				img.SetColorIndex(originX+x, originY+y, index)
			}
		}
	}
	return img, nil
}

// WriteTileSheet renders the chunk and encodes it as PNG.
func WriteTileSheet(w io.Writer, c chunk.Chunk, palette color.Palette) error {
	img, err := TileSheet(c, palette)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}
	return nil
}

// padded returns data zero padded to a multiple of size. TIC-80 strips
// trailing zero bytes of chunk payloads when saving a cartridge.
func padded(data []byte, size int) []byte {
	rest := len(data) % size
	if rest == 0 {
		return data
	}
	result := make([]byte, len(data)+size-rest)
	copy(result, data)
	return result
}
