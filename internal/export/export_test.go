package export

import (
	"bytes"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/ticdump/internal/chunk"
)

func TestRaw(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "chunks")
	chunks := []chunk.Chunk{
		{Type: chunk.Code, Data: []byte("cls(13)")},
		{Type: chunk.Tiles, Bank: 3, Data: []byte{0x11, 0x22}},
	}

	paths, err := Raw(dir, chunks)
	assert.NoError(t, err)
	assert.Len(t, paths, 2)
	assert.Equal(t, "01_tiles_bank3.bin", filepath.Base(paths[1]))

	data, err := os.ReadFile(paths[0])
	assert.NoError(t, err)
	assert.Equal(t, "cls(13)", string(data))
}

func TestPalette(t *testing.T) {
	t.Run("default without palette chunk", func(t *testing.T) {
		palette := Palette(nil)
		assert.Len(t, palette, 16)
		assert.Equal(t, defaultPalette[0], palette[0])
	})

	t.Run("colors from chunk", func(t *testing.T) {
		chunks := []chunk.Chunk{
			{Type: chunk.Palette, Data: []byte{0x10, 0x20, 0x30, 0x40, 0x50, 0x60, 0x70}},
		}
		palette := Palette(chunks)
		assert.Len(t, palette, 16)
		assert.Equal(t, color.Color(color.RGBA{0x10, 0x20, 0x30, 0xff}), palette[0])
		assert.Equal(t, color.Color(color.RGBA{0x40, 0x50, 0x60, 0xff}), palette[1])
		assert.Equal(t, color.Color(color.RGBA{0x70, 0x00, 0x00, 0xff}), palette[2])
		assert.Equal(t, defaultPalette[3], palette[3])
	})

	t.Run("trimmed trailing zero bytes", func(t *testing.T) {
		chunks := []chunk.Chunk{
			{Type: chunk.Palette, Data: []byte{0x10, 0x20, 0x30, 0x40, 0x50}},
		}
		palette := Palette(chunks)
		assert.Equal(t, color.Color(color.RGBA{0x40, 0x50, 0x00, 0xff}), palette[1])
		assert.Equal(t, defaultPalette[2], palette[2])
	})
}

func TestTileSheet(t *testing.T) {
	t.Run("single tile", func(t *testing.T) {
		data := make([]byte, tileBytes)
		data[0] = 0x21 // first two pixels: 1, 2
		data[4] = 0x0F // first pixel of the second line: 15

		img, err := TileSheet(chunk.Chunk{Type: chunk.Tiles, Data: data}, defaultPalette)
		assert.NoError(t, err)
		assert.Equal(t, 8, img.Bounds().Dx())
		assert.Equal(t, 8, img.Bounds().Dy())
		assert.Equal(t, uint8(1), img.ColorIndexAt(0, 0))
		assert.Equal(t, uint8(2), img.ColorIndexAt(1, 0))
		assert.Equal(t, uint8(15), img.ColorIndexAt(0, 1))
	})

	t.Run("rows of sixteen tiles", func(t *testing.T) {
		data := make([]byte, 17*tileBytes+5)
		data[16*tileBytes] = 0x03

		img, err := TileSheet(chunk.Chunk{Type: chunk.Sprites, Data: data}, defaultPalette)
		assert.NoError(t, err)
		assert.Equal(t, 128, img.Bounds().Dx())
		assert.Equal(t, 16, img.Bounds().Dy())
		assert.Equal(t, uint8(3), img.ColorIndexAt(0, 8))
	})

	t.Run("trimmed tile is zero filled", func(t *testing.T) {
		img, err := TileSheet(chunk.Chunk{Type: chunk.Tiles, Data: []byte{0x11, 0x22, 0x33, 0x44, 0x55}}, defaultPalette)
		assert.NoError(t, err)
		assert.Equal(t, 8, img.Bounds().Dx())
		assert.Equal(t, 8, img.Bounds().Dy())
		assert.Equal(t, uint8(2), img.ColorIndexAt(2, 0))
		assert.Equal(t, uint8(5), img.ColorIndexAt(1, 1))
		assert.Equal(t, uint8(0), img.ColorIndexAt(2, 1))
		assert.Equal(t, uint8(0), img.ColorIndexAt(7, 7))
	})

	t.Run("partial last tile is kept", func(t *testing.T) {
		data := make([]byte, tileBytes+1)
		data[tileBytes] = 0x0E

		img, err := TileSheet(chunk.Chunk{Type: chunk.Sprites, Data: data}, defaultPalette)
		assert.NoError(t, err)
		assert.Equal(t, 16, img.Bounds().Dx())
		assert.Equal(t, uint8(14), img.ColorIndexAt(8, 0))
	})

	t.Run("empty chunk", func(t *testing.T) {
		_, err := TileSheet(chunk.Chunk{Type: chunk.Tiles, Data: []byte{}}, defaultPalette)
		assert.ErrorContains(t, err, "no tile")
	})
}

func TestWriteTileSheet(t *testing.T) {
	var buf bytes.Buffer
	c := chunk.Chunk{Type: chunk.Tiles, Data: make([]byte, 2*tileBytes)}

	assert.NoError(t, WriteTileSheet(&buf, c, Palette(nil)))

	img, err := png.Decode(&buf)
	assert.NoError(t, err)
	assert.Equal(t, 16, img.Bounds().Dx())
	assert.Equal(t, 8, img.Bounds().Dy())
}

func TestWaveforms(t *testing.T) {
	data := make([]byte, 2*waveformBytes+3)
	data[0] = 0xF0

	waveforms := Waveforms(chunk.Chunk{Type: chunk.Waveform, Data: data})
	assert.Len(t, waveforms, 3)
	assert.Len(t, waveforms[0], waveformSamples)
	assert.Equal(t, byte(0x00), waveforms[0][0])
	assert.Equal(t, byte(0x0F), waveforms[0][1])
	assert.Len(t, waveforms[2], waveformSamples)
}

func TestWaveformsTrimmed(t *testing.T) {
	waveforms := Waveforms(chunk.Chunk{Type: chunk.Waveform, Data: []byte{0x21, 0x43, 0x65}})
	assert.Len(t, waveforms, 1)
	assert.Len(t, waveforms[0], waveformSamples)
	assert.Equal(t, byte(0x01), waveforms[0][0])
	assert.Equal(t, byte(0x06), waveforms[0][5])
	assert.Equal(t, byte(0x00), waveforms[0][6])
	assert.Equal(t, byte(0x00), waveforms[0][waveformSamples-1])
}

func TestWriteWaveforms(t *testing.T) {
	t.Run("valid wav file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "waves.wav")
		file, err := os.Create(path)
		assert.NoError(t, err)

		data := make([]byte, 2*waveformBytes)
		for i := range data {
			data[i] = byte(i)
		}
		assert.NoError(t, WriteWaveforms(file, chunk.Chunk{Type: chunk.Waveform, Data: data}))
		assert.NoError(t, file.Close())

		file, err = os.Open(path)
		assert.NoError(t, err)
		defer func() { _ = file.Close() }()

		dec := wav.NewDecoder(file)
		assert.True(t, dec.IsValidFile())

		buf, err := dec.FullPCMBuffer()
		assert.NoError(t, err)
		assert.Equal(t, 2*waveformSamples*WaveformCycles, len(buf.Data))
		assert.Equal(t, uint32(WaveformSampleRate), dec.SampleRate)
	})

	t.Run("trimmed waveform", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "short.wav")
		file, err := os.Create(path)
		assert.NoError(t, err)
		defer func() { _ = file.Close() }()

		err = WriteWaveforms(file, chunk.Chunk{Type: chunk.Waveform, Data: []byte{0x21, 0x43, 0x65}})
		assert.NoError(t, err)
	})

	t.Run("empty chunk", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "empty.wav")
		file, err := os.Create(path)
		assert.NoError(t, err)
		defer func() { _ = file.Close() }()

		err = WriteWaveforms(file, chunk.Chunk{Type: chunk.Waveform})
		assert.ErrorContains(t, err, "no waveform")
	})
}
