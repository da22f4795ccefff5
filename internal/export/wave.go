package export

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/retroenv/ticdump/internal/chunk"
	"github.com/retroenv/ticdump/internal/nibble"
)

const (
	waveformBytes   = 16
	waveformSamples = waveformBytes * 2

	// WaveformCycles is the number of times every waveform is repeated in
	// the written audio.
	WaveformCycles = 64

	// WaveformSampleRate plays a waveform cycle at 440 Hz.
	WaveformSampleRate = waveformSamples * 440

	waveBitDepth  = 16
	waveChannels  = 1
	wavePCMFormat = 1

	// sampleScale maps the centered 4 bit sample range -15..15 to 16 bit.
	sampleScale = 2184
)

var errNoWaveforms = errors.New("chunk contains no waveform")

// Waveforms returns the samples of all waveforms of the chunk, one 4 bit
// value per sample. A last waveform that is cut short is filled with zero
// samples.
func Waveforms(c chunk.Chunk) [][]byte {
	return nibble.Group(nibble.Split(padded(c.Data, waveformBytes)), waveformSamples)
}

// WriteWaveforms writes the waveforms of a Waveform chunk as 16 bit mono WAV,
// every waveform repeated WaveformCycles times.
func WriteWaveforms(w io.WriteSeeker, c chunk.Chunk) error {
	waveforms := Waveforms(c)
	if len(waveforms) == 0 {
		return fmt.Errorf("%s: %w", c.Type, errNoWaveforms)
	}

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: waveChannels,
			SampleRate:  WaveformSampleRate,
		},
		Data:           make([]int, 0, len(waveforms)*waveformSamples*WaveformCycles),
		SourceBitDepth: waveBitDepth,
	}
	for _, samples := range waveforms {
		for range WaveformCycles {
			for _, sample := range samples {
				buf.Data = append(buf.Data, (int(sample)*2-15)*sampleScale)
			}
		}
	}

	enc := wav.NewEncoder(w, WaveformSampleRate, waveBitDepth, waveChannels, wavePCMFormat)
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("encoding wav: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("closing wav encoder: %w", err)
	}
	return nil
}
