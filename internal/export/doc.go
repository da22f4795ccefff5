// Package export writes decoded chunks to files: raw payload dumps, tile
// sheets as PNG images and waveforms as WAV audio.
package export
