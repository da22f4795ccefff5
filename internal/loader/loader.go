// Package loader handles cartridge file loading operations.
package loader

import (
	"errors"
	"fmt"

	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/ticdump/internal/chunk"
	"github.com/retroenv/ticdump/internal/options"
)

// Loader handles loading cartridge files from disk.
type Loader struct {
	logger *log.Logger
}

// New creates a new cartridge loader.
func New(logger *log.Logger) *Loader {
	return &Loader{
		logger: logger,
	}
}

// Load reads and decodes the input cartridge file of the options.
// A chunk that is cut off by the end of the file is dropped with a warning,
// or reported as error in strict mode.
func (l *Loader) Load(opts options.Program) ([]chunk.Chunk, error) {
	chunks, err := chunk.DecodeFile(opts.Input)
	return l.handleResult(opts, chunks, err)
}

// LoadFromBytes decodes an in-memory cartridge using the same rules as Load.
func (l *Loader) LoadFromBytes(data []byte, opts options.Program) ([]chunk.Chunk, error) {
	chunks, err := chunk.Decode(data)
	return l.handleResult(opts, chunks, err)
}

func (l *Loader) handleResult(opts options.Program, chunks []chunk.Chunk, err error) ([]chunk.Chunk, error) {
	if err == nil {
		l.logger.Debug("Decoded cartridge",
			log.String("file", opts.Input),
			log.Int("chunks", len(chunks)))
		return chunks, nil
	}

	var eoi *chunk.UnexpectedEndOfInputError
	if !errors.As(err, &eoi) {
		return nil, err
	}
	if opts.Strict {
		return chunks, fmt.Errorf("decoding: %w", err)
	}

	l.logger.Warn("Dropping truncated chunk",
		log.String("file", opts.Input),
		log.Stringer("type", eoi.Type),
		log.Int("offset", eoi.Offset),
		log.Int("bytes_read", eoi.Consumed))
	return chunks, nil
}
