// Package pipeline orchestrates the decoding workflow stages.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/ticdump/internal/chunk"
	"github.com/retroenv/ticdump/internal/export"
	"github.com/retroenv/ticdump/internal/loader"
	"github.com/retroenv/ticdump/internal/options"
	"github.com/retroenv/ticdump/internal/selector"
	"github.com/retroenv/ticdump/internal/writer"
)

// sheetTypes are the chunk types that are rendered as tile sheet images.
var sheetTypes = []chunk.Type{chunk.Tiles, chunk.Sprites}

// Result contains the outcome of a pipeline run.
type Result struct {
	Chunks   []chunk.Chunk // all decoded chunks
	Selected []chunk.Chunk // chunks matching the chunk patterns
	Files    []string      // files written besides the listing
}

// Pipeline orchestrates the complete decoding workflow.
type Pipeline struct {
	logger *log.Logger
	loader *loader.Loader
}

// New creates a new decoding pipeline.
func New(logger *log.Logger) *Pipeline {
	return &Pipeline{
		logger: logger,
		loader: loader.New(logger),
	}
}

// Execute runs the complete pipeline for the input file of the options.
func (p *Pipeline) Execute(ctx context.Context, opts options.Program, w io.Writer) (*Result, error) {
	chunks, err := p.Load(opts)
	if err != nil {
		return nil, err
	}

	return p.ExecuteWithChunks(ctx, chunks, opts, w)
}

// Load decodes the input file of the options.
func (p *Pipeline) Load(opts options.Program) ([]chunk.Chunk, error) {
	chunks, err := p.loader.Load(opts)
	if err != nil {
		return nil, fmt.Errorf("loading cartridge: %w", err)
	}
	return chunks, nil
}

// ExecuteWithChunks runs the pipeline with already decoded chunks.
// This is useful for testing and programmatic usage where the cartridge is already in memory.
func (p *Pipeline) ExecuteWithChunks(ctx context.Context, chunks []chunk.Chunk, opts options.Program,
	w io.Writer) (*Result, error) {

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("processing %s: %w", opts.Input, err)
	}

	sel, err := selector.New(opts.Chunks)
	if err != nil {
		return nil, fmt.Errorf("parsing chunk patterns: %w", err)
	}

	result := &Result{
		Chunks:   chunks,
		Selected: sel.Filter(chunks),
	}

	p.printInfo(opts, result)

	if err := writer.New(w, opts.Format).Write(opts.Input, result.Selected); err != nil {
		return nil, fmt.Errorf("writing listing: %w", err)
	}

	if err := p.runExports(ctx, opts, result); err != nil {
		return nil, err
	}
	return result, nil
}

// runExports writes the files requested by the options.
func (p *Pipeline) runExports(ctx context.Context, opts options.Program, result *Result) error {
	if opts.ExtractDir != "" {
		paths, err := export.Raw(opts.ExtractDir, result.Selected)
		result.Files = append(result.Files, paths...)
		if err != nil {
			return fmt.Errorf("extracting chunks: %w", err)
		}
		p.logger.Debug("Extracted chunks",
			log.String("directory", opts.ExtractDir),
			log.Int("files", len(paths)))
	}

	if opts.Image {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("exporting images: %w", err)
		}
		if err := p.writeTileSheets(opts, result); err != nil {
			return fmt.Errorf("exporting images: %w", err)
		}
	}

	if opts.Wave {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("exporting waveforms: %w", err)
		}
		if err := p.writeWaveforms(opts, result); err != nil {
			return fmt.Errorf("exporting waveforms: %w", err)
		}
	}

	return nil
}

func (p *Pipeline) writeTileSheets(opts options.Program, result *Result) error {
	palette := export.Palette(result.Chunks)

	for _, typ := range sheetTypes {
		c, ok := chunk.Extract(result.Chunks, typ)
		if !ok {
			p.logger.Debug("No chunk to render", log.Stringer("type", typ))
			continue
		}

		path := OutputFilename(opts.Input, "_"+strings.ToLower(typ.String())+".png")
		err := writeFile(path, func(file *os.File) error {
			return export.WriteTileSheet(file, c, palette)
		})
		if err != nil {
			return err
		}
		result.Files = append(result.Files, path)
		p.logger.Info("Wrote tile sheet", log.Stringer("type", typ), log.String("file", path))
	}
	return nil
}

func (p *Pipeline) writeWaveforms(opts options.Program, result *Result) error {
	c, ok := chunk.Extract(result.Chunks, chunk.Waveform)
	if !ok {
		p.logger.Warn("Cartridge has no waveform chunk", log.String("file", opts.Input))
		return nil
	}

	path := OutputFilename(opts.Input, ".wav")
	err := writeFile(path, func(file *os.File) error {
		return export.WriteWaveforms(file, c)
	})
	if err != nil {
		return err
	}
	result.Files = append(result.Files, path)
	p.logger.Info("Wrote waveforms", log.String("file", path))
	return nil
}

// printInfo prints information about the cartridge being processed.
func (p *Pipeline) printInfo(opts options.Program, result *Result) {
	if opts.Quiet {
		return
	}

	p.logger.Info("Processing cartridge",
		log.String("file", opts.Input),
		log.Int("chunks", len(result.Chunks)),
		log.Int("selected", len(result.Selected)),
	)
	if chunk.Find(result.Chunks, chunk.Reserved) {
		p.logger.Debug("Cartridge contains chunks of reserved types")
	}
}

// OutputFilename returns the input file name with its extension replaced by
// suffix.
func OutputFilename(inputFile, suffix string) string {
	ext := filepath.Ext(inputFile)
	return inputFile[:len(inputFile)-len(ext)] + suffix
}

func writeFile(path string, write func(file *os.File) error) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file %s: %w", path, err)
	}
	if err := write(file); err != nil {
		_ = file.Close()
		_ = os.Remove(path)
		return fmt.Errorf("writing file %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("closing file %s: %w", path, err)
	}
	return nil
}
