// Package writer implements the chunk listing output.
package writer

import (
	"encoding/hex"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/retroenv/ticdump/internal/chunk"
	"github.com/retroenv/ticdump/internal/options"
	"gopkg.in/yaml.v3"
)

// previewBytes is the number of payload bytes shown per chunk.
const previewBytes = 8

// Listing is the document written for a decoded file.
type Listing struct {
	File   string  `yaml:"file"`
	Chunks []Entry `yaml:"chunks"`
}

// Entry describes a single chunk of a listing.
type Entry struct {
	Index   int    `yaml:"index"`
	Type    string `yaml:"type"`
	Bank    uint8  `yaml:"bank"`
	Size    int    `yaml:"size"`
	Preview string `yaml:"preview,omitempty"`
}

// Writer writes chunk listings in the configured format.
type Writer struct {
	writer io.Writer
	format string
}

// New creates a new listing writer.
func New(writer io.Writer, format string) *Writer {
	return &Writer{
		writer: writer,
		format: format,
	}
}

// NewListing builds the listing of the chunks of a file.
func NewListing(file string, chunks []chunk.Chunk) Listing {
	listing := Listing{
		File:   file,
		Chunks: make([]Entry, 0, len(chunks)),
	}

	for i, c := range chunks {
		data := c.Data
		if len(data) > previewBytes {
			data = data[:previewBytes]
		}
		listing.Chunks = append(listing.Chunks, Entry{
			Index:   i,
			Type:    c.Type.String(),
			Bank:    c.Bank,
			Size:    c.Size(),
			Preview: hex.EncodeToString(data),
		})
	}
	return listing
}

// Write writes the listing of the chunks of a file.
func (w *Writer) Write(file string, chunks []chunk.Chunk) error {
	listing := NewListing(file, chunks)

	switch w.format {
	case options.FormatYAML:
		return w.writeYAML(listing)
	case options.FormatText, "":
		return w.writeText(listing)
	default:
		return fmt.Errorf("unsupported listing format '%s'", w.format)
	}
}

func (w *Writer) writeYAML(listing Listing) error {
	enc := yaml.NewEncoder(w.writer)
	enc.SetIndent(2)
	if err := enc.Encode(listing); err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("closing yaml encoder: %w", err)
	}
	return nil
}

func (w *Writer) writeText(listing Listing) error {
	if _, err := fmt.Fprintf(w.writer, "; %s: %d chunks\n", listing.File, len(listing.Chunks)); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	tw := tabwriter.NewWriter(w.writer, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(tw, "#\ttype\tbank\tsize\tdata"); err != nil {
		return fmt.Errorf("writing line: %w", err)
	}
	for _, entry := range listing.Chunks {
		if _, err := fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%s\n",
			entry.Index, entry.Type, entry.Bank, entry.Size, entry.Preview); err != nil {
			return fmt.Errorf("writing line: %w", err)
		}
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flushing listing: %w", err)
	}
	return nil
}
