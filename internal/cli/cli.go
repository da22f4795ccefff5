// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/retroenv/ticdump/internal/config"
	"github.com/retroenv/ticdump/internal/options"
)

// ParseFlags parses command line flags and returns the program options
func ParseFlags() (options.Program, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	var opts options.Program
	readOptionFlags(flags, &opts)

	err := flags.Parse(os.Args[1:])
	args := flags.Args()
	if err != nil || (len(args) == 0 && opts.Input == "" && opts.Batch == "" && !opts.Config) {
		return opts, &UsageError{flags: flags}
	}

	if err := validateArgs(args); err != nil {
		return opts, err
	}

	if err := normalizeOptions(&opts); err != nil {
		return opts, err
	}

	if err := resolveInput(&opts, args); err != nil {
		return opts, err
	}

	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: ticdump [options] <cartridge file>\n\n")
	if e.flags != nil {
		e.flags.PrintDefaults()
	}
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && arg != "" && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after cartridge file, please pass the file as last argument", arg),
			}
		}
	}
	return nil
}

// normalizeOptions normalizes and validates option values
func normalizeOptions(opts *options.Program) error {
	opts.Format = strings.ToLower(opts.Format)

	validFormats := []string{options.FormatText, options.FormatYAML}
	for _, valid := range validFormats {
		if opts.Format == valid {
			return nil
		}
	}

	return fmt.Errorf("unsupported format: %s. Valid options: %s",
		opts.Format, strings.Join(validFormats, ", "))
}

// resolveInput sets the input file from the positional argument or the
// default cartridge location.
func resolveInput(opts *options.Program, args []string) error {
	switch {
	case opts.Batch != "":
		return nil
	case len(args) > 0:
		opts.Input = args[0]
	case opts.Config && opts.Input == "":
		path, err := config.DefaultCartridgePath()
		if err != nil {
			return fmt.Errorf("locating config cartridge: %w", err)
		}
		opts.Input = path
	}
	return nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Input, "i", "", "name of the input cartridge file")
	flags.StringVar(&opts.Output, "o", "", "name of the output listing file, printed on console if no name given")
	flags.StringVar(&opts.Batch, "batch", "", "process a batch of given path and file mask, for example *.tic")
	flags.StringVar(&opts.ExtractDir, "x", "", "directory to write the raw payload of every selected chunk to")
	flags.StringVar(&opts.Chunks, "chunks", "", "comma separated chunk type patterns to select, for example Til*,Palette")
	flags.StringVar(&opts.Format, "format", options.FormatText, "listing format (text/yaml)")
	flags.BoolVar(&opts.Config, "config", false, "decode the TIC-80 config.tic in the home directory of the current user")
	flags.BoolVar(&opts.Image, "png", false, "write the tile sheet as .png file next to the input file")
	flags.BoolVar(&opts.Wave, "wav", false, "write the waveforms as .wav file next to the input file")
	flags.BoolVar(&opts.Strict, "strict", false, "treat a truncated trailing chunk as error instead of a warning")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
}
