// Package options contains the program options.
package options

// Listing formats.
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// Parameters contains file path options.
type Parameters struct {
	Input      string `flag:"i" usage:"input cartridge file"`
	Output     string `flag:"o" usage:"output listing file (default: stdout)"`
	Batch      string `flag:"batch" usage:"batch process files matching pattern (e.g. *.tic)"`
	ExtractDir string `flag:"x" usage:"directory to write raw chunk payloads to"`
}

// Flags contains behavior options.
type Flags struct {
	Chunks string `flag:"chunks" usage:"comma separated chunk type patterns to select (e.g. Til*,Palette)"`
	Format string `flag:"format" usage:"listing format: text, yaml" default:"text"`
	Config bool   `flag:"config" usage:"decode the TIC-80 config.tic of the current user"`
	Image  bool   `flag:"png" usage:"write the tile sheet as .png next to the input"`
	Wave   bool   `flag:"wav" usage:"write the waveforms as .wav next to the input"`
	Strict bool   `flag:"strict" usage:"fail on a truncated trailing chunk"`
	Debug  bool   `flag:"debug" usage:"enable debug logging"`
	Quiet  bool   `flag:"q" usage:"quiet mode"`
}

// Program options of the decoder.
type Program struct {
	Parameters
	Flags
}
