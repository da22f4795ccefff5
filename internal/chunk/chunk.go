// Package chunk implements the TIC-80 cartridge chunk format: the chunk
// entity, a byte driven decoder and operations over decoded chunk slices.
package chunk

import (
	"fmt"
	"strings"
)

// Type is the kind of a chunk, selected by the low 5 bits of the header byte.
type Type uint8

// Chunk types, the values equal the 5-bit codes used in the file format.
const (
	Reserved Type = 0
	Tiles    Type = 1
	Sprites  Type = 2
	Map      Type = 4
	Code     Type = 5
	Flags    Type = 6
	Samples  Type = 9
	Waveform Type = 10
	Palette  Type = 12
	Music    Type = 14
	Patterns Type = 15
	Default  Type = 17
	Screen   Type = 18
	Binary   Type = 19
)

const (
	typeMask = 0b00011111
	bankMask = 0b11100000

	bankShift = 5

	// MaxBank is the highest bank number a header byte can address.
	MaxBank = bankMask >> bankShift
)

var typeNames = map[Type]string{
	Reserved: "Reserved",
	Tiles:    "Tiles",
	Sprites:  "Sprites",
	Map:      "Map",
	Code:     "Code",
	Flags:    "Flags",
	Samples:  "Samples",
	Waveform: "Waveform",
	Palette:  "Palette",
	Music:    "Music",
	Patterns: "Patterns",
	Default:  "Default",
	Screen:   "Screen",
	Binary:   "Binary",
}

// TypeFromCode maps a 5-bit type code to its chunk type. Codes without an
// assigned meaning map to Reserved.
func TypeFromCode(code byte) Type {
	t := Type(code & typeMask)
	if _, ok := typeNames[t]; !ok {
		return Reserved
	}
	return t
}

// ParseType returns the chunk type for a case insensitive type name.
func ParseType(name string) (Type, bool) {
	for t, s := range typeNames {
		if strings.EqualFold(s, name) {
			return t, true
		}
	}
	return Reserved, false
}

// Types returns all named chunk types in code order, Reserved first.
func Types() []Type {
	return []Type{Reserved, Tiles, Sprites, Map, Code, Flags, Samples, Waveform,
		Palette, Music, Patterns, Default, Screen, Binary}
}

func (t Type) String() string {
	if s, ok := typeNames[t]; ok {
		return s
	}
	return fmt.Sprintf("Type(%d)", uint8(t))
}

// Chunk is a single decoded record of a cartridge file.
type Chunk struct {
	Type Type
	Bank uint8 // 0-7
	Data []byte
}

// New returns a chunk holding a copy of data.
func New(t Type, bank uint8, data []byte) Chunk {
	return Chunk{
		Type: t,
		Bank: bank,
		Data: append([]byte{}, data...),
	}
}

// RawBank returns the bank as it is stored in the header byte, masked but
// not shifted down. Only the low 3 bits of Bank are used, a bank above
// MaxBank is silently truncated.
func (c Chunk) RawBank() byte {
	return (c.Bank << bankShift) & bankMask
}

// Header returns the header byte that encodes the type and bank of the chunk.
// Bank and type are masked the same way as in RawBank.
func (c Chunk) Header() byte {
	return c.RawBank() | byte(c.Type)&typeMask
}

// Size returns the payload length.
func (c Chunk) Size() int {
	return len(c.Data)
}

// Equal reports whether both chunks have the same type, bank and payload.
func (c Chunk) Equal(other Chunk) bool {
	return c.Type == other.Type && c.Bank == other.Bank && string(c.Data) == string(other.Data)
}

func (c Chunk) String() string {
	return fmt.Sprintf("%s bank %d (%d bytes)", c.Type, c.Bank, len(c.Data))
}
