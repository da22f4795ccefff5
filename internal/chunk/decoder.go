package chunk

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrUnexpectedEndOfInput is matched by errors.Is for every
// UnexpectedEndOfInputError.
var ErrUnexpectedEndOfInput = errors.New("unexpected end of input")

// UnexpectedEndOfInputError is returned when the input ends inside a chunk.
// All chunks that were completed before the truncated one are still returned
// by the decode functions.
type UnexpectedEndOfInputError struct {
	Offset   int  // input offset of the header byte of the truncated chunk
	Type     Type // type of the truncated chunk
	Bank     uint8
	Size     int // declared payload size, valid once Consumed reaches 3
	Consumed int // bytes of the truncated chunk that were read, header included
	Read     int // payload bytes that were read
}

func (e *UnexpectedEndOfInputError) Error() string {
	if e.Consumed < headerSize {
		return fmt.Sprintf("%s: %s chunk at offset %d has a truncated header (%d of %d bytes)",
			ErrUnexpectedEndOfInput, e.Type, e.Offset, e.Consumed, headerSize)
	}
	return fmt.Sprintf("%s: %s chunk at offset %d has %d of %d payload bytes",
		ErrUnexpectedEndOfInput, e.Type, e.Offset, e.Read, e.Size)
}

// Is makes the error match ErrUnexpectedEndOfInput.
func (e *UnexpectedEndOfInputError) Is(target error) bool {
	return target == ErrUnexpectedEndOfInput
}

// headerSize is the number of bytes preceding the payload of a chunk.
const headerSize = 4

type decodeState int

const (
	stateHeader decodeState = iota
	stateSizeLow
	stateSizeHigh
	stateReserved
	stateData
)

// Decoder is a state machine that turns a cartridge byte stream into chunks.
// It is fed one byte at a time and has no lookahead.
type Decoder struct {
	state  decodeState
	offset int // bytes consumed in total
	start  int // offset of the current chunk header

	typ       Type
	bank      uint8
	size      uint16
	remaining uint16
	data      []byte
}

// NewDecoder returns a decoder waiting for the first header byte.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Step consumes the next input byte. It returns the completed chunk and true
// if the byte finished a chunk.
func (d *Decoder) Step(b byte) (Chunk, bool) {
	d.offset++

	switch d.state {
	case stateHeader:
		d.start = d.offset - 1
		d.typ = TypeFromCode(b)
		d.bank = (b & bankMask) >> bankShift
		d.state = stateSizeLow

	case stateSizeLow:
		d.size = uint16(b)
		d.state = stateSizeHigh

	case stateSizeHigh:
		d.size |= uint16(b) << 8
		d.state = stateReserved

	case stateReserved:
		if d.size == 0 {
			return d.finish(), true
		}
		d.remaining = d.size
		d.data = make([]byte, 0, d.size)
		d.state = stateData

	case stateData:
		d.data = append(d.data, b)
		d.remaining--
		if d.remaining == 0 {
			return d.finish(), true
		}
	}

	return Chunk{}, false
}

// Pending reports whether a chunk has been started but not completed.
func (d *Decoder) Pending() bool {
	return d.state != stateHeader
}

// Offset returns the number of bytes consumed so far.
func (d *Decoder) Offset() int {
	return d.offset
}

// Err returns an UnexpectedEndOfInputError describing the chunk in progress,
// or nil if the decoder is at a chunk boundary.
func (d *Decoder) Err() error {
	if !d.Pending() {
		return nil
	}
	return &UnexpectedEndOfInputError{
		Offset:   d.start,
		Type:     d.typ,
		Bank:     d.bank,
		Size:     int(d.size),
		Consumed: d.offset - d.start,
		Read:     len(d.data),
	}
}

func (d *Decoder) finish() Chunk {
	c := Chunk{
		Type: d.typ,
		Bank: d.bank,
		Data: d.data,
	}
	if c.Data == nil {
		c.Data = []byte{}
	}

	d.state = stateHeader
	d.typ = Reserved
	d.bank = 0
	d.size = 0
	d.remaining = 0
	d.data = nil
	return c
}

// Decode decodes all chunks of a cartridge buffer in input order. If the
// buffer ends inside a chunk the chunks decoded so far are returned together
// with an UnexpectedEndOfInputError.
func Decode(data []byte) ([]Chunk, error) {
	d := NewDecoder()
	var chunks []Chunk

	for _, b := range data {
		if c, ok := d.Step(b); ok {
			chunks = append(chunks, c)
		}
	}

	return chunks, d.Err()
}

// DecodeReader decodes all chunks read from r until io.EOF.
func DecodeReader(r io.Reader) ([]Chunk, error) {
	br, ok := r.(io.ByteReader)
	if !ok {
		br = bufio.NewReader(r)
	}

	d := NewDecoder()
	var chunks []Chunk

	for {
		b, err := br.ReadByte()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return chunks, fmt.Errorf("reading byte at offset %d: %w", d.Offset(), err)
		}

		if c, ok := d.Step(b); ok {
			chunks = append(chunks, c)
		}
	}

	return chunks, d.Err()
}

// DecodeFile reads the file at path into memory and decodes it.
func DecodeFile(path string) ([]Chunk, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}

	return Decode(data)
}
