package nibble

import (
	"bytes"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  []byte
	}{
		{name: "empty", input: nil, want: []byte{}},
		{name: "single byte", input: []byte{0xAB}, want: []byte{0x0B, 0x0A}},
		{name: "multiple bytes", input: []byte{0x10, 0x0F, 0xFF}, want: []byte{0x00, 0x01, 0x0F, 0x00, 0x0F, 0x0F}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Split(tt.input)
			assert.Len(t, got, 2*len(tt.input))
			assert.True(t, bytes.Equal(tt.want, got))
		})
	}
}

func TestGroup(t *testing.T) {
	data := []byte{1, 2, 3, 4, 5, 6, 7}

	t.Run("exact multiple", func(t *testing.T) {
		groups := Group(data[:6], 3)
		assert.Len(t, groups, 2)
		assert.True(t, bytes.Equal([]byte{1, 2, 3}, groups[0]))
		assert.True(t, bytes.Equal([]byte{4, 5, 6}, groups[1]))
	})

	t.Run("trailing partial group is dropped", func(t *testing.T) {
		groups := Group(data, 3)
		assert.Len(t, groups, 2)
		assert.True(t, bytes.Equal([]byte{4, 5, 6}, groups[1]))
	})

	t.Run("group larger than input", func(t *testing.T) {
		assert.Len(t, Group(data, 8), 0)
	})

	t.Run("invalid size", func(t *testing.T) {
		assert.True(t, Group(data, 0) == nil)
		assert.True(t, Group(data, -1) == nil)
	})

	t.Run("appending to a group does not overwrite the next", func(t *testing.T) {
		groups := Group(data[:6], 3)
		_ = append(groups[0], 0xFF)
		assert.Equal(t, byte(4), groups[1][0])
	})
}
