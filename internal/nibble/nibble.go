// Package nibble unpacks 4-bit packed data and partitions byte slices into
// fixed-size groups.
package nibble

// Split unpacks every byte into two bytes, the low nibble first and the high
// nibble second.
func Split(data []byte) []byte {
	result := make([]byte, 0, len(data)*2)
	for _, b := range data {
		result = append(result, b&0x0F, b>>4)
	}
	return result
}

// Group partitions data into consecutive groups of size bytes. A trailing
// group that is shorter than size is dropped. The groups share the backing
// array of data.
func Group(data []byte, size int) [][]byte {
	if size <= 0 {
		return nil
	}

	count := len(data) / size
	groups := make([][]byte, 0, count)
	for i := 0; i < count; i++ {
		start := i * size
		groups = append(groups, data[start:start+size:start+size])
	}
	return groups
}
