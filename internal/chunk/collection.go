package chunk

// Find reports whether any chunk has the given type.
func Find(chunks []Chunk, t Type) bool {
	for _, c := range chunks {
		if c.Type == t {
			return true
		}
	}
	return false
}

// Extract returns the first chunk of the given type. The boolean is false if
// no chunk of that type exists.
func Extract(chunks []Chunk, t Type) (Chunk, bool) {
	for _, c := range chunks {
		if c.Type == t {
			return c, true
		}
	}
	return Chunk{}, false
}

// ExtractBank returns the first chunk of the given type and bank.
func ExtractBank(chunks []Chunk, t Type, bank uint8) (Chunk, bool) {
	for _, c := range chunks {
		if c.Type == t && c.Bank == bank {
			return c, true
		}
	}
	return Chunk{}, false
}

// Select returns all chunks of the given type in input order.
func Select(chunks []Chunk, t Type) []Chunk {
	var result []Chunk
	for _, c := range chunks {
		if c.Type == t {
			result = append(result, c)
		}
	}
	return result
}

// Replace returns a new slice in which every chunk with the type of c is
// replaced by a copy of c at its position. If no chunk has that type, c is
// appended. The input slice is not modified.
func Replace(chunks []Chunk, c Chunk) []Chunk {
	result := make([]Chunk, 0, len(chunks)+1)
	replaced := false

	for _, existing := range chunks {
		if existing.Type == c.Type {
			result = append(result, New(c.Type, c.Bank, c.Data))
			replaced = true
			continue
		}
		result = append(result, existing)
	}

	if !replaced {
		result = append(result, New(c.Type, c.Bank, c.Data))
	}
	return result
}
