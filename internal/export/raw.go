package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/retroenv/ticdump/internal/chunk"
)

// RawFileName returns the file name used for the raw payload of the chunk at
// the given index.
func RawFileName(index int, c chunk.Chunk) string {
	return fmt.Sprintf("%02d_%s_bank%d.bin", index, strings.ToLower(c.Type.String()), c.Bank)
}

// Raw writes the payload of every chunk to its own file in dir. It returns
// the paths of the written files.
func Raw(dir string, chunks []chunk.Chunk) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating directory %s: %w", dir, err)
	}

	paths := make([]string, 0, len(chunks))
	for i, c := range chunks {
		path := filepath.Join(dir, RawFileName(i, c))
		if err := os.WriteFile(path, c.Data, 0o644); err != nil {
			return paths, fmt.Errorf("writing file %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
