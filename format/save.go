package format

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dhamidi/retrojanet/janet"
)

// Save renders decl as Java and writes it to dir/<Name>.java, creating dir
// when needed. An existing file is overwritten.
func Save(dir string, decl *janet.Declaration) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create output directory %s: %w", dir, err)
	}

	var buf bytes.Buffer
	if err := NewJavaEncoder(&buf).Encode(decl); err != nil {
		return "", fmt.Errorf("encode %s: %w", decl.Name, err)
	}

	path := filepath.Join(dir, decl.FileName())
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
