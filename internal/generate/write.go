package generate

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// WriteFiles writes every output, creating directories as needed. Files
// whose content is already up to date are left untouched.
func WriteFiles(outputs []OutputFile) error {
	for _, file := range outputs {
		if existing, err := os.ReadFile(file.Path); err == nil && bytes.Equal(existing, file.Content) {
			continue
		}
		if err := os.MkdirAll(filepath.Dir(file.Path), 0o755); err != nil {
			return errors.Wrapf(err, "create dir %s", filepath.Dir(file.Path))
		}
		if err := os.WriteFile(file.Path, file.Content, 0o644); err != nil {
			return errors.Wrapf(err, "write file %s", file.Path)
		}
	}
	return nil
}
