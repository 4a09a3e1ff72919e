package file

import (
	"context"
	"fmt"
	"os"

	"github.com/aretw0/detox-cli/pkg/domain"
)

// FailedSpecs implements ports.FailedSpecsSource on a newline-delimited text file.
type FailedSpecs struct {
	Path string
}

// NewFailedSpecs creates a source reading the record at path.
func NewFailedSpecs(path string) *FailedSpecs {
	return &FailedSpecs{Path: path}
}

// ReadFailedSpecs reads and parses the record.
func (f *FailedSpecs) ReadFailedSpecs(ctx context.Context) ([]string, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrNoFailedSpecs
		}
		return nil, fmt.Errorf("failed to read failed specs: %w", err)
	}
	return domain.ParseFailedSpecs(string(data)), nil
}
