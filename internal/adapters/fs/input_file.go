package fs

import (
	"context"
	"fmt"
	"os"
)

// DefaultInputName is the file read when no input path is configured.
const DefaultInputName = "input.txt"

// InputFile implements ports.InputSource by reading a file from disk.
type InputFile struct {
	path string
}

// NewInputFile creates an InputFile for the given path.
func NewInputFile(path string) *InputFile {
	if path == "" {
		path = DefaultInputName
	}
	return &InputFile{path: path}
}

// Path returns the file path.
func (f *InputFile) Path() string {
	return f.path
}

// Load reads the whole file into memory.
func (f *InputFile) Load(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	data, err := os.ReadFile(f.path)
	if err != nil {
		return "", fmt.Errorf("read input %s: %w", f.path, err)
	}
	return string(data), nil
}
