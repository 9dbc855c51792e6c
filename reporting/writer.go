package reporting

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ReportWriter defines the interface for writing reports to various destinations
type ReportWriter interface {
	Write(content string) error
}

// FileWriter writes reports to a file
type FileWriter struct {
	path string
}

// NewFileWriter creates a new file writer
func NewFileWriter(path string) *FileWriter {
	return &FileWriter{path: path}
}

// Write writes the content to the file, creating its directory if needed
func (fw *FileWriter) Write(content string) error {
	if err := os.MkdirAll(filepath.Dir(fw.path), 0755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", fw.path, err)
	}
	return os.WriteFile(fw.path, []byte(content), 0644)
}

// StreamWriter writes reports to a stream, one report per call
type StreamWriter struct {
	w io.Writer
}

// NewStreamWriter creates a writer appending to w
func NewStreamWriter(w io.Writer) *StreamWriter {
	return &StreamWriter{w: w}
}

// NewStdoutWriter creates a writer printing to stdout
func NewStdoutWriter() *StreamWriter {
	return NewStreamWriter(os.Stdout)
}

// Write writes the content followed by a newline
func (sw *StreamWriter) Write(content string) error {
	_, err := fmt.Fprintln(sw.w, content)
	return err
}
