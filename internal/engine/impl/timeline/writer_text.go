package timeline

import (
	"bufio"
	"fmt"
	"log"
	"os"

	"LogSpectra/internal/model"
)

// TextWriter handles writing the sorted record dump to a text file.
type TextWriter struct {
	path string
}

// NewTextWriter creates a new text writer for the sorted dump.
func NewTextWriter(path string) model.Writer {
	return &TextWriter{path: path}
}

func (w *TextWriter) Write(payload interface{}) error {
	list, ok := payload.(*List)
	if !ok {
		return fmt.Errorf("invalid payload type for TextWriter: expected *timeline.List, got %T", payload)
	}

	file, err := os.Create(w.path)
	if err != nil {
		return fmt.Errorf("failed to create dump file '%s': %w", w.path, err)
	}
	defer file.Close()

	buf := bufio.NewWriter(file)
	if _, err := list.WriteTo(buf); err != nil {
		return fmt.Errorf("failed to write dump file '%s': %w", w.path, err)
	}
	if err := buf.Flush(); err != nil {
		return fmt.Errorf("failed to flush dump file '%s': %w", w.path, err)
	}

	log.Printf("Successfully wrote %d sorted record(s) to %s", list.Len(), w.path)
	return nil
}
