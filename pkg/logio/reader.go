// Package logio provides line-oriented reading of access-log files.
package logio

import (
	"bufio"
	"os"
)

// Reader reads lines from a log file.
type Reader struct {
	file *os.File
}

// NewReader opens the given log file for reading.
func NewReader(filePath string) (*Reader, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	return &Reader{file: f}, nil
}

// Close closes the underlying file.
func (r *Reader) Close() error {
	return r.file.Close()
}

// ReadLines reads the file line by line and calls fn for each line,
// without the trailing newline. It stops and returns the first error
// fn reports, otherwise any scanner error.
func (r *Reader) ReadLines(fn func(line string) error) error {
	scanner := bufio.NewScanner(r.file)
	// Reason fields are free text; allow lines well beyond the default
	// scanner limit.
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		if err := fn(scanner.Text()); err != nil {
			return err
		}
	}
	return scanner.Err()
}
