// Package engine drives a single sequential ingestion pass: it reads
// the access log line by line, parses each line, and fans every parsed
// record out to all configured tasks.
//
// There are no workers and no channels here: the whole pipeline is
// insert-and-query over in-memory indexes, and correctness of the
// index internals relies on the absence of concurrent mutation.
package engine

import (
	"fmt"
	"log"

	"LogSpectra/internal/logfmt"
	"LogSpectra/internal/model"
	"LogSpectra/pkg/logio"
)

// Engine feeds parsed log records to a set of analysis tasks.
type Engine struct {
	tasks     []model.Task
	processed int
	skipped   int
}

// New creates an engine over the given tasks.
func New(tasks []model.Task) *Engine {
	return &Engine{tasks: tasks}
}

// IngestFile reads and processes the whole log file. Empty lines are
// ignored; malformed lines are skipped and counted (uniform policy —
// one bad line never aborts the run). A task error is fatal and aborts
// ingestion immediately; records already ingested stay ingested.
func (e *Engine) IngestFile(path string) error {
	reader, err := logio.NewReader(path)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	err = reader.ReadLines(func(line string) error {
		if line == "" {
			return nil
		}
		rec, err := logfmt.ParseLine(line)
		if err != nil {
			e.skipped++
			return nil
		}
		for _, task := range e.tasks {
			if err := task.ProcessRecord(rec); err != nil {
				return fmt.Errorf("task '%s': %w", task.Name(), err)
			}
		}
		e.processed++
		return nil
	})
	if err != nil {
		return err
	}

	if e.skipped > 0 {
		log.Printf("Skipped %d malformed line(s)", e.skipped)
	}
	log.Printf("Ingested %d record(s) from %s", e.processed, path)
	return nil
}

// Processed returns the number of records successfully ingested.
func (e *Engine) Processed() int {
	return e.processed
}

// Skipped returns the number of malformed lines skipped.
func (e *Engine) Skipped() int {
	return e.skipped
}
