package model

import "io"

// Task defines a single, self-contained analysis task over the log
// (e.g. network summary, host graph, top-k ranking).
// This is the interface for the "execution layer".
type Task interface {
	// ProcessRecord folds one parsed record into the task's index.
	// A non-nil error is fatal to the run (e.g. index capacity
	// exhausted); tasks never return retryable errors.
	ProcessRecord(rec *LogRecord) error

	Name() string
}

// Reporter is implemented by tasks that produce a batch report after
// ingestion has finished.
type Reporter interface {
	WriteReport(w io.Writer) error
}
