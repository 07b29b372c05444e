package model

// Writer defines a generic interface for writing a task's result to an
// output artifact (e.g. the sorted log dump).
type Writer interface {
	// Write takes a data payload and persists it. The implementation is
	// expected to know how to handle the payload type it receives.
	Write(payload interface{}) error
}
