package timeline

import (
	"LogSpectra/internal/config"
	"LogSpectra/internal/factory"
	"LogSpectra/internal/model"
	"LogSpectra/internal/netaddr"
)

// DefaultOutputPath is where the sorted dump lands when the config
// leaves the path unset.
const DefaultOutputPath = "SortedData.txt"

func init() {
	factory.RegisterTask("timeline", func(cfg *config.Config) (model.Task, error) {
		return New(cfg.Analyzer.Timeline.OutputPath), nil
	})
}

// Task collects records into a list for sorting, dumping and range
// queries.
type Task struct {
	list   *List
	writer model.Writer
}

// New creates a timeline task writing its sorted dump to outputPath.
// An empty path selects DefaultOutputPath.
func New(outputPath string) *Task {
	if outputPath == "" {
		outputPath = DefaultOutputPath
	}
	return &Task{
		list:   &List{},
		writer: NewTextWriter(outputPath),
	}
}

// Name returns the task name used in config and logs.
func (t *Task) Name() string {
	return "timeline"
}

// ProcessRecord appends the record in arrival order.
func (t *Task) ProcessRecord(rec *model.LogRecord) error {
	t.list.Append(rec)
	return nil
}

// Sort orders the collected records by (IP, time, reason).
func (t *Task) Sort() {
	t.list.Sort()
}

// WriteSorted persists the sorted dump through the task's writer.
// Call after Sort.
func (t *Task) WriteSorted() error {
	return t.writer.Write(t.list)
}

// Range returns the records with IP in [lo, hi] in descending sort
// order. Call after Sort.
func (t *Task) Range(lo, hi netaddr.Addr) []*model.LogRecord {
	return t.list.Range(lo, hi)
}

// Len returns the number of collected records.
func (t *Task) Len() int {
	return t.list.Len()
}
