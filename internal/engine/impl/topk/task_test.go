package topk

import (
	"strings"
	"testing"

	"LogSpectra/internal/logfmt"
	"LogSpectra/internal/model"
	"LogSpectra/internal/netaddr"
)

func mustRecord(t *testing.T, line string) *model.LogRecord {
	t.Helper()
	rec, err := logfmt.ParseLine(line)
	if err != nil {
		t.Fatalf("ParseLine(%q) failed: %v", line, err)
	}
	return rec
}

func ingest(t *testing.T, task *Task, lines ...string) {
	t.Helper()
	for _, line := range lines {
		if err := task.ProcessRecord(mustRecord(t, line)); err != nil {
			t.Fatalf("ProcessRecord failed: %v", err)
		}
	}
}

func TestTopKRanking(t *testing.T) {
	task := New(1, 101)
	ingest(t, task,
		"Jul 18 07:53:23 10.0.0.5:6526 second",
		"Jul 19 08:00:00 10.0.0.9:80 ok",
		"Jul 18 07:53:22 10.0.0.5:6526 first",
	)

	ranks := task.TopK()
	if len(ranks) != 1 {
		t.Fatalf("len(ranks) = %d, want 1", len(ranks))
	}
	top := ranks[0]
	if top.Addr != (netaddr.Addr{10, 0, 0, 5}) || top.Count != 2 {
		t.Fatalf("Top host = %v count=%d, want 10.0.0.5 count=2", top.Addr, top.Count)
	}
	// Entries come back chronologically, not in arrival order.
	if top.Entries[0].Reason != "first" || top.Entries[1].Reason != "second" {
		t.Errorf("Entries out of order: %q then %q", top.Entries[0].Reason, top.Entries[1].Reason)
	}
}

func TestTopKTiebreakLargerIPFirst(t *testing.T) {
	task := New(2, 101)
	ingest(t, task,
		"Jul 18 07:00:00 10.0.0.9:22 a",
		"Jul 18 07:00:01 10.0.0.200:22 b",
	)

	ranks := task.TopK()
	if len(ranks) != 2 {
		t.Fatalf("len(ranks) = %d, want 2", len(ranks))
	}
	// Both hosts have one entry; the numerically larger IP ranks first.
	if ranks[0].Addr != (netaddr.Addr{10, 0, 0, 200}) {
		t.Errorf("Rank 0 = %v, want 10.0.0.200", ranks[0].Addr)
	}
	if ranks[1].Addr != (netaddr.Addr{10, 0, 0, 9}) {
		t.Errorf("Rank 1 = %v, want 10.0.0.9", ranks[1].Addr)
	}
}

func TestTopKFewerHostsThanK(t *testing.T) {
	task := New(5, 101)
	ingest(t, task, "Jul 18 07:00:00 10.0.0.1:22 only one host")

	if ranks := task.TopK(); len(ranks) != 1 {
		t.Errorf("len(ranks) = %d, want 1", len(ranks))
	}
}

func TestWriteReportVerbatimLines(t *testing.T) {
	task := New(1, 101)
	lines := []string{
		"Jul 18 07:53:22 10.0.0.5:6526 first",
		"Jul 18 07:53:23 10.0.0.5:6526 second",
	}
	ingest(t, task, lines...)

	var sb strings.Builder
	if err := task.WriteReport(&sb); err != nil {
		t.Fatalf("WriteReport failed: %v", err)
	}
	want := lines[0] + "\n" + lines[1] + "\n"
	if sb.String() != want {
		t.Errorf("Report = %q, want %q", sb.String(), want)
	}
}
