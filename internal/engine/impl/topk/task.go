// Package topk ranks hosts by access frequency and reports the K most
// active ones, reproducing each of their log lines verbatim.
package topk

import (
	"fmt"
	"io"
	"sort"

	"LogSpectra/internal/config"
	"LogSpectra/internal/factory"
	"LogSpectra/internal/hashindex"
	"LogSpectra/internal/model"
	"LogSpectra/internal/netaddr"
)

// DefaultK is the number of hosts reported when the config leaves K
// unset.
const DefaultK = 5

// DefaultTableSize matches the host-graph host table.
const DefaultTableSize = 1000003

func init() {
	factory.RegisterTask("topk", func(cfg *config.Config) (model.Task, error) {
		return New(cfg.Analyzer.TopK.K, cfg.Analyzer.TopK.TableSize), nil
	})
}

type hostActivity struct {
	addr    netaddr.Addr
	entries []*model.LogRecord
}

// Task groups records by full source IP (port ignored) in a
// fixed-capacity open-addressed table.
type Task struct {
	table *hashindex.Table[hostActivity]
	k     int
}

// New creates a top-k task. Non-positive k selects DefaultK, and a
// non-positive tableSize selects DefaultTableSize.
func New(k, tableSize int) *Task {
	if k <= 0 {
		k = DefaultK
	}
	if tableSize <= 0 {
		tableSize = DefaultTableSize
	}
	return &Task{
		table: hashindex.New[hostActivity](tableSize, hashindex.PolyHash),
		k:     k,
	}
}

// Name returns the task name used in config and logs.
func (t *Task) Name() string {
	return "topk"
}

// K returns the configured result size.
func (t *Task) K() int {
	return t.k
}

// ProcessRecord appends the record to its host's entry list.
func (t *Task) ProcessRecord(rec *model.LogRecord) error {
	activity, created, err := t.table.FindOrCreate(rec.Addr.String())
	if err != nil {
		return fmt.Errorf("host table (capacity %d): %w", t.table.Capacity(), err)
	}
	if created {
		activity.addr = rec.Addr
	}
	activity.entries = append(activity.entries, rec)
	return nil
}

// HostRank is one ranked host with its entries in chronological order.
type HostRank struct {
	Addr    netaddr.Addr
	Count   int
	Entries []*model.LogRecord
}

// TopK materializes every host, orders by access count descending with
// the numerically larger IP winning ties, and returns the first
// min(K, hosts) entries. Each host's entries are ordered by time, then
// reason.
func (t *Task) TopK() []HostRank {
	ranks := make([]HostRank, 0, t.table.Len())
	t.table.Range(func(_ string, a *hostActivity) bool {
		entries := make([]*model.LogRecord, len(a.entries))
		copy(entries, a.entries)
		sort.SliceStable(entries, func(i, j int) bool {
			if entries[i].SortKey != entries[j].SortKey {
				return entries[i].SortKey < entries[j].SortKey
			}
			return entries[i].Reason < entries[j].Reason
		})
		ranks = append(ranks, HostRank{Addr: a.addr, Count: len(entries), Entries: entries})
		return true
	})

	sort.Slice(ranks, func(i, j int) bool {
		if ranks[i].Count != ranks[j].Count {
			return ranks[i].Count > ranks[j].Count
		}
		// Tiebreak favors the numerically larger address.
		return ranks[i].Addr.Compare(ranks[j].Addr) > 0
	})

	if len(ranks) > t.k {
		ranks = ranks[:t.k]
	}
	return ranks
}

// WriteReport prints the original log lines of the top K hosts, most
// frequent host first.
func (t *Task) WriteReport(w io.Writer) error {
	for _, rank := range t.TopK() {
		for _, rec := range rank.Entries {
			if _, err := fmt.Fprintf(w, "%s\n", rec.Raw); err != nil {
				return err
			}
		}
	}
	return nil
}
