// Package netsummary aggregates log records by two-octet network
// prefix: total accesses, distinct connecting hosts, and the unique
// host list per network. It answers per-network queries after
// ingestion.
package netsummary

import (
	"fmt"
	"sort"

	"LogSpectra/internal/config"
	"LogSpectra/internal/factory"
	"LogSpectra/internal/hashindex"
	"LogSpectra/internal/model"
	"LogSpectra/internal/netaddr"
)

// DefaultTableSize is the largest prime below 65536. A prime capacity
// spreads the short prefix keys evenly under the two-prime hash.
const DefaultTableSize = 65521

func init() {
	factory.RegisterTask("netsummary", func(cfg *config.Config) (model.Task, error) {
		return New(cfg.Analyzer.NetSummary.TableSize), nil
	})
}

// networkStats is the per-network aggregate record. The unique-IP set
// uses a linear membership scan on insert; per-network host
// cardinality stays small relative to total record count, so the scan
// is cheaper than maintaining an auxiliary index.
type networkStats struct {
	accessCount     int
	connectionCount int
	uniqueIPs       []netaddr.Addr
}

// Task indexes records by network prefix in a fixed-capacity
// open-addressed table.
type Task struct {
	table *hashindex.Table[networkStats]
}

// New creates a network summary task. A non-positive tableSize selects
// DefaultTableSize.
func New(tableSize int) *Task {
	if tableSize <= 0 {
		tableSize = DefaultTableSize
	}
	return &Task{
		table: hashindex.New[networkStats](tableSize, hashindex.TwoPrimeHash),
	}
}

// Name returns the task name used in config and logs.
func (t *Task) Name() string {
	return "netsummary"
}

// ProcessRecord attributes one access to the record's network. The
// access count grows on every record; the connection count only when
// the host was not seen before under this network.
func (t *Task) ProcessRecord(rec *model.LogRecord) error {
	network := netaddr.NetworkPrefix(rec.Addr.String())

	stats, _, err := t.table.FindOrCreate(network)
	if err != nil {
		return fmt.Errorf("network table (capacity %d): %w", t.table.Capacity(), err)
	}

	stats.accessCount++
	for _, ip := range stats.uniqueIPs {
		if ip == rec.Addr {
			return nil
		}
	}
	stats.uniqueIPs = append(stats.uniqueIPs, rec.Addr)
	stats.connectionCount++
	return nil
}

// Summary is the query answer for one network.
type Summary struct {
	Network         string
	AccessCount     int
	ConnectionCount int
	UniqueIPs       []string // ascending numeric order
}

// Summary returns the aggregate for a network prefix, with the unique
// host list sorted ascending by numeric octet comparison. A missing
// network is a query miss, not an error.
func (t *Task) Summary(network string) (*Summary, bool) {
	stats, ok := t.table.Find(network)
	if !ok {
		return nil, false
	}

	ips := make([]netaddr.Addr, len(stats.uniqueIPs))
	copy(ips, stats.uniqueIPs)
	sort.Slice(ips, func(i, j int) bool { return ips[i].Less(ips[j]) })

	list := make([]string, len(ips))
	for i, ip := range ips {
		list[i] = ip.String()
	}

	return &Summary{
		Network:         network,
		AccessCount:     stats.accessCount,
		ConnectionCount: stats.connectionCount,
		UniqueIPs:       list,
	}, true
}

// Networks returns the number of distinct networks seen.
func (t *Task) Networks() int {
	return t.table.Len()
}
