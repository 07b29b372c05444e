// Package hostgraph builds the hierarchical network -> host -> entry
// view of the log: one open-addressed table of hosts (full IP, no
// port) owning their entry lists, and one of networks counting unique
// hosts. Its report names the busiest network(s) and the noisiest
// host(s), with every tie at the maximum reported.
package hostgraph

import (
	"fmt"
	"io"

	"LogSpectra/internal/config"
	"LogSpectra/internal/factory"
	"LogSpectra/internal/hashindex"
	"LogSpectra/internal/model"
	"LogSpectra/internal/netaddr"
)

// DefaultTableSize is a prime sized for logs with up to roughly a
// million distinct hosts.
const DefaultTableSize = 1000003

// initialEntryCap is the starting capacity of a host's entry list;
// growth beyond it is amortized doubling via append.
const initialEntryCap = 10

func init() {
	factory.RegisterTask("hostgraph", func(cfg *config.Config) (model.Task, error) {
		return New(cfg.Analyzer.HostGraph.HostTableSize, cfg.Analyzer.HostGraph.NetworkTableSize), nil
	})
}

type hostNode struct {
	entries []*model.LogRecord
}

type netNode struct {
	uniqueHostCount int
}

// Task holds the host and network indexes.
type Task struct {
	hosts    *hashindex.Table[hostNode]
	networks *hashindex.Table[netNode]
}

// New creates a host graph task. Non-positive sizes select
// DefaultTableSize.
func New(hostTableSize, networkTableSize int) *Task {
	if hostTableSize <= 0 {
		hostTableSize = DefaultTableSize
	}
	if networkTableSize <= 0 {
		networkTableSize = DefaultTableSize
	}
	return &Task{
		hosts:    hashindex.New[hostNode](hostTableSize, hashindex.PolyHash),
		networks: hashindex.New[netNode](networkTableSize, hashindex.PolyHash),
	}
}

// Name returns the task name used in config and logs.
func (t *Task) Name() string {
	return "hostgraph"
}

// ProcessRecord files the record under its host, creating the host on
// first sight and crediting its network with one more unique host.
func (t *Task) ProcessRecord(rec *model.LogRecord) error {
	ip := rec.Addr.String()

	host, created, err := t.hosts.FindOrCreate(ip)
	if err != nil {
		return fmt.Errorf("host table (capacity %d): %w", t.hosts.Capacity(), err)
	}
	if created {
		host.entries = make([]*model.LogRecord, 0, initialEntryCap)

		network, _, err := t.networks.FindOrCreate(netaddr.NetworkPrefix(ip))
		if err != nil {
			return fmt.Errorf("network table (capacity %d): %w", t.networks.Capacity(), err)
		}
		network.uniqueHostCount++
	}

	host.entries = append(host.entries, rec)
	return nil
}

// BusiestNetworks returns the maximum unique-host count and every
// network prefix reaching it, in index slot order.
func (t *Task) BusiestNetworks() (int, []string) {
	max := hashindex.MaxBy(t.networks, func(n *netNode) int { return n.uniqueHostCount })
	prefixes := hashindex.KeysWhere(t.networks, func(n *netNode) bool { return n.uniqueHostCount == max })
	return max, prefixes
}

// NoisiestHosts returns the maximum entry count and every host IP
// reaching it, in index slot order.
func (t *Task) NoisiestHosts() (int, []string) {
	max := hashindex.MaxBy(t.hosts, func(h *hostNode) int { return len(h.entries) })
	ips := hashindex.KeysWhere(t.hosts, func(h *hostNode) bool { return len(h.entries) == max })
	return max, ips
}

// HostEntries returns the entries recorded for one host IP, in arrival
// order.
func (t *Task) HostEntries(ip string) ([]*model.LogRecord, bool) {
	host, ok := t.hosts.Find(ip)
	if !ok {
		return nil, false
	}
	return host.entries, true
}

// WriteReport prints the busiest network prefixes one per line, a
// blank separator line, then the noisiest host IPs one per line.
func (t *Task) WriteReport(w io.Writer) error {
	_, prefixes := t.BusiestNetworks()
	for _, prefix := range prefixes {
		if _, err := fmt.Fprintf(w, "%s\n", prefix); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}

	_, ips := t.NoisiestHosts()
	for _, ip := range ips {
		if _, err := fmt.Fprintf(w, "%s\n", ip); err != nil {
			return err
		}
	}
	return nil
}
