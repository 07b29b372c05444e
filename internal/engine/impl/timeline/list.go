// Package timeline keeps every record in a doubly linked list, sorts
// it by (IP, time, reason) with a merge sort, and answers descending
// IP-range queries over the sorted sequence.
package timeline

import (
	"io"

	"LogSpectra/internal/model"
	"LogSpectra/internal/netaddr"
)

type node struct {
	rec  *model.LogRecord
	prev *node
	next *node
}

// List is a doubly linked list of log records in insertion order until
// Sort is called.
type List struct {
	head   *node
	tail   *node
	length int
}

// Append adds a record at the tail.
func (l *List) Append(rec *model.LogRecord) {
	n := &node{rec: rec}
	if l.head == nil {
		l.head = n
	} else {
		l.tail.next = n
		n.prev = l.tail
	}
	l.tail = n
	l.length++
}

// Len returns the number of records in the list.
func (l *List) Len() int {
	return l.length
}

// less orders records by IP ascending, then time, then reason. The
// composite is a strict total order on distinct records up to exact
// duplicates, which the stable merge keeps in input order.
func less(a, b *model.LogRecord) bool {
	if c := a.Addr.Compare(b.Addr); c != 0 {
		return c < 0
	}
	if a.SortKey != b.SortKey {
		return a.SortKey < b.SortKey
	}
	return a.Reason < b.Reason
}

// Sort orders the list with a recursive midpoint-split merge sort.
func (l *List) Sort() {
	l.head = mergeSort(l.head)

	// Rebuild prev links and the tail pointer in one pass.
	var prev *node
	for n := l.head; n != nil; n = n.next {
		n.prev = prev
		prev = n
	}
	l.tail = prev
}

func mergeSort(head *node) *node {
	if head == nil || head.next == nil {
		return head
	}

	// Split at the midpoint via slow/fast walkers.
	slow, fast := head, head
	for fast != nil && fast.next != nil {
		fast = fast.next.next
		if fast != nil {
			slow = slow.next
		}
	}
	second := slow.next
	slow.next = nil

	return merge(mergeSort(head), mergeSort(second))
}

// merge is a stable two-pointer merge: on ties the left (earlier
// input) element goes first.
func merge(a, b *node) *node {
	var head, tail *node
	appendNode := func(n *node) {
		if head == nil {
			head = n
		} else {
			tail.next = n
		}
		tail = n
	}

	for a != nil && b != nil {
		if less(a.rec, b.rec) {
			next := a.next
			appendNode(a)
			a = next
		} else {
			next := b.next
			appendNode(b)
			b = next
		}
	}
	for ; a != nil; a = a.next {
		appendNode(a)
	}
	for ; b != nil; b = b.next {
		appendNode(b)
	}
	if tail != nil {
		tail.next = nil
	}
	return head
}

// Range returns the records whose IP lies in [lo, hi], in descending
// sort order. An inverted bound pair is swapped. Must be called after
// Sort.
func (l *List) Range(lo, hi netaddr.Addr) []*model.LogRecord {
	loKey, hiKey := lo.Uint32(), hi.Uint32()
	if loKey > hiKey {
		loKey, hiKey = hiKey, loKey
	}

	// Lower bound: first node with IP >= loKey.
	start := l.head
	for start != nil && start.rec.Addr.Uint32() < loKey {
		start = start.next
	}
	if start == nil {
		return nil
	}

	// Upper bound: first node after start with IP > hiKey; the match
	// set ends at its predecessor.
	end := start
	var last *node
	for end != nil && end.rec.Addr.Uint32() <= hiKey {
		last = end
		end = end.next
	}
	if last == nil {
		return nil
	}

	var out []*model.LogRecord
	for n := last; n != nil; n = n.prev {
		out = append(out, n.rec)
		if n == start {
			break
		}
	}
	return out
}

// WriteTo dumps the raw lines newline-joined, with no trailing newline
// after the last record. It implements io.WriterTo.
func (l *List) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for n := l.head; n != nil; n = n.next {
		if n != l.head {
			k, err := io.WriteString(w, "\n")
			total += int64(k)
			if err != nil {
				return total, err
			}
		}
		k, err := io.WriteString(w, n.rec.Raw)
		total += int64(k)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
