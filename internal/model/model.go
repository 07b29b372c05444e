package model

import "LogSpectra/internal/netaddr"

// LogRecord holds the fields parsed from a single access-log line.
// It is the canonical type flowing from the parser into every
// aggregation task.
type LogRecord struct {
	Month int // 1-12, or -1 when the month token is unknown
	Day   int
	Hour  int
	Min   int
	Sec   int

	// SortKey is a monotonic composite of the date/time fields using a
	// flat 31-days-per-month multiplier. It orders records within a
	// single year only; the log format carries no year, so no calendar
	// arithmetic is attempted.
	SortKey int64

	Addr   netaddr.Addr
	Port   int
	Reason string // remainder of the line, verbatim; may be empty

	// Raw is the original line byte-for-byte, preserved so reports can
	// reproduce input lines exactly.
	Raw string
}
