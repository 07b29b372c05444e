// Package logfmt parses access-log lines of the form
//
//	<Month3> <Day> <HH:MM:SS> <IP>[:<Port>] <Reason...>
//
// e.g. "Jul 18 07:53:22 235.99.27.158:6526 Failed password for admin".
package logfmt

import (
	"fmt"
	"strconv"
	"strings"

	"LogSpectra/internal/model"
	"LogSpectra/internal/netaddr"
)

// months is the fixed month-abbreviation table. Matching is
// case-sensitive; an unknown token yields the -1 sentinel rather than
// a parse fault, so records with odd month spellings still flow
// through (their SortKey is meaningless but grouping by IP is not).
var months = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// MonthIndex returns 1-12 for a known 3-letter month abbreviation and
// -1 otherwise.
func MonthIndex(s string) int {
	for i, m := range months {
		if m == s {
			return i + 1
		}
	}
	return -1
}

// SortKey folds a date/time into one monotonic value using a flat
// 31-days-per-month multiplier. Valid for ordering within a single
// year only; the log format has no year field.
func SortKey(month, day, hour, min, sec int) int64 {
	return ((((int64(month)*31+int64(day))*24+int64(hour))*60+int64(min))*60 + int64(sec))
}

// nextToken extracts the next space-delimited token starting at *pos
// and advances *pos past the separator. It returns the rest of the
// line when no further space exists.
func nextToken(s string, pos *int) string {
	if *pos >= len(s) {
		return ""
	}
	start := *pos
	if i := strings.IndexByte(s[start:], ' '); i >= 0 {
		*pos = start + i + 1
		return s[start : start+i]
	}
	*pos = len(s)
	return s[start:]
}

// ParseLine decomposes one log line into a LogRecord. The reason field
// is the verbatim remainder of the line after the address token,
// including internal spaces; an empty reason is valid. Malformed lines
// return an error and the caller decides the skip policy.
func ParseLine(line string) (*model.LogRecord, error) {
	pos := 0
	monthStr := nextToken(line, &pos)
	dayStr := nextToken(line, &pos)
	timeStr := nextToken(line, &pos)
	hostPort := nextToken(line, &pos)

	if monthStr == "" || dayStr == "" || timeStr == "" || hostPort == "" {
		return nil, fmt.Errorf("short line: need month, day, time and address")
	}

	day, err := strconv.Atoi(dayStr)
	if err != nil {
		return nil, fmt.Errorf("invalid day %q: %w", dayStr, err)
	}

	// Time is fixed-width "HH:MM:SS" with positional field extraction.
	if len(timeStr) != 8 || timeStr[2] != ':' || timeStr[5] != ':' {
		return nil, fmt.Errorf("invalid time %q: expected HH:MM:SS", timeStr)
	}
	hour, err := strconv.Atoi(timeStr[0:2])
	if err != nil {
		return nil, fmt.Errorf("invalid hour in %q: %w", timeStr, err)
	}
	min, err := strconv.Atoi(timeStr[3:5])
	if err != nil {
		return nil, fmt.Errorf("invalid minute in %q: %w", timeStr, err)
	}
	sec, err := strconv.Atoi(timeStr[6:8])
	if err != nil {
		return nil, fmt.Errorf("invalid second in %q: %w", timeStr, err)
	}

	addr, port, err := netaddr.ParseHostPort(hostPort)
	if err != nil {
		return nil, fmt.Errorf("invalid address token %q: %w", hostPort, err)
	}

	month := MonthIndex(monthStr)

	return &model.LogRecord{
		Month:   month,
		Day:     day,
		Hour:    hour,
		Min:     min,
		Sec:     sec,
		SortKey: SortKey(month, day, hour, min, sec),
		Addr:    addr,
		Port:    port,
		Reason:  line[pos:],
		Raw:     line,
	}, nil
}
