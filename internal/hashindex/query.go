package hashindex

// MaxBy scans the whole table once and returns the maximum of
// sel(record) over all occupied slots, or 0 for an empty table.
func MaxBy[V any](t *Table[V], sel func(*V) int) int {
	max := 0
	t.Range(func(_ string, v *V) bool {
		if n := sel(v); n > max {
			max = n
		}
		return true
	})
	return max
}

// KeysWhere scans the whole table and collects, in slot order, every
// key whose record satisfies pred. Combined with MaxBy this reports
// all ties at a maximum rather than one arbitrary winner.
func KeysWhere[V any](t *Table[V], pred func(*V) bool) []string {
	var keys []string
	t.Range(func(key string, v *V) bool {
		if pred(v) {
			keys = append(keys, key)
		}
		return true
	})
	return keys
}
