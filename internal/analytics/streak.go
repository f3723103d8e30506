package analytics

import (
	"sort"
	"time"
)

// Streaks computes consecutive-day check-in runs from a set of calendar
// dates. current is the length of the run ending at the most recent date;
// longest is the maximum run length anywhere in the history. Duplicate dates
// are deduplicated, so callers may pass raw rows.
//
// Uses island-and-gap grouping: with dates sorted descending and ranked from
// 0, the key day+rank is constant across a consecutive run, so each distinct
// key identifies one run.
func Streaks(dates []time.Time) (current, longest int) {
	if len(dates) == 0 {
		return 0, 0
	}

	seen := make(map[int]struct{}, len(dates))
	days := make([]int, 0, len(dates))
	for _, d := range dates {
		n := dayNumber(d)
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		days = append(days, n)
	}

	sort.Sort(sort.Reverse(sort.IntSlice(days)))

	groups := make(map[int]int)
	for rank, day := range days {
		groups[day+rank]++
	}

	current = groups[days[0]]
	for _, size := range groups {
		if size > longest {
			longest = size
		}
	}
	return current, longest
}

// dayNumber maps a timestamp to its calendar day ordinal, ignoring the time
// component.
func dayNumber(t time.Time) int {
	y, m, d := t.Date()
	return int(time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix() / 86400)
}
