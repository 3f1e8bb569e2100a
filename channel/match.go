package channel

import "path/filepath"

// matchEvent reports whether an event name passes a filter. An empty filter
// matches every name. Entries match by exact equality or, failing that, by
// glob pattern (e.g. "job:*"). Live fan-out and history replay both gate on
// this predicate so the two paths can never disagree.
func matchEvent(filter []string, eventName string) bool {
	if len(filter) == 0 {
		return true
	}
	for _, f := range filter {
		if f == eventName {
			return true
		}
		if ok, err := filepath.Match(f, eventName); err == nil && ok {
			return true
		}
	}
	return false
}
