package channel

import "slices"

// Message is one published event as stored in the history buffer. Messages
// are immutable once created.
type Message struct {
	// ID is the monotonically increasing message identifier.
	ID int64
	// Event is the event name, empty for unnamed messages.
	Event string
	// Rendered is the full wire-formatted block for this message.
	Rendered string
}

// history is a bounded, time-ordered ledger of published messages, newest
// last. Callers are responsible for serializing access.
type history struct {
	entries []Message
	limit   int
}

// add appends a message and evicts the oldest entries while the buffer
// exceeds its limit. A limit of zero retains nothing.
func (h *history) add(m Message) {
	h.entries = append(h.entries, m)
	for len(h.entries) > h.limit {
		h.entries = h.entries[1:]
	}
}

// after returns the entries with an id greater than lastID accepted by
// match, in original order. Entries are appended in id order, so a forward
// scan preserves it.
func (h *history) after(lastID int64, match func(Message) bool) []Message {
	var out []Message
	for _, m := range h.entries {
		if m.ID > lastID && match(m) {
			out = append(out, m)
		}
	}
	return out
}

// tail returns the newest n entries accepted by match, in original order.
func (h *history) tail(n int, match func(Message) bool) []Message {
	if n <= 0 {
		return nil
	}
	out := make([]Message, 0, min(n, len(h.entries)))
	for i := len(h.entries) - 1; i >= 0 && len(out) < n; i-- {
		if match(h.entries[i]) {
			out = append(out, h.entries[i])
		}
	}
	slices.Reverse(out)
	return out
}

func (h *history) size() int {
	return len(h.entries)
}

func (h *history) clear() {
	h.entries = nil
}
