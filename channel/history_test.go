package channel

import "testing"

func matchAll(Message) bool { return true }

func TestHistoryAddEvicts(t *testing.T) {
	h := history{limit: 2}
	h.add(Message{ID: 1})
	h.add(Message{ID: 2})
	h.add(Message{ID: 3})

	if h.size() != 2 {
		t.Fatalf("size() = %d, want 2", h.size())
	}
	got := h.tail(10, matchAll)
	if len(got) != 2 || got[0].ID != 2 || got[1].ID != 3 {
		t.Errorf("tail() = %v, want ids [2 3]", got)
	}
}

func TestHistoryZeroLimitKeepsNothing(t *testing.T) {
	h := history{limit: 0}
	h.add(Message{ID: 1})
	if h.size() != 0 {
		t.Errorf("size() = %d, want 0", h.size())
	}
}

func TestHistoryTail(t *testing.T) {
	h := history{limit: 10}
	for i := int64(1); i <= 5; i++ {
		ev := ""
		if i%2 == 0 {
			ev = "even"
		}
		h.add(Message{ID: i, Event: ev})
	}

	got := h.tail(2, matchAll)
	if len(got) != 2 || got[0].ID != 4 || got[1].ID != 5 {
		t.Errorf("tail(2) = %v, want ids [4 5]", got)
	}

	got = h.tail(10, func(m Message) bool { return m.Event == "even" })
	if len(got) != 2 || got[0].ID != 2 || got[1].ID != 4 {
		t.Errorf("tail(match even) = %v, want ids [2 4]", got)
	}

	if got := h.tail(0, matchAll); got != nil {
		t.Errorf("tail(0) = %v, want nil", got)
	}
	if got := h.tail(-3, matchAll); got != nil {
		t.Errorf("tail(-3) = %v, want nil", got)
	}
}

func TestHistoryAfter(t *testing.T) {
	h := history{limit: 10}
	for i := int64(1); i <= 5; i++ {
		ev := ""
		if i%2 == 0 {
			ev = "even"
		}
		h.add(Message{ID: i, Event: ev})
	}

	got := h.after(2, matchAll)
	if len(got) != 3 || got[0].ID != 3 || got[2].ID != 5 {
		t.Errorf("after(2) = %v, want ids [3 4 5]", got)
	}

	// non-matching entries inside the window never widen the selection
	got = h.after(1, func(m Message) bool { return m.Event == "even" })
	if len(got) != 2 || got[0].ID != 2 || got[1].ID != 4 {
		t.Errorf("after(1, match even) = %v, want ids [2 4]", got)
	}

	if got := h.after(5, matchAll); got != nil {
		t.Errorf("after(5) = %v, want nil when nothing is newer", got)
	}
	if got := h.after(-100, matchAll); len(got) != 5 {
		t.Errorf("after(-100) = %v, want the whole buffer", got)
	}
}

func TestHistoryClear(t *testing.T) {
	h := history{limit: 5}
	h.add(Message{ID: 1})
	h.clear()
	if h.size() != 0 {
		t.Errorf("size() after clear = %d, want 0", h.size())
	}
}
