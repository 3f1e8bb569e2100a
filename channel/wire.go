package channel

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// pingFrame is the content-free keepalive block. It carries no id or event
// name, so it never advances client Last-Event-ID state.
const pingFrame = "data: \n\n"

// renderPreamble formats the per-connection preamble advertising the client
// reconnect delay.
func renderPreamble(retry time.Duration) string {
	return fmt.Sprintf("retry: %d\n\n", retry.Milliseconds())
}

// renderMessage formats a full SSE message block: the id line, an optional
// event line, one data line per payload line, and a blank-line terminator.
// The result is computed once at publish time and reused verbatim for every
// recipient and for replay, which keeps replays byte-identical.
func renderMessage(id int64, eventName, payload string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "id: %d\n", id)
	if eventName != "" {
		fmt.Fprintf(&b, "event: %s\n", eventName)
	}
	for _, line := range strings.Split(payload, "\n") {
		b.WriteString("data: ")
		b.WriteString(strings.TrimSuffix(line, "\r"))
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
	return b.String()
}

// encodePayload flattens a payload value to text. Strings and byte slices
// pass through untouched; anything else is marshaled to compact JSON.
func encodePayload(data any) string {
	switch v := data.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(b)
	}
}
