package channel

import (
	"testing"
	"time"
)

func TestRenderPreamble(t *testing.T) {
	got := renderPreamble(3 * time.Second)
	want := "retry: 3000\n\n"
	if got != want {
		t.Errorf("renderPreamble() = %q, want %q", got, want)
	}
}

func TestRenderMessage(t *testing.T) {
	tests := []struct {
		name    string
		id      int64
		event   string
		payload string
		want    string
	}{
		{
			name:    "unnamed single line",
			id:      1,
			payload: "hello",
			want:    "id: 1\ndata: hello\n\n",
		},
		{
			name:    "named event",
			id:      7,
			event:   "job.done",
			payload: "ok",
			want:    "id: 7\nevent: job.done\ndata: ok\n\n",
		},
		{
			name:    "multiline payload",
			id:      2,
			payload: "line1\nline2",
			want:    "id: 2\ndata: line1\ndata: line2\n\n",
		},
		{
			name:    "crlf payload",
			id:      3,
			payload: "line1\r\nline2",
			want:    "id: 3\ndata: line1\ndata: line2\n\n",
		},
		{
			name:    "empty payload",
			id:      4,
			payload: "",
			want:    "id: 4\ndata: \n\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := renderMessage(tt.id, tt.event, tt.payload)
			if got != tt.want {
				t.Errorf("renderMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEncodePayload(t *testing.T) {
	if got := encodePayload(nil); got != "" {
		t.Errorf("encodePayload(nil) = %q, want empty", got)
	}
	if got := encodePayload("plain"); got != "plain" {
		t.Errorf("encodePayload(string) = %q, want %q", got, "plain")
	}
	if got := encodePayload([]byte("raw")); got != "raw" {
		t.Errorf("encodePayload([]byte) = %q, want %q", got, "raw")
	}

	type payload struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}
	got := encodePayload(payload{Name: "x", Count: 3})
	want := `{"name":"x","count":3}`
	if got != want {
		t.Errorf("encodePayload(struct) = %q, want %q", got, want)
	}
}
