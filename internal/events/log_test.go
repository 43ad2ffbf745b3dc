package events

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/amishk599/careernav/internal/model"
)

func TestLogRecorder_Record_writesStructuredLine(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	r := NewLogRecorder(logger)

	r.Record(model.Event{Kind: model.EventFilterChanged, Value: "free", At: time.Now()})

	out := buf.String()
	for _, want := range []string{"dashboard event", "kind=filter_changed", "value=free", "at="} {
		if !strings.Contains(out, want) {
			t.Errorf("log output %q missing %q", out, want)
		}
	}
}

func TestLogRecorder_Count(t *testing.T) {
	var buf bytes.Buffer
	r := NewLogRecorder(slog.New(slog.NewTextHandler(&buf, nil)))

	r.Record(model.Event{Kind: model.EventTabChanged, Value: "skills"})
	r.Record(model.Event{Kind: model.EventTabChanged, Value: "certifications"})
	r.Record(model.Event{Kind: model.EventJobSelected, Value: "job-1"})

	if got := r.Count(model.EventTabChanged); got != 2 {
		t.Errorf("Count(tab_changed) = %d, want 2", got)
	}
	if got := r.Count(model.EventSortChanged); got != 0 {
		t.Errorf("Count(sort_changed) = %d, want 0", got)
	}
	if strings.Contains(buf.String(), "at=") {
		t.Error("zero timestamp should be omitted")
	}
}

func TestNopRecorder_Record(t *testing.T) {
	var r model.EventRecorder = NewNopRecorder()
	r.Record(model.Event{Kind: model.EventProfileReset})
}
