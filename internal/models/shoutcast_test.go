package models

import (
	"encoding/json"
	"testing"
)

func TestShoutcastStatisticsDecode(t *testing.T) {
	payload := `{
		"totalstreams": 1,
		"dj": "Top DJ",
		"uniquelisteners": 3,
		"streams": [
			{"dj": null, "songtitle": "Song A", "uniquelisteners": "5", "streamstatus": 1}
		]
	}`

	var doc ShoutcastStatistics
	if err := json.Unmarshal([]byte(payload), &doc); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	// Top-level fields land on the embedded record.
	if doc.DJ == nil || *doc.DJ != "Top DJ" {
		t.Errorf("expected top-level dj 'Top DJ', got %v", doc.DJ)
	}
	if !doc.UniqueListeners.OK || doc.UniqueListeners.Value != 3 {
		t.Errorf("expected top-level uniquelisteners 3, got {%d %v}",
			doc.UniqueListeners.Value, doc.UniqueListeners.OK)
	}

	if len(doc.Streams) != 1 {
		t.Fatalf("expected 1 stream, got %d", len(doc.Streams))
	}
	stream := doc.Streams[0]
	if stream.DJ != nil {
		t.Errorf("expected stream dj to stay nil for JSON null, got %q", *stream.DJ)
	}
	if stream.SongTitle == nil || *stream.SongTitle != "Song A" {
		t.Errorf("expected stream songtitle 'Song A', got %v", stream.SongTitle)
	}
	if !stream.UniqueListeners.OK || stream.UniqueListeners.Value != 5 {
		t.Errorf("expected quoted stream uniquelisteners 5, got {%d %v}",
			stream.UniqueListeners.Value, stream.UniqueListeners.OK)
	}
	if !stream.StreamStatus.OK || stream.StreamStatus.Value != 1 {
		t.Errorf("expected streamstatus 1, got {%d %v}",
			stream.StreamStatus.Value, stream.StreamStatus.OK)
	}
}
