package models

// ShoutcastStream is one mount entry in a Shoutcast status document. Older
// builds repeat the same field names at the document root, so the type
// doubles as the flat layout.
type ShoutcastStream struct {
	DJ               *string       `json:"dj"`
	SongTitle        *string       `json:"songtitle"`
	ServerTitle      *string       `json:"servertitle"`
	UniqueListeners  OptionalCount `json:"uniquelisteners"`
	CurrentListeners OptionalCount `json:"currentlisteners"`
	StreamStatus     OptionalCount `json:"streamstatus"`
	Bitrate          OptionalCount `json:"bitrate"`
}

// ShoutcastStatistics is the /statistics?json=1 document: a stream list
// plus top-level copies of the per-stream fields.
type ShoutcastStatistics struct {
	ShoutcastStream
	Streams []ShoutcastStream `json:"streams"`
}
