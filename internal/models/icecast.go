package models

import (
	"bytes"
	"encoding/json"
)

// IcecastSource is one mount entry under icestats. Icecast emits a single
// object when one mount is active and a list when several are.
type IcecastSource struct {
	ServerName *string       `json:"server_name"`
	Title      *string       `json:"title"`
	Listeners  OptionalCount `json:"listeners"`
}

// IcecastSourceList accepts both encodings of the source entry.
type IcecastSourceList []IcecastSource

func (l *IcecastSourceList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	if data[0] == '[' {
		var sources []IcecastSource
		if err := json.Unmarshal(data, &sources); err != nil {
			return err
		}
		*l = sources
		return nil
	}

	var one IcecastSource
	if err := json.Unmarshal(data, &one); err != nil {
		return err
	}
	*l = IcecastSourceList{one}
	return nil
}

// IcecastRoot is the icestats object. Its own title and listener fields act
// as the fallback record when no source entry is present.
type IcecastRoot struct {
	ServerName *string           `json:"server_name"`
	Title      *string           `json:"title"`
	Listeners  OptionalCount     `json:"listeners"`
	Source     IcecastSourceList `json:"source"`
}

// IcecastStatus is the /status-json.xsl document.
type IcecastStatus struct {
	IceStats *IcecastRoot `json:"icestats"`
}
