package models

import (
	"strconv"
	"strings"
)

// OptionalCount is an integer field that status pages send as a JSON
// number, a quoted number, null, or not at all. Server builds disagree on
// the encoding, so every variant decodes without failing the payload.
type OptionalCount struct {
	Value int
	OK    bool
}

// UnmarshalJSON accepts numbers and numeric strings. Null, empty, and
// non-numeric values leave the field unset instead of erroring, so one
// odd field never discards an otherwise good document.
func (c *OptionalCount) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	s = strings.Trim(s, `"`)
	if s == "" || s == "null" {
		return nil
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		f, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil {
			return nil
		}
		n = int(f)
	}

	c.Value = n
	c.OK = true
	return nil
}
