package resolver

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/garalhogames-hue/HlivePlayer16/internal/models"
)

// statusFields carries whatever one endpoint payload revealed. A nil member
// means the payload did not carry that datum, which drives the fallback:
// the next endpoint is consulted only when nothing usable came back.
type statusFields struct {
	announcer *string
	program   *string
	listeners *int
	live      *bool
}

// usable reports whether the payload revealed anything worth returning.
// The live flag alone does not count; it only qualifies the other fields.
func (f statusFields) usable() bool {
	return f.announcer != nil || f.program != nil || f.listeners != nil
}

// parseFunc turns one raw endpoint body into extracted fields.
type parseFunc func(body []byte) (statusFields, error)

// parsers dispatches each ParserKind to its format reader. Supporting a new
// server family means one row here and one in DefaultEndpoints.
var parsers = map[ParserKind]parseFunc{
	ParserStatistics: parseStatistics,
	ParserStats:      parseStats,
	ParserSeven:      parseSevenPage,
	ParserIcecast:    parseIcecastStatus,
}

// parseStatistics reads the Shoutcast v2 statistics document. Fields on the
// first stream record win over the top-level copies.
func parseStatistics(body []byte) (statusFields, error) {
	var doc models.ShoutcastStatistics
	if err := json.Unmarshal(body, &doc); err != nil {
		return statusFields{}, fmt.Errorf("failed to parse statistics document: %w", err)
	}

	root := doc.ShoutcastStream
	if len(doc.Streams) > 0 {
		return extractShoutcast(doc.Streams[0], root), nil
	}
	return extractShoutcast(root, root), nil
}

// parseStats reads the flat stats document: same field names, no stream list.
func parseStats(body []byte) (statusFields, error) {
	var doc models.ShoutcastStream
	if err := json.Unmarshal(body, &doc); err != nil {
		return statusFields{}, fmt.Errorf("failed to parse stats document: %w", err)
	}
	return extractShoutcast(doc, doc), nil
}

// extractShoutcast applies the shared Shoutcast precedence, stream record
// before top-level record. Passing the same record twice collapses this to
// the flat layout.
//
// Listener precedence interleaves the levels: a unique count from either
// level beats a current count, since unique is what the player displays.
func extractShoutcast(stream, root models.ShoutcastStream) statusFields {
	var f statusFields

	f.announcer = firstText(stream.DJ, root.DJ)
	f.program = firstText(stream.SongTitle, stream.ServerTitle, root.SongTitle, root.ServerTitle)
	f.listeners = firstCount(stream.UniqueListeners, root.UniqueListeners,
		stream.CurrentListeners, root.CurrentListeners)

	// An explicit status flag from the server overrides the listener
	// heuristic; only the value 1 means on air.
	if flag, ok := pickCount(stream.StreamStatus, root.StreamStatus); ok {
		live := flag == 1
		f.live = &live
	}

	return f
}

// sevenFieldCount is the smallest field count a well formed seven page has:
// listeners, status, peak, max, unique, bitrate, then the track title.
const sevenFieldCount = 7

var htmlTags = regexp.MustCompile(`<[^>]*>`)

// parseSevenPage reads the legacy 7.html page, comma fields wrapped in HTML.
// Commas inside the track title are restored by rejoining everything from
// the seventh field on, which is why encoding/csv cannot read this page.
func parseSevenPage(body []byte) (statusFields, error) {
	text := strings.TrimSpace(htmlTags.ReplaceAllString(string(body), ""))

	parts := strings.Split(text, ",")
	if len(parts) < sevenFieldCount {
		return statusFields{}, fmt.Errorf("seven page has %d fields, need at least %d", len(parts), sevenFieldCount)
	}

	// A non-numeric first field means this is not a status page at all,
	// usually an HTML error page that happens to contain commas.
	listeners, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return statusFields{}, fmt.Errorf("seven page listener field %q is not numeric: %w", parts[0], err)
	}

	f := statusFields{listeners: &listeners}

	title := strings.Trim(strings.TrimSpace(strings.Join(parts[6:], ",")), `"'`)
	if title != "" {
		f.program = &title
	}

	return f, nil
}

// parseIcecastStatus reads the status-json.xsl document. The source entry
// may be a list, a single object, or missing entirely, in which case the
// icestats object itself is the record. A located record always yields a
// listener count, defaulting to 0.
func parseIcecastStatus(body []byte) (statusFields, error) {
	var doc models.IcecastStatus
	if err := json.Unmarshal(body, &doc); err != nil {
		return statusFields{}, fmt.Errorf("failed to parse icecast status document: %w", err)
	}
	if doc.IceStats == nil {
		return statusFields{}, nil
	}

	root := doc.IceStats
	title, serverName, count := root.Title, root.ServerName, root.Listeners
	if len(root.Source) > 0 {
		src := root.Source[0]
		title, serverName, count = src.Title, src.ServerName, src.Listeners
	}

	listeners := 0
	if count.OK {
		listeners = count.Value
	}

	return statusFields{
		program:   firstText(title, serverName),
		listeners: &listeners,
	}, nil
}

// firstText returns the first candidate with visible content. Missing,
// null, and blank values fall through to the next candidate.
func firstText(candidates ...*string) *string {
	for _, c := range candidates {
		if c == nil {
			continue
		}
		if s := strings.TrimSpace(*c); s != "" {
			return &s
		}
	}
	return nil
}

// firstCount returns the first candidate that was actually present. Zero is
// a real count and does not fall through; only absent values do.
func firstCount(candidates ...models.OptionalCount) *int {
	if v, ok := pickCount(candidates...); ok {
		return &v
	}
	return nil
}

func pickCount(candidates ...models.OptionalCount) (int, bool) {
	for _, c := range candidates {
		if c.OK {
			return c.Value, true
		}
	}
	return 0, false
}
