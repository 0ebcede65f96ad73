package resolver

// ParserKind names the upstream status format an endpoint answers with.
type ParserKind string

const (
	// ParserStatistics reads the Shoutcast v2 /statistics?json=1 document,
	// a stream list plus top-level copies of the same fields.
	ParserStatistics ParserKind = "shoutcast_statistics"
	// ParserStats reads the flat /stats?json=1 document.
	ParserStats ParserKind = "shoutcast_stats"
	// ParserSeven reads the legacy /7.html comma page.
	ParserSeven ParserKind = "shoutcast_seven"
	// ParserIcecast reads the Icecast /status-json.xsl document.
	ParserIcecast ParserKind = "icecast_status"
)

// Endpoint pairs a status path with the format its body is parsed as.
type Endpoint struct {
	Path   string
	Parser ParserKind
}

// DefaultEndpoints returns the probe order: the richest Shoutcast v2
// document first, then the sid-qualified and bare stats documents, the
// legacy seven page, and the Icecast document last. The first endpoint
// yielding any usable field wins, so the order encodes priority.
func DefaultEndpoints() []Endpoint {
	return []Endpoint{
		{Path: "/statistics?json=1", Parser: ParserStatistics},
		{Path: "/stats?json=1&sid=1", Parser: ParserStats},
		{Path: "/stats?json=1", Parser: ParserStats},
		{Path: "/7.html", Parser: ParserSeven},
		{Path: "/status-json.xsl", Parser: ParserIcecast},
	}
}
