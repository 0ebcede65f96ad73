package resolver

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/garalhogames-hue/HlivePlayer16/internal/logger"
	"github.com/garalhogames-hue/HlivePlayer16/internal/models"
)

// DefaultTimeout bounds each endpoint attempt. A slow endpoint must not eat
// the whole request budget, there are up to four more behind it.
const DefaultTimeout = 5 * time.Second

const defaultUserAgent = "HlivePlayer-status/dev"

// Options configures a StatusResolver. Zero values fall back to defaults,
// only BaseURL is required.
type Options struct {
	// BaseURL is the stream server root, e.g. "http://cast.example.com:8000".
	BaseURL string
	// UserAgent identifies this service in the station's access logs.
	UserAgent string
	// Timeout bounds each individual endpoint attempt.
	Timeout time.Duration
	// Endpoints overrides the probe order, mainly for tests.
	Endpoints []Endpoint
}

// StatusResolver fetches the current stream status by walking the known
// status endpoints in priority order and normalizing the first usable
// answer. It holds no mutable state after construction, so a single
// instance serves concurrent requests.
type StatusResolver struct {
	client    *resty.Client
	baseURL   string
	endpoints []Endpoint
	timeout   time.Duration
	log       *logger.Logger
}

// New creates a resolver for the given stream server.
func New(opts Options) *StatusResolver {
	if opts.UserAgent == "" {
		opts.UserAgent = defaultUserAgent
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if len(opts.Endpoints) == 0 {
		opts.Endpoints = DefaultEndpoints()
	}

	client := resty.New()
	client.SetRetryCount(0)
	client.SetHeader("User-Agent", opts.UserAgent)
	client.SetHeader("Cache-Control", "no-cache")
	client.SetHeader("Pragma", "no-cache")

	return &StatusResolver{
		client:    client,
		baseURL:   strings.TrimSuffix(opts.BaseURL, "/"),
		endpoints: opts.Endpoints,
		timeout:   opts.Timeout,
		log:       logger.GetGlobalLogger().WithComponent("resolver"),
	}
}

// Resolve walks the endpoints in order and returns the first usable status.
// Endpoints that fail to fetch, fail to parse, or parse to nothing are
// skipped. When all of them are exhausted the result is a *ResolutionError
// carrying the last failure.
func (r *StatusResolver) Resolve(ctx context.Context) (*models.StreamStatus, error) {
	var lastErr error

	for _, ep := range r.endpoints {
		body, err := r.probe(ctx, ep)
		if err != nil {
			lastErr = err
			r.log.Debugf("endpoint %s failed: %v", ep.Path, err)
			continue
		}

		parse, ok := parsers[ep.Parser]
		if !ok {
			lastErr = fmt.Errorf("no parser registered for kind %q", ep.Parser)
			r.log.Warnf("endpoint %s skipped: %v", ep.Path, lastErr)
			continue
		}

		fields, err := parse(body)
		if err != nil {
			lastErr = err
			r.log.Debugf("endpoint %s unreadable: %v", ep.Path, err)
			continue
		}
		if !fields.usable() {
			r.log.Debugf("endpoint %s answered but carried no status fields", ep.Path)
			continue
		}

		r.log.Debugf("endpoint %s resolved the status", ep.Path)
		return buildStatus(fields, time.Now()), nil
	}

	return nil, &ResolutionError{Attempts: len(r.endpoints), LastErr: lastErr}
}

// probe fetches one endpoint body under its own timeout. The deadline is
// per attempt, so a hanging endpoint costs at most r.timeout before the
// next one is tried.
func (r *StatusResolver) probe(ctx context.Context, ep Endpoint) ([]byte, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	resp, err := r.client.R().
		SetContext(attemptCtx).
		SetHeader("Accept", acceptFor(ep.Parser)).
		Get(r.baseURL + ep.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", ep.Path, err)
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("%s returned status %d", ep.Path, resp.StatusCode())
	}

	return resp.Body(), nil
}

func acceptFor(kind ParserKind) string {
	if kind == ParserSeven {
		return "text/html, text/plain"
	}
	return "application/json"
}
