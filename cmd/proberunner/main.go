package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/garalhogames-hue/HlivePlayer16/internal/resolver"
)

// proberunner resolves a station's status once from the command line, for
// checking a stream server before pointing the service at it.
func main() {
	host := flag.String("host", "cast.garalhogames.com", "stream server host")
	port := flag.String("port", "8000", "stream server port")
	timeout := flag.Duration("timeout", resolver.DefaultTimeout, "per endpoint probe timeout")
	endpoint := flag.String("endpoint", "", "probe a single endpoint path instead of the full walk")
	asJSON := flag.Bool("json", false, "print the normalized status as JSON")
	flag.Parse()

	opts := resolver.Options{
		BaseURL:   fmt.Sprintf("http://%s:%s", *host, *port),
		UserAgent: "HlivePlayer-status-probe/dev",
		Timeout:   *timeout,
	}

	if *endpoint != "" {
		ep, ok := findEndpoint(*endpoint)
		if !ok {
			log.Fatalf("❌ Unknown endpoint %q, known paths:\n%s", *endpoint, knownPaths())
		}
		opts.Endpoints = []resolver.Endpoint{ep}
	}

	log.Printf("🚀 Probing %s (timeout %v per endpoint)...", opts.BaseURL, *timeout)

	r := resolver.New(opts)

	start := time.Now()
	status, err := r.Resolve(context.Background())
	if err != nil {
		log.Fatalf("❌ Probe failed after %v: %v", time.Since(start), err)
	}

	log.Printf("✅ Status resolved in %v", time.Since(start))

	if *asJSON {
		out, _ := json.MarshalIndent(status, "", "  ")
		fmt.Println(string(out))
		return
	}

	log.Printf("   State: %s", status.State)
	log.Printf("   Announcer: %s", status.Announcer)
	log.Printf("   Program: %s", status.Program)
	log.Printf("   Unique listeners: %d", status.UniqueListeners)
	log.Printf("   Resolved at: %s", status.ResolvedAt.Format(time.RFC3339))
}

func findEndpoint(path string) (resolver.Endpoint, bool) {
	for _, ep := range resolver.DefaultEndpoints() {
		if ep.Path == path {
			return ep, true
		}
	}
	return resolver.Endpoint{}, false
}

func knownPaths() string {
	var b strings.Builder
	for _, ep := range resolver.DefaultEndpoints() {
		fmt.Fprintf(&b, "   %s\n", ep.Path)
	}
	return b.String()
}
