package ratelimit

import (
	"strings"
)

// MatchEndpoint returns the endpoint rule for a request, or nil when the
// default limit applies.
//
// Rule paths match in three ways, tried in order:
//   - exactly ("/render")
//   - by segment, where "*" matches any single segment ("/sessions/*/export/pdf")
//   - by prefix, for paths ending in "/" ("/drafts/")
func MatchEndpoint(path string, method string, configs []EndpointConfig) *EndpointConfig {
	// Health checks are never limited
	if path == "/health" && method == "GET" {
		return &EndpointConfig{Path: path, Method: method}
	}

	for i := range configs {
		if configs[i].Method == method && configs[i].Path == path {
			return &configs[i]
		}
	}

	for i := range configs {
		if configs[i].Method == method && strings.Contains(configs[i].Path, "*") && matchSegments(configs[i].Path, path) {
			return &configs[i]
		}
	}

	for i := range configs {
		c := &configs[i]
		if c.Method == method && strings.HasSuffix(c.Path, "/") && strings.HasPrefix(path, c.Path) {
			return c
		}
	}

	return nil
}

func matchSegments(pattern, path string) bool {
	want := strings.Split(strings.Trim(pattern, "/"), "/")
	got := strings.Split(strings.Trim(path, "/"), "/")
	if len(want) != len(got) {
		return false
	}
	for i := range want {
		if want[i] != "*" && want[i] != got[i] {
			return false
		}
	}
	return true
}
