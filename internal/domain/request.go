package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/google/uuid"
)

// MediaRequest is the immutable input for one orchestrator run.
type MediaRequest struct {
	RunID       string
	URL         string
	OutDir      string
	Verbose     bool
	Concurrency int

	// Auth/network settings, copied through to the downloader verbatim.
	// Empty values mean "not provided".
	CookieFile string
	Username   string
	Password   string
	Headers    map[string]string
}

// NewMediaRequest creates a request for a single run. The run ID only exists
// for log correlation.
func NewMediaRequest(url, outDir string) *MediaRequest {
	return &MediaRequest{
		RunID:       uuid.New().String(),
		URL:         url,
		OutDir:      outDir,
		Concurrency: 1,
	}
}

// HasAuth reports whether any authentication setting is present.
func (r *MediaRequest) HasAuth() bool {
	return r.CookieFile != "" || r.Username != "" || r.Password != "" || len(r.Headers) > 0
}

// ParseHeaders parses a JSON object string into a flat header map. Values
// that are JSON numbers or booleans are coerced to strings; nested arrays,
// objects and nulls are rejected. An empty input yields a nil map.
func ParseHeaders(s string) (map[string]string, error) {
	if s == "" {
		return nil, nil
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal([]byte(s), &raw); err != nil {
		return nil, fmt.Errorf("headers must be a JSON object: %w", err)
	}

	headers := make(map[string]string, len(raw))
	for k, v := range raw {
		val, err := coerceHeaderValue(v)
		if err != nil {
			return nil, fmt.Errorf("header %q: %w", k, err)
		}
		headers[k] = val
	}
	return headers, nil
}

// coerceHeaderValue renders a scalar JSON value as a string.
func coerceHeaderValue(raw json.RawMessage) (string, error) {
	// Unmarshal leaves the target untouched for JSON null, so reject it
	// before the string probe.
	if string(bytes.TrimSpace(raw)) == "null" {
		return "", fmt.Errorf("value is null")
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, nil
	}

	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String(), nil
	}

	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		return strconv.FormatBool(b), nil
	}

	return "", fmt.Errorf("value %s is not a string, number or boolean", string(raw))
}
