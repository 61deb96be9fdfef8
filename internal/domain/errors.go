package domain

import "fmt"

// ResolutionError means the top-level metadata query failed or returned
// nothing. It is fatal for the run: no entries are processed.
type ResolutionError struct {
	Target string
	Err    error
}

func (e *ResolutionError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("no metadata could be resolved for %s", e.Target)
	}
	return fmt.Sprintf("failed to resolve %s: %v", e.Target, e.Err)
}

func (e *ResolutionError) Unwrap() error { return e.Err }

// DetailRefreshError means the per-entry metadata re-query failed. It is
// recovered locally: classification falls back to video.
type DetailRefreshError struct {
	Title string
	Err   error
}

func (e *DetailRefreshError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("no detailed metadata for %q", e.Title)
	}
	return fmt.Sprintf("failed to refresh details for %q: %v", e.Title, e.Err)
}

func (e *DetailRefreshError) Unwrap() error { return e.Err }

// DownloadError means one entry's download invocation failed. It is
// recovered at batch level and does not affect sibling entries.
type DownloadError struct {
	Title string
	Err   error
}

func (e *DownloadError) Error() string {
	return fmt.Sprintf("download failed for %q: %v", e.Title, e.Err)
}

func (e *DownloadError) Unwrap() error { return e.Err }
