package domain

import "context"

// ClientOptions is the configuration bundle shared by every call into the
// external resolver/downloader: logging verbosity, auth transport and the
// output template. Absent auth fields are omitted from the invocation,
// never sent as empty placeholders.
type ClientOptions struct {
	Quiet          bool
	IgnoreErrors   bool
	OutputTemplate string
	CookieFile     string
	Username       string
	Password       string
	HTTPHeaders    map[string]string
}

// MediaClient is the external resolver/downloader capability. The core only
// configures and invokes it; fetching, protocol negotiation and transcoding
// happen on the other side of this interface.
type MediaClient interface {
	// ExtractInfo performs a non-downloading metadata query for a URL or
	// bare identifier. The result is either a single item or a playlist
	// with child entries.
	ExtractInfo(ctx context.Context, target string, opts *ClientOptions) (*Metadata, error)

	// Download fetches one entry using the given per-entry configuration,
	// returning an error on unrecoverable failure.
	Download(ctx context.Context, target string, cfg *DownloadConfig) error
}
