package domain

// NoCodec is the sentinel the resolver uses for a format that carries no
// video track.
const NoCodec = "none"

// Format describes one downloadable format of an entry, as reported by the
// resolver's metadata query.
type Format struct {
	FormatID   string `json:"format_id,omitempty"`
	Ext        string `json:"ext,omitempty"`
	VideoCodec string `json:"vcodec,omitempty"`
	AudioCodec string `json:"acodec,omitempty"`
}

// HasVideo reports whether this format carries a video track.
func (f Format) HasVideo() bool {
	return f.VideoCodec != "" && f.VideoCodec != NoCodec
}

// Entry is one resolved downloadable unit: a single item, or one child of a
// playlist. It is decoded from the resolver's metadata response and consumed
// once by the orchestrator.
type Entry struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	URL        string   `json:"url,omitempty"`
	WebpageURL string   `json:"webpage_url,omitempty"`
	Formats    []Format `json:"formats,omitempty"`
	IsLive     bool     `json:"is_live,omitempty"`
	Width      int      `json:"width,omitempty"`
	Height     int      `json:"height,omitempty"`
}

// DisplayTitle returns the entry title, falling back to the identifier and
// then to "untitled".
func (e Entry) DisplayTitle() string {
	if e.Title != "" {
		return e.Title
	}
	if e.ID != "" {
		return e.ID
	}
	return "untitled"
}

// SourceURL returns the best target to hand to the downloader: the webpage
// URL when known, then the direct URL, then the bare identifier.
func (e Entry) SourceURL() string {
	if e.WebpageURL != "" {
		return e.WebpageURL
	}
	if e.URL != "" {
		return e.URL
	}
	return e.ID
}

// HasFormats reports whether the entry already carries format descriptors.
// Playlist children often arrive without them and need a detail refresh
// before classification.
func (e Entry) HasFormats() bool {
	return len(e.Formats) > 0
}

// Metadata is the resolver's response to a non-downloading query: either a
// single item (the embedded Entry fields) or a playlist with child entries.
// Playlist children may be null when the resolver could not probe them.
type Metadata struct {
	Entry
	Entries []*Entry `json:"entries,omitempty"`
}

// IsPlaylist reports whether the metadata describes a playlist.
func (m *Metadata) IsPlaylist() bool {
	return len(m.Entries) > 0
}
