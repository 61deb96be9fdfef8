package domain

// Format selection expressions handed to the downloader.
const (
	// FormatVideo requests the best video stream merged with the best
	// audio stream, falling back to the best combined stream.
	FormatVideo = "bestvideo+bestaudio/best"

	// FormatAudio requests the best audio-only stream, falling back to
	// the best overall stream.
	FormatAudio = "bestaudio/best"
)

// Target containers and codecs.
const (
	ContainerMP4 = "mp4"
	CodecMP3     = "mp3"

	// MP3Bitrate is the fixed audio extraction bitrate in kbps.
	MP3Bitrate = "192"
)

// Postprocessor directive keys, matching the downloader's own naming.
const (
	PPVideoConvertor = "FFmpegVideoConvertor"
	PPExtractAudio   = "FFmpegExtractAudio"
)

// Postprocessor is one post-processing directive for the downloader.
type Postprocessor struct {
	Key              string
	PreferredFormat  string
	PreferredCodec   string
	PreferredQuality string
}

// DownloadConfig is the per-entry configuration bundle consumed by exactly
// one download invocation. It is built fresh for each entry and never
// mutated after construction.
type DownloadConfig struct {
	ClientOptions

	// Format is the format-selection expression.
	Format string

	// MergeFormat, when set, directs the downloader to merge separate
	// streams into this container.
	MergeFormat string

	Postprocessors []Postprocessor
}

// Kind reports which media kind this configuration was built for, derived
// from its directives.
func (c *DownloadConfig) Kind() MediaKind {
	if c.MergeFormat != "" {
		return KindVideo
	}
	return KindAudio
}
