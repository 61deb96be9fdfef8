package domain

// MediaKind represents the detected media kind of an entry
type MediaKind string

const (
	KindVideo MediaKind = "video"
	KindAudio MediaKind = "audio"
)

// Classify decides whether an entry is video or audio content. It is a pure
// function over the entry's metadata and always returns a kind.
//
// Rules, first match wins:
//  1. Any format with a real video codec means video.
//  2. A live stream, or frame dimensions, imply a visual track even when
//     no codec data is present.
//  3. Otherwise audio: the only reliable audio signal is the absence of
//     any video track evidence.
func Classify(e Entry) MediaKind {
	for _, f := range e.Formats {
		if f.HasVideo() {
			return KindVideo
		}
	}
	if e.IsLive || e.Width > 0 || e.Height > 0 {
		return KindVideo
	}
	return KindAudio
}
