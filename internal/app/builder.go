package app

import (
	"path/filepath"

	"github.com/yourusername/mdload/internal/domain"
)

// outputTemplate is the downloader's per-entry file naming pattern,
// relative to the output directory.
const outputTemplate = "%(title)s - %(id)s.%(ext)s"

// ConfigBuilder assembles per-entry download configurations from the
// request-level settings. Construction is pure data assembly and cannot
// fail given a valid request.
type ConfigBuilder struct {
	req *domain.MediaRequest
}

// NewConfigBuilder creates a new config builder
func NewConfigBuilder(req *domain.MediaRequest) *ConfigBuilder {
	return &ConfigBuilder{req: req}
}

// ClientOptions returns the base options shared by every resolver and
// downloader call of this run: verbosity, sibling-error tolerance, output
// template and the auth settings copied through verbatim. Absent auth
// fields stay empty and are omitted by the client.
func (b *ConfigBuilder) ClientOptions() *domain.ClientOptions {
	opts := &domain.ClientOptions{
		Quiet:          !b.req.Verbose,
		IgnoreErrors:   true,
		OutputTemplate: filepath.Join(b.req.OutDir, outputTemplate),
		CookieFile:     b.req.CookieFile,
		Username:       b.req.Username,
		Password:       b.req.Password,
	}

	if len(b.req.Headers) > 0 {
		headers := make(map[string]string, len(b.req.Headers))
		for k, v := range b.req.Headers {
			headers[k] = v
		}
		opts.HTTPHeaders = headers
	}

	return opts
}

// Build produces the download configuration for one entry of the given
// kind. Video entries request the best video+audio streams merged into an
// MP4 container; audio entries request the best audio-only stream extracted
// to MP3 at a fixed bitrate.
func (b *ConfigBuilder) Build(kind domain.MediaKind) *domain.DownloadConfig {
	cfg := &domain.DownloadConfig{
		ClientOptions: *b.ClientOptions(),
	}

	if kind == domain.KindVideo {
		cfg.Format = domain.FormatVideo
		cfg.MergeFormat = domain.ContainerMP4
		cfg.Postprocessors = []domain.Postprocessor{
			{
				Key:             domain.PPVideoConvertor,
				PreferredFormat: domain.ContainerMP4,
			},
		}
		return cfg
	}

	cfg.Format = domain.FormatAudio
	cfg.Postprocessors = []domain.Postprocessor{
		{
			Key:              domain.PPExtractAudio,
			PreferredCodec:   domain.CodecMP3,
			PreferredQuality: domain.MP3Bitrate,
		},
	}
	return cfg
}
