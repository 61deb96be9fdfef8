package infrastructure

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yourusername/mdload/internal/domain"
)

func TestCommonArgs_QuietRun(t *testing.T) {
	opts := &domain.ClientOptions{
		Quiet:          true,
		IgnoreErrors:   true,
		OutputTemplate: "downloads/%(title)s - %(id)s.%(ext)s",
	}

	args := commonArgs(opts)

	assert.Equal(t, []string{
		"--quiet", "--no-warnings",
		"--ignore-errors",
		"-o", "downloads/%(title)s - %(id)s.%(ext)s",
	}, args)
}

func TestCommonArgs_VerboseOmitsQuietFlags(t *testing.T) {
	args := commonArgs(&domain.ClientOptions{Quiet: false, IgnoreErrors: true})

	assert.NotContains(t, args, "--quiet")
	assert.NotContains(t, args, "--no-warnings")
}

func TestCommonArgs_AbsentAuthProducesNoFlags(t *testing.T) {
	args := commonArgs(&domain.ClientOptions{})

	assert.NotContains(t, args, "--cookies")
	assert.NotContains(t, args, "--username")
	assert.NotContains(t, args, "--password")
	assert.NotContains(t, args, "--add-header")
}

func TestCommonArgs_AuthFlags(t *testing.T) {
	opts := &domain.ClientOptions{
		CookieFile: "/tmp/cookies.txt",
		Username:   "user",
		Password:   "secret",
	}

	args := commonArgs(opts)

	assert.Equal(t, []string{
		"--cookies", "/tmp/cookies.txt",
		"--username", "user",
		"--password", "secret",
	}, args)
}

func TestCommonArgs_HeadersSortedDeterministically(t *testing.T) {
	opts := &domain.ClientOptions{
		HTTPHeaders: map[string]string{
			"User-Agent":    "MyAgent/1.0",
			"Authorization": "Bearer TOKEN",
		},
	}

	args := commonArgs(opts)

	assert.Equal(t, []string{
		"--add-header", "Authorization:Bearer TOKEN",
		"--add-header", "User-Agent:MyAgent/1.0",
	}, args)
}

func TestDownloadArgs_Video(t *testing.T) {
	cfg := &domain.DownloadConfig{
		Format:      domain.FormatVideo,
		MergeFormat: domain.ContainerMP4,
		Postprocessors: []domain.Postprocessor{
			{Key: domain.PPVideoConvertor, PreferredFormat: domain.ContainerMP4},
		},
	}

	args := DownloadArgs(cfg)

	assert.Contains(t, args, "bestvideo+bestaudio/best")
	assert.Equal(t, []string{
		"-f", "bestvideo+bestaudio/best",
		"--merge-output-format", "mp4",
		"--recode-video", "mp4",
	}, args)
}

func TestDownloadArgs_Audio(t *testing.T) {
	cfg := &domain.DownloadConfig{
		Format: domain.FormatAudio,
		Postprocessors: []domain.Postprocessor{
			{Key: domain.PPExtractAudio, PreferredCodec: domain.CodecMP3, PreferredQuality: domain.MP3Bitrate},
		},
	}

	args := DownloadArgs(cfg)

	assert.Equal(t, []string{
		"-f", "bestaudio/best",
		"--extract-audio",
		"--audio-format", "mp3",
		"--audio-quality", "192K",
	}, args)
}

func TestLastLine(t *testing.T) {
	assert.Equal(t, "ERROR: 403", lastLine([]byte("warning: x\nERROR: 403\n\n")))
	assert.Equal(t, "(no output)", lastLine(nil))
}

func TestNewYTDLPClient_DefaultBinary(t *testing.T) {
	client := NewYTDLPClient("", nil)
	assert.Equal(t, "yt-dlp", client.binary)
}
