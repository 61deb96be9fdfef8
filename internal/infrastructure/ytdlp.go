package infrastructure

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/yourusername/mdload/internal/domain"
)

// YTDLPClient implements domain.MediaClient by driving the yt-dlp binary.
// exec.Command passes args directly to the process, no shell quoting needed.
type YTDLPClient struct {
	binary string
	logger *zap.Logger

	// Where download progress goes when the run is verbose.
	stdout io.Writer
	stderr io.Writer
}

// NewYTDLPClient creates a client for the given yt-dlp binary path
func NewYTDLPClient(binary string, logger *zap.Logger) *YTDLPClient {
	if binary == "" {
		binary = "yt-dlp"
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &YTDLPClient{
		binary: binary,
		logger: logger,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
}

// ExtractInfo runs a non-downloading metadata query and decodes the JSON
// response into typed metadata. Playlists come back with child entries.
func (c *YTDLPClient) ExtractInfo(ctx context.Context, target string, opts *domain.ClientOptions) (*domain.Metadata, error) {
	args := []string{"--dump-single-json", "--no-download"}
	args = append(args, commonArgs(opts)...)
	args = append(args, target)

	c.logger.Debug("Running metadata query",
		zap.String("cmd", DisplayCommand(c.binary, args...)))

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, c.binary, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("metadata query failed: %w: %s", err, lastLine(stderr.Bytes()))
	}

	out := bytes.TrimSpace(stdout.Bytes())
	if len(out) == 0 {
		return nil, fmt.Errorf("metadata query produced no output")
	}

	var meta domain.Metadata
	if err := json.Unmarshal(out, &meta); err != nil {
		return nil, fmt.Errorf("failed to decode metadata: %w", err)
	}
	return &meta, nil
}

// Download invokes yt-dlp for one entry with its configuration. Progress
// output streams through when the run is verbose and is discarded when
// quiet; stderr is always captured for error context.
func (c *YTDLPClient) Download(ctx context.Context, target string, cfg *domain.DownloadConfig) error {
	args := DownloadArgs(cfg)
	args = append(args, target)

	c.logger.Debug("Running download",
		zap.String("cmd", DisplayCommand(c.binary, args...)))

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, c.binary, args...)
	if cfg.Quiet {
		cmd.Stdout = io.Discard
		cmd.Stderr = &stderr
	} else {
		cmd.Stdout = c.stdout
		cmd.Stderr = io.MultiWriter(c.stderr, &stderr)
	}

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("yt-dlp failed: %w: %s", err, lastLine(stderr.Bytes()))
	}
	return nil
}

// commonArgs assembles the arguments shared by metadata queries and
// downloads. Absent auth fields produce no arguments at all. Headers are
// emitted in sorted key order so command lines are deterministic.
func commonArgs(opts *domain.ClientOptions) []string {
	var args []string

	if opts.Quiet {
		args = append(args, "--quiet", "--no-warnings")
	}
	if opts.IgnoreErrors {
		args = append(args, "--ignore-errors")
	}
	if opts.OutputTemplate != "" {
		args = append(args, "-o", opts.OutputTemplate)
	}
	if opts.CookieFile != "" {
		args = append(args, "--cookies", opts.CookieFile)
	}
	if opts.Username != "" {
		args = append(args, "--username", opts.Username)
	}
	if opts.Password != "" {
		args = append(args, "--password", opts.Password)
	}

	if len(opts.HTTPHeaders) > 0 {
		keys := make([]string, 0, len(opts.HTTPHeaders))
		for k := range opts.HTTPHeaders {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			args = append(args, "--add-header", k+":"+opts.HTTPHeaders[k])
		}
	}

	return args
}

// DownloadArgs translates a download configuration into the full yt-dlp
// argument list, minus the target URL.
func DownloadArgs(cfg *domain.DownloadConfig) []string {
	args := commonArgs(&cfg.ClientOptions)

	if cfg.Format != "" {
		args = append(args, "-f", cfg.Format)
	}
	if cfg.MergeFormat != "" {
		args = append(args, "--merge-output-format", cfg.MergeFormat)
	}

	for _, pp := range cfg.Postprocessors {
		switch pp.Key {
		case domain.PPVideoConvertor:
			args = append(args, "--recode-video", pp.PreferredFormat)
		case domain.PPExtractAudio:
			args = append(args, "--extract-audio")
			if pp.PreferredCodec != "" {
				args = append(args, "--audio-format", pp.PreferredCodec)
			}
			if pp.PreferredQuality != "" {
				args = append(args, "--audio-quality", pp.PreferredQuality+"K")
			}
		}
	}

	return args
}

// lastLine returns the last non-empty line of captured output, used to give
// errors a usable cause without dumping the whole log.
func lastLine(out []byte) string {
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if line := strings.TrimSpace(lines[i]); line != "" {
			return line
		}
	}
	return "(no output)"
}
