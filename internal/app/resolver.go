package app

import (
	"context"

	"go.uber.org/zap"

	"github.com/yourusername/mdload/internal/domain"
)

// EntryResolver turns a URL into a flat ordered list of downloadable
// entries via the external resolver's non-downloading metadata query.
type EntryResolver struct {
	client domain.MediaClient
	logger *zap.Logger
}

// NewEntryResolver creates a new entry resolver
func NewEntryResolver(client domain.MediaClient, logger *zap.Logger) *EntryResolver {
	return &EntryResolver{
		client: client,
		logger: logger,
	}
}

// Resolve performs the top-level metadata query for a URL. Playlists are
// flattened to their non-null children in source order, duplicates kept; a
// single item becomes a one-element list. Resolution is all-or-nothing: on
// failure no entries are produced.
func (r *EntryResolver) Resolve(ctx context.Context, url string, opts *domain.ClientOptions) ([]domain.Entry, error) {
	meta, err := r.client.ExtractInfo(ctx, url, opts)
	if err != nil {
		return nil, &domain.ResolutionError{Target: url, Err: err}
	}
	if meta == nil {
		return nil, &domain.ResolutionError{Target: url}
	}

	if meta.IsPlaylist() {
		entries := make([]domain.Entry, 0, len(meta.Entries))
		for _, e := range meta.Entries {
			if e == nil {
				continue
			}
			entries = append(entries, *e)
		}
		r.logger.Info("Resolved playlist",
			zap.String("title", meta.DisplayTitle()),
			zap.Int("entries", len(entries)))
		return entries, nil
	}

	r.logger.Info("Resolved single item", zap.String("title", meta.DisplayTitle()))
	return []domain.Entry{meta.Entry}, nil
}

// RefreshDetails re-queries the resolver for one entry whose format list is
// missing, preferring its webpage URL over the bare identifier. The result
// replaces the entry's view for classification only.
func (r *EntryResolver) RefreshDetails(ctx context.Context, entry domain.Entry, opts *domain.ClientOptions) (domain.Entry, error) {
	target := entry.SourceURL()
	if target == "" {
		return entry, &domain.DetailRefreshError{Title: entry.DisplayTitle()}
	}

	meta, err := r.client.ExtractInfo(ctx, target, opts)
	if err != nil {
		return entry, &domain.DetailRefreshError{Title: entry.DisplayTitle(), Err: err}
	}
	if meta == nil {
		return entry, &domain.DetailRefreshError{Title: entry.DisplayTitle()}
	}

	r.logger.Debug("Refreshed entry details",
		zap.String("title", entry.DisplayTitle()),
		zap.Int("formats", len(meta.Formats)))
	return meta.Entry, nil
}
