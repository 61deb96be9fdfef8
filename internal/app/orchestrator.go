package app

import (
	"context"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"

	"github.com/yourusername/mdload/internal/domain"
)

// EntryState represents where an entry is in the per-entry pipeline
type EntryState string

const (
	StateResolved      EntryState = "resolved"
	StateClassifying   EntryState = "classifying"
	StateDetailRefresh EntryState = "detail_refresh"
	StateConfigured    EntryState = "configured"
	StateDownloading   EntryState = "downloading"
	StateCompleted     EntryState = "completed"
	StateFailed        EntryState = "failed"
)

// Outcome records the terminal result of one entry. Failed is terminal and
// never retried.
type Outcome struct {
	Index int
	Title string
	Kind  domain.MediaKind
	State EntryState
	Err   error
}

// BatchReport collects per-entry outcomes for one run, in resolution order
// regardless of completion order.
type BatchReport struct {
	RunID    string
	Outcomes []Outcome
}

// Succeeded returns the number of completed entries
func (r *BatchReport) Succeeded() int {
	n := 0
	for _, o := range r.Outcomes {
		if o.State == StateCompleted {
			n++
		}
	}
	return n
}

// Failed returns the number of failed entries
func (r *BatchReport) Failed() int {
	return len(r.Outcomes) - r.Succeeded()
}

// BatchOrchestrator drives the resolve → classify → configure → download
// pipeline, isolating per-entry failures so one bad item does not abort the
// batch.
type BatchOrchestrator struct {
	req      *domain.MediaRequest
	client   domain.MediaClient
	resolver *EntryResolver
	builder  *ConfigBuilder
	logger   *zap.Logger
}

// NewBatchOrchestrator creates a new batch orchestrator
func NewBatchOrchestrator(req *domain.MediaRequest, client domain.MediaClient, logger *zap.Logger) *BatchOrchestrator {
	return &BatchOrchestrator{
		req:      req,
		client:   client,
		resolver: NewEntryResolver(client, logger),
		builder:  NewConfigBuilder(req),
		logger:   logger,
	}
}

// Run resolves the request URL once and processes every resolved entry.
// Resolution failure is fatal and produces no report; after that, each
// entry is attempted exactly once and errors are recorded per entry.
func (o *BatchOrchestrator) Run(ctx context.Context) (*BatchReport, error) {
	opts := o.builder.ClientOptions()

	entries, err := o.resolver.Resolve(ctx, o.req.URL, opts)
	if err != nil {
		return nil, err
	}

	report := &BatchReport{
		RunID:    o.req.RunID,
		Outcomes: make([]Outcome, len(entries)),
	}

	if o.req.Concurrency > 1 {
		o.runParallel(ctx, entries, opts, report)
	} else {
		for i, entry := range entries {
			report.Outcomes[i] = o.processEntry(ctx, i, entry, opts)
		}
	}

	o.logger.Info("Batch finished",
		zap.String("run_id", report.RunID),
		zap.Int("entries", len(report.Outcomes)),
		zap.Int("succeeded", report.Succeeded()),
		zap.Int("failed", report.Failed()))

	return report, nil
}

// runParallel processes entries under a bounded worker pool. Each outcome
// writes to its own report slot, so completion order does not matter.
func (o *BatchOrchestrator) runParallel(ctx context.Context, entries []domain.Entry, opts *domain.ClientOptions, report *BatchReport) {
	sem := semaphore.NewWeighted(int64(o.req.Concurrency))
	var wg sync.WaitGroup

	for i, entry := range entries {
		if err := sem.Acquire(ctx, 1); err != nil {
			report.Outcomes[i] = Outcome{
				Index: i,
				Title: entry.DisplayTitle(),
				State: StateFailed,
				Err:   err,
			}
			continue
		}

		wg.Add(1)
		go func(i int, entry domain.Entry) {
			defer wg.Done()
			defer sem.Release(1)
			report.Outcomes[i] = o.processEntry(ctx, i, entry, opts)
		}(i, entry)
	}

	wg.Wait()
}

// processEntry takes one entry through classification, configuration and
// the download invocation. Any failure past classification is terminal for
// this entry only.
func (o *BatchOrchestrator) processEntry(ctx context.Context, idx int, entry domain.Entry, opts *domain.ClientOptions) Outcome {
	title := entry.DisplayTitle()
	out := Outcome{Index: idx, Title: title, State: StateClassifying}

	o.logger.Info("Processing entry",
		zap.Int("index", idx),
		zap.String("title", title))

	if !entry.HasFormats() {
		out.State = StateDetailRefresh
	}
	kind := o.classify(ctx, entry, opts)
	out.Kind = kind

	cfg := o.builder.Build(kind)
	out.State = StateConfigured

	o.logger.Info("Detected media kind",
		zap.String("title", title),
		zap.String("kind", string(kind)),
		zap.String("format", cfg.Format))

	out.State = StateDownloading
	if err := o.client.Download(ctx, entry.SourceURL(), cfg); err != nil {
		out.State = StateFailed
		out.Err = &domain.DownloadError{Title: title, Err: err}
		o.logger.Error("Download failed",
			zap.String("title", title),
			zap.Error(err))
		return out
	}

	out.State = StateCompleted
	o.logger.Info("Entry completed", zap.String("title", title))
	return out
}

// classify decides the entry's kind, refreshing its details first when the
// format list is missing. A failed refresh falls back to video, the richer
// target, and only logs the cause.
func (o *BatchOrchestrator) classify(ctx context.Context, entry domain.Entry, opts *domain.ClientOptions) domain.MediaKind {
	if entry.HasFormats() {
		return domain.Classify(entry)
	}

	detailed, err := o.resolver.RefreshDetails(ctx, entry, opts)
	if err != nil {
		o.logger.Warn("Detail refresh failed, assuming video",
			zap.String("title", entry.DisplayTitle()),
			zap.Error(err))
		return domain.KindVideo
	}

	return domain.Classify(detailed)
}
