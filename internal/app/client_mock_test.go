package app

import (
	"context"
	"sync"

	"github.com/yourusername/mdload/internal/domain"
)

// downloadCall records one Download invocation on the mock client
type downloadCall struct {
	Target string
	Config *domain.DownloadConfig
}

// mockMediaClient implements domain.MediaClient for testing
type mockMediaClient struct {
	mu sync.Mutex

	infos       map[string]*domain.Metadata
	infoErrs    map[string]error
	downloadErr map[string]error

	extractCalls []string
	downloads    []downloadCall
}

func newMockMediaClient() *mockMediaClient {
	return &mockMediaClient{
		infos:       make(map[string]*domain.Metadata),
		infoErrs:    make(map[string]error),
		downloadErr: make(map[string]error),
	}
}

func (m *mockMediaClient) ExtractInfo(ctx context.Context, target string, opts *domain.ClientOptions) (*domain.Metadata, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.extractCalls = append(m.extractCalls, target)

	if err, ok := m.infoErrs[target]; ok {
		return nil, err
	}
	return m.infos[target], nil
}

func (m *mockMediaClient) Download(ctx context.Context, target string, cfg *domain.DownloadConfig) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.downloads = append(m.downloads, downloadCall{Target: target, Config: cfg})
	return m.downloadErr[target]
}

func (m *mockMediaClient) downloadTargets() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	targets := make([]string, len(m.downloads))
	for i, d := range m.downloads {
		targets[i] = d.Target
	}
	return targets
}
