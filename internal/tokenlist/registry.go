package tokenlist

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"
)

// Entry is one curated token-list record.
type Entry struct {
	Address  string `json:"address"`
	ChainID  int    `json:"chainId"`
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	Decimals uint8  `json:"decimals"`
	LogoURI  string `json:"logoURI"`
}

type tokenListDocument struct {
	Name   string  `json:"name"`
	Tokens []Entry `json:"tokens"`
}

// Registry is a process-scoped snapshot of a curated token list, populated
// lazily on first lookup and reused for the process lifetime. A concurrent
// duplicate fetch is benign: both produce the same snapshot and the second
// write wins. There is no invalidation.
type Registry struct {
	url        string
	httpClient *http.Client

	mu     sync.RWMutex
	byMint map[string]Entry
	loaded bool
}

// NewRegistry creates an unpopulated registry for the given token-list URL.
func NewRegistry(url string, timeout time.Duration) *Registry {
	return &Registry{
		url: url,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		byMint: map[string]Entry{},
	}
}

// Lookup returns the curated entry for a mint, fetching the snapshot on
// first use. A failed fetch returns (nil, false) and will be retried on the
// next lookup rather than caching the failure.
func (r *Registry) Lookup(ctx context.Context, mint string) (*Entry, bool) {
	r.mu.RLock()
	loaded := r.loaded
	if loaded {
		entry, ok := r.byMint[mint]
		r.mu.RUnlock()
		if !ok {
			return nil, false
		}
		return &entry, true
	}
	r.mu.RUnlock()

	if err := r.populate(ctx); err != nil {
		slog.Warn("token list fetch failed", "url", r.url, "error", err)
		return nil, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.byMint[mint]
	if !ok {
		return nil, false
	}
	return &entry, true
}

// Size returns the number of cached entries (0 before first successful fetch).
func (r *Registry) Size() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byMint)
}

func (r *Registry) populate(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.url, nil)
	if err != nil {
		return fmt.Errorf("build token list request: %w", err)
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("fetch token list: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("token list returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read token list body: %w", err)
	}

	var doc tokenListDocument
	if err := json.Unmarshal(body, &doc); err != nil {
		return fmt.Errorf("unmarshal token list: %w", err)
	}

	byMint := make(map[string]Entry, len(doc.Tokens))
	for _, entry := range doc.Tokens {
		if entry.Address == "" {
			continue
		}
		byMint[entry.Address] = entry
	}

	r.mu.Lock()
	r.byMint = byMint
	r.loaded = true
	r.mu.Unlock()

	slog.Info("token list snapshot loaded", "tokens", len(byMint))
	return nil
}
