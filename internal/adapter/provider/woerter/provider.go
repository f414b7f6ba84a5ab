package woerter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"net/url"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/heartmarshall/wortschatz-backend/internal/domain"
	woerterparser "github.com/heartmarshall/wortschatz-backend/internal/parser/woerter"
)

const defaultBaseURL = "https://www.woerter.net/"

var browserHeaders = map[string]string{
	"User-Agent":      "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/115.0.0.0 Safari/537.36",
	"Accept":          "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8",
	"Accept-Language": "de-DE,de;q=0.9,en;q=0.8",
}

// PageCache stores raw lookup pages by word.
type PageCache interface {
	GetPage(ctx context.Context, word string) (string, bool, error)
	SetPage(ctx context.Context, word, html string) error
}

// Config controls request pacing.
type Config struct {
	BaseURL    string
	Timeout    time.Duration
	MinDelay   time.Duration
	MaxDelay   time.Duration
	RetryDelay time.Duration
}

// DefaultConfig returns the pacing used against the live site.
func DefaultConfig() Config {
	return Config{
		BaseURL:    defaultBaseURL,
		Timeout:    30 * time.Second,
		MinDelay:   1200 * time.Millisecond,
		MaxDelay:   2500 * time.Millisecond,
		RetryDelay: 3 * time.Second,
	}
}

// Provider fetches and parses woerter.net lookup pages.
type Provider struct {
	cfg        Config
	httpClient *http.Client
	parser     *woerterparser.Parser
	cache      PageCache
	log        *slog.Logger
}

// NewProvider creates a Provider. cache may be nil.
func NewProvider(cfg Config, cache PageCache, logger *slog.Logger) *Provider {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	log := logger.With("adapter", "woerter")
	return &Provider{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		parser:     woerterparser.New(woerterparser.WithLogger(log)),
		cache:      cache,
		log:        log,
	}
}

// NewProviderWithURL creates a Provider without request delays (for testing).
func NewProviderWithURL(baseURL string, logger *slog.Logger) *Provider {
	return NewProvider(Config{BaseURL: baseURL, Timeout: 10 * time.Second}, nil, logger)
}

// FetchPage returns the raw lookup page for word.
// Returns domain.ErrNotFound if the site answers 404.
func (p *Provider) FetchPage(ctx context.Context, word string) (string, error) {
	if p.cache != nil {
		page, ok, err := p.cache.GetPage(ctx, word)
		if err != nil {
			p.log.WarnContext(ctx, "page cache read failed", slog.String("word", word), slog.String("error", err.Error()))
		} else if ok {
			p.log.DebugContext(ctx, "page cache hit", slog.String("word", word))
			return page, nil
		}
	}

	reqURL, err := p.lookupURL(word)
	if err != nil {
		return "", fmt.Errorf("woerter: build url: %w", err)
	}

	if err := p.wait(ctx, p.randomDelay()); err != nil {
		return "", err
	}

	p.log.DebugContext(ctx, "woerter request", slog.String("word", word))

	resp, err := p.doWithRetry(ctx, reqURL, word)
	if err != nil {
		p.log.ErrorContext(ctx, "woerter request failed", slog.String("word", word), slog.String("error", err.Error()))
		return "", fmt.Errorf("woerter: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", fmt.Errorf("woerter: word %q: %w", word, domain.ErrNotFound)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("woerter: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("woerter: read body: %w", err)
	}
	page := string(body)

	if p.cache != nil {
		if err := p.cache.SetPage(ctx, word, page); err != nil {
			p.log.WarnContext(ctx, "page cache write failed", slog.String("word", word), slog.String("error", err.Error()))
		}
	}

	return page, nil
}

// FetchEntry fetches and parses the lookup page for word.
func (p *Provider) FetchEntry(ctx context.Context, word string) (domain.WordEntry, error) {
	page, err := p.FetchPage(ctx, word)
	if err != nil {
		return domain.WordEntry{}, err
	}
	entry, err := p.parser.Parse(page)
	if err != nil {
		return domain.WordEntry{}, fmt.Errorf("woerter: %w", err)
	}
	return entry, nil
}

// FetchEntries fetches words one at a time. Per-word failures are joined
// into the returned error; entries that succeeded are still returned.
func (p *Provider) FetchEntries(ctx context.Context, words []string) ([]domain.WordEntry, error) {
	p.log.InfoContext(ctx, "fetching word entries", slog.Int("count", len(words)))

	entries := make([]domain.WordEntry, 0, len(words))
	var errs []error

	for i, word := range words {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}

		entry, err := p.FetchEntry(ctx, word)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", word, err))
			continue
		}
		entries = append(entries, entry)

		p.log.DebugContext(ctx, "word entry fetched",
			slog.String("word", word),
			slog.String("pos", entry.Grammar.PartOfSpeech.String()),
			slog.Int("progress", i+1),
		)
	}

	p.log.InfoContext(ctx, "word entries fetched",
		slog.Int("fetched", len(entries)),
		slog.Int("failed", len(errs)),
	)

	return entries, errors.Join(errs...)
}

func (p *Provider) lookupURL(word string) (string, error) {
	u, err := url.Parse(p.cfg.BaseURL)
	if err != nil {
		return "", err
	}
	q := u.Query()
	q.Set("w", word)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func (p *Provider) newRequest(ctx context.Context, reqURL string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}
	for k, v := range browserHeaders {
		req.Header.Set(k, v)
	}
	return req, nil
}

// statusError is a response status worth one more attempt.
type statusError struct{ code int }

func (e *statusError) Error() string { return fmt.Sprintf("unexpected status %d", e.code) }

// doWithRetry executes the request with a single retry on 429, 5xx or network errors.
func (p *Provider) doWithRetry(ctx context.Context, reqURL, word string) (*http.Response, error) {
	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(p.cfg.RetryDelay), 1),
		ctx,
	)

	op := func() (*http.Response, error) {
		req, err := p.newRequest(ctx, reqURL)
		if err != nil {
			return nil, backoff.Permanent(err)
		}
		resp, err := p.httpClient.Do(req)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, backoff.Permanent(ctxErr)
			}
			return nil, err
		}
		if retryableStatus(resp.StatusCode) {
			resp.Body.Close()
			return nil, &statusError{code: resp.StatusCode}
		}
		return resp, nil
	}

	notify := func(err error, after time.Duration) {
		p.log.WarnContext(ctx, "woerter retry",
			slog.String("word", word),
			slog.String("reason", err.Error()),
			slog.Duration("after", after),
		)
	}

	return backoff.RetryNotifyWithData(op, policy, notify)
}

func retryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= 500
}

func (p *Provider) randomDelay() time.Duration {
	lo, hi := p.cfg.MinDelay, p.cfg.MaxDelay
	if hi <= lo {
		return lo
	}
	return lo + rand.N(hi-lo+1)
}

func (p *Provider) wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
