package auth

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v4"
	jsoniter "github.com/json-iterator/go"

	"github.com/peoplesmarkets/media/netutil"
	"github.com/peoplesmarkets/media/retry"
)

// DefaultRefreshInterval is the minimum staleness tolerated before the cached key set is refetched, the floor
// named by spec §4.3 ("refresh interval ≥ 2 minutes").
const DefaultRefreshInterval = 2 * time.Minute

// DefaultFetchTimeout bounds a single JWKS round trip (§5 "verifier refresh: 5s").
const DefaultFetchTimeout = 5 * time.Second

type jsonWebKey struct {
	Kid string `json:"kid"`
	Kty string `json:"kty"`
	N   string `json:"n"`
	E   string `json:"e"`
}

type jsonWebKeySet struct {
	Keys []jsonWebKey `json:"keys"`
}

// KeySetFetcher fetches the raw JWKS document from the identity provider.
type KeySetFetcher interface {
	Fetch(ctx context.Context) (*jsonWebKeySet, error)
}

// HTTPKeySetFetcher fetches a JWKS document over HTTP. 'Host', when non-empty, overrides the request's Host header
// so the call can traverse a private network that only recognises the public hostname (§4.3, mirroring the
// original service's fixed 'reqwest::header::HOST' override).
type HTTPKeySetFetcher struct {
	Client *http.Client
	URL    string
	Host   string
}

// NewHTTPKeySetFetcher builds a fetcher whose client uses the teacher's 'netutil.NewHTTPTransport' with a
// request-level timeout, rather than 'http.DefaultClient', so the JWKS round trip honours spec §5's 5s bound.
func NewHTTPKeySetFetcher(url, host string, timeouts netutil.HTTPTimeouts) *HTTPKeySetFetcher {
	transport := netutil.NewHTTPTransport(nil, timeouts)

	return &HTTPKeySetFetcher{
		Client: &http.Client{Transport: transport, Timeout: DefaultFetchTimeout},
		URL:    url,
		Host:   host,
	}
}

// Fetch implements 'KeySetFetcher'.
func (f *HTTPKeySetFetcher) Fetch(ctx context.Context) (*jsonWebKeySet, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("auth: build jwks request: %w", err)
	}

	if f.Host != "" {
		req.Host = f.Host
	}

	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("auth: fetch jwks: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("auth: fetch jwks: unexpected status %d", resp.StatusCode)
	}

	var set jsonWebKeySet

	if err := jsoniter.ConfigCompatibleWithStandardLibrary.NewDecoder(resp.Body).Decode(&set); err != nil {
		return nil, fmt.Errorf("auth: decode jwks: %w", err)
	}

	return &set, nil
}

// keySetCache fetches and caches a JWKS document, refreshing it no more often than every 'refreshInterval'. The
// refresh is synchronous: a caller that finds the cache stale waits for its own fetch. The stale cached document is
// served only if that refresh attempt fails, so an identity-provider outage degrades verification of newly rotated
// keys, not of already-cached ones.
type keySetCache struct {
	fetcher         KeySetFetcher
	refreshInterval time.Duration

	mu        sync.Mutex
	keys      map[string]*jsonWebKey
	fetchedAt time.Time
}

func newKeySetCache(fetcher KeySetFetcher, refreshInterval time.Duration) *keySetCache {
	if refreshInterval < DefaultRefreshInterval {
		refreshInterval = DefaultRefreshInterval
	}

	return &keySetCache{fetcher: fetcher, refreshInterval: refreshInterval}
}

func (c *keySetCache) snapshot() (keys map[string]*jsonWebKey, fresh bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.keys, c.keys != nil && time.Since(c.fetchedAt) < c.refreshInterval
}

func (c *keySetCache) key(ctx context.Context, kid string) (*jsonWebKey, error) {
	keys, fresh := c.snapshot()

	if fresh {
		if key, ok := keys[kid]; ok {
			return key, nil
		}
	}

	// The fetch runs without holding 'c.mu', so concurrent callers are not serialised behind one refresh; each caller
	// whose snapshot is stale (or lacks 'kid') performs and waits for its own fetch, and falls back to 'keys' only if
	// that fetch fails.
	set, err := c.fetcher.Fetch(ctx)
	if err != nil {
		if key, ok := keys[kid]; ok {
			return key, nil
		}

		return nil, err
	}

	refreshed := make(map[string]*jsonWebKey, len(set.Keys))

	for i := range set.Keys {
		refreshed[set.Keys[i].Kid] = &set.Keys[i]
	}

	c.mu.Lock()
	c.keys = refreshed
	c.fetchedAt = time.Now()
	c.mu.Unlock()

	key, ok := refreshed[kid]
	if !ok {
		return nil, fmt.Errorf("auth: no key with kid %q in key set", kid)
	}

	return key, nil
}

// refreshWithRetry is a background-refresh helper for callers that want to warm the cache eagerly rather than on
// first request; it reuses the teacher's plain retry-loop-with-log-callback shape rather than a second bespoke
// backoff implementation.
func (c *keySetCache) refreshWithRetry(ctx context.Context, log retry.LogFn) error {
	return retry.ExponentialWithContext(ctx, 5, 500*time.Millisecond, func() error {
		set, err := c.fetcher.Fetch(ctx)
		if err != nil {
			return err
		}

		refreshed := make(map[string]*jsonWebKey, len(set.Keys))

		for i := range set.Keys {
			refreshed[set.Keys[i].Kid] = &set.Keys[i]
		}

		c.mu.Lock()
		c.keys = refreshed
		c.fetchedAt = time.Now()
		c.mu.Unlock()

		return nil
	}, log)
}

var _ jwt.Keyfunc = (*Verifier)(nil).keyfunc
