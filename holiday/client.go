// Package holiday fetches public holidays and turns them into credited
// non-workday entries.
package holiday

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"time"

	"github.com/coocood/freecache"
	"github.com/goccy/go-json"

	"arbeitszeit/timesheet"
)

type Holiday struct {
	Name string         `json:"name"`
	Date timesheet.Date `json:"date"`
	Note string         `json:"note,omitempty"`
}

// Store persists raw API responses between runs.
type Store interface {
	GetCache(key string) ([]byte, error)
	SetCache(key string, value []byte, ttl time.Duration) error
}

type ClientConfig struct {
	Endpoint string
	State    string
	Timeout  time.Duration
	CacheTTL time.Duration
	// MemoSize is the in-process cache size in MiB.
	MemoSize int
}

type Client interface {
	// Fetch returns the holidays of year, ascending by date.
	Fetch(ctx context.Context, year int) ([]Holiday, error)
}

type apiClient struct {
	cfg    ClientConfig
	http   *http.Client
	memo   *freecache.Cache
	store  Store
	logger *slog.Logger
}

// freecache rejects entries above 1/1024 of its size. A year response is
// about 1KiB.
const defaultMemoSize = 4

func NewClient(cfg ClientConfig, store Store, logger *slog.Logger) Client {
	if cfg.MemoSize <= 0 {
		cfg.MemoSize = defaultMemoSize
	}
	return &apiClient{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
		memo:   freecache.NewCache(cfg.MemoSize * 1024 * 1024),
		store:  store,
		logger: logger,
	}
}

// apiHoliday is one value of the feiertage-api.de response object, which is
// keyed by holiday name.
type apiHoliday struct {
	Datum   string `json:"datum"`
	Hinweis string `json:"hinweis"`
}

func (c *apiClient) Fetch(ctx context.Context, year int) ([]Holiday, error) {
	key := fmt.Sprintf("holidays:%d:%s", year, c.cfg.State)

	raw, err := c.cached(key)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		raw, err = c.request(ctx, year)
		if err != nil {
			return nil, err
		}
		c.remember(key, raw)
	}
	return decode(raw)
}

func (c *apiClient) cached(key string) ([]byte, error) {
	if v, err := c.memo.Get([]byte(key)); err == nil {
		return v, nil
	}
	if c.store == nil {
		return nil, nil
	}
	v, err := c.store.GetCache(key)
	if err != nil {
		return nil, fmt.Errorf("read holiday cache: %w", err)
	}
	if v != nil {
		c.logger.Debug("holidays from store", slog.String("key", key))
		c.memoize(key, v)
	}
	return v, nil
}

func (c *apiClient) memoize(key string, raw []byte) {
	if err := c.memo.Set([]byte(key), raw, 0); err != nil {
		c.logger.Debug("holidays not memoized", slog.String("key", key), slog.Int("bytes", len(raw)), slog.Any("err", err))
	}
}

func (c *apiClient) remember(key string, raw []byte) {
	c.memoize(key, raw)
	if c.store == nil {
		return
	}
	if err := c.store.SetCache(key, raw, c.cfg.CacheTTL); err != nil {
		c.logger.Warn("failed to store holidays", slog.String("key", key), slog.Any("err", err))
	}
}

func (c *apiClient) request(ctx context.Context, year int) ([]byte, error) {
	if c.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.cfg.Timeout)
		defer cancel()
	}

	u, err := url.Parse(c.cfg.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid holiday endpoint: %w", err)
	}
	q := u.Query()
	q.Set("jahr", strconv.Itoa(year))
	q.Set("nur_land", c.cfg.State)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch holidays %d: %w", year, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}
	c.logger.Debug("holidays fetched",
		slog.Int("year", year),
		slog.Int("status", resp.StatusCode),
		slog.Int64("latency_ms", time.Since(start).Milliseconds()))

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("holiday api returned status %d: %s", resp.StatusCode, string(body))
	}
	if _, err := decode(body); err != nil {
		return nil, err
	}
	return body, nil
}

func decode(raw []byte) ([]Holiday, error) {
	var resp map[string]apiHoliday
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("decoding holidays: %w", err)
	}

	holidays := make([]Holiday, 0, len(resp))
	for name, h := range resp {
		d, err := timesheet.ParseDate(h.Datum)
		if err != nil {
			return nil, fmt.Errorf("holiday %q: %w", name, err)
		}
		holidays = append(holidays, Holiday{Name: name, Date: d, Note: h.Hinweis})
	}
	sort.Slice(holidays, func(i, j int) bool {
		if holidays[i].Date != holidays[j].Date {
			return holidays[i].Date.Before(holidays[j].Date)
		}
		return holidays[i].Name < holidays[j].Name
	})
	return holidays, nil
}
