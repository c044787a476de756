package openlibrary

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

// ErrNoDocs is returned when the search matches no document for the ISBN.
var ErrNoDocs = errors.New("no document matches the requested ISBN")

type Client struct {
	httpClient *http.Client
	userAgent  string
	baseURL    string
	limiter    *rate.Limiter
	maxRetries int
}

func NewClient(baseURL, userAgent string, rps int, maxRetries int) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		userAgent:  userAgent,
		baseURL:    baseURL,
		limiter:    rate.NewLimiter(rate.Every(time.Second/time.Duration(rps)), 1),
		maxRetries: maxRetries,
	}
}

// searchResponse matches search.json
type searchResponse struct {
	NumFound int `json:"numFound"`
	Docs     []struct {
		Key      string   `json:"key"`
		Title    string   `json:"title"`
		Language []string `json:"language"`
	} `json:"docs"`
}

// Languages returns the language codes of the first document matching the
// ISBN.
func (c *Client) Languages(ctx context.Context, isbn string) ([]string, error) {
	u := fmt.Sprintf("%s/search.json?q=%s", c.baseURL, url.QueryEscape("isbn:"+isbn))

	var res searchResponse
	if err := c.get(ctx, u, &res); err != nil {
		return nil, err
	}
	if len(res.Docs) == 0 || len(res.Docs[0].Language) == 0 {
		return nil, ErrNoDocs
	}
	return res.Docs[0].Language, nil
}

func (c *Client) get(ctx context.Context, url string, target interface{}) error {
	var lastErr error
	for i := 0; i <= c.maxRetries; i++ {
		if i > 0 {
			// Backoff: 1s, 2s, 4s...
			backoff := time.Duration(1<<uint(i-1)) * time.Second
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}

		req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
		if err != nil {
			return err
		}
		req.Header.Set("User-Agent", c.userAgent)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
				lastErr = fmt.Errorf("unexpected status code: %d", resp.StatusCode)
				continue
			}
			return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
		}

		err = json.NewDecoder(resp.Body).Decode(target)
		resp.Body.Close()
		return err
	}
	return fmt.Errorf("after %d retries: %w", c.maxRetries, lastErr)
}
