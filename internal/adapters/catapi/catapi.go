// Package catapi fetches random cat media from thecatapi.com.
package catapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"
)

const defaultBaseURL = "https://api.thecatapi.com/v1/images/search"

type Client struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
}

// New builds a client. The api key is optional; without it the public
// rate-limited tier is used.
func New(apiKey string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
	}
}

// RandomGIF returns the URL of one random cat GIF.
func (c *Client) RandomGIF(ctx context.Context) (string, error) {
	return c.search(ctx, "gif")
}

// RandomPhoto returns the URL of one random cat photo.
func (c *Client) RandomPhoto(ctx context.Context) (string, error) {
	return c.search(ctx, "jpg,png")
}

func (c *Client) search(ctx context.Context, mimeTypes string) (string, error) {
	query := url.Values{}
	query.Set("mime_types", mimeTypes)
	query.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return "", errors.WithMessage(err, "build request")
	}
	if c.apiKey != "" {
		req.Header.Set("x-api-key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errors.WithMessage(err, "fetch cat image")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errors.Errorf("cat api status %d", resp.StatusCode)
	}

	var results []struct {
		URL string `json:"url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return "", errors.WithMessage(err, "decode cat api response")
	}
	if len(results) == 0 || results[0].URL == "" {
		return "", errors.New("cat api returned no images")
	}
	return results[0].URL, nil
}
