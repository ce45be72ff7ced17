package kudago

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/go-querystring/query"
)

const defaultBaseURL = "https://kudago.com/public-api/v1.4"

// TextFormat controls how KudaGo renders free-text fields.
type TextFormat string

const (
	TextFormatHTML  TextFormat = "html"
	TextFormatPlain TextFormat = "plain"
	TextFormatText  TextFormat = "text"
)

// Location is a KudaGo city slug.
type Location string

const (
	LocationSPB         Location = "spb"
	LocationMSK         Location = "msk"
	LocationNSK         Location = "nsk"
	LocationEKB         Location = "ekb"
	LocationNNV         Location = "nnv"
	LocationKZN         Location = "kzn"
	LocationVBG         Location = "vbg"
	LocationSMR         Location = "smr"
	LocationKRD         Location = "krd"
	LocationSochi       Location = "sochi"
	LocationUFA         Location = "ufa"
	LocationKrasnoyarsk Location = "krasnoyarsk"
	LocationKEV         Location = "kev"
	LocationNewYork     Location = "new-york"
)

// EventsParams are the optional filters forwarded to the events
// catalog. Unset fields are dropped from the query string.
type EventsParams struct {
	Page        *int       `url:"page,omitempty"`
	PageSize    *int       `url:"page_size,omitempty"`
	Lang        string     `url:"lang,omitempty"`
	Fields      string     `url:"fields,omitempty"`
	Expand      string     `url:"expand,omitempty"`
	OrderBy     string     `url:"order_by,omitempty"`
	TextFormat  TextFormat `url:"text_format,omitempty"`
	IDs         string     `url:"ids,omitempty"`
	Location    Location   `url:"location,omitempty"`
	ActualSince time.Time  `url:"actual_since,omitempty,unix"`
	ActualUntil time.Time  `url:"actual_until,omitempty,unix"`
	IsFree      *bool      `url:"is_free,omitempty"`
	Categories  string     `url:"categories,omitempty"`
	Lon         *float64   `url:"lon,omitempty"`
	Lat         *float64   `url:"lat,omitempty"`
	Radius      *int       `url:"radius,omitempty"`
}

// Client is a pass-through client for the KudaGo public API. It does
// no retrying, caching or rate-limit handling; callers interpret the
// raw response themselves.
type Client struct {
	BaseURL string
	Client  *http.Client
}

// NewClient creates a new KudaGo client instance
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		BaseURL: baseURL,
		Client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// FetchEvents forwards the set filters to the events catalog and
// returns the raw response body along with the upstream status code.
func (c *Client) FetchEvents(ctx context.Context, params EventsParams) ([]byte, int, error) {
	values, err := query.Values(params)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to encode KudaGo query parameters: %w", err)
	}

	fullURL := c.BaseURL + "/events/"
	if encoded := values.Encode(); encoded != "" {
		fullURL = fmt.Sprintf("%s?%s", fullURL, encoded)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to create KudaGo events request: %w", err)
	}

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to execute KudaGo events request: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("failed to read KudaGo events response body: %w", err)
	}

	return bodyBytes, resp.StatusCode, nil
}
