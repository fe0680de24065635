package utils

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

const tavilyBaseURL = "https://api.tavily.com"

// TavilySearchRequest mirrors the Tavily /search payload. Optional fields are
// omitted from the wire when unset.
type TavilySearchRequest struct {
	Query             string   `json:"query"`
	SearchDepth       string   `json:"search_depth,omitempty"`
	TimeRange         string   `json:"time_range,omitempty"`
	IncludeDomains    []string `json:"include_domains,omitempty"`
	MaxResults        int      `json:"max_results,omitempty"`
	IncludeAnswer     bool     `json:"include_answer"`
	IncludeRawContent bool     `json:"include_raw_content"`
}

type TavilyResult struct {
	Title         string `json:"title"`
	URL           string `json:"url"`
	PublishedDate string `json:"published_date"`
	Content       string `json:"content"`
}

type TavilySearchResponse struct {
	Results []TavilyResult `json:"results"`
}

type SearchClientInterface interface {
	Search(ctx context.Context, req TavilySearchRequest) (*TavilySearchResponse, error)
}

type TavilyClient struct {
	http *resty.Client
}

// NewTavilyClient builds a Tavily client. baseURL overrides the production
// endpoint, used by tests.
func NewTavilyClient(apiKey string, baseURL ...string) *TavilyClient {
	url := tavilyBaseURL
	if len(baseURL) > 0 && baseURL[0] != "" {
		url = baseURL[0]
	}
	client := resty.New().
		SetBaseURL(url).
		SetAuthToken(apiKey).
		SetTimeout(25 * time.Second)
	return &TavilyClient{http: client}
}

func (c *TavilyClient) Search(ctx context.Context, req TavilySearchRequest) (*TavilySearchResponse, error) {
	var out TavilySearchResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&out).
		Post("/search")
	if err != nil {
		return nil, fmt.Errorf("tavily: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("tavily search failed: %s", resp.Status())
	}
	return &out, nil
}
