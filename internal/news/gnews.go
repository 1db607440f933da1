// Package news implements domain.NewsProvider against the GNews HTTP API.
package news

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/newsflow-app/newsflow-api/domain"
)

const (
	headlinesPath = "/api/v4/top-headlines"
	searchPath    = "/api/v4/search"

	userAgent = "NewsFlow/1.0"
)

// gnewsArticle is the provider's wire shape before reshaping.
type gnewsArticle struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Image       string `json:"image"`
	PublishedAt string `json:"publishedAt"`
	Source      struct {
		Name string `json:"name"`
		URL  string `json:"url"`
	} `json:"source"`
}

type gnewsResponse struct {
	TotalArticles int64          `json:"totalArticles"`
	Articles      []gnewsArticle `json:"articles"`
	Errors        []string       `json:"errors,omitempty"`
}

type GNewsClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

var _ domain.NewsProvider = (*GNewsClient)(nil)

// NewGNewsClient creates a client for the GNews API. baseURL carries no
// trailing slash; timeout applies to the whole request.
func NewGNewsClient(baseURL, apiKey string, timeout time.Duration) *GNewsClient {
	return &GNewsClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

func (g *GNewsClient) TopHeadlines(ctx context.Context, q domain.HeadlinesQuery) (domain.NewsResult, error) {
	params := url.Values{}
	params.Set("apikey", g.apiKey)
	params.Set("lang", q.Lang)
	params.Set("max", strconv.Itoa(q.Max))
	// "general" is the provider default and is not sent explicitly
	if q.Category != "" && q.Category != domain.DefaultNewsCategory {
		params.Set("category", q.Category)
	}
	if q.Country != "" {
		params.Set("country", q.Country)
	}

	return g.get(ctx, headlinesPath, params)
}

func (g *GNewsClient) Search(ctx context.Context, q domain.SearchQuery) (domain.NewsResult, error) {
	params := url.Values{}
	params.Set("apikey", g.apiKey)
	params.Set("q", q.Query)
	params.Set("lang", q.Lang)
	params.Set("max", strconv.Itoa(q.Max))
	if q.Country != "" {
		params.Set("country", q.Country)
	}
	if q.From != "" {
		params.Set("from", q.From)
	}
	if q.To != "" {
		params.Set("to", q.To)
	}

	return g.get(ctx, searchPath, params)
}

func (g *GNewsClient) get(ctx context.Context, path string, params url.Values) (domain.NewsResult, error) {
	reqURL := g.baseURL + path + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return domain.NewsResult{}, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := g.client.Do(req)
	if err != nil {
		return domain.NewsResult{}, err
	}
	defer resp.Body.Close()

	// 5xx means the provider itself is down; 4xx carries an errors payload
	// that is reported back to the caller.
	if resp.StatusCode >= http.StatusInternalServerError {
		return domain.NewsResult{}, fmt.Errorf("news provider returned status %d", resp.StatusCode)
	}

	var body gnewsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return domain.NewsResult{}, err
	}

	if len(body.Errors) > 0 {
		logrus.Warnf("news provider reported errors: %v", body.Errors)
		return domain.NewsResult{}, domain.ErrBadParamInput
	}

	return reshape(body), nil
}

// reshape maps the provider wire format to what the frontend expects.
func reshape(body gnewsResponse) domain.NewsResult {
	articles := make([]domain.NewsArticle, 0, len(body.Articles))
	for _, a := range body.Articles {
		name := a.Source.Name
		if name == "" {
			name = "Unknown"
		}
		articles = append(articles, domain.NewsArticle{
			Title:       a.Title,
			Description: a.Description,
			URL:         a.URL,
			Image:       a.Image,
			PublishedAt: a.PublishedAt,
			Source:      domain.NewsSource{Name: name},
		})
	}

	total := body.TotalArticles
	if total == 0 {
		total = int64(len(articles))
	}

	return domain.NewsResult{
		Status:        domain.NewsStatusSuccess,
		TotalArticles: total,
		Articles:      articles,
	}
}
