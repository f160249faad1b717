package imdb

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/shawnegan25/IMDB-heatmap/internal/config"
)

// Markers bounding the catalog identifier inside a search-result href,
// e.g. "/title/tt0903747/?ref_=sr_t_1" yields "tt0903747".
const (
	idPrefixMarker = "tt"
	idSuffixMarker = "/?ref"
)

// RequestProfile fixes the headers and timeout attached to every IMDb
// request. It is an immutable value threaded into each fetch; there is no
// shared mutable header state.
type RequestProfile struct {
	UserAgent      string
	AcceptLanguage string
	Timeout        time.Duration
}

// Client scrapes IMDb for show identifiers and per-episode ratings. All
// requests are sequential and blocking; a failed fetch aborts the run.
type Client struct {
	httpClient *http.Client
	baseURL    string
	profile    RequestProfile
	parser     PageParser
	logger     zerolog.Logger
}

// NewClient creates a new IMDb client.
func NewClient(cfg config.IMDBConfig, logger zerolog.Logger) *Client {
	profile := RequestProfile{
		UserAgent:      cfg.UserAgent,
		AcceptLanguage: cfg.AcceptLanguage,
		Timeout:        time.Duration(cfg.Timeout) * time.Second,
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: profile.Timeout,
		},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		profile: profile,
		parser:  NewPageParser(),
		logger:  logger.With().Str("component", "imdb").Logger(),
	}
}

// Resolve maps a free-text show query to an IMDb catalog identifier by
// taking the first entry of a tv_series title search. No disambiguation is
// attempted beyond first-result ranking.
func (c *Client) Resolve(ctx context.Context, query ShowQuery) (string, error) {
	params := url.Values{}
	params.Set("title", query.Title)
	params.Set("title_type", "tv_series")
	if dateRange := releaseDateRange(query.StartYear, query.EndYear); dateRange != "" {
		params.Set("release_date", dateRange)
	}

	page, err := c.fetch(ctx, fmt.Sprintf("%s/search/title/?%s", c.baseURL, params.Encode()))
	if err != nil {
		return "", err
	}

	href, err := c.parser.FirstResultHref(page)
	if err != nil {
		return "", NewParseError("failed to parse search results", err)
	}
	if href == "" {
		return "", NewNotFoundError(fmt.Sprintf("no search results for %q", query.Title))
	}

	id, err := extractCatalogID(href)
	if err != nil {
		return "", err
	}

	c.logger.Debug().
		Str("title", query.Title).
		Str("imdbId", id).
		Msg("resolved show")

	return id, nil
}

// Harvest fetches the episode listing for a show and collects every
// season's episode ratings in listing order. It returns the canonical
// display title alongside the rating table.
func (c *Client) Harvest(ctx context.Context, id string) (string, *RatingTable, error) {
	page, err := c.fetch(ctx, fmt.Sprintf("%s/title/%s/episodes/", c.baseURL, id))
	if err != nil {
		return "", nil, err
	}

	title, err := c.parser.ShowTitle(page)
	if err != nil {
		return "", nil, NewParseError("failed to parse show title", err)
	}

	labels, err := c.parser.SeasonLabels(page)
	if err != nil {
		return "", nil, NewParseError("failed to parse season tabs", err)
	}
	if len(labels) == 0 {
		return "", nil, NewNotFoundError(fmt.Sprintf("no season tabs for %s", id))
	}

	table := NewRatingTable()
	for _, label := range labels {
		table.AddSeason(label)

		seasonPage, err := c.fetch(ctx, fmt.Sprintf("%s/title/%s/episodes/?season=%s", c.baseURL, id, url.QueryEscape(label)))
		if err != nil {
			return "", nil, err
		}

		tokens, err := c.parser.RatingTokens(seasonPage)
		if err != nil {
			return "", nil, NewParseError(fmt.Sprintf("failed to parse season %s", label), err)
		}

		// Tokens appear in episode order; episodes past the last token
		// (ratings pending) stay absent from the map.
		for i, token := range tokens {
			rating, err := ParseRatingToken(token)
			if err != nil {
				return "", nil, err
			}
			table.Add(label, i+1, rating)
		}

		c.logger.Debug().
			Str("imdbId", id).
			Str("season", label).
			Int("ratings", len(tokens)).
			Msg("harvested season ratings")
	}

	c.logger.Info().
		Str("imdbId", id).
		Str("title", title).
		Int("seasons", len(table.Seasons)).
		Msg("harvest complete")

	return title, table, nil
}

// ParseRatingToken converts a composite rating token like "8.4/10" to its
// numeric value, taking the text before the separator.
func ParseRatingToken(token string) (float64, error) {
	sep := strings.IndexByte(token, '/')
	if sep < 0 {
		return 0, NewParseError(fmt.Sprintf("malformed rating token %q", token), nil)
	}

	value, err := strconv.ParseFloat(strings.TrimSpace(token[:sep]), 64)
	if err != nil {
		return 0, NewParseError(fmt.Sprintf("malformed rating token %q", token), err)
	}

	return value, nil
}

// extractCatalogID takes the substring of a search-result href between the
// id prefix and suffix markers.
func extractCatalogID(href string) (string, error) {
	start := strings.Index(href, idPrefixMarker)
	if start < 0 {
		return "", NewParseError(fmt.Sprintf("no catalog id in href %q", href), nil)
	}

	end := strings.Index(href, idSuffixMarker)
	if end < start {
		return "", NewParseError(fmt.Sprintf("no catalog id in href %q", href), nil)
	}

	return href[start:end], nil
}

// releaseDateRange formats the search release-date filter. Either side may
// be open: a start year with no end year searches from that year onward.
func releaseDateRange(startYear, endYear int) string {
	if startYear == 0 && endYear == 0 {
		return ""
	}

	start := ""
	if startYear != 0 {
		start = fmt.Sprintf("%d-01-01", startYear)
	}
	end := ""
	if endYear != 0 {
		end = fmt.Sprintf("%d-12-31", endYear)
	}

	return start + "," + end
}

// fetch performs a single blocking GET with the request profile's headers
// attached. Transport failures and non-OK statuses both surface as network
// errors; nothing is retried.
func (c *Client) fetch(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.profile.UserAgent)
	req.Header.Set("Accept-Language", c.profile.AcceptLanguage)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error().Err(err).Str("url", rawURL).Msg("HTTP request failed")
		return nil, NewNetworkError("HTTP request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, NewNetworkError(fmt.Sprintf("unexpected status %d", resp.StatusCode), nil)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, NewNetworkError("failed to read response body", err)
	}

	return body, nil
}
