package imdb

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// CSS selectors for the IMDb pages we scrape. Every structural dependency on
// IMDb's markup lives in this file; when the site changes, this is the only
// place that needs updating.
const (
	selSearchResult = "a.ipc-title-link-wrapper"
	selShowTitle    = `h2[data-testid="subtitle"]`
	selSeasonTab    = `a[data-testid="tab-season-entry"]`
	selRatingStar   = "span.ipc-rating-star.ipc-rating-star--base.ipc-rating-star--imdb.ratingGroup--imdb-rating"
)

// PageParser extracts the pieces the client needs from raw IMDb documents.
type PageParser interface {
	// FirstResultHref returns the href of the first entry on a title
	// search results page.
	FirstResultHref(page []byte) (string, error)
	// ShowTitle returns the canonical display title from an episode
	// listing landing page.
	ShowTitle(page []byte) (string, error)
	// SeasonLabels returns the season tab labels from an episode listing
	// landing page, in document order.
	SeasonLabels(page []byte) ([]string, error)
	// RatingTokens returns every rating token (e.g. "8.4/10") on a season
	// page, in document order.
	RatingTokens(page []byte) ([]string, error)
}

// htmlParser is the goquery-backed PageParser used in production.
type htmlParser struct{}

// NewPageParser creates the default HTML page parser.
func NewPageParser() PageParser {
	return &htmlParser{}
}

func parseDocument(page []byte) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}
	return doc, nil
}

func (p *htmlParser) FirstResultHref(page []byte) (string, error) {
	doc, err := parseDocument(page)
	if err != nil {
		return "", err
	}

	first := doc.Find(selSearchResult).First()
	if first.Length() == 0 {
		return "", nil
	}

	href, _ := first.Attr("href")
	return strings.TrimSpace(href), nil
}

func (p *htmlParser) ShowTitle(page []byte) (string, error) {
	doc, err := parseDocument(page)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(doc.Find(selShowTitle).First().Text()), nil
}

func (p *htmlParser) SeasonLabels(page []byte) ([]string, error) {
	doc, err := parseDocument(page)
	if err != nil {
		return nil, err
	}

	var labels []string
	doc.Find(selSeasonTab).Each(func(_ int, sel *goquery.Selection) {
		labels = append(labels, strings.TrimSpace(sel.Text()))
	})
	return labels, nil
}

func (p *htmlParser) RatingTokens(page []byte) ([]string, error) {
	doc, err := parseDocument(page)
	if err != nil {
		return nil, err
	}

	var tokens []string
	doc.Find(selRatingStar).Each(func(_ int, sel *goquery.Selection) {
		tokens = append(tokens, strings.TrimSpace(sel.Text()))
	})
	return tokens, nil
}
