// Package article finds the current NBA.com power rankings article: it
// discovers candidate links on the news listing pages, then validates and
// freshness-scores the candidates to pick the one worth extracting from.
package article

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/cockroachdb/errors"

	"github.com/pfrederiksen/rankwatch/internal/httpx"
	"github.com/pfrederiksen/rankwatch/internal/logger"
	"github.com/pfrederiksen/rankwatch/internal/roster"
)

// siteBase absolutizes the relative hrefs NBA.com uses on its listing pages.
const siteBase = "https://www.nba.com"

// ErrNoCandidates means no listing page yielded a single usable article link.
var ErrNoCandidates = errors.New("no power rankings article candidates found")

// Finder discovers and selects power rankings articles.
type Finder struct {
	client *httpx.Client
	reg    *roster.Registry
}

// New creates a Finder that fetches through client and validates articles
// against reg.
func New(client *httpx.Client, reg *roster.Registry) *Finder {
	return &Finder{client: client, reg: reg}
}

// Discover scans the given listing pages for power rankings article links and
// returns them absolutized, deduplicated, in first-seen order. Listing pages
// that fail to fetch are skipped; an empty result is ErrNoCandidates.
func (f *Finder) Discover(ctx context.Context, listings []string) ([]string, error) {
	seen := make(map[string]bool)
	var ordered []string

	for _, url := range listings {
		doc, err := f.client.GetDocument(ctx, url)
		if err != nil {
			logger.Warn("listing page fetch failed", logger.Fields{"url": url, "error": err.Error()})
			continue
		}

		doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
			href, _ := sel.Attr("href")
			if !validArticleHref(href) {
				return
			}
			abs := absolutize(href)
			if seen[abs] {
				return
			}
			seen[abs] = true
			ordered = append(ordered, abs)
		})
	}

	if len(ordered) == 0 {
		return nil, errors.Wrapf(ErrNoCandidates, "scanned %d listing pages", len(listings))
	}

	logger.Debug("discovered article candidates", logger.Fields{"count": len(ordered)})
	return ordered, nil
}

// validArticleHref accepts news-article links that mention power rankings,
// rejecting category pages and the bare rankings index slug.
func validArticleHref(href string) bool {
	h := strings.ToLower(href)
	h = strings.TrimPrefix(h, siteBase)
	if !strings.HasPrefix(h, "/news/") {
		return false
	}
	if strings.Contains(h, "/category/") {
		return false
	}
	if strings.TrimRight(h, "/") == "/news/power-rankings" {
		return false
	}
	return strings.Contains(h, "power-rankings")
}

func absolutize(href string) string {
	if strings.HasPrefix(href, "http") {
		return href
	}
	if strings.HasPrefix(href, "/") {
		return siteBase + href
	}
	return href
}
