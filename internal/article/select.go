package article

import (
	"context"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/cockroachdb/errors"

	"github.com/pfrederiksen/rankwatch/internal/logger"
	"github.com/pfrederiksen/rankwatch/internal/rankings"
)

// Article is a selected power rankings article. Doc is the parsed page, kept
// so extraction does not refetch it. A zero Published means the page carried
// no parseable timestamp.
type Article struct {
	URL       string
	Published time.Time
	Doc       *goquery.Document
}

// publishLayouts are the timestamp formats NBA.com has used in its article
// metadata.
var publishLayouts = []string{
	"2006-01-02T15:04:05Z",
	"2006-01-02T15:04:05-07:00",
	"2006-01-02",
}

// Select fetches up to limit candidates (limit <= 0 means all), keeps the
// ones that read like a rankings article, and returns the freshest of those
// by publish time, first-seen winning ties. When none validate it falls back
// to the first candidate so extraction can still fail loudly with a concrete
// URL.
func (f *Finder) Select(ctx context.Context, candidates []string, limit int) (*Article, error) {
	if len(candidates) == 0 {
		return nil, ErrNoCandidates
	}
	if limit > 0 && len(candidates) > limit {
		candidates = candidates[:limit]
	}

	var best *Article
	for _, url := range candidates {
		doc, err := f.client.GetDocument(ctx, url)
		if err != nil {
			logger.Debug("skipping candidate", logger.Fields{"url": url, "error": err.Error()})
			continue
		}

		if !rankings.Plausible(rankings.Materialize(doc), f.reg) {
			logger.Debug("candidate does not look like a rankings article", logger.Fields{"url": url})
			continue
		}

		published, ok := publishTime(doc)
		if !ok {
			logger.Debug("candidate has no parseable publish time", logger.Fields{"url": url})
		}
		if best == nil || published.After(best.Published) {
			best = &Article{URL: url, Published: published, Doc: doc}
		}
	}

	if best != nil {
		logger.Debug("selected article", logger.Fields{
			"url":       best.URL,
			"published": best.Published.Format(time.RFC3339),
		})
		return best, nil
	}

	url := candidates[0]
	doc, err := f.client.GetDocument(ctx, url)
	if err != nil {
		return nil, errors.Wrapf(err, "fetch fallback article %s", url)
	}
	logger.Warn("no candidate validated, falling back to first", logger.Fields{"url": url})
	return &Article{URL: url, Doc: doc}, nil
}

// Latest runs discovery over the listing pages and selects from the result.
func (f *Finder) Latest(ctx context.Context, listings []string, limit int) (*Article, error) {
	candidates, err := f.Discover(ctx, listings)
	if err != nil {
		return nil, err
	}
	return f.Select(ctx, candidates, limit)
}

// publishTime pulls the article's publish timestamp from its metadata, trying
// the meta tags first and a <time datetime> element last.
func publishTime(doc *goquery.Document) (time.Time, bool) {
	selectors := []string{
		`meta[property="article:published_time"]`,
		`meta[name="publishDate"]`,
	}
	for _, sel := range selectors {
		content, ok := doc.Find(sel).First().Attr("content")
		if !ok || content == "" {
			continue
		}
		for _, layout := range publishLayouts {
			if ts, err := time.Parse(layout, content); err == nil {
				return ts, true
			}
		}
	}

	if raw, ok := doc.Find("time[datetime]").First().Attr("datetime"); ok {
		if ts, err := time.Parse(time.RFC3339, raw); err == nil {
			return ts, true
		}
	}

	return time.Time{}, false
}
