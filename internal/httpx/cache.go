package httpx

import (
	"github.com/PuerkitoBio/goquery"
)

// PageCache holds parsed HTML documents keyed by URL for the duration of a
// run. The article selector probes candidate pages before the extractor
// reads the winner; the cache makes the second access free.
type PageCache struct {
	docs map[string]*goquery.Document
}

// NewPageCache creates an empty page cache.
func NewPageCache() *PageCache {
	return &PageCache{
		docs: make(map[string]*goquery.Document),
	}
}

// Get retrieves a cached document, or nil if the URL hasn't been fetched.
func (c *PageCache) Get(url string) *goquery.Document {
	return c.docs[url]
}

// Set stores a parsed document.
func (c *PageCache) Set(url string, doc *goquery.Document) {
	c.docs[url] = doc
}

// Size returns the number of cached documents.
func (c *PageCache) Size() int {
	return len(c.docs)
}
