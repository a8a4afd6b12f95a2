// Package goquery extracts candidate product headings from HTML using
// CSS selectors.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/kwscrape"
	"golang.org/x/net/html"
)

// Ensure HeadingExtractor implements kwscrape.HeadingExtractor at compile time.
var _ kwscrape.HeadingExtractor = (*HeadingExtractor)(nil)

// HeadingExtractor returns the text of heading-like elements.
type HeadingExtractor struct {
	selector string
}

// Option configures a HeadingExtractor.
type Option func(*HeadingExtractor)

// WithTags sets the element names to collect.
// Defaults to kwscrape.DefaultTags if not specified.
func WithTags(tags ...string) Option {
	return func(e *HeadingExtractor) {
		if len(tags) > 0 {
			e.selector = strings.Join(tags, ", ")
		}
	}
}

// NewHeadingExtractor creates a new HeadingExtractor.
func NewHeadingExtractor(opts ...Option) *HeadingExtractor {
	e := &HeadingExtractor{
		selector: strings.Join(kwscrape.DefaultTags, ", "),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Headings parses html and returns the text of each matching element in
// document order. Nested matches (a strong inside an h2) are both returned.
func (e *HeadingExtractor) Headings(rawHTML string) ([]string, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, kwscrape.Errorf(kwscrape.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, kwscrape.Errorf(kwscrape.EINVALID, "failed to parse HTML: %v", err)
	}

	var headings []string
	doc.Find(e.selector).Each(func(_ int, sel *goquery.Selection) {
		text := strippedText(sel.Nodes[0])
		if text == "" {
			return
		}
		headings = append(headings, text)
	})

	return headings, nil
}

// strippedText joins the trimmed text fragments under n with no separator,
// skipping fragments that are empty after trimming. Markup like
// "<h2>VPS Hosting <a>Check Plans</a></h2>" yields "VPS HostingCheck Plans".
func strippedText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(strings.TrimSpace(n.Data))
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}
