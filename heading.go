package kwscrape

// DefaultTags lists the elements whose text may name a product.
var DefaultTags = []string{"h2", "h3", "strong"}

// HeadingExtractor pulls candidate product headings out of HTML.
type HeadingExtractor interface {
	// Headings parses html and returns the text of every candidate element
	// in document order. Empty headings are omitted.
	// Returns EINVALID if html is empty.
	Headings(html string) ([]string, error)
}
