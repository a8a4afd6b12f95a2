package kwscrape

import (
	"regexp"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultIndicators are substrings that mark a heading as a product name.
// Matching is done against the lowercased heading text.
var DefaultIndicators = []string{
	"hosting",
	"domain",
	"server",
	"vps",
	"wordpress",
	"google workspace",
	"microsoft 365",
	"zoho",
	"nord vpn",
	"azure",
}

// titleSuffix is the call-to-action text that trails product headings.
const titleSuffix = "Check Plans"

// wordPattern matches a run of word characters.
var wordPattern = regexp.MustCompile(`[\p{L}\p{N}_]+`)

// Product is a product name found on a page and the keywords derived from it.
type Product struct {
	Name     string   `json:"name"`
	Keywords []string `json:"keywords"`
}

// lower returns s in lowercase using Unicode case rules.
func lower(s string) string {
	return cases.Lower(language.Und).String(s)
}

// ContainsIndicator reports whether text contains any of the indicators,
// ignoring case. Both sides are lowered with the same Unicode rules.
func ContainsIndicator(text string, indicators []string) bool {
	text = lower(text)
	for _, indicator := range indicators {
		if indicator != "" && strings.Contains(text, lower(indicator)) {
			return true
		}
	}
	return false
}

// CleanTitle removes a trailing "Check Plans" from title and trims the result.
// The suffix match is case-sensitive and only applies at the very end.
func CleanTitle(title string) string {
	return strings.TrimSpace(strings.TrimSuffix(title, titleSuffix))
}

// Tokenize lowercases text and returns its distinct word tokens, sorted.
// A word is a run of letters, digits, or underscores.
func Tokenize(text string) []string {
	words := wordPattern.FindAllString(lower(text), -1)
	slices.Sort(words)
	return slices.Compact(words)
}

// Catalog collects products in discovery order.
// The first product recorded under a name wins; later ones are ignored.
type Catalog struct {
	products []Product
	seen     map[string]struct{}
}

// NewCatalog returns an empty Catalog.
func NewCatalog() *Catalog {
	return &Catalog{seen: make(map[string]struct{})}
}

// Add tokenizes name and records it as a product.
// Returns false if a product with the same name was already recorded.
func (c *Catalog) Add(name string) bool {
	if _, ok := c.seen[name]; ok {
		return false
	}
	c.seen[name] = struct{}{}
	c.products = append(c.products, Product{
		Name:     name,
		Keywords: Tokenize(name),
	})
	return true
}

// Len returns the number of recorded products.
func (c *Catalog) Len() int {
	return len(c.products)
}

// Products returns the recorded products in discovery order.
func (c *Catalog) Products() []Product {
	return slices.Clone(c.products)
}

// Keywords returns the sorted union of all product keywords.
func (c *Catalog) Keywords() []string {
	var all []string
	for _, p := range c.products {
		all = append(all, p.Keywords...)
	}
	slices.Sort(all)
	return slices.Compact(all)
}
