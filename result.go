package kwscrape

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"
)

// Result is the outcome of scanning one page.
// A Result with no products is the "nothing found" outcome.
type Result struct {
	ID          string    `json:"id"`
	URL         string    `json:"url"`
	ContentHash string    `json:"contentHash,omitempty"`
	FetchedAt   time.Time `json:"fetchedAt"`
	Products    []Product `json:"products"`
	Keywords    []string  `json:"keywords"`
}

// Empty reports whether the result holds no products.
func (r *Result) Empty() bool {
	return r == nil || len(r.Products) == 0
}

// WriteText renders the result as a human-readable console report.
func WriteText(w io.Writer, r *Result) error {
	var b strings.Builder

	if r.Empty() {
		b.WriteString("\nCould not find any products. The website structure may have changed.\n")
		_, err := io.WriteString(w, b.String())
		return err
	}

	b.WriteString("\n--- 🕵️ Found Products and Their Keywords ---\n\n")
	for _, p := range r.Products {
		fmt.Fprintf(&b, "🔹 Product: %s\n", p.Name)
		fmt.Fprintf(&b, "   Keywords: %s\n\n", strings.Join(p.Keywords, ", "))
	}

	b.WriteString("\n--- 🔑 All Unique Keywords Found ---\n\n")
	b.WriteString(strings.Join(r.Keywords, ", "))
	b.WriteString("\n")
	b.WriteString("\n------------------------------------------\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteJSON renders the result as indented JSON.
// Nil product and keyword lists are written as empty arrays.
func WriteJSON(w io.Writer, r *Result) error {
	out := Result{}
	if r != nil {
		out = *r
	}
	if out.Products == nil {
		out.Products = []Product{}
	}
	if out.Keywords == nil {
		out.Keywords = []string{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
