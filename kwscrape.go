// Package kwscrape provides a CLI tool that fetches a web page, finds the
// headings that name products, and derives a keyword set from those names.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, goquery/, rod/).
package kwscrape
