package kwscrape

import "context"

// ScanStage identifies how far a scan has progressed.
type ScanStage int

// Scan stages in the order they are reported.
const (
	ScanFetching ScanStage = iota
	ScanAnalyzing
)

// ScanProgress reports progress during a scan.
type ScanProgress struct {
	Stage ScanStage
	URL   string
	Bytes int // size of the fetched page; zero while fetching
}

// ScanProgressFunc is called as a scan moves between stages.
type ScanProgressFunc func(ScanProgress)

// Scanner scans one page for product names.
// Implementations hide fetching, heading extraction, and keyword derivation.
type Scanner interface {
	// Scan fetches url once and returns the products it names.
	// On failure Scan returns an empty, non-nil Result along with the error.
	Scan(ctx context.Context, url string, progress ScanProgressFunc) (*Result, error)
}
