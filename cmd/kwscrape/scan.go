package main

import (
	"fmt"

	"github.com/fwojciec/kwscrape"
)

// Run executes the scan command.
//
// A failed fetch is reported on stdout and rendered as an empty result;
// it does not fail the command.
func (c *ScanCmd) Run(deps *Dependencies) error {
	text := c.Format != "json"

	progress := func(p kwscrape.ScanProgress) {
		if !text {
			return
		}
		switch p.Stage {
		case kwscrape.ScanFetching:
			fmt.Fprintf(deps.Stdout, "Fetching content from %s...\n", p.URL)
		case kwscrape.ScanAnalyzing:
			fmt.Fprintln(deps.Stdout, "Analyzing content to find products...")
		}
	}

	result, err := deps.Scanner.Scan(deps.Ctx, c.URL, progress)
	if err != nil {
		if text {
			fmt.Fprintf(deps.Stdout, "Error: Could not fetch the website. %s\n", describe(err))
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", describe(err))
		}
	}
	if result == nil {
		result = &kwscrape.Result{URL: c.URL}
	}

	if !text {
		return kwscrape.WriteJSON(deps.Stdout, result)
	}
	return kwscrape.WriteText(deps.Stdout, result)
}

// describe returns the application message for err, or the full error text
// when err carries no application code.
func describe(err error) string {
	if kwscrape.ErrorCode(err) == kwscrape.EINTERNAL {
		return err.Error()
	}
	return kwscrape.ErrorMessage(err)
}
