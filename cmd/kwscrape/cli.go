package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/kwscrape"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Scanner kwscrape.Scanner
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	URL        string        `short:"u" default:"${default_url}" env:"KWSCRAPE_URL" help:"Page to scan for products"`
	Indicators []string      `short:"i" name:"indicator" default:"${default_indicators}" env:"KWSCRAPE_INDICATORS" help:"Substring that marks a heading as a product (repeatable)"`
	UserAgent  string        `default:"${default_user_agent}" env:"KWSCRAPE_USER_AGENT" help:"User-Agent header sent with the request"`
	Timeout    time.Duration `short:"t" default:"30s" env:"KWSCRAPE_TIMEOUT" help:"Fetch timeout (0 disables)"`
	Browser    bool          `short:"b" env:"KWSCRAPE_BROWSER" help:"Render the page in headless Chrome before scanning"`
	Format     string        `short:"f" default:"text" enum:"text,json" env:"KWSCRAPE_FORMAT" help:"Output format (text, json)"`
	Verbose    bool          `short:"v" env:"KWSCRAPE_VERBOSE" help:"Log fetch and extraction details to stderr"`
}

// ScanCmd scans one page and prints the products it finds.
type ScanCmd struct {
	URL    string
	Format string
}
