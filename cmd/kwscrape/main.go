package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/kwscrape"
	"github.com/fwojciec/kwscrape/goquery"
	kwhttp "github.com/fwojciec/kwscrape/http"
	"github.com/fwojciec/kwscrape/rod"
	"github.com/fwojciec/kwscrape/scrape"
	kwslog "github.com/fwojciec/kwscrape/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	// Help flags make kong call Exit; the scan must not run after that.
	exited := false
	parser, err := kong.New(cli,
		kong.Name("kwscrape"),
		kong.Description("Find product names on a web page and derive keywords from them"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) { exited = true }),
		kong.Vars{
			"default_url":        kwscrape.DefaultURL,
			"default_indicators": strings.Join(kwscrape.DefaultIndicators, ","),
			"default_user_agent": kwscrape.DefaultUserAgent,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}
	if exited {
		return nil
	}

	var logger *slog.Logger
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, nil))
	}

	// Wire dependencies
	var fetcher kwscrape.Fetcher
	if cli.Browser {
		rodFetcher, err := rod.NewFetcher(
			rod.WithFetchTimeout(cli.Timeout),
			rod.WithUserAgent(cli.UserAgent),
		)
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
			return fmt.Errorf("failed to start browser: %w", err)
		}
		fetcher = rodFetcher
	} else {
		fetcher = kwhttp.NewFetcher(
			kwhttp.WithTimeout(cli.Timeout),
			kwhttp.WithUserAgent(cli.UserAgent),
		)
	}
	defer fetcher.Close()

	var headings kwscrape.HeadingExtractor = goquery.NewHeadingExtractor()

	if logger != nil {
		fetcher = kwslog.NewLoggingFetcher(fetcher, logger)
		headings = kwslog.NewLoggingHeadingExtractor(headings, logger)
	}

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Scanner: &scrape.Scraper{
			Fetcher:    fetcher,
			Headings:   headings,
			Indicators: normalizeIndicators(cli.Indicators),
		},
	}

	cmd := &ScanCmd{
		URL:    cli.URL,
		Format: cli.Format,
	}

	return cmd.Run(deps)
}

// normalizeIndicators trims indicators and drops empty ones.
func normalizeIndicators(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
