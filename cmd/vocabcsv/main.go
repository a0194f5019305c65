package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/vocabcsv"
	"github.com/fwojciec/vocabcsv/crawl"
	"github.com/fwojciec/vocabcsv/fs"
	"github.com/fwojciec/vocabcsv/goquery"
	vocabhttp "github.com/fwojciec/vocabcsv/http"
	"github.com/fwojciec/vocabcsv/rod"
	vocabslog "github.com/fwojciec/vocabcsv/slog"
	"github.com/fwojciec/vocabcsv/sqlite"
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
type Main struct {
	// SQLite database, opened only when --db is set.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}

	// Kong calls Exit after printing help; record it instead of exiting.
	var helped bool
	parser, err := kong.New(cli,
		kong.Name("vocabcsv"),
		kong.Description("Convert a vocabulary page into one CSV file per category"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) { helped = true }),
		kong.Vars{"default_url": DefaultURL},
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	_, err = parser.Parse(args)
	if helped {
		return nil
	}
	if err != nil {
		return err
	}

	deps := &Dependencies{
		Stdout: stdout,
		Stderr: stderr,
	}
	if cli.Verbose {
		deps.Logger = slog.New(slog.NewTextHandler(stderr, nil))
	}

	fetcher, err := newFetcher(cli)
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
		return fmt.Errorf("failed to start browser: %w", err)
	}
	defer fetcher.Close()

	writers := crawl.MultiWriter{fs.NewWriter(cli.Out, fs.WithExtension(cli.Ext))}
	if cli.DB != "" {
		m.DB = sqlite.NewDB(cli.DB)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set VOCABCSV_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", cli.DB, err)
		}
		defer m.Close()
		writers = append(writers, sqlite.NewCategoryService(m.DB))
	}

	deps.Crawler = &crawl.Crawler{
		Fetcher:   fetcher,
		Parser:    newParser(cli),
		Writer:    writers,
		KeepGoing: cli.KeepGoing,
	}
	if deps.Logger != nil {
		deps.Crawler.Fetcher = vocabslog.NewLoggingFetcher(deps.Crawler.Fetcher, deps.Logger)
		deps.Crawler.Parser = vocabslog.NewLoggingParser(deps.Crawler.Parser, deps.Logger)
		deps.Crawler.Writer = vocabslog.NewLoggingCategoryWriter(deps.Crawler.Writer, deps.Logger)
	}

	cmd := &ConvertCmd{
		URL: cli.URL,
		Out: cli.Out,
	}

	return cmd.Run(ctx, deps)
}

func newFetcher(cli *CLI) (vocabcsv.Fetcher, error) {
	timeout := cli.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	if cli.Browser {
		return rod.NewFetcher(rod.WithFetchTimeout(timeout))
	}

	opts := []vocabhttp.Option{vocabhttp.WithTimeout(timeout)}
	if cli.UserAgent != "" {
		opts = append(opts, vocabhttp.WithUserAgent(cli.UserAgent))
	}
	return vocabhttp.NewFetcher(opts...), nil
}

func newParser(cli *CLI) *goquery.Parser {
	var opts []goquery.Option
	if cli.HeadingSelector != "" {
		opts = append(opts, goquery.WithHeadingSelector(cli.HeadingSelector))
	}
	if cli.TableSelector != "" {
		opts = append(opts, goquery.WithTableSelector(cli.TableSelector))
	}
	return goquery.NewParser(opts...)
}
