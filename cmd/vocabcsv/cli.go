package main

import (
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/vocabcsv/crawl"
)

// DefaultURL is the vocabulary page converted when no URL is given.
const DefaultURL = "https://flyer.vn/1000-tu-vung-ielts-theo-chu-de-xa-hoi-quan-tam/"

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *slog.Logger
	Crawler *crawl.Crawler
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	URL             string        `arg:"" optional:"" default:"${default_url}" help:"Vocabulary page URL (default: ${default_url})"`
	Out             string        `short:"o" default:"." env:"VOCABCSV_OUT" help:"Output directory"`
	Ext             string        `default:"csv" help:"Output file extension"`
	Timeout         time.Duration `short:"t" default:"10s" help:"Fetch timeout"`
	UserAgent       string        `name:"user-agent" help:"User-Agent header for the page request"`
	Browser         bool          `help:"Fetch the page with headless Chrome"`
	DB              string        `name:"db" env:"VOCABCSV_DB" help:"Also store categories in this SQLite database"`
	KeepGoing       bool          `short:"k" name:"keep-going" help:"Continue past categories that fail"`
	Verbose         bool          `short:"v" help:"Log fetch, parse and write steps to stderr"`
	HeadingSelector string        `name:"heading-selector" help:"CSS selector for category headings"`
	TableSelector   string        `name:"table-selector" help:"CSS selector for category tables"`
}
