// Package main provides the CLI entrypoint for wcag-search.
//
// wcag-search is a typo-tolerant search over the WCAG success criteria:
//   - As an Alfred script filter it prints result items as JSON on stdout
//   - With -mcp it serves the same search as an MCP tool over stdio
//
// Usage:
//
//	wcag-search [flags] [query...]
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"wcag-search/internal/alfred"
	"wcag-search/internal/catalog"
	"wcag-search/internal/config"
	"wcag-search/internal/diagnostic"
	"wcag-search/internal/match"
	"wcag-search/internal/server"
)

var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

// envConfig names the config file when -config is not given.
const envConfig = "WCAG_SEARCH_CONFIG"

type cliOptions struct {
	configPath  string
	dataFile    string
	baseURL     string
	noTypos     bool
	maxResults  int
	debug       bool
	mcp         bool
	version     bool
	printConfig bool
	query       string

	// set records which flags were given explicitly
	set map[string]bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}

		return 2
	}

	if opts.version {
		fmt.Fprintf(stdout, "wcag-search %s (commit=%s built=%s)\n", Version, Commit, BuildDate)

		return 0
	}

	cfg, cfgErr := loadConfig(opts)

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))

	if opts.printConfig {
		return printConfig(stdout, cfg, cfgErr)
	}

	if opts.mcp {
		return runMCP(cfg, cfgErr)
	}

	return runSearch(stdout, cfg, cfgErr, opts.query)
}

func parseFlags(args []string, stderr io.Writer) (cliOptions, error) {
	opts := cliOptions{set: map[string]bool{}}

	fs := flag.NewFlagSet("wcag-search", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.configPath, "config", "", "Path to config.yaml (default: $"+envConfig+" or ./config.yaml)")
	fs.StringVar(&opts.dataFile, "data", "", "JSON catalog of criteria (overrides data_file)")
	fs.StringVar(&opts.baseURL, "base-url", "", "Base URL for result links (overrides base_url)")
	fs.BoolVar(&opts.noTypos, "no-typos", false, "Disable typo tolerance")
	fs.IntVar(&opts.maxResults, "max", 0, "Max number of results, 0 for all (overrides max_results)")
	fs.BoolVar(&opts.debug, "debug", false, "Log per-record scores to stderr")
	fs.BoolVar(&opts.mcp, "mcp", false, "Serve the search as an MCP tool over stdio")
	fs.BoolVar(&opts.version, "version", false, "Print version and exit")
	fs.BoolVar(&opts.printConfig, "print-config", false, "Print the effective configuration and exit")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: wcag-search [flags] [query...]\n\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	fs.Visit(func(f *flag.Flag) { opts.set[f.Name] = true })

	opts.configPath = strings.TrimSpace(opts.configPath)
	opts.query = strings.TrimSpace(strings.Join(fs.Args(), " "))

	return opts, nil
}

// loadConfig reads the config file and applies flag overrides. On error the
// defaults (with overrides) are still returned so the caller can render it.
func loadConfig(opts cliOptions) (config.Config, error) {
	path := opts.configPath
	if path == "" {
		path = getenv(envConfig, "config.yaml")
	}

	cfg, err := config.LoadFile(path)
	if err != nil {
		cfg = config.Default()
	}

	if opts.set["data"] {
		cfg.DataFile = opts.dataFile
	}

	if opts.set["base-url"] {
		cfg.BaseURL = opts.baseURL
	}

	if opts.set["no-typos"] {
		cfg.TypoTolerance = !opts.noTypos
	}

	if opts.set["max"] {
		cfg.MaxResults = opts.maxResults
	}

	if opts.set["debug"] {
		cfg.Debug = opts.debug
	}

	if err != nil {
		return cfg, err
	}

	return cfg, cfg.Validate()
}

// loadCatalog loads and checks the records. Any failure is reported as a
// single load failure.
func loadCatalog(cfg config.Config, cfgErr error) ([]catalog.Record, error) {
	if cfgErr != nil {
		return nil, cfgErr
	}

	records, err := catalog.LoadFile(cfg.DataFile)
	if err != nil {
		return nil, err
	}

	diags := catalog.Validate(records)
	for _, d := range diags.Warnings {
		slog.Warn("catalog", "code", d.Code, "subject", d.Subject, "message", d.Message)
	}

	if err := diags.Error(); err != nil {
		return nil, fmt.Errorf("invalid catalog %s: %w", cfg.DataFile, err)
	}

	slog.Debug("catalog loaded", "path", cfg.DataFile, "records", len(records))

	return records, nil
}

func runSearch(stdout io.Writer, cfg config.Config, cfgErr error, query string) int {
	records, err := loadCatalog(cfg, cfgErr)
	if err != nil {
		slog.Error("load failed", "error", err)

		return write(stdout, alfred.Error(diagnostic.LoadFailed(err)))
	}

	query = match.Normalize(query)
	if query == "" {
		return write(stdout, alfred.Empty(cfg.BaseURL))
	}

	scorer := match.NewScorer(match.Options{TypoTolerance: cfg.TypoTolerance})
	ranked := scorer.Rank(query, records)

	for _, s := range ranked {
		slog.Debug("scored", "record", s.Record.String(), "score", s.Score, "category", s.Category, "typo", s.Typo)
	}

	if len(ranked) == 0 {
		suggestion, _ := match.Suggest(query, records)
		slog.Debug("no match", "query", query, "suggestion", suggestion)

		return write(stdout, alfred.NotFound(query, suggestion, cfg.BaseURL))
	}

	return write(stdout, alfred.FromRecords(ranked.Top(cfg.MaxResults).Records(), cfg.BaseURL)...)
}

func runMCP(cfg config.Config, cfgErr error) int {
	records, err := loadCatalog(cfg, cfgErr)
	if err != nil {
		slog.Error("failed to load catalog", "error", err)

		return 1
	}

	s := server.New(server.NewService(records, cfg), Version)

	slog.Info("starting MCP server", "transport", "stdio", "records", len(records))

	if err := server.ServeStdio(s); err != nil {
		slog.Error("mcp server stopped", "error", err)

		return 1
	}

	return 0
}

func printConfig(stdout io.Writer, cfg config.Config, cfgErr error) int {
	if cfgErr != nil {
		slog.Error("invalid config", "error", cfgErr)

		return 1
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		slog.Error("failed to encode config", "error", err)

		return 1
	}

	if _, err := stdout.Write(data); err != nil {
		return 1
	}

	return 0
}

func write(stdout io.Writer, items ...alfred.Item) int {
	if err := alfred.Write(stdout, items...); err != nil {
		slog.Error("failed to write output", "error", err)

		return 1
	}

	return 0
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}

	return fallback
}
