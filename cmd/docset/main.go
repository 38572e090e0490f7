package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/docset"
	"github.com/fwojciec/docset/goquery"
	dochttp "github.com/fwojciec/docset/http"
	docslog "github.com/fwojciec/docset/slog"
	"github.com/fwojciec/docset/sqlite"
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
	// Catalog database path. Set before calling Run().
	DBPath string

	// DataDir is where completed docset directories are written.
	DataDir string

	// SQLite database backing the catalog.
	DB *sqlite.DB

	// DocService for end-to-end testing.
	DocService docset.DocService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath:  defaultDBPath(),
		DataDir: defaultDataDir(),
	}
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
	deps := &Dependencies{
		Ctx:     ctx,
		Stdout:  stdout,
		Stderr:  stderr,
		DataDir: m.DataDir,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("docset"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'docset --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	deps.Logger = logger

	// Open the catalog database.
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set DOCSET_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.DocService = sqlite.NewDocService(m.DB)
	deps.DB = m.DB
	deps.Docs = m.DocService
	deps.Sitemaps = docslog.NewLoggingSitemapService(dochttp.NewSitemapService(nil), logger)

	registry := goquery.NewRegistry()
	goquery.RegisterBuiltins(registry)
	registerSiteFilters(registry)
	deps.Registry = docslog.NewLoggingRegistry(registry, logger)

	if cmd == "scrape" {
		fetcher := dochttp.NewFetcher()
		defer fetcher.Close()
		deps.Fetcher = docslog.NewLoggingFetcher(fetcher, logger)
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("DOCSET_DB"); path != "" {
		return path
	}
	return filepath.Join(defaultHomeDir(), "docset.db")
}

func defaultDataDir() string {
	if path := os.Getenv("DOCSET_DIR"); path != "" {
		return path
	}
	return filepath.Join(defaultHomeDir(), "docsets")
}

func defaultHomeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	dir := filepath.Join(home, ".docset")
	_ = os.MkdirAll(dir, 0755)
	return dir
}
