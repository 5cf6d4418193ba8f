package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/awalczak/govnotice"
	"github.com/awalczak/govnotice/gemini"
	"github.com/awalczak/govnotice/goquery"
	"github.com/awalczak/govnotice/rod"
	"github.com/awalczak/govnotice/scrape"
	govslog "github.com/awalczak/govnotice/slog"
	"github.com/awalczak/govnotice/sqlite"
	"github.com/awalczak/govnotice/trafilatura"
	"golang.org/x/time/rate"
	"google.golang.org/genai"
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
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by the notification store.
	DB *sqlite.DB

	// Service for end-to-end testing.
	NotificationService govnotice.NotificationService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
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
	logger := slog.New(slog.NewTextHandler(stderr, nil))

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Logger: logger,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("govnotice"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'govnotice --help' to see available commands")
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

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set GOVNOTICE_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.NotificationService = sqlite.NewNotificationService(m.DB)
	deps.DB = m.DB
	deps.Notifications = m.NotificationService

	// Scrape and serve need a browser and the full pipeline; the read-only
	// commands stay cheap.
	if cmd == "scrape" || cmd == "serve" {
		strategy := cli.Scrape.Strategy
		concurrency := cli.Scrape.Concurrency
		if cmd == "serve" {
			strategy = cli.Serve.Strategy
			concurrency = cli.Serve.Concurrency
		}

		renderer, err := rod.NewRenderer()
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
			return fmt.Errorf("failed to start browser: %w", err)
		}
		defer renderer.Close()

		extractor, err := goquery.NewExtractor(govnotice.ExtractionStrategy(strategy))
		if err != nil {
			return err
		}

		deps.Scraper = &scrape.Pipeline{
			Renderer:      rod.NewLoggingRenderer(renderer, logger),
			Extractor:     extractor,
			Notifications: m.NotificationService,
			Summarizer:    newSummarizer(ctx, stderr, logger),
			PageMeta:      trafilatura.NewExtractor(),
			Limiter:       rate.NewLimiter(rate.Limit(1), 1),
			Logger:        logger,
			Concurrency:   concurrency,
		}
	}

	return kongCtx.Run(deps)
}

// newSummarizer connects to the Gemini API when a key is configured. A
// missing key is not fatal; every summary falls back to truncation.
func newSummarizer(ctx context.Context, stderr io.Writer, logger *slog.Logger) govnotice.Summarizer {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		fmt.Fprintln(stderr, "GEMINI_API_KEY not set; summaries will use content truncation. Get an API key at https://aistudio.google.com/apikey")
		return nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
		return nil
	}

	return govslog.NewLoggingSummarizer(gemini.NewSummarizer(client, gemini.DefaultModel), logger)
}

func defaultDBPath() string {
	if path := os.Getenv("GOVNOTICE_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "govnotice.db"
	}
	dir := filepath.Join(home, ".govnotice")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "govnotice.db")
}
