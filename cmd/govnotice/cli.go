package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/awalczak/govnotice"
	"github.com/awalczak/govnotice/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx           context.Context
	Stdout        io.Writer
	Stderr        io.Writer
	Logger        *slog.Logger
	DB            *sqlite.DB
	Notifications govnotice.NotificationService
	Scraper       govnotice.Scraper
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Scrape ScrapeCmd `cmd:"" help:"Scrape a site and store new notifications"`
	List   ListCmd   `cmd:"" help:"List stored notifications"`
	Stats  StatsCmd  `cmd:"" help:"Show per-category notification counts"`
	Serve  ServeCmd  `cmd:"" help:"Run the HTTP API server"`
}

// ScrapeCmd is the "scrape" subcommand.
type ScrapeCmd struct {
	URL         string `arg:"" optional:"" help:"Target URL (defaults to the placeholder site)"`
	Strategy    string `short:"s" default:"all-elements" enum:"all-elements,structural" help:"Extraction strategy"`
	Concurrency int    `short:"c" default:"1" help:"Concurrent item processing limit"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Category string `short:"C" help:"Filter by category"`
	Page     int    `short:"p" default:"1" help:"Page number"`
	Limit    int    `short:"l" default:"20" help:"Page size"`
}

// StatsCmd is the "stats" subcommand.
type StatsCmd struct{}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr        string `default:":8080" help:"HTTP bind address"`
	Strategy    string `short:"s" default:"all-elements" enum:"all-elements,structural" help:"Extraction strategy"`
	Concurrency int    `short:"c" default:"1" help:"Concurrent item processing limit"`
}
