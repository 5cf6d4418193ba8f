package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	govhttp "github.com/awalczak/govnotice/http"
	"github.com/awalczak/govnotice/metrics"
	"github.com/awalczak/govnotice/scrape"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Run executes the serve command. It blocks until SIGINT or SIGTERM.
func (c *ServeCmd) Run(deps *Dependencies) error {
	reg := prometheus.NewRegistry()
	if pipeline, ok := deps.Scraper.(*scrape.Pipeline); ok {
		pipeline.Metrics = metrics.NewCollector(reg)
	}

	server := govhttp.NewServer()
	server.Addr = c.Addr
	server.NotificationService = deps.Notifications
	server.Scraper = deps.Scraper
	server.MetricsHandler = promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
	server.Logger = deps.Logger

	if err := server.Open(); err != nil {
		return fmt.Errorf("failed to listen on %s: %w", c.Addr, err)
	}
	defer server.Close()

	fmt.Fprintf(deps.Stdout, "Listening on %s\n", server.URL())

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-sig:
	case <-deps.Ctx.Done():
	}

	fmt.Fprintln(deps.Stdout, "Shutting down")
	return nil
}
