package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	search := flag.String("search", "", "start with the results for this query")
	movie := flag.Int("movie", 0, "start on the detail view of this movie id")
	plain := flag.Bool("plain", false, "print the starting view to stdout and exit")
	page := flag.Int("page", 1, "result page to print with -plain")
	flag.Parse()

	cfg, err := LoadConfig()
	if err != nil {
		return err
	}

	logger, logFile := newLogger(cfg.Log)
	defer logFile.Close()

	start := SearchLocation(*search)
	if *movie != 0 {
		start = DetailLocation(*movie)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := NewTMDBClient(cfg.TMDB)
	opts := Options{
		ImageBaseURL: cfg.TMDB.ImageBaseURL,
		WikiLanguage: cfg.WikiLanguage(),
		Classify:     classifyWidth,
	}
	logger.Info("starting", "location", start.String(), "plain", *plain, "language", cfg.TMDB.Language)

	if *plain {
		return renderPlain(ctx, os.Stdout, client, logger, opts, start, *page)
	}

	p := tea.NewProgram(
		NewModel(ctx, client, logger, opts, start),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("running program: %w", err)
	}
	logger.Info("exiting")
	return nil
}
