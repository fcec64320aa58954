package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"feedbrief/internal/catalog"
	"feedbrief/internal/config"
	"feedbrief/internal/console"
	"feedbrief/internal/feed"
)

func main() {
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(log)

	cfg, err := config.Load()
	if err != nil {
		log.Error("Failed to load config",
			"error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	cat := catalog.Default()

	prompter := console.NewPrompter(os.Stdin, os.Stdout)
	prompter.PrintMenu(cat)

	choice, err := prompter.ChooseFeed(cat)
	if err != nil {
		fmt.Fprintln(os.Stderr, "No selection made.")
		os.Exit(1)
	}

	var name, url string
	if choice == catalog.CustomOption {
		url, err = prompter.CustomURL()
		if err != nil {
			fmt.Fprintln(os.Stderr, "No URL given.")
			os.Exit(1)
		}
		name = "Custom feed"
	} else {
		src, _ := cat.Source(choice)
		name, url = src.Name, src.URL
	}

	limit := prompter.ItemCount(cfg.ItemLimit)

	fmt.Printf("\nLoading %q...\n", name)

	fetcher := feed.NewFetcher(cfg.FetchTimeout, log)

	data, err := fetcher.Fetch(ctx, url)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not load feed: %v\n", err)
		os.Exit(1)
	}

	parsed, err := feed.NewParser().Parse(url, data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not process feed: %v\n", err)
		os.Exit(1)
	}

	console.NewDisplay(os.Stdout).Render(feed.Extract(parsed, limit))
}
