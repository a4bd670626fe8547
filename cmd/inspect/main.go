package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"nonprofit-scraper/adapters"
	"nonprofit-scraper/internal/types"
	"nonprofit-scraper/utils"
)

// inspect loads a single directory page and prints what the selectors match on it,
// for checking the selectors against the live site without running a full scrape.
func main() {
	var (
		page      = flag.Int("page", 1, "List page number to inspect")
		detailURL = flag.String("detail", "", "Detail page URL to inspect instead of a list page")
		httpOnly  = flag.Bool("http-only", false, "Use HTTP requests only (disable headless browser)")
	)
	flag.Parse()

	config := types.ConfigFromEnv()
	if *httpOnly {
		config.UseHeadlessBrowser = false
	}

	logger := &debugLogger{}

	var loader interface {
		types.PageLoader
		Close()
	}
	if config.UseHeadlessBrowser {
		loader = utils.NewBrowserClient(config, logger)
	} else {
		loader = utils.NewHTTPClient(config, logger)
	}
	defer loader.Close()

	adapter := adapters.NewGreatNonprofitsAdapter(config, logger, loader)
	ctx := context.Background()

	if *detailURL != "" {
		fmt.Printf("=== Detail page %s ===\n", *detailURL)
		org, err := adapter.ScrapeDetailPage(ctx, types.OrgRecord{DetailURL: detailURL})
		if err != nil {
			log.Printf("Failed to scrape detail page: %v", err)
			return
		}
		printJSON(org)
		return
	}

	fmt.Printf("=== List page %d: %s ===\n", *page, adapter.ListPageURL(*page))
	orgs, err := adapter.ScrapeListPage(ctx, *page)
	if err != nil {
		log.Printf("Failed to scrape list page: %v", err)
		return
	}
	fmt.Printf("Orgs found: %d\n", len(orgs))

	missing := 0
	for _, org := range orgs {
		if org.DetailURL == nil {
			missing++
		}
	}
	fmt.Printf("Orgs without a detail URL: %d\n", missing)
	printJSON(orgs)
}

func printJSON(v interface{}) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		log.Printf("Failed to encode result: %v", err)
	}
}

type debugLogger struct{}

func (d *debugLogger) Debug(args ...interface{})                 { fmt.Println(args...) }
func (d *debugLogger) Info(args ...interface{})                  { fmt.Println(args...) }
func (d *debugLogger) Warn(args ...interface{})                  { fmt.Println(args...) }
func (d *debugLogger) Error(args ...interface{})                 { fmt.Println(args...) }
func (d *debugLogger) Debugf(format string, args ...interface{}) { fmt.Printf(format+"\n", args...) }
func (d *debugLogger) Infof(format string, args ...interface{})  { fmt.Printf(format+"\n", args...) }
func (d *debugLogger) Warnf(format string, args ...interface{})  { fmt.Printf(format+"\n", args...) }
func (d *debugLogger) Errorf(format string, args ...interface{}) { fmt.Printf(format+"\n", args...) }
