package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
	"nonprofit-scraper/adapters"
	"nonprofit-scraper/extractor"
	"nonprofit-scraper/internal/types"
	"nonprofit-scraper/utils"
)

const usage = "Please provide the file path for where you want the org data written to as a CLI argument"

func main() {
	// Load .env file if present
	_ = godotenv.Load()

	var (
		verbose  = flag.Bool("verbose", false, "Enable verbose logging")
		httpOnly = flag.Bool("http-only", false, "Use HTTP requests only (disable headless browser)")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] <output-file>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	// Exactly one positional argument: the output path
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, usage)
		flag.Usage()
		os.Exit(2)
	}
	outputPath := flag.Arg(0)

	logger := newLogger(*verbose)

	config := types.ConfigFromEnv()
	if *httpOnly {
		config.UseHeadlessBrowser = false
	}

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

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	adapter := adapters.NewGreatNonprofitsAdapter(config, logger, loader)
	logger.Infof("Starting extraction from %s for %s orgs", adapter.GetSiteName(), adapter.Config().State)

	summary, err := extractor.NewPipeline(adapter, adapter.Config(), logger, outputPath).Run(ctx)
	if err != nil {
		loader.Close()
		logger.Fatalf("Extraction aborted: %v", err)
	}

	logger.Infof("Extraction completed in %v", summary.Duration)
	logger.Infof("List pages scraped: %d (failed: %d)", summary.ListPagesScraped, summary.ListPagesFailed)
	logger.Infof("Orgs found: %d", summary.Records)
	logger.Infof("Detail pages scraped: %d (failed: %d)", summary.DetailsScraped, summary.DetailsFailed)
	logger.Infof("Results written to: %s", outputPath)
}

// newLogger builds the text logger; LOG_LEVEL wins over -verbose and LOG_FILE adds a rotating file sink
func newLogger(verbose bool) *logrus.Logger {
	logger := logrus.New()

	// Set timestamp format with milliseconds
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05.000",
	})

	if levelStr := os.Getenv("LOG_LEVEL"); levelStr != "" {
		if level, err := logrus.ParseLevel(levelStr); err == nil {
			logger.SetLevel(level)
		}
	} else if verbose {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.InfoLevel)
	}

	if logFile := os.Getenv("LOG_FILE"); logFile != "" {
		logger.SetOutput(io.MultiWriter(os.Stderr, &lumberjack.Logger{
			Filename:  logFile,
			MaxSize:   50,
			LocalTime: true,
			Compress:  true,
		}))
	}

	return logger
}
