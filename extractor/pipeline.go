package extractor

import (
	"context"
	"fmt"
	"time"

	"nonprofit-scraper/internal/types"
	"nonprofit-scraper/utils"
)

// SiteScraper is the site-specific half of a run: list pages and detail pages
type SiteScraper interface {
	ScrapeListPage(ctx context.Context, page int) ([]types.OrgRecord, error)
	ScrapeDetailPage(ctx context.Context, org types.OrgRecord) (types.OrgRecord, error)
}

// Summary counts what happened during a run. It is informational only.
type Summary struct {
	ListPagesScraped int
	ListPagesFailed  int
	Records          int
	DetailsScraped   int
	DetailsFailed    int
	Duration         time.Duration
}

// Pipeline runs the list phase then the detail phase, checkpointing after each
type Pipeline struct {
	scraper    SiteScraper
	config     *types.Config
	logger     types.Logger
	outputPath string
}

// NewPipeline creates a pipeline that writes its checkpoints to outputPath
func NewPipeline(scraper SiteScraper, config *types.Config, logger types.Logger, outputPath string) *Pipeline {
	return &Pipeline{
		scraper:    scraper,
		config:     config,
		logger:     logger,
		outputPath: outputPath,
	}
}

// Run scrapes every list page, writes the first checkpoint, enriches every record from
// its detail page and writes the final output. Page and record failures are logged and
// skipped; only a failed checkpoint write is returned as an error.
func (p *Pipeline) Run(ctx context.Context) (*Summary, error) {
	startTime := time.Now()
	summary := &Summary{}
	results := NewResults()

	p.logger.Infof("Step 1: Scraping %d list pages of %s orgs...", p.config.MaxListPages, p.config.State)
	results.Append(p.scrapeListPages(ctx, summary)...)
	summary.Records = results.Len()
	p.logger.Infof("Found %d orgs", results.Len())

	if err := p.checkpoint(results); err != nil {
		return summary, err
	}

	p.logger.Info("Step 2: Scraping org detail pages...")
	p.scrapeDetailPages(ctx, results, summary)

	if err := p.checkpoint(results); err != nil {
		return summary, err
	}

	summary.Duration = time.Since(startTime)
	return summary, nil
}

// scrapeListPages returns the records found on pages 1..MaxListPages, in page order
func (p *Pipeline) scrapeListPages(ctx context.Context, summary *Summary) []types.OrgRecord {
	var orgs []types.OrgRecord

	for page := 1; page <= p.config.MaxListPages; page++ {
		if ctx.Err() != nil {
			p.logger.Warnf("Stopping list phase before page %d: %v", page, ctx.Err())
			break
		}

		p.logger.Infof("Processing page %d of %s orgs", page, p.config.State)
		pageOrgs, err := p.scraper.ScrapeListPage(ctx, page)
		if err != nil {
			p.logger.Errorf("Failed to scrape list page %d: %v", page, err)
			summary.ListPagesFailed++
			continue
		}

		p.logger.Debugf("Page %d listed %d orgs", page, len(pageOrgs))
		orgs = append(orgs, pageOrgs...)
		summary.ListPagesScraped++
	}

	return orgs
}

// scrapeDetailPages enriches each accumulated record in place, in discovery order
func (p *Pipeline) scrapeDetailPages(ctx context.Context, results *Results, summary *Summary) {
	for i := 0; i < results.Len(); i++ {
		if ctx.Err() != nil {
			p.logger.Warnf("Stopping detail phase before org %d: %v", i, ctx.Err())
			break
		}

		org := results.At(i)
		p.logger.Infof("Processing page for org %d/%d - %s", i+1, results.Len(), org.DisplayName())

		enriched, err := p.scraper.ScrapeDetailPage(ctx, org)
		if err != nil {
			p.logger.Errorf("Failed to scrape detail page for org %d - %s: %v", i+1, org.DisplayName(), err)
			summary.DetailsFailed++
			continue
		}

		results.Set(i, enriched)
		summary.DetailsScraped++
	}
}

func (p *Pipeline) checkpoint(results *Results) error {
	if err := utils.WriteJSONFile(p.outputPath, results.Records()); err != nil {
		return fmt.Errorf("failed to write checkpoint: %w", err)
	}
	p.logger.Infof("Results saved to %s (%d orgs)", p.outputPath, results.Len())
	return nil
}
