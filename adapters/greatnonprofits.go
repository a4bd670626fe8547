package adapters

import (
	"context"
	"errors"
	"fmt"

	"nonprofit-scraper/internal/types"
)

// ErrNoDetailURL is returned for records whose list item carried no detail link
var ErrNoDetailURL = errors.New("record has no detail URL")

// GreatNonprofitsAdapter scrapes the state directory of greatnonprofits.org
type GreatNonprofitsAdapter struct {
	*BaseAdapter
}

// NewGreatNonprofitsAdapter creates a new adapter that loads pages through loader
func NewGreatNonprofitsAdapter(config *types.Config, logger types.Logger, loader types.PageLoader) *GreatNonprofitsAdapter {
	return &GreatNonprofitsAdapter{
		BaseAdapter: NewBaseAdapter(config, logger, loader),
	}
}

// GetSiteName returns the site name
func (g *GreatNonprofitsAdapter) GetSiteName() string {
	return "greatnonprofits.org"
}

// ListPageURL returns the URL of a 1-based directory page sorted by review count, descending
func (g *GreatNonprofitsAdapter) ListPageURL(page int) string {
	return fmt.Sprintf("%s/state/%s/sort:review_count/direction:desc/page:%d", g.config.BaseURL, g.config.State, page)
}

// ScrapeListPage loads one directory page and returns a partial record per listed organization
func (g *GreatNonprofitsAdapter) ScrapeListPage(ctx context.Context, page int) ([]types.OrgRecord, error) {
	pageURL := g.ListPageURL(page)
	g.logger.Debugf("Fetching list page: %s", pageURL)

	doc, err := g.LoadDocument(ctx, pageURL)
	if err != nil {
		return nil, fmt.Errorf("failed to load list page %d: %w", page, err)
	}

	return ExtractListings(doc, g.config.BaseURL, page, g.logger), nil
}

// ScrapeDetailPage loads the record's detail page and returns a copy enriched with its
// description, contact info and reviews. Each enrichment step runs independently, so a
// failing step only leaves its own field unset.
func (g *GreatNonprofitsAdapter) ScrapeDetailPage(ctx context.Context, org types.OrgRecord) (types.OrgRecord, error) {
	if org.DetailURL == nil || *org.DetailURL == "" {
		return org, ErrNoDetailURL
	}

	doc, err := g.LoadDocument(ctx, *org.DetailURL)
	if err != nil {
		return org, fmt.Errorf("failed to load detail page: %w", err)
	}

	name := org.DisplayName()

	g.logger.Infof("Getting description for org %s", name)
	g.runStep("description", name, func() {
		org.Description = ExtractDescription(doc, g.logger)
	})

	g.logger.Infof("Getting contact info for org %s", name)
	g.runStep("contact info", name, func() {
		contact := ExtractContactInfo(doc, g.logger)
		org.ContactInfo = &contact
	})

	g.logger.Infof("Getting reviews for org %s", name)
	g.runStep("reviews", name, func() {
		org.Reviews = ExtractReviews(doc)
	})

	return org, nil
}

// runStep runs one enrichment step, logging instead of propagating a panic
func (g *GreatNonprofitsAdapter) runStep(step, name string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			g.logger.Errorf("Failed to extract %s for org %s: %v", step, name, r)
		}
	}()
	fn()
}
