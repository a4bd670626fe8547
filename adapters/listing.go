package adapters

import (
	"strconv"

	"nonprofit-scraper/internal/types"
)

const (
	orgItemSelector     = `li[typeof='Organization']`
	orgLinkSelector     = `article > div > h2 > a`
	reviewCountSelector = `span[itemprop='reviewCount']`
	ratingValueSelector = `span[itemprop='ratingValue']`
)

// ExtractListings maps every organization item on a list page to a partial record,
// in document order. Items missing their title link are kept with name and URL unset.
func ExtractListings(doc types.Node, baseURL string, page int, logger types.Logger) []types.OrgRecord {
	items := doc.Find(orgItemSelector)
	orgs := make([]types.OrgRecord, 0, len(items))

	for _, item := range items {
		var org types.OrgRecord

		if link, ok := item.First(orgLinkSelector); ok {
			org.Name = types.String(link.Text())
			if href, _ := link.Attr("href"); href != "" {
				org.DetailURL = types.String(baseURL + href)
			}
		} else {
			logger.Warnf("An org on page %d is missing a URL and name", page)
		}

		org.ReviewCount = ExtractInt(item, reviewCountSelector)
		org.AverageRating = extractAverageRating(item)

		orgs = append(orgs, org)
	}

	return orgs
}

// extractAverageRating parses only the first character of the rating label,
// so a two-digit rating such as "10" reads as 1.
func extractAverageRating(item types.Node) *int {
	el, ok := item.First(ratingValueSelector)
	if !ok {
		return nil
	}
	text := el.Text()
	if text == "" {
		return nil
	}
	n, err := strconv.Atoi(text[:1])
	if err != nil {
		return nil
	}
	return &n
}
