package adapters

import "nonprofit-scraper/internal/types"

// ExtractReviews returns one entry per review element in document order,
// including entries with neither a rating nor a body.
func ExtractReviews(doc types.Node) []types.Review {
	reviewEls := doc.Find(`div[itemprop='review']`)
	reviews := make([]types.Review, 0, len(reviewEls))

	for _, reviewEl := range reviewEls {
		reviews = append(reviews, types.Review{
			Rating: ExtractInt(reviewEl, `span[itemprop='ratingValue']`),
			Text:   ExtractText(reviewEl, `div[itemprop='reviewBody']`),
		})
	}

	return reviews
}
