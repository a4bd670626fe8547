package adapters

import (
	"strings"

	"nonprofit-scraper/internal/types"
)

// ExtractDescription reads the labelled subsections of the overview section.
// A later subsection with the same label replaces an earlier one.
func ExtractDescription(doc types.Node, logger types.Logger) types.Description {
	description := types.Description{}

	overview, ok := doc.First(`.np-overview`)
	if !ok {
		return description
	}

	for _, subsection := range overview.Find(`p`) {
		label, ok := subsection.First(`strong`)
		if !ok {
			logger.Warn("Org is missing a category label for a subsection in the description section")
			continue
		}

		category := strings.TrimSuffix(label.Text(), ":")
		content := strings.Replace(subsection.Text(), category+":", "", 1)

		if category == types.CausesCategory {
			causes := strings.Split(content, ",")
			for i, cause := range causes {
				causes[i] = strings.TrimSpace(cause)
			}
			description[category] = types.ListValue(causes)
		} else {
			description[category] = types.TextValue(strings.TrimSpace(content))
		}
	}

	return description
}
