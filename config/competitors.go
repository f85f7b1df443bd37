package config

import (
	"regexp"

	"seoagent/types"
)

// ProductCompetitors maps each product to its competitor sites. Only name
// and base URL are configured; capability pages are discovered dynamically.
var ProductCompetitors = map[string][]types.Competitor{
	"Assets": {
		{Name: "Bynder", BaseURL: "https://www.bynder.com/"},
		{Name: "Brandfolder", BaseURL: "https://brandfolder.com/"},
		{Name: "Canto", BaseURL: "https://www.canto.com/"},
		{Name: "Widen", BaseURL: "https://www.widen.com/"},
	},
	"Forms": {
		{Name: "Typeform", BaseURL: "https://www.typeform.com/"},
		{Name: "Jotform", BaseURL: "https://www.jotform.com/"},
		{Name: "Formstack", BaseURL: "https://www.formstack.com/"},
		{Name: "Wufoo", BaseURL: "https://www.wufoo.com/"},
	},
	"Sites": {
		{Name: "Wix", BaseURL: "https://www.wix.com/"},
		{Name: "Squarespace", BaseURL: "https://www.squarespace.com/"},
		{Name: "Webflow", BaseURL: "https://webflow.com/"},
		{Name: "WordPress", BaseURL: "https://wordpress.com/"},
	},
}

// ProductOrder fixes the order products are listed in. Map iteration order
// is random; API responses must be stable.
var ProductOrder = []string{"Assets", "Forms", "Sites"}

// ProductURLPatterns validates that an analysis URL belongs to the selected
// product's documentation tree.
var ProductURLPatterns = map[string]*regexp.Regexp{
	"Assets": regexp.MustCompile(`^https://experienceleague\.adobe\.com/en/docs/experience-manager-cloud-service/content/assets(/.*)?$`),
	"Forms":  regexp.MustCompile(`^https://experienceleague\.adobe\.com/en/docs/experience-manager-cloud-service/content/forms(/.*)?$`),
	"Sites":  regexp.MustCompile(`^https://experienceleague\.adobe\.com/en/docs/experience-manager-cloud-service/content/sites(/.*)?$`),
}

// DefaultExcludedTerms are first-party product names that must not surface
// as keywords.
var DefaultExcludedTerms = []string{
	"adaptive form", "adaptive forms",
	"aem sites", "aem site",
	"aem forms", "aem form",
	"aem as a cloud service", "aem cloud service",
	"aem assets", "aem asset",
	"adobe experience manager",
	"experience manager",
	"aem",
}
