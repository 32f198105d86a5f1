// Package endpoint builds Wikipedia REST API URLs.
package endpoint

import "strings"

// RandomSummaryTemplate is the REST v1 endpoint returning the summary of a
// random article. {language} selects the language edition.
const RandomSummaryTemplate = "https://{language}.wikipedia.org/api/rest_v1/page/random/summary"

// RandomSummary substitutes language into RandomSummaryTemplate verbatim.
// The code is neither validated nor escaped.
func RandomSummary(language string) string {
	return strings.Replace(RandomSummaryTemplate, "{language}", language, 1)
}
