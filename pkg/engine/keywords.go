package engine

import (
	"strings"

	"github.com/secmon-lab/argus/pkg/domain/model"
	"github.com/secmon-lab/argus/pkg/domain/types"
)

// Keyword tables for free-text-like answers. The original questionnaires
// accept qualitative phrases rather than enumerations, so matching is
// substring-based and case-insensitive. Tables are ordered: the first
// matching entry wins, and an unmatched answer falls through to the
// documented default with no signal recorded. The sets are carried over
// verbatim and are not guaranteed exhaustive or mutually exclusive.

type keywordScore struct {
	keyword string
	score   int
}

// matchKeyword scores a free-text answer against an ordered keyword table
func matchKeyword(answer string, table []keywordScore, fallback int) int {
	s := strings.ToLower(answer)
	for _, entry := range table {
		if strings.Contains(s, entry.keyword) {
			return entry.score
		}
	}
	return fallback
}

// answerContains reports whether a free-text answer contains the keyword
// (case-insensitive). Absent answers never match.
func answerContains(rs model.ResponseSet, id types.QuestionID, keyword string) bool {
	return strings.Contains(strings.ToLower(rs.Text(id)), keyword)
}

// Exposure sub-factor defaults: an absent or unmatched answer scores the
// baseline 2 on every sub-factor.
const exposureSubFactorDefault = 2

// publicProfileKeywords maps the public-profile answer onto 1-5
var publicProfileKeywords = []keywordScore{
	{"very high", 5},
	{"high", 4},
	{"moderate", 3},
	{"low", 2},
	{"minimal", 1},
	{"private", 1},
}

// predictabilityKeywords maps the movement-pattern answer onto 1-5
var predictabilityKeywords = []keywordScore{
	{"extremely predictable", 5},
	{"mostly predictable", 4},
	{"somewhat predictable", 3},
	{"varied", 2},
	{"random", 1},
}

// digitalFootprintKeywords maps the online-presence answer onto 1-5
var digitalFootprintKeywords = []keywordScore{
	{"extensive", 5},
	{"significant", 4},
	{"moderate", 3},
	{"limited", 2},
	{"minimal", 1},
}

// geographicRiskKeywords maps the travel/location answer onto 1-5
var geographicRiskKeywords = []keywordScore{
	{"war zone", 5},
	{"extreme", 5},
	{"high risk", 4},
	{"elevated", 3},
	{"moderate", 2},
	{"low", 1},
}

// crimeAreaSignals converts an area-crime description into risk-factor
// points for likelihood calculators: "high crime" counts double, a
// moderate description counts single.
func crimeAreaSignals(rs model.ResponseSet, id types.QuestionID) int {
	answer := strings.ToLower(rs.Text(id))
	switch {
	case strings.Contains(answer, "high crime"):
		return 2
	case strings.Contains(answer, "moderate crime"):
		return 1
	default:
		return 0
	}
}
