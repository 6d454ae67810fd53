package model

import (
	"strings"

	"github.com/secmon-lab/argus/pkg/domain/types"
)

// Response represents a single respondent answer captured during an
// interview. Answers are immutable once captured; the engine only reads them.
// Answer holds one of: string, bool, float64/int, []string, or nil (absent).
type Response struct {
	QuestionID types.QuestionID
	Answer     any
}

// ResponseSet is the full answer mapping of one assessment, keyed by
// question ID. All lookups default safely: an absent or malformed answer
// contributes the documented baseline (zero signal) and never raises.
type ResponseSet map[types.QuestionID]Response

// NewResponseSet builds a ResponseSet from a list of responses. Later
// responses with a duplicate question ID overwrite earlier ones.
func NewResponseSet(responses []Response) ResponseSet {
	rs := make(ResponseSet, len(responses))
	for _, r := range responses {
		rs[r.QuestionID] = r
	}
	return rs
}

// Has reports whether an answer was captured for the question
func (rs ResponseSet) Has(id types.QuestionID) bool {
	if rs == nil {
		return false
	}
	r, ok := rs[id]
	return ok && r.Answer != nil
}

// Text returns the answer as a string, or "" if absent or not textual
func (rs ResponseSet) Text(id types.QuestionID) string {
	if rs == nil {
		return ""
	}
	if s, ok := rs[id].Answer.(string); ok {
		return s
	}
	return ""
}

// Bool returns true only for an explicit affirmative answer: boolean true,
// or the strings "yes" / "true" (case-insensitive). Absent means false.
func (rs ResponseSet) Bool(id types.QuestionID) bool {
	if rs == nil {
		return false
	}
	switch v := rs[id].Answer.(type) {
	case bool:
		return v
	case string:
		s := strings.ToLower(strings.TrimSpace(v))
		return s == "yes" || s == "true"
	default:
		return false
	}
}

// No reports an explicit negative answer: the question was answered and the
// answer is not affirmative. An absent answer is not a negative; unanswered
// questions contribute nothing to any score.
func (rs ResponseSet) No(id types.QuestionID) bool {
	return rs.Has(id) && !rs.Bool(id)
}

// Number returns the answer as a float64. The second return value is false
// if the answer is absent or not numeric.
func (rs ResponseSet) Number(id types.QuestionID) (float64, bool) {
	if rs == nil {
		return 0, false
	}
	switch v := rs[id].Answer.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

// List returns the answer as an ordered list of strings, or nil if absent
func (rs ResponseSet) List(id types.QuestionID) []string {
	if rs == nil {
		return nil
	}
	switch v := rs[id].Answer.(type) {
	case []string:
		return v
	case []any:
		items := make([]string, 0, len(v))
		for _, e := range v {
			if s, ok := e.(string); ok {
				items = append(items, s)
			}
		}
		return items
	default:
		return nil
	}
}
