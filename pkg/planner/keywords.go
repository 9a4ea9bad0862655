package planner

import "strings"

// Complexity keyword tables shared by the investment-query fallback and
// the orchestrator's fast-track bypass of the triager.
var (
	englishComplexityKeywords = []string{
		"analyze", "analysis", "compare", "recommend", "recommendation",
		"invest", "ipo", "valuation", "outlook", "trend", "worth",
		"should i", "buy", "product",
	}
	cjkComplexityKeywords = []string{
		"投资", "值得", "买", "估值", "产品", "趋势", "分析", "对比", "推荐",
	}
	comparatorTokens = []string{" vs ", " vs. ", "versus", "对比"}
)

// ComplexityKeywordCounts returns the English and CJK keyword hit counts.
func ComplexityKeywordCounts(query string) (english, cjk int) {
	lower := strings.ToLower(query)
	for _, kw := range englishComplexityKeywords {
		if strings.Contains(lower, kw) {
			english++
		}
	}
	for _, kw := range cjkComplexityKeywords {
		if strings.Contains(query, kw) {
			cjk++
		}
	}
	return english, cjk
}

// HasComparator reports an explicit comparison token ("X vs Y").
func HasComparator(query string) bool {
	lower := strings.ToLower(query)
	for _, token := range comparatorTokens {
		if strings.Contains(lower, token) {
			return true
		}
	}
	return false
}

// LooksLikeInvestmentQuery reports a single keyword hit. Used by the
// multi-agent fallback on single-task plans.
func LooksLikeInvestmentQuery(query string) bool {
	english, cjk := ComplexityKeywordCounts(query)
	return english > 0 || cjk > 0 || HasComparator(query)
}

// FastTrackToPlanner reports whether a query lexically signals complex
// multi-step analysis strongly enough to skip the triager: two or more
// keyword hits in either language, or an explicit comparator.
func FastTrackToPlanner(query string) bool {
	english, cjk := ComplexityKeywordCounts(query)
	return english >= 2 || cjk >= 2 || HasComparator(query)
}
