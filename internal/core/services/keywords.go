package services

import (
	"regexp"
	"sort"
	"strings"
)

// stopWords are common English function words ignored during keyword
// extraction. Checked against raw whitespace-split tokens, before
// punctuation stripping.
var stopWords = map[string]struct{}{
	"how": {}, "what": {}, "when": {}, "where": {}, "why": {}, "who": {},
	"which": {}, "is": {}, "are": {}, "was": {}, "were": {}, "be": {},
	"been": {}, "being": {}, "have": {}, "has": {}, "had": {}, "do": {},
	"does": {}, "did": {}, "will": {}, "would": {}, "should": {},
	"could": {}, "may": {}, "might": {}, "must": {}, "can": {}, "to": {},
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "but": {},
	"if": {}, "then": {}, "else": {}, "for": {}, "from": {}, "of": {},
	"on": {}, "at": {}, "by": {}, "with": {}, "about": {}, "into": {},
	"through": {}, "during": {}, "before": {}, "after": {}, "above": {},
	"below": {}, "up": {}, "down": {}, "out": {}, "off": {}, "over": {},
	"under": {}, "again": {}, "further": {}, "use": {}, "using": {},
	"used": {},
}

// techTerms are technology names recognised during keyword
// augmentation, so queries like "what is react" still extract the tech
// name even when surrounded by stop words. Multi-word names are listed
// so they can pre-empt their single-word constituents once sorted.
var techTerms = []string{
	"react js", "react.js", "next js", "next.js",
	"react", "typescript", "tailwind", "redux", "nextjs", "axios", "jest", "lodash",
	"mui", "bootstrap", "shadcn", "zod", "yup", "formik", "swr", "gsap", "framer",
	"d3", "chart", "recharts", "mobx", "recoil", "zustand",
}

var (
	nonWordRe     = regexp.MustCompile(`[^\w]`)
	punctuationRe = regexp.MustCompile(`[^\w\s]`)
	whitespaceRe  = regexp.MustCompile(`\s+`)
	techSplitRe   = regexp.MustCompile(`[\s.]+`)
)

// techMatcher is a precompiled technology-name pattern.
type techMatcher struct {
	term  string
	re    *regexp.Regexp
	words []string
}

// techMatchers holds the compiled technology patterns, longest term
// first so "next js" wins over "react" for a query mentioning both.
var techMatchers = compileTechMatchers()

func compileTechMatchers() []techMatcher {
	terms := make([]string, len(techTerms))
	copy(terms, techTerms)
	sort.SliceStable(terms, func(i, j int) bool {
		return len(terms[i]) > len(terms[j])
	})

	matchers := make([]techMatcher, 0, len(terms))
	for _, term := range terms {
		var re *regexp.Regexp
		if strings.Contains(term, " ") {
			// Phrase: allow flexible whitespace/dot separators.
			re = regexp.MustCompile(whitespaceRe.ReplaceAllString(term, `[\s.]+`))
		} else {
			// Single word: require word boundaries.
			re = regexp.MustCompile(`\b` + term + `\b`)
		}
		matchers = append(matchers, techMatcher{
			term:  term,
			re:    re,
			words: techSplitRe.Split(term, -1),
		})
	}
	return matchers
}

// NormalizeQuery lowercases and trims the query and strips punctuation
// while keeping whitespace. Both matchers compare against this form.
func NormalizeQuery(query string) string {
	return punctuationRe.ReplaceAllString(strings.TrimSpace(strings.ToLower(query)), "")
}

// KeywordExtractor tokenises queries into normalised keywords.
type KeywordExtractor struct{}

// NewKeywordExtractor creates a new keyword extractor.
func NewKeywordExtractor() *KeywordExtractor {
	return &KeywordExtractor{}
}

// Extract returns the ordered keyword set for a query: whitespace
// tokens minus stop words and short tokens, punctuation stripped, with
// a whole-query fallback and technology-name augmentation.
func (e *KeywordExtractor) Extract(query string) []string {
	queryLower := strings.ToLower(query)

	var keywords []string
	for _, token := range strings.Fields(queryLower) {
		if len(token) <= 2 {
			continue
		}
		if _, ok := stopWords[token]; ok {
			continue
		}
		keywords = append(keywords, nonWordRe.ReplaceAllString(token, ""))
	}

	trimmed := NormalizeQuery(query)

	// Single-word queries, or queries where every token was filtered,
	// fall back to the whole cleaned query as one keyword.
	if len(keywords) == 0 {
		clean := whitespaceRe.ReplaceAllString(trimmed, "")
		if len(clean) > 2 {
			if _, ok := stopWords[clean]; !ok {
				keywords = append(keywords, clean)
			}
		}
	}

	// Technology-name augmentation: known tech names found in the query
	// are added even if surrounded by stop words, unless a fuzzy
	// equivalent is already present.
	for _, tm := range techMatchers {
		if !tm.re.MatchString(queryLower) {
			continue
		}
		alreadyIncluded := false
		for _, kw := range keywords {
			for _, tw := range tm.words {
				if kw == tw || strings.Contains(kw, tw) || strings.Contains(tw, kw) {
					alreadyIncluded = true
					break
				}
			}
			if alreadyIncluded {
				break
			}
		}
		if alreadyIncluded {
			continue
		}
		for _, tw := range tm.words {
			if tw != "" && !containsString(keywords, tw) {
				keywords = append(keywords, tw)
			}
		}
	}

	// Last resort for queries that still produced nothing.
	if len(keywords) == 0 && len(trimmed) > 2 {
		if _, ok := stopWords[trimmed]; !ok {
			keywords = append(keywords, nonWordRe.ReplaceAllString(trimmed, ""))
		}
	}

	return keywords
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
