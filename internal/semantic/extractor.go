package semantic

import "strings"

type dictionaryExtractor struct{}

// New returns the fixed-dictionary extractor.
func New() Extractor {
	return dictionaryExtractor{}
}

// Extract is total: it never fails and never returns an unknown intent or domain.
func (dictionaryExtractor) Extract(content string) Features {
	return Extract(content)
}

// Extract analyses content with the built-in dictionaries.
func Extract(content string) Features {
	if strings.TrimSpace(content) == "" {
		return Default()
	}

	lower := strings.ToLower(content)
	return Features{
		Keywords:   extractKeywords(lower),
		Intent:     identifyIntent(lower),
		Domain:     classifyDomain(lower),
		Complexity: assessComplexity(content),
		Confidence: ExtractionConfidence,
	}
}

// Default is the feature set substituted when analysis fails.
func Default() Features {
	return Features{
		Keywords:   []string{},
		Intent:     IntentGeneral,
		Domain:     DomainGeneral,
		Complexity: ComplexityLow,
		Confidence: FailedConfidence,
	}
}

func extractKeywords(lower string) []string {
	keywords := make([]string, 0, 4)
	for _, term := range technicalTerms {
		if strings.Contains(lower, term) {
			keywords = append(keywords, term)
		}
	}
	return keywords
}

func identifyIntent(lower string) Intent {
	for _, rule := range intentRules {
		if containsAny(lower, rule.triggers) {
			return rule.intent
		}
	}
	return IntentGeneral
}

func classifyDomain(lower string) Domain {
	for _, rule := range domainRules {
		if containsAny(lower, rule.triggers) {
			return rule.domain
		}
	}
	return DomainGeneral
}

func assessComplexity(content string) Complexity {
	switch n := len(content); {
	case n < LowComplexityMaxLen:
		return ComplexityLow
	case n < MediumComplexityMaxLen:
		return ComplexityMedium
	default:
		return ComplexityHigh
	}
}

func containsAny(s string, triggers []string) bool {
	for _, t := range triggers {
		if strings.Contains(s, t) {
			return true
		}
	}
	return false
}
