package domain_util

import (
	"strings"
	"unicode/utf8"
)

// CombinedStopWords returns the stop-word set applied to review text before
// TF-IDF weighting: a standard English list plus storefront terms that appear
// in almost every product review and carry no similarity signal.
func CombinedStopWords() map[string]bool {
	combined := make(map[string]bool)

	engStopwords := []string{"a", "an", "the", "and", "or", "but", "if", "then",
		"is", "are", "was", "were", "be", "been", "being", "am", "do", "does",
		"did", "have", "has", "had", "will", "would", "can", "could", "should",
		"shall", "may", "might", "must", "i", "me", "my", "we", "our", "you",
		"your", "he", "him", "his", "she", "her", "it", "its", "they", "them",
		"their", "this", "that", "these", "those", "there", "here", "to", "of",
		"in", "on", "at", "by", "for", "with", "about", "from", "as", "into",
		"so", "not", "no", "very", "too", "also", "just", "than", "because",
		"when", "what", "which", "who", "how", "all", "any", "both", "each",
		"few", "more", "most", "other", "some", "such", "only", "own", "same",
		"up", "down", "out", "over", "under", "again", "once", "get", "got"}
	for _, word := range engStopwords {
		combined[strings.ToLower(word)] = true
	}

	// Storefront vocabulary: present in nearly every review document, so it
	// dominates raw term frequency without distinguishing products.
	storeTerms := []string{"product", "item", "review", "star", "stars",
		"amazon", "buy", "bought", "purchase", "purchased", "order", "ordered",
		"price", "shipping", "delivery", "arrived", "recommend", "recommended",
		"return", "returned", "seller", "customer", "would", "really"}
	for _, term := range storeTerms {
		combined[strings.ToLower(term)] = true
	}

	return combined
}

// ShouldSkipWord reports whether a token is dropped before vectorization.
// Tokens arrive pre-split on non-alphanumeric runes, so only length and
// stop-word membership are left to check here.
func ShouldSkipWord(word string, stopWords map[string]bool) bool {
	if utf8.RuneCountInString(word) < 2 {
		return true
	}
	return stopWords[word]
}
