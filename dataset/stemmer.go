package dataset

import (
	"strings"
	"sync"

	"github.com/kljensen/snowball"
)

// DefaultStemLanguage language used when none is configured.
// Store lists in this system mostly carry Spanish retail names.
const DefaultStemLanguage = "spanish"

// TokenStemmer reduces tokens to their stems using the Snowball
// algorithm, with a cache since store lists repeat the same words a lot.
type TokenStemmer struct {
	language string
	cache    map[string]string
	mu       sync.RWMutex
}

// NewTokenStemmer creates a stemmer for the given Snowball language.
// An empty language falls back to DefaultStemLanguage.
func NewTokenStemmer(language string) *TokenStemmer {
	if language == "" {
		language = DefaultStemLanguage
	}
	return &TokenStemmer{
		language: language,
		cache:    make(map[string]string),
	}
}

// Stem returns the stemmed version of a single word.
// Example (spanish): "supermercados" -> "supermerc".
// If stemming fails the normalized word is returned unchanged.
func (s *TokenStemmer) Stem(word string) string {
	normalized := strings.ToLower(strings.TrimSpace(word))
	if normalized == "" {
		return ""
	}

	s.mu.RLock()
	if cached, found := s.cache[normalized]; found {
		s.mu.RUnlock()
		return cached
	}
	s.mu.RUnlock()

	stemmed, err := snowball.Stem(normalized, s.language, true)
	if err != nil {
		stemmed = normalized
	}

	s.mu.Lock()
	s.cache[normalized] = stemmed
	s.mu.Unlock()

	return stemmed
}

// StemTokens returns stemmed versions of multiple words
func (s *TokenStemmer) StemTokens(tokens []string) []string {
	if len(tokens) == 0 {
		return []string{}
	}
	stemmed := make([]string, len(tokens))
	for i, token := range tokens {
		stemmed[i] = s.Stem(token)
	}
	return stemmed
}
