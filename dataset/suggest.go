package dataset

import (
	"sort"
	"strings"
	"unicode"
)

// Suggestion пара магазинов из разных таблиц, похожих по написанию
type Suggestion struct {
	StoreA string  `json:"store_a"`
	StoreB string  `json:"store_b"`
	Score  float64 `json:"score"`
}

// Suggester ищет вероятные соответствия между множествами OnlyInA и
// OnlyInB: магазины, отличающиеся опечаткой или формой слова. Оценка —
// среднее биграммной близости и близости по стемам токенов.
type Suggester struct {
	// Threshold минимальная оценка для включения пары в результат
	Threshold float64
	stemmer   *TokenStemmer
}

// DefaultSuggestThreshold порог по умолчанию
const DefaultSuggestThreshold = 0.72

// NewSuggester создает Suggester для указанного языка стемминга
func NewSuggester(threshold float64, language string) *Suggester {
	if threshold <= 0 || threshold > 1 {
		threshold = DefaultSuggestThreshold
	}
	return &Suggester{
		Threshold: threshold,
		stemmer:   NewTokenStemmer(language),
	}
}

// Suggest возвращает для каждого магазина из onlyA лучшую пару из onlyB
// с оценкой не ниже порога. Результат отсортирован по убыванию оценки.
func (s *Suggester) Suggest(onlyA, onlyB []Record) []Suggestion {
	if len(onlyA) == 0 || len(onlyB) == 0 {
		return nil
	}

	suggestions := make([]Suggestion, 0)
	for _, ra := range onlyA {
		best := Suggestion{Score: -1}
		for _, rb := range onlyB {
			score := s.Score(ra.Store, rb.Store)
			if score > best.Score {
				best = Suggestion{StoreA: ra.Store, StoreB: rb.Store, Score: score}
			}
		}
		if best.Score >= s.Threshold {
			suggestions = append(suggestions, best)
		}
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Score > suggestions[j].Score
	})
	return suggestions
}

// Score вычисляет близость двух названий магазинов в диапазоне [0, 1]
func (s *Suggester) Score(a, b string) float64 {
	ka, kb := StoreKey(a), StoreKey(b)
	if ka == kb {
		return 1.0
	}
	bigram := ngramSimilarity(ka, kb, 2)
	stems := jaccardIndex(
		toSet(s.stemmer.StemTokens(tokenize(ka))),
		toSet(s.stemmer.StemTokens(tokenize(kb))),
	)
	return (bigram + stems) / 2
}

// ngramSimilarity близость строк как индекс Жаккара множеств N-грамм
func ngramSimilarity(s1, s2 string, n int) float64 {
	return jaccardIndex(generateNGrams(s1, n), generateNGrams(s2, n))
}

// generateNGrams строит множество N-грамм строки.
// Строка короче n сама становится единственной граммой.
func generateNGrams(text string, n int) map[string]struct{} {
	grams := make(map[string]struct{})
	runes := []rune(text)
	if len(runes) < n {
		if len(runes) > 0 {
			grams[string(runes)] = struct{}{}
		}
		return grams
	}
	for i := 0; i <= len(runes)-n; i++ {
		grams[string(runes[i:i+n])] = struct{}{}
	}
	return grams
}

// jaccardIndex индекс Жаккара двух множеств
func jaccardIndex(set1, set2 map[string]struct{}) float64 {
	if len(set1) == 0 && len(set2) == 0 {
		return 1.0
	}
	if len(set1) == 0 || len(set2) == 0 {
		return 0.0
	}

	intersection := 0
	for key := range set1 {
		if _, exists := set2[key]; exists {
			intersection++
		}
	}
	union := len(set1) + len(set2) - intersection
	if union == 0 {
		return 0.0
	}
	return float64(intersection) / float64(union)
}

// tokenize разбивает строку на токены по пробелам и пунктуации
func tokenize(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}

func toSet(tokens []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		set[t] = struct{}{}
	}
	return set
}
