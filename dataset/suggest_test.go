package dataset

import "testing"

// TestSuggester_Score проверяет шкалу оценки похожести
func TestSuggester_Score(t *testing.T) {
	s := NewSuggester(DefaultSuggestThreshold, "spanish")

	if score := s.Score("Supermercado Norte", "supermercado norte"); score != 1.0 {
		t.Errorf("Score(identical keys) = %f, want 1.0", score)
	}

	similar := s.Score("Supermercado Norte", "Supermercados Norte")
	if similar < 0.7 {
		t.Errorf("Score(singular vs plural) = %f, want >= 0.7", similar)
	}

	different := s.Score("Supermercado Norte", "Farmacia Cruz Verde")
	if different >= similar {
		t.Errorf("Score(unrelated) = %f should be below Score(similar) = %f",
			different, similar)
	}
}

// TestSuggester_Suggest лучшая пара для каждого магазина из A
func TestSuggester_Suggest(t *testing.T) {
	s := NewSuggester(0.6, "spanish")
	onlyA := []Record{
		{Store: "Supermercados del Sur"},
		{Store: "Libreria Central"},
	}
	onlyB := []Record{
		{Store: "Supermercado del Sur"},
		{Store: "Panaderia La Espiga"},
	}

	suggestions := s.Suggest(onlyA, onlyB)
	if len(suggestions) == 0 {
		t.Fatal("Suggest() returned no suggestions")
	}
	if suggestions[0].StoreA != "Supermercados del Sur" ||
		suggestions[0].StoreB != "Supermercado del Sur" {
		t.Errorf("best suggestion = %+v", suggestions[0])
	}

	// Результат отсортирован по убыванию оценки
	for i := 1; i < len(suggestions); i++ {
		if suggestions[i].Score > suggestions[i-1].Score {
			t.Errorf("suggestions are not sorted: %f after %f",
				suggestions[i].Score, suggestions[i-1].Score)
		}
	}
}

// TestSuggester_Threshold пары ниже порога отбрасываются
func TestSuggester_Threshold(t *testing.T) {
	s := NewSuggester(0.99, "spanish")
	suggestions := s.Suggest(
		[]Record{{Store: "Tienda Uno"}},
		[]Record{{Store: "Almacen Dos"}},
	)
	if len(suggestions) != 0 {
		t.Errorf("Suggest() with high threshold = %+v, want empty", suggestions)
	}
}

// TestSuggester_EmptyInput пустые множества дают nil
func TestSuggester_EmptyInput(t *testing.T) {
	s := NewSuggester(DefaultSuggestThreshold, "spanish")
	if got := s.Suggest(nil, []Record{{Store: "X"}}); got != nil {
		t.Errorf("Suggest(nil, B) = %+v, want nil", got)
	}
	if got := s.Suggest([]Record{{Store: "X"}}, nil); got != nil {
		t.Errorf("Suggest(A, nil) = %+v, want nil", got)
	}
}

// TestNewSuggester_InvalidThreshold невалидный порог заменяется дефолтным
func TestNewSuggester_InvalidThreshold(t *testing.T) {
	for _, threshold := range []float64{-0.5, 0, 1.5} {
		s := NewSuggester(threshold, "")
		if s.Threshold != DefaultSuggestThreshold {
			t.Errorf("NewSuggester(%f) threshold = %f, want %f",
				threshold, s.Threshold, DefaultSuggestThreshold)
		}
	}
}

func TestTokenStemmer_Stem(t *testing.T) {
	s := NewTokenStemmer("spanish")

	if s.Stem("supermercados") != s.Stem("supermercado") {
		t.Error("spanish stems for singular and plural should match")
	}
	if s.Stem("") != "" {
		t.Error("Stem(empty) should return empty string")
	}
	if s.Stem("  TIENDAS ") != s.Stem("tiendas") {
		t.Error("Stem should normalize case and whitespace")
	}
}

func TestTokenStemmer_StemTokens(t *testing.T) {
	s := NewTokenStemmer("")
	out := s.StemTokens(nil)
	if out == nil || len(out) != 0 {
		t.Errorf("StemTokens(nil) = %v, want empty slice", out)
	}

	out = s.StemTokens([]string{"tiendas", "centrales"})
	if len(out) != 2 {
		t.Fatalf("StemTokens() returned %d tokens, want 2", len(out))
	}
}

func TestTokenStemmer_CacheConcurrency(t *testing.T) {
	s := NewTokenStemmer("spanish")
	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func() {
			for j := 0; j < 100; j++ {
				s.Stem("supermercados")
				s.Stem("tiendas")
			}
			done <- struct{}{}
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}
}

// TestBuildSummary проверяет сводку по сгруппированной таблице
func TestBuildSummary(t *testing.T) {
	pairs := Table{
		{Store: "A", Link: "https://services.traxretail.com/1"},
		{Store: "A", Link: "https://services.traxretail.com/2"},
		{Store: "B", Link: "https://example.com/x"},
	}
	groups := GroupLinks(pairs)

	summary := BuildSummary(10, 2, pairs, groups)
	if summary.SourceRows != 10 || summary.SkippedRows != 2 {
		t.Errorf("summary rows = %d/%d, want 10/2", summary.SourceRows, summary.SkippedRows)
	}
	if summary.UniquePairs != 3 || summary.Stores != 2 {
		t.Errorf("summary pairs/stores = %d/%d, want 3/2", summary.UniquePairs, summary.Stores)
	}
	if summary.AvgLinksPerStore != 1.5 {
		t.Errorf("AvgLinksPerStore = %f, want 1.5", summary.AvgLinksPerStore)
	}
	if summary.UniqueDomains != 2 {
		t.Errorf("UniqueDomains = %d, want 2", summary.UniqueDomains)
	}
}
