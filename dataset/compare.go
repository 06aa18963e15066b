package dataset

// ComparisonResult результат сравнения двух дедуплицированных таблиц.
// Три множества разбивают объединение ключей A и B без пересечений.
type ComparisonResult struct {
	OnlyInA []Record `json:"only_in_a"`
	OnlyInB []Record `json:"only_in_b"`
	InBoth  []Record `json:"in_both"`

	// Suggestions возможные соответствия между OnlyInA и OnlyInB,
	// различающиеся только написанием (заполняется Suggester-ом)
	Suggestions []Suggestion `json:"suggestions,omitempty"`
}

// Comparator сравнивает две таблицы по нормализованному ключу
type Comparator struct {
	Mode KeyMode
}

// NewComparator создает компаратор с заданным режимом ключа
func NewComparator(mode KeyMode) *Comparator {
	return &Comparator{Mode: mode}
}

// Compare строит разбиение ключей таблиц A и B.
// Обе таблицы предварительно дедуплицируются (Compare идемпотентен
// по отношению к дубликатам). При совпадении ключей с разными
// ссылками в InBoth попадает запись из таблицы A.
func (c *Comparator) Compare(a, b Table) ComparisonResult {
	d := Deduplicator{Mode: c.Mode}
	a, _ = d.Deduplicate(a)
	b, _ = d.Deduplicate(b)

	keysA := make(map[string]struct{}, len(a))
	for _, r := range a {
		keysA[Key(r, c.Mode)] = struct{}{}
	}
	keysB := make(map[string]struct{}, len(b))
	for _, r := range b {
		keysB[Key(r, c.Mode)] = struct{}{}
	}

	result := ComparisonResult{
		OnlyInA: make([]Record, 0),
		OnlyInB: make([]Record, 0),
		InBoth:  make([]Record, 0),
	}

	// Порядок OnlyInA и InBoth следует порядку A, OnlyInB — порядку B
	for _, r := range a {
		if _, ok := keysB[Key(r, c.Mode)]; ok {
			result.InBoth = append(result.InBoth, r)
		} else {
			result.OnlyInA = append(result.OnlyInA, r)
		}
	}
	for _, r := range b {
		if _, ok := keysA[Key(r, c.Mode)]; !ok {
			result.OnlyInB = append(result.OnlyInB, r)
		}
	}

	return result
}
