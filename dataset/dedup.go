package dataset

// DedupStats статистика одного прохода дедупликации
type DedupStats struct {
	SourceRows    int `json:"source_rows"`
	UniqueRecords int `json:"unique_records"`
	Dropped       int `json:"dropped"`
}

// Deduplicator устраняет дубликаты записей по нормализованному ключу.
// Политика стабильная: из группы дубликатов остается первая запись
// в порядке входа, остальные молча отбрасываются и подсчитываются.
type Deduplicator struct {
	Mode KeyMode
}

// NewDeduplicator создает дедупликатор с заданным режимом ключа
func NewDeduplicator(mode KeyMode) *Deduplicator {
	return &Deduplicator{Mode: mode}
}

// Deduplicate возвращает таблицу, в которой на каждый ключ приходится
// не более одной записи. Повторный вызов на результате ничего не меняет.
func (d *Deduplicator) Deduplicate(t Table) (Table, DedupStats) {
	seen := make(map[string]struct{}, len(t))
	out := make(Table, 0, len(t))

	for _, r := range t {
		key := Key(r, d.Mode)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, r)
	}

	return out, DedupStats{
		SourceRows:    len(t),
		UniqueRecords: len(out),
		Dropped:       len(t) - len(out),
	}
}

// GroupLinks группирует уникальные ссылки по магазину.
// Порядок магазинов и ссылок внутри магазина — порядок первого появления.
func GroupLinks(t Table) []StoreLinks {
	index := make(map[string]int, len(t))
	groups := make([]StoreLinks, 0)

	for _, r := range t {
		key := StoreKey(r.Store)
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, StoreLinks{Store: r.Store})
		}
		if r.Link == "" {
			continue
		}
		linkKey := LinkKey(r.Link)
		duplicate := false
		for _, existing := range groups[i].Links {
			if LinkKey(existing) == linkKey {
				duplicate = true
				break
			}
		}
		if !duplicate {
			groups[i].Links = append(groups[i].Links, r.Link)
		}
	}
	return groups
}

// OnePerStore оставляет по одной записи на магазин независимо от режима
// ключа. Используется для листа "OneLinkPerStore" при экспорте.
func OnePerStore(t Table) Table {
	d := Deduplicator{Mode: KeyModeStore}
	out, _ := d.Deduplicate(t)
	return out
}
