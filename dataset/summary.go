package dataset

import "math"

// Summary сводка одного прохода очистки, попадает в лист "Summary"
// итогового файла (resumen в исходных выгрузках).
type Summary struct {
	SourceRows       int     `json:"source_rows"`
	SkippedRows      int     `json:"skipped_rows"`
	UniquePairs      int     `json:"unique_pairs"`
	Stores           int     `json:"stores"`
	AvgLinksPerStore float64 `json:"avg_links_per_store"`
	UniqueDomains    int     `json:"unique_domains"`
	StoreColumn      string  `json:"store_column"`
	LinkColumn       string  `json:"link_column"`
	Sheet            string  `json:"sheet,omitempty"`
}

// BuildSummary собирает сводку по дедуплицированной таблице
func BuildSummary(sourceRows, skipped int, pairs Table, groups []StoreLinks) Summary {
	totalLinks := 0
	domains := make(map[string]struct{})
	for _, g := range groups {
		totalLinks += len(g.Links)
		for _, link := range g.Links {
			if d := LinkDomain(link); d != "" {
				domains[d] = struct{}{}
			}
		}
	}

	avg := 0.0
	if len(groups) > 0 {
		avg = math.Round(float64(totalLinks)/float64(len(groups))*100) / 100
	}

	return Summary{
		SourceRows:       sourceRows,
		SkippedRows:      skipped,
		UniquePairs:      len(pairs),
		Stores:           len(groups),
		AvgLinksPerStore: avg,
		UniqueDomains:    len(domains),
	}
}
