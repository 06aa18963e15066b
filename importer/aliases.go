package importer

import (
	"fmt"
	"strings"
)

// ColumnAliases типизированный перечень принимаемых заголовков колонок.
// Раньше колонки угадывались по имени на лету, теперь список явный и
// передается в загрузчики как конфигурация.
type ColumnAliases struct {
	// Store заголовки, распознаваемые как колонка магазина
	Store []string
	// LinkPreferred заголовки, предпочитаемые как колонка ссылки
	LinkPreferred []string
	// LinkPrefix колонки link_1..link_n распознаются по этому префиксу
	LinkPrefix string
}

// DefaultAliases алиасы по умолчанию: исторические имена колонок из
// выгрузок визитов плюс очевидные английские варианты
func DefaultAliases() ColumnAliases {
	return ColumnAliases{
		Store:         []string{"tienda", "store", "shop", "retailer"},
		LinkPreferred: []string{"id_visita (url extraída)", "link", "url", "id_visita"},
		LinkPrefix:    "link",
	}
}

// normalizeHeader приводит заголовок к форме для сравнения
func normalizeHeader(h string) string {
	return strings.ToLower(strings.TrimSpace(h))
}

// resolveColumn ищет явно запрошенную колонку по имени (без учета
// регистра). Отсутствие запрошенной колонки — ошибка входных данных.
func resolveColumn(headers []string, requested string) (int, error) {
	want := normalizeHeader(requested)
	for i, h := range headers {
		if normalizeHeader(h) == want {
			return i, nil
		}
	}
	return -1, fmt.Errorf("column %q not found, available: %s", requested, strings.Join(headers, ", "))
}

// DetectStoreColumn ищет колонку магазина по алиасам
func (a ColumnAliases) DetectStoreColumn(headers []string) (int, bool) {
	for _, alias := range a.Store {
		for i, h := range headers {
			if normalizeHeader(h) == normalizeHeader(alias) {
				return i, true
			}
		}
	}
	return -1, false
}

// DetectLinkColumn ищет колонку ссылки: сначала предпочитаемые алиасы,
// затем префикс link_*, затем первая колонка, в значениях которой
// встречается http. Порядок повторяет эвристику исходных выгрузок.
func (a ColumnAliases) DetectLinkColumn(headers []string, rows [][]string) (int, bool) {
	for _, alias := range a.LinkPreferred {
		for i, h := range headers {
			if normalizeHeader(h) == normalizeHeader(alias) {
				return i, true
			}
		}
	}

	if a.LinkPrefix != "" {
		for i, h := range headers {
			if strings.HasPrefix(normalizeHeader(h), normalizeHeader(a.LinkPrefix)) {
				return i, true
			}
		}
	}

	for i := range headers {
		for _, row := range rows {
			if i < len(row) && strings.Contains(strings.ToLower(row[i]), "http") {
				return i, true
			}
		}
	}
	return -1, false
}
