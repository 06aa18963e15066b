package importer

import (
	"regexp"
	"strings"
)

var (
	guidRe    = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)
	formulaRe = regexp.MustCompile(`(?i)"(https?://[^"]+)"`)
)

// ResolveLinkText извлекает ссылку из текстового значения ячейки:
// формула =HYPERLINK(...)/=HIPERVINCULO(...) дает первый URL в кавычках,
// голый GUID дополняется префиксом urlPrefix, остальное возвращается
// как есть после обрезки пробелов.
func ResolveLinkText(value, urlPrefix string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}

	if isHyperlinkFormula(value) {
		if m := formulaRe.FindStringSubmatch(value); m != nil {
			return m[1]
		}
		return ""
	}

	if urlPrefix != "" && guidRe.MatchString(value) {
		return urlPrefix + value
	}

	return value
}

// isHyperlinkFormula проверяет формулы гиперссылок, включая испанский
// вариант HIPERVINCULO из локализованного Excel
func isHyperlinkFormula(value string) bool {
	upper := strings.ToUpper(value)
	return strings.HasPrefix(upper, "=HYPERLINK(") || strings.HasPrefix(upper, "=HIPERVINCULO(")
}
