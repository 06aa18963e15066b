package dataset

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/net/publicsuffix"
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// ErrEmptyStore название магазина пусто после нормализации
var ErrEmptyStore = errors.New("store name is empty after normalization")

var foldCaser = cases.Fold()

// Normalizer приводит записи к канонической форме для сравнения.
// Не имеет состояния и побочных эффектов: на вход сырая запись,
// на выход нормализованная копия.
type Normalizer struct{}

// NewNormalizer создает нормализатор
func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

// Normalize возвращает запись с нормализованными полями.
// Ошибка, если магазин пуст после очистки.
func (n *Normalizer) Normalize(r Record) (Record, error) {
	store := NormalizeStore(r.Store)
	if store == "" {
		return Record{}, fmt.Errorf("record (%q, %q): %w", r.Store, r.Link, ErrEmptyStore)
	}
	return Record{
		Store: store,
		Link:  strings.TrimSpace(r.Link),
	}, nil
}

// NormalizeTable нормализует все записи таблицы, сохраняя порядок.
// Записи с пустым магазином отбрасываются и подсчитываются.
func (n *Normalizer) NormalizeTable(t Table) (Table, int) {
	out := make(Table, 0, len(t))
	skipped := 0
	for _, r := range t {
		nr, err := n.Normalize(r)
		if err != nil {
			skipped++
			continue
		}
		out = append(out, nr)
	}
	return out, skipped
}

// NormalizeStore очищает название магазина для отображения:
// обрезка, схлопывание внутренних пробелов, NFC, унификация кавычек и тире.
// Регистр сохраняется, это каноническая форма, а не ключ.
func NormalizeStore(s string) string {
	s = norm.NFC.String(s)
	s = normalizeQuotes(s)
	s = normalizeHyphens(s)
	return strings.Join(strings.Fields(s), " ")
}

// Key возвращает ключ дедупликации/сравнения записи
func Key(r Record, mode KeyMode) string {
	k := StoreKey(r.Store)
	if mode == KeyModeStoreLink {
		k += "\x00" + LinkKey(r.Link)
	}
	return k
}

// StoreKey строит ключ по названию магазина: нормализация + case folding.
// Диакритика сохраняется: "Ñandú" и "Nandu" считаются разными магазинами.
func StoreKey(s string) string {
	return foldCaser.String(NormalizeStore(s))
}

// LinkKey строит ключ по ссылке: схема и хост приводятся к нижнему
// регистру, завершающий "/" отбрасывается. Невалидные URL сравниваются
// как есть после обрезки пробелов.
func LinkKey(link string) string {
	link = strings.TrimSpace(link)
	if link == "" {
		return ""
	}
	u, err := url.Parse(link)
	if err != nil || u.Host == "" {
		return strings.TrimSuffix(strings.ToLower(link), "/")
	}
	u.Scheme = strings.ToLower(u.Scheme)
	u.Host = strings.ToLower(u.Host)
	return strings.TrimSuffix(u.String(), "/")
}

// IsURLLike нестрогая проверка, что строка похожа на ссылку
func IsURLLike(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// LinkDomain возвращает зарегистрированный домен ссылки (eTLD+1),
// например "services.traxretail.com" -> "traxretail.com".
// Пустая строка, если домен извлечь не удалось.
func LinkDomain(link string) string {
	u, err := url.Parse(strings.TrimSpace(link))
	if err != nil || u.Hostname() == "" {
		return ""
	}
	domain, err := publicsuffix.EffectiveTLDPlusOne(strings.ToLower(u.Hostname()))
	if err != nil {
		return ""
	}
	return domain
}

// normalizeQuotes нормализует типографские кавычки
func normalizeQuotes(text string) string {
	replacements := map[rune]rune{
		'“': '"',  // left double quotation mark
		'”': '"',  // right double quotation mark
		'‘': '\'', // left single quotation mark
		'’': '\'', // right single quotation mark
		'«': '"',  // french quotes
		'»': '"',
		'„': '"',  // german low double quotes
		'‚': '\'', // single low quote
	}

	var builder strings.Builder
	for _, r := range text {
		if replacement, ok := replacements[r]; ok {
			builder.WriteRune(replacement)
		} else {
			builder.WriteRune(r)
		}
	}
	return builder.String()
}

// normalizeHyphens заменяет длинные тире на обычный дефис
func normalizeHyphens(text string) string {
	text = strings.ReplaceAll(text, "—", "-")
	text = strings.ReplaceAll(text, "–", "-")
	text = strings.ReplaceAll(text, "−", "-")
	return text
}
