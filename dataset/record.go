package dataset

// Record пара (магазин, ссылка), загруженная из одной строки таблицы
type Record struct {
	Store string `json:"store"`
	Link  string `json:"link,omitempty"`
}

// Table упорядоченная последовательность записей из одного входного файла
type Table []Record

// KeyMode режим построения ключа дедупликации
type KeyMode string

const (
	// KeyModeStore ключ только по названию магазина (режим по умолчанию)
	KeyModeStore KeyMode = "store"
	// KeyModeStoreLink ключ по паре (магазин, ссылка)
	KeyModeStoreLink KeyMode = "store_link"
)

// ParseKeyMode разбирает строковое значение режима ключа.
// Пустая строка трактуется как режим по умолчанию.
func ParseKeyMode(s string) (KeyMode, bool) {
	switch s {
	case "", string(KeyModeStore):
		return KeyModeStore, true
	case string(KeyModeStoreLink), "store+link":
		return KeyModeStoreLink, true
	}
	return KeyModeStore, false
}

// StoreLinks магазин со списком уникальных ссылок (порядок первого появления)
type StoreLinks struct {
	Store string   `json:"store"`
	Links []string `json:"links"`
}

// Keys возвращает нормализованные ключи всех записей таблицы в исходном порядке
func (t Table) Keys(mode KeyMode) []string {
	keys := make([]string, 0, len(t))
	for _, r := range t {
		keys = append(keys, Key(r, mode))
	}
	return keys
}
