package importer

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"storelinks/dataset"
)

// Ошибки загрузки, различаемые обработчиками через errors.Is
var (
	// ErrUnsupportedFormat расширение файла не поддерживается
	ErrUnsupportedFormat = errors.New("unsupported file format, expected .xlsx, .csv or .html")
	// ErrStoreColumnNotFound колонка магазина не найдена и не задана явно
	ErrStoreColumnNotFound = errors.New("store column not found")
	// ErrLinkColumnNotFound колонка ссылки обязательна, но не найдена
	ErrLinkColumnNotFound = errors.New("link column not found")
	// ErrEmptyFile в файле нет строки заголовков
	ErrEmptyFile = errors.New("file has no header row")
)

// Options параметры загрузки одной таблицы
type Options struct {
	// Sheet имя листа Excel; пустое значение — первый лист
	Sheet string
	// StoreColumn явное имя колонки магазина; пустое — автоопределение
	StoreColumn string
	// LinkColumn явное имя колонки ссылки; пустое — автоопределение
	LinkColumn string
	// LinkRequired считать отсутствие колонки ссылки ошибкой
	LinkRequired bool
	// URLPrefix префикс для достройки ссылки из голого GUID
	URLPrefix string
	// Aliases принимаемые заголовки; нулевое значение — DefaultAliases
	Aliases ColumnAliases
}

func (o Options) aliases() ColumnAliases {
	if len(o.Aliases.Store) == 0 && len(o.Aliases.LinkPreferred) == 0 {
		return DefaultAliases()
	}
	return o.Aliases
}

// Result загруженная таблица с метаданными об использованных колонках
type Result struct {
	Table       dataset.Table
	Sheet       string
	StoreColumn string
	LinkColumn  string
	SourceRows  int
}

// Load загружает таблицу из потока, определяя формат по расширению имени
func Load(filename string, r io.Reader, opts Options) (*Result, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx":
		return LoadExcel(r, opts)
	case ".csv":
		return LoadCSV(r, opts)
	case ".html", ".htm":
		return LoadHTML(r, opts)
	}
	return nil, fmt.Errorf("%q: %w", filename, ErrUnsupportedFormat)
}

// Inspect возвращает листы и заголовки файла без полной загрузки данных
func Inspect(filename string, r io.Reader) ([]SheetInfo, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx":
		return InspectExcel(r)
	case ".csv":
		return InspectCSV(r)
	case ".html", ".htm":
		return InspectHTML(r)
	}
	return nil, fmt.Errorf("%q: %w", filename, ErrUnsupportedFormat)
}

// fromRows общая часть загрузчиков: первая строка — заголовки,
// пустые строки пропускаются, значения обрезаются
func fromRows(headers []string, rows [][]string, opts Options) (*Result, error) {
	storeIdx, linkIdx, err := resolveColumns(headers, rows, opts)
	if err != nil {
		return nil, err
	}

	table := make(dataset.Table, 0, len(rows))
	for _, row := range rows {
		if isEmptyRow(row) {
			continue
		}
		rec := dataset.Record{}
		if storeIdx < len(row) {
			rec.Store = strings.TrimSpace(row[storeIdx])
		}
		if linkIdx >= 0 && linkIdx < len(row) {
			rec.Link = ResolveLinkText(row[linkIdx], opts.URLPrefix)
		}
		table = append(table, rec)
	}

	result := &Result{
		Table:       table,
		StoreColumn: headers[storeIdx],
		SourceRows:  len(table),
	}
	if linkIdx >= 0 {
		result.LinkColumn = headers[linkIdx]
	}
	return result, nil
}

// resolveColumns определяет индексы колонок магазина и ссылки
func resolveColumns(headers []string, rows [][]string, opts Options) (storeIdx, linkIdx int, err error) {
	if len(headers) == 0 {
		return -1, -1, ErrEmptyFile
	}
	aliases := opts.aliases()

	if opts.StoreColumn != "" {
		storeIdx, err = resolveColumn(headers, opts.StoreColumn)
		if err != nil {
			return -1, -1, fmt.Errorf("%w: %v", ErrStoreColumnNotFound, err)
		}
	} else {
		var ok bool
		storeIdx, ok = aliases.DetectStoreColumn(headers)
		if !ok {
			return -1, -1, fmt.Errorf("%w: no header matches %s", ErrStoreColumnNotFound, strings.Join(aliases.Store, "/"))
		}
	}

	if opts.LinkColumn != "" {
		linkIdx, err = resolveColumn(headers, opts.LinkColumn)
		if err != nil {
			return -1, -1, fmt.Errorf("%w: %v", ErrLinkColumnNotFound, err)
		}
	} else {
		var ok bool
		linkIdx, ok = aliases.DetectLinkColumn(headers, rows)
		if !ok {
			if opts.LinkRequired {
				return -1, -1, ErrLinkColumnNotFound
			}
			linkIdx = -1
		}
	}

	return storeIdx, linkIdx, nil
}

// isEmptyRow проверяет, что все ячейки строки пусты
func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
