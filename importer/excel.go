package importer

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"storelinks/dataset"
)

// LoadExcel загружает таблицу из .xlsx. Для колонки ссылки значение
// ячейки разрешается в порядке: настоящая гиперссылка -> формула
// HYPERLINK/HIPERVINCULO -> GUID с префиксом -> текст ячейки.
func LoadExcel(r io.Reader, opts Options) (*Result, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheet := opts.Sheet
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	if sheet == "" {
		return nil, fmt.Errorf("no sheets found in workbook")
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyFile
	}

	headers := trimAll(rows[0])
	data := rows[1:]

	storeIdx, linkIdx, err := resolveColumns(headers, data, opts)
	if err != nil {
		return nil, err
	}

	table := make(dataset.Table, 0, len(data))
	for i, row := range data {
		if isEmptyRow(row) {
			continue
		}
		rec := dataset.Record{}
		if storeIdx < len(row) {
			rec.Store = strings.TrimSpace(row[storeIdx])
		}
		if linkIdx >= 0 {
			// +2: одна строка заголовков, нумерация Excel с единицы
			rec.Link = resolveExcelLink(f, sheet, linkIdx, i+2, row, opts.URLPrefix)
		}
		table = append(table, rec)
	}

	result := &Result{
		Table:       table,
		Sheet:       sheet,
		StoreColumn: headers[storeIdx],
		SourceRows:  len(table),
	}
	if linkIdx >= 0 {
		result.LinkColumn = headers[linkIdx]
	}
	return result, nil
}

// resolveExcelLink извлекает ссылку из ячейки Excel всеми доступными
// способами. Порядок важен: у ячейки может быть и гиперссылка,
// и видимый текст, гиперссылка точнее.
func resolveExcelLink(f *excelize.File, sheet string, colIdx, rowNum int, row []string, urlPrefix string) string {
	cell, err := excelize.CoordinatesToCellName(colIdx+1, rowNum)
	if err == nil {
		if ok, target, err := f.GetCellHyperLink(sheet, cell); err == nil && ok && target != "" {
			return strings.TrimSpace(target)
		}
		if formula, err := f.GetCellFormula(sheet, cell); err == nil && formula != "" {
			if link := ResolveLinkText("="+formula, urlPrefix); link != "" {
				return link
			}
		}
	}

	if colIdx < len(row) {
		return ResolveLinkText(row[colIdx], urlPrefix)
	}
	return ""
}

// SheetInfo лист книги с его заголовками
type SheetInfo struct {
	Name    string   `json:"name"`
	Columns []string `json:"columns"`
	Rows    int      `json:"rows"`
}

// InspectExcel возвращает список листов книги с заголовками и числом
// строк данных. Используется эндпоинтом /api/files/inspect вместо
// интерактивного выбора листа.
func InspectExcel(r io.Reader) ([]SheetInfo, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := make([]SheetInfo, 0)
	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil {
			return nil, fmt.Errorf("failed to read sheet %q: %w", name, err)
		}
		info := SheetInfo{Name: name}
		if len(rows) > 0 {
			info.Columns = trimAll(rows[0])
			info.Rows = len(rows) - 1
		}
		sheets = append(sheets, info)
	}
	return sheets, nil
}

func trimAll(cells []string) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = strings.TrimSpace(c)
	}
	return out
}
