package exporter

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"storelinks/dataset"
)

// Имена листов итоговых книг. Режим сравнения использует имена из
// отчетов (Both/OnlyInA/OnlyInB), режим очистки — виды из старых
// выгрузок links_por_tienda.
const (
	SheetUniquePairs    = "UniquePairs"
	SheetLinksInColumns = "LinksInColumns"
	SheetLinksByStore   = "LinksByStore"
	SheetSummary        = "Summary"
	SheetOnePerStore    = "OneLinkPerStore"

	SheetBoth        = "Both"
	SheetOnlyInA     = "OnlyInA"
	SheetOnlyInB     = "OnlyInB"
	SheetLinksA      = "LinksA"
	SheetLinksB      = "LinksB"
	SheetBothLinks   = "BothLinks"
	SheetSuggestions = "Suggestions"
)

// maxSheetNameLen ограничение Excel на имя листа
const maxSheetNameLen = 31

// DedupExport данные для книги режима очистки
type DedupExport struct {
	Pairs       dataset.Table
	Groups      []dataset.StoreLinks
	Summary     dataset.Summary
	OnePerStore dataset.Table
}

// CompareExport данные для книги режима сравнения
type CompareExport struct {
	Result dataset.ComparisonResult
	// LinksA/LinksB ссылки по магазинам каждой таблицы; nil — листы
	// ссылок не добавляются
	LinksA []dataset.StoreLinks
	LinksB []dataset.StoreLinks
}

// WriteDedupWorkbook собирает книгу со всеми видами очищенной таблицы
func WriteDedupWorkbook(exp DedupExport) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := writeSheet(f, SheetUniquePairs, []string{"store", "link"}, pairRows(exp.Pairs)); err != nil {
		return nil, err
	}
	if err := writeSheet(f, SheetLinksInColumns, wideHeaders(exp.Groups), wideRows(exp.Groups)); err != nil {
		return nil, err
	}
	if err := writeSheet(f, SheetLinksByStore, []string{"store", "unique_links", "links"}, groupRows(exp.Groups)); err != nil {
		return nil, err
	}
	if err := writeSheet(f, SheetSummary, summaryHeaders(), [][]interface{}{summaryRow(exp.Summary)}); err != nil {
		return nil, err
	}
	if len(exp.OnePerStore) > 0 {
		if err := writeSheet(f, SheetOnePerStore, []string{"store", "link"}, pairRows(exp.OnePerStore)); err != nil {
			return nil, err
		}
	}

	finishWorkbook(f)
	return f, nil
}

// WriteCompareWorkbook собирает книгу с результатом сравнения
func WriteCompareWorkbook(exp CompareExport) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := writeSheet(f, SheetBoth, []string{"store", "link"}, pairRows(exp.Result.InBoth)); err != nil {
		return nil, err
	}
	if err := writeSheet(f, SheetOnlyInA, []string{"store", "link"}, pairRows(exp.Result.OnlyInA)); err != nil {
		return nil, err
	}
	if err := writeSheet(f, SheetOnlyInB, []string{"store", "link"}, pairRows(exp.Result.OnlyInB)); err != nil {
		return nil, err
	}

	if exp.LinksA != nil || exp.LinksB != nil {
		if err := writeSheet(f, SheetLinksA, []string{"store", "links"}, linkListRows(exp.LinksA)); err != nil {
			return nil, err
		}
		if err := writeSheet(f, SheetLinksB, []string{"store", "links"}, linkListRows(exp.LinksB)); err != nil {
			return nil, err
		}
		if err := writeSheet(f, SheetBothLinks, []string{"store", "links_a", "links_b"}, sideBySideRows(exp)); err != nil {
			return nil, err
		}
	}

	if len(exp.Result.Suggestions) > 0 {
		rows := make([][]interface{}, 0, len(exp.Result.Suggestions))
		for _, s := range exp.Result.Suggestions {
			rows = append(rows, []interface{}{s.StoreA, s.StoreB, s.Score})
		}
		if err := writeSheet(f, SheetSuggestions, []string{"store_a", "store_b", "score"}, rows); err != nil {
			return nil, err
		}
	}

	finishWorkbook(f)
	return f, nil
}

// writeSheet создает лист с заголовками и данными в стиле отчетов:
// жирная строка заголовков с заливкой, фиксированная ширина колонок
func writeSheet(f *excelize.File, name string, headers []string, rows [][]interface{}) error {
	name = clampSheetName(name)
	if _, err := f.NewSheet(name); err != nil {
		return fmt.Errorf("failed to create sheet %q: %w", name, err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(name, cell, header)
		f.SetCellStyle(name, cell, cell, headerStyle)
	}

	for rowIdx, row := range rows {
		for colIdx, value := range row {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			f.SetCellValue(name, cell, value)
		}
	}

	for i := range headers {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(name, col, col, 30)
	}
	return nil
}

// finishWorkbook убирает стартовый пустой лист и активирует первый
func finishWorkbook(f *excelize.File) {
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(0)
}

// clampSheetName обрезает имя листа до лимита Excel в 31 символ
func clampSheetName(name string) string {
	runes := []rune(name)
	if len(runes) <= maxSheetNameLen {
		return name
	}
	return string(runes[:maxSheetNameLen])
}

func pairRows(t dataset.Table) [][]interface{} {
	rows := make([][]interface{}, 0, len(t))
	for _, r := range t {
		rows = append(rows, []interface{}{r.Store, r.Link})
	}
	return rows
}

// wideHeaders строит заголовки store, link_1..link_n по самой
// «широкой» группе
func wideHeaders(groups []dataset.StoreLinks) []string {
	max := 0
	for _, g := range groups {
		if len(g.Links) > max {
			max = len(g.Links)
		}
	}
	headers := []string{"store"}
	for i := 1; i <= max; i++ {
		headers = append(headers, fmt.Sprintf("link_%d", i))
	}
	return headers
}

func wideRows(groups []dataset.StoreLinks) [][]interface{} {
	rows := make([][]interface{}, 0, len(groups))
	for _, g := range groups {
		row := []interface{}{g.Store}
		for _, link := range g.Links {
			row = append(row, link)
		}
		rows = append(rows, row)
	}
	return rows
}

func groupRows(groups []dataset.StoreLinks) [][]interface{} {
	rows := make([][]interface{}, 0, len(groups))
	for _, g := range groups {
		rows = append(rows, []interface{}{g.Store, len(g.Links), strings.Join(g.Links, "\n")})
	}
	return rows
}

func linkListRows(groups []dataset.StoreLinks) [][]interface{} {
	rows := make([][]interface{}, 0, len(groups))
	for _, g := range groups {
		rows = append(rows, []interface{}{g.Store, strings.Join(g.Links, "\n")})
	}
	return rows
}

// sideBySideRows ссылки обеих таблиц для совпавших магазинов
func sideBySideRows(exp CompareExport) [][]interface{} {
	linksFor := func(groups []dataset.StoreLinks, store string) string {
		key := dataset.StoreKey(store)
		for _, g := range groups {
			if dataset.StoreKey(g.Store) == key {
				return strings.Join(g.Links, "\n")
			}
		}
		return ""
	}

	rows := make([][]interface{}, 0, len(exp.Result.InBoth))
	for _, r := range exp.Result.InBoth {
		rows = append(rows, []interface{}{
			r.Store,
			linksFor(exp.LinksA, r.Store),
			linksFor(exp.LinksB, r.Store),
		})
	}
	return rows
}

func summaryHeaders() []string {
	return []string{
		"source_rows", "skipped_rows", "unique_pairs", "stores",
		"avg_links_per_store", "unique_domains", "store_column", "link_column", "sheet",
	}
}

func summaryRow(s dataset.Summary) []interface{} {
	return []interface{}{
		s.SourceRows, s.SkippedRows, s.UniquePairs, s.Stores,
		s.AvgLinksPerStore, s.UniqueDomains, s.StoreColumn, s.LinkColumn, s.Sheet,
	}
}
