package importer

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"storelinks/dataset"
)

// ErrNoTable в HTML документе нет элемента <table>
var ErrNoTable = errors.New("no <table> element found in HTML document")

// LoadHTML загружает таблицу из HTML документа (скопированная страница
// или выгрузка отчета). Берется первая таблица; для колонки ссылки
// предпочитается href вложенного <a>, затем текст ячейки.
func LoadHTML(r io.Reader, opts Options) (*Result, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	table := doc.Find("table").First()
	if table.Length() == 0 {
		return nil, ErrNoTable
	}

	headers, cells, anchors := extractTable(table)
	if len(headers) == 0 {
		return nil, ErrEmptyFile
	}

	storeIdx, linkIdx, err := resolveColumns(headers, cells, opts)
	if err != nil {
		return nil, err
	}

	records := make(dataset.Table, 0, len(cells))
	for i, row := range cells {
		if isEmptyRow(row) {
			continue
		}
		rec := dataset.Record{}
		if storeIdx < len(row) {
			rec.Store = strings.TrimSpace(row[storeIdx])
		}
		if linkIdx >= 0 && linkIdx < len(row) {
			if href := anchors[i][linkIdx]; href != "" {
				rec.Link = href
			} else {
				rec.Link = ResolveLinkText(row[linkIdx], opts.URLPrefix)
			}
		}
		records = append(records, rec)
	}

	result := &Result{
		Table:       records,
		StoreColumn: headers[storeIdx],
		SourceRows:  len(records),
	}
	if linkIdx >= 0 {
		result.LinkColumn = headers[linkIdx]
	}
	return result, nil
}

// InspectHTML возвращает заголовки первой таблицы документа
func InspectHTML(r io.Reader) ([]SheetInfo, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}
	table := doc.Find("table").First()
	if table.Length() == 0 {
		return nil, ErrNoTable
	}
	headers, cells, _ := extractTable(table)
	return []SheetInfo{{Columns: headers, Rows: len(cells)}}, nil
}

// extractTable разбирает <table> на заголовки, текст ячеек и href
// вложенных ссылок. Заголовки — строка с <th>, иначе первая строка.
func extractTable(table *goquery.Selection) (headers []string, cells [][]string, anchors [][]string) {
	rows := table.Find("tr")
	rows.Each(func(i int, tr *goquery.Selection) {
		isHeader := tr.Find("th").Length() > 0
		sel := tr.Find("th, td")

		values := make([]string, 0, sel.Length())
		hrefs := make([]string, 0, sel.Length())
		sel.Each(func(_ int, cell *goquery.Selection) {
			values = append(values, strings.TrimSpace(cell.Text()))
			href, _ := cell.Find("a").First().Attr("href")
			hrefs = append(hrefs, strings.TrimSpace(href))
		})

		if headers == nil {
			if isHeader || i == 0 {
				headers = values
				return
			}
		}
		cells = append(cells, values)
		anchors = append(anchors, hrefs)
	})
	return headers, cells, anchors
}
