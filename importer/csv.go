package importer

import (
	"encoding/csv"
	"fmt"
	"io"
)

// LoadCSV загружает таблицу из CSV. Первая строка — заголовки,
// количество полей в строках может гулять (выгрузки это допускают).
func LoadCSV(r io.Reader, opts Options) (*Result, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrEmptyFile
	}

	headers := trimAll(records[0])
	return fromRows(headers, records[1:], opts)
}

// InspectCSV возвращает заголовки CSV как единственный «лист»
func InspectCSV(r io.Reader) ([]SheetInfo, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	info := SheetInfo{}
	if len(records) > 0 {
		info.Columns = trimAll(records[0])
		info.Rows = len(records) - 1
	}
	return []SheetInfo{info}, nil
}
