package exporter

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/xuri/excelize/v2"

	"storelinks/dataset"
)

// Format формат экспорта
type Format string

const (
	FormatExcel Format = "xlsx"
	FormatCSV   Format = "csv"
	FormatJSON  Format = "json"
)

// ParseFormat разбирает формат экспорта, пустая строка — Excel
func ParseFormat(s string) (Format, bool) {
	switch s {
	case "", "xlsx", "excel":
		return FormatExcel, true
	case "csv":
		return FormatCSV, true
	case "json":
		return FormatJSON, true
	}
	return FormatExcel, false
}

// ContentType возвращает MIME-тип формата для отдачи файла
func (f Format) ContentType() string {
	switch f {
	case FormatCSV:
		return "text/csv; charset=utf-8"
	case FormatJSON:
		return "application/json; charset=utf-8"
	}
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// SaveWorkbook сохраняет книгу на диск. Ошибка записи — это
// WriteFailure из пользовательского сценария: путь недоступен.
func SaveWorkbook(f *excelize.File, path string) error {
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook to %q: %w", path, err)
	}
	return nil
}

// WritePairsCSV пишет плоскую таблицу пар в CSV
func WritePairsCSV(w io.Writer, pairs dataset.Table) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	if err := writer.Write([]string{"store", "link"}); err != nil {
		return fmt.Errorf("failed to write headers: %w", err)
	}
	for _, r := range pairs {
		if err := writer.Write([]string{r.Store, r.Link}); err != nil {
			return fmt.Errorf("failed to write record: %w", err)
		}
	}
	return nil
}

// WriteDedupJSON пишет результат очистки в JSON c отметкой времени
func WriteDedupJSON(w io.Writer, exp DedupExport) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	result := map[string]interface{}{
		"exported_at": time.Now().Format(time.RFC3339),
		"summary":     exp.Summary,
		"pairs":       exp.Pairs,
		"stores":      exp.Groups,
	}
	if err := encoder.Encode(result); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// SavePairs сохраняет плоскую таблицу пар в указанном формате.
// Для Excel вызывающий обычно собирает полную книгу через
// WriteDedupWorkbook, этот путь — для csv/json вариантов.
func SavePairs(path string, format Format, exp DedupExport) error {
	switch format {
	case FormatCSV:
		file, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create file: %w", err)
		}
		defer file.Close()
		return WritePairsCSV(file, exp.Pairs)
	case FormatJSON:
		file, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create file: %w", err)
		}
		defer file.Close()
		return WriteDedupJSON(file, exp)
	}

	f, err := WriteDedupWorkbook(exp)
	if err != nil {
		return err
	}
	defer f.Close()
	return SaveWorkbook(f, path)
}
