package importer

import (
	"errors"
	"strings"
	"testing"
)

// TestLoad_UnsupportedFormat расширение вне списка дает ErrUnsupportedFormat
func TestLoad_UnsupportedFormat(t *testing.T) {
	_, err := Load("data.txt", strings.NewReader("x"), Options{})
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Load(.txt) error = %v, want ErrUnsupportedFormat", err)
	}

	_, err = Inspect("data.pdf", strings.NewReader("x"))
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Inspect(.pdf) error = %v, want ErrUnsupportedFormat", err)
	}
}

// TestLoadCSV базовая загрузка CSV с автоопределением колонок
func TestLoadCSV(t *testing.T) {
	data := "tienda,link,zona\n" +
		"Store A,https://example.com/a,Norte\n" +
		"Store B,https://example.com/b,Sur\n" +
		",,\n" +
		"Store C,,Este\n"

	result, err := LoadCSV(strings.NewReader(data), Options{})
	if err != nil {
		t.Fatalf("LoadCSV() error: %v", err)
	}

	if result.StoreColumn != "tienda" || result.LinkColumn != "link" {
		t.Errorf("columns = (%q, %q), want (tienda, link)", result.StoreColumn, result.LinkColumn)
	}
	if len(result.Table) != 3 {
		t.Fatalf("LoadCSV() returned %d records, want 3 (empty row skipped)", len(result.Table))
	}
	if result.Table[0].Store != "Store A" || result.Table[0].Link != "https://example.com/a" {
		t.Errorf("first record = %+v", result.Table[0])
	}
	if result.Table[2].Store != "Store C" || result.Table[2].Link != "" {
		t.Errorf("record without link = %+v", result.Table[2])
	}
}

// TestLoadCSV_ExplicitColumns явный выбор колонок
func TestLoadCSV_ExplicitColumns(t *testing.T) {
	data := "nombre,direccion\nStore A,https://example.com/a\n"

	result, err := LoadCSV(strings.NewReader(data), Options{
		StoreColumn: "Nombre",
		LinkColumn:  "direccion",
	})
	if err != nil {
		t.Fatalf("LoadCSV() error: %v", err)
	}
	if result.Table[0].Store != "Store A" {
		t.Errorf("record = %+v", result.Table[0])
	}

	_, err = LoadCSV(strings.NewReader(data), Options{StoreColumn: "missing"})
	if !errors.Is(err, ErrStoreColumnNotFound) {
		t.Errorf("explicit missing column error = %v, want ErrStoreColumnNotFound", err)
	}
}

// TestLoadCSV_LinkRequired обязательность колонки ссылки
func TestLoadCSV_LinkRequired(t *testing.T) {
	data := "tienda,zona\nStore A,Norte\n"

	_, err := LoadCSV(strings.NewReader(data), Options{LinkRequired: true})
	if !errors.Is(err, ErrLinkColumnNotFound) {
		t.Errorf("LoadCSV(link required) error = %v, want ErrLinkColumnNotFound", err)
	}

	result, err := LoadCSV(strings.NewReader(data), Options{})
	if err != nil {
		t.Fatalf("LoadCSV(link optional) error: %v", err)
	}
	if result.LinkColumn != "" {
		t.Errorf("LinkColumn = %q, want empty", result.LinkColumn)
	}
}

// TestLoadCSV_Empty пустой файл
func TestLoadCSV_Empty(t *testing.T) {
	_, err := LoadCSV(strings.NewReader(""), Options{})
	if !errors.Is(err, ErrEmptyFile) {
		t.Errorf("LoadCSV(empty) error = %v, want ErrEmptyFile", err)
	}
}

// TestLoadCSV_GUIDLinks достройка ссылки из GUID
func TestLoadCSV_GUIDLinks(t *testing.T) {
	data := "tienda,id_visita\nStore A,a1b2c3d4-e5f6-7890-abcd-ef1234567890\n"

	result, err := LoadCSV(strings.NewReader(data), Options{
		URLPrefix: "https://services.traxretail.com/visit/",
	})
	if err != nil {
		t.Fatalf("LoadCSV() error: %v", err)
	}
	want := "https://services.traxretail.com/visit/a1b2c3d4-e5f6-7890-abcd-ef1234567890"
	if result.Table[0].Link != want {
		t.Errorf("link = %q, want %q", result.Table[0].Link, want)
	}
}

// TestInspectCSV заголовки CSV как единственный лист
func TestInspectCSV(t *testing.T) {
	data := "tienda,link\nA,1\nB,2\n"

	sheets, err := InspectCSV(strings.NewReader(data))
	if err != nil {
		t.Fatalf("InspectCSV() error: %v", err)
	}
	if len(sheets) != 1 {
		t.Fatalf("InspectCSV() returned %d sheets, want 1", len(sheets))
	}
	if len(sheets[0].Columns) != 2 || sheets[0].Rows != 2 {
		t.Errorf("sheet = %+v, want 2 columns and 2 rows", sheets[0])
	}
}
