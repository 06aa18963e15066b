package dataset

import (
	"reflect"
	"testing"
)

// TestDeduplicate_StoreMode проверяет политику "остается первая запись"
func TestDeduplicate_StoreMode(t *testing.T) {
	d := NewDeduplicator(KeyModeStore)
	table := Table{
		{Store: "Store A", Link: "http://x"},
		{Store: "store a ", Link: "http://y"},
		{Store: "Store B", Link: "http://z"},
	}

	out, stats := d.Deduplicate(table)

	// "store a " отличается от "Store A" только регистром и пробелами,
	// ключ их склеивает, остается первая запись
	expected := Table{
		{Store: "Store A", Link: "http://x"},
		{Store: "Store B", Link: "http://z"},
	}
	if !reflect.DeepEqual(out, expected) {
		t.Errorf("Deduplicate() = %+v, want %+v", out, expected)
	}
	if stats.SourceRows != 3 || stats.UniqueRecords != 2 || stats.Dropped != 1 {
		t.Errorf("Deduplicate() stats = %+v, want {3 2 1}", stats)
	}
}

// TestDeduplicate_StoreLinkMode проверяет ключ (магазин, ссылка)
func TestDeduplicate_StoreLinkMode(t *testing.T) {
	d := NewDeduplicator(KeyModeStoreLink)
	table := Table{
		{Store: "Store A", Link: "http://x"},
		{Store: "store a", Link: "http://y"},
		{Store: "Store A", Link: "HTTP://X"},
	}

	out, stats := d.Deduplicate(table)
	if len(out) != 2 {
		t.Fatalf("Deduplicate() returned %d records, want 2", len(out))
	}
	if out[0].Link != "http://x" || out[1].Link != "http://y" {
		t.Errorf("Deduplicate() kept wrong records: %+v", out)
	}
	if stats.Dropped != 1 {
		t.Errorf("Deduplicate() dropped = %d, want 1", stats.Dropped)
	}
}

// TestDeduplicate_Idempotent повторная дедупликация ничего не меняет
func TestDeduplicate_Idempotent(t *testing.T) {
	d := NewDeduplicator(KeyModeStore)
	table := Table{
		{Store: "A", Link: "1"},
		{Store: "a", Link: "2"},
		{Store: "B", Link: "3"},
		{Store: "A", Link: "4"},
	}

	first, _ := d.Deduplicate(table)
	second, stats := d.Deduplicate(first)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("Deduplicate() is not idempotent: %+v vs %+v", first, second)
	}
	if stats.Dropped != 0 {
		t.Errorf("second pass dropped = %d, want 0", stats.Dropped)
	}
}

// TestDeduplicate_Empty пустой вход дает пустой выход
func TestDeduplicate_Empty(t *testing.T) {
	d := NewDeduplicator(KeyModeStore)
	out, stats := d.Deduplicate(Table{})
	if len(out) != 0 {
		t.Errorf("Deduplicate(empty) returned %d records", len(out))
	}
	if stats.SourceRows != 0 || stats.Dropped != 0 {
		t.Errorf("Deduplicate(empty) stats = %+v", stats)
	}
}

// TestGroupLinks проверяет группировку ссылок по магазину
func TestGroupLinks(t *testing.T) {
	table := Table{
		{Store: "Store A", Link: "http://x"},
		{Store: "store a", Link: "http://y"},
		{Store: "Store B", Link: "http://z"},
		{Store: "Store A", Link: "HTTP://X/"}, // дубликат по ключу ссылки
		{Store: "Store C"},                    // магазин без ссылок
	}

	groups := GroupLinks(table)
	if len(groups) != 3 {
		t.Fatalf("GroupLinks() returned %d groups, want 3", len(groups))
	}
	if groups[0].Store != "Store A" || len(groups[0].Links) != 2 {
		t.Errorf("group A = %+v, want 2 links", groups[0])
	}
	if groups[1].Store != "Store B" || len(groups[1].Links) != 1 {
		t.Errorf("group B = %+v, want 1 link", groups[1])
	}
	if groups[2].Store != "Store C" || len(groups[2].Links) != 0 {
		t.Errorf("group C = %+v, want 0 links", groups[2])
	}
}

// TestOnePerStore по одной записи на магазин независимо от режима
func TestOnePerStore(t *testing.T) {
	table := Table{
		{Store: "A", Link: "1"},
		{Store: "A", Link: "2"},
		{Store: "B", Link: "3"},
	}

	out := OnePerStore(table)
	if len(out) != 2 {
		t.Fatalf("OnePerStore() returned %d records, want 2", len(out))
	}
	if out[0].Link != "1" {
		t.Errorf("OnePerStore() should keep the first link, got %q", out[0].Link)
	}
}
