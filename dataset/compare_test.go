package dataset

import "testing"

// TestCompare_Partition три множества разбивают объединение ключей
// без пересечений
func TestCompare_Partition(t *testing.T) {
	c := NewComparator(KeyModeStore)
	a := Table{
		{Store: "S1", Link: "http://1"},
		{Store: "S2", Link: "http://2"},
	}
	b := Table{
		{Store: "s2", Link: "http://2b"},
		{Store: "S3", Link: "http://3"},
	}

	result := c.Compare(a, b)

	if len(result.OnlyInA) != 1 || result.OnlyInA[0].Store != "S1" {
		t.Errorf("OnlyInA = %+v, want [S1]", result.OnlyInA)
	}
	if len(result.OnlyInB) != 1 || result.OnlyInB[0].Store != "S3" {
		t.Errorf("OnlyInB = %+v, want [S3]", result.OnlyInB)
	}
	if len(result.InBoth) != 1 || result.InBoth[0].Store != "S2" {
		t.Errorf("InBoth = %+v, want [S2]", result.InBoth)
	}

	// Ключ из InBoth не должен встречаться в OnlyInA/OnlyInB
	seen := make(map[string]int)
	for _, r := range result.OnlyInA {
		seen[Key(r, c.Mode)]++
	}
	for _, r := range result.OnlyInB {
		seen[Key(r, c.Mode)]++
	}
	for _, r := range result.InBoth {
		seen[Key(r, c.Mode)]++
	}
	for key, count := range seen {
		if count > 1 {
			t.Errorf("key %q appears in %d partitions", key, count)
		}
	}
}

// TestCompare_ARecordWins при совпадении ключей в InBoth попадает запись из A
func TestCompare_ARecordWins(t *testing.T) {
	c := NewComparator(KeyModeStore)
	a := Table{{Store: "Store", Link: "http://from-a"}}
	b := Table{{Store: "store", Link: "http://from-b"}}

	result := c.Compare(a, b)
	if len(result.InBoth) != 1 {
		t.Fatalf("InBoth has %d records, want 1", len(result.InBoth))
	}
	if result.InBoth[0].Link != "http://from-a" {
		t.Errorf("InBoth record = %+v, want the record from A", result.InBoth[0])
	}
}

// TestCompare_DuplicatesInInput входные дубликаты не влияют на результат
func TestCompare_DuplicatesInInput(t *testing.T) {
	c := NewComparator(KeyModeStore)
	a := Table{
		{Store: "S1", Link: "http://1"},
		{Store: "s1", Link: "http://1dup"},
	}
	b := Table{
		{Store: "S2", Link: "http://2"},
		{Store: "S2", Link: "http://2"},
	}

	result := c.Compare(a, b)
	if len(result.OnlyInA) != 1 || len(result.OnlyInB) != 1 {
		t.Errorf("Compare() = %d/%d only records, want 1/1",
			len(result.OnlyInA), len(result.OnlyInB))
	}
}

// TestCompare_StoreLinkMode один магазин с разными ссылками в режиме
// store_link расходится по разным множествам
func TestCompare_StoreLinkMode(t *testing.T) {
	c := NewComparator(KeyModeStoreLink)
	a := Table{{Store: "S1", Link: "http://1"}}
	b := Table{{Store: "S1", Link: "http://other"}}

	result := c.Compare(a, b)
	if len(result.InBoth) != 0 {
		t.Errorf("InBoth = %+v, want empty", result.InBoth)
	}
	if len(result.OnlyInA) != 1 || len(result.OnlyInB) != 1 {
		t.Errorf("Compare() = %d/%d only records, want 1/1",
			len(result.OnlyInA), len(result.OnlyInB))
	}
}

// TestCompare_Empty пустые входы дают пустые множества, не nil
func TestCompare_Empty(t *testing.T) {
	c := NewComparator(KeyModeStore)
	result := c.Compare(Table{}, Table{})
	if result.OnlyInA == nil || result.OnlyInB == nil || result.InBoth == nil {
		t.Error("Compare(empty, empty) should return empty slices, not nil")
	}
}
