package storage

import (
	"os"
	"testing"

	"github.com/matst80/slask-catalog/pkg/types"
)

func testFilterStore(t *testing.T, store FilterStore) {
	t.Helper()

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Expected no error on empty load, got %v", err)
	}
	if loaded != nil {
		t.Fatalf("Expected nil filters on empty store, got %+v", loaded)
	}

	onSale := true
	filters := &types.StoredFilters{
		Color:      "black",
		Brand:      "gucci",
		OnSale:     &onSale,
		PriceRange: "100-500",
		SortBy:     types.SortPriceLowToHigh,
	}
	if err = store.Save(filters); err != nil {
		t.Fatalf("Expected no error on save, got %v", err)
	}

	loaded, err = store.Load()
	if err != nil {
		t.Fatalf("Expected no error on load, got %v", err)
	}
	if loaded == nil {
		t.Fatal("Expected stored filters, got nil")
	}
	if loaded.Color != "black" || loaded.Brand != "gucci" || loaded.PriceRange != "100-500" || loaded.SortBy != types.SortPriceLowToHigh {
		t.Errorf("Expected stored filters back, got %+v", loaded)
	}
	if loaded.OnSale == nil || !*loaded.OnSale {
		t.Errorf("Expected on_sale true, got %v", loaded.OnSale)
	}

	// wholesale overwrite drops previous keys
	if err = store.Save(&types.StoredFilters{Color: "red"}); err != nil {
		t.Fatalf("Expected no error on overwrite, got %v", err)
	}
	loaded, err = store.Load()
	if err != nil {
		t.Fatalf("Expected no error on load, got %v", err)
	}
	if loaded.Color != "red" || loaded.Brand != "" || loaded.OnSale != nil {
		t.Errorf("Expected overwrite to replace document, got %+v", loaded)
	}

	if err = store.Clear(); err != nil {
		t.Fatalf("Expected no error on clear, got %v", err)
	}
	loaded, err = store.Load()
	if err != nil || loaded != nil {
		t.Errorf("Expected empty store after clear, got %+v err %v", loaded, err)
	}

	// clearing an already empty store is a no-op
	if err = store.Clear(); err != nil {
		t.Errorf("Expected no error clearing empty store, got %v", err)
	}
}

func TestDiskFilterStore(t *testing.T) {
	testFilterStore(t, NewDiskFilterStore(newTestStorage(t)))
}

func TestMemoryFilterStore(t *testing.T) {
	testFilterStore(t, NewMemoryFilterStore())
}

func TestDiskFilterStoreMalformedDocument(t *testing.T) {
	d := newTestStorage(t)
	fileName, _ := d.GetFileName(filtersFile)
	if err := os.WriteFile(fileName, []byte(`{"color":`), 0o644); err != nil {
		t.Fatalf("Failed to write filter document: %v", err)
	}

	store := NewDiskFilterStore(d)
	if _, err := store.Load(); err == nil {
		t.Errorf("Expected error for malformed filter document")
	}
}
