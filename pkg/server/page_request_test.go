package server

import (
	"net/url"
	"testing"
)

func TestPageRequestDefaults(t *testing.T) {
	pr := &PageRequest{}
	if err := GetPageRequestFromQuery(url.Values{}, pr); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if pr.Page != 1 {
		t.Errorf("Expected default page 1, got %d", pr.Page)
	}
	if pr.ItemsPerPage != 50 {
		t.Errorf("Expected default items_per_page 50, got %d", pr.ItemsPerPage)
	}
}

func TestPageRequestFromQuery(t *testing.T) {
	query := url.Values{
		"page":           []string{"3"},
		"items_per_page": []string{"10"},
		"unknown":        []string{"ignored"},
	}
	pr := &PageRequest{}
	if err := GetPageRequestFromQuery(query, pr); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if pr.Page != 3 {
		t.Errorf("Expected page 3, got %d", pr.Page)
	}
	if pr.ItemsPerPage != 10 {
		t.Errorf("Expected items_per_page 10, got %d", pr.ItemsPerPage)
	}
}

func TestPageRequestInvalidValue(t *testing.T) {
	query := url.Values{"page": []string{"abc"}}
	pr := &PageRequest{}
	if err := GetPageRequestFromQuery(query, pr); err == nil {
		t.Errorf("Expected error for non numeric page")
	}
}
