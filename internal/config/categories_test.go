package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadCategoriesMissingFile(t *testing.T) {
	cats, err := LoadCategories(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadCategories() error = %v", err)
	}
	if len(cats.Tags) == 0 {
		t.Fatal("LoadCategories() returned no default tags")
	}
	if !cats.Contains("Federated") {
		t.Error("default categories should include Federated")
	}
}

func TestLoadCategoriesFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "categories.yaml")
	content := "tags:\n  - Federated\n  - Self-Hosted\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cats, err := LoadCategories(path)
	if err != nil {
		t.Fatalf("LoadCategories() error = %v", err)
	}
	if len(cats.Tags) != 2 {
		t.Fatalf("LoadCategories() returned %d tags, want 2", len(cats.Tags))
	}
	if !cats.Contains("Self-Hosted") {
		t.Error("Contains(Self-Hosted) = false")
	}
	if cats.Contains("Decentralized") {
		t.Error("Contains(Decentralized) = true for file without it")
	}
}

func TestLoadCategoriesInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "categories.yaml")
	if err := os.WriteFile(path, []byte("tags: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadCategories(path); err == nil {
		t.Error("LoadCategories() expected error for invalid YAML")
	}
}

func TestLoadCategoriesEmptyFileFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "categories.yaml")
	if err := os.WriteFile(path, []byte("tags: []\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cats, err := LoadCategories(path)
	if err != nil {
		t.Fatalf("LoadCategories() error = %v", err)
	}
	if len(cats.Tags) == 0 {
		t.Error("empty file should fall back to defaults")
	}
}
