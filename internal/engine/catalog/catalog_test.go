package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultOrderedByWeight(t *testing.T) {
	c := Default()
	if c.Len() != 12 {
		t.Fatalf("expected 12 categories, got %d", c.Len())
	}
	cats := c.Categories()
	for i := 1; i < len(cats); i++ {
		if cats[i].Weight > cats[i-1].Weight {
			t.Fatalf("categories not in descending weight order: %s(%d) after %s(%d)",
				cats[i].Key, cats[i].Weight, cats[i-1].Key, cats[i-1].Weight)
		}
	}
	if cats[0].Key != "memory_errors" {
		t.Fatalf("expected memory_errors first, got %s", cats[0].Key)
	}
}

func TestDefaultAllPatternsCompile(t *testing.T) {
	specs := defaultSpecs()
	c := New(specs)
	for i, s := range specs {
		got, ok := c.Lookup(s.Key)
		if !ok {
			t.Fatalf("spec %d (%s) missing from catalog", i, s.Key)
		}
		if len(got.Patterns) != len(s.Patterns) {
			t.Fatalf("%s: expected %d compiled patterns, got %d", s.Key, len(s.Patterns), len(got.Patterns))
		}
	}
}

func TestTopNarrows(t *testing.T) {
	c := Default()
	top3 := c.Top(3)
	if top3.Len() != 3 {
		t.Fatalf("expected 3 categories, got %d", top3.Len())
	}
	want := []string{"memory_errors", "spark_sql_errors", "spark_execution_errors"}
	for i, key := range top3.Keys() {
		if key != want[i] {
			t.Fatalf("Top(3)[%d]: expected %s, got %s", i, want[i], key)
		}
	}
	// Narrowing must not disturb the full catalog.
	if c.Len() != 12 {
		t.Fatalf("full catalog mutated by Top: len %d", c.Len())
	}
	if _, ok := c.Lookup("critical_keywords"); !ok {
		t.Fatal("full catalog lost a category after Top")
	}
	if _, ok := top3.Lookup("critical_keywords"); ok {
		t.Fatal("narrowed catalog should not contain critical_keywords")
	}
}

func TestTopBeyondSize(t *testing.T) {
	c := Default()
	if got := c.Top(100); got.Len() != c.Len() {
		t.Fatalf("Top(100): expected full catalog, got %d categories", got.Len())
	}
}

func TestNewSkipsMalformedPattern(t *testing.T) {
	c := New([]Spec{
		{
			Key:      "mixed",
			Label:    "Mixed",
			Severity: "high",
			Weight:   50,
			Patterns: []string{`valid\s+pattern`, `broken(`},
		},
	})
	cat, ok := c.Lookup("mixed")
	if !ok {
		t.Fatal("category with one valid pattern should survive")
	}
	if len(cat.Patterns) != 1 {
		t.Fatalf("expected 1 surviving pattern, got %d", len(cat.Patterns))
	}
}

func TestNewDropsEmptyCategory(t *testing.T) {
	c := New([]Spec{
		{Key: "hopeless", Severity: "low", Weight: 10, Patterns: []string{`broken(`, `also(`}},
		{Key: "fine", Severity: "low", Weight: 5, Patterns: []string{`ok`}},
	})
	if c.Len() != 1 {
		t.Fatalf("expected 1 category, got %d", c.Len())
	}
	if _, ok := c.Lookup("hopeless"); ok {
		t.Fatal("category with zero valid patterns should be dropped")
	}
}

func TestPatternsCaseInsensitive(t *testing.T) {
	c := Default()
	mem, _ := c.Lookup("memory_errors")
	for _, input := range []string{"OutOfMemoryError", "outofmemoryerror", "OUTOFMEMORYERROR"} {
		matched := false
		for _, re := range mem.Patterns {
			if re.MatchString(input) {
				matched = true
				break
			}
		}
		if !matched {
			t.Fatalf("memory_errors should match %q", input)
		}
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	content := `categories:
  - key: delta_errors
    label: Delta Lake
    severity: high
    weight: 95
    patterns:
      - 'concurrentmodificationexception'
      - 'delta\s+table\s+.*\s+not\s+found'
    remedies:
      - "Retry the transaction with optimistic concurrency settings"
  - key: noise
    label: Noise
    severity: low
    weight: 5
    patterns:
      - 'heartbeat'
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write temp catalog: %v", err)
	}

	c, err := LoadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Len() != 2 {
		t.Fatalf("expected 2 categories, got %d", c.Len())
	}
	delta, ok := c.Lookup("delta_errors")
	if !ok {
		t.Fatal("delta_errors missing")
	}
	if delta.Severity != "high" || delta.Weight != 95 {
		t.Fatalf("unexpected category: %+v", delta)
	}
	if !delta.Patterns[0].MatchString("ConcurrentModificationException") {
		t.Fatal("loaded pattern should match case-insensitively")
	}
	if c.Keys()[0] != "delta_errors" {
		t.Fatalf("expected delta_errors first by weight, got %s", c.Keys()[0])
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadFileEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.yaml")
	if err := os.WriteFile(path, []byte("categories: []\n"), 0644); err != nil {
		t.Fatalf("write temp catalog: %v", err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Fatal("expected error for empty catalog")
	}
}
