package testdata

import "testing"

func TestLoadCorpus(t *testing.T) {
	entries, err := LoadCorpus()
	if err != nil {
		t.Fatalf("LoadCorpus: %v", err)
	}
	if len(entries) < 10 {
		t.Fatalf("expected at least 10 corpus entries, got %d", len(entries))
	}
	for i, e := range entries {
		if e.Raw == "" {
			t.Errorf("entry %d: empty raw line", i)
		}
		if e.ExpectedCategory == "" {
			t.Errorf("entry %d: empty expected category", i)
		}
		switch e.ExpectedSeverity {
		case "critical", "high", "medium", "low":
		default:
			t.Errorf("entry %d: unknown severity %q", i, e.ExpectedSeverity)
		}
	}
}
