package service

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLeadAppendWritesOneJSONLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "leads.jsonl")
	svc := NewLeadService(path)
	svc.now = func() time.Time {
		return time.Date(2025, 3, 1, 12, 30, 0, 0, time.UTC)
	}

	if err := svc.Append("WASH 7x40", "Иван", "+7 900 000-00-00", "Нужно 8 штук"); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading leads file: %v", err)
	}
	lines := strings.Split(strings.TrimRight(string(raw), "\n"), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected exactly one line, got %d", len(lines))
	}

	var lead Lead
	if err := json.Unmarshal([]byte(lines[0]), &lead); err != nil {
		t.Fatalf("line is not valid JSON: %v", err)
	}
	if lead.TS != "2025-03-01T12:30:00Z" {
		t.Errorf("unexpected timestamp %q", lead.TS)
	}
	if lead.Product != "WASH 7x40" || lead.Name != "Иван" {
		t.Errorf("lead fields not round-tripped: %+v", lead)
	}
}

func TestLeadAppendAccumulates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "leads.jsonl")
	svc := NewLeadService(path)

	for i := 0; i < 3; i++ {
		if err := svc.Append("", "Гость", "guest@example.com", ""); err != nil {
			t.Fatalf("Append failed: %v", err)
		}
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading leads file: %v", err)
	}
	lines := strings.Split(strings.TrimRight(string(raw), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	for _, line := range lines {
		var lead Lead
		if err := json.Unmarshal([]byte(line), &lead); err != nil {
			t.Errorf("malformed line %q: %v", line, err)
		}
	}
}
