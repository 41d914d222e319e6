package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

type record struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
}

func TestStore_FlushLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.json")
	st, err := New(path)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	in := []record{{ID: 1, Title: "Pasta"}, {ID: 2, Title: "Soup"}}
	if err := st.Flush(in); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}

	var out []record
	if err := st.Load(&out); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(out) != 2 || out[0] != in[0] || out[1] != in[1] {
		t.Errorf("Load() = %v, want %v", out, in)
	}
}

func TestStore_LoadMissingFileLeavesTargetEmpty(t *testing.T) {
	st, err := New(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	var out []record
	if err := st.Load(&out); err != nil {
		t.Fatalf("Load() on missing file error = %v, want nil", err)
	}
	if len(out) != 0 {
		t.Errorf("Load() filled target from missing file: %v", out)
	}
}

func TestStore_LoadBadContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"malformed json", "{not json"},
		{"object instead of array", `{"id": 1}`},
		{"string instead of array", `"nope"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.json")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatalf("write fixture: %v", err)
			}

			st, err := New(path)
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}

			var out []record
			err = st.Load(&out)
			var pErr *PersistenceError
			if !errors.As(err, &pErr) {
				t.Errorf("Load() error = %v, want *PersistenceError", err)
			}
		})
	}
}

func TestStore_FlushCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "records.json")
	st, err := New(path)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if err := st.Flush([]record{}); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected %s to exist after Flush: %v", path, err)
	}
}
