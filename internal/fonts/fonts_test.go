package fonts

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, n := range names {
		p := filepath.Join(dir, filepath.FromSlash(n))
		if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, nil, 0644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestScan(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "Fira/FiraMono-Bold.ttf", "Fira/readme.txt", "Inter.OTF")
	got, err := Scan(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("Scan = %v, want 2 fonts", got)
	}
	missing, err := Scan(filepath.Join(dir, "nope"))
	if err != nil || len(missing) != 0 {
		t.Fatalf("Scan(missing) = %v, %v", missing, err)
	}
}

func TestFind(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "Fira/FiraMono-Bold.ttf", "Fira/FiraMono-Regular.ttf", "Inter/Inter-Medium.ttf")

	tests := []struct {
		name string
		want string
	}{
		{"fira mono", "Fira/FiraMono-Regular.ttf"},
		{"FiraMono-Bold", "Fira/FiraMono-Bold.ttf"},
		{"inter", "Inter/Inter-Medium.ttf"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Find([]string{dir}, tt.name)
			if err != nil {
				t.Fatal(err)
			}
			if want := filepath.Join(dir, filepath.FromSlash(tt.want)); got != want {
				t.Fatalf("Find(%q) = %q, want %q", tt.name, got, want)
			}
		})
	}

	for _, name := range []string{"", "comic"} {
		if _, err := Find([]string{dir}, name); !errors.Is(err, os.ErrNotExist) {
			t.Fatalf("Find(%q) err = %v, want ErrNotExist", name, err)
		}
	}
}
