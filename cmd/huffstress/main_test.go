package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestReadFixturesSkipsBlankLines(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fixtures.txt")
	content := "hello\n\nworld\nabracadabra\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	fixtures, err := readFixtures(path)
	if err != nil {
		t.Fatal(err)
	}

	want := []string{"hello", "world", "abracadabra"}
	if len(fixtures) != len(want) {
		t.Fatalf("got %v, want %v", fixtures, want)
	}
	for i := range want {
		if fixtures[i] != want[i] {
			t.Fatalf("fixtures[%d] = %q, want %q", i, fixtures[i], want[i])
		}
	}
}

func TestReadFixturesMissingFile(t *testing.T) {
	_, err := readFixtures(filepath.Join(t.TempDir(), "does-not-exist.txt"))
	if err == nil {
		t.Fatal("expected an error for a missing fixture file")
	}
}

func TestFixtureResultRatio(t *testing.T) {
	r := fixtureResult{decompressed: 100, compressed: 25}
	if got := r.ratio(); got != 0.25 {
		t.Fatalf("ratio = %f, want 0.25", got)
	}
}
