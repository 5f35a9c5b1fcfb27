package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRootCommandRunsMenu(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "movies.csv")
	csv := "Title,Genre,Rating,Source,Year,ReviewDate\n" +
		"Inception,Sci-Fi,8.8,IMDB,2010,2020-01-01\n" +
		"Cats,Comedy,2.1,IMDB,2019,2020-01-01\n"
	if err := os.WriteFile(path, []byte(csv), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("DATA_PATH", path)
	t.Setenv("LOG_LEVEL", "error")

	var out bytes.Buffer
	rootCmd.SetIn(strings.NewReader("1\n5\n"))
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(nil)
	t.Cleanup(func() {
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
	})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	got := out.String()
	for _, want := range []string{
		"Loaded 2 movies from dataset",
		"1. Inception (2010) - Sci-Fi - Rating: 8.8 (IMDB)",
		"Thanks for using Movie Ratings Analyser!",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestRootCommandMissingFile(t *testing.T) {
	t.Setenv("DATA_PATH", filepath.Join(t.TempDir(), "absent.csv"))
	t.Setenv("LOG_LEVEL", "error")

	var out bytes.Buffer
	rootCmd.SetIn(strings.NewReader(""))
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(nil)
	t.Cleanup(func() {
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
	})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(out.String(), "Error loading movie data") {
		t.Errorf("expected load error notice, got:\n%s", out.String())
	}
}
