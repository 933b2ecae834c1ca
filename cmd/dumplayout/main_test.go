package main

import (
	"bytes"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"seehuhn.de/go/logo"
)

func TestRun(t *testing.T) {
	dir := t.TempDir()
	fontFile := filepath.Join(dir, "font.ttf")
	if err := os.WriteFile(fontFile, goregular.TTF, 0o644); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := run(fontFile, "", &buf); err != nil {
		t.Fatal(err)
	}

	var out struct {
		Variants []jsonVariant `json:"variants"`
	}
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if len(out.Variants) != len(logo.Variants) {
		t.Fatalf("got %d variants", len(out.Variants))
	}
	for _, v := range out.Variants {
		cx := (v.Box[0] + v.Box[2]) / 2
		cy := (v.Box[1] + v.Box[3]) / 2
		mid := float64(v.Size) / 2
		if math.Abs(cx-mid) > 1 || math.Abs(cy-mid) > 1 {
			t.Errorf("%s: box %v is not centered", v.Name, v.Box)
		}
		if len(v.Glyphs) == 0 || v.Glyphs[0].Char != "B" {
			t.Errorf("%s: unexpected glyphs", v.Name)
		}
	}
}

func TestRunMissingFont(t *testing.T) {
	dir := t.TempDir()
	outFile := filepath.Join(dir, "layout.json")
	if err := run(filepath.Join(dir, "missing.otf"), outFile, nil); err == nil {
		t.Fatal("expected error")
	}
	if _, err := os.Stat(outFile); err == nil {
		t.Error("output written despite missing font")
	}
}

func TestRunToFile(t *testing.T) {
	dir := t.TempDir()
	fontFile := filepath.Join(dir, "font.ttf")
	if err := os.WriteFile(fontFile, goregular.TTF, 0o644); err != nil {
		t.Fatal(err)
	}

	outFile := filepath.Join(dir, "layout.json")
	if err := run(fontFile, outFile, nil); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(outFile)
	if err != nil {
		t.Fatal(err)
	}
	if !json.Valid(data) {
		t.Error("output file is not valid JSON")
	}

	// a directory cannot be opened for writing
	if err := run(fontFile, dir, nil); err == nil {
		t.Error("expected error when writing to a directory")
	}
}
