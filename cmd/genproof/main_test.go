// seehuhn.de/go/logo - a logo and icon generator
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/image/font/gofont/goregular"

	"seehuhn.de/go/logo"
)

func TestRun(t *testing.T) {
	dir := t.TempDir()
	fontFile := filepath.Join(dir, "font.ttf")
	if err := os.WriteFile(fontFile, goregular.TTF, 0o644); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "proof")
	if err := run(zerolog.Nop(), fontFile, out); err != nil {
		t.Fatal(err)
	}
	for _, name := range logo.Names() {
		if _, err := os.Stat(filepath.Join(out, name+".pdf")); err != nil {
			t.Error(err)
		}
	}
}
