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

// Command genproof writes a PDF layout proof for every logo variant.
// The proofs show the glyph outlines at their centered positions, so
// that the layout can be checked at any zoom level.
package main

import (
	"flag"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"seehuhn.de/go/logo"
	"seehuhn.de/go/logo/export"
	"seehuhn.de/go/logo/glyph"
)

func main() {
	fontFile := flag.String("font", logo.DefaultFont, "font file")
	dir := flag.String("dir", "testdata/proof", "output directory")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: "2006-01-02 15:04:05",
	}).With().Timestamp().Logger()

	if err := run(log, *fontFile, *dir); err != nil {
		log.Error().Err(err).Msg("genproof failed")
		os.Exit(1)
	}
}

func run(log zerolog.Logger, fontFile, dir string) error {
	font, err := glyph.LoadFont(fontFile)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	for _, name := range logo.Names() {
		v, err := logo.Lookup(name)
		if err != nil {
			return err
		}
		proof, err := export.NewProof(font, v)
		if err != nil {
			return err
		}
		fname := filepath.Join(dir, name+".pdf")
		if err := export.WriteProof(fname, proof); err != nil {
			return err
		}
		log.Info().Str("variant", name).Str("file", fname).Msg("proof written")
	}
	return nil
}
