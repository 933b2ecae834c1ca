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

// Command logogen renders the BibCiTeX logo.
//
// Without flags, the "logo" and "transparent" variants are written to
// ../assets/ using the font font/lmromancaps.otf.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"seehuhn.de/go/logo"
	"seehuhn.de/go/logo/config"
	"seehuhn.de/go/logo/export"
	"seehuhn.de/go/logo/glyph"
)

type options struct {
	font     string
	variants string // comma-separated names, or "all"
	out      string
	dpi      int
	config   string
	icons    string // comma-separated sizes
	proof    bool
	inspect  string
}

func main() {
	var opts options
	flag.StringVar(&opts.font, "font", logo.DefaultFont, "font file")
	flag.StringVar(&opts.variants, "variant", "", "comma-separated list of variants, or \"all\"")
	flag.StringVar(&opts.out, "out", "", "output file (single variant only)")
	flag.IntVar(&opts.dpi, "dpi", 0, "resolution stored in the PNG files (default: per variant)")
	flag.StringVar(&opts.config, "config", "", "TOML file with additional variants")
	flag.StringVar(&opts.icons, "icons", "", "also write an icon file with these sizes, e.g. 16,32,256")
	flag.BoolVar(&opts.proof, "proof", false, "also write a PDF layout proof")
	flag.StringVar(&opts.inspect, "inspect", "", "print size and resolution of a PNG file and exit")
	verbose := flag.Bool("v", false, "verbose logging")
	flag.Parse()

	log := newLogger(os.Stderr, *verbose)
	var err error
	if opts.inspect != "" {
		err = inspect(os.Stdout, opts.inspect)
	} else {
		err = run(log, os.Stdout, opts)
	}
	if err != nil {
		log.Error().Err(err).Msg("logogen failed")
		os.Exit(1)
	}
}

func newLogger(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	consoleWriter := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "2006-01-02 15:04:05",
	}
	return zerolog.New(consoleWriter).Level(level).With().Timestamp().Logger()
}

func run(log zerolog.Logger, stdout io.Writer, opts options) error {
	// The font is loaded first, so that nothing is written if it is missing.
	font, err := glyph.LoadFont(opts.font)
	if err != nil {
		fmt.Fprintln(stdout, "failed to load font:", err)
		return fmt.Errorf("failed to load font: %w", err)
	}
	log.Debug().Str("font", opts.font).Msg("font loaded")

	registry := make(map[string]*logo.Variant)
	for _, name := range logo.Names() {
		registry[name], _ = logo.Lookup(name)
	}
	defaults := slices.Clone(logo.DefaultVariants)
	if opts.config != "" {
		vv, err := config.Load(opts.config)
		if err != nil {
			return err
		}
		for _, v := range vv {
			if _, builtin := registry[v.Name]; !builtin {
				defaults = append(defaults, v.Name)
			}
			registry[v.Name] = v
		}
		log.Debug().Str("config", opts.config).Int("variants", len(vv)).Msg("config loaded")
	}

	names, err := selectVariants(opts.variants, registry, defaults)
	if err != nil {
		return err
	}
	if opts.out != "" && len(names) != 1 {
		return errors.New("-out requires exactly one variant")
	}
	iconSizes, err := parseSizes(opts.icons)
	if err != nil {
		return err
	}

	for _, name := range names {
		v := registry[name]
		if opts.out != "" {
			v.Output = opts.out
		}
		if opts.dpi > 0 {
			v.DPI = opts.dpi
		}
		if err := generate(log, stdout, font, v, iconSizes, opts.proof); err != nil {
			return err
		}
	}
	return nil
}

func generate(log zerolog.Logger, stdout io.Writer, font *glyph.Font, v *logo.Variant, iconSizes []int, proof bool) error {
	start := time.Now()
	img, err := logo.Render(font, v)
	if err != nil {
		return err
	}
	log.Debug().Str("variant", v.Name).Dur("elapsed", time.Since(start)).Msg("rendered")

	if err := export.WritePNG(v.Output, img, v.DPI); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "image saved to %s\n", v.Output)

	base := strings.TrimSuffix(v.Output, filepath.Ext(v.Output))
	if len(iconSizes) > 0 {
		icons := export.IconSet(img, iconSizes)
		for i, ic := range icons {
			fname := fmt.Sprintf("%s-%d.png", base, iconSizes[i])
			if err := export.WritePNG(fname, ic, v.DPI); err != nil {
				return err
			}
			log.Debug().Str("file", fname).Msg("icon written")
		}
		if err := export.WriteICO(base+".ico", icons); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "icon saved to %s.ico\n", base)
	}

	if proof {
		p, err := export.NewProof(font, v)
		if err != nil {
			return err
		}
		if err := export.WriteProof(base+".pdf", p); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "proof saved to %s.pdf\n", base)
	}
	return nil
}

// inspect prints the dimensions and resolution of a PNG file.
func inspect(stdout io.Writer, fname string) error {
	f, err := os.Open(fname)
	if err != nil {
		return err
	}
	defer f.Close()

	cfg, err := png.DecodeConfig(f)
	if err != nil {
		return fmt.Errorf("%s: %w", fname, err)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return err
	}
	dpi, err := export.ReadDPI(f)
	switch {
	case errors.Is(err, export.ErrNoDPI):
		fmt.Fprintf(stdout, "%s: %dx%d, no resolution\n", fname, cfg.Width, cfg.Height)
	case err != nil:
		return fmt.Errorf("%s: %w", fname, err)
	default:
		fmt.Fprintf(stdout, "%s: %dx%d, %d dpi\n", fname, cfg.Width, cfg.Height, dpi)
	}
	return nil
}

// selectVariants turns the -variant flag into a list of variant names.
func selectVariants(sel string, registry map[string]*logo.Variant, defaults []string) ([]string, error) {
	switch strings.TrimSpace(sel) {
	case "":
		return defaults, nil
	case "all":
		all := make([]string, 0, len(registry))
		for name := range registry {
			all = append(all, name)
		}
		slices.Sort(all)
		return all, nil
	}

	var names []string
	for _, name := range strings.Split(sel, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, ok := registry[name]; !ok {
			return nil, fmt.Errorf("%w: %q", logo.ErrUnknownVariant, name)
		}
		if !slices.Contains(names, name) {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return nil, errors.New("no variants selected")
	}
	return names, nil
}

// parseSizes parses the -icons flag.
func parseSizes(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}
	if s == "default" {
		return slices.Clone(export.DefaultIconSizes), nil
	}
	var sizes []int
	for _, field := range strings.Split(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil || n < 1 || n > 256 {
			return nil, fmt.Errorf("invalid icon size %q", field)
		}
		sizes = append(sizes, n)
	}
	return sizes, nil
}
