// Command dumplayout writes the centered glyph layout of all logo variants
// as JSON.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"seehuhn.de/go/logo"
	"seehuhn.de/go/logo/glyph"
)

func main() {
	fontFile := flag.String("font", logo.DefaultFont, "font file")
	outFile := flag.String("o", "", "output file (default: standard output)")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: "2006-01-02 15:04:05",
	}).With().Timestamp().Logger()

	if err := run(*fontFile, *outFile, os.Stdout); err != nil {
		log.Error().Err(err).Msg("dumplayout failed")
		os.Exit(1)
	}
}

type jsonVariant struct {
	Name     string      `json:"name"`
	Size     int         `json:"size"`
	FontSize float64     `json:"font_size"`
	Ascent   float64     `json:"ascent"`
	Offset   [2]float64  `json:"offset"`
	Box      [4]float64  `json:"box"`
	Glyphs   []jsonGlyph `json:"glyphs"`
}

type jsonGlyph struct {
	Char   string      `json:"char"`
	X      float64     `json:"x"`
	Y      float64     `json:"y"`
	Fill   string      `json:"fill"`
	Shadow string      `json:"shadow,omitempty"`
	Box    *[4]float64 `json:"box,omitempty"`
}

func run(fontFile, outFile string, stdout io.Writer) error {
	font, err := glyph.LoadFont(fontFile)
	if err != nil {
		return err
	}

	var out struct {
		Variants []jsonVariant `json:"variants"`
	}
	for _, name := range logo.Names() {
		v, err := logo.Lookup(name)
		if err != nil {
			return err
		}
		jv, err := toJSON(font, v)
		if err != nil {
			return err
		}
		out.Variants = append(out.Variants, jv)
	}

	if outFile == "" {
		return writeJSON(stdout, out)
	}
	f, err := os.Create(outFile)
	if err != nil {
		return err
	}
	err = writeJSON(f, out)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("write %s: %w", outFile, err)
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func toJSON(font *glyph.Font, v *logo.Variant) (jsonVariant, error) {
	placed, face, err := logo.Layout(font, v)
	if err != nil {
		return jsonVariant{}, err
	}
	box, err := glyph.Measure(face, placed)
	if err != nil {
		return jsonVariant{}, err
	}

	jv := jsonVariant{
		Name:     v.Name,
		Size:     v.Size,
		FontSize: v.FontSize,
		Ascent:   face.Ascent,
		Box:      [4]float64{box.MinX, box.MinY, box.MaxX, box.MaxY},
	}
	if len(placed) > 0 {
		jv.Offset = [2]float64{placed[0].X - v.Glyphs[0].X, placed[0].Y - v.Glyphs[0].Y}
	}
	for _, pl := range placed {
		jg := jsonGlyph{
			Char: string(pl.Char),
			X:    pl.X,
			Y:    pl.Y,
			Fill: fmt.Sprintf("#%02x%02x%02x", pl.Fill.R, pl.Fill.G, pl.Fill.B),
		}
		if pl.Shadow != nil {
			jg.Shadow = fmt.Sprintf("#%02x%02x%02x", pl.Shadow.R, pl.Shadow.G, pl.Shadow.B)
		}
		b, ok, err := face.Bounds(pl.Char, pl.X, pl.Y)
		if err != nil {
			return jsonVariant{}, err
		}
		if ok {
			jg.Box = &[4]float64{b.MinX, b.MinY, b.MaxX, b.MaxY}
		}
		jv.Glyphs = append(jv.Glyphs, jg)
	}
	return jv, nil
}
