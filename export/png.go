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

// Package export writes rendered logos to disk: PNG files with resolution
// metadata, Windows icon files and vector layout proofs.
package export

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"
	"image"
	"image/png"
	"io"
	"math"
	"os"
)

// ErrNoDPI is returned by ReadDPI if a PNG file has no resolution
// information.
var ErrNoDPI = errors.New("no pHYs chunk")

const (
	pngSignature  = "\x89PNG\r\n\x1a\n"
	metresPerInch = 0.0254
)

// WritePNG writes img to the file fname, recording the given resolution
// in dots per inch.  The file is created or truncated; missing parent
// directories are not created.
func WritePNG(fname string, img image.Image, dpi int) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	err = EncodePNG(w, img, dpi)
	if err == nil {
		err = w.Flush()
	}
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("write %s: %w", fname, err)
	}
	return nil
}

// EncodePNG writes img in PNG format.  If dpi is positive, a pHYs chunk
// is inserted directly after the image header.
func EncodePNG(w io.Writer, img image.Image, dpi int) error {
	var buf bytes.Buffer
	enc := png.Encoder{CompressionLevel: png.BestCompression}
	if err := enc.Encode(&buf, img); err != nil {
		return err
	}
	data := buf.Bytes()
	if dpi <= 0 {
		_, err := w.Write(data)
		return err
	}

	// signature (8) + IHDR length, type, payload and CRC (4+4+13+4)
	const ihdrEnd = 8 + 25
	if len(data) < ihdrEnd || string(data[12:16]) != "IHDR" {
		return errors.New("unexpected PNG encoder output")
	}
	if _, err := w.Write(data[:ihdrEnd]); err != nil {
		return err
	}
	if _, err := w.Write(physChunk(dpi)); err != nil {
		return err
	}
	_, err := w.Write(data[ihdrEnd:])
	return err
}

// physChunk returns a complete pHYs chunk for the given resolution.
func physChunk(dpi int) []byte {
	ppm := uint32(math.Round(float64(dpi) / metresPerInch))

	chunk := make([]byte, 4+4+9+4)
	binary.BigEndian.PutUint32(chunk[0:], 9)
	copy(chunk[4:], "pHYs")
	binary.BigEndian.PutUint32(chunk[8:], ppm)
	binary.BigEndian.PutUint32(chunk[12:], ppm)
	chunk[16] = 1 // unit is the metre
	binary.BigEndian.PutUint32(chunk[17:], crc32.ChecksumIEEE(chunk[4:17]))
	return chunk
}

// ReadDPI returns the horizontal resolution recorded in a PNG stream, in
// dots per inch.  Reading stops at the first image data chunk.
func ReadDPI(r io.Reader) (int, error) {
	br := bufio.NewReader(r)
	sig := make([]byte, len(pngSignature))
	if _, err := io.ReadFull(br, sig); err != nil {
		return 0, err
	}
	if string(sig) != pngSignature {
		return 0, errors.New("not a PNG file")
	}

	var hdr [8]byte
	for {
		if _, err := io.ReadFull(br, hdr[:]); err != nil {
			return 0, err
		}
		length := binary.BigEndian.Uint32(hdr[:4])
		switch string(hdr[4:8]) {
		case "pHYs":
			if length != 9 {
				return 0, fmt.Errorf("invalid pHYs length %d", length)
			}
			var body [9]byte
			if _, err := io.ReadFull(br, body[:]); err != nil {
				return 0, err
			}
			if body[8] != 1 {
				return 0, ErrNoDPI
			}
			ppm := binary.BigEndian.Uint32(body[:4])
			return int(math.Round(float64(ppm) * metresPerInch)), nil
		case "IDAT", "IEND":
			return 0, ErrNoDPI
		}
		if _, err := br.Discard(int(length) + 4); err != nil {
			return 0, err
		}
	}
}
