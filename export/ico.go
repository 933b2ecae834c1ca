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

package export

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"image"
	"io"
	"os"

	"golang.org/x/image/draw"
)

// DefaultIconSizes are the icon sizes used when none are given.
var DefaultIconSizes = []int{16, 32, 48, 64, 128, 256}

// IconSet returns img resampled to each of the given square sizes.
func IconSet(img image.Image, sizes []int) []*image.RGBA {
	res := make([]*image.RGBA, 0, len(sizes))
	for _, size := range sizes {
		dst := image.NewRGBA(image.Rect(0, 0, size, size))
		draw.CatmullRom.Scale(dst, dst.Rect, img, img.Bounds(), draw.Src, nil)
		res = append(res, dst)
	}
	return res
}

// WriteICO writes the images as a Windows icon file, with one PNG encoded
// entry per image.
func WriteICO(fname string, imgs []*image.RGBA) error {
	var buf bytes.Buffer
	if err := EncodeICO(&buf, imgs); err != nil {
		return err
	}
	if err := os.WriteFile(fname, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", fname, err)
	}
	return nil
}

// EncodeICO writes the images in ICO format.  Images must be square and
// at most 256 pixels wide.
func EncodeICO(w io.Writer, imgs []*image.RGBA) error {
	if len(imgs) == 0 || len(imgs) > 0xffff {
		return fmt.Errorf("invalid number of icon images: %d", len(imgs))
	}

	pngs := make([][]byte, len(imgs))
	for i, img := range imgs {
		b := img.Bounds()
		if b.Dx() != b.Dy() || b.Dx() < 1 || b.Dx() > 256 {
			return fmt.Errorf("invalid icon size %dx%d", b.Dx(), b.Dy())
		}
		var buf bytes.Buffer
		if err := EncodePNG(&buf, img, 0); err != nil {
			return err
		}
		pngs[i] = buf.Bytes()
	}

	le := binary.LittleEndian
	header := make([]byte, 6+16*len(imgs))
	le.PutUint16(header[2:], 1) // type: icon
	le.PutUint16(header[4:], uint16(len(imgs)))
	offset := uint32(len(header))
	for i, img := range imgs {
		entry := header[6+16*i : 6+16*(i+1)]
		size := img.Bounds().Dx()
		if size < 256 { // 0 means 256
			entry[0] = byte(size)
			entry[1] = byte(size)
		}
		le.PutUint16(entry[4:], 1)  // colour planes
		le.PutUint16(entry[6:], 32) // bits per pixel
		le.PutUint32(entry[8:], uint32(len(pngs[i])))
		le.PutUint32(entry[12:], offset)
		offset += uint32(len(pngs[i]))
	}

	if _, err := w.Write(header); err != nil {
		return err
	}
	for _, p := range pngs {
		if _, err := w.Write(p); err != nil {
			return err
		}
	}
	return nil
}
