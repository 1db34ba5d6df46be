// Copyright (C) 2017 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ktx

import (
	"bytes"
	eb "encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/pkg/errors"

	"github.com/ValveSoftware/vogl-sub006/core/data/binary"
	"github.com/ValveSoftware/vogl-sub006/core/data/endian"
)

// Read decodes a texture from r. Streams written in either byte order are
// accepted; image data of 2 and 4 byte types is converted to the native
// byte order.
func Read(r io.Reader) (*Texture, error) {
	var magic [12]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		return nil, errors.Wrap(err, "Reading KTX identifier")
	}
	if magic != Magic {
		return nil, ErrInvalidMagic
	}

	var marker [4]byte
	if _, err := io.ReadFull(r, marker[:]); err != nil {
		return nil, errors.Wrap(err, "Reading KTX endianness")
	}
	var order eb.ByteOrder
	switch eb.LittleEndian.Uint32(marker[:]) {
	case EndiannessMarker:
		order = eb.LittleEndian
	case EndiannessSwapped:
		order = eb.BigEndian
	default:
		return nil, ErrInvalidEndianness
	}

	in := endian.Reader(r, order)
	t := &Texture{OppositeEndianness: order != endian.Native}
	h := &t.Header
	h.Endianness = EndiannessMarker
	for _, f := range []*uint32{
		&h.GLType, &h.GLTypeSize, &h.GLFormat, &h.GLInternalFormat, &h.GLBaseInternalFormat,
		&h.PixelWidth, &h.PixelHeight, &h.PixelDepth,
		&h.NumberOfArrayElements, &h.NumberOfFaces, &h.NumberOfMipmapLevels,
		&h.BytesOfKeyValueData,
	} {
		*f = in.Uint32()
	}
	if err := in.Error(); err != nil {
		return nil, errors.Wrap(err, "Reading KTX header")
	}
	if err := t.validateHeader(); err != nil {
		return nil, err
	}
	declaredKV := h.BytesOfKeyValueData
	if err := t.computeBlockInfo(); err != nil {
		return nil, err
	}

	if err := t.readKeyValues(in, declaredKV); err != nil {
		return nil, err
	}

	t.images = make([][]byte, t.NumImages())
	for mip := 0; mip < t.NumMips(); mip++ {
		if err := t.readMip(in, mip); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func (t *Texture) validateHeader() error {
	h := t.Header
	switch {
	case h.PixelWidth == 0:
		return fmt.Errorf("%w: zero width", ErrInvalidDimensions)
	case h.NumberOfFaces != 1 && h.NumberOfFaces != 6:
		return fmt.Errorf("%w: %d faces", ErrInvalidDimensions, h.NumberOfFaces)
	case h.NumberOfMipmapLevels > MaxMips:
		return fmt.Errorf("%w: %d mip levels", ErrInvalidDimensions, h.NumberOfMipmapLevels)
	case h.NumberOfArrayElements > MaxArraySize:
		return fmt.Errorf("%w: %d array elements", ErrInvalidDimensions, h.NumberOfArrayElements)
	case h.PixelWidth > 1<<16 || h.PixelHeight > 1<<16 || h.PixelDepth > 1<<16:
		return fmt.Errorf("%w: %dx%dx%d", ErrInvalidDimensions, h.PixelWidth, h.PixelHeight, h.PixelDepth)
	case h.BytesOfKeyValueData > maxKeyValueBytes || h.BytesOfKeyValueData%4 != 0:
		return fmt.Errorf("Invalid KTX key/value size %d", h.BytesOfKeyValueData)
	case int(atLeastOne(h.NumberOfMipmapLevels)) > maxMipsFor(int(h.PixelWidth), int(h.PixelHeight), int(h.PixelDepth)):
		return fmt.Errorf("%w: %d mip levels for %dx%dx%d", ErrInvalidDimensions, h.NumberOfMipmapLevels, h.PixelWidth, h.PixelHeight, h.PixelDepth)
	}
	if images := uint64(atLeastOne(h.NumberOfMipmapLevels)) * uint64(h.NumberOfFaces) *
		uint64(atLeastOne(h.NumberOfArrayElements)) * uint64(atLeastOne(h.PixelDepth)); images > 1<<24 {
		return fmt.Errorf("%w: %d images", ErrInvalidDimensions, images)
	}
	return nil
}

func (t *Texture) readKeyValues(in binary.Reader, size uint32) error {
	remaining := size
	for remaining > 0 {
		if remaining < 4 {
			return fmt.Errorf("Truncated KTX key/value block")
		}
		n := in.Uint32()
		if n > remaining-4 || align4(n) > remaining-4 {
			return fmt.Errorf("KTX key/value entry of %d bytes overflows block of %d", n, size)
		}
		entry := make([]byte, n)
		in.Data(entry)
		binary.SkipPadding(in, uint64(n), 4)
		if err := in.Error(); err != nil {
			return errors.Wrap(err, "Reading KTX key/value data")
		}
		kv := KeyValue{Key: string(entry)}
		if i := bytes.IndexByte(entry, 0); i >= 0 {
			kv.Key, kv.Value = string(entry[:i]), entry[i+1:]
		}
		t.keyValues = append(t.keyValues, kv)
		remaining -= 4 + align4(n)
	}
	t.Header.BytesOfKeyValueData = t.keyValueBytes()
	return nil
}

// levelLayout describes how one mip level is laid out in a stream.
type levelLayout struct {
	rowBytes    int // tight row size
	paddedRow   int // row size padded to 4 bytes
	rows        int
	paddedImage int // padded size of one 2D image
	depth       int
	imageSize   uint64 // the imageSize field of the level, before narrowing
}

func (t *Texture) layout(mip int) levelLayout {
	bx, by := t.mipBlocks(mip)
	_, _, d := t.MipDimensions(mip)
	l := levelLayout{rowBytes: bx * t.bytesPerBlock, rows: by, depth: d}
	l.paddedRow = int(align4(uint32(l.rowBytes)))
	image := uint64(l.paddedRow) * uint64(l.rows)
	l.paddedImage = int(image)
	if t.IsCubemap() && !t.IsArray() {
		l.imageSize = image
	} else {
		l.imageSize = image * uint64(d) * uint64(t.NumFaces()) * uint64(t.ArraySize())
	}
	return l
}

// validate fails when the imageSize field of the level cannot hold its size.
func (l levelLayout) validate(mip int) error {
	if l.imageSize > math.MaxUint32 {
		return fmt.Errorf("%w: mip %d holds %d bytes, more than a KTX level can declare", ErrInvalidImage, mip, l.imageSize)
	}
	return nil
}

// readChunk is the largest allocation made ahead of the data backing it.
const readChunk = 1 << 20

// readImage reads n bytes, growing the buffer as data arrives.
func readImage(in binary.Reader, n int) []byte {
	out := make([]byte, 0, min(n, readChunk))
	for len(out) < n && in.Error() == nil {
		k := min(n-len(out), readChunk)
		out = append(out, make([]byte, k)...)
		in.Data(out[len(out)-k:])
	}
	return out
}

func (t *Texture) readMip(in binary.Reader, mip int) error {
	l := t.layout(mip)
	if err := l.validate(mip); err != nil {
		return err
	}
	size := in.Uint32()
	if err := in.Error(); err != nil {
		return errors.Wrapf(err, "Reading KTX image size of mip %d", mip)
	}
	if uint64(size) != l.imageSize {
		return fmt.Errorf("%w: mip %d declares %d bytes, expected %d", ErrInvalidImage, mip, size, l.imageSize)
	}
	for array := 0; array < t.ArraySize(); array++ {
		for face := 0; face < t.NumFaces(); face++ {
			for z := 0; z < l.depth; z++ {
				padded := readImage(in, l.paddedImage)
				if err := in.Error(); err != nil {
					return errors.Wrapf(err, "Reading KTX image mip %d array %d face %d zslice %d", mip, array, face, z)
				}
				img := l.unpad(padded)
				if t.OppositeEndianness {
					endian.SwapElements(img, int(t.Header.GLTypeSize))
				}
				t.images[t.ImageIndex(mip, array, face, z)] = img
			}
			binary.SkipPadding(in, uint64(l.paddedImage*l.depth), 4)
		}
	}
	binary.SkipPadding(in, l.imageSize, 4)
	return errors.Wrapf(in.Error(), "Reading KTX padding of mip %d", mip)
}

func (l levelLayout) unpad(padded []byte) []byte {
	out := make([]byte, l.rowBytes*l.rows)
	for y := 0; y < l.rows; y++ {
		copy(out[y*l.rowBytes:(y+1)*l.rowBytes], padded[y*l.paddedRow:])
	}
	return out
}

func (l levelLayout) pad(img []byte) []byte {
	if l.rowBytes == l.paddedRow {
		return img
	}
	out := make([]byte, l.paddedImage)
	for y := 0; y < l.rows; y++ {
		copy(out[y*l.paddedRow:], img[y*l.rowBytes:(y+1)*l.rowBytes])
	}
	return out
}

// Write encodes the texture to w in the native byte order.
func (t *Texture) Write(w io.Writer) error {
	return t.WriteOrder(w, endian.Native)
}

// WriteOrder encodes the texture to w in the given byte order. The texture
// must pass ConsistencyCheck.
func (t *Texture) WriteOrder(w io.Writer, order eb.ByteOrder) error {
	if err := t.ConsistencyCheck(); err != nil {
		return errors.Wrap(err, "Writing KTX")
	}
	for mip := 0; mip < t.NumMips(); mip++ {
		if err := t.layout(mip).validate(mip); err != nil {
			return errors.Wrap(err, "Writing KTX")
		}
	}
	out := endian.Writer(w, order)
	out.Data(Magic[:])
	h := t.Header
	for _, v := range []uint32{
		EndiannessMarker,
		h.GLType, h.GLTypeSize, h.GLFormat, h.GLInternalFormat, h.GLBaseInternalFormat,
		h.PixelWidth, h.PixelHeight, h.PixelDepth,
		h.NumberOfArrayElements, h.NumberOfFaces, h.NumberOfMipmapLevels,
		h.BytesOfKeyValueData,
	} {
		out.Uint32(v)
	}

	for _, kv := range t.keyValues {
		n := keyValueEntrySize(kv)
		out.Uint32(n)
		out.Data([]byte(kv.Key))
		out.Uint8(0)
		out.Data(kv.Value)
		binary.WritePadding(out, uint64(n), 4)
	}

	swap := order != endian.Native && (h.GLTypeSize == 2 || h.GLTypeSize == 4)
	for mip := 0; mip < t.NumMips(); mip++ {
		l := t.layout(mip)
		out.Uint32(uint32(l.imageSize))
		for array := 0; array < t.ArraySize(); array++ {
			for face := 0; face < t.NumFaces(); face++ {
				for z := 0; z < l.depth; z++ {
					img := t.images[t.ImageIndex(mip, array, face, z)]
					if swap {
						img = append([]byte(nil), img...)
						endian.SwapElements(img, int(h.GLTypeSize))
					}
					out.Data(l.pad(img))
				}
				binary.WritePadding(out, uint64(l.paddedImage*l.depth), 4)
			}
		}
		binary.WritePadding(out, l.imageSize, 4)
	}
	return errors.Wrap(out.Error(), "Writing KTX")
}

// Equal returns true if t and o have the same header, key/values and images.
func (t *Texture) Equal(o *Texture) bool {
	if t.Header != o.Header || len(t.keyValues) != len(o.keyValues) || len(t.images) != len(o.images) {
		return false
	}
	for i, kv := range t.keyValues {
		if kv.Key != o.keyValues[i].Key || !bytes.Equal(kv.Value, o.keyValues[i].Value) {
			return false
		}
	}
	for i, img := range t.images {
		if !bytes.Equal(img, o.images[i]) {
			return false
		}
	}
	return true
}
