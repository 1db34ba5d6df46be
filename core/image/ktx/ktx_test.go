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

package ktx_test

import (
	"bytes"
	eb "encoding/binary"
	"testing"

	"github.com/pkg/errors"

	"github.com/ValveSoftware/vogl-sub006/core/assert"
	"github.com/ValveSoftware/vogl-sub006/core/data/endian"
	"github.com/ValveSoftware/vogl-sub006/core/image/ktx"
	"github.com/ValveSoftware/vogl-sub006/gl"
)

func ramp(n int, seed byte) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = seed + byte(i)
	}
	return out
}

// fillAll adds a distinct image to every valid slot of t.
func fillAll(assert assert.Manager, t *ktx.Texture) {
	seed := byte(0)
	for mip := 0; mip < t.NumMips(); mip++ {
		_, _, depth := t.MipDimensions(mip)
		for array := 0; array < t.ArraySize(); array++ {
			for face := 0; face < t.NumFaces(); face++ {
				for z := 0; z < depth; z++ {
					err := t.AddImage(mip, array, face, z, ramp(t.ExpectedImageSize(mip), seed))
					assert.For("add %d/%d/%d/%d", mip, array, face, z).ThatError(err).Succeeded()
					seed += 17
				}
			}
		}
	}
}

func roundTrip(assert assert.Manager, name string, t *ktx.Texture, order eb.ByteOrder) *ktx.Texture {
	buf := &bytes.Buffer{}
	if !assert.For("%s write", name).ThatError(t.WriteOrder(buf, order)).Succeeded() {
		return nil
	}
	got, err := ktx.Read(buf)
	if !assert.For("%s read", name).ThatError(err).Succeeded() {
		return nil
	}
	assert.For("%s equal", name).ThatBoolean(got.Equal(t)).IsTrue()
	assert.For("%s consistent", name).ThatError(got.ConsistencyCheck()).Succeeded()
	assert.For("%s opposite", name).ThatBoolean(got.OppositeEndianness).Equals(order != endian.Native)
	return got
}

func TestRoundTrip(t *testing.T) {
	assert := assert.To(t)
	for _, test := range []struct {
		name string
		init func(*ktx.Texture) error
	}{
		{"1d", func(t *ktx.Texture) error { return t.Init1D(8, 4, gl.RGBA8, gl.RGBA, gl.UNSIGNED_BYTE) }},
		{"1d array", func(t *ktx.Texture) error { return t.Init1DArray(4, 3, 2, gl.RGBA8, gl.RGBA, gl.UNSIGNED_BYTE) }},
		{"2d", func(t *ktx.Texture) error { return t.Init2D(4, 4, 3, gl.RGBA8, gl.RGBA, gl.UNSIGNED_BYTE) }},
		{"2d padded", func(t *ktx.Texture) error { return t.Init2D(3, 5, 2, gl.RGB8, gl.RGB, gl.UNSIGNED_BYTE) }},
		{"2d array", func(t *ktx.Texture) error { return t.Init2DArray(4, 2, 3, 2, gl.R16, gl.RED, gl.UNSIGNED_SHORT) }},
		{"3d", func(t *ktx.Texture) error { return t.Init3D(4, 2, 4, 3, gl.RGBA8, gl.RGBA, gl.UNSIGNED_BYTE) }},
		{"cube", func(t *ktx.Texture) error { return t.InitCubemap(4, 2, gl.RGBA8, gl.RGBA, gl.UNSIGNED_BYTE) }},
		{"cube array", func(t *ktx.Texture) error { return t.InitCubemapArray(2, 2, 2, gl.RGB8, gl.RGB, gl.UNSIGNED_BYTE) }},
		{"compressed", func(t *ktx.Texture) error {
			return t.Init2D(8, 8, 4, gl.COMPRESSED_RGB_S3TC_DXT1_EXT, gl.NONE, gl.NONE)
		}},
	} {
		tex := &ktx.Texture{}
		if !assert.For("%s init", test.name).ThatError(test.init(tex)).Succeeded() {
			continue
		}
		fillAll(assert, tex)
		tex.AddKeyValueString(ktx.KeyOrientation, "S=r,T=u")
		roundTrip(assert, test.name, tex, endian.Native)
		roundTrip(assert, test.name, tex, endian.Opposite(endian.Native))
	}
}

func TestOppositeEndianSwapsElements(t *testing.T) {
	assert := assert.To(t)
	tex := &ktx.Texture{}
	assert.For("init").ThatError(tex.Init2D(2, 2, 1, gl.R16, gl.RED, gl.UNSIGNED_SHORT)).Succeeded()
	assert.For("add").ThatError(tex.AddImage(0, 0, 0, 0, []byte{1, 2, 3, 4, 5, 6, 7, 8})).Succeeded()
	buf := &bytes.Buffer{}
	assert.For("write").ThatError(tex.WriteOrder(buf, endian.Opposite(endian.Native))).Succeeded()
	// identifier, 13 header words and the image size
	data := buf.Bytes()[12+13*4+4:]
	assert.For("swapped").ThatBytes(data).Equals([]byte{2, 1, 4, 3, 6, 5, 8, 7})
	got, err := ktx.Read(bytes.NewReader(buf.Bytes()))
	if assert.For("read").ThatError(err).Succeeded() {
		assert.For("native").ThatBytes(got.ImageData(0, 0, 0, 0)).Equals([]byte{1, 2, 3, 4, 5, 6, 7, 8})
	}
}

func TestRowPadding(t *testing.T) {
	assert := assert.To(t)
	tex := &ktx.Texture{}
	assert.For("init").ThatError(tex.Init2D(3, 3, 1, gl.RGB8, gl.RGB, gl.UNSIGNED_BYTE)).Succeeded()
	assert.For("expected").ThatInteger(tex.ExpectedImageSize(0)).Equals(27)
	assert.For("add").ThatError(tex.AddImage(0, 0, 0, 0, ramp(27, 1))).Succeeded()
	buf := &bytes.Buffer{}
	assert.For("write").ThatError(tex.Write(buf)).Succeeded()
	assert.For("size").ThatInteger(buf.Len()).Equals(12 + 13*4 + 4 + 3*12)
}

func TestImageIndex(t *testing.T) {
	assert := assert.To(t)
	for _, test := range []struct {
		name string
		init func(*ktx.Texture) error
	}{
		{"cube array", func(t *ktx.Texture) error { return t.InitCubemapArray(4, 2, 3, gl.RGBA8, gl.RGBA, gl.UNSIGNED_BYTE) }},
		{"3d", func(t *ktx.Texture) error { return t.Init3D(4, 4, 4, 3, gl.RGBA8, gl.RGBA, gl.UNSIGNED_BYTE) }},
		{"2d array", func(t *ktx.Texture) error { return t.Init2DArray(8, 8, 5, 4, gl.RGBA8, gl.RGBA, gl.UNSIGNED_BYTE) }},
	} {
		tex := &ktx.Texture{}
		if !assert.For("%s init", test.name).ThatError(test.init(tex)).Succeeded() {
			continue
		}
		seen := map[int]bool{}
		for mip := 0; mip < tex.NumMips(); mip++ {
			for array := 0; array < tex.ArraySize(); array++ {
				for face := 0; face < tex.NumFaces(); face++ {
					for z := 0; z < tex.Depth(); z++ {
						i := tex.ImageIndex(mip, array, face, z)
						assert.For("%s index in range", test.name).ThatBoolean(i >= 0 && i < tex.NumImages()).IsTrue()
						assert.For("%s index %d unique", test.name, i).ThatBoolean(seen[i]).IsFalse()
						seen[i] = true
					}
				}
			}
		}
		assert.For("%s covers arena", test.name).ThatInteger(len(seen)).Equals(tex.NumImages())
	}
}

func TestSlots(t *testing.T) {
	assert := assert.To(t)
	tex := &ktx.Texture{}
	assert.For("init").ThatError(tex.Init3D(4, 4, 4, 3, gl.RGBA8, gl.RGBA, gl.UNSIGNED_BYTE)).Succeeded()
	w, h, d := tex.MipDimensions(1)
	assert.For("mip 1").That([]int{w, h, d}).DeepEquals([]int{2, 2, 2})
	assert.For("beyond depth").ThatBytes(tex.ImageData(1, 0, 0, 2)).IsLength(0)
	err := tex.AddImage(1, 0, 0, 2, ramp(16, 0))
	assert.For("beyond depth").ThatBoolean(errors.Is(err, ktx.ErrInvalidImage)).IsTrue()
	err = tex.AddImage(0, 0, 0, 0, ramp(63, 0))
	assert.For("wrong size").ThatBoolean(errors.Is(err, ktx.ErrInvalidImage)).IsTrue()
	err = tex.AddImage(3, 0, 0, 0, ramp(4, 0))
	assert.For("bad mip").ThatBoolean(errors.Is(err, ktx.ErrInvalidImage)).IsTrue()

	err = tex.ConsistencyCheck()
	assert.For("missing images").ThatBoolean(errors.Is(err, ktx.ErrInvalidImage)).IsTrue()
	err = tex.Write(&bytes.Buffer{})
	assert.For("write incomplete").ThatBoolean(errors.Is(err, ktx.ErrInvalidImage)).IsTrue()

	fillAll(assert, tex)
	assert.For("complete").ThatError(tex.ConsistencyCheck()).Succeeded()
}

func TestGrantOwnership(t *testing.T) {
	assert := assert.To(t)
	tex := &ktx.Texture{}
	assert.For("init").ThatError(tex.Init2D(2, 2, 1, gl.RGBA8, gl.RGBA, gl.UNSIGNED_BYTE)).Succeeded()
	data := ramp(16, 3)
	first := &data[0]
	assert.For("grant").ThatError(tex.AddImageGrantOwnership(0, 0, 0, 0, &data)).Succeeded()
	assert.For("taken").ThatSlice(data).IsLength(0)
	assert.For("not copied").ThatBoolean(&tex.ImageData(0, 0, 0, 0)[0] == first).IsTrue()

	short := ramp(15, 0)
	err := tex.AddImageGrantOwnership(0, 0, 0, 0, &short)
	assert.For("rejected").ThatBoolean(errors.Is(err, ktx.ErrInvalidImage)).IsTrue()
	assert.For("kept").ThatSlice(short).IsLength(15)
}

func TestInitFailures(t *testing.T) {
	assert := assert.To(t)
	for _, test := range []struct {
		name  string
		init  func(*ktx.Texture) error
		cause error
	}{
		{"zero width", func(t *ktx.Texture) error { return t.Init2D(0, 4, 1, gl.RGBA8, gl.RGBA, gl.UNSIGNED_BYTE) }, ktx.ErrInvalidDimensions},
		{"zero height", func(t *ktx.Texture) error { return t.Init2D(4, 0, 1, gl.RGBA8, gl.RGBA, gl.UNSIGNED_BYTE) }, ktx.ErrInvalidDimensions},
		{"zero mips", func(t *ktx.Texture) error { return t.Init2D(4, 4, 0, gl.RGBA8, gl.RGBA, gl.UNSIGNED_BYTE) }, ktx.ErrInvalidDimensions},
		{"too many mips", func(t *ktx.Texture) error { return t.Init2D(4, 4, 4, gl.RGBA8, gl.RGBA, gl.UNSIGNED_BYTE) }, ktx.ErrInvalidDimensions},
		{"zero layers", func(t *ktx.Texture) error { return t.Init2DArray(4, 4, 0, 1, gl.RGBA8, gl.RGBA, gl.UNSIGNED_BYTE) }, ktx.ErrInvalidDimensions},
		{"unknown format", func(t *ktx.Texture) error { return t.Init2D(4, 4, 1, gl.Enum(0x1234), gl.RGBA, gl.UNSIGNED_BYTE) }, ktx.ErrUnsupportedFormat},
		{"compressed with type", func(t *ktx.Texture) error {
			return t.Init2D(4, 4, 1, gl.COMPRESSED_RGB_S3TC_DXT1_EXT, gl.RGB, gl.UNSIGNED_BYTE)
		}, ktx.ErrUnsupportedFormat},
		{"uncompressed without type", func(t *ktx.Texture) error { return t.Init2D(4, 4, 1, gl.RGBA8, gl.NONE, gl.NONE) }, ktx.ErrUnsupportedFormat},
	} {
		tex := &ktx.Texture{}
		err := test.init(tex)
		assert.For(test.name).ThatBoolean(errors.Is(err, test.cause)).IsTrue()
		assert.For("%s images", test.name).ThatInteger(tex.NumImages()).Equals(1)
		assert.For("%s width", test.name).ThatInteger(tex.Width()).Equals(0)
	}
}

func TestCompressed(t *testing.T) {
	assert := assert.To(t)
	tex := &ktx.Texture{}
	assert.For("init").ThatError(tex.Init2D(8, 8, 4, gl.COMPRESSED_RGB_S3TC_DXT1_EXT, gl.NONE, gl.NONE)).Succeeded()
	assert.For("compressed").ThatBoolean(tex.IsCompressed()).IsTrue()
	bw, bh, bytes := tex.BlockSize()
	assert.For("block").That([]int{bw, bh, bytes}).DeepEquals([]int{4, 4, 8})
	for mip, size := range []int{32, 8, 8, 8} {
		assert.For("mip %d", mip).ThatInteger(tex.ExpectedImageSize(mip)).Equals(size)
	}
	assert.For("type size").That(tex.Header.GLTypeSize).Equals(uint32(1))
	assert.For("base format").That(gl.Enum(tex.Header.GLBaseInternalFormat)).Equals(gl.RGB)
}

func TestShape(t *testing.T) {
	assert := assert.To(t)
	tex := &ktx.Texture{}
	assert.For("init").ThatError(tex.InitCubemapArray(8, 3, 2, gl.RGBA8, gl.RGBA, gl.UNSIGNED_BYTE)).Succeeded()
	assert.For("cube").ThatBoolean(tex.IsCubemap()).IsTrue()
	assert.For("array").ThatBoolean(tex.IsArray()).IsTrue()
	assert.For("1d").ThatBoolean(tex.Is1D()).IsFalse()
	assert.For("3d").ThatBoolean(tex.Is3D()).IsFalse()
	assert.For("faces").ThatInteger(tex.NumFaces()).Equals(6)
	assert.For("array size").ThatInteger(tex.ArraySize()).Equals(3)
	assert.For("images").ThatInteger(tex.NumImages()).Equals(2 * 6 * 3)
	assert.For("format").That(tex.Format()).Equals(gl.RGBA)
	assert.For("type").That(tex.Type()).Equals(gl.UNSIGNED_BYTE)

	oned := &ktx.Texture{}
	assert.For("1d init").ThatError(oned.Init1D(16, 5, gl.RGBA8, gl.RGBA, gl.UNSIGNED_BYTE)).Succeeded()
	assert.For("1d").ThatBoolean(oned.Is1D()).IsTrue()
	assert.For("1d height").ThatInteger(oned.Height()).Equals(1)
	assert.For("1d images").ThatInteger(oned.NumImages()).Equals(5)
}

func TestKeyValues(t *testing.T) {
	assert := assert.To(t)
	tex := &ktx.Texture{}
	assert.For("init").ThatError(tex.Init2D(1, 1, 1, gl.RGBA8, gl.RGBA, gl.UNSIGNED_BYTE)).Succeeded()
	tex.AddKeyValueString(ktx.KeyOrientation, "S=r,T=d")
	// 4 byte length, 14 byte key, NUL, 8 byte value, 1 byte of padding
	assert.For("size").That(tex.Header.BytesOfKeyValueData).Equals(uint32(28))
	tex.AddKeyValue(ktx.KeyFourCC, []byte{'D', 'X', 'T', '1'})
	tex.AddKeyValueString(ktx.KeyOrientation, "S=l")

	v, ok := tex.KeyValueString(ktx.KeyOrientation)
	assert.For("first wins").ThatBoolean(ok).IsTrue()
	assert.For("orientation").ThatString(v).Equals("S=r,T=d")
	raw, ok := tex.KeyValue(ktx.KeyFourCC)
	assert.For("fourcc present").ThatBoolean(ok).IsTrue()
	assert.For("fourcc").ThatBytes(raw).Equals([]byte("DXT1"))
	_, ok = tex.KeyValue("missing")
	assert.For("missing").ThatBoolean(ok).IsFalse()
	assert.For("count").ThatSlice(tex.KeyValues()).IsLength(3)

	assert.For("add").ThatError(tex.AddImage(0, 0, 0, 0, ramp(4, 0))).Succeeded()
	got := roundTrip(assert, "key values", tex, endian.Native)
	if got != nil {
		assert.For("read order").That(got.KeyValues()[2].Key).Equals(ktx.KeyOrientation)
	}

	tex.ClearKeyValues()
	assert.For("cleared").ThatSlice(tex.KeyValues()).IsLength(0)
	assert.For("cleared size").That(tex.Header.BytesOfKeyValueData).Equals(uint32(0))
}

func TestReadErrors(t *testing.T) {
	assert := assert.To(t)
	tex := &ktx.Texture{}
	assert.For("init").ThatError(tex.Init2D(4, 4, 1, gl.RGBA8, gl.RGBA, gl.UNSIGNED_BYTE)).Succeeded()
	fillAll(assert, tex)
	buf := &bytes.Buffer{}
	assert.For("write").ThatError(tex.Write(buf)).Succeeded()
	good := buf.Bytes()

	_, err := ktx.Read(bytes.NewReader([]byte("not a ktx file at all")))
	assert.For("magic").ThatError(err).HasCause(ktx.ErrInvalidMagic)

	bad := append([]byte(nil), good...)
	copy(bad[12:], []byte{0xde, 0xad, 0xbe, 0xef})
	_, err = ktx.Read(bytes.NewReader(bad))
	assert.For("endianness").ThatError(err).HasCause(ktx.ErrInvalidEndianness)

	_, err = ktx.Read(bytes.NewReader(good[:len(good)-3]))
	assert.For("truncated").ThatError(err).Failed()

	_, err = ktx.Read(bytes.NewReader(good[:30]))
	assert.For("truncated header").ThatError(err).Failed()

	bad = append([]byte(nil), good...)
	// image size of mip 0
	endian.Native.PutUint32(bad[64:], 12)
	_, err = ktx.Read(bytes.NewReader(bad))
	assert.For("image size").ThatBoolean(errors.Is(err, ktx.ErrInvalidImage)).IsTrue()
}

// header returns a little endian KTX header for a single mip RGBA8 2D
// texture followed by the imageSize field of mip 0.
func header(width, height, imageSize uint32) []byte {
	out := append([]byte(nil), ktx.Magic[:]...)
	for _, v := range []uint32{
		ktx.EndiannessMarker,
		uint32(gl.UNSIGNED_BYTE), 1, uint32(gl.RGBA), uint32(gl.RGBA8), uint32(gl.RGBA),
		width, height, 0,
		0, 1, 1,
		0,
		imageSize,
	} {
		out = eb.LittleEndian.AppendUint32(out, v)
	}
	return out
}

func TestReadOversizedLevel(t *testing.T) {
	assert := assert.To(t)

	// 65536x65536 RGBA8 is 2^34 bytes, which an imageSize of 0 would match
	// once narrowed to 32 bits.
	data := header(1<<16, 1<<16, 0)
	assert.For("header size").ThatSlice(data).IsLength(68)
	_, err := ktx.Read(bytes.NewReader(data))
	assert.For("overflowing level").ThatBoolean(errors.Is(err, ktx.ErrInvalidImage)).IsTrue()

	// A level that fits the field but has no data behind it fails on the
	// missing bytes.
	size := uint32(4 * 32768 * 32767)
	_, err = ktx.Read(bytes.NewReader(header(32768, 32767, size)))
	assert.For("missing data").ThatError(err).Failed()
	assert.For("not a size error").ThatBoolean(errors.Is(err, ktx.ErrInvalidImage)).IsFalse()

	_, err = ktx.Read(bytes.NewReader(header(2, 2, 15)))
	assert.For("wrong size").ThatBoolean(errors.Is(err, ktx.ErrInvalidImage)).IsTrue()

	good := append(header(2, 2, 16), ramp(16, 1)...)
	tex, err := ktx.Read(bytes.NewReader(good))
	if assert.For("valid").ThatError(err).Succeeded() {
		assert.For("data").ThatBytes(tex.ImageData(0, 0, 0, 0)).Equals(ramp(16, 1))
	}
}
